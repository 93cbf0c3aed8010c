package models

// Document is the root object persisted to disk. It holds all projects
// and the global material inventory.
type Document struct {
	// Projects in insertion order
	Projects []Project `json:"projects" yaml:"projects"`

	// Materials not assigned to any project
	Inventory []Material `json:"inventory" yaml:"inventory"`
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		Projects:  []Project{},
		Inventory: []Material{},
	}
}

// Normalize fills in defaults on records loaded from disk: empty
// statuses and units get their default values, nil slices become empty
// slices, and optional fields holding an empty string are cleared to
// absent. Externally edited files thus behave exactly like freshly
// created ones.
func (d *Document) Normalize() {
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Inventory == nil {
		d.Inventory = []Material{}
	}

	for i := range d.Projects {
		d.Projects[i].normalize()
	}
	for i := range d.Inventory {
		d.Inventory[i].normalize()
	}
}

// NextProjectID returns the id for the next project: one above the
// highest existing id, starting at 1. Ids of deleted projects are never
// reused because deletion is not supported.
func (d *Document) NextProjectID() int {
	maxID := 0
	for i := range d.Projects {
		if d.Projects[i].ID > maxID {
			maxID = d.Projects[i].ID
		}
	}
	return maxID + 1
}

// FindProject returns a pointer to the first project with the given id.
// The pointer refers into the document, so mutations through it are
// picked up by a subsequent save.
func (d *Document) FindProject(id int) (*Project, error) {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// AddProject appends a project to the document
func (d *Document) AddProject(p *Project) {
	d.Projects = append(d.Projects, *p)
}

// AddInventory appends a material to the global inventory
func (d *Document) AddInventory(m Material) {
	d.Inventory = append(d.Inventory, m)
}
