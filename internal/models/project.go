package models

// Project statuses are stored as free-form strings. These are the two
// values the CLI suggests; anything else is accepted and kept verbatim.
const (
	StatusOffen    = "offen"    // default for new projects and tasks
	StatusErledigt = "erledigt" // finished work
)

// Project represents a customer job with its tasks and material needs
type Project struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Customer string `json:"customer" yaml:"customer"`

	// Optional free-text fields; nil means unset
	Address *string `json:"address,omitempty" yaml:"address,omitempty"`
	DueDate *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Notes   *string `json:"notes,omitempty" yaml:"notes,omitempty"`

	Status    string     `json:"status" yaml:"status"`
	Tasks     []Task     `json:"tasks" yaml:"tasks"`
	Materials []Material `json:"materials" yaml:"materials"`
}

// NewProject creates a project with the given id and required fields.
// The status starts as "offen"; tasks and materials start empty.
func NewProject(id int, name, customer string) *Project {
	return &Project{
		ID:        id,
		Name:      name,
		Customer:  customer,
		Status:    StatusOffen,
		Tasks:     []Task{},
		Materials: []Material{},
	}
}

func (p *Project) normalize() {
	if p.Status == "" {
		p.Status = StatusOffen
	}
	p.Address = clearEmpty(p.Address)
	p.DueDate = clearEmpty(p.DueDate)
	p.Notes = clearEmpty(p.Notes)

	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	if p.Materials == nil {
		p.Materials = []Material{}
	}
	for i := range p.Tasks {
		p.Tasks[i].normalize()
	}
	for i := range p.Materials {
		p.Materials[i].normalize()
	}
}

// clearEmpty maps a pointer to an empty string to nil, so optional
// fields are always either absent or non-empty after normalization
func clearEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
