package models

// DefaultUnit is the unit applied when none is given
const DefaultUnit = "Stk"

// Material is a quantity of a named good, either scoped to a project or
// kept in the global inventory. The quantity is stored as given; zero
// and negative amounts are allowed.
type Material struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// NewMaterial creates a material, falling back to DefaultUnit when the
// unit is empty
func NewMaterial(name string, quantity float64, unit string) Material {
	if unit == "" {
		unit = DefaultUnit
	}
	return Material{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
}

func (m *Material) normalize() {
	if m.Unit == "" {
		m.Unit = DefaultUnit
	}
}
