// Package builder shows the Builder pattern: a House is assembled step by
// step by a HouseBuilder, optionally sequenced by a Director.
package builder

import "fmt"

// House is the product. Fields that have not been built stay empty.
type House struct {
	Basement  string `yaml:"basement" json:"basement"`
	Structure string `yaml:"structure" json:"structure"`
	Roof      string `yaml:"roof" json:"roof"`
	Interior  string `yaml:"interior" json:"interior"`
}

// String describes every field, built or not.
func (h *House) String() string {
	return fmt.Sprintf("House (basement: %s, structure: %s, roof: %s, interior: %s)",
		h.Basement, h.Structure, h.Roof, h.Interior)
}
