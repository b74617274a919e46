package entity

import "fmt"

// Replacement substitutes every occurrence of an exact literal, no pattern
// syntax involved. Absent replacements remove the matched text.
type Replacement struct {
	Absent bool   `yaml:"absent,omitempty"`
	Old    string `yaml:"old"`
	New    string `yaml:"new,omitempty"`
}

type Patch struct {
	File     string        `yaml:"file"`
	Message  string        `yaml:"message,omitempty"`
	Name     string        `yaml:"name,omitempty"`
	Replace  []Replacement `yaml:"replace"`
	Validate string        `yaml:"validate,omitempty"`
}

func (p Patch) Confirmation() string {
	if p.Message != "" {
		return p.Message
	}
	return fmt.Sprintf("Patched %s", p.File)
}
