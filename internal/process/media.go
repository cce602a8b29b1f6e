package process

import "fmt"

// BaseMedia choices offered by the media designer.
func BaseMediaChoices() []string {
	return []string{"DMEM", "RPMI", "CD CHO", "LB", "TB", "YPD", "Minimal Media", "Custom"}
}

// Media is the media recipe: carbon sources plus optional supplements.
type Media struct {
	Glucose   float64 `yaml:"glucose"`   // g/L
	Glutamine float64 `yaml:"glutamine"` // g/L
	BaseMedia string  `yaml:"base_media"`

	YeastExtract  bool `yaml:"yeast_extract"`
	Peptone       bool `yaml:"peptone"`
	TraceElements bool `yaml:"trace_elements"`
	Vitamins      bool `yaml:"vitamins"`
	Antifoam      bool `yaml:"antifoam"`
}

// DefaultMedia returns the original form defaults (all supplements on).
func DefaultMedia() Media {
	return Media{
		Glucose:       10.0,
		Glutamine:     2.0,
		BaseMedia:     "DMEM",
		YeastExtract:  true,
		Peptone:       true,
		TraceElements: true,
		Vitamins:      true,
		Antifoam:      true,
	}
}

// Supplements returns the names of the enabled supplements in display order.
func (m Media) Supplements() []string {
	var out []string
	for _, s := range []struct {
		name string
		on   bool
	}{
		{"Yeast Extract", m.YeastExtract},
		{"Peptone", m.Peptone},
		{"Trace Elements", m.TraceElements},
		{"Vitamins", m.Vitamins},
		{"Antifoam", m.Antifoam},
	} {
		if s.on {
			out = append(out, s.name)
		}
	}
	return out
}

// Validate checks concentrations are non-negative and a base media is set.
func (m Media) Validate() error {
	if m.Glucose < 0 {
		return fmt.Errorf("%w: glucose %.2f g/L must not be negative", ErrInvalidArgument, m.Glucose)
	}
	if m.Glutamine < 0 {
		return fmt.Errorf("%w: glutamine %.2f g/L must not be negative", ErrInvalidArgument, m.Glutamine)
	}
	if m.BaseMedia == "" {
		return fmt.Errorf("%w: base media must not be empty", ErrInvalidArgument)
	}
	return nil
}
