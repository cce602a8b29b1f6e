package process

import "fmt"

// ProcessType identifies the cultivation mode.
type ProcessType string

const (
	Batch      ProcessType = "Batch Culture"
	FedBatch   ProcessType = "Fed-batch Culture"
	Continuous ProcessType = "Continuous Culture"
	Perfusion  ProcessType = "Perfusion Culture"
)

// ProcessTypes lists the selectable cultivation modes in display order.
func ProcessTypes() []ProcessType {
	return []ProcessType{Batch, FedBatch, Continuous, Perfusion}
}

// Scale identifies the vessel scale bracket.
type Scale string

const (
	Laboratory Scale = "Laboratory (1-10L)"
	Pilot      Scale = "Pilot (10-100L)"
	Production Scale = "Production (>100L)"
)

// Scales lists the selectable scales from smallest to largest.
func Scales() []Scale {
	return []Scale{Laboratory, Pilot, Production}
}

// Organisms lists the canonical organism choices. Organism is a free string,
// so anything outside this list is also accepted.
func Organisms() []string {
	return []string{"CHO Cells", "E. coli", "Pichia pastoris", "S. cerevisiae", "HEK293", "Hybridoma"}
}

// Config selects what is being cultivated and how.
type Config struct {
	ProcessType ProcessType `yaml:"process_type"`
	Organism    string      `yaml:"organism"`
	Scale       Scale       `yaml:"scale"`
}

// DefaultConfig returns the original form defaults.
func DefaultConfig() Config {
	return Config{
		ProcessType: Batch,
		Organism:    "CHO Cells",
		Scale:       Laboratory,
	}
}

// Validate checks the enum fields and requires a non-empty organism.
func (c Config) Validate() error {
	switch c.ProcessType {
	case Batch, FedBatch, Continuous, Perfusion:
	default:
		return fmt.Errorf("%w: unknown process type %q", ErrInvalidArgument, c.ProcessType)
	}
	switch c.Scale {
	case Laboratory, Pilot, Production:
	default:
		return fmt.Errorf("%w: unknown scale %q", ErrInvalidArgument, c.Scale)
	}
	if c.Organism == "" {
		return fmt.Errorf("%w: organism must not be empty", ErrInvalidArgument)
	}
	return nil
}
