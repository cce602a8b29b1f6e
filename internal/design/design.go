// Package design aggregates a full experiment design document: the process
// configuration, operating parameters, media recipe, control gains and
// safety alarms. The document round-trips through YAML and is the unit the
// CLI loads, validates, exports and watches.
package design

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"biodesign/internal/process"
)

// DefaultFileName is the design document the CLI looks for when -f is not
// given.
const DefaultFileName = "design.yaml"

// Design is a complete experiment design document.
type Design struct {
	Config     process.Config     `yaml:"process"`
	Parameters process.Parameters `yaml:"parameters"`
	Media      process.Media      `yaml:"media"`
	Controls   process.Controls   `yaml:"controls"`
	PAT        process.PAT        `yaml:"pat"`
	Safety     process.Safety     `yaml:"safety"`
}

// Default returns the design the dashboard starts from, matching the
// original form defaults.
func Default() *Design {
	return &Design{
		Config:     process.DefaultConfig(),
		Parameters: process.DefaultParameters(),
		Media:      process.DefaultMedia(),
		Controls:   process.DefaultControls(),
		PAT:        process.DefaultPAT(),
		Safety:     process.DefaultSafety(),
	}
}

// Validate runs every section's validation plus the cross-section check
// that the safety bands cover the operating setpoints.
func (d *Design) Validate() error {
	if err := d.Config.Validate(); err != nil {
		return err
	}
	if err := d.Parameters.Validate(); err != nil {
		return err
	}
	if err := d.Media.Validate(); err != nil {
		return err
	}
	if err := d.Controls.Validate(); err != nil {
		return err
	}
	if err := d.PAT.Validate(); err != nil {
		return err
	}
	if err := d.Safety.Validate(); err != nil {
		return err
	}
	return d.Safety.Covers(d.Parameters)
}

// Load reads and validates a design document from a YAML file.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design: %w", err)
	}

	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse design: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes the design document as YAML, creating parent directories as
// needed.
func (d *Design) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create design directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write design: %w", err)
	}
	return nil
}

// Marshal returns the YAML serialization without touching the filesystem.
// Used by the run history to snapshot a design.
func (d *Design) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Unmarshal parses a YAML snapshot produced by Marshal.
func Unmarshal(data []byte) (*Design, error) {
	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse design snapshot: %w", err)
	}
	return d, nil
}
