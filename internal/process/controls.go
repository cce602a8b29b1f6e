package process

import "fmt"

// PIDGains is one control loop's gain triple.
type PIDGains struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

// Validate requires every gain to be non-negative.
func (g PIDGains) Validate(loop string) error {
	if g.Kp < 0 || g.Ki < 0 || g.Kd < 0 {
		return fmt.Errorf("%w: %s PID gains (%.2f, %.2f, %.2f) must not be negative", ErrInvalidArgument, loop, g.Kp, g.Ki, g.Kd)
	}
	return nil
}

// Controls holds the PID gains for the three regulated loops.
type Controls struct {
	Temperature PIDGains `yaml:"temperature"`
	PH          PIDGains `yaml:"ph"`
	DO          PIDGains `yaml:"do"`
}

// DefaultControls returns the original form defaults.
func DefaultControls() Controls {
	return Controls{
		Temperature: PIDGains{Kp: 2.0, Ki: 0.5, Kd: 0.1},
		PH:          PIDGains{Kp: 1.5, Ki: 0.3, Kd: 0.05},
		DO:          PIDGains{Kp: 2.5, Ki: 0.8, Kd: 0.2},
	}
}

// Validate checks all three loops.
func (c Controls) Validate() error {
	if err := c.Temperature.Validate("temperature"); err != nil {
		return err
	}
	if err := c.PH.Validate("pH"); err != nil {
		return err
	}
	return c.DO.Validate("DO")
}
