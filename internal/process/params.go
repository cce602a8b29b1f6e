// Package process defines the value objects a bioprocess experiment is
// configured from: the operating parameters, the process/organism/scale
// selection, the media recipe, the PID control gains and the safety alarm
// bands. Everything here is validated at construction and immutable after.
package process

import "fmt"

// Parameters holds the operating setpoints for a run.
type Parameters struct {
	TempLow    float64 `yaml:"temp_low"`    // °C
	TempHigh   float64 `yaml:"temp_high"`   // °C
	PHLow      float64 `yaml:"ph_low"`
	PHHigh     float64 `yaml:"ph_high"`
	DOSetpoint float64 `yaml:"do_setpoint"` // % dissolved oxygen
	Agitation  float64 `yaml:"agitation"`   // RPM
	Aeration   float64 `yaml:"aeration"`    // vvm
	Duration   int     `yaml:"duration"`    // hours
}

// DefaultParameters mirrors the original form defaults.
func DefaultParameters() Parameters {
	return Parameters{
		TempLow:    30.0,
		TempHigh:   37.0,
		PHLow:      6.8,
		PHHigh:     7.2,
		DOSetpoint: 40,
		Agitation:  200,
		Aeration:   0.5,
		Duration:   168,
	}
}

// NewParameters validates and returns a Parameters value.
func NewParameters(tempLow, tempHigh, phLow, phHigh, doSetpoint, agitation, aeration float64, duration int) (Parameters, error) {
	p := Parameters{
		TempLow:    tempLow,
		TempHigh:   tempHigh,
		PHLow:      phLow,
		PHHigh:     phHigh,
		DOSetpoint: doSetpoint,
		Agitation:  agitation,
		Aeration:   aeration,
		Duration:   duration,
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks the domain constraints on every field.
func (p Parameters) Validate() error {
	if p.TempLow > p.TempHigh {
		return fmt.Errorf("%w: temperature range low %.1f > high %.1f", ErrInvalidArgument, p.TempLow, p.TempHigh)
	}
	if p.PHLow > p.PHHigh {
		return fmt.Errorf("%w: pH range low %.1f > high %.1f", ErrInvalidArgument, p.PHLow, p.PHHigh)
	}
	if p.DOSetpoint < 0 || p.DOSetpoint > 100 {
		return fmt.Errorf("%w: DO setpoint %.1f%% outside 0-100", ErrInvalidArgument, p.DOSetpoint)
	}
	if p.Agitation <= 0 {
		return fmt.Errorf("%w: agitation speed %.1f RPM must be positive", ErrInvalidArgument, p.Agitation)
	}
	if p.Aeration <= 0 {
		return fmt.Errorf("%w: aeration rate %.2f vvm must be positive", ErrInvalidArgument, p.Aeration)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration %d hours must be positive", ErrInvalidArgument, p.Duration)
	}
	return nil
}
