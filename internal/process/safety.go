package process

import "fmt"

// Safety holds the alarm bands enforced by the (external) controller.
// Alarm bounds are deliberately wider than the operating setpoints.
type Safety struct {
	Enabled bool `yaml:"enabled"`

	TempLowAlarm  float64 `yaml:"temp_low_alarm"`  // °C
	TempHighAlarm float64 `yaml:"temp_high_alarm"` // °C
	PHLowAlarm    float64 `yaml:"ph_low_alarm"`
	PHHighAlarm   float64 `yaml:"ph_high_alarm"`
	DOLowAlarm    float64 `yaml:"do_low_alarm"`    // %
	PressureHigh  float64 `yaml:"pressure_high"`   // bar
}

// DefaultSafety returns alarm bands bracketing the default parameters.
func DefaultSafety() Safety {
	return Safety{
		Enabled:       true,
		TempLowAlarm:  25.0,
		TempHighAlarm: 42.0,
		PHLowAlarm:    6.0,
		PHHighAlarm:   8.0,
		DOLowAlarm:    20.0,
		PressureHigh:  1.5,
	}
}

// Validate checks band ordering and positive pressure limit.
func (s Safety) Validate() error {
	if s.TempLowAlarm >= s.TempHighAlarm {
		return fmt.Errorf("%w: temperature alarm band low %.1f >= high %.1f", ErrInvalidArgument, s.TempLowAlarm, s.TempHighAlarm)
	}
	if s.PHLowAlarm >= s.PHHighAlarm {
		return fmt.Errorf("%w: pH alarm band low %.1f >= high %.1f", ErrInvalidArgument, s.PHLowAlarm, s.PHHighAlarm)
	}
	if s.DOLowAlarm < 0 || s.DOLowAlarm > 100 {
		return fmt.Errorf("%w: DO low alarm %.1f%% outside 0-100", ErrInvalidArgument, s.DOLowAlarm)
	}
	if s.PressureHigh <= 0 {
		return fmt.Errorf("%w: pressure high alarm %.2f bar must be positive", ErrInvalidArgument, s.PressureHigh)
	}
	return nil
}

// Covers reports whether the alarm bands bracket the given operating
// parameters. A design whose setpoints sit outside its own alarm bands
// would trip immediately on start.
func (s Safety) Covers(p Parameters) error {
	if !s.Enabled {
		return nil
	}
	if p.TempLow < s.TempLowAlarm || p.TempHigh > s.TempHighAlarm {
		return fmt.Errorf("%w: temperature range %.1f-%.1f outside alarm band %.1f-%.1f", ErrInvalidArgument, p.TempLow, p.TempHigh, s.TempLowAlarm, s.TempHighAlarm)
	}
	if p.PHLow < s.PHLowAlarm || p.PHHigh > s.PHHighAlarm {
		return fmt.Errorf("%w: pH range %.1f-%.1f outside alarm band %.1f-%.1f", ErrInvalidArgument, p.PHLow, p.PHHigh, s.PHLowAlarm, s.PHHighAlarm)
	}
	if p.DOSetpoint < s.DOLowAlarm {
		return fmt.Errorf("%w: DO setpoint %.1f%% below low alarm %.1f%%", ErrInvalidArgument, p.DOSetpoint, s.DOLowAlarm)
	}
	return nil
}
