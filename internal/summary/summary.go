// Package summary flattens a process design into ordered label/value rows
// for table display and CSV export. Formatting only; all validation happens
// when the process values are constructed.
package summary

import (
	"fmt"
	"strings"

	"biodesign/internal/process"
)

// Row is one line of the summary table.
type Row struct {
	Label string
	Value string
}

// Format produces the canonical parameter summary. The row order is fixed
// and part of the export contract; identical inputs always yield
// byte-identical rows.
func Format(cfg process.Config, p process.Parameters) []Row {
	return []Row{
		{"Process Type", string(cfg.ProcessType)},
		{"Organism", cfg.Organism},
		{"Scale", string(cfg.Scale)},
		{"Temperature Range", fmt.Sprintf("%.1f-%.1f°C", p.TempLow, p.TempHigh)},
		{"pH Range", fmt.Sprintf("%.1f-%.1f", p.PHLow, p.PHHigh)},
		{"DO Setpoint", fmt.Sprintf("%g%%", p.DOSetpoint)},
		{"Agitation Speed", fmt.Sprintf("%g RPM", p.Agitation)},
		{"Aeration Rate", fmt.Sprintf("%g vvm", p.Aeration)},
		{"Duration", fmt.Sprintf("%d hours", p.Duration)},
	}
}

// FormatMedia appends the media recipe rows.
func FormatMedia(m process.Media) []Row {
	supplements := "None"
	if s := m.Supplements(); len(s) > 0 {
		supplements = strings.Join(s, ", ")
	}
	return []Row{
		{"Base Media", m.BaseMedia},
		{"Glucose", fmt.Sprintf("%g g/L", m.Glucose)},
		{"Glutamine", fmt.Sprintf("%g g/L", m.Glutamine)},
		{"Supplements", supplements},
	}
}

// FormatControls appends the PID gain rows.
func FormatControls(c process.Controls) []Row {
	gains := func(g process.PIDGains) string {
		return fmt.Sprintf("Kp=%g Ki=%g Kd=%g", g.Kp, g.Ki, g.Kd)
	}
	return []Row{
		{"Temperature PID", gains(c.Temperature)},
		{"pH PID", gains(c.PH)},
		{"DO PID", gains(c.DO)},
	}
}

// FormatPAT appends the monitoring strategy rows.
func FormatPAT(p process.PAT) []Row {
	monitors := "None"
	if m := p.Monitors(); len(m) > 0 {
		monitors = strings.Join(m, ", ")
	}
	return []Row{
		{"Online Monitors", monitors},
		{"Sampling Interval", fmt.Sprintf("%g hours", p.SamplingInterval)},
		{"Sample Volume", fmt.Sprintf("%g mL", p.SampleVolume)},
	}
}

// FormatSafety appends the alarm band rows.
func FormatSafety(s process.Safety) []Row {
	if !s.Enabled {
		return []Row{{"Safety Alarms", "Disabled"}}
	}
	return []Row{
		{"Temperature Alarms", fmt.Sprintf("%.1f-%.1f°C", s.TempLowAlarm, s.TempHighAlarm)},
		{"pH Alarms", fmt.Sprintf("%.1f-%.1f", s.PHLowAlarm, s.PHHighAlarm)},
		{"DO Low Alarm", fmt.Sprintf("%g%%", s.DOLowAlarm)},
		{"Pressure High Alarm", fmt.Sprintf("%g bar", s.PressureHigh)},
	}
}
