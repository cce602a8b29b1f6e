package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

// SafetyPageModel edits the alarm bands.
type SafetyPageModel struct {
	form   Form
	styles Styles
}

const (
	fldAlarmsEnabled = iota
	fldTempLowAlarm
	fldTempHighAlarm
	fldPHLowAlarm
	fldPHHighAlarm
	fldDOLowAlarm
	fldPressureHigh
)

// NewSafetyPageModel builds the page from the current design.
func NewSafetyPageModel(d *design.Design, styles Styles) SafetyPageModel {
	s := d.Safety
	form := NewForm(styles,
		NewToggleField("Alarms Enabled", s.Enabled),
		NewInputField("Temperature Low Alarm", "°C", formatFloat(s.TempLowAlarm)),
		NewInputField("Temperature High Alarm", "°C", formatFloat(s.TempHighAlarm)),
		NewInputField("pH Low Alarm", "", formatFloat(s.PHLowAlarm)),
		NewInputField("pH High Alarm", "", formatFloat(s.PHHighAlarm)),
		NewInputField("DO Low Alarm", "%", formatFloat(s.DOLowAlarm)),
		NewInputField("Pressure High Alarm", "bar", formatFloat(s.PressureHigh)),
	)
	return SafetyPageModel{form: form, styles: styles}
}

// Update handles key messages.
func (m SafetyPageModel) Update(msg tea.Msg) (SafetyPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// Apply parses the form into the design. The cross-check that the alarm
// bands cover the operating parameters runs here too, so a safety edit that
// strands the setpoints is caught immediately.
func (m *SafetyPageModel) Apply(d *design.Design) error {
	var vals [6]float64
	for i := 0; i < 6; i++ {
		v, err := m.form.Field(i + 1).Float()
		if err != nil {
			return err
		}
		vals[i] = v
	}

	safety := process.Safety{
		Enabled:       m.form.Field(fldAlarmsEnabled).On(),
		TempLowAlarm:  vals[0],
		TempHighAlarm: vals[1],
		PHLowAlarm:    vals[2],
		PHHighAlarm:   vals[3],
		DOLowAlarm:    vals[4],
		PressureHigh:  vals[5],
	}
	if err := safety.Validate(); err != nil {
		return err
	}
	if err := safety.Covers(d.Parameters); err != nil {
		return err
	}
	d.Safety = safety
	return nil
}

// View renders the page.
func (m SafetyPageModel) View() string {
	return m.styles.Title.Render("Safety Alarms") + "\n" + m.form.View()
}
