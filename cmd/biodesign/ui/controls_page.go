package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

// ControlsPageModel edits the PID gains for the three control loops.
type ControlsPageModel struct {
	form   Form
	styles Styles
}

// NewControlsPageModel builds the page from the current design.
func NewControlsPageModel(d *design.Design, styles Styles) ControlsPageModel {
	c := d.Controls
	form := NewForm(styles,
		NewInputField("Temperature Kp", "", formatFloat(c.Temperature.Kp)),
		NewInputField("Temperature Ki", "", formatFloat(c.Temperature.Ki)),
		NewInputField("Temperature Kd", "", formatFloat(c.Temperature.Kd)),
		NewInputField("pH Kp", "", formatFloat(c.PH.Kp)),
		NewInputField("pH Ki", "", formatFloat(c.PH.Ki)),
		NewInputField("pH Kd", "", formatFloat(c.PH.Kd)),
		NewInputField("DO Kp", "", formatFloat(c.DO.Kp)),
		NewInputField("DO Ki", "", formatFloat(c.DO.Ki)),
		NewInputField("DO Kd", "", formatFloat(c.DO.Kd)),
	)
	return ControlsPageModel{form: form, styles: styles}
}

// Update handles key messages.
func (m ControlsPageModel) Update(msg tea.Msg) (ControlsPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// Apply parses the form into the design.
func (m *ControlsPageModel) Apply(d *design.Design) error {
	var gains [9]float64
	for i := 0; i < 9; i++ {
		v, err := m.form.Field(i).Float()
		if err != nil {
			return err
		}
		gains[i] = v
	}

	controls := process.Controls{
		Temperature: process.PIDGains{Kp: gains[0], Ki: gains[1], Kd: gains[2]},
		PH:          process.PIDGains{Kp: gains[3], Ki: gains[4], Kd: gains[5]},
		DO:          process.PIDGains{Kp: gains[6], Ki: gains[7], Kd: gains[8]},
	}
	if err := controls.Validate(); err != nil {
		return err
	}
	d.Controls = controls
	return nil
}

// View renders the page.
func (m ControlsPageModel) View() string {
	return m.styles.Title.Render("Process Controls (PID)") + "\n" + m.form.View()
}
