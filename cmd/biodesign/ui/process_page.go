package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

// ProcessPageModel edits the process configuration and operating parameters.
type ProcessPageModel struct {
	form   Form
	styles Styles
}

// Field indices for readback.
const (
	fldProcessType = iota
	fldOrganism
	fldScale
	fldTempLow
	fldTempHigh
	fldPHLow
	fldPHHigh
	fldDO
	fldAgitation
	fldAeration
	fldDuration
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func processTypeOptions() []string {
	types := process.ProcessTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func scaleOptions() []string {
	scales := process.Scales()
	out := make([]string, len(scales))
	for i, s := range scales {
		out[i] = string(s)
	}
	return out
}

// NewProcessPageModel builds the page from the current design.
func NewProcessPageModel(d *design.Design, styles Styles) ProcessPageModel {
	p := d.Parameters
	form := NewForm(styles,
		NewSelectField("Process Type", processTypeOptions(), string(d.Config.ProcessType)),
		NewSelectField("Organism", process.Organisms(), d.Config.Organism),
		NewSelectField("Scale", scaleOptions(), string(d.Config.Scale)),
		NewInputField("Temperature Low", "°C", formatFloat(p.TempLow)),
		NewInputField("Temperature High", "°C", formatFloat(p.TempHigh)),
		NewInputField("pH Low", "", formatFloat(p.PHLow)),
		NewInputField("pH High", "", formatFloat(p.PHHigh)),
		NewInputField("DO Setpoint", "%", formatFloat(p.DOSetpoint)),
		NewInputField("Agitation Speed", "RPM", formatFloat(p.Agitation)),
		NewInputField("Aeration Rate", "vvm", formatFloat(p.Aeration)),
		NewInputField("Duration", "hours", strconv.Itoa(p.Duration)),
	)
	return ProcessPageModel{form: form, styles: styles}
}

// Update handles key messages.
func (m ProcessPageModel) Update(msg tea.Msg) (ProcessPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// Apply parses the form into the design, validating everything.
func (m *ProcessPageModel) Apply(d *design.Design) error {
	cfg := process.Config{
		ProcessType: process.ProcessType(m.form.Field(fldProcessType).Value()),
		Organism:    m.form.Field(fldOrganism).Value(),
		Scale:       process.Scale(m.form.Field(fldScale).Value()),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var floats [7]float64
	for i, idx := range []int{fldTempLow, fldTempHigh, fldPHLow, fldPHHigh, fldDO, fldAgitation, fldAeration} {
		v, err := m.form.Field(idx).Float()
		if err != nil {
			return err
		}
		floats[i] = v
	}
	duration, err := m.form.Field(fldDuration).Int()
	if err != nil {
		return err
	}

	params, err := process.NewParameters(floats[0], floats[1], floats[2], floats[3], floats[4], floats[5], floats[6], duration)
	if err != nil {
		return err
	}

	d.Config = cfg
	d.Parameters = params
	return nil
}

// View renders the page.
func (m ProcessPageModel) View() string {
	return m.styles.Title.Render("Process Configuration") + "\n" + m.form.View()
}
