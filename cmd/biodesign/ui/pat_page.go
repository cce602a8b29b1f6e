package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

// PATPageModel edits the monitoring strategy and sampling plan.
type PATPageModel struct {
	form   Form
	styles Styles
}

const (
	fldBiomassProbe = iota
	fldOffgasAnalysis
	fldGlucoseAnalyzer
	fldRaman
	fldHPLC
	fldSamplingInterval
	fldSampleVolume
)

// NewPATPageModel builds the page from the current design.
func NewPATPageModel(d *design.Design, styles Styles) PATPageModel {
	p := d.PAT
	form := NewForm(styles,
		NewToggleField("Biomass Probe", p.BiomassProbe),
		NewToggleField("Offgas Analysis", p.OffgasAnalysis),
		NewToggleField("Glucose Analyzer", p.GlucoseAnalyzer),
		NewToggleField("Raman Spectroscopy", p.Raman),
		NewToggleField("HPLC", p.HPLC),
		NewInputField("Sampling Interval", "hours", formatFloat(p.SamplingInterval)),
		NewInputField("Sample Volume", "mL", formatFloat(p.SampleVolume)),
	)
	return PATPageModel{form: form, styles: styles}
}

// Update handles key messages.
func (m PATPageModel) Update(msg tea.Msg) (PATPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// Apply parses the form into the design.
func (m *PATPageModel) Apply(d *design.Design) error {
	interval, err := m.form.Field(fldSamplingInterval).Float()
	if err != nil {
		return err
	}
	volume, err := m.form.Field(fldSampleVolume).Float()
	if err != nil {
		return err
	}

	pat := process.PAT{
		BiomassProbe:     m.form.Field(fldBiomassProbe).On(),
		OffgasAnalysis:   m.form.Field(fldOffgasAnalysis).On(),
		GlucoseAnalyzer:  m.form.Field(fldGlucoseAnalyzer).On(),
		Raman:            m.form.Field(fldRaman).On(),
		HPLC:             m.form.Field(fldHPLC).On(),
		SamplingInterval: interval,
		SampleVolume:     volume,
	}
	if err := pat.Validate(); err != nil {
		return err
	}
	d.PAT = pat
	return nil
}

// View renders the page.
func (m PATPageModel) View() string {
	return m.styles.Title.Render("PAT Strategy") + "\n" + m.form.View()
}
