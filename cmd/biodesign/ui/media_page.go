package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

// MediaPageModel edits the media recipe.
type MediaPageModel struct {
	form   Form
	styles Styles
}

const (
	fldGlucose = iota
	fldGlutamine
	fldBaseMedia
	fldYeastExtract
	fldPeptone
	fldTraceElements
	fldVitamins
	fldAntifoam
)

// NewMediaPageModel builds the page from the current design.
func NewMediaPageModel(d *design.Design, styles Styles) MediaPageModel {
	m := d.Media
	form := NewForm(styles,
		NewInputField("Glucose", "g/L", formatFloat(m.Glucose)),
		NewInputField("Glutamine", "g/L", formatFloat(m.Glutamine)),
		NewSelectField("Base Media", process.BaseMediaChoices(), m.BaseMedia),
		NewToggleField("Yeast Extract", m.YeastExtract),
		NewToggleField("Peptone", m.Peptone),
		NewToggleField("Trace Elements", m.TraceElements),
		NewToggleField("Vitamins", m.Vitamins),
		NewToggleField("Antifoam", m.Antifoam),
	)
	return MediaPageModel{form: form, styles: styles}
}

// Update handles key messages.
func (m MediaPageModel) Update(msg tea.Msg) (MediaPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// Apply parses the form into the design.
func (m *MediaPageModel) Apply(d *design.Design) error {
	glucose, err := m.form.Field(fldGlucose).Float()
	if err != nil {
		return err
	}
	glutamine, err := m.form.Field(fldGlutamine).Float()
	if err != nil {
		return err
	}

	media := process.Media{
		Glucose:       glucose,
		Glutamine:     glutamine,
		BaseMedia:     m.form.Field(fldBaseMedia).Value(),
		YeastExtract:  m.form.Field(fldYeastExtract).On(),
		Peptone:       m.form.Field(fldPeptone).On(),
		TraceElements: m.form.Field(fldTraceElements).On(),
		Vitamins:      m.form.Field(fldVitamins).On(),
		Antifoam:      m.form.Field(fldAntifoam).On(),
	}
	if err := media.Validate(); err != nil {
		return err
	}
	d.Media = media
	return nil
}

// View renders the page.
func (m MediaPageModel) View() string {
	return m.styles.Title.Render("Media Design") + "\n" + m.form.View()
}
