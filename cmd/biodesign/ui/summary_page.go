package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/summary"
)

// SummaryPageModel renders the full design summary as a static table.
type SummaryPageModel struct {
	d      *design.Design
	styles Styles
}

// NewSummaryPageModel creates the summary page over the shared design.
func NewSummaryPageModel(d *design.Design, styles Styles) SummaryPageModel {
	return SummaryPageModel{d: d, styles: styles}
}

// Update handles messages; the table is rebuilt on every View.
func (m SummaryPageModel) Update(msg tea.Msg) (SummaryPageModel, tea.Cmd) {
	return m, nil
}

// View renders the summary rows, core parameters first, then the
// supplementary sections.
func (m SummaryPageModel) View() string {
	t := NewSimpleTable("Experiment Summary", "Parameter", "Value")
	for _, r := range summary.Format(m.d.Config, m.d.Parameters) {
		t.AddRow(r.Label, r.Value)
	}
	for _, r := range summary.FormatMedia(m.d.Media) {
		t.AddRow(r.Label, r.Value)
	}
	for _, r := range summary.FormatControls(m.d.Controls) {
		t.AddRow(r.Label, r.Value)
	}
	for _, r := range summary.FormatPAT(m.d.PAT) {
		t.AddRow(r.Label, r.Value)
	}
	for _, r := range summary.FormatSafety(m.d.Safety) {
		t.AddRow(r.Label, r.Value)
	}
	return t.View(m.styles)
}
