package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/profile"
)

// ProfilePageModel renders the computed profile curves as a terminal chart.
type ProfilePageModel struct {
	curves *profile.Curves
	styles Styles
	width  int
	height int
}

// NewProfilePageModel creates the chart page.
func NewProfilePageModel(styles Styles) ProfilePageModel {
	return ProfilePageModel{styles: styles, width: 80, height: 24}
}

// SetSize updates the drawing area.
func (m *ProfilePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetCurves swaps in freshly computed curves.
func (m *ProfilePageModel) SetCurves(c *profile.Curves) {
	m.curves = c
}

// Update handles messages. The chart itself is static between recomputes.
func (m ProfilePageModel) Update(msg tea.Msg) (ProfilePageModel, tea.Cmd) {
	return m, nil
}

// View renders the chart with legend and headline figures.
func (m ProfilePageModel) View() string {
	title := m.styles.Title.Render("Process Profile")
	if m.curves == nil || m.curves.Len() == 0 {
		return title + "\n" + m.styles.Muted.Render("No curves computed yet. Press ctrl+r to compute.")
	}

	series := []Series{
		{Name: "Biomass", Unit: "g/L", Data: m.curves.Biomass, Style: m.styles.Biomass},
		{Name: "Substrate", Unit: "g/L", Data: m.curves.Substrate, Style: m.styles.Substrate},
		{Name: "Product", Unit: "g/L", Data: m.curves.Product, Style: m.styles.Product},
	}

	chartWidth := m.width - 12
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := m.height - 8
	if chartHeight < 6 {
		chartHeight = 6
	}

	n := m.curves.Len()
	duration := m.curves.Time[n-1]
	headline := fmt.Sprintf("final biomass %.2f g/L   final product %.2f g/L   %d samples over %.0f h",
		m.curves.Biomass[n-1], m.curves.Product[n-1], n, duration)

	return title + "\n" +
		RenderChart(chartWidth, chartHeight, duration, series...) + "\n" +
		RenderLegend(series...) + "\n" +
		m.styles.Muted.Render(headline)
}
