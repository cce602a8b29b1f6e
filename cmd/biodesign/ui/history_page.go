package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/history"
)

// HistoryPageModel lists the runs recorded this session.
type HistoryPageModel struct {
	table  table.Model
	store  *history.Store
	styles Styles
	count  int
}

// NewHistoryPageModel creates the history page over the session store.
func NewHistoryPageModel(store *history.Store, styles Styles) HistoryPageModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 10},
			{Title: "Process", Width: 20},
			{Title: "Organism", Width: 16},
			{Title: "Duration", Width: 10},
			{Title: "Biomass", Width: 10},
			{Title: "Product", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return HistoryPageModel{table: t, store: store, styles: styles}
}

// Refresh reloads the table rows from the store.
func (m *HistoryPageModel) Refresh() error {
	runs, err := m.store.List()
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.CreatedAt.Local().Format("15:04:05"),
			r.ProcessType,
			r.Organism,
			fmt.Sprintf("%d h", r.Duration),
			fmt.Sprintf("%.2f g/L", r.FinalBiomass),
			fmt.Sprintf("%.2f g/L", r.FinalProduct),
		})
	}
	m.table.SetRows(rows)
	m.count = len(rows)
	return nil
}

// Clear empties the session history.
func (m *HistoryPageModel) Clear() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	return m.Refresh()
}

// Update handles table navigation.
func (m HistoryPageModel) Update(msg tea.Msg) (HistoryPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the page.
func (m HistoryPageModel) View() string {
	title := m.styles.Title.Render("Run History (this session)")
	if m.count == 0 {
		return title + "\n" + m.styles.Muted.Render("No runs recorded yet. Press ctrl+r on a form page to compute and record one.")
	}
	help := m.styles.Muted.Render("x clears the session history")
	return title + "\n" + m.table.View() + "\n" + help
}
