package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static two-plus column data without interaction.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a table with the given title and headers.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{Title: title, Headers: headers}
}

// AddRow appends a row.
func (t *SimpleTable) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table with the given styles.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	totalWidth := len(t.Headers) - 1
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i] + 2).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(styles.Divider.Render("│"))
		}
		totalWidth += colWidths[i] + 2
	}
	sb.WriteString("\n")
	sb.WriteString(styles.RenderDivider(totalWidth))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(rowStyle.Width(colWidths[i] + 2).Render(cell))
			if i < len(row)-1 && i < len(t.Headers)-1 {
				sb.WriteString(styles.Divider.Render("│"))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
