package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one plotted curve.
type Series struct {
	Name  string
	Unit  string
	Data  []float64
	Style lipgloss.Style
}

const chartGlyph = '•'

// RenderChart plots the series as a fixed-size glyph grid with a left value
// axis and a bottom time axis spanning [0, maxX]. All series share one value
// axis scaled to the largest sample. Later series draw over earlier ones
// where they collide.
func RenderChart(width, height int, maxX float64, series ...Series) string {
	if width < 10 || height < 3 || len(series) == 0 {
		return ""
	}

	maxY := 0.0
	for _, s := range series {
		for _, v := range s.Data {
			if v > maxY {
				maxY = v
			}
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	// grid[row][col] holds the index of the series drawn there, -1 if empty.
	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, width)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}

	for si, s := range series {
		if len(s.Data) < 2 {
			continue
		}
		for col := 0; col < width; col++ {
			idx := col * (len(s.Data) - 1) / (width - 1)
			frac := s.Data[idx] / maxY
			if frac < 0 {
				frac = 0
			}
			if frac > 1 {
				frac = 1
			}
			row := height - 1 - int(frac*float64(height-1)+0.5)
			grid[row][col] = si
		}
	}

	axisWidth := len(fmt.Sprintf("%.1f", maxY)) + 1
	var sb strings.Builder
	for r := 0; r < height; r++ {
		switch r {
		case 0:
			fmt.Fprintf(&sb, "%*s", axisWidth, fmt.Sprintf("%.1f", maxY))
		case height / 2:
			fmt.Fprintf(&sb, "%*s", axisWidth, fmt.Sprintf("%.1f", maxY/2))
		case height - 1:
			fmt.Fprintf(&sb, "%*s", axisWidth, "0.0")
		default:
			sb.WriteString(strings.Repeat(" ", axisWidth))
		}
		sb.WriteString("│")

		run := strings.Builder{}
		last := -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if last >= 0 {
				sb.WriteString(series[last].Style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for c := 0; c < width; c++ {
			si := grid[r][c]
			if si != last {
				flush()
				last = si
			}
			if si < 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(chartGlyph)
			}
		}
		flush()
		sb.WriteString("\n")
	}

	// Time axis
	sb.WriteString(strings.Repeat(" ", axisWidth))
	sb.WriteString("└")
	sb.WriteString(strings.Repeat("─", width))
	sb.WriteString("\n")
	endLabel := fmt.Sprintf("%.0f h", maxX)
	pad := width - len(endLabel) - 1
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", axisWidth))
	sb.WriteString(" 0")
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(endLabel)
	sb.WriteString("\n")

	return sb.String()
}

// RenderLegend renders the series legend on one line.
func RenderLegend(series ...Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		label := s.Name
		if s.Unit != "" {
			label += " (" + s.Unit + ")"
		}
		parts = append(parts, s.Style.Render(string(chartGlyph))+" "+label)
	}
	return strings.Join(parts, "   ")
}
