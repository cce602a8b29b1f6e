package export

import (
	"fmt"
	"strings"

	"biodesign/internal/design"
	"biodesign/internal/summary"
)

// Report renders a Markdown report for the design. The CLI pipes this
// through glamour for terminal display; the exported file is plain Markdown.
func Report(d *design.Design) string {
	var sb strings.Builder

	sb.WriteString("# Bioprocess Design Report\n\n")
	fmt.Fprintf(&sb, "%s of %s at %s scale.\n\n", d.Config.ProcessType, d.Config.Organism, d.Config.Scale)

	writeSection(&sb, "Process Parameters", summary.Format(d.Config, d.Parameters))
	writeSection(&sb, "Media Design", summary.FormatMedia(d.Media))
	writeSection(&sb, "Process Controls", summary.FormatControls(d.Controls))
	writeSection(&sb, "PAT Strategy", summary.FormatPAT(d.PAT))
	writeSection(&sb, "Safety Alarms", summary.FormatSafety(d.Safety))

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, rows []summary.Row) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("| --- | --- |\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s |\n", r.Label, r.Value)
	}
	sb.WriteString("\n")
}
