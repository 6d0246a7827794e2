package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clinscribe/encounter-pipeline/orchestrator"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	roleStyles = map[string]lipgloss.Style{
		orchestrator.RoleClinician: lipgloss.NewStyle().Foreground(lipgloss.Color("#1f77b4")),
		orchestrator.RolePatient:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7f0e")),
		orchestrator.RoleOther:     dimStyle,
	}
)

// ConsoleSummary renders the post-run summary: headline metrics, the
// per-speaker role table, and the artifact paths that actually exist on
// disk. Artifacts that are missing are left out rather than reported as
// errors.
func ConsoleSummary(rec *orchestrator.Record, artifacts []string) string {
	duration := 0.0
	if n := len(rec.Segments); n > 0 {
		duration = rec.Segments[n-1].EndSec
	}
	langs := strings.Join(rec.DetectedLanguages, ", ")
	if langs == "" {
		langs = orchestrator.LangUnknown
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Encounter "+rec.EncounterID) + "\n")
	fmt.Fprintf(&b, "%s %d   %s %.1fs   %s %s\n",
		labelStyle.Render("speakers"), len(rec.Speakers),
		labelStyle.Render("duration"), duration,
		labelStyle.Render("languages"), langs)

	var rows []string
	for _, sp := range rec.Speakers {
		role, conf := orchestrator.RoleOther, 0.0
		if sp.Role != nil {
			role = *sp.Role
		}
		if sp.Confidence != nil {
			conf = *sp.Confidence
		}
		style, ok := roleStyles[role]
		if !ok {
			style = dimStyle
		}
		rows = append(rows, fmt.Sprintf("%-12s %s %.2f", sp.ID, style.Render(fmt.Sprintf("%-9s", role)), conf))
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")) + "\n")

	for _, a := range artifacts {
		if _, err := os.Stat(a); err != nil {
			continue // artifact missing: skip its presentation
		}
		b.WriteString(dimStyle.Render("→ "+a) + "\n")
	}
	return b.String()
}
