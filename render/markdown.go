// Package render turns a finalized Record into its presentation artifacts.
// Renderers are read-only over the record; none of them computes anything
// the annotation passes have not already decided.
package render

import (
	"fmt"
	"strings"

	"github.com/clinscribe/encounter-pipeline/orchestrator"
)

// Markdown renders the transcript document: a header with run metadata, the
// speaker/role table, then one line per segment with its time range and text.
func Markdown(rec *orchestrator.Record) string {
	var b strings.Builder
	b.WriteString("# Conversation Transcript\n\n")
	fmt.Fprintf(&b, "- Encounter: `%s`\n", rec.EncounterID)
	fmt.Fprintf(&b, "- Created: %s\n", rec.CreatedAt)
	if len(rec.DetectedLanguages) > 0 {
		fmt.Fprintf(&b, "- Languages: %s\n", strings.Join(rec.DetectedLanguages, ", "))
	}
	b.WriteString("\n## Speakers\n\n")
	b.WriteString("| Speaker | Role | Confidence |\n|---|---|---|\n")
	for _, sp := range rec.Speakers {
		fmt.Fprintf(&b, "| %s | %s | %.2f |\n", sp.ID, deref(sp.Role), derefF(sp.Confidence))
	}
	b.WriteString("\n---\n\n")
	for _, s := range rec.Segments {
		text := ""
		if s.Text != nil {
			text = *s.Text
		}
		fmt.Fprintf(&b, "**%s** [%.2fs - %.2fs]: %s\n\n", s.Speaker, s.StartSec, s.EndSec, text)
	}
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefF(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
