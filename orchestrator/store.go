package orchestrator

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// NewRecord builds the initial Record from diarization turns: one segment per
// turn in input order, text and lang unset, plus one Speaker per distinct
// label in first-appearance order.
func NewRecord(encounterID string, turns []Turn) *Record {
	rec := &Record{
		EncounterID:       encounterID,
		Segments:          []Segment{},
		Speakers:          []Speaker{},
		DetectedLanguages: []string{},
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	seen := map[string]bool{}
	for i, t := range turns {
		rec.Segments = append(rec.Segments, Segment{
			ID:       fmt.Sprintf("seg_%04d", i+1),
			Speaker:  t.Speaker,
			StartSec: round2(t.Start),
			EndSec:   round2(t.End),
		})
		if !seen[t.Speaker] {
			seen[t.Speaker] = true
			rec.Speakers = append(rec.Speakers, Speaker{ID: t.Speaker})
		}
	}
	return rec
}

// ApplyTranscript fills segment text from ASR spans by position, up to the
// shorter of the two lists. Segments past the end of the transcript keep
// text unset; downstream passes treat that as missing data, not an error.
func (r *Record) ApplyTranscript(spans []Span) {
	n := len(spans)
	if len(r.Segments) < n {
		n = len(r.Segments)
	}
	for i := 0; i < n; i++ {
		text := strings.TrimSpace(spans[i].Text)
		r.Segments[i].Text = &text
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
