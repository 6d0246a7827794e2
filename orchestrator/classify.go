package orchestrator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Verdict is the outcome of scoring one speaker.
type Verdict struct {
	Role       string
	Confidence float64
}

// Scorer turns aggregated per-speaker features into a role verdict.
// Implementations must be pure: same features, same verdict, regardless of
// the order speakers are processed in.
type Scorer interface {
	Score(f SpeakerFeatures) Verdict
}

// Lexicon holds the marker phrases the keyword scorer matches against a
// speaker's aggregated text. Markers are matched lowercase as substrings.
type Lexicon struct {
	ClinicianMarkers []string `yaml:"clinician_markers"`
	PatientMarkers   []string `yaml:"patient_markers"`
}

// DefaultLexicon returns the built-in clinical marker sets.
func DefaultLexicon() Lexicon {
	return Lexicon{
		ClinicianMarkers: []string{"how long", "symptoms", "report", "examine", "check", "prescribe", "treatment"},
		PatientMarkers:   []string{"pain", "fever", "since", "problem", "hurt", "ache", "cough", "medicine"},
	}
}

// LoadLexicon reads a marker lexicon from a YAML file.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if len(lex.ClinicianMarkers) == 0 || len(lex.PatientMarkers) == 0 {
		return Lexicon{}, fmt.Errorf("lexicon %s: both marker sets must be non-empty", path)
	}
	return lex, nil
}

// KeywordScorer scores speakers by marker presence plus two language-tag
// signals: "en" occurrences lean clinician, tag separators (a proxy for
// code-switching frequency) lean patient. Confidence is the winning score
// over the word count, a signal-density value rather than a probability; it
// can exceed 1 for short keyword-dense speech and is kept as-is.
type KeywordScorer struct {
	lex Lexicon
}

func NewKeywordScorer(lex Lexicon) *KeywordScorer { return &KeywordScorer{lex: lex} }

func (k *KeywordScorer) Score(f SpeakerFeatures) Verdict {
	clin := markerHits(f.Text, k.lex.ClinicianMarkers)
	pat := markerHits(f.Text, k.lex.PatientMarkers)

	totalClin := float64(clin) + 0.5*float64(strings.Count(f.Langs, "en"))
	totalPat := float64(pat) + 0.5*float64(strings.Count(f.Langs, ","))

	words := len(strings.Fields(f.Text))
	if words < 1 {
		words = 1
	}
	switch {
	case totalClin > totalPat:
		return Verdict{Role: RoleClinician, Confidence: round2(totalClin / float64(words))}
	case totalPat > totalClin:
		return Verdict{Role: RolePatient, Confidence: round2(totalPat / float64(words))}
	default:
		return Verdict{Role: RoleOther, Confidence: 0.5}
	}
}

// markerHits counts markers present as substrings; each marker contributes at
// most 1 regardless of how often it occurs.
func markerHits(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}
