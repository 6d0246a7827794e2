package orchestrator

// Turn is one raw speaker turn as emitted by the diarization service.
type Turn struct {
	Speaker string  // "SPEAKER_00"...
	Start   float64 // sec
	End     float64 // sec
}

// Span is one raw transcribed span as emitted by the ASR service. Spans are
// aligned to turns by position; Start/End are carried so a temporal-overlap
// alignment can replace the positional one without changing the boundary.
type Span struct {
	Start float64
	End   float64
	Text  string
}

// Roles a speaker can be assigned.
const (
	RoleClinician = "clinician"
	RolePatient   = "patient"
	RoleOther     = "other"
)

// LangUnknown is the sentinel tag for text whose language could not be
// identified. It never enters Record.DetectedLanguages.
const LangUnknown = "unknown"

// Segment is one contiguous speaker turn with its annotations. Text is nil
// when transcription produced nothing for it; Lang is nil until tagged.
type Segment struct {
	ID       string  `json:"id"`
	Speaker  string  `json:"speaker"`
	StartSec float64 `json:"startSec"`
	EndSec   float64 `json:"endSec"`
	Text     *string `json:"text"`
	Lang     *string `json:"lang"`
}

// Speaker is one diarized identity. Role and Confidence stay nil until the
// classification pass.
type Speaker struct {
	ID         string   `json:"id"`
	Role       *string  `json:"role"`
	Confidence *float64 `json:"confidence"`
}

// Record is the annotated result of one run. It is populated in ordered
// passes and must not be mutated after Finalize.
type Record struct {
	EncounterID       string    `json:"encounterId"`
	Speakers          []Speaker `json:"speakers"`
	Segments          []Segment `json:"segments"`
	DetectedLanguages []string  `json:"detectedLanguages"`
	CreatedAt         string    `json:"createdAt"`
}
