package orchestrator

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Diarizer partitions an audio file into speaker turns in non-decreasing
// start-time order.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath string) ([]Turn, error)
}

// Transcriber converts an audio file into transcribed spans, positionally
// aligned with the diarization turns.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) ([]Span, error)
}

// Pipeline runs the full annotation sequence for one audio file. The
// collaborator handles are expensive process-wide services injected once at
// startup; the pipeline itself holds no per-run state, so one instance can
// serve many runs as long as each run gets its own Record.
type Pipeline struct {
	diarizer    Diarizer
	transcriber Transcriber
	tagger      *Tagger
	scorer      Scorer
	log         *logrus.Logger

	// OnDiarized, when set, receives the record right after the diarization
	// pass, before any text exists. Used to persist the initial snapshot;
	// best-effort, so it returns nothing.
	OnDiarized func(*Record)
}

func NewPipeline(d Diarizer, t Transcriber, id LanguageIdentifier, s Scorer, log *logrus.Logger) *Pipeline {
	return &Pipeline{diarizer: d, transcriber: t, tagger: NewTagger(id), scorer: s, log: log}
}

// Run executes the ordered passes: diarize, transcribe, tag languages,
// classify speakers, finalize. Each pass fully consumes its input before the
// next begins; per-item upstream gaps are absorbed as unset fields and
// resolved by later passes (untagged text becomes "unknown", silent speakers
// classify as "other").
func (p *Pipeline) Run(ctx context.Context, encounterID, audioPath string) (*Record, error) {
	turns, err := p.diarizer.Diarize(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("diarization: %w", err)
	}
	rec := NewRecord(encounterID, turns)
	p.log.WithFields(logrus.Fields{
		"encounter": encounterID,
		"segments":  len(rec.Segments),
		"speakers":  len(rec.Speakers),
	}).Info("diarization complete")
	if p.OnDiarized != nil {
		p.OnDiarized(rec)
	}

	spans, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcription: %w", err)
	}
	rec.ApplyTranscript(spans)
	if len(spans) < len(rec.Segments) {
		p.log.WithFields(logrus.Fields{
			"turns": len(rec.Segments),
			"spans": len(spans),
		}).Warn("transcript shorter than diarization; trailing segments keep no text")
	}

	p.tagLanguages(ctx, rec)
	p.classifySpeakers(rec)

	if err := rec.Finalize(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	p.log.WithField("languages", rec.DetectedLanguages).Info("record assembled")
	return rec, nil
}

// tagLanguages fills every segment's lang tag and derives the record's
// detected-language list: the union of non-"unknown" codes, sorted, deduped.
func (p *Pipeline) tagLanguages(ctx context.Context, rec *Record) {
	langs := map[string]bool{}
	for i := range rec.Segments {
		tag := p.tagger.Tag(ctx, rec.Segments[i].Text)
		rec.Segments[i].Lang = &tag
		for _, code := range SplitTag(tag) {
			if code != LangUnknown {
				langs[code] = true
			}
		}
	}
	detected := make([]string, 0, len(langs))
	for l := range langs {
		detected = append(detected, l)
	}
	sort.Strings(detected)
	rec.DetectedLanguages = detected
}

// classifySpeakers scores each speaker independently from its aggregated
// features; processing order does not affect the outcome.
func (p *Pipeline) classifySpeakers(rec *Record) {
	for i := range rec.Speakers {
		feats := AggregateSpeaker(rec.Segments, rec.Speakers[i].ID)
		v := p.scorer.Score(feats)
		role, conf := v.Role, v.Confidence
		rec.Speakers[i].Role = &role
		rec.Speakers[i].Confidence = &conf
		p.log.WithFields(logrus.Fields{
			"speaker":    rec.Speakers[i].ID,
			"role":       role,
			"confidence": conf,
		}).Debug("speaker classified")
	}
}
