package orchestrator

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeDiarizer struct {
	turns []Turn
	err   error
}

func (f fakeDiarizer) Diarize(context.Context, string) ([]Turn, error) { return f.turns, f.err }

type fakeTranscriber struct {
	spans []Span
	err   error
}

func (f fakeTranscriber) Transcribe(context.Context, string) ([]Span, error) { return f.spans, f.err }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testPipeline(d Diarizer, tr Transcriber, id LanguageIdentifier) *Pipeline {
	return NewPipeline(d, tr, id, NewKeywordScorer(DefaultLexicon()), quietLogger())
}

func TestRunAnnotatesEncounter(t *testing.T) {
	d := fakeDiarizer{turns: []Turn{
		{Speaker: "SPEAKER_00", Start: 0, End: 4},
		{Speaker: "SPEAKER_01", Start: 4, End: 9},
		{Speaker: "SPEAKER_01", Start: 9, End: 12},
		{Speaker: "SPEAKER_00", Start: 12, End: 13},
	}}
	tr := fakeTranscriber{spans: []Span{
		{Text: "How long have you had the symptoms? I will examine you."},
		{Text: "I have had a fever and cough since Monday."},
		{Text: "Hola doctor. Me duele mucho!"},
		// Fourth turn has no transcript: stays nil, tags unknown.
	}}
	id := fakeIdentifier{byWord: map[string]string{
		"how": "en", "i ": "en", "hola": "es", "duele": "es",
	}}

	var snapshotSegs int
	p := testPipeline(d, tr, id)
	p.OnDiarized = func(rec *Record) {
		snapshotSegs = len(rec.Segments)
		if rec.Segments[0].Text != nil {
			t.Error("snapshot must precede transcription")
		}
	}

	rec, err := p.Run(context.Background(), "enc_test", "audio.wav")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if snapshotSegs != 4 {
		t.Errorf("snapshot hook saw %d segments, want 4", snapshotSegs)
	}

	roleOf := map[string]string{}
	for _, sp := range rec.Speakers {
		if sp.Role == nil {
			t.Fatalf("speaker %s left unclassified", sp.ID)
		}
		roleOf[sp.ID] = *sp.Role
	}
	if roleOf["SPEAKER_00"] != RoleClinician {
		t.Errorf("SPEAKER_00: expected clinician, got %s", roleOf["SPEAKER_00"])
	}
	if roleOf["SPEAKER_01"] != RolePatient {
		t.Errorf("SPEAKER_01: expected patient, got %s", roleOf["SPEAKER_01"])
	}

	if len(rec.DetectedLanguages) != 2 || rec.DetectedLanguages[0] != "en" || rec.DetectedLanguages[1] != "es" {
		t.Errorf("expected detectedLanguages [en es], got %v", rec.DetectedLanguages)
	}

	// The untranscribed segment tags as the sentinel and stays out of the
	// detected-language list.
	last := rec.Segments[3]
	if last.Text != nil {
		t.Error("segment beyond transcript must keep nil text")
	}
	if last.Lang == nil || *last.Lang != LangUnknown {
		t.Errorf("untranscribed segment must tag unknown, got %v", last.Lang)
	}
}

func TestRunSilentSpeakerDefaultsToOther(t *testing.T) {
	d := fakeDiarizer{turns: []Turn{
		{Speaker: "A", Start: 0, End: 1},
		{Speaker: "B", Start: 1, End: 2},
	}}
	// Transcript covers only the first turn.
	tr := fakeTranscriber{spans: []Span{{Text: "Check the treatment report."}}}
	p := testPipeline(d, tr, fakeIdentifier{byWord: map[string]string{"check": "en"}})

	rec, err := p.Run(context.Background(), "enc_test", "audio.wav")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, sp := range rec.Speakers {
		if sp.ID != "B" {
			continue
		}
		if *sp.Role != RoleOther || *sp.Confidence != 0.5 {
			t.Errorf("silent speaker must be other/0.5, got %s/%v", *sp.Role, *sp.Confidence)
		}
	}
}

func TestRunPropagatesCollaboratorFailures(t *testing.T) {
	p := testPipeline(fakeDiarizer{err: errors.New("model unavailable")}, fakeTranscriber{}, englishOnly())
	if _, err := p.Run(context.Background(), "enc_test", "audio.wav"); err == nil {
		t.Error("diarization failure must abort the run")
	}

	p = testPipeline(
		fakeDiarizer{turns: []Turn{{Speaker: "A", Start: 0, End: 1}}},
		fakeTranscriber{err: errors.New("asr 500")},
		englishOnly(),
	)
	if _, err := p.Run(context.Background(), "enc_test", "audio.wav"); err == nil {
		t.Error("transcription failure must abort the run")
	}
}

func TestRunEmptyDiarization(t *testing.T) {
	p := testPipeline(fakeDiarizer{}, fakeTranscriber{}, englishOnly())
	rec, err := p.Run(context.Background(), "enc_test", "audio.wav")
	if err != nil {
		t.Fatalf("empty diarization must still produce a record: %v", err)
	}
	if len(rec.Segments) != 0 || len(rec.Speakers) != 0 {
		t.Errorf("expected empty record, got %d segments / %d speakers", len(rec.Segments), len(rec.Speakers))
	}
	if len(rec.DetectedLanguages) != 0 {
		t.Errorf("expected no detected languages, got %v", rec.DetectedLanguages)
	}
}
