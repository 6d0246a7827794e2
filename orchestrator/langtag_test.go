package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeIdentifier maps keywords to language codes; unmatched text fails.
type fakeIdentifier struct{ byWord map[string]string }

func (f fakeIdentifier) Identify(_ context.Context, text string) (string, error) {
	for w, code := range f.byWord {
		if strings.Contains(strings.ToLower(text), w) {
			return code, nil
		}
	}
	return "", errors.New("not recognized")
}

func englishOnly() fakeIdentifier {
	return fakeIdentifier{byWord: map[string]string{"the": "en", "hello": "en", "how": "en"}}
}

func TestTagNilAndBlankText(t *testing.T) {
	tagger := NewTagger(englishOnly())
	if got := tagger.Tag(context.Background(), nil); got != LangUnknown {
		t.Errorf("nil text: expected %q, got %q", LangUnknown, got)
	}
	if got := tagger.Tag(context.Background(), strPtr("   \t ")); got != LangUnknown {
		t.Errorf("blank text: expected %q, got %q", LangUnknown, got)
	}
}

func TestTagSingleLanguage(t *testing.T) {
	tagger := NewTagger(englishOnly())
	got := tagger.Tag(context.Background(), strPtr("Hello there. How are you?"))
	if got != "en" {
		t.Errorf("expected en, got %q", got)
	}
}

func TestTagCodeSwitching(t *testing.T) {
	tagger := NewTagger(fakeIdentifier{byWord: map[string]string{
		"hello": "en", "hola": "es",
	}})
	got := tagger.Tag(context.Background(), strPtr("Hello doctor. Hola, me duele!"))
	// Distinct codes deduplicated and sorted lexicographically.
	if got != "en,es" {
		t.Errorf("expected multi-code tag en,es, got %q", got)
	}
}

func TestTagIdentifierFailureBecomesUnknown(t *testing.T) {
	tagger := NewTagger(fakeIdentifier{byWord: map[string]string{"hello": "en"}})
	got := tagger.Tag(context.Background(), strPtr("Hello. zzqq xkcd."))
	if got != "en,unknown" {
		t.Errorf("failed chunk must record the sentinel, got %q", got)
	}
}

func TestTagSkipsShortChunks(t *testing.T) {
	tagger := NewTagger(englishOnly())
	// Every chunk trims to fewer than 2 characters: nothing to classify.
	if got := tagger.Tag(context.Background(), strPtr("a. b? !")); got != LangUnknown {
		t.Errorf("expected %q for unclassifiable text, got %q", LangUnknown, got)
	}
}

func TestTagIdempotent(t *testing.T) {
	tagger := NewTagger(fakeIdentifier{byWord: map[string]string{"hello": "en", "hola": "es"}})
	text := strPtr("Hola amigo. Hello again!")
	first := tagger.Tag(context.Background(), text)
	second := tagger.Tag(context.Background(), text)
	if first != second {
		t.Errorf("tagging is not idempotent: %q vs %q", first, second)
	}
}

func TestSplitTag(t *testing.T) {
	got := SplitTag("en,hi")
	if len(got) != 2 || got[0] != "en" || got[1] != "hi" {
		t.Errorf("unexpected split: %v", got)
	}
	if got := SplitTag(""); got != nil {
		t.Errorf("empty tag must split to nothing, got %v", got)
	}
}
