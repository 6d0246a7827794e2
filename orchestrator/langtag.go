package orchestrator

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// LanguageIdentifier identifies the language of a single utterance. An error
// means this utterance could not be classified; it never aborts a run.
type LanguageIdentifier interface {
	Identify(ctx context.Context, text string) (string, error)
}

// Tagger produces a normalized language tag per segment. A segment spoken in
// more than one language gets a multi-code tag like "en,hi".
type Tagger struct {
	id LanguageIdentifier
}

func NewTagger(id LanguageIdentifier) *Tagger { return &Tagger{id: id} }

var sentenceSplit = regexp.MustCompile(`[.?!]`)

// Tag splits text on sentence-terminal punctuation, identifies each chunk of
// at least 2 characters, and joins the distinct codes sorted with ",".
// Nil or blank text, and text with no classifiable chunk, tag as "unknown".
// A per-chunk identification failure records "unknown" for that chunk only.
func (t *Tagger) Tag(ctx context.Context, text *string) string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return LangUnknown
	}
	codes := map[string]bool{}
	for _, chunk := range sentenceSplit.Split(*text, -1) {
		chunk = strings.TrimSpace(chunk)
		if utf8.RuneCountInString(chunk) < 2 {
			continue
		}
		code, err := t.id.Identify(ctx, chunk)
		if err != nil || code == "" {
			codes[LangUnknown] = true
			continue
		}
		codes[code] = true
	}
	if len(codes) == 0 {
		return LangUnknown
	}
	out := make([]string, 0, len(codes))
	for c := range codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// SplitTag breaks a stored tag back into its codes, dropping empties.
func SplitTag(tag string) []string {
	var out []string
	for _, c := range strings.Split(tag, ",") {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
