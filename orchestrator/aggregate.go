package orchestrator

import "strings"

// SpeakerFeatures are the only inputs the role classifier sees for one
// speaker: lowercased text joined with spaces, and the raw lang tags joined
// with "," (unset tags as empty strings), both in segment order.
type SpeakerFeatures struct {
	Text  string
	Langs string
}

// AggregateSpeaker derives the classification features for one speaker from
// the full segment list.
func AggregateSpeaker(segments []Segment, speakerID string) SpeakerFeatures {
	var texts, langs []string
	for _, s := range segments {
		if s.Speaker != speakerID {
			continue
		}
		if s.Text != nil {
			texts = append(texts, *s.Text)
		}
		if s.Lang != nil {
			langs = append(langs, *s.Lang)
		} else {
			langs = append(langs, "")
		}
	}
	return SpeakerFeatures{
		Text:  strings.ToLower(strings.Join(texts, " ")),
		Langs: strings.Join(langs, ","),
	}
}
