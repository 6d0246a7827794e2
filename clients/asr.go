package clients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clinscribe/encounter-pipeline/orchestrator"
)

// TransSeg is one transcribed span in the ASR response.
type TransSeg struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// ASRResp mirrors the ASR service's /transcribe response.
type ASRResp struct {
	Segments []TransSeg `json:"segments"`
	Language string     `json:"language"`
}

// Transcription is the HTTP-backed speech-to-text collaborator.
type Transcription struct {
	h   *HTTP
	url string
}

func NewTranscription(h *HTTP, url string) *Transcription { return &Transcription{h: h, url: url} }

func (t *Transcription) Transcribe(ctx context.Context, audioPath string) ([]orchestrator.Span, error) {
	body, err := t.h.postAudio(ctx, "asr", t.url+"/transcribe", audioPath)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var out ASRResp
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, fmt.Errorf("asr decode: %w", err)
	}
	spans := make([]orchestrator.Span, 0, len(out.Segments))
	for _, s := range out.Segments {
		spans = append(spans, orchestrator.Span{Start: s.Start, End: s.End, Text: s.Text})
	}
	return spans, nil
}
