package clients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clinscribe/encounter-pipeline/orchestrator"
)

// DiarizeResp mirrors the diarization service's /diarize response.
type DiarizeResp struct {
	Turns []struct {
		Speaker string  `json:"speaker"`
		Start   float64 `json:"start"`
		End     float64 `json:"end"`
	} `json:"turns"`
}

// Diarization is the HTTP-backed diarization collaborator.
type Diarization struct {
	h   *HTTP
	url string
}

func NewDiarization(h *HTTP, url string) *Diarization { return &Diarization{h: h, url: url} }

func (d *Diarization) Diarize(ctx context.Context, audioPath string) ([]orchestrator.Turn, error) {
	body, err := d.h.postAudio(ctx, "diarize", d.url+"/diarize", audioPath)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var out DiarizeResp
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, fmt.Errorf("diarize decode: %w", err)
	}
	turns := make([]orchestrator.Turn, 0, len(out.Turns))
	for _, t := range out.Turns {
		turns = append(turns, orchestrator.Turn{Speaker: t.Speaker, Start: t.Start, End: t.End})
	}
	return turns, nil
}
