package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Language identification (/identify) ---
type identifyReq struct {
	Text string `json:"text"`
}
type identifyResp struct {
	Language string `json:"language"`
}

// LanguageID is the HTTP-backed single-utterance language identifier. Errors
// from Identify are absorbed by the tagger as "unknown", never fatal.
type LanguageID struct {
	h   *HTTP
	url string
}

func NewLanguageID(h *HTTP, url string) *LanguageID { return &LanguageID{h: h, url: url} }

func (l *LanguageID) Identify(ctx context.Context, text string) (string, error) {
	b, _ := json.Marshal(identifyReq{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/identify", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.h.c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("langid %s: %s", resp.Status, string(body))
	}

	var out identifyResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("langid decode: %w", err)
	}
	return out.Language, nil
}
