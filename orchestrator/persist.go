package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session is one run's output directory, timestamped under the outputs root.
type Session struct {
	ID  string
	Dir string
}

// NewSession creates <outputsRoot>/<base>_<timestamp> and returns it.
func NewSession(outputsRoot, base string) (*Session, error) {
	ts := time.Now().Format("20060102-150405")
	sid := base + "_" + ts
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Session{ID: sid, Dir: dir}, nil
}

// Path resolves an artifact name inside the session directory.
func (s *Session) Path(name string) string { return filepath.Join(s.Dir, name) }

// WriteJSON persists v as indented JSON under the session directory. The
// write is atomic (temp file + rename) so a failed run never leaves a partial
// document under the final name.
func (s *Session) WriteJSON(name string, v any) error {
	tmp, err := os.CreateTemp(s.Dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	tmp = nil
	if err := os.Rename(tmpPath, s.Path(name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// LoadRecord reads a persisted Record back from disk.
func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	return &rec, nil
}
