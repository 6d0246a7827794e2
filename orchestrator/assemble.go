package orchestrator

import (
	"fmt"
	"sort"
	"strings"
)

// Finalize is the consistency checkpoint between annotation and rendering.
// It verifies every field the persisted JSON contract requires is present,
// so a malformed run fails here instead of emitting partial output. After a
// nil return the record is read-only.
func (r *Record) Finalize() error {
	if r.EncounterID == "" {
		return fmt.Errorf("record: missing encounterId")
	}
	if r.CreatedAt == "" || !strings.HasSuffix(r.CreatedAt, "Z") {
		return fmt.Errorf("record: createdAt must be a UTC timestamp ending in Z, got %q", r.CreatedAt)
	}
	inSegments := map[string]bool{}
	for i, s := range r.Segments {
		if s.ID == "" || s.Speaker == "" {
			return fmt.Errorf("segment %d: missing id or speaker", i)
		}
		if s.Lang == nil {
			return fmt.Errorf("segment %s: language tag never computed", s.ID)
		}
		inSegments[s.Speaker] = true
	}
	declared := map[string]bool{}
	for _, sp := range r.Speakers {
		if declared[sp.ID] {
			return fmt.Errorf("speaker %s: declared twice", sp.ID)
		}
		declared[sp.ID] = true
		if sp.Role == nil || sp.Confidence == nil {
			return fmt.Errorf("speaker %s: not classified", sp.ID)
		}
		switch *sp.Role {
		case RoleClinician, RolePatient, RoleOther:
		default:
			return fmt.Errorf("speaker %s: unknown role %q", sp.ID, *sp.Role)
		}
		if !inSegments[sp.ID] {
			return fmt.Errorf("speaker %s: no segments reference it", sp.ID)
		}
	}
	for id := range inSegments {
		if !declared[id] {
			return fmt.Errorf("speaker %s: referenced by segments but never declared", id)
		}
	}
	if !sort.StringsAreSorted(r.DetectedLanguages) {
		return fmt.Errorf("detectedLanguages not sorted: %v", r.DetectedLanguages)
	}
	for i, l := range r.DetectedLanguages {
		if l == LangUnknown {
			return fmt.Errorf("detectedLanguages contains the %q sentinel", LangUnknown)
		}
		if i > 0 && l == r.DetectedLanguages[i-1] {
			return fmt.Errorf("detectedLanguages contains duplicate %q", l)
		}
	}
	return nil
}
