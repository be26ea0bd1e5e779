package domain

import "time"

// Selection is a server-held draft of chosen candidates for one
// (region, genre) search, handed between pages by id instead of through
// browser-local state. SelectedIDs is ordered and bounded; membership is
// always a subset of the candidate snapshot (join-table semantics, the
// candidate list stays the source of truth).
type Selection struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	Genre       string    `json:"genre"`
	Candidates  []Spot    `json:"candidates"`
	SelectedIDs []string  `json:"selected_ids"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Candidate returns the candidate spot for an id, or nil.
func (s Selection) Candidate(spotID string) *Spot {
	for i := range s.Candidates {
		if s.Candidates[i].ID == spotID {
			return &s.Candidates[i]
		}
	}
	return nil
}

// SelectedSpots resolves the ordered selection against the candidate
// snapshot. Ids without a matching candidate are skipped.
func (s Selection) SelectedSpots() []Spot {
	spots := make([]Spot, 0, len(s.SelectedIDs))
	for _, id := range s.SelectedIDs {
		if c := s.Candidate(id); c != nil {
			spots = append(spots, *c)
		}
	}
	return spots
}

// ToggleID removes id when present, appends it when absent and the bound
// allows, and otherwise returns the input unchanged. Toggling the same id
// twice restores the original list.
func ToggleID(ids []string, id string, max int) []string {
	for i, existing := range ids {
		if existing == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			out = append(out, ids[i+1:]...)
			return out
		}
	}

	if len(ids) >= max {
		return ids
	}

	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, id)
	return out
}

// MoveID shifts the element at from to position to, sliding the others.
// Membership and size never change; out-of-range indices are a no-op.
func MoveID(ids []string, from, to int) []string {
	if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) || from == to {
		return ids
	}

	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	moved := make([]string, 0, len(ids))
	moved = append(moved, out[:to]...)
	moved = append(moved, ids[from])
	moved = append(moved, out[to:]...)
	return moved
}
