package domain

import "fmt"

// Tier is one of the three ranked buckets a rated spot falls into.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
)

// Rating thresholds. Boundary values belong to the higher tier.
const (
	tierSMin = 4.5
	tierAMin = 3.5
)

// ClassifyRating maps a rating to its tier. Total over float64; unrated
// spots must be filtered out before they reach classification.
func ClassifyRating(rating float64) Tier {
	switch {
	case rating >= tierSMin:
		return TierS
	case rating >= tierAMin:
		return TierA
	default:
		return TierB
	}
}

// TierBoard is a partition of rated spots into ordered tier buckets.
// Every rated spot appears in exactly one bucket.
type TierBoard struct {
	S []RatedSpot `json:"S"`
	A []RatedSpot `json:"A"`
	B []RatedSpot `json:"B"`
}

// GroupByTier partitions spots by their classified tier, preserving the
// input's relative order within each bucket.
func GroupByTier(spots []RatedSpot) TierBoard {
	var board TierBoard
	for _, s := range spots {
		switch ClassifyRating(s.Rating) {
		case TierS:
			board.S = append(board.S, s)
		case TierA:
			board.A = append(board.A, s)
		case TierB:
			board.B = append(board.B, s)
		}
	}
	return board
}

// Tier returns the bucket for a label. Unknown labels yield nil.
func (b TierBoard) Tier(t Tier) []RatedSpot {
	switch t {
	case TierS:
		return b.S
	case TierA:
		return b.A
	case TierB:
		return b.B
	}
	return nil
}

func (b TierBoard) withTier(t Tier, spots []RatedSpot) TierBoard {
	switch t {
	case TierS:
		b.S = spots
	case TierA:
		b.A = spots
	case TierB:
		b.B = spots
	}
	return b
}

// IndexOf returns the position of spotID within a tier, or -1.
func (b TierBoard) IndexOf(t Tier, spotID string) int {
	for i, s := range b.Tier(t) {
		if s.ID == spotID {
			return i
		}
	}
	return -1
}

// Reorder moves spotID from one tier to another (or within one tier) and
// returns the resulting board. The receiver is not mutated. targetIndex
// beyond the target list, or negative, appends. For a same-tier move the
// insertion point is taken against the list with the moving element
// already removed, so moving to the current position is an exact no-op.
// Untouched spots keep their relative order; nothing is duplicated or lost.
func (b TierBoard) Reorder(spotID string, from, to Tier, targetIndex int) (TierBoard, error) {
	srcIdx := b.IndexOf(from, spotID)
	if srcIdx < 0 {
		return b, fmt.Errorf("spot %s not in tier %s", spotID, from)
	}

	src := b.Tier(from)
	moving := src[srcIdx]

	removed := make([]RatedSpot, 0, len(src)-1)
	removed = append(removed, src[:srcIdx]...)
	removed = append(removed, src[srcIdx+1:]...)

	dst := removed
	if from != to {
		orig := b.Tier(to)
		dst = make([]RatedSpot, len(orig))
		copy(dst, orig)
	}

	if targetIndex < 0 || targetIndex > len(dst) {
		targetIndex = len(dst)
	}

	inserted := make([]RatedSpot, 0, len(dst)+1)
	inserted = append(inserted, dst[:targetIndex]...)
	inserted = append(inserted, moving)
	inserted = append(inserted, dst[targetIndex:]...)

	next := b.withTier(from, removed)
	next = next.withTier(to, inserted)
	return next, nil
}

// SpotIDs returns every spot id on the board, tier by tier. Useful for
// asserting that reordering never creates or drops a spot.
func (b TierBoard) SpotIDs() []string {
	ids := make([]string, 0, len(b.S)+len(b.A)+len(b.B))
	for _, t := range []Tier{TierS, TierA, TierB} {
		for _, s := range b.Tier(t) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
