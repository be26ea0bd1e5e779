package dto

import "github.com/spot-rally/internal/domain"

// CreateSelectionRequest opens a new draft selection over a candidate list.
type CreateSelectionRequest struct {
	Region     string        `json:"region" validate:"required"`
	Genre      string        `json:"genre" validate:"required"`
	Candidates []domain.Spot `json:"candidates" validate:"required,min=1,max=20,dive"`
}

// ToggleSelectionRequest toggles one candidate in or out of the draft.
type ToggleSelectionRequest struct {
	SpotID string `json:"spot_id" validate:"required"`
}

// ReorderSelectionRequest moves one selected spot to a new position.
type ReorderSelectionRequest struct {
	FromIndex int `json:"from_index" validate:"min=0"`
	ToIndex   int `json:"to_index" validate:"min=0"`
}

// SubmitSelectionRequest turns a draft into a persisted rally.
type SubmitSelectionRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

// RatedSpotInput is an evaluated stop submitted for tier grouping.
// Rating is required: unrated spots never reach classification.
type RatedSpotInput struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	OrderNo int     `json:"order_no" validate:"min=0"`
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Memo    string  `json:"memo,omitempty" validate:"max=500"`
}

// GroupTiersRequest asks for a tier board over rated stops.
type GroupTiersRequest struct {
	Spots []RatedSpotInput `json:"spots" validate:"required,dive"`
}

// ReorderTiersRequest is one drag operation translated into a tuple.
type ReorderTiersRequest struct {
	Board       domain.TierBoard `json:"board"`
	SpotID      string           `json:"spot_id" validate:"required"`
	FromTier    string           `json:"from_tier" validate:"required,oneof=S A B"`
	ToTier      string           `json:"to_tier" validate:"required,oneof=S A B"`
	TargetIndex *int             `json:"target_index,omitempty"`
}

// Rated converts the input to the domain shape.
func (in RatedSpotInput) Rated() domain.RatedSpot {
	return domain.RatedSpot{
		Spot: domain.Spot{
			ID:      in.ID,
			Name:    in.Name,
			Address: in.Address,
			Lat:     in.Lat,
			Lng:     in.Lng,
		},
		OrderNo: in.OrderNo,
		Rating:  in.Rating,
		Memo:    in.Memo,
	}
}
