package dto

import "github.com/spot-rally/internal/domain"

// Candidate result sources.
const (
	SourceCache = "cache"
	SourceAPI   = "api"
	SourceMock  = "mock"
	SourceError = "error"
)

// SpotsResponse is the candidate resolution result. Source says where the
// spots came from so the UI can tell "nothing there" from "provider broke".
type SpotsResponse struct {
	Spots  []domain.Spot `json:"spots"`
	Source string        `json:"source"`
}

// TierBoardResponse wraps a grouped or reordered board.
type TierBoardResponse struct {
	Board domain.TierBoard `json:"board"`
}

// ShareBoardResponse is the public view of a rated rally.
type ShareBoardResponse struct {
	Rally *domain.Rally    `json:"rally"`
	Board domain.TierBoard `json:"board"`
}
