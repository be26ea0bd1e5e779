package errors

import "net/http"

var (
	ErrMissingRegion = New(
		"MISSING_REGION",
		"Query parameter 'region' is required",
		http.StatusBadRequest,
	)

	ErrMissingGenre = New(
		"MISSING_GENRE",
		"Query parameter 'genre' is required",
		http.StatusBadRequest,
	)

	ErrMissingAddress = New(
		"MISSING_ADDRESS",
		"Query parameter 'address' is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrSelectionNotFound = New(
		"SELECTION_NOT_FOUND",
		"Draft selection not found or expired",
		http.StatusNotFound,
	)

	ErrSpotNotCandidate = New(
		"SPOT_NOT_CANDIDATE",
		"Spot is not part of the draft's candidate list",
		http.StatusBadRequest,
	)

	ErrSelectionSize = New(
		"INVALID_SELECTION_SIZE",
		"A rally needs between 3 and 5 selected spots",
		http.StatusBadRequest,
	)

	ErrSpotNotOnBoard = New(
		"SPOT_NOT_ON_BOARD",
		"Spot not found in the source tier",
		http.StatusBadRequest,
	)

	ErrRallyNotFound = New(
		"RALLY_NOT_FOUND",
		"Rally not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"External places provider failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
