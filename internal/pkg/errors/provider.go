package errors

import (
	"errors"
	"fmt"
)

// Provider failure taxonomy. Every adapter call site has to distinguish
// "no credential", "valid empty answer" and "the provider itself failed",
// so these are modeled as matchable errors instead of ad hoc status strings.
var (
	// ErrNotConfigured - no provider credential / no store connection configured.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrZeroResults - the provider answered successfully with zero results.
	ErrZeroResults = errors.New("provider returned zero results")

	// ErrCacheUnavailable - the cache store is unreachable; callers treat it as a miss.
	ErrCacheUnavailable = errors.New("cache store unavailable")
)

// ProviderError carries the raw status the provider reported (quota, denial,
// transport-level failure). Matched with errors.As.
type ProviderError struct {
	Status  string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider error: %s", e.Status)
	}
	return fmt.Sprintf("provider error: %s: %s", e.Status, e.Message)
}

func NewProviderError(status, message string) *ProviderError {
	return &ProviderError{Status: status, Message: message}
}
