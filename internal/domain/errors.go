package domain

import "errors"

// Sentinel errors for the day-trip finder. Components wrap these with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is.
var (
	// ErrInvalidRequest indicates the search input failed validation.
	// Surfaced to the caller; no I/O is performed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable indicates an external schedule fetch failed.
	// Recovered locally by skipping the affected date; never fatal for a
	// month sweep.
	ErrProviderUnavailable = errors.New("schedule provider unavailable")

	// ErrAirportNotFound indicates an airport code could not be resolved
	// by the store or the external lookup. The affected leg is dropped and
	// the query continues.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrNotFound indicates a store lookup matched no record. Internal to
	// the resolution flow; callers outside it see ErrAirportNotFound.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates a store insert collided with an existing
	// unique key, typically a concurrent resolution of the same airport.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrPersistence indicates the persistent store failed. Fatal for the
	// current query: correctness cannot be guaranteed without the store.
	ErrPersistence = errors.New("persistence failure")
)

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsProviderUnavailable reports whether err is a recoverable provider failure.
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

// IsAirportNotFound reports whether err is a failed airport resolution.
func IsAirportNotFound(err error) bool {
	return errors.Is(err, ErrAirportNotFound)
}

// IsPersistence reports whether err is a fatal store failure.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
