package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDocuments indicates ingestion found zero documents.
	// The batch job aborts before writing any index artifact,
	// preserving the previous good index.
	ErrNoDocuments = errors.New("no documents found")

	// ErrIndexUnavailable indicates the persisted index could not be
	// loaded (storage unavailable or malformed blob). Callers degrade
	// to a no-context response rather than failing the request.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrNoIndex indicates no index has been built yet.
	ErrNoIndex = errors.New("no index has been built")

	// ErrGeneratorUnavailable indicates the answer generator is not
	// configured. Questions routed to retrieval cannot be answered.
	ErrGeneratorUnavailable = errors.New("answer generator unavailable")

	// ErrGeneration indicates the external answer generator failed.
	// Surfaced to the end user as a generic retry message; provider
	// detail stays in logs.
	ErrGeneration = errors.New("answer generation failed")
)
