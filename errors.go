package tfengine

import "errors"

// Sentinel errors for the engine's public contract. Wrapped with
// fmt.Errorf("%w: ...") at call sites so errors.Is still matches the kind.
var (
	// ErrInvalidText is returned when input text contains a byte in 0-31.
	ErrInvalidText = errors.New("invalid text")

	// ErrInvalidID is returned when a document id is negative.
	ErrInvalidID = errors.New("invalid document id")

	// ErrDuplicateID is returned when AddDocument is called with an id
	// already present.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrNotFound is returned when MatchDocument targets an unknown id.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidQuery is returned for a malformed minus token (empty after
	// '-', double '-', trailing '-'). A control byte in query text is
	// reported as ErrInvalidText.
	ErrInvalidQuery = errors.New("invalid query")
)
