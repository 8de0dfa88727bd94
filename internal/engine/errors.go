package engine

import "errors"

// Sentinel errors for engine operations.
var (
	// ErrIndexExists signals a create on an index that is already present.
	// Losing a check-then-create race surfaces this; callers treat it as
	// a benign no-op.
	ErrIndexExists = errors.New("engine: index already exists")
	// ErrDocumentNotFound signals a get or delete on a missing document.
	ErrDocumentNotFound = errors.New("engine: document not found")
)

// Operation names for error context.
const (
	OpPing         = "ping"
	OpIndexExists  = "indices.exists"
	OpCreateIndex  = "indices.create"
	OpIndexDoc     = "index"
	OpDeleteDoc    = "delete"
	OpGetDoc       = "get"
	OpDocExists    = "exists"
	OpSearch       = "search"
)

// Error wraps an engine failure with the attempted operation and target
// index, so callers can log and retry externally.
type Error struct {
	Op    string
	Index string
	Err   error
}

func (e *Error) Error() string {
	if e.Index == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Index + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
