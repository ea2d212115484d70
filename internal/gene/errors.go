package gene

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when every data source has been exhausted
	// without producing a usable record for the symbol.
	ErrNotFound = errors.New("gene not found")

	// ErrEmptySymbol is returned for blank input before any I/O happens.
	ErrEmptySymbol = errors.New("empty gene symbol")
)

// SourceErrorKind classifies why a data source could not be used this attempt.
type SourceErrorKind string

const (
	// SourceUnavailable means the service answered but its response is
	// unusable, typically because it requires authentication.
	SourceUnavailable SourceErrorKind = "source_unavailable"
	// TransportError means the service could not be reached at all.
	TransportError SourceErrorKind = "transport_error"
)

// SourceError is an internal failure of a single source adapter. It never
// crosses the resolver's public boundary; the resolver converts it into a
// fallback to the next source.
type SourceError struct {
	Kind   SourceErrorKind
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err as a tagged adapter failure.
func NewSourceError(kind SourceErrorKind, source string, err error) *SourceError {
	return &SourceError{Kind: kind, Source: source, Err: err}
}
