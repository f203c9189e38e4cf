// Package fault defines the closed set of pipeline error kinds.
package fault

import (
	"errors"
	"fmt"
)

// TransportError marks a feed-level connection failure. Always recoverable:
// the feed client reconnects, it never terminates the process.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// FetchError marks a failed enrichment fetch from a named secondary source.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.Source, e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError marks a malformed frame or field.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Field, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// PersistError marks a storage write failure.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist: %v", e.Err) }

func (e *PersistError) Unwrap() error { return e.Err }

// Kind returns a stable label for the error's taxonomy bucket, used for log
// fields and metric labels.
func Kind(err error) string {
	var (
		transport *TransportError
		fetch     *FetchError
		parse     *ParseError
		persist   *PersistError
	)
	switch {
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &fetch):
		return "fetch"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &persist):
		return "persist"
	default:
		return "unknown"
	}
}
