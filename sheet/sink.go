// Package sheet provides abstractions for publishing tabular run output.
package sheet

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common sink conditions.
var (
	// ErrAlreadyExists indicates a named object already exists in the sink.
	ErrAlreadyExists = errors.New("sheet: already exists")
	// ErrNotFound indicates the requested object was not found.
	ErrNotFound = errors.New("sheet: not found")
)

// Sink is the destination interface for publishing tabular rows.
// Implementations must treat object names as opaque identifiers.
type Sink interface {
	// Exists reports whether an object with the given name already exists.
	Exists(ctx context.Context, name string) (bool, error)

	// CreateNamed creates a new named object holding the given rows.
	// It fails with ErrAlreadyExists if the name is already taken; it must
	// never merge rows into an existing object.
	CreateNamed(ctx context.Context, name string, rows [][]interface{}) error

	// ClearAndReplace replaces the full contents of the named object,
	// creating it first if it does not exist. The object keeps no history.
	ClearAndReplace(ctx context.Context, name string, rows [][]interface{}) error
}

// SinkError wraps sink errors with operation and object context.
// Use errors.As() to extract this error type and get operation details:
//
//	var sinkErr *sheet.SinkError
//	if errors.As(err, &sinkErr) {
//		fmt.Printf("Failed to %s %s: %v\n", sinkErr.Op, sinkErr.Name, sinkErr.Err)
//	}
type SinkError struct {
	// Op is the operation that failed ("exists", "create", "replace").
	Op string
	// Name is the object name if applicable.
	Name string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the sink error.
func (e *SinkError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("sheet: %s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("sheet: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *SinkError) Unwrap() error { return e.Err }
