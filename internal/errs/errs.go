// Package errs holds the error kinds shared by loaders, the dispatcher and
// the sinks. Match them with errors.Is / errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: a required source path does not exist. Fatal for the run.
	ErrNotFound = errors.New("not found")
	// ErrMalformed: a source row could not become a sequence record. The row is skipped.
	ErrMalformed = errors.New("malformed")
	// ErrWorkUnit: one primer/contig match computation failed.
	ErrWorkUnit = errors.New("work unit failed")
	// ErrWrite: a result table could not be written.
	ErrWrite = errors.New("write failed")
)

// NotFound wraps a missing path as ErrNotFound while keeping the cause.
func NotFound(path string, cause error) error {
	return fmt.Errorf("%s: %w: %w", path, ErrNotFound, cause)
}

type MalformedRowError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: malformed row: %s", e.Path, e.Line, e.Reason)
}

func (e *MalformedRowError) Unwrap() error { return ErrMalformed }

// UnitError records a failed work unit. Index is the primer's submission index.
type UnitError struct {
	Contig string
	Primer string
	Index  int
	Err    error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("contig %q primer %q (#%d): %v", e.Contig, e.Primer, e.Index, e.Err)
}

func (e *UnitError) Unwrap() []error { return []error{ErrWorkUnit, e.Err} }

type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write table %q: %v", e.Table, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }
