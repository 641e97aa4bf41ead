// Package errors holds the sentinel errors shared across the module and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrNotSorted means data handed over as already sorted was not sorted
	// under the strategy in use.
	ErrNotSorted = errors.New("data is not sorted")

	// ErrOutOfOrder means an index-based write would have placed a value out
	// of order relative to its neighbours.
	ErrOutOfOrder = errors.New("value is out of order")

	// ErrNoStrategy means a sequence was used (typically decoded into) before
	// an ordering strategy was attached to it.
	ErrNoStrategy = errors.New("no ordering strategy")

	// ErrUnknownStrategy means a strategy name could not be resolved.
	ErrUnknownStrategy = errors.New("unknown ordering strategy")

	// ErrUnsupportedEncoding means an input's compression format is not recognized.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnknownChecksum means a checksum algorithm name could not be resolved.
	ErrUnknownChecksum = errors.New("unknown checksum algorithm")

	// ErrUnknownCharset means a character set label could not be resolved.
	ErrUnknownCharset = errors.New("unknown character set")

	// ErrFetchFailed means a remote input answered with a non-success status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrPanicRecovered wraps a panic raised inside a pooled task.
	ErrPanicRecovered = errors.New("panic recovered")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent operations should all run and their
// failures be reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
