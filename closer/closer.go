// Package closer provides helpers for closing stacked io.Closer resources,
// such as a decompressor layered over the file it reads.
package closer

import (
	"errors"
	"io"
	"sync"
)

// Closer closes a list of io.Closer instances in the order they were added.
//
// Example usage:
//
//	file, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//
//	dec, err := gzip.NewReader(file)
//	if err != nil {
//	    _ = file.Close()
//	    return err
//	}
//
//	// The decoder is closed before the file underneath it.
//	defer closer.NewCloser(dec, file).Close()
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a Closer with zero or more initial io.Closer instances.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add appends an io.Closer. Nil closers are skipped on Close. Add is not
// safe for concurrent use.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes every registered closer, even after a failure, and returns
// the failures joined with errors.Join.
func (c *Closer) Close() error {
	var errs []error

	for _, closer := range c.closers {
		if closer != nil {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

type closeOnceImpl struct {
	mut    sync.Mutex
	closed bool
	closer io.Closer
}

// CloseOnce wraps closer so that only the first successful Close reaches it.
// A failed Close may be retried. Later calls return nil. It returns nil if
// closer is nil.
func CloseOnce(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	return &closeOnceImpl{closer: closer}
}

func (c *closeOnceImpl) Close() error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return nil
	}

	if err := c.closer.Close(); err != nil {
		return err
	}

	c.closed = true

	return nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ReadCloser pairs a reader with the closer responsible for it.
func ReadCloser(reader io.Reader, closer io.Closer) io.ReadCloser {
	return readCloser{Reader: reader, Closer: closer}
}

type writeCloser struct {
	io.Writer
	io.Closer
}

// WriteCloser pairs a writer with the closer responsible for it.
func WriteCloser(writer io.Writer, closer io.Closer) io.WriteCloser {
	return writeCloser{Writer: writer, Closer: closer}
}
