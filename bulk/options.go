package bulk

import (
	"log/slog"
	"runtime"
)

const defaultChunkSize = 4096

type options struct {
	workers   int
	chunkSize int
	logger    *slog.Logger
}

// Option configures Build.
type Option func(*options)

// WithWorkers caps how many chunks are sorted or merged at once. Values
// below one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many elements each worker sorts before merging
// begins. Values below one select the default of 4096.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger sends progress messages to logger instead of the one carried by
// the context.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o *options) normalize() {
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	if o.chunkSize < 1 {
		o.chunkSize = defaultChunkSize
	}
}
