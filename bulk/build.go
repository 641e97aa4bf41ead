// Package bulk builds large sorted sequences in parallel.
//
// The input is cut into chunks that are sorted independently on a worker
// pool, and the sorted chunks are then merged pairwise with sorted.MergeAll,
// round after round, until one sequence remains. Chunk i always merges ahead
// of chunk i+1, so equal elements keep their input order and the result
// matches sorted.FromUnsorted exactly. Each round copies every element once,
// so the merge phase is O(n log k) for k chunks.
package bulk

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/alitto/pond/v2"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/logger"
	"github.com/amp-labs/amp-sorted/ordering"
	"github.com/amp-labs/amp-sorted/sorted"
	"go.uber.org/atomic"
)

// Build returns a sequence holding a sorted copy of data. Inputs no larger
// than one chunk are sorted on the calling goroutine. The error is non-nil
// only if ctx is cancelled or a task panics (for example inside a
// user-supplied comparison), in which case it wraps
// errors.ErrPanicRecovered.
//
// The result's stats add up the work of every merge in every round.
func Build[T any](
	ctx context.Context,
	data []T,
	strategy ordering.Strategy[T],
	opts ...Option,
) (*sorted.Sequence[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	o.normalize()

	log := o.logger
	if log == nil {
		log = logger.Get(ctx)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(data) <= o.chunkSize {
		return sorted.FromUnsorted(data, strategy), nil
	}

	pool := pond.NewPool(o.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	chunks := make([]*sorted.Sequence[T], (len(data)+o.chunkSize-1)/o.chunkSize)

	log.Debug("sorting chunks",
		"elements", len(data), "chunks", len(chunks), "workers", o.workers)

	var sortedChunks atomic.Int64

	group := pool.NewGroup()

	for i := range chunks {
		from := i * o.chunkSize
		to := min(from+o.chunkSize, len(data))

		group.SubmitErr(guard(ctx, func() {
			chunks[i] = sorted.FromUnsorted(data[from:to], strategy)
			sortedChunks.Inc()
		}))
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("bulk: sorting chunks: %w", err)
	}

	log.Debug("chunks sorted", "chunks", sortedChunks.Load())

	for round := 1; len(chunks) > 1; round++ {
		var merges atomic.Int64

		group = pool.NewGroup()

		for i := 0; i+1 < len(chunks); i += 2 {
			left, right := chunks[i], chunks[i+1]

			group.SubmitErr(guard(ctx, func() {
				chunks[i] = sorted.MergeAll(left, right)
				merges.Inc()
			}))
		}

		if err := group.Wait(); err != nil {
			return nil, fmt.Errorf("bulk: merge round %d: %w", round, err)
		}

		next := chunks[:0]
		for i := 0; i < len(chunks); i += 2 {
			next = append(next, chunks[i])
		}

		for i := len(next); i < len(chunks); i++ {
			chunks[i] = nil
		}

		chunks = next

		log.Debug("merge round done", "round", round, "merges", merges.Load(), "remaining", len(chunks))
	}

	result := chunks[0]
	stats := result.Stats()

	log.Debug("bulk build done",
		"elements", result.Len(), "comparisons", stats.Comparisons, "moves", stats.Moves)

	return result, nil
}

// guard adapts fn to a pool task that skips work once ctx is done and turns
// a panic into an error wrapping errors.ErrPanicRecovered.
func guard(ctx context.Context, fn func()) func() error {
	return func() (err error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = fmt.Errorf("%w: %w\n%s", sortederrors.ErrPanicRecovered, e, debug.Stack())
				} else {
					err = fmt.Errorf("%w: %v\n%s", sortederrors.ErrPanicRecovered, r, debug.Stack())
				}
			}
		}()

		fn()

		return nil
	}
}
