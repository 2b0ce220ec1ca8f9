package grid

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/tradegrid/errs"
)

// cancelCheckInterval is how many points a worker encodes between context checks.
const cancelCheckInterval = 4096

// EncodeBatch appends the key of every point to dst and returns the extended slice.
func EncodeBatch(dst []uint64, points []Point) []uint64 {
	if cap(dst)-len(dst) < len(points) {
		grown := make([]uint64, len(dst), len(dst)+len(points))
		copy(grown, dst)
		dst = grown
	}

	for _, p := range points {
		dst = append(dst, Encode(p.X, p.Y, p.Z))
	}

	return dst
}

// EncodeParallel encodes points using up to workers goroutines.
//
// The batch is split into contiguous chunks, one per worker, and the result keeps the
// order of points. Workers stop early when ctx is cancelled.
//
// Parameters:
//   - ctx: Cancellation context
//   - points: Coordinates to encode
//   - workers: Number of goroutines (must be positive)
//
// Returns:
//   - []uint64: keys in the same order as points
//   - error: ErrInvalidWorkerCount, or the context error if cancelled
func EncodeParallel(ctx context.Context, points []Point, workers int) ([]uint64, error) {
	if workers <= 0 {
		return nil, errs.ErrInvalidWorkerCount
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys := make([]uint64, len(points))
	if len(points) == 0 {
		return keys, nil
	}

	workers = min(workers, len(points))
	chunk := (len(points) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				keys[i] = EncodePoint(points[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return keys, nil
}
