package collect

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Builder produces one value. It should return promptly once ctx is done.
type Builder[T any] func(ctx context.Context) (T, error)

// Gather runs builders with at most limit running at once (no limit when
// limit <= 0) and returns their results in the order of builders. The first
// error cancels the context passed to the remaining builders and is
// returned; results are discarded in that case.
func Gather[T any](ctx context.Context, limit int, builders []Builder[T]) ([]T, error) {
	results := make([]T, len(builders))
	if len(builders) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, build := range builders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			value, err := build(gctx)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
