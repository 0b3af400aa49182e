package chunklist

import (
	"context"
	"fmt"

	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
)

// Gather runs every source in its own goroutine, each accumulating into a
// private list, and splices the per-source lists into a single one in
// source order. Each list is mutated by exactly one goroutine and splicing
// happens only after the whole group has finished, so no list is ever
// touched concurrently. If any source fails, the remaining ones are
// canceled and the error is returned with no list.
func Gather[T any](ctx context.Context, capacity int, sources ...SourceFunc[T]) (*List[T], error) {
	lists := make([]*List[T], len(sources))
	for i := range lists {
		lists[i] = New[T](capacity)
	}

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, source := range sources {
			spawn(fmt.Sprintf("source-%d", i), parallel.Continue, func(ctx context.Context) error {
				return source(ctx, lists[i])
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// returning on ctx.Err() is important to not hand back results in case execution has been canceled
	if err := errors.WithStack(ctx.Err()); err != nil {
		return nil, err
	}

	result := New[T](capacity)
	for _, l := range lists {
		result.Append(l)
	}
	return result, nil
}
