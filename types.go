package chunklist

import (
	"context"
)

// SourceFunc fills dst with the elements produced by one unit of work.
type SourceFunc[T any] func(ctx context.Context, dst *List[T]) error
