package chunklist_test

import (
	"context"
	"fmt"
	"slices"

	"github.com/outofforest/logger"
	"go.uber.org/zap"

	"github.com/outofforest/chunklist"
)

func ExampleList() {
	l := chunklist.New[int](3)
	for i := 1; i <= 5; i++ {
		l.Push(i)
	}

	more := chunklist.FromSeq(3, slices.Values([]int{6, 7}))
	l.Append(more)

	fmt.Println(slices.Collect(l.All()))
	// Output: [1 2 3 4 5 6 7]
}

func ExampleGather() {
	ctx := logger.WithLogger(context.Background(), zap.NewNop())

	l, err := chunklist.Gather(ctx, 4,
		func(ctx context.Context, dst *chunklist.List[string]) error {
			dst.Push("alpha")
			dst.Push("bravo")
			return nil
		},
		func(ctx context.Context, dst *chunklist.List[string]) error {
			dst.Push("charlie")
			return nil
		},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(slices.Collect(l.All()))
	// Output: [alpha bravo charlie]
}
