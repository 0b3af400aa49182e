package chunklist

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"go.uber.org/zap"
)

func newContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), zap.NewNop()))
	t.Cleanup(cancel)
	return ctx
}
