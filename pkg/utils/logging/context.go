package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

type ctxCycleIDKey struct{}

// CtxCycleID returns push cycle ID from context. If cycle ID is not set, return new cycle ID and context with it
func CtxCycleID(ctx context.Context) (types.CycleID, context.Context) {
	if id, ok := ctx.Value(ctxCycleIDKey{}).(types.CycleID); ok {
		return id, ctx
	}

	newID := types.NewCycleID()
	return newID, context.WithValue(ctx, ctxCycleIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns time from context. If time is not set, return current time and context with it
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}
