package tracex

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type traceIDKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(traceIDKey{}).(string)
	return s, ok && s != ""
}

// NewTraceID 生成 32 位 hex 的 trace_id（随机 UUID 去掉连字符）。
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Ensure 在 ctx 没有 trace_id 时补一个新的。
func Ensure(ctx context.Context) context.Context {
	if _, ok := TraceIDFrom(ctx); ok {
		return ctx
	}
	return WithTraceID(ctx, NewTraceID())
}
