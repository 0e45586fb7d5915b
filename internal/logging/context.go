package logging

import (
	"context"

	"go.uber.org/zap"
)

type runCtxKey struct{}
type requestCtxKey struct{}

// WithRunID tags every log line of one bridge process.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runCtxKey{}, runID)
}

func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runCtxKey{}).(string)
	return id
}

// WithRequestSeq tags log lines with the 1-based position of the request in the input stream.
func WithRequestSeq(ctx context.Context, seq int64) context.Context {
	return context.WithValue(ctx, requestCtxKey{}, seq)
}

func RequestSeqFromContext(ctx context.Context) (int64, bool) {
	seq, ok := ctx.Value(requestCtxKey{}).(int64)
	return seq, ok
}

func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if ctx == nil {
		return fields
	}

	if runID := RunIDFromContext(ctx); runID != "" {
		fields = append(fields, zap.String("run.id", runID))
	}
	if seq, ok := RequestSeqFromContext(ctx); ok {
		fields = append(fields, zap.Int64("request.seq", seq))
	}

	return fields
}
