package calcom

import (
	"context"
)

type contextKey[T any] struct{}

// ContextWithValue stores a typed value in ctx. Middleware reads it back
// from the outgoing request with ValueFrom.
func ContextWithValue[T any](ctx context.Context, val T) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, val)
}

// ValueFrom retrieves a typed value stored with ContextWithValue.
func ValueFrom[T any](ctx context.Context) (T, bool) {
	val, ok := ctx.Value(contextKey[T]{}).(T)
	return val, ok
}
