package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor stores an executor (usually an open transaction) in the context.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, exec)
}

// GetExecutor returns the executor stored in the context, or fallback when
// the context carries none. Repositories call this on every operation so the
// same code path works inside and outside transactions.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction reports whether the context carries a transaction executor.
func IsInTransaction(ctx context.Context) bool {
	exec, ok := ctx.Value(executorKey{}).(DBExecutor)
	if !ok {
		return false
	}
	_, isTx := exec.(TxExecutor)
	return isTx
}
