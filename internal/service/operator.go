package service

import "context"

type operatorKey struct{}

// WithOperator attaches the authenticated operator's user ID to ctx.
func WithOperator(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, operatorKey{}, userID)
}

// OperatorFrom returns the operator attached by WithOperator.
func OperatorFrom(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(operatorKey{}).(int)
	return id, ok
}

// operatorID is OperatorFrom with 0 for anonymous callers.
func operatorID(ctx context.Context) int {
	id, _ := OperatorFrom(ctx)
	return id
}
