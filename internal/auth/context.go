package auth

import "context"

type contextKey string

const (
	storeIDKey  contextKey = "store_id"
	operatorKey contextKey = "operator"
)

// OperatorContext identifies the console operator for the current request.
type OperatorContext struct {
	UserID string
	Token  string
}

func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, storeIDKey, storeID)
}

// GetStoreID returns the store scope the middleware extracted from the
// X-Store-ID header, or "" for tenant-wide pages.
func GetStoreID(ctx context.Context) string {
	if val, ok := ctx.Value(storeIDKey).(string); ok {
		return val
	}
	return ""
}

func WithOperator(ctx context.Context, op *OperatorContext) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

func GetOperator(ctx context.Context) *OperatorContext {
	if val, ok := ctx.Value(operatorKey).(*OperatorContext); ok {
		return val
	}
	return nil
}
