package utils

import "context"

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// SetUserContext sets the authenticated user identity into context
// (called by the auth middleware).
func SetUserContext(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserIDFromContext retrieves the user ID safely.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
