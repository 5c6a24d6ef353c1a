package userctx

import "context"

// Context key type
type contextKey string

const userKey contextKey = "user"

// SetUser adds the authenticated dashboard user to request context
func SetUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the authenticated user from request context
func GetUser(ctx context.Context) string {
	user, ok := ctx.Value(userKey).(string)
	if !ok {
		return "anonymous"
	}
	return user
}
