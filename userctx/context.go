package userctx

import "context"

// Context key type
type contextKey string

const sessionIDKey contextKey = "session_id"

// SetSessionID adds the browser session ID to request context
func SetSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// GetSessionID retrieves the browser session ID from request context
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
