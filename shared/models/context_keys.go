package models

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const (
	// UserContextKey stores the verified actor username in the request context.
	UserContextKey contextKey = "username"
	// RolesContextKey stores the []string roles of the actor.
	RolesContextKey contextKey = "userRoles"
)

// WithUsername returns a copy of ctx carrying the actor username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UserContextKey, username)
}

// GetUsernameFromContext extracts the actor username.
// Returns "" and false when the request is anonymous.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UserContextKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetRolesFromContext extracts the roles slice from the context.
func GetRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(RolesContextKey).([]string)
	return roles, ok
}
