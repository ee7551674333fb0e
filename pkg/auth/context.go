package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userKey contextKey = "user"

// ErrUserNotFound is returned when no authenticated user exists in the
// request context. Handlers should return 401 when this error occurs.
var ErrUserNotFound = errors.New("user not found in context")

// SessionUser is the authenticated actor attached to the request context.
// Name is recorded as the `user` field on stock adjustments.
type SessionUser struct {
	ID    string
	Name  string
	Email string
}

// UserFromCtx extracts the authenticated user from the request context.
// Returns ErrUserNotFound for unauthenticated requests.
func UserFromCtx(ctx context.Context) (SessionUser, error) {
	u, ok := ctx.Value(userKey).(SessionUser)
	if !ok || u.ID == "" {
		return SessionUser{}, ErrUserNotFound
	}
	return u, nil
}

// WithUser returns a new context with the given user attached.
// Used by authentication middleware after validating the session.
func WithUser(ctx context.Context, u SessionUser) context.Context {
	return context.WithValue(ctx, userKey, u)
}
