package session

import (
	"context"

	"github.com/wonjunee/essayblog/internal/model"
)

type contextKey struct{}

var userKey contextKey

// WithUser returns a context carrying the resolved identity.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the identity resolved for this request, if any.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
