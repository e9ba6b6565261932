package auth

import (
	"context"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

type userCtxKey struct{}

func WithUser(ctx context.Context, user entity.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the user stored in ctx, or entity.Anonymous.
func UserFromContext(ctx context.Context) entity.User {
	user, ok := ctx.Value(userCtxKey{}).(entity.User)
	if !ok {
		return entity.Anonymous
	}
	return user
}

// ContextUsers resolves the current user from the request context.
type ContextUsers struct{}

func (ContextUsers) CurrentUser(ctx context.Context) entity.User {
	return UserFromContext(ctx)
}

// StaticUser is the current user of every call. The terminal client uses it.
type StaticUser entity.User

func (u StaticUser) CurrentUser(context.Context) entity.User {
	return entity.User(u)
}
