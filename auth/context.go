package auth

import (
	"chatroom/domain"
	"context"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity binds the caller identity to a call-scoped context.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
