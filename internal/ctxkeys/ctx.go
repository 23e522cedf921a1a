package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// Identity is the authenticated caller as asserted by the external
// identity provider's session token. It exists for every authenticated
// request even before the caller has been synced into the users table.
type Identity struct {
	ExternalID string
	Email      string
	Name       string
	AvatarURL  string
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func CallerIdentity(ctx context.Context) *Identity {
	identity, _ := ctx.Value(IdentityKey).(*Identity)
	return identity
}