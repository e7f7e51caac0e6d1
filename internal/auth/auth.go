package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Authenticator validates a bearer token and resolves the caller.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

// Principal is the authenticated caller extracted from a validated token.
type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type principalContextKey struct{}

// WithPrincipal attaches the authenticated caller to the request context.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}

// Config controls whether and how bearer tokens are validated. The zero
// value disables authentication entirely.
type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	// JWKSURL overrides the Keycloak-style default of
	// <issuer>/protocol/openid-connect/certs.
	JWKSURL string
}
