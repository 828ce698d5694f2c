package ports

import (
	"context"

	"storefront/internal/core/domain/model/user"
)

// IdentityResolver maps an authenticated session token to the user record
// behind it. Identity is owned externally; the core re-resolves it on every
// call instead of caching authorization decisions.
type IdentityResolver interface {
	// Resolve returns the user for a session token.
	// Returns *errs.UnauthorizedError for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (user.User, error)
}
