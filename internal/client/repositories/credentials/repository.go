// Package credentials is the durable home of the session token. It is
// the only thing the client persists besides ephemeral in-memory state.
package credentials

import "context"

// Repository stores the single credential surviving process restart.
type Repository interface {
	// Token returns the stored token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
