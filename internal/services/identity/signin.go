package identity

import (
	"context"

	"github.com/mcoot/scoreboard/internal/services/auth"
)

// SignIn resolves identifier to an email and signs in with password
func (r *Resolver) SignIn(ctx context.Context, identifier, password string) (*auth.Session, error) {
	email, err := r.ResolveIdentifierToEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}

	h, err := r.backend.Wait(ctx)
	if err != nil {
		return nil, err
	}
	client, err := h.AuthClient()
	if err != nil {
		return nil, err
	}
	return client.SignIn(ctx, email, password)
}
