package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
)

// Resolver turns a login identifier (email or username) into the email the
// sign-in call needs
type Resolver struct {
	backend backend.Source
	logger  *slog.Logger
}

// New creates a Resolver
func New(src backend.Source, logger *slog.Logger) *Resolver {
	return &Resolver{
		backend: src,
		logger:  logger,
	}
}

// ResolveIdentifierToEmail returns identifier itself when it looks like an email,
// otherwise the email registered for the username. The email path never reads
// the store; the username path reads one or two documents.
func (r *Resolver) ResolveIdentifierToEmail(ctx context.Context, identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", model.ErrInvalidIdentifier
	}

	if strings.Contains(trimmed, "@") {
		return trimmed, nil
	}

	h, err := r.backend.Wait(ctx)
	if err != nil {
		return "", err
	}
	db, err := h.DB()
	if err != nil {
		return "", err
	}

	rec, err := db.GetUsername(ctx, model.NormalizeUsername(identifier))
	if err != nil {
		if errors.Is(err, model.ErrDocumentNotFound) {
			return "", &model.NotFoundError{Identifier: identifier, Err: model.ErrUsernameNotFound}
		}
		return "", &model.QueryError{Op: "get username", Err: err}
	}

	if rec.Email != "" {
		return rec.Email, nil
	}

	if rec.UserID != "" {
		user, err := db.GetUser(ctx, rec.UserID)
		switch {
		case err == nil:
			if user.Email != "" {
				return user.Email, nil
			}
		case errors.Is(err, model.ErrDocumentNotFound):
			r.logger.Warn("username points at missing user",
				slog.String("username", model.NormalizeUsername(identifier)),
				slog.String("uid", string(rec.UserID)))
		default:
			return "", &model.QueryError{Op: "get user", Err: err}
		}
	}

	return "", &model.NotFoundError{Identifier: identifier, Err: model.ErrNoAssociatedEmail}
}
