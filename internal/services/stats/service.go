package stats

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
)

// FallbackDisplayName is used when neither a username nor an email is known
const FallbackDisplayName = "Player"

// Service loads a signed-in user's score history
type Service struct {
	backend backend.Source
	logger  *slog.Logger
}

// New creates a stats Service
func New(src backend.Source, logger *slog.Logger) *Service {
	return &Service{
		backend: src,
		logger:  logger,
	}
}

// Load reads the user's profile and stats documents. A missing stats
// document is not an error: the result has HasStats false.
func (s *Service) Load(ctx context.Context, user model.AuthUser) (*model.PlayerStats, error) {
	name, err := s.DisplayName(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.History(ctx, user, name)
}

// DisplayName reads the user's profile. The username wins over the email;
// with neither the name is FallbackDisplayName.
func (s *Service) DisplayName(ctx context.Context, user model.AuthUser) (string, error) {
	db, err := s.db(ctx)
	if err != nil {
		return "", err
	}

	name := user.Email
	profile, err := db.GetUser(ctx, user.UID)
	switch {
	case err == nil:
		if profile.Username != "" {
			name = profile.Username
		}
	case errors.Is(err, model.ErrDocumentNotFound):
	default:
		return "", &model.QueryError{Op: "get user", Err: err}
	}
	if name == "" {
		name = FallbackDisplayName
	}
	return name, nil
}

// History reads the user's stats document into a PlayerStats named displayName
func (s *Service) History(ctx context.Context, user model.AuthUser, displayName string) (*model.PlayerStats, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.PlayerStats{DisplayName: displayName}
	rec, err := db.GetUserStats(ctx, user.UID)
	if err != nil {
		if errors.Is(err, model.ErrDocumentNotFound) {
			s.logger.Debug("no stats for user", slog.String("uid", string(user.UID)))
			return result, nil
		}
		return nil, &model.QueryError{Op: "get user stats", Err: err}
	}

	result.HasStats = true
	result.Scores = rec.Scores
	result.Summary = model.Summarize(rec.TotalScore, len(rec.Scores))
	return result, nil
}

func (s *Service) db(ctx context.Context) (storage.Store, error) {
	h, err := s.backend.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return h.DB()
}
