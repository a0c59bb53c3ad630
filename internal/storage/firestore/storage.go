package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
)

// Config holds Firestore connection settings.
// Setting FIRESTORE_EMULATOR_HOST in the environment points the client at the emulator.
type Config struct {
	ProjectID string
	// CredentialsFile is a service account key; empty uses application default credentials
	CredentialsFile string
}

// Storage reads documents from Cloud Firestore
type Storage struct {
	client *firestore.Client
}

// New connects to Firestore
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("firestore project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *firestore.Client) *Storage {
	return &Storage{client: client}
}

// Close releases the client
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interfaces
var (
	_ storage.Store  = (*Storage)(nil)
	_ storage.Writer = (*Storage)(nil)
)

// getDoc fetches collection/id into dst
func (s *Storage) getDoc(ctx context.Context, collection, id string, dst any) error {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrDocumentNotFound
		}
		return err
	}
	if !snap.Exists() {
		return model.ErrDocumentNotFound
	}
	return snap.DataTo(dst)
}

func (s *Storage) setDoc(ctx context.Context, collection, id string, data any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data)
	return err
}

// Reads

func (s *Storage) GetUsername(ctx context.Context, key string) (*model.UsernameRecord, error) {
	var rec model.UsernameRecord
	if err := s.getDoc(ctx, model.CollectionUsernames, key, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.UserRecord, error) {
	var rec model.UserRecord
	if err := s.getDoc(ctx, model.CollectionUsers, string(id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetUserStats(ctx context.Context, id model.UserID) (*model.UserStatsRecord, error) {
	var rec model.UserStatsRecord
	if err := s.getDoc(ctx, model.CollectionUserStats, string(id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetCredential(ctx context.Context, email string) (*model.Credential, error) {
	var cred model.Credential
	if err := s.getDoc(ctx, model.CollectionCredentials, model.NormalizeEmail(email), &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// QueryLeaderboard runs the query natively. Filtering on timestamp together with
// ordering on score needs a composite index in the project.
func (s *Storage) QueryLeaderboard(ctx context.Context, q storage.LeaderboardQuery) ([]model.LeaderboardEntry, error) {
	query := s.client.Collection(model.CollectionLeaderboard).Query
	if !q.Since.IsZero() {
		query = query.Where(string(storage.FieldTimestamp), ">=", q.Since)
	}
	for _, o := range q.OrderBy {
		dir := firestore.Asc
		if o.Direction == storage.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(string(o.Field), dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	entries := []model.LeaderboardEntry{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var entry model.LeaderboardEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

// Writes

func (s *Storage) SaveUsername(ctx context.Context, key string, rec *model.UsernameRecord) error {
	return s.setDoc(ctx, model.CollectionUsernames, key, rec)
}

func (s *Storage) SaveUser(ctx context.Context, id model.UserID, rec *model.UserRecord) error {
	return s.setDoc(ctx, model.CollectionUsers, string(id), rec)
}

func (s *Storage) SaveUserStats(ctx context.Context, id model.UserID, rec *model.UserStatsRecord) error {
	return s.setDoc(ctx, model.CollectionUserStats, string(id), rec)
}

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	return s.setDoc(ctx, model.CollectionCredentials, model.NormalizeEmail(cred.Email), cred)
}

func (s *Storage) AddLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	ref := s.client.Collection(model.CollectionLeaderboard).NewDoc()
	if entry.ID != "" {
		ref = s.client.Collection(model.CollectionLeaderboard).Doc(entry.ID)
	}
	if _, err := ref.Set(ctx, entry); err != nil {
		return err
	}
	entry.ID = ref.ID
	return nil
}
