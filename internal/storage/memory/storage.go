package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	usernames   map[string]model.UsernameRecord
	users       map[model.UserID]model.UserRecord
	userStats   map[model.UserID]model.UserStatsRecord
	credentials map[string]model.Credential
	leaderboard []model.LeaderboardEntry

	// failWith, when set, is returned from every read; failOn from reads of one collection
	failWith error
	failOn   map[string]error
	reads    atomic.Int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		usernames:   make(map[string]model.UsernameRecord),
		users:       make(map[model.UserID]model.UserRecord),
		userStats:   make(map[model.UserID]model.UserStatsRecord),
		credentials: make(map[string]model.Credential),
	}
}

// Ensure Storage implements the interfaces
var (
	_ storage.Store  = (*Storage)(nil)
	_ storage.Writer = (*Storage)(nil)
)

// FailReads makes every subsequent read return err (nil restores normal behaviour)
func (s *Storage) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// FailCollection makes reads of one collection return err (nil restores it)
func (s *Storage) FailCollection(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == nil {
		s.failOn = make(map[string]error)
	}
	if err == nil {
		delete(s.failOn, collection)
		return
	}
	s.failOn[collection] = err
}

// readErr is the injected failure for a read of collection, if any. Callers hold mu.
func (s *Storage) readErr(collection string) error {
	if s.failWith != nil {
		return s.failWith
	}
	return s.failOn[collection]
}

// Reads returns how many reads have been served
func (s *Storage) Reads() int64 {
	return s.reads.Load()
}

func (s *Storage) GetUsername(ctx context.Context, key string) (*model.UsernameRecord, error) {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(model.CollectionUsernames); err != nil {
		return nil, err
	}
	rec, ok := s.usernames[key]
	if !ok {
		return nil, model.ErrDocumentNotFound
	}
	return &rec, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.UserRecord, error) {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(model.CollectionUsers); err != nil {
		return nil, err
	}
	rec, ok := s.users[id]
	if !ok {
		return nil, model.ErrDocumentNotFound
	}
	return &rec, nil
}

func (s *Storage) GetUserStats(ctx context.Context, id model.UserID) (*model.UserStatsRecord, error) {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(model.CollectionUserStats); err != nil {
		return nil, err
	}
	rec, ok := s.userStats[id]
	if !ok {
		return nil, model.ErrDocumentNotFound
	}
	rec.Scores = append([]model.ScoreEntry(nil), rec.Scores...)
	return &rec, nil
}

func (s *Storage) GetCredential(ctx context.Context, email string) (*model.Credential, error) {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(model.CollectionCredentials); err != nil {
		return nil, err
	}
	cred, ok := s.credentials[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrDocumentNotFound
	}
	return &cred, nil
}

func (s *Storage) QueryLeaderboard(ctx context.Context, q storage.LeaderboardQuery) ([]model.LeaderboardEntry, error) {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(model.CollectionLeaderboard); err != nil {
		return nil, err
	}
	return storage.Evaluate(s.leaderboard, q), nil
}

// Writes

func (s *Storage) SaveUsername(ctx context.Context, key string, rec *model.UsernameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usernames[key] = *rec
	return nil
}

func (s *Storage) SaveUser(ctx context.Context, id model.UserID, rec *model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = *rec
	return nil
}

func (s *Storage) SaveUserStats(ctx context.Context, id model.UserID, rec *model.UserStatsRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *rec
	stored.Scores = append([]model.ScoreEntry(nil), rec.Scores...)
	s.userStats[id] = stored
	return nil
}

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[model.NormalizeEmail(cred.Email)] = *cred
	return nil
}

func (s *Storage) AddLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.leaderboard = append(s.leaderboard, *entry)
	return nil
}
