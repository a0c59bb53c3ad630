package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Documents are JSON blobs; the leaderboard is indexed by timestamp in a sorted set.
type Storage struct {
	client *redis.Client
	keys   keys
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		keys:   keys{prefix: prefix},
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interfaces
var (
	_ storage.Store  = (*Storage)(nil)
	_ storage.Writer = (*Storage)(nil)
)

// getJSON loads and decodes a single document
func (s *Storage) getJSON(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrDocumentNotFound
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (s *Storage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// Reads

func (s *Storage) GetUsername(ctx context.Context, key string) (*model.UsernameRecord, error) {
	var rec model.UsernameRecord
	if err := s.getJSON(ctx, s.keys.username(key), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.UserRecord, error) {
	var rec model.UserRecord
	if err := s.getJSON(ctx, s.keys.user(id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetUserStats(ctx context.Context, id model.UserID) (*model.UserStatsRecord, error) {
	var rec model.UserStatsRecord
	if err := s.getJSON(ctx, s.keys.userStats(id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) GetCredential(ctx context.Context, email string) (*model.Credential, error) {
	var cred model.Credential
	if err := s.getJSON(ctx, s.keys.credential(model.NormalizeEmail(email)), &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (s *Storage) QueryLeaderboard(ctx context.Context, q storage.LeaderboardQuery) ([]model.LeaderboardEntry, error) {
	// Narrow by time window in Redis, order and limit in process
	lower := "-inf"
	if !q.Since.IsZero() {
		lower = strconv.FormatInt(q.Since.UnixMilli(), 10)
	}

	entryKeys, err := s.client.ZRangeByScore(ctx, s.keys.leaderboardByTime(), &redis.ZRangeBy{
		Min: lower,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, err
	}

	if len(entryKeys) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	values, err := s.client.MGet(ctx, entryKeys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Entry removed since the index was read
		}
		var entry model.LeaderboardEntry
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			continue // Skip invalid data
		}
		entries = append(entries, entry)
	}

	return storage.Evaluate(entries, q), nil
}

// Writes

func (s *Storage) SaveUsername(ctx context.Context, key string, rec *model.UsernameRecord) error {
	return s.setJSON(ctx, s.keys.username(key), rec)
}

func (s *Storage) SaveUser(ctx context.Context, id model.UserID, rec *model.UserRecord) error {
	return s.setJSON(ctx, s.keys.user(id), rec)
}

func (s *Storage) SaveUserStats(ctx context.Context, id model.UserID, rec *model.UserStatsRecord) error {
	return s.setJSON(ctx, s.keys.userStats(id), rec)
}

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	return s.setJSON(ctx, s.keys.credential(model.NormalizeEmail(cred.Email)), cred)
}

func (s *Storage) AddLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := s.keys.leaderboardEntry(entry.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, s.keys.leaderboardByTime(), redis.Z{
		Score:  float64(entry.Timestamp.UnixMilli()),
		Member: key,
	})
	_, err = pipe.Exec(ctx)
	return err
}
