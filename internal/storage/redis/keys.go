package redis

import (
	"fmt"

	"github.com/mcoot/scoreboard/internal/model"
)

// keys builds Redis keys under a common prefix.
// Documents mirror the collection/document layout of the hosted store.
type keys struct {
	prefix string
}

// document returns the key for collection/id
func (k keys) document(collection, id string) string {
	return fmt.Sprintf("%s:%s:%s", k.prefix, collection, id)
}

func (k keys) username(key string) string {
	return k.document(model.CollectionUsernames, key)
}

func (k keys) user(id model.UserID) string {
	return k.document(model.CollectionUsers, string(id))
}

func (k keys) userStats(id model.UserID) string {
	return k.document(model.CollectionUserStats, string(id))
}

func (k keys) credential(email string) string {
	return k.document(model.CollectionCredentials, email)
}

func (k keys) leaderboardEntry(id string) string {
	return k.document(model.CollectionLeaderboard, id)
}

// leaderboardByTime is the ZSET of entry keys scored by timestamp (unix millis)
func (k keys) leaderboardByTime() string {
	return fmt.Sprintf("%s:idx:%s:by_time", k.prefix, model.CollectionLeaderboard)
}
