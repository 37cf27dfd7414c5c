package lexicon

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultCustomWordsKey is the Redis set holding user-added words.
const DefaultCustomWordsKey = "wordplay:custom_words"

// RedisSource is a set of custom words kept in Redis, merged into the main
// dictionary at load time.
type RedisSource struct {
	client *redis.Client
	key    string
}

func NewRedisSource(client *redis.Client, key string) *RedisSource {
	if key == "" {
		key = DefaultCustomWordsKey
	}
	return &RedisSource{client: client, key: key}
}

func (rs *RedisSource) Name() string {
	return "redis:" + rs.key
}

func (rs *RedisSource) Words(ctx context.Context) ([]string, error) {
	return rs.client.SMembers(ctx, rs.key).Result()
}

// Add inserts a word into the custom set.
func (rs *RedisSource) Add(ctx context.Context, word string) error {
	w, ok := Normalize(word)
	if !ok {
		return fmt.Errorf("not a word: %q", word)
	}
	return rs.client.SAdd(ctx, rs.key, w).Err()
}

// Remove deletes a word from the custom set.
func (rs *RedisSource) Remove(ctx context.Context, word string) error {
	w, ok := Normalize(word)
	if !ok {
		return fmt.Errorf("not a word: %q", word)
	}
	return rs.client.SRem(ctx, rs.key, w).Err()
}
