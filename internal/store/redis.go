package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "sheet:"

// RedisStore implements TabularStore on Redis lists. RPUSH/LRANGE keep the
// insertion order the dedup logic depends on.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Append(ctx context.Context, table string, row []string) error {
	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	if err := r.client.RPush(ctx, redisKeyPrefix+table, cells).Err(); err != nil {
		return fmt.Errorf("redis append to %s: %w", table, err)
	}
	return nil
}

func (r *RedisStore) Scan(ctx context.Context, table string) ([][]string, error) {
	raw, err := r.client.LRange(ctx, redisKeyPrefix+table, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis scan of %s: %w", table, err)
	}

	rows := make([][]string, 0, len(raw))
	for _, item := range raw {
		var row []string
		if err := json.Unmarshal([]byte(item), &row); err != nil {
			return nil, fmt.Errorf("decode row in %s: %w", table, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
