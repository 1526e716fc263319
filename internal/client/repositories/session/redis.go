package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

const DefaultRedisPrefix = "carbid:session"

// RedisRepository keeps the session under two keys sharing a prefix, so
// several terminals on one machine can share a login.
type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(name string) string {
	return r.prefix + ":" + name
}

func (r *RedisRepository) Load(ctx context.Context) (models.Session, error) {
	var s models.Session

	vals, err := r.rdb.MGet(ctx, r.key(keyToken), r.key(keyUser)).Result()
	if err != nil {
		return s, fmt.Errorf("failed to load session: %w", err)
	}

	token, _ := vals[0].(string)
	if token == "" {
		return s, ErrNoSession
	}
	if user, ok := vals[1].(string); ok && user != "" {
		if err := json.Unmarshal([]byte(user), &s.User); err != nil {
			return s, fmt.Errorf("failed to decode saved user: %w", err)
		}
	}

	s.Token = token
	return s, nil
}

func (r *RedisRepository) Save(ctx context.Context, s models.Session) error {
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.key(keyToken), s.Token, 0)
		p.Set(ctx, r.key(keyUser), user, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	err := r.rdb.Del(ctx, r.key(keyToken), r.key(keyUser)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
