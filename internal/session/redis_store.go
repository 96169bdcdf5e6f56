package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the token in a single redis key, for setups where the
// console runs on more than one machine.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: TokenKey}
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
