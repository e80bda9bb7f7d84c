/*
Package storage
File: redis.go
Description:
    Redis-backed save store. The whole game document is one value under
    the player's save key, mirroring the cloud key/value storage of the
    original client platform.
*/

package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/everforgeworks/pet-cafe-server/internal/game"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, game.ErrNoSave
	}
	return raw, err
}

func (s *RedisStore) Save(ctx context.Context, key string, doc []byte) error {
	return s.Client.Set(ctx, key, doc, 0).Err()
}
