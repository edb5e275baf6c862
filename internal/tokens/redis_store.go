package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"triply/internal/shared/database"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "refresh_token:"

// RedisRefreshStore keeps each refresh token under its own key with a TTL
// matching its expiry.
type RedisRefreshStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRefreshStore(client *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{client: client, now: time.Now}
}

func (s *RedisRefreshStore) key(token string) string {
	return redisKeyPrefix + token
}

func (s *RedisRefreshStore) Create(ctx context.Context, rt *RefreshToken) error {
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = s.now().UTC()
	}
	data, err := json.Marshal(rt)
	if err != nil {
		return fmt.Errorf("marshal refresh token: %w", err)
	}

	ttl := rt.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		ttl = time.Second
	}

	ok, err := s.client.SetNX(ctx, s.key(rt.Token), data, ttl).Result()
	if err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	if !ok {
		return database.ErrDuplicate
	}
	return nil
}

func (s *RedisRefreshStore) FindByToken(ctx context.Context, token string) (*RefreshToken, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	var rt RefreshToken
	if err := json.Unmarshal(data, &rt); err != nil {
		return nil, fmt.Errorf("unmarshal refresh token: %w", err)
	}
	return &rt, nil
}

func (s *RedisRefreshStore) Delete(ctx context.Context, token string) (int64, error) {
	n, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return 0, fmt.Errorf("delete refresh token: %w", err)
	}
	return n, nil
}
