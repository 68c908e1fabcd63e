package sessioninfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentgate/talentgate/pkg/session"
)

// RedisStore implementación del session.Store sobre Redis, para despliegues
// con más de una instancia del gateway
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore crea un store de sesiones respaldado en Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) session.Store {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func key(id string) string {
	return fmt.Sprintf("tg_session:%s", id)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := r.client.Get(ctx, key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, session.ErrSessionNotFound()
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	if s.Expired(time.Now()) {
		_ = r.client.Del(ctx, key(id)).Err()
		return nil, session.ErrSessionExpired()
	}
	return &s, nil
}

func (r *RedisStore) Set(ctx context.Context, s session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	ttl := r.ttl
	if !s.ExpiresAt.IsZero() {
		if until := time.Until(s.ExpiresAt); until > 0 && until < ttl {
			ttl = until
		}
	}

	if err := r.client.Set(ctx, key(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	s.ExpiresAt = time.Now().Add(ttl)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to touch session in Redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear session in Redis: %w", err)
	}
	return nil
}
