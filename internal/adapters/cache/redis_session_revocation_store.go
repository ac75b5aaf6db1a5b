package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Logout is implemented as a denylist: the session ID lives in Redis until
// the moment its token would have expired anyway, after which the key is
// pointless and the TTL reclaims it.
const revokedSessionKeyPrefix = "planora:session:revoked:"

type RedisSessionRevocationStore struct {
	client *redis.Client
}

func NewRedisSessionRevocationStore(client *redis.Client) *RedisSessionRevocationStore {
	return &RedisSessionRevocationStore{client: client}
}

func revokedSessionKey(sessionID uuid.UUID) string {
	return revokedSessionKeyPrefix + sessionID.String()
}

func (s *RedisSessionRevocationStore) MarkRevoked(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Expired claims can still reach logout; keep the flag briefly so a
		// racing authenticate sees it.
		ttl = time.Minute
	}
	return s.client.Set(ctx, revokedSessionKey(sessionID), "1", ttl).Err()
}

func (s *RedisSessionRevocationStore) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, revokedSessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
