package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationPrefix = "auth:revoked:"

// RevocationStore records revoked token IDs (jti) in Redis until their
// natural expiry, so logout takes effect before the JWT runs out.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore wraps a Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks a token ID revoked until expiresAt.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s == nil || s.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revocationPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been revoked. Redis being
// unreachable fails open: the JWT signature and expiry still guard access.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if s == nil || s.client == nil || tokenID == "" {
		return false
	}
	exists, err := s.client.Exists(ctx, revocationPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return exists > 0
}
