package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/communitydesk/eventdesk/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStore records live login sessions in redis, keyed by the JWT ID.
// A token whose session is gone (logged out or expired) is rejected even if
// its signature is still valid.
type SessionStore struct {
	cache *cache.Client
}

func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

func (s *SessionStore) StoreSession(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	payload, err := json.Marshal(map[string]uint{"user_id": userID})
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = s.cache.Set(ctx, sessionKeyPrefix+tokenID, payload, ttl); err != nil {
		return fmt.Errorf("s.cache.Set -> %w", err)
	}

	return nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, tokenID string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+tokenID); err != nil {
		return fmt.Errorf("s.cache.Delete -> %w", err)
	}

	return nil
}

// IsActive reports whether the session is still live. Store errors fail open
// with a warning so an unreachable redis degrades to signature-only auth
// instead of locking everyone out.
func (s *SessionStore) IsActive(ctx context.Context, tokenID string) bool {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil {
		zap.L().Warn("session lookup failed, accepting token on signature alone", zap.Error(err))

		return true
	}

	return data != nil
}
