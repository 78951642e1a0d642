package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/redis"
)

// AccessSessionChecker is the surface auth middleware needs: is the access
// token's jti still backed by a live session.
type AccessSessionChecker interface {
	CheckAccess(ctx context.Context, jti string) (bool, error)
}

// Manager stores refresh sessions and per-token access markers in redis so
// logout and rotation invalidate tokens before their JWT expiry.
type Manager struct {
	store *redis.Client
	cfg   config.JWTConfig
}

func NewManager(store *redis.Client, cfg config.JWTConfig) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &Manager{store: store, cfg: cfg}, nil
}

// Create opens a session: a refresh token bound to (user, org) plus an access
// marker keyed by jti. Returns the refresh token.
func (m *Manager) Create(ctx context.Context, userID, orgID, jti string) (string, error) {
	refreshToken, err := randomToken()
	if err != nil {
		return "", err
	}
	ttl := m.cfg.RefreshTokenTTL()
	if err := m.store.Set(ctx, m.store.RefreshTokenKey(userID, orgID), refreshToken+"|"+jti, ttl); err != nil {
		return "", err
	}
	accessTTL := time.Duration(m.cfg.ExpirationMinutes) * time.Minute
	if err := m.store.Set(ctx, m.store.AccessSessionKey(jti), userID, accessTTL); err != nil {
		return "", err
	}
	return refreshToken, nil
}

// CheckAccess reports whether the jti still maps to a live access session.
func (m *Manager) CheckAccess(ctx context.Context, jti string) (bool, error) {
	if strings.TrimSpace(jti) == "" {
		return false, nil
	}
	_, err := m.store.Get(ctx, m.store.AccessSessionKey(jti))
	if err != nil {
		if isNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Rotate validates the presented refresh token and swaps in a fresh pair.
// Returns the new refresh token and the new access jti.
func (m *Manager) Rotate(ctx context.Context, userID, orgID, presented string) (string, string, error) {
	key := m.store.RefreshTokenKey(userID, orgID)
	stored, err := m.store.Get(ctx, key)
	if err != nil {
		if isNil(err) {
			return "", "", fmt.Errorf("refresh session not found")
		}
		return "", "", err
	}
	parts := strings.SplitN(stored, "|", 2)
	if parts[0] != presented {
		return "", "", fmt.Errorf("refresh token mismatch")
	}
	if len(parts) == 2 {
		_ = m.store.Del(ctx, m.store.AccessSessionKey(parts[1]))
	}

	newJTI := newJTI()
	refreshToken, err := m.Create(ctx, userID, orgID, newJTI)
	if err != nil {
		return "", "", err
	}
	return refreshToken, newJTI, nil
}

// Revoke tears the session down: both the refresh token and access marker die.
func (m *Manager) Revoke(ctx context.Context, userID, orgID string) error {
	key := m.store.RefreshTokenKey(userID, orgID)
	stored, err := m.store.Get(ctx, key)
	if err == nil {
		parts := strings.SplitN(stored, "|", 2)
		if len(parts) == 2 {
			_ = m.store.Del(ctx, m.store.AccessSessionKey(parts[1]))
		}
	}
	return m.store.Del(ctx, key)
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func newJTI() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

func isNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}
