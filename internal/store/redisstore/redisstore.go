// Package redisstore holds the server's volatile auth state: one-shot
// password-reset tokens and the refresh-token denylist.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	resetTokenTTL  = time.Hour
	resetKeyPrefix = "reset:"
	denyKeyPrefix  = "deny:refresh:"
)

type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// NewWithClient is used by tests.
func NewWithClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Close() error { return s.rdb.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// SetResetToken stores token -> email for one hour.
func (s *Store) SetResetToken(ctx context.Context, token, email string) error {
	return s.rdb.Set(ctx, resetKeyPrefix+token, email, resetTokenTTL).Err()
}

// ConsumeResetToken returns the email bound to token and deletes it.
// A token can be consumed once; expired or unknown tokens return
// ("", false, nil).
func (s *Store) ConsumeResetToken(ctx context.Context, token string) (string, bool, error) {
	email, err := s.rdb.GetDel(ctx, resetKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return email, true, nil
}

// DenyRefreshToken marks a refresh token revoked until it would have
// expired anyway.
func (s *Store) DenyRefreshToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, denyKeyPrefix+token, "1", ttl).Err()
}

func (s *Store) IsRefreshTokenDenied(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, denyKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
