package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNoToken      = errors.New("no session token in store")
	ErrTokenExpired = errors.New("session token expired")
)

// Store keeps bearer tokens in Redis, keyed "token:<realm>". The gateway
// reads the token on every request; nothing is cached in-process, so a token
// rotated by the operator takes effect on the very next call.
type Store struct {
	rdb   *redis.Client
	realm string
}

func NewStore(rdb *redis.Client, realm string) *Store {
	return &Store{rdb: rdb, realm: realm}
}

func (s *Store) key() string {
	return fmt.Sprintf("token:%s", s.realm)
}

// Token implements upstream.TokenSource. An expired JWT is rejected here so
// the caller gets a typed error instead of a doomed network round trip.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.rdb.Get(ctx, s.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoToken
		}
		return "", err
	}

	if expired, err := isExpired(token); err == nil && expired {
		return "", ErrTokenExpired
	}
	return token, nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, s.key(), token, 0).Err()
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key()).Err()
}

// isExpired parses without verifying the signature; the platform signs its
// own tokens and the console only needs the exp claim. Opaque (non-JWT)
// tokens pass through untouched.
func isExpired(token string) (bool, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, err
	}
	return !claims.VerifyExpiresAt(nowUnix(), false), nil
}
