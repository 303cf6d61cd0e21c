package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/niya-shroff/folio/internal/domain"
	"github.com/niya-shroff/folio/internal/infra/database/models"
)

var tracer = otel.Tracer("auth")

const sessionTTL = 12 * time.Hour

// ProfileFinder resolves admin credential rows.
type ProfileFinder interface {
	GetByUsername(ctx context.Context, username string) (models.Profile, error)
}

// TokenStore persists session tokens with a TTL.
type TokenStore interface {
	Set(ctx context.Context, token, username string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	profiles ProfileFinder
	tokens   TokenStore
}

func NewAuthService(profiles ProfileFinder, tokens TokenStore) *AuthService {
	return &AuthService{
		profiles: profiles,
		tokens:   tokens,
	}
}

type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Login verifies the credentials against the profiles table and mints a
// session token. Unknown users and bad passwords return the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		span.RecordError(errors.Wrap(err, "profile lookup failed"))
		return nil, domain.ErrInvalidCredential
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		span.RecordError(errors.Wrap(err, "password mismatch"))
		return nil, domain.ErrInvalidCredential
	}

	token := newToken()
	err = s.tokens.Set(ctx, token, profile.Username, sessionTTL)
	if err != nil {
		span.RecordError(errors.Wrap(err, "session store failed"))
		return nil, err
	}

	return &AuthResult{
		Token:    token,
		Username: profile.Username,
		FullName: profile.FullName,
	}, nil
}

// Validate resolves a session token to its username.
func (s *AuthService) Validate(ctx context.Context, token string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Validate")
	defer span.End()

	username, err := s.tokens.Get(ctx, token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "token lookup failed"))
		return "", domain.ErrSessionExpired
	}
	return username, nil
}

// Logout discards a session token. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, token)
}

func newToken() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// RedisTokenStore keeps session tokens in redis under a key prefix.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Set(ctx context.Context, token, username string, ttl time.Duration) error {
	return s.rdb.Set(ctx, "session:"+token, username, ttl).Err()
}

func (s *RedisTokenStore) Get(ctx context.Context, token string) (string, error) {
	return s.rdb.Get(ctx, "session:"+token).Result()
}

func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "session:"+token).Err()
}
