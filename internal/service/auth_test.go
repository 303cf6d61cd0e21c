package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/niya-shroff/folio/internal/domain"
	"github.com/niya-shroff/folio/internal/infra/database/models"
)

type mockProfiles struct {
	profile models.Profile
}

func (m *mockProfiles) GetByUsername(ctx context.Context, username string) (models.Profile, error) {
	if username != m.profile.Username {
		return models.Profile{}, domain.NotFoundError{Resource: "profile"}
	}
	return m.profile, nil
}

type mockTokens struct {
	tokens map[string]string
}

func newMockTokens() *mockTokens {
	return &mockTokens{tokens: make(map[string]string)}
}

func (m *mockTokens) Set(ctx context.Context, token, username string, ttl time.Duration) error {
	m.tokens[token] = username
	return nil
}
func (m *mockTokens) Get(ctx context.Context, token string) (string, error) {
	username, ok := m.tokens[token]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return username, nil
}
func (m *mockTokens) Delete(ctx context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

func testProfiles(t *testing.T) *mockProfiles {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &mockProfiles{profile: models.Profile{
		Username:     "niya",
		FullName:     "Niya Shroff",
		PasswordHash: string(hash),
	}}
}

func TestLoginSuccess(t *testing.T) {
	tokens := newMockTokens()
	auth := NewAuthService(testProfiles(t), tokens)

	result, err := auth.Login(context.Background(), "niya", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a session token")
	}
	if result.Username != "niya" || result.FullName != "Niya Shroff" {
		t.Fatalf("unexpected profile in result: %+v", result)
	}

	username, err := auth.Validate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if username != "niya" {
		t.Fatalf("expected niya, got %s", username)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	auth := NewAuthService(testProfiles(t), newMockTokens())

	// Unknown user and wrong password must be indistinguishable.
	_, badUser := auth.Login(context.Background(), "ghost", "hunter2")
	_, badPass := auth.Login(context.Background(), "niya", "wrong")

	if !errors.Is(badUser, domain.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential for unknown user, got %v", badUser)
	}
	if !errors.Is(badPass, domain.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential for wrong password, got %v", badPass)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	tokens := newMockTokens()
	auth := NewAuthService(testProfiles(t), tokens)

	result, err := auth.Login(context.Background(), "niya", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := auth.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = auth.Validate(context.Background(), result.Token)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected session expired, got %v", err)
	}
}
