package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, e.ErrNotFound
	}
	return s.user, nil
}

type stubSessionStore struct {
	created   *SessionData
	destroyed string
}

func (s *stubSessionStore) Create(ctx context.Context, data *SessionData) (string, error) {
	s.created = data
	return "test-token", nil
}

func (s *stubSessionStore) Get(ctx context.Context, token string) (*SessionData, error) {
	return nil, nil
}

func (s *stubSessionStore) Destroy(ctx context.Context, token string) error {
	s.destroyed = token
	return nil
}

func newAuthFixture(t *testing.T, email, password string) (*AuthUseCase, *stubSessionStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := &stubSessionStore{}
	uc := NewAuthUC(&stubUserRepo{user: &domain.User{
		ID:           7,
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
	}}, sessions, logger.NewSlogLogger())

	return uc, sessions
}

func TestLoginSuccess(t *testing.T) {
	uc, sessions := newAuthFixture(t, "admin@happi.mx", "helado123")

	res, err := uc.Login(context.Background(), &LoginReq{Email: "admin@happi.mx", Password: "helado123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, "Admin", res.Name)
	require.NotNil(t, sessions.created)
	assert.Equal(t, int64(7), sessions.created.UserID)
}

func TestLoginNormalizesEmail(t *testing.T) {
	uc, _ := newAuthFixture(t, "admin@happi.mx", "helado123")

	_, err := uc.Login(context.Background(), &LoginReq{Email: "  ADMIN@Happi.MX ", Password: "helado123"})
	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(t, "admin@happi.mx", "helado123")

	_, err := uc.Login(context.Background(), &LoginReq{Email: "admin@happi.mx", Password: "wrong"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

// Неизвестный email и неверный пароль должны быть неразличимы снаружи.
func TestLoginUnknownEmail(t *testing.T) {
	uc, _ := newAuthFixture(t, "admin@happi.mx", "helado123")

	_, err := uc.Login(context.Background(), &LoginReq{Email: "nobody@happi.mx", Password: "helado123"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, e.ErrNotFound)
}

func TestLoginMissingFields(t *testing.T) {
	uc, _ := newAuthFixture(t, "admin@happi.mx", "helado123")

	_, err := uc.Login(context.Background(), &LoginReq{Email: "", Password: "x"})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.Login(context.Background(), &LoginReq{Email: "admin@happi.mx", Password: ""})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestLogout(t *testing.T) {
	uc, sessions := newAuthFixture(t, "admin@happi.mx", "helado123")

	require.NoError(t, uc.Logout(context.Background(), "some-token"))
	assert.Equal(t, "some-token", sessions.destroyed)

	err := uc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrTokenRequired)
}
