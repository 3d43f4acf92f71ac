package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase выдает и отзывает непрозрачные bearer-токены.
// Пароли хранятся только bcrypt-хэшами; никаких встроенных учеток.
type AuthUseCase struct {
	userRepo UserRepository
	sessions SessionStore
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, sessions SessionStore, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login проверяет учетные данные и выдает токен.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.sessions.Create(ctx, &SessionData{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{Token: token, Name: user.Name}, nil
}

// Logout отзывает токен; отзыв неизвестного токена не ошибка.
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	const op = "AuthUseCase.Logout"

	if token == "" {
		return e.Wrap(op, e.ErrTokenRequired)
	}

	if err := a.sessions.Destroy(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
