package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type sessionCtxKey struct{}

// AuthMiddleware проверяет Authorization: Bearer <token> через SessionStore.
type AuthMiddleware struct {
	sessions usecase.SessionStore
	logger   logger.Logger
}

func NewAuthMiddleware(sessions usecase.SessionStore, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			WriteError(w, err)
			return
		}

		data, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			m.logger.Warnf("session lookup failed: %v", err)
			WriteError(w, e.ErrInternalServerError)
			return
		}
		if data == nil {
			WriteError(w, e.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromCtx возвращает данные сессии, положенные middleware.
func SessionFromCtx(ctx context.Context) *usecase.SessionData {
	data, _ := ctx.Value(sessionCtxKey{}).(*usecase.SessionData)
	return data
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", e.ErrTokenRequired
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", e.ErrTokenRequired
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", e.ErrTokenRequired
	}

	return token, nil
}
