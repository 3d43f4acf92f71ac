package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	r "github.com/redis/go-redis/v9"

	"github.com/happi-pos/backend/internal/cfg"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/clients"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// RedisStore хранит сессии в Redis под непрозрачными токенами.
// Токен — 32 случайных байта в hex, перехват подбора смысла не имеет.
type RedisStore struct {
	client *clients.RedisClient
	cfg    *cfg.AuthCfg
}

func NewRedisStore(client *clients.RedisClient, cfg *cfg.AuthCfg) *RedisStore {
	return &RedisStore{
		client: client,
		cfg:    cfg,
	}
}

// Create выдает новый токен и кладет полезную нагрузку под него с TTL.
func (s *RedisStore) Create(ctx context.Context, data *usecase.SessionData) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, sessionKey(token), payload, s.cfg.SessionTTL).Err(); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return token, nil
}

// Get возвращает (nil, nil), если токен неизвестен или истек.
func (s *RedisStore) Get(ctx context.Context, token string) (*usecase.SessionData, error) {
	payload, err := s.client.Client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var data usecase.SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &data, nil
}

// Destroy отзывает токен. Отзыв несуществующего токена не ошибка.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
