package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/happi-pos/backend/internal/cfg"
	"github.com/happi-pos/backend/internal/repository/redis/converter"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/clients"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo держит сводку "за сегодня" в Redis.
// Ключ привязан к календарной дате, поэтому на границе суток
// вчерашняя запись становится недостижимой сама по себе.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.TodaySummaryConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.TodaySummaryConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetTodaySummary возвращает (nil, nil) при промахе кэша.
func (c *CacheRepo) GetTodaySummary(ctx context.Context) (*usecase.TodaySummaryRes, error) {
	data, err := c.client.Client.Get(ctx, c.todayKey()).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.TodaySummaryRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), c.todayKey()).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // битая запись, считаем промахом
	}

	return c.conv.ToUseCase(&model), nil
}

// SetTodaySummary кэширует сводку с TTL из конфига, ошибки только логирует.
func (c *CacheRepo) SetTodaySummary(ctx context.Context, summary *usecase.TodaySummaryRes) error {
	data, err := json.Marshal(c.conv.ToRedisModel(summary))
	if err != nil {
		c.logger.Warnf("Failed to marshal today summary: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.todayKey(), data, c.cfg.DashboardTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateToday сбрасывает сводку после записи продажи.
func (c *CacheRepo) InvalidateToday(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, c.todayKey()).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) todayKey() string {
	return fmt.Sprintf("dashboard:hoy:%s", time.Now().Format("2006-01-02"))
}
