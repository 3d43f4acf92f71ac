package usecase

import (
	"context"
	"time"

	"github.com/happi-pos/backend/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	CountProducts(ctx context.Context, id int64) (int64, error)
}

type ProductRepository interface {
	List(ctx context.Context, categoryID *int64) ([]ProductInfo, error)
	// Create и Update возвращают товар уже с денормализованным именем
	// категории, дочитанным тем же запросом.
	Create(ctx context.Context, product *domain.Product) (*ProductInfo, error)
	Update(ctx context.Context, product *domain.Product) (*ProductInfo, error)
	// Delete удаляет товар и возвращает ключ его изображения (если был).
	Delete(ctx context.Context, id int64) (*string, error)
	// GetNames возвращает имена товаров по идентификаторам.
	// Читает через транзакцию из контекста, если она открыта.
	GetNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type SaleRepository interface {
	// InsertSale и InsertLines выполняются в транзакции из контекста.
	InsertSale(ctx context.Context, total domain.Money) (*domain.Sale, error)
	InsertLines(ctx context.Context, saleID int64, lines []domain.SaleLine) error

	List(ctx context.Context) ([]SaleSummary, error)
	GetDetail(ctx context.Context, id int64) (*SaleDetail, error)
}

type DashboardRepository interface {
	TodaySummary(ctx context.Context) (*TodaySummaryRes, error)
	Series(ctx context.Context, days int) ([]DayPoint, error)
	History(ctx context.Context, start, end time.Time) ([]DayPoint, error)
	DailyReport(ctx context.Context, date time.Time) (*DailyReportRes, error)
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type OutboxRepository interface {
	// Create пишет событие в рамках транзакции из контекста.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	// GetTodaySummary возвращает (nil, nil) при промахе кэша.
	GetTodaySummary(ctx context.Context) (*TodaySummaryRes, error)
	SetTodaySummary(ctx context.Context, summary *TodaySummaryRes) error
	InvalidateToday(ctx context.Context) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
