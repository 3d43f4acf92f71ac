package pgdb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/happi-pos/backend/internal/cfg"
	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/repository/pgdb/converter"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
	"github.com/happi-pos/backend/pkg/postgres"
)

// Интеграционные тесты гоняются против живого PostgreSQL.
// Без POSTGRES_TEST_HOST пропускаются, чтобы не ломать обычный прогон.
func testDB(t *testing.T) *postgres.PgDatabase {
	t.Helper()

	host := os.Getenv("POSTGRES_TEST_HOST")
	if host == "" {
		t.Skip("POSTGRES_TEST_HOST not set, skipping integration test")
	}

	cfg := &config.PGDBCfg{
		Host:          host,
		Port:          getenvOr("POSTGRES_TEST_PORT", "5432"),
		User:          getenvOr("POSTGRES_TEST_USER", "postgres"),
		Password:      getenvOr("POSTGRES_TEST_PASSWORD", "postgres"),
		DBName:        getenvOr("POSTGRES_TEST_DB", "happi_test"),
		SSLMode:       "disable",
		MigrationsDir: "../../../db/migrations",
	}

	db, err := postgres.Connect(cfg)
	if err != nil {
		t.Skipf("postgres unreachable: %v", err)
	}

	require.NoError(t, db.RunMigrations(logger.NewSlogLogger()))

	t.Cleanup(func() {
		ctx := context.Background()
		db.Pool.Exec(ctx, "TRUNCATE detalle_venta, ventas, productos, categorias, outbox_events RESTART IDENTITY CASCADE")
		db.Close()
	})

	return db
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedProduct(t *testing.T, db *postgres.PgDatabase, name string, price int64) int64 {
	t.Helper()

	var id int64
	err := db.Pool.QueryRow(context.Background(),
		"INSERT INTO productos (nombre, precio) VALUES ($1, $2) RETURNING id", name, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func newSaleUC(db *postgres.PgDatabase) *usecase.SaleUseCase {
	log := logger.NewSlogLogger()
	return usecase.NewSaleUC(
		NewSaleRepo(db.Pool),
		NewProductRepo(db.Pool, converter.NewProductConverterImpl()),
		NewOutboxEventRepo(db.Pool, converter.NewOutboxEventConverterImpl()),
		db.Pool,
		noopCache{},
		log,
	)
}

type noopCache struct{}

func (noopCache) GetTodaySummary(ctx context.Context) (*usecase.TodaySummaryRes, error) {
	return nil, nil
}
func (noopCache) SetTodaySummary(ctx context.Context, s *usecase.TodaySummaryRes) error { return nil }
func (noopCache) InvalidateToday(ctx context.Context) error                             { return nil }

func countRows(t *testing.T, db *postgres.PgDatabase, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRecordSaleAndReadBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	vainilla := seedProduct(t, db, "Vainilla", 4000)
	fresa := seedProduct(t, db, "Fresa", 2550)

	uc := newSaleUC(db)
	res, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
		{ProductID: vainilla, Quantity: 2, UnitPrice: 4000},
		{ProductID: fresa, Quantity: 1, UnitPrice: 2550},
	}, 10550))
	require.NoError(t, err)
	assert.Equal(t, domain.Money(10550), res.Total)

	detail, err := uc.GetSaleDetail(ctx, res.SaleID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 2)

	// Сохранение денег: сумма строк равна итогу с точностью до центаво
	var sum domain.Money
	for _, line := range detail.Lines {
		sum += line.Subtotal
	}
	assert.Equal(t, detail.Total, sum)

	// Продажа породила ровно одно outbox-событие
	assert.Equal(t, int64(1), countRows(t, db, "outbox_events"))
}

// Продажа с неизвестным товаром не должна оставить ни одной строки:
// ни заголовка, ни позиций, ни события.
func TestRecordSaleUnknownProductLeavesNothing(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	known := seedProduct(t, db, "Vainilla", 4000)

	ventasBefore := countRows(t, db, "ventas")
	linesBefore := countRows(t, db, "detalle_venta")
	outboxBefore := countRows(t, db, "outbox_events")

	uc := newSaleUC(db)
	_, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
		{ProductID: known, Quantity: 1, UnitPrice: 4000},
		{ProductID: 999999, Quantity: 1, UnitPrice: 100},
	}, 4100))
	require.ErrorIs(t, err, e.ErrNotFound)

	assert.Equal(t, ventasBefore, countRows(t, db, "ventas"))
	assert.Equal(t, linesBefore, countRows(t, db, "detalle_venta"))
	assert.Equal(t, outboxBefore, countRows(t, db, "outbox_events"))
}

func TestDeleteProductKeepsLineSnapshot(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id := seedProduct(t, db, "Mango", 3000)

	uc := newSaleUC(db)
	res, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
		{ProductID: id, Quantity: 1, UnitPrice: 3000},
	}, 3000))
	require.NoError(t, err)

	productRepo := NewProductRepo(db.Pool, converter.NewProductConverterImpl())
	_, err = productRepo.Delete(ctx, id)
	require.NoError(t, err)

	detail, err := uc.GetSaleDetail(ctx, res.SaleID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Nil(t, detail.Lines[0].ProductID)
	assert.Equal(t, "Mango", detail.Lines[0].ProductName)
	assert.Equal(t, domain.Money(3000), detail.Lines[0].UnitPrice)
}

func TestCategoryDeleteWithProductsConflicts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	catRepo := NewCategoryRepo(db.Pool, converter.NewCategoryConverterImpl())
	cat, err := catRepo.Create(ctx, domain.NewCategory("Paletas"))
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx,
		"INSERT INTO productos (nombre, precio, categoria_id) VALUES ($1, $2, $3)", "Limon", 1500, cat.ID)
	require.NoError(t, err)

	err = catRepo.Delete(ctx, cat.ID)
	assert.ErrorIs(t, err, e.ErrHasDependents)

	// Категория на месте
	n, err := catRepo.CountProducts(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestHistoryAgreesWithDailyReport(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id := seedProduct(t, db, "Coco", 2000)
	uc := newSaleUC(db)

	for i := 0; i < 3; i++ {
		_, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
			{ProductID: id, Quantity: 2, UnitPrice: 2000},
		}, 4000))
		require.NoError(t, err)
	}

	dashRepo := NewDashboardRepo(db.Pool)
	today := time.Now()

	points, err := dashRepo.History(ctx, today, today)
	require.NoError(t, err)
	require.Len(t, points, 1)

	report, err := dashRepo.DailyReport(ctx, today)
	require.NoError(t, err)

	assert.Equal(t, points[0].SaleCount, report.SaleCount)
	assert.Equal(t, points[0].TotalRevenue, report.Revenue)
	require.NotNil(t, report.TopProduct)
	assert.Equal(t, "Coco", report.TopProduct.Name)
	assert.Equal(t, int64(6), report.TopProduct.Units)
}

func TestDuplicateCategoryName(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	catRepo := NewCategoryRepo(db.Pool, converter.NewCategoryConverterImpl())
	_, err := catRepo.Create(ctx, domain.NewCategory("Conos"))
	require.NoError(t, err)

	_, err = catRepo.Create(ctx, domain.NewCategory("Conos"))
	assert.ErrorIs(t, err, e.ErrDuplicateName)
}

func TestWeekSeriesZeroFills(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	dashRepo := NewDashboardRepo(db.Pool)
	points, err := dashRepo.Series(ctx, 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	// По возрастанию даты, последняя точка — сегодня
	last := points[len(points)-1].Date.Format("2006-01-02")
	assert.Equal(t, time.Now().Format("2006-01-02"), last)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Date.After(points[i-1].Date),
			fmt.Sprintf("points must be ascending, got %v before %v", points[i-1].Date, points[i].Date))
	}
}

// Две одновременные продажи пишутся независимо: каждая получает свой
// заголовок, свои строки и свое outbox-событие, без перемешивания позиций.
func TestConcurrentRecordSalesStayIndependent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	vainilla := seedProduct(t, db, "Vainilla", 4000)
	fresa := seedProduct(t, db, "Fresa", 2550)

	uc := newSaleUC(db)

	type result struct {
		res *usecase.RecordSaleRes
		err error
	}
	results := make(chan result, 2)

	go func() {
		res, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
			{ProductID: vainilla, Quantity: 2, UnitPrice: 4000},
		}, 8000))
		results <- result{res, err}
	}()
	go func() {
		res, err := uc.RecordSale(ctx, usecase.NewRecordSaleReq([]usecase.CartLine{
			{ProductID: fresa, Quantity: 3, UnitPrice: 2550},
		}, 7650))
		results <- result{res, err}
	}()

	byTotal := map[domain.Money]*usecase.RecordSaleRes{}
	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		byTotal[r.res.Total] = r.res
	}
	require.Len(t, byTotal, 2)

	// Каждая продажа сама по себе удовлетворяет сохранению денег
	// и содержит только свои позиции.
	expected := map[domain.Money]string{8000: "Vainilla", 7650: "Fresa"}
	for total, res := range byTotal {
		detail, err := uc.GetSaleDetail(ctx, res.SaleID)
		require.NoError(t, err)
		require.Len(t, detail.Lines, 1)
		assert.Equal(t, expected[total], detail.Lines[0].ProductName)

		var sum domain.Money
		for _, line := range detail.Lines {
			sum += line.Subtotal
		}
		assert.Equal(t, total, sum)
		assert.Equal(t, detail.Total, sum)
	}

	assert.Equal(t, int64(2), countRows(t, db, "ventas"))
	assert.Equal(t, int64(2), countRows(t, db, "detalle_venta"))
	assert.Equal(t, int64(2), countRows(t, db, "outbox_events"))
}

// Create и Update товара возвращают имя категории сразу, тем же запросом.
func TestProductWriteReturnsCategoryName(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	catRepo := NewCategoryRepo(db.Pool, converter.NewCategoryConverterImpl())
	cat, err := catRepo.Create(ctx, domain.NewCategory("Nieves"))
	require.NoError(t, err)

	productRepo := NewProductRepo(db.Pool, converter.NewProductConverterImpl())
	info, err := productRepo.Create(ctx, domain.NewProduct("Guanabana", 3500, &cat.ID, nil))
	require.NoError(t, err)
	require.NotNil(t, info.CategoryName)
	assert.Equal(t, "Nieves", *info.CategoryName)

	// Снятие категории обнуляет и денормализованное имя
	updated, err := productRepo.Update(ctx, &domain.Product{
		ID:    info.ID,
		Name:  "Guanabana",
		Price: 3600,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryName)
	assert.Equal(t, domain.Money(3600), updated.Price)
}
