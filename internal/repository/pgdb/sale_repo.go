package pgdb

import (
	"context"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SaleRepo реализует репозиторий продаж поверх PostgreSQL.
// Записи выполняются только через транзакцию из контекста.
type SaleRepo struct {
	pool *pgxpool.Pool
}

func NewSaleRepo(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// InsertSale вставляет заголовок продажи; метку времени назначает сервер БД.
func (s *SaleRepo) InsertSale(ctx context.Context, total domain.Money) (*domain.Sale, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO ventas (total) VALUES ($1)
		RETURNING id, total, fecha;
	`

	var (
		sale  domain.Sale
		cents int64
	)
	if err := tx.QueryRow(ctx, query, int64(total)).
		Scan(&sale.ID, &cents, &sale.Fecha); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	sale.Total = domain.Money(cents)

	return &sale, nil
}

// InsertLines вставляет все строки продажи в рамках открытой транзакции.
func (s *SaleRepo) InsertLines(ctx context.Context, saleID int64, lines []domain.SaleLine) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO detalle_venta (venta_id, producto_id, producto_nombre, cantidad, precio)
		VALUES ($1, $2, $3, $4, $5);
	`

	for _, line := range lines {
		if _, err := tx.Exec(ctx, query, saleID, line.ProductID, line.ProductName, line.Quantity, int64(line.UnitPrice)); err != nil {
			if postgresForeignKey(err) {
				return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
			}

			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// List возвращает заголовки продаж с количеством позиций, новые первыми.
func (s *SaleRepo) List(ctx context.Context) ([]usecase.SaleSummary, error) {
	query := `
		SELECT v.id, v.total, v.fecha, COUNT(dv.id)
		FROM ventas v
		LEFT JOIN detalle_venta dv ON v.id = dv.venta_id
		GROUP BY v.id
		ORDER BY v.fecha DESC;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SaleSummary, 0)
	for rows.Next() {
		var (
			summary usecase.SaleSummary
			cents   int64
		)
		if err := rows.Scan(&summary.ID, &cents, &summary.Fecha, &summary.Items); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		summary.Total = domain.Money(cents)

		result = append(result, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetDetail возвращает продажу со строками и снимками имен товаров.
func (s *SaleRepo) GetDetail(ctx context.Context, id int64) (*usecase.SaleDetail, error) {
	headerQuery := `
		SELECT id, total, fecha
		FROM ventas
		WHERE id = $1;
	`

	var (
		detail usecase.SaleDetail
		cents  int64
	)
	if err := s.pool.QueryRow(ctx, headerQuery, id).
		Scan(&detail.ID, &cents, &detail.Fecha); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	detail.Total = domain.Money(cents)

	linesQuery := `
		SELECT producto_id, producto_nombre, cantidad, precio
		FROM detalle_venta
		WHERE venta_id = $1
		ORDER BY id ASC;
	`

	rows, err := s.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	detail.Lines = make([]usecase.SaleLineInfo, 0)
	for rows.Next() {
		var (
			line  usecase.SaleLineInfo
			price int64
		)
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		line.UnitPrice = domain.Money(price)
		line.Subtotal = domain.Money(line.Quantity * price)

		detail.Lines = append(detail.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &detail, nil
}
