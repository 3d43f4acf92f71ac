package pgdb

import (
	"context"
	"sort"
	"time"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DashboardRepo считает агрегаты над ventas/detalle_venta.
// Все суммы — BIGINT-центаво, плавающей точки в расчетах нет.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

func NewDashboardRepo(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// TodaySummary возвращает сводку текущего календарного дня сервера.
func (d *DashboardRepo) TodaySummary(ctx context.Context) (*usecase.TodaySummaryRes, error) {
	headQuery := `
		SELECT COUNT(*), COALESCE(SUM(v.total), 0),
			COALESCE((
				SELECT SUM(dv.cantidad)
				FROM detalle_venta dv
				JOIN ventas vv ON dv.venta_id = vv.id
				WHERE vv.fecha::date = CURRENT_DATE
			), 0)
		FROM ventas v
		WHERE v.fecha::date = CURRENT_DATE;
	`

	var (
		summary usecase.TodaySummaryRes
		cents   int64
	)
	if err := d.pool.QueryRow(ctx, headQuery).
		Scan(&summary.SaleCount, &cents, &summary.UnitsSold); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	summary.TotalRevenue = domain.Money(cents)

	topQuery := `
		SELECT dv.producto_nombre, SUM(dv.cantidad), SUM(dv.cantidad * dv.precio)
		FROM detalle_venta dv
		JOIN ventas v ON dv.venta_id = v.id
		WHERE v.fecha::date = CURRENT_DATE
		GROUP BY dv.producto_nombre
		ORDER BY SUM(dv.cantidad) DESC, dv.producto_nombre ASC
		LIMIT 5;
	`

	rows, err := d.pool.Query(ctx, topQuery)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	summary.TopProducts = make([]usecase.TopProduct, 0, 5)
	for rows.Next() {
		var (
			top     usecase.TopProduct
			revenue int64
		)
		if err := rows.Scan(&top.Name, &top.Units, &revenue); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		top.Revenue = domain.Money(revenue)

		summary.TopProducts = append(summary.TopProducts, top)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &summary, nil
}

// Series возвращает точку на каждый из последних days календарных дней,
// включая сегодняшний, по возрастанию даты. Дни без продаж — нули.
func (d *DashboardRepo) Series(ctx context.Context, days int) ([]usecase.DayPoint, error) {
	query := `
		SELECT dia::date, COUNT(v.id), COALESCE(SUM(v.total), 0)
		FROM generate_series(
			CURRENT_DATE - ($1::int - 1) * INTERVAL '1 day',
			CURRENT_DATE,
			INTERVAL '1 day'
		) AS dia
		LEFT JOIN ventas v ON v.fecha::date = dia::date
		GROUP BY dia::date
		ORDER BY dia::date ASC;
	`

	return d.queryDayPoints(ctx, query, days)
}

// History возвращает посуточные агрегаты диапазона, по убыванию даты.
// Дни без продаж в выборку не попадают.
func (d *DashboardRepo) History(ctx context.Context, start, end time.Time) ([]usecase.DayPoint, error) {
	query := `
		SELECT v.fecha::date AS dia, COUNT(*), COALESCE(SUM(v.total), 0)
		FROM ventas v
		WHERE v.fecha::date BETWEEN $1::date AND $2::date
		GROUP BY dia
		ORDER BY dia DESC;
	`

	return d.queryDayPoints(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// DailyReport загружает продажи дня со строками и собирает сводку.
func (d *DashboardRepo) DailyReport(ctx context.Context, date time.Time) (*usecase.DailyReportRes, error) {
	report := &usecase.DailyReportRes{
		Date:  date,
		Sales: make([]usecase.SaleDetail, 0),
	}

	salesQuery := `
		SELECT id, total, fecha
		FROM ventas
		WHERE fecha::date = $1::date
		ORDER BY fecha ASC, id ASC;
	`

	day := date.Format("2006-01-02")

	rows, err := d.pool.Query(ctx, salesQuery, day)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	index := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			sale  usecase.SaleDetail
			cents int64
		)
		if err := rows.Scan(&sale.ID, &cents, &sale.Fecha); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		sale.Total = domain.Money(cents)
		sale.Lines = make([]usecase.SaleLineInfo, 0)

		index[sale.ID] = len(report.Sales)
		ids = append(ids, sale.ID)
		report.Sales = append(report.Sales, sale)

		report.SaleCount++
		report.Revenue += sale.Total
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(ids) == 0 {
		return report, nil
	}

	linesQuery := `
		SELECT venta_id, producto_id, producto_nombre, cantidad, precio
		FROM detalle_venta
		WHERE venta_id = ANY($1)
		ORDER BY venta_id ASC, id ASC;
	`

	lineRows, err := d.pool.Query(ctx, linesQuery, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer lineRows.Close()

	type productAgg struct {
		name    string
		units   int64
		revenue int64
	}
	perProduct := make(map[string]*productAgg)

	for lineRows.Next() {
		var (
			ventaID int64
			line    usecase.SaleLineInfo
			price   int64
		)
		if err := lineRows.Scan(&ventaID, &line.ProductID, &line.ProductName, &line.Quantity, &price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		line.UnitPrice = domain.Money(price)
		line.Subtotal = domain.Money(line.Quantity * price)

		i, ok := index[ventaID]
		if !ok {
			continue
		}
		report.Sales[i].Lines = append(report.Sales[i].Lines, line)
		report.UnitsSold += line.Quantity

		agg, ok := perProduct[line.ProductName]
		if !ok {
			agg = &productAgg{name: line.ProductName}
			perProduct[line.ProductName] = agg
		}
		agg.units += line.Quantity
		agg.revenue += line.Quantity * price
	}
	if err := lineRows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Самый продаваемый товар дня; при равенстве берется меньшее имя.
	names := make([]string, 0, len(perProduct))
	for name := range perProduct {
		names = append(names, name)
	}
	sort.Strings(names)

	var top *usecase.TopProduct
	for _, name := range names {
		agg := perProduct[name]
		if top == nil || agg.units > top.Units {
			top = &usecase.TopProduct{
				Name:    agg.name,
				Units:   agg.units,
				Revenue: domain.Money(agg.revenue),
			}
		}
	}
	report.TopProduct = top

	return report, nil
}

func (d *DashboardRepo) queryDayPoints(ctx context.Context, query string, args ...any) ([]usecase.DayPoint, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.DayPoint, 0)
	for rows.Next() {
		var (
			point usecase.DayPoint
			cents int64
		)
		if err := rows.Scan(&point.Date, &point.SaleCount, &cents); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		point.TotalRevenue = domain.Money(cents)

		result = append(result, point)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
