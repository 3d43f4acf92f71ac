package usecase

import (
	"context"
	"time"

	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

// dateLayout — единственный формат дат на границе API.
const dateLayout = "2006-01-02"

const (
	defaultSeriesDays = 7
	maxSeriesDays     = 31
)

// DashboardUseCase считает производные представления над записанными
// продажами. Никакого материализованного состояния: только чтение и
// группировка, плюс короткоживущий кэш сводки "за сегодня".
type DashboardUseCase struct {
	dashboardRepo DashboardRepository
	cacheRepo     CacheRepository
	renderer      ReportRenderer
	logger        logger.Logger
}

func NewDashboardUC(
	dashboardRepo DashboardRepository,
	cacheRepo CacheRepository,
	renderer ReportRenderer,
	logger logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		renderer:      renderer,
		logger:        logger,
	}
}

// TodaySummary возвращает сводку текущего дня: выручка, число продаж,
// проданные единицы и топ-5 товаров. Ошибки кэша деградируют до чтения из БД.
func (d *DashboardUseCase) TodaySummary(ctx context.Context) (*TodaySummaryRes, error) {
	const op = "DashboardUseCase.TodaySummary"

	cached, err := d.cacheRepo.GetTodaySummary(ctx)
	if err != nil {
		d.logger.Warnf("Today summary cache read failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	summary, err := d.dashboardRepo.TodaySummary(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое обновление кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := d.cacheRepo.SetTodaySummary(bgCtx, summary); err != nil {
			d.logger.Warnf("Failed to cache today summary in background: %v", e.Wrap(op, err))
		}
	}()

	return summary, nil
}

// WeekSeries возвращает по одной точке на каждый календарный день скользящего
// окна, по возрастанию даты. Дни без продаж заполняются нулями.
func (d *DashboardUseCase) WeekSeries(ctx context.Context, days int) ([]DayPoint, error) {
	const op = "DashboardUseCase.WeekSeries"

	if days <= 0 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	series, err := d.dashboardRepo.Series(ctx, days)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return series, nil
}

// History возвращает посуточные агрегаты диапазона [inicio, fin] включительно,
// по убыванию даты.
func (d *DashboardUseCase) History(ctx context.Context, req *HistoryReq) ([]DayPoint, error) {
	const op = "DashboardUseCase.History"

	if req.Inicio == "" || req.Fin == "" {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	start, err := time.Parse(dateLayout, req.Inicio)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	end, err := time.Parse(dateLayout, req.Fin)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	if start.After(end) {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	points, err := d.dashboardRepo.History(ctx, start, end)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return points, nil
}

// DailyReportData собирает данные дневного отчета: разбивку по продажам,
// сводку и самый продаваемый товар. День без продаж — пустой отчет, не ошибка.
func (d *DashboardUseCase) DailyReportData(ctx context.Context, fecha string) (*DailyReportRes, error) {
	const op = "DashboardUseCase.DailyReportData"

	date, err := time.Parse(dateLayout, fecha)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidDate)
	}

	report, err := d.dashboardRepo.DailyReport(ctx, date)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return report, nil
}

// RenderDailyReport отдает дневной отчет готовым документом (pdf или csv).
func (d *DashboardUseCase) RenderDailyReport(ctx context.Context, fecha string, format string) (*RenderedReport, error) {
	const op = "DashboardUseCase.RenderDailyReport"

	report, err := d.DailyReportData(ctx, fecha)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rendered, err := d.renderer.Render(report, format)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return rendered, nil
}
