package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type stubDashboardRepo struct {
	summary    *TodaySummaryRes
	seriesDays int
	histStart  time.Time
	histEnd    time.Time
	report     *DailyReportRes
}

func (s *stubDashboardRepo) TodaySummary(ctx context.Context) (*TodaySummaryRes, error) {
	return s.summary, nil
}

func (s *stubDashboardRepo) Series(ctx context.Context, days int) ([]DayPoint, error) {
	s.seriesDays = days
	return make([]DayPoint, days), nil
}

func (s *stubDashboardRepo) History(ctx context.Context, start, end time.Time) ([]DayPoint, error) {
	s.histStart, s.histEnd = start, end
	return []DayPoint{}, nil
}

func (s *stubDashboardRepo) DailyReport(ctx context.Context, date time.Time) (*DailyReportRes, error) {
	if s.report != nil {
		return s.report, nil
	}
	return &DailyReportRes{Date: date, Sales: []SaleDetail{}}, nil
}

type stubCacheRepo struct {
	summary     *TodaySummaryRes
	invalidated bool
}

func (s *stubCacheRepo) GetTodaySummary(ctx context.Context) (*TodaySummaryRes, error) {
	return s.summary, nil
}

func (s *stubCacheRepo) SetTodaySummary(ctx context.Context, summary *TodaySummaryRes) error {
	return nil
}

func (s *stubCacheRepo) InvalidateToday(ctx context.Context) error {
	s.invalidated = true
	return nil
}

func newDashboardUC(repo DashboardRepository, cache CacheRepository) *DashboardUseCase {
	return NewDashboardUC(repo, cache, nil, logger.NewSlogLogger())
}

func TestTodaySummaryCacheHit(t *testing.T) {
	cached := &TodaySummaryRes{TotalRevenue: domain.Money(10050), SaleCount: 3}
	uc := newDashboardUC(&stubDashboardRepo{}, &stubCacheRepo{summary: cached})

	got, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestTodaySummaryCacheMissFallsBackToDB(t *testing.T) {
	fromDB := &TodaySummaryRes{TotalRevenue: domain.Money(500), SaleCount: 1}
	uc := newDashboardUC(&stubDashboardRepo{summary: fromDB}, &stubCacheRepo{})

	got, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fromDB, got)
}

func TestWeekSeriesClampsDays(t *testing.T) {
	repo := &stubDashboardRepo{}
	uc := newDashboardUC(repo, &stubCacheRepo{})

	_, err := uc.WeekSeries(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.seriesDays)

	_, err = uc.WeekSeries(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.seriesDays)

	_, err = uc.WeekSeries(context.Background(), 365)
	require.NoError(t, err)
	assert.Equal(t, 31, repo.seriesDays)

	_, err = uc.WeekSeries(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, 14, repo.seriesDays)
}

func TestHistoryInvalidRange(t *testing.T) {
	uc := newDashboardUC(&stubDashboardRepo{}, &stubCacheRepo{})

	cases := []struct {
		name   string
		inicio string
		fin    string
	}{
		{"both missing", "", ""},
		{"missing fin", "2026-08-01", ""},
		{"unparseable", "01/08/2026", "2026-08-28"},
		{"start after end", "2026-08-28", "2026-08-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.History(context.Background(), &HistoryReq{Inicio: tc.inicio, Fin: tc.fin})
			assert.ErrorIs(t, err, e.ErrInvalidRange)
		})
	}
}

func TestHistoryParsesInclusiveRange(t *testing.T) {
	repo := &stubDashboardRepo{}
	uc := newDashboardUC(repo, &stubCacheRepo{})

	_, err := uc.History(context.Background(), &HistoryReq{Inicio: "2026-08-01", Fin: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", repo.histStart.Format("2006-01-02"))
	assert.Equal(t, "2026-08-28", repo.histEnd.Format("2006-01-02"))

	// Один и тот же день — допустимый диапазон
	_, err = uc.History(context.Background(), &HistoryReq{Inicio: "2026-08-28", Fin: "2026-08-28"})
	require.NoError(t, err)
}

func TestDailyReportDataInvalidDate(t *testing.T) {
	uc := newDashboardUC(&stubDashboardRepo{}, &stubCacheRepo{})

	_, err := uc.DailyReportData(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, e.ErrInvalidDate)

	_, err = uc.DailyReportData(context.Background(), "2026-13-40")
	assert.ErrorIs(t, err, e.ErrInvalidDate)
}

func TestDailyReportDataEmptyDayIsValid(t *testing.T) {
	uc := newDashboardUC(&stubDashboardRepo{}, &stubCacheRepo{})

	report, err := uc.DailyReportData(context.Background(), "2026-08-27")
	require.NoError(t, err)
	assert.Empty(t, report.Sales)
	assert.Nil(t, report.TopProduct)
	assert.Equal(t, domain.Money(0), report.Revenue)
}
