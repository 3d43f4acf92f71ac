package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUC
	logger           logger.Logger
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase, logger: logger}
}

// todaySummary
//
//	@Summary		Сводка за сегодня
//	@Description	Выручка, количество продаж, проданные единицы и топ-5 товаров
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	TodaySummaryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/dashboard/hoy [get]
func (d *DashboardHandler) todaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := d.dashboardUsecase.TodaySummary(r.Context())
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	top := make([]TopProductResponse, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		top = append(top, TopProductResponse{
			Nombre:   p.Name,
			Unidades: p.Units,
			Ingresos: p.Revenue,
		})
	}

	WriteSuccess(w, http.StatusOK, TodaySummaryResponse{
		Total:    summary.TotalRevenue,
		Ventas:   summary.SaleCount,
		Unidades: summary.UnitsSold,
		Top:      top,
	})
}

// weekSeries
//
//	@Summary		Продажи по дням за неделю
//	@Description	Точка на каждый календарный день, дни без продаж — нули
//	@Tags			dashboard
//	@Produce		json
//	@Param			dias	query		int	false	"Глубина в днях (по умолчанию 7, максимум 31)"
//	@Success		200		{array}		DayPointResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/dashboard/semana [get]
func (d *DashboardHandler) weekSeries(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, e.ErrInvalidInput)
			return
		}
		days = parsed
	}

	points, err := d.dashboardUsecase.WeekSeries(r.Context(), days)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDayPointResponses(points))
}

// history
//
//	@Summary		История продаж по дням
//	@Description	Посуточные агрегаты включительно по границам диапазона
//	@Tags			dashboard
//	@Produce		json
//	@Param			inicio	query		string	true	"Начало диапазона (YYYY-MM-DD)"
//	@Param			fin		query		string	true	"Конец диапазона (YYYY-MM-DD)"
//	@Success		200		{array}		DayPointResponse
//	@Failure		400		{object}	ErrorResponse	"Кривой диапазон"
//	@Router			/dashboard/historial [get]
func (d *DashboardHandler) history(w http.ResponseWriter, r *http.Request) {
	req := &usecase.HistoryReq{
		Inicio: r.URL.Query().Get("inicio"),
		Fin:    r.URL.Query().Get("fin"),
	}

	points, err := d.dashboardUsecase.History(r.Context(), req)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDayPointResponses(points))
}

// dailyReport
//
//	@Summary		Дневной отчет файлом
//	@Description	Отдает отчет за день в CSV или PDF
//	@Tags			dashboard
//	@Produce		text/csv
//	@Produce		application/pdf
//	@Param			fecha	query		string	true	"Дата отчета (YYYY-MM-DD)"
//	@Param			tipo	query		string	false	"Формат: csv или pdf (по умолчанию csv)"
//	@Success		200		{file}		file
//	@Failure		400		{object}	ErrorResponse
//	@Router			/dashboard/reporte [get]
func (d *DashboardHandler) dailyReport(w http.ResponseWriter, r *http.Request) {
	fecha := r.URL.Query().Get("fecha")
	tipo := r.URL.Query().Get("tipo")
	if tipo == "" {
		tipo = "csv"
	}

	rendered, err := d.dashboardUsecase.RenderDailyReport(r.Context(), fecha, tipo)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.Bytes)
}
