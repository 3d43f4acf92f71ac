package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

// Моки уровня usecase: хэндлеры тестируются на отображение ошибок
// в статусы и на форму JSON, бизнес-логика живет в своих тестах.

type mockCatalogUC struct {
	categories []usecase.CategoryInfo
	deleteErr  error
	createErr  error
}

func (m *mockCatalogUC) ListCategories(ctx context.Context) ([]usecase.CategoryInfo, error) {
	return m.categories, nil
}

func (m *mockCatalogUC) CreateCategory(ctx context.Context, req *usecase.CreateCategoryReq) (*usecase.CategoryInfo, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &usecase.CategoryInfo{ID: 1, Name: req.Name}, nil
}

func (m *mockCatalogUC) UpdateCategory(ctx context.Context, req *usecase.UpdateCategoryReq) (*usecase.CategoryInfo, error) {
	return &usecase.CategoryInfo{ID: req.ID, Name: req.Name}, nil
}

func (m *mockCatalogUC) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteErr
}

func (m *mockCatalogUC) ListProducts(ctx context.Context, categoryID *int64) ([]usecase.ProductInfo, error) {
	return []usecase.ProductInfo{}, nil
}

func (m *mockCatalogUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*usecase.ProductInfo, error) {
	return &usecase.ProductInfo{ID: 1, Name: req.Name, Price: req.Price, CategoryID: req.CategoryID}, nil
}

func (m *mockCatalogUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*usecase.ProductInfo, error) {
	return &usecase.ProductInfo{ID: req.ID, Name: req.Name, Price: req.Price}, nil
}

func (m *mockCatalogUC) DeleteProduct(ctx context.Context, id int64) error {
	return nil
}

type mockSaleUC struct {
	recordErr error
	recorded  *usecase.RecordSaleReq
}

func (m *mockSaleUC) RecordSale(ctx context.Context, req *usecase.RecordSaleReq) (*usecase.RecordSaleRes, error) {
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	m.recorded = req
	return usecase.NewRecordSaleRes(42, req.DeclaredTotal, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)), nil
}

func (m *mockSaleUC) ListSales(ctx context.Context) ([]usecase.SaleSummary, error) {
	return []usecase.SaleSummary{}, nil
}

func (m *mockSaleUC) GetSaleDetail(ctx context.Context, id int64) (*usecase.SaleDetail, error) {
	return nil, e.Wrap("sale", e.ErrNotFound)
}

type mockDashboardUC struct{}

func (m *mockDashboardUC) TodaySummary(ctx context.Context) (*usecase.TodaySummaryRes, error) {
	return &usecase.TodaySummaryRes{
		TotalRevenue: domain.Money(10050),
		SaleCount:    2,
		UnitsSold:    5,
		TopProducts:  []usecase.TopProduct{{Name: "Vainilla", Units: 3, Revenue: domain.Money(6000)}},
	}, nil
}

func (m *mockDashboardUC) WeekSeries(ctx context.Context, days int) ([]usecase.DayPoint, error) {
	return []usecase.DayPoint{}, nil
}

func (m *mockDashboardUC) History(ctx context.Context, req *usecase.HistoryReq) ([]usecase.DayPoint, error) {
	if req.Inicio == "" || req.Fin == "" {
		return nil, e.Wrap("history", e.ErrInvalidRange)
	}
	return []usecase.DayPoint{}, nil
}

func (m *mockDashboardUC) DailyReportData(ctx context.Context, fecha string) (*usecase.DailyReportRes, error) {
	return nil, e.Wrap("report", e.ErrInvalidDate)
}

func (m *mockDashboardUC) RenderDailyReport(ctx context.Context, fecha string, format string) (*usecase.RenderedReport, error) {
	if fecha == "" {
		return nil, e.Wrap("report", e.ErrInvalidDate)
	}
	if format != "csv" && format != "pdf" {
		return nil, e.Wrap("report", e.ErrUnsupportedFormat)
	}
	return &usecase.RenderedReport{
		Bytes:       []byte("venta_id,fecha\n"),
		ContentType: "text/csv; charset=utf-8",
		Filename:    "reporte-" + fecha + ".csv",
	}, nil
}

type mockAuthUC struct {
	loginErr error
}

func (m *mockAuthUC) Login(ctx context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &usecase.LoginRes{Token: "tok", Name: "Admin"}, nil
}

func (m *mockAuthUC) Logout(ctx context.Context, token string) error {
	return nil
}

type mockSessions struct {
	valid map[string]*usecase.SessionData
}

func (m *mockSessions) Create(ctx context.Context, data *usecase.SessionData) (string, error) {
	return "tok", nil
}

func (m *mockSessions) Get(ctx context.Context, token string) (*usecase.SessionData, error) {
	return m.valid[token], nil
}

func (m *mockSessions) Destroy(ctx context.Context, token string) error {
	return nil
}

type fixture struct {
	mux     *chi.Mux
	catalog *mockCatalogUC
	sale    *mockSaleUC
	auth    *mockAuthUC
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		mux:     chi.NewRouter(),
		catalog: &mockCatalogUC{},
		sale:    &mockSaleUC{},
		auth:    &mockAuthUC{},
	}

	sessions := &mockSessions{valid: map[string]*usecase.SessionData{
		"tok": {UserID: 1, Email: "admin@happi.mx", Name: "Admin"},
	}}

	router := NewRouter(f.mux, logger.NewSlogLogger())
	router.Init(f.catalog, f.sale, &mockDashboardUC{}, f.auth, sessions)

	return f
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteRequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/ventas", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/ventas", "bad-token", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/v1/categorias/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReadsArePublic(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/api/v1/categorias",
		"/api/v1/productos",
		"/api/v1/ventas",
		"/api/v1/dashboard/hoy",
		"/api/v1/dashboard/semana",
	} {
		rec := f.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRecordSaleCreated(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"total": 105.50,
		"items": []map[string]any{
			{"id": 1, "cantidad": 2, "precio": 40.00},
			{"id": 2, "cantidad": 1, "precio": 25.50},
		},
	}

	rec := f.do(t, http.MethodPost, "/api/v1/ventas", "tok", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "42", string(res["id"]))
	assert.Equal(t, "105.50", string(res["total"]))

	require.NotNil(t, f.sale.recorded)
	assert.Equal(t, domain.Money(10550), f.sale.recorded.DeclaredTotal)
	require.Len(t, f.sale.recorded.Lines, 2)
	assert.Equal(t, domain.Money(4000), f.sale.recorded.Lines[0].UnitPrice)
}

func TestRecordSaleErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"empty cart", e.Wrap("uc", e.ErrEmptyCart), http.StatusBadRequest},
		{"invalid line", e.Wrap("uc", e.ErrInvalidLine), http.StatusBadRequest},
		{"total mismatch", e.Wrap("uc", e.ErrTotalMismatch), http.StatusBadRequest},
		{"unknown product", e.Wrap("uc", e.ErrNotFound), http.StatusNotFound},
		{"partial write", e.Wrap("uc", e.ErrPartialWrite), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.sale.recordErr = tc.err

			rec := f.do(t, http.MethodPost, "/api/v1/ventas", "tok", map[string]any{
				"total": 1.00,
				"items": []map[string]any{{"id": 1, "cantidad": 1, "precio": 1.00}},
			})
			assert.Equal(t, tc.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body.Code)
		})
	}
}

func TestRecordSaleRejectsBadPricePrecision(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/ventas", "tok", map[string]any{
		"total": 1.005,
		"items": []map[string]any{{"id": 1, "cantidad": 1, "precio": 1.005}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCategoryConflict(t *testing.T) {
	f := newFixture(t)
	f.catalog.deleteErr = e.Wrap("uc", e.ErrHasDependents)

	rec := f.do(t, http.MethodDelete, "/api/v1/categorias/3", "tok", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	f := newFixture(t)
	f.catalog.createErr = e.Wrap("uc", e.ErrDuplicateName)

	rec := f.do(t, http.MethodPost, "/api/v1/categorias", "tok", map[string]any{"nombre": "Paletas"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListProductsBadCategoryFilter(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/productos?categoria_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailure(t *testing.T) {
	f := newFixture(t)
	f.auth.loginErr = e.Wrap("uc", e.ErrInvalidCredentials)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "admin@happi.mx",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSuccessBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "admin@happi.mx",
		"password": "helado123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "Admin", res.Nombre)
}

func TestHistoryBadRange(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/dashboard/historial", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDailyReportDownload(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/dashboard/reporte?fecha=2026-08-28", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reporte-2026-08-28.csv")

	rec = f.do(t, http.MethodGet, "/api/v1/dashboard/reporte?fecha=2026-08-28&tipo=xml", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSaleDetailNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/ventas/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
