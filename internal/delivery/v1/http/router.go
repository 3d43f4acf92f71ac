package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/happi-pos/backend/docs" // Импорт сгенерированных файлов
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init вешает маршруты. Чтение каталога и дашборда публичное,
// все мутации — только с валидным bearer-токеном.
func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	saleUC usecase.SaleUC,
	dashboardUC usecase.DashboardUC,
	authUC usecase.AuthUC,
	sessions usecase.SessionStore,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := NewAuthMiddleware(sessions, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		authHandler := NewAuthHandler(authUC, r.logger)
		v1.Post("/auth/login", authHandler.login)
		v1.Post("/auth/logout", authHandler.logout)

		categoryHandler := NewCategoryHandler(catalogUC, r.logger)
		v1.Route("/categorias", func(cat chi.Router) {
			cat.Get("/", categoryHandler.listCategories)

			cat.Group(func(protected chi.Router) {
				protected.Use(auth.Handle)
				protected.Post("/", categoryHandler.createCategory)
				protected.Put("/{id}", categoryHandler.updateCategory)
				protected.Delete("/{id}", categoryHandler.deleteCategory)
			})
		})

		productHandler := NewProductHandler(catalogUC, r.logger)
		v1.Route("/productos", func(pr chi.Router) {
			pr.Get("/", productHandler.listProducts)

			pr.Group(func(protected chi.Router) {
				protected.Use(auth.Handle)
				protected.Post("/", productHandler.createProduct)
				protected.Put("/{id}", productHandler.updateProduct)
				protected.Delete("/{id}", productHandler.deleteProduct)
			})
		})

		saleHandler := NewSaleHandler(saleUC, r.logger)
		v1.Route("/ventas", func(vt chi.Router) {
			vt.Get("/", saleHandler.listSales)
			vt.Get("/{id}", saleHandler.getSaleDetail)

			vt.Group(func(protected chi.Router) {
				protected.Use(auth.Handle)
				protected.Post("/", saleHandler.recordSale)
			})
		})

		dashboardHandler := NewDashboardHandler(dashboardUC, r.logger)
		v1.Route("/dashboard", func(db chi.Router) {
			db.Get("/hoy", dashboardHandler.todaySummary)
			db.Get("/semana", dashboardHandler.weekSeries)
			db.Get("/historial", dashboardHandler.history)
			db.Get("/reporte", dashboardHandler.dailyReport)
		})
	})
}
