package usecase

import "context"

type CatalogUC interface {
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error)
	UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*CategoryInfo, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, categoryID *int64) ([]ProductInfo, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type SaleUC interface {
	RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error)
	ListSales(ctx context.Context) ([]SaleSummary, error)
	GetSaleDetail(ctx context.Context, id int64) (*SaleDetail, error)
}

type DashboardUC interface {
	TodaySummary(ctx context.Context) (*TodaySummaryRes, error)
	WeekSeries(ctx context.Context, days int) ([]DayPoint, error)
	History(ctx context.Context, req *HistoryReq) ([]DayPoint, error)
	DailyReportData(ctx context.Context, fecha string) (*DailyReportRes, error)
	RenderDailyReport(ctx context.Context, fecha string, format string) (*RenderedReport, error)
}

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, token string) error
}
