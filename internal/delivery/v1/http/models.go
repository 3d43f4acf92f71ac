package http

import (
	"time"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
)

// Wire-модели API. Имена полей испанские, как в клиенте кассы.

type CategoryResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type CategoryRequest struct {
	Nombre string `json:"nombre"`
}

type ProductResponse struct {
	ID          int64        `json:"id"`
	Nombre      string       `json:"nombre"`
	Precio      domain.Money `json:"precio"`
	CategoriaID *int64       `json:"categoria_id"`
	Categoria   *string      `json:"categoria"`
	Imagen      *string      `json:"imagen"`
}

type ProductRequest struct {
	Nombre      string       `json:"nombre"`
	Precio      domain.Money `json:"precio"`
	CategoriaID *int64       `json:"categoria_id"`
}

type SaleLineRequest struct {
	ID       int64        `json:"id"`
	Cantidad int64        `json:"cantidad"`
	Precio   domain.Money `json:"precio"`
}

type SaleRequest struct {
	Total domain.Money      `json:"total"`
	Items []SaleLineRequest `json:"items"`
}

type SaleCreatedResponse struct {
	ID    int64        `json:"id"`
	Total domain.Money `json:"total"`
	Fecha time.Time    `json:"fecha"`
}

type SaleSummaryResponse struct {
	ID    int64        `json:"id"`
	Total domain.Money `json:"total"`
	Fecha time.Time    `json:"fecha"`
	Items int64        `json:"items"`
}

type SaleLineResponse struct {
	ProductoID *int64       `json:"producto_id"`
	Nombre     string       `json:"nombre"`
	Cantidad   int64        `json:"cantidad"`
	Precio     domain.Money `json:"precio"`
	Subtotal   domain.Money `json:"subtotal"`
}

type SaleDetailResponse struct {
	ID    int64              `json:"id"`
	Total domain.Money       `json:"total"`
	Fecha time.Time          `json:"fecha"`
	Items []SaleLineResponse `json:"items"`
}

type TopProductResponse struct {
	Nombre   string       `json:"nombre"`
	Unidades int64        `json:"unidades"`
	Ingresos domain.Money `json:"ingresos"`
}

type TodaySummaryResponse struct {
	Total    domain.Money         `json:"total"`
	Ventas   int64                `json:"ventas"`
	Unidades int64                `json:"unidades"`
	Top      []TopProductResponse `json:"top"`
}

type DayPointResponse struct {
	Fecha  string       `json:"fecha"`
	Ventas int64        `json:"ventas"`
	Total  domain.Money `json:"total"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
}

func toCategoryResponse(info *usecase.CategoryInfo) CategoryResponse {
	return CategoryResponse{ID: info.ID, Nombre: info.Name}
}

func toProductResponse(info *usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:          info.ID,
		Nombre:      info.Name,
		Precio:      info.Price,
		CategoriaID: info.CategoryID,
		Categoria:   info.CategoryName,
		Imagen:      info.ImageKey,
	}
}

func toSaleDetailResponse(detail *usecase.SaleDetail) SaleDetailResponse {
	items := make([]SaleLineResponse, 0, len(detail.Lines))
	for _, line := range detail.Lines {
		items = append(items, SaleLineResponse{
			ProductoID: line.ProductID,
			Nombre:     line.ProductName,
			Cantidad:   line.Quantity,
			Precio:     line.UnitPrice,
			Subtotal:   line.Subtotal,
		})
	}

	return SaleDetailResponse{
		ID:    detail.ID,
		Total: detail.Total,
		Fecha: detail.Fecha,
		Items: items,
	}
}

func toDayPointResponses(points []usecase.DayPoint) []DayPointResponse {
	result := make([]DayPointResponse, 0, len(points))
	for _, p := range points {
		result = append(result, DayPointResponse{
			Fecha:  p.Date.Format("2006-01-02"),
			Ventas: p.SaleCount,
			Total:  p.TotalRevenue,
		})
	}

	return result
}
