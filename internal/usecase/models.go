package usecase

import (
	"time"

	"github.com/happi-pos/backend/internal/domain"
)

// CATALOG USECASE

// CategoryInfo — DTO категории для внешнего использования.
type CategoryInfo struct {
	ID   int64
	Name string
}

type CreateCategoryReq struct {
	Name string
}

type UpdateCategoryReq struct {
	ID   int64
	Name string
}

// ProductInfo — DTO товара с денормализованным именем категории.
type ProductInfo struct {
	ID           int64
	Name         string
	Price        domain.Money
	CategoryID   *int64
	CategoryName *string
	ImageKey     *string
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

type CreateProductReq struct {
	Name       string
	Price      domain.Money
	CategoryID *int64
	Image      *ProductImage
}

type UpdateProductReq struct {
	ID         int64
	Name       string
	Price      domain.Money
	CategoryID *int64
}

// SALE USECASE

// CartLine — одна позиция корзины: товар, количество и цена на момент продажи.
type CartLine struct {
	ProductID int64
	Quantity  int64
	UnitPrice domain.Money
}

type RecordSaleReq struct {
	Lines         []CartLine
	DeclaredTotal domain.Money
}

type RecordSaleRes struct {
	SaleID int64
	Total  domain.Money
	Fecha  time.Time
}

// SaleSummary — заголовок продажи с количеством позиций.
type SaleSummary struct {
	ID    int64
	Total domain.Money
	Fecha time.Time
	Items int64
}

// SaleLineInfo — строка продажи со снимком имени товара.
type SaleLineInfo struct {
	ProductID   *int64
	ProductName string
	Quantity    int64
	UnitPrice   domain.Money
	Subtotal    domain.Money
}

type SaleDetail struct {
	ID    int64
	Total domain.Money
	Fecha time.Time
	Lines []SaleLineInfo
}

// DASHBOARD USECASE

type TopProduct struct {
	Name    string
	Units   int64
	Revenue domain.Money
}

type TodaySummaryRes struct {
	TotalRevenue domain.Money
	SaleCount    int64
	UnitsSold    int64
	TopProducts  []TopProduct
}

// DayPoint — агрегат продаж за один календарный день.
type DayPoint struct {
	Date         time.Time
	SaleCount    int64
	TotalRevenue domain.Money
}

type HistoryReq struct {
	Inicio string
	Fin    string
}

type DailyReportRes struct {
	Date       time.Time
	Sales      []SaleDetail
	SaleCount  int64
	Revenue    domain.Money
	UnitsSold  int64
	TopProduct *TopProduct // nil, если продаж не было
}

// RenderedReport — готовый документ отчета.
type RenderedReport struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// AUTH USECASE

type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	Token string
	Name  string
}

// SessionData — полезная нагрузка выданного токена.
type SessionData struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const EventSaleRecorded OutboxEventType = "sale.recorded"

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	SaleID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	SaleID  int64
	Payload []byte
}

type UploadImageReq struct {
	ProductName string
	Image       *ProductImage
}

// MAPPERS

func NewCategoryInfo(id int64, name string) *CategoryInfo {
	return &CategoryInfo{ID: id, Name: name}
}

func NewRecordSaleReq(lines []CartLine, declaredTotal domain.Money) *RecordSaleReq {
	return &RecordSaleReq{
		Lines:         lines,
		DeclaredTotal: declaredTotal,
	}
}

func NewRecordSaleRes(saleID int64, total domain.Money, fecha time.Time) *RecordSaleRes {
	return &RecordSaleRes{
		SaleID: saleID,
		Total:  total,
		Fecha:  fecha,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, saleID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		SaleID:    saleID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(saleID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		SaleID:  saleID,
		Payload: payload,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image *ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}
