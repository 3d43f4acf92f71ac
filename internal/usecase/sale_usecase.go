package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaleUseCase реализует запись и чтение продаж.
// Заголовок продажи, все ее строки и outbox-событие пишутся одной
// транзакцией: частично записанная продажа невозможна.
type SaleUseCase struct {
	saleRepo    SaleRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewSaleUC(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// saleEventPayload — полезная нагрузка события sale.recorded.
type saleEventPayload struct {
	EventID string    `json:"event_id"`
	SaleID  int64     `json:"venta_id"`
	Total   int64     `json:"total_centavos"`
	Fecha   time.Time `json:"fecha"`
	Items   []saleEventItem `json:"items"`
}

type saleEventItem struct {
	ProductID int64  `json:"producto_id"`
	Name      string `json:"nombre"`
	Quantity  int64  `json:"cantidad"`
	UnitPrice int64  `json:"precio_centavos"`
}

// RecordSale валидирует корзину, сверяет заявленный итог с расчетным и
// атомарно записывает продажу. При любой ошибке хранилище остается ровно
// в том состоянии, в котором было до вызова.
func (s *SaleUseCase) RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error) {
	const op = "SaleUseCase.RecordSale"

	// Валидация данных
	var err error
	err = s.validateCart(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrStorageUnavailable, err))
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Снимок имен товаров на момент продажи; заодно проверка, что все
	// позиции корзины ссылаются на существующие товары.
	names, err := s.snapshotProductNames(ctx, req.Lines)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sale, err := s.saleRepo.InsertSale(ctx, req.DeclaredTotal)
	if err != nil {
		err = partialWrite(err)
		return nil, e.Wrap(op, err)
	}

	lines := make([]domain.SaleLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID := line.ProductID
		lines = append(lines, domain.SaleLine{
			SaleID:      sale.ID,
			ProductID:   &productID,
			ProductName: names[line.ProductID],
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}

	err = s.saleRepo.InsertLines(ctx, sale.ID, lines)
	if err != nil {
		err = partialWrite(err)
		return nil, e.Wrap(op, err)
	}

	err = s.createOutboxEvent(ctx, sale, lines)
	if err != nil {
		err = partialWrite(err)
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	err = tx.Commit(ctx)
	if err != nil {
		err = partialWrite(err)
		return nil, e.Wrap(op, err)
	}

	// Сводка "за сегодня" устарела
	if err := s.cacheRepo.InvalidateToday(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warnf("Failed to invalidate today summary cache: %v", e.Wrap(op, err))
	}

	return NewRecordSaleRes(sale.ID, sale.Total, sale.Fecha), nil
}

// ListSales возвращает заголовки продаж с количеством позиций, новые первыми.
func (s *SaleUseCase) ListSales(ctx context.Context) ([]SaleSummary, error) {
	const op = "SaleUseCase.ListSales"

	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sales, nil
}

// GetSaleDetail возвращает продажу со строками.
func (s *SaleUseCase) GetSaleDetail(ctx context.Context, id int64) (*SaleDetail, error) {
	const op = "SaleUseCase.GetSaleDetail"

	detail, err := s.saleRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return detail, nil
}

// snapshotProductNames читает имена всех товаров корзины внутри транзакции.
func (s *SaleUseCase) snapshotProductNames(ctx context.Context, lines []CartLine) (map[int64]string, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	names, err := s.productRepo.GetNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, e.Wrap("unknown product in cart", e.ErrNotFound)
		}
	}

	return names, nil
}

// createOutboxEvent записывает событие sale.recorded в рамках той же транзакции.
func (s *SaleUseCase) createOutboxEvent(ctx context.Context, sale *domain.Sale, lines []domain.SaleLine) error {
	items := make([]saleEventItem, 0, len(lines))
	for _, line := range lines {
		var productID int64
		if line.ProductID != nil {
			productID = *line.ProductID
		}
		items = append(items, saleEventItem{
			ProductID: productID,
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: int64(line.UnitPrice),
		})
	}

	eventID := uuid.NewString()
	payload, err := json.Marshal(saleEventPayload{
		EventID: eventID,
		SaleID:  sale.ID,
		Total:   int64(sale.Total),
		Fecha:   sale.Fecha,
		Items:   items,
	})
	if err != nil {
		return err
	}

	_, err = s.outboxRepo.Create(ctx, NewOutboxEvent(eventID, EventSaleRecorded, sale.ID, payload))
	return err
}

// Верхние границы для строк корзины. Цена ограничена той же планкой
// 1e9 в основной единице, что и parsePrice на HTTP-слое; вместе с
// лимитом на количество и на накопленный итог это исключает
// переполнение int64 при расчете суммы.
const (
	maxLineQuantity = 1_000_000
	maxCartAmount   = 100_000_000_000 // 1e9 в основной единице, в центаво
)

// validateCart проверяет корзину и сверяет заявленный итог с расчетным.
func (s *SaleUseCase) validateCart(req *RecordSaleReq) error {
	if len(req.Lines) == 0 {
		return e.ErrEmptyCart
	}

	var computed int64
	for _, line := range req.Lines {
		if line.ProductID <= 0 || line.Quantity <= 0 || line.UnitPrice < 0 {
			return e.ErrInvalidLine
		}
		if line.Quantity > maxLineQuantity || int64(line.UnitPrice) > maxCartAmount {
			return e.ErrInvalidLine
		}

		computed += line.Quantity * int64(line.UnitPrice)
		if computed > maxCartAmount {
			return e.ErrInvalidLine
		}
	}

	// Суммы в целых центаво, поэтому сверка точная, без допуска.
	if computed != int64(req.DeclaredTotal) {
		return e.ErrTotalMismatch
	}

	return nil
}

// partialWrite помечает ошибку штатной фазы записи как PartialWriteFailure,
// сохраняя доменные сентинели (например NotFound) нетронутыми.
func partialWrite(err error) error {
	switch {
	case errors.Is(err, e.ErrNotFound),
		errors.Is(err, e.ErrInvalidLine),
		errors.Is(err, e.ErrTransactionNotFound):
		return err
	default:
		return e.Wrap(err.Error(), e.ErrPartialWrite)
	}
}
