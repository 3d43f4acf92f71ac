package http

import (
	"encoding/json"
	"net/http"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUC
	logger      logger.Logger
}

func NewSaleHandler(saleUsecase usecase.SaleUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase, logger: logger}
}

// recordSale
//
//	@Summary		Регистрация продажи
//	@Description	Пишет продажу целиком в одной транзакции. Заявленный total обязан совпасть с суммой позиций до центаво.
//	@Tags			ventas
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SaleRequest	true	"Корзина и итог"
//	@Success		201		{object}	SaleCreatedResponse
//	@Failure		400		{object}	ErrorResponse	"Пустая корзина, кривая позиция или расхождение итога"
//	@Failure		404		{object}	ErrorResponse	"Неизвестный товар"
//	@Security		BearerAuth
//	@Router			/ventas [post]
func (s *SaleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidInput)
		return
	}

	lines := make([]usecase.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.CartLine{
			ProductID: item.ID,
			Quantity:  item.Cantidad,
			UnitPrice: item.Precio,
		})
	}

	res, err := s.saleUsecase.RecordSale(r.Context(), usecase.NewRecordSaleReq(lines, req.Total))
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, SaleCreatedResponse{
		ID:    res.SaleID,
		Total: res.Total,
		Fecha: res.Fecha,
	})
}

// listSales
//
//	@Summary		Список продаж
//	@Description	Заголовки продаж с количеством позиций, новые первыми
//	@Tags			ventas
//	@Produce		json
//	@Success		200	{array}		SaleSummaryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/ventas [get]
func (s *SaleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.saleUsecase.ListSales(r.Context())
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]SaleSummaryResponse, 0, len(sales))
	for _, sale := range sales {
		result = append(result, SaleSummaryResponse{
			ID:    sale.ID,
			Total: sale.Total,
			Fecha: sale.Fecha,
			Items: sale.Items,
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getSaleDetail
//
//	@Summary		Детали продажи
//	@Description	Продажа со строками, имена товаров — снимки на момент продажи
//	@Tags			ventas
//	@Produce		json
//	@Param			id	path		int	true	"ID продажи"
//	@Success		200	{object}	SaleDetailResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/ventas/{id} [get]
func (s *SaleHandler) getSaleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	detail, err := s.saleUsecase.GetSaleDetail(r.Context(), id)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSaleDetailResponse(detail))
}
