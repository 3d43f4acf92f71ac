package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Опционально фильтрует по категории
//	@Tags			productos
//	@Produce		json
//	@Param			categoria_id	query		int	false	"ID категории"
//	@Success		200				{array}		ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/productos [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoria_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			WriteError(w, e.ErrInvalidInput)
			return
		}
		categoryID = &id
	}

	products, err := p.catalogUsecase.ListProducts(r.Context(), categoryID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Принимает JSON или multipart/form-data с полем imagen
//	@Tags			productos
//	@Accept			json
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			nombre			formData	string	false	"Название товара"
//	@Param			precio			formData	number	false	"Цена"
//	@Param			categoria_id	formData	int		false	"Категория"
//	@Param			imagen			formData	file	false	"Изображение товара"
//	@Success		201				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse	"Категория не найдена"
//	@Security		BearerAuth
//	@Router			/productos [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := p.parseCreateRequest(w, r)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	created, err := p.catalogUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(created))
}

// updateProduct
//
//	@Summary		Изменение товара
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID товара"
//	@Param			body	body		ProductRequest	true	"Новые поля"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/productos/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidInput)
		return
	}

	updated, err := p.catalogUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:         id,
		Name:       req.Nombre,
		Price:      req.Precio,
		CategoryID: req.CategoriaID,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(updated))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Исторические продажи сохраняют снимок имени и цены
//	@Tags			productos
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		204	"Удалено"
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/productos/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseCreateRequest собирает запрос на создание товара из JSON-тела
// либо multipart-формы с изображением.
func (p *ProductHandler) parseCreateRequest(w http.ResponseWriter, r *http.Request) (*usecase.CreateProductReq, error) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)
		if err := ensureMultipartForm(r, maxMemory); err != nil {
			return nil, err
		}

		nombre := r.FormValue("nombre")
		if nombre == "" {
			return nil, e.ErrMissingFields
		}

		precio, err := parsePrice(r.FormValue("precio"))
		if err != nil {
			return nil, err
		}

		var categoryID *int64
		if raw := r.FormValue("categoria_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return nil, e.ErrInvalidInput
			}
			categoryID = &id
		}

		image, err := parseImage(r.MultipartForm.File["imagen"])
		if err != nil {
			return nil, err
		}

		return &usecase.CreateProductReq{
			Name:       nombre,
			Price:      precio,
			CategoryID: categoryID,
			Image:      image,
		}, nil
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, e.ErrInvalidInput
	}

	return &usecase.CreateProductReq{
		Name:       req.Nombre,
		Price:      req.Precio,
		CategoryID: req.CategoriaID,
	}, nil
}
