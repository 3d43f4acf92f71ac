package http

import (
	"encoding/json"
	"net/http"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает все категории, отсортированные по имени
//	@Tags			categorias
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categorias [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, toCategoryResponse(&categories[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			categorias
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CategoryRequest	true	"Имя категории"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Имя уже занято"
//	@Security		BearerAuth
//	@Router			/categorias [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidInput)
		return
	}

	created, err := c.catalogUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{Name: req.Nombre})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(created))
}

// updateCategory
//
//	@Summary		Переименование категории
//	@Tags			categorias
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID категории"
//	@Param			body	body		CategoryRequest	true	"Новое имя"
//	@Success		200		{object}	CategoryResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/categorias/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidInput)
		return
	}

	updated, err := c.catalogUsecase.UpdateCategory(r.Context(), &usecase.UpdateCategoryReq{ID: id, Name: req.Nombre})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(updated))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Категория с товарами не удаляется, вернется 409
//	@Tags			categorias
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		204	"Удалено"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Есть зависимые товары"
//	@Security		BearerAuth
//	@Router			/categorias/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.catalogUsecase.DeleteCategory(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
