package usecase

import (
	"context"
	"strings"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

// CatalogUseCase реализует бизнес-логику каталога категорий и товаров.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// ListCategories возвращает категории, отсортированные по имени.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CategoryInfo, 0, len(categories))
	for _, category := range categories {
		result = append(result, *NewCategoryInfo(category.ID, category.Name))
	}

	return result, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error) {
	const op = "CatalogUseCase.CreateCategory"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category.ID, category.Name), nil
}

func (c *CatalogUseCase) UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*CategoryInfo, error) {
	const op = "CatalogUseCase.UpdateCategory"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := c.categoryRepo.Update(ctx, &domain.Category{ID: req.ID, Name: name})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category.ID, category.Name), nil
}

// DeleteCategory отклоняет удаление, пока на категорию ссылаются товары.
// Каскадное удаление не поддерживается намеренно.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteCategory"

	count, err := c.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if count > 0 {
		return e.Wrap(op, e.ErrHasDependents)
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ListProducts возвращает товары с именем категории, опционально по одной категории.
func (c *CatalogUseCase) ListProducts(ctx context.Context, categoryID *int64) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// CreateProduct сохраняет товар; изображение (если есть) сначала уходит в
// объектное хранилище, при ошибке вставки загруженный объект зачищается.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(req.Name, req.Price); err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageKey *string
	if req.Image != nil {
		key, err := c.imagesInfra.UploadProductImage(ctx, NewUploadImageReq(req.Name, req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = &key
	}

	info, err := c.productRepo.Create(ctx, domain.NewProduct(strings.TrimSpace(req.Name), req.Price, req.CategoryID, imageKey))
	if err != nil {
		if imageKey != nil {
			c.logger.Warnf("Cleaning up orphaned image after insert failure. product_name: %s, error: %v", req.Name, e.Wrap(op, err))
			c.imagesInfra.CleanupImages([]string{*imageKey})
		}
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(req.Name, req.Price); err != nil {
		return nil, e.Wrap(op, err)
	}

	info, err := c.productRepo.Update(ctx, &domain.Product{
		ID:         req.ID,
		Name:       strings.TrimSpace(req.Name),
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

// DeleteProduct удаляет товар из каталога. Исторические строки продаж
// сохраняют снимок имени и цены, поэтому отчеты не страдают.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	imageKey, err := c.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if imageKey != nil {
		c.imagesInfra.CleanupImages([]string{*imageKey})
	}

	return nil
}

// validateProduct проверяет корректность входных данных товара.
func (c *CatalogUseCase) validateProduct(name string, price domain.Money) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrNameRequired
	}

	if price < 0 {
		return e.ErrInvalidPrice
	}

	return nil
}
