package pgdb

import (
	"context"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/repository/pgdb/converter"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// List возвращает все категории по возрастанию имени.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, nombre
		FROM categorias
		ORDER BY nombre ASC;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Nombre); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categorias (nombre) VALUES ($1)
		RETURNING id, nombre;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, category.Name).
		Scan(&model.ID, &model.Nombre); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateName)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categorias SET nombre = $2
		WHERE id = $1
		RETURNING id, nombre;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, category.ID, category.Name).
		Scan(&model.ID, &model.Nombre); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateName)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categorias WHERE id = $1;`

	result, err := c.pool.Exec(ctx, query, id)
	if err != nil {
		if postgresForeignKey(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrHasDependents)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// CountProducts возвращает число товаров, ссылающихся на категорию.
func (c *CategoryRepo) CountProducts(ctx context.Context, id int64) (int64, error) {
	query := `SELECT COUNT(*) FROM productos WHERE categoria_id = $1;`

	var count int64
	if err := c.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
