package pgdb

import (
	"context"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/repository/pgdb/converter"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает товары с денормализованным именем категории,
// по возрастанию имени товара. categoryID сужает выборку до одной категории.
func (p *ProductRepo) List(ctx context.Context, categoryID *int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.nombre, pr.precio, pr.categoria_id, cat.nombre, pr.imagen
		FROM productos pr
		LEFT JOIN categorias cat ON pr.categoria_id = cat.id
		WHERE $1::bigint IS NULL OR pr.categoria_id = $1
		ORDER BY pr.nombre ASC;
	`

	rows, err := p.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var (
			info   usecase.ProductInfo
			precio int64
		)
		if err := rows.Scan(&info.ID, &info.Name, &precio, &info.CategoryID, &info.CategoryName, &info.ImageKey); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		info.Price = domain.Money(precio)

		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Create вставляет товар и тем же запросом дочитывает денормализованное
// имя категории, как это делает List.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*usecase.ProductInfo, error) {
	query := `
		WITH ins AS (
			INSERT INTO productos (nombre, precio, categoria_id, imagen)
			VALUES ($1, $2, $3, $4)
			RETURNING id, nombre, precio, categoria_id, imagen
		)
		SELECT ins.id, ins.nombre, ins.precio, ins.categoria_id, cat.nombre, ins.imagen
		FROM ins
		LEFT JOIN categorias cat ON ins.categoria_id = cat.id;
	`

	model := p.conv.ToModel(product)

	var (
		info   usecase.ProductInfo
		precio int64
	)
	if err := p.pool.QueryRow(ctx, query, model.Nombre, model.Precio, model.CategoriaID, model.Imagen).
		Scan(&info.ID, &info.Name, &precio, &info.CategoryID, &info.CategoryName, &info.ImageKey); err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	info.Price = domain.Money(precio)

	return &info, nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*usecase.ProductInfo, error) {
	query := `
		WITH upd AS (
			UPDATE productos
			SET nombre = $2, precio = $3, categoria_id = $4
			WHERE id = $1
			RETURNING id, nombre, precio, categoria_id, imagen
		)
		SELECT upd.id, upd.nombre, upd.precio, upd.categoria_id, cat.nombre, upd.imagen
		FROM upd
		LEFT JOIN categorias cat ON upd.categoria_id = cat.id;
	`

	model := p.conv.ToModel(product)

	var (
		info   usecase.ProductInfo
		precio int64
	)
	if err := p.pool.QueryRow(ctx, query, model.ID, model.Nombre, model.Precio, model.CategoriaID).
		Scan(&info.ID, &info.Name, &precio, &info.CategoryID, &info.CategoryName, &info.ImageKey); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	info.Price = domain.Money(precio)

	return &info, nil
}

// Delete удаляет товар и возвращает ключ его изображения.
// Исторические строки продаж не трогаются: их producto_id обнуляется
// внешним ключом, снимки имени и цены остаются.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (*string, error) {
	query := `
		DELETE FROM productos WHERE id = $1
		RETURNING imagen;
	`

	var imagen *string
	if err := p.pool.QueryRow(ctx, query, id).Scan(&imagen); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return imagen, nil
}

// GetNames возвращает имена товаров по идентификаторам.
// Если в контексте открыта транзакция, чтение идет через нее.
func (p *ProductRepo) GetNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	query := `
		SELECT id, nombre
		FROM productos
		WHERE id = ANY($1);
	`

	rows, err := p.queryRows(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64]string, len(ids))
	for rows.Next() {
		var (
			id     int64
			nombre string
		)
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[id] = nombre
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) queryRows(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx.Query(ctx, query, args...)
	}

	return p.pool.Query(ctx, query, args...)
}
