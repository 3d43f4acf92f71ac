package converter

import "time"

// CategoryModel представляет запись таблицы categorias в PostgreSQL.
type CategoryModel struct {
	ID     int64  `db:"id"`
	Nombre string `db:"nombre"`
}

// ProductModel представляет запись таблицы productos в PostgreSQL.
type ProductModel struct {
	ID          int64   `db:"id"`
	CategoriaID *int64  `db:"categoria_id"`
	Nombre      string  `db:"nombre"`
	Precio      int64   `db:"precio"`
	Imagen      *string `db:"imagen"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	VentaID     int64      `db:"venta_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
