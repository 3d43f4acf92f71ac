package domain

// Product описывает товар каталога
type Product struct {
	ID         int64
	Name       string
	Price      Money  // Цена хранится в центаво
	CategoryID *int64 // nil — товар вне категорий
	ImageKey   *string
}

func NewProduct(name string, price Money, categoryID *int64, imageKey *string) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		ImageKey:   imageKey,
	}
}
