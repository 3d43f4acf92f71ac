package domain

// Category описывает категорию товаров
type Category struct {
	ID   int64
	Name string
}

func NewCategory(name string) *Category {
	return &Category{
		Name: name,
	}
}
