package domain

import "time"

// Sale — заголовок продажи. Продажа неизменяема после записи.
type Sale struct {
	ID    int64
	Total Money
	Fecha time.Time // назначается сервером при записи
}

// SaleLine — строка продажи. Хранит снимок имени и цены товара на момент
// продажи; ProductID обнуляется при удалении товара из каталога.
type SaleLine struct {
	ID          int64
	SaleID      int64
	ProductID   *int64
	ProductName string
	Quantity    int64
	UnitPrice   Money
}

// Subtotal возвращает сумму строки в центаво.
func (l *SaleLine) Subtotal() Money {
	return Money(l.Quantity * int64(l.UnitPrice))
}
