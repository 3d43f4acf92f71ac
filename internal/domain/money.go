package domain

import (
	"strconv"

	"github.com/happi-pos/backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Money — денежная сумма в центаво (1/100 основной единицы).
// Все расчеты ведутся в целых числах, decimal используется только
// для преобразования на границе JSON.
type Money int64

// NewMoneyFromDecimal конвертирует десятичную сумму в центаво.
// Возвращает ошибку, если у суммы больше двух знаков после запятой.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, e.ErrPricePrecision
	}

	return Money(shifted.IntPart()), nil
}

// Decimal возвращает сумму как decimal с двумя знаками после запятой.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String форматирует сумму в виде "123.45".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON сериализует сумму точным JSON-числом с двумя знаками.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON принимает как число, так и строку ("40.00" или 40).
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return e.ErrInvalidPrice
		}
		raw = unquoted
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return e.ErrInvalidPrice
	}

	parsed, err := NewMoneyFromDecimal(d)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
