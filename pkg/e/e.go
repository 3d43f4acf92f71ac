package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrNameRequired         = fmt.Errorf("name is required")
	ErrInvalidPrice         = fmt.Errorf("price must be a non-negative number")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrEmptyCart            = fmt.Errorf("cart must contain at least one item")
	ErrInvalidLine          = fmt.Errorf("cart line is invalid")
	ErrTotalMismatch        = fmt.Errorf("declared total does not match line items")
	ErrInvalidRange         = fmt.Errorf("invalid date range")
	ErrInvalidDate          = fmt.Errorf("invalid date")
	ErrUnsupportedFormat    = fmt.Errorf("unsupported report format")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file exceeds the size limit")
	ErrMissingFields        = fmt.Errorf("required fields are missing")

	// 401 Unauthorized
	ErrTokenRequired      = fmt.Errorf("token required")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("resource not found")

	// 409 Conflict
	ErrDuplicateName = fmt.Errorf("name already exists")
	ErrHasDependents = fmt.Errorf("resource has dependent records")

	// 500 Internal Server Error
	ErrPartialWrite        = fmt.Errorf("sale write failed and was rolled back")
	ErrStorageUnavailable  = fmt.Errorf("storage unavailable")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
