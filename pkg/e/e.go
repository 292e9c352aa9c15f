package e

import "fmt"

var (
	// Internal transaction errors
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Dashboard errors
	ErrDashboardUnavailable = fmt.Errorf("failed to load dashboard")

	// 400 Bad Request
	ErrProductNameRequired    = fmt.Errorf("product name is required")
	ErrPriceMustBePositive    = fmt.Errorf("price must be positive")
	ErrCategoryRequired       = fmt.Errorf("category is required")
	ErrStockMustBeNonNegative = fmt.Errorf("stock must be non-negative")
	ErrMissingFields          = fmt.Errorf("missing required fields")
	ErrInvalidPrice           = fmt.Errorf("invalid price")
	ErrPricePrecision         = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidStock           = fmt.Errorf("invalid stock")
	ErrInvalidProductID       = fmt.Errorf("invalid product id")
	ErrUnsupportedMediaType   = fmt.Errorf("unsupported media type")
	ErrFileTooLarge           = fmt.Errorf("file too large")

	// Config errors
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap wraps an error with a message.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
