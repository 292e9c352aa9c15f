package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/e"
)

// ProductForm carries the parsed add-product form fields.
type ProductForm struct {
	Name        string
	Price       int64 // cents
	Description string
	CategoryID  int64
	Stock       int32
	ImageURL    string
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns an error for:
// - invalid format
// - more than 2 decimal places
// - negative value
// - values above the catalog limit
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (1 billion units = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// formatCents renders an int64 cents amount as a decimal string with two
// places, for templates.
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// parseStock converts the stock form field to a non-negative int32.
func parseStock(s string) (int32, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidStock
	}

	stock, err := strconv.ParseInt(s, 10, 32)
	if err != nil || stock < 0 {
		return 0, e.ErrInvalidStock
	}

	return int32(stock), nil
}

// ensureForm parses the request body as either multipart or urlencoded form
// data. The add-product form posts multipart when a file input is used.
func ensureForm(r *http.Request, maxMemory int64) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxMemory)
	}
	return r.ParseForm()
}

// parseProductForm extracts and validates the add-product fields.
func parseProductForm(r *http.Request) (*ProductForm, error) {
	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	categoryStr := r.FormValue("category_id")
	stockStr := r.FormValue("stock")

	if name == "" || priceStr == "" || categoryStr == "" || stockStr == "" {
		return nil, e.Wrap(fmt.Sprintf("name: %q, price: %q, category_id: %q, stock: %q", name, priceStr, categoryStr, stockStr), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryRequired)
	}

	stock, err := parseStock(stockStr)
	if err != nil {
		return nil, err
	}

	return &ProductForm{
		Name:        name,
		Price:       priceCents,
		Description: r.FormValue("description"),
		CategoryID:  categoryID,
		Stock:       stock,
		ImageURL:    r.FormValue("image_url"),
	}, nil
}

// parseImageUpload reads the optional uploaded image file. Returns nil when
// the form carries no file.
func parseImageUpload(r *http.Request) (*usecase.ImageUpload, error) {
	const maxFileSize = 15 << 20

	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		return nil, nil
	}

	data, mimeType, err := readFile(files[0], maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewImageUpload(data, mimeType, int64(len(data)), files[0].Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}

// parseProductID parses the {id} URL parameter.
func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}
	return id, nil
}
