package domain

import (
	"strconv"
	"strings"
	"time"
)

// Product describes a catalog product.
type Product struct {
	ID          int64
	Name        string
	Slug        string
	Price       int64 // price stored in cents
	Description string
	CategoryID  int64
	Stock       int32
	CreatedAt   time.Time
}

func NewProduct(name string, price int64, description string, categoryID int64, stock int32, createdAt time.Time) *Product {
	return &Product{
		Name:        name,
		Slug:        Slugify(name, createdAt),
		Price:       price,
		Description: description,
		CategoryID:  categoryID,
		Stock:       stock,
		CreatedAt:   createdAt,
	}
}

// Slugify derives a URL-friendly slug from the product name at creation
// time: lowercased, spaces replaced with hyphens, suffixed with the unix
// millisecond timestamp. The suffix reduces collision risk between renames
// but does not guarantee uniqueness.
func Slugify(name string, at time.Time) string {
	base := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
