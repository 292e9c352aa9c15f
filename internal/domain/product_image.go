package domain

import "time"

// ProductImage describes an image row attached to a product.
type ProductImage struct {
	ID        int64
	ProductID int64
	URL       string
	CreatedAt time.Time
}

func NewProductImage(productID int64, url string) *ProductImage {
	return &ProductImage{
		ProductID: productID,
		URL:       url,
	}
}
