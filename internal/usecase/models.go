package usecase

import (
	"time"

	"github.com/storekit/admin-backend/internal/domain"
)

// ADMIN USECASE

// DashboardSummary carries the aggregated figures for the admin landing view.
type DashboardSummary struct {
	ProductCount int64
	OrderCount   int64
	UserCount    int64
	DailyRevenue int64 // cents, orders created since local midnight
	RecentOrders []RecentOrder
}

// RecentOrder is one row of the dashboard's recent orders block.
type RecentOrder struct {
	ID          int64
	UserName    string
	TotalAmount int64 // cents
	CreatedAt   time.Time
}

// ProductListItem is one row of the product management view.
type ProductListItem struct {
	ID           int64
	Name         string
	Slug         string
	Price        int64 // cents
	Stock        int32
	CategoryName string
	CreatedAt    time.Time
}

// ProductDetails is a product together with its image URLs, as shown on the
// edit form.
type ProductDetails struct {
	Product   domain.Product
	ImageURLs []string
}

// ProductFormContext feeds the add/edit product form. Product is nil on the
// creation form and when the requested id has no matching row.
type ProductFormContext struct {
	Categories []domain.Category
	Product    *ProductDetails
}

// CreateProductReq is the request to create a product. ImageURL and Image
// are both optional; when Image is set the uploaded object's URL wins.
type CreateProductReq struct {
	Name        string
	Price       int64 // cents
	Description string
	CategoryID  int64
	Stock       int32
	ImageURL    string
	Image       *ImageUpload
}

// ImageUpload represents an image received via multipart/form-data.
type ImageUpload struct {
	Data     []byte // image bytes
	MimeType string // Content-Type from multipart (image/jpeg)
	Size     int64  // actual size in bytes
	Name     string // original file name (for logs)
}

// INFRASTRUCTURE

// UploadImageReq is the request to store one product image object.
type UploadImageReq struct {
	ProductName string
	Image       ImageUpload
}

// UploadImageRes holds the stored object's key and its public URL.
type UploadImageRes struct {
	Key string
	URL string
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewDashboardSummary(productCount, orderCount, userCount, dailyRevenue int64, recentOrders []RecentOrder) *DashboardSummary {
	return &DashboardSummary{
		ProductCount: productCount,
		OrderCount:   orderCount,
		UserCount:    userCount,
		DailyRevenue: dailyRevenue,
		RecentOrders: recentOrders,
	}
}

func NewProductFormContext(categories []domain.Category, product *ProductDetails) *ProductFormContext {
	return &ProductFormContext{
		Categories: categories,
		Product:    product,
	}
}

func NewCreateProductReq(name string, price int64, description string, categoryID int64, stock int32, imageURL string, image *ImageUpload) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Price:       price,
		Description: description,
		CategoryID:  categoryID,
		Stock:       stock,
		ImageURL:    imageURL,
		Image:       image,
	}
}

func NewImageUpload(data []byte, mimeType string, size int64, name string) *ImageUpload {
	return &ImageUpload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image ImageUpload) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewUploadImageRes(key, url string) *UploadImageRes {
	return &UploadImageRes{
		Key: key,
		URL: url,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}
