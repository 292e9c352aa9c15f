package usecase

import (
	"context"
	"time"

	"github.com/storekit/admin-backend/internal/domain"
)

type ProductRepository interface {
	// Create inserts the product inside the ambient transaction and returns
	// it with its generated identifier.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListWithCategory(ctx context.Context) ([]ProductListItem, error)
	// GetWithImages returns nil without error when no row matches.
	GetWithImages(ctx context.Context, id int64) (*ProductDetails, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type OrderRepository interface {
	Count(ctx context.Context) (int64, error)
	// RevenueSince sums total_amount over orders created at or after the
	// given instant. Returns 0 when there are none.
	RevenueSince(ctx context.Context, since time.Time) (int64, error)
	Recent(ctx context.Context, limit int) ([]RecentOrder, error)
}

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type ProductImageRepository interface {
	// Create inserts the image row inside the ambient transaction.
	Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	// GetDashboard returns nil without error on a cache miss.
	GetDashboard(ctx context.Context) (*DashboardSummary, error)
	SetDashboard(ctx context.Context, summary *DashboardSummary) error
	DeleteDashboard(ctx context.Context) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
