package usecase

import "context"

// AdminUC is the façade the admin delivery layer talks to.
type AdminUC interface {
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
	ListProducts(ctx context.Context) ([]ProductListItem, error)
	GetProductFormContext(ctx context.Context, productID *int64) (*ProductFormContext, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) error
}
