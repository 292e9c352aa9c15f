package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/storekit/admin-backend/pkg/logger"
	"github.com/storekit/admin-backend/pkg/tr"
)

// recentOrdersLimit caps the dashboard's recent orders block.
const recentOrdersLimit = 5

// AdminUseCase implements the admin operations: dashboard aggregation and
// product management over the relational store.
type AdminUseCase struct {
	productRepo      ProductRepository
	categoryRepo     CategoryRepository
	orderRepo        OrderRepository
	userRepo         UserRepository
	productImageRepo ProductImageRepository
	outboxRepo       OutboxRepository
	dbPool           transaction.Transactional
	imagesInfra      ImagesInfra
	cacheRepo        CacheRepository
	logger           logger.Logger
	now              func() time.Time
}

func NewAdminUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	orderRepo OrderRepository,
	userRepo UserRepository,
	productImageRepo ProductImageRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		productImageRepo: productImageRepo,
		outboxRepo:       outboxRepo,
		dbPool:           dbPool,
		imagesInfra:      imagesInfra,
		cacheRepo:        cacheRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// GetDashboardSummary aggregates the figures for the admin landing view:
// entity counts, revenue from orders created since local midnight, and the
// five most recent orders with the ordering user's name. Any query failure
// discards the whole summary; there is no partial result.
func (a *AdminUseCase) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	const op = "AdminUseCase.GetDashboardSummary"

	cached, err := a.cacheRepo.GetDashboard(ctx)
	if err != nil {
		a.logger.Warnf("dashboard cache read failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	productCount, err := a.productRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orderCount, err := a.orderRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	userCount, err := a.userRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	dailyRevenue, err := a.orderRepo.RevenueSince(ctx, startOfDay(a.now()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recentOrders, err := a.orderRepo.Recent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := NewDashboardSummary(productCount, orderCount, userCount, dailyRevenue, recentOrders)

	// Cache writes happen off the request path and never fail it.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := a.cacheRepo.SetDashboard(bgCtx, summary); err != nil {
			a.logger.Warnf("failed to cache dashboard in background: %v", e.Wrap(op, err))
		}
	}()

	return summary, nil
}

// ListProducts returns every product with its category name, newest first.
func (a *AdminUseCase) ListProducts(ctx context.Context) ([]ProductListItem, error) {
	const op = "AdminUseCase.ListProducts"

	products, err := a.productRepo.ListWithCategory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProductFormContext loads the data backing the add/edit product form.
// The category list is always fetched; when productID is given the product
// and its images are loaded too. An id with no matching row yields a nil
// product, not an error.
func (a *AdminUseCase) GetProductFormContext(ctx context.Context, productID *int64) (*ProductFormContext, error) {
	const op = "AdminUseCase.GetProductFormContext"

	categories, err := a.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var product *ProductDetails
	if productID != nil {
		product, err = a.productRepo.GetWithImages(ctx, *productID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return NewProductFormContext(categories, product), nil
}

// CreateProduct inserts a product and, when an image is supplied, its image
// row, inside one transaction. An uploaded file is stored in object storage
// first; if the transaction fails afterwards the orphaned object is removed
// by background cleanup.
func (a *AdminUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) error {
	const op = "AdminUseCase.CreateProduct"

	var err error
	if err = a.validateProduct(req); err != nil {
		return e.Wrap(op, err)
	}

	imageURL := req.ImageURL
	var uploadedKeys []string
	if req.Image != nil {
		uploadRes, uploadErr := a.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if uploadErr != nil {
			return e.Wrap(op, uploadErr)
		}
		uploadedKeys = append(uploadedKeys, uploadRes.Key)
		imageURL = uploadRes.URL
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		a.cleanupAfterFailure(req.Name, uploadedKeys, e.Wrap(op, err))
		return e.Wrap(op, err)
	}
	// On error the transaction is rolled back and any uploaded image object
	// is compensated away.
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			a.cleanupAfterFailure(req.Name, uploadedKeys, e.Wrap(op, err))
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	now := a.now()
	product, err := a.productRepo.Create(ctx, domain.NewProduct(req.Name, req.Price, req.Description, req.CategoryID, req.Stock, now))
	if err != nil {
		return e.Wrap(op, err)
	}

	if imageURL != "" {
		if _, err = a.productImageRepo.Create(ctx, domain.NewProductImage(product.ID, imageURL)); err != nil {
			return e.Wrap(op, err)
		}
	}

	event, err := NewProductCreatedEvent(product.ID, product.Slug, now)
	if err != nil {
		return e.Wrap(op, err)
	}
	if _, err = a.outboxRepo.Create(ctx, event); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	// The dashboard counts just changed; drop the stale cache entry.
	if err := a.cacheRepo.DeleteDashboard(ctx); err != nil {
		a.logger.Warnf("failed to invalidate dashboard cache: %v", e.Wrap(op, err))
	}

	return nil
}

// cleanupAfterFailure schedules removal of uploaded image objects that lost
// their owning transaction.
func (a *AdminUseCase) cleanupAfterFailure(productName string, keys []string, cause error) {
	if len(keys) == 0 {
		return
	}

	a.logger.Warnf(
		"cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
		productName,
		cause,
	)
	a.imagesInfra.CleanupImages(keys)
}

// validateProduct checks the create request's required fields.
func (a *AdminUseCase) validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.CategoryID <= 0 {
		return e.ErrCategoryRequired
	}

	if req.Stock < 0 {
		return e.ErrStockMustBeNonNegative
	}

	return nil
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
