package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repositories for testing

type mockProductRepo struct {
	mu        sync.Mutex
	created   []*domain.Product
	nextID    int64
	listItems []ProductListItem
	details   map[int64]*ProductDetails
	createErr error
	listErr   error
	count     int64
	countErr  error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{nextID: 1, details: make(map[int64]*ProductDetails)}
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *product
	stored.ID = m.nextID
	m.nextID++
	m.created = append(m.created, &stored)
	return &stored, nil
}

func (m *mockProductRepo) ListWithCategory(ctx context.Context) ([]ProductListItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listItems, nil
}

func (m *mockProductRepo) GetWithImages(ctx context.Context, id int64) (*ProductDetails, error) {
	return m.details[id], nil
}

func (m *mockProductRepo) Count(ctx context.Context) (int64, error) {
	return m.count, m.countErr
}

type mockCategoryRepo struct {
	categories []domain.Category
	listErr    error
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

type mockOrderRepo struct {
	count      int64
	countErr   error
	revenue    int64
	revenueErr error
	sinceArg   time.Time
	recent     []RecentOrder
	recentErr  error
	limitArg   int
}

func (m *mockOrderRepo) Count(ctx context.Context) (int64, error) {
	return m.count, m.countErr
}

func (m *mockOrderRepo) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	m.sinceArg = since
	return m.revenue, m.revenueErr
}

func (m *mockOrderRepo) Recent(ctx context.Context, limit int) ([]RecentOrder, error) {
	m.limitArg = limit
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	if limit < len(m.recent) {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

type mockUserRepo struct {
	count    int64
	countErr error
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return m.count, m.countErr
}

type mockProductImageRepo struct {
	mu        sync.Mutex
	created   []*domain.ProductImage
	createErr error
}

func (m *mockProductImageRepo) Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *image
	stored.ID = int64(len(m.created) + 1)
	m.created = append(m.created, &stored)
	return &stored, nil
}

type mockOutboxRepo struct {
	mu        sync.Mutex
	created   []*OutboxEvent
	createErr error
}

func (m *mockOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *event
	stored.ID = int64(len(m.created) + 1)
	m.created = append(m.created, &stored)
	return &stored, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

type mockCacheRepo struct {
	mu          sync.Mutex
	summary     *DashboardSummary
	getErr      error
	setCalls    int
	deleteCalls int
}

func (m *mockCacheRepo) GetDashboard(ctx context.Context) (*DashboardSummary, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.summary, nil
}

func (m *mockCacheRepo) SetDashboard(ctx context.Context, summary *DashboardSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	return nil
}

func (m *mockCacheRepo) DeleteDashboard(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	return nil
}

type mockImagesInfra struct {
	uploadRes  *UploadImageRes
	uploadErr  error
	uploadReqs []*UploadImageReq
	cleaned    [][]string
}

func (m *mockImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	m.uploadReqs = append(m.uploadReqs, req)
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploadRes, nil
}

func (m *mockImagesInfra) CleanupImages(keys []string) {
	m.cleaned = append(m.cleaned, keys)
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx satisfies pgx.Tx for the transaction wrapper; only Commit and
// Rollback are ever reached because the repositories are mocked.
type fakeTx struct {
	pgx.Tx
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rollbacks++
	return nil
}

type fakePool struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	return f.BeginTx(ctx, pgx.TxOptions{})
}

func (f *fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

type fixture struct {
	products   *mockProductRepo
	categories *mockCategoryRepo
	orders     *mockOrderRepo
	users      *mockUserRepo
	images     *mockProductImageRepo
	outbox     *mockOutboxRepo
	cache      *mockCacheRepo
	infra      *mockImagesInfra
	pool       *fakePool
	uc         *AdminUseCase
}

func newFixture() *fixture {
	f := &fixture{
		products:   newMockProductRepo(),
		categories: &mockCategoryRepo{},
		orders:     &mockOrderRepo{},
		users:      &mockUserRepo{},
		images:     &mockProductImageRepo{},
		outbox:     &mockOutboxRepo{},
		cache:      &mockCacheRepo{},
		infra:      &mockImagesInfra{},
		pool:       &fakePool{tx: &fakeTx{}},
	}
	f.uc = NewAdminUC(
		f.products,
		f.categories,
		f.orders,
		f.users,
		f.images,
		f.outbox,
		f.pool,
		f.infra,
		f.cache,
		nopLogger{},
	)
	return f
}

func TestGetDashboardSummary_Aggregates(t *testing.T) {
	f := newFixture()
	f.products.count = 12
	f.orders.count = 7
	f.users.count = 3
	f.orders.revenue = 4550
	f.orders.recent = []RecentOrder{
		{ID: 7, UserName: "Ann", TotalAmount: 1999, CreatedAt: time.Now()},
		{ID: 6, UserName: "Bob", TotalAmount: 2551, CreatedAt: time.Now()},
	}

	fixed := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.Local)
	f.uc.now = func() time.Time { return fixed }

	summary, err := f.uc.GetDashboardSummary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, int64(12), summary.ProductCount)
	assert.Equal(t, int64(7), summary.OrderCount)
	assert.Equal(t, int64(3), summary.UserCount)
	assert.Equal(t, int64(4550), summary.DailyRevenue)
	assert.Len(t, summary.RecentOrders, 2)

	wantSince := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)
	assert.True(t, f.orders.sinceArg.Equal(wantSince), "revenue window must start at local midnight, got %v", f.orders.sinceArg)
	assert.Equal(t, 5, f.orders.limitArg)
}

func TestGetDashboardSummary_RecentCappedAtFive(t *testing.T) {
	f := newFixture()
	for i := 0; i < 9; i++ {
		f.orders.recent = append(f.orders.recent, RecentOrder{ID: int64(i + 1)})
	}

	summary, err := f.uc.GetDashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.RecentOrders, 5)
}

func TestGetDashboardSummary_CacheHitSkipsQueries(t *testing.T) {
	f := newFixture()
	f.cache.summary = &DashboardSummary{ProductCount: 42}
	f.products.countErr = errors.New("must not be queried")

	summary, err := f.uc.GetDashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.ProductCount)
}

func TestGetDashboardSummary_CacheErrorFallsThrough(t *testing.T) {
	f := newFixture()
	f.cache.getErr = errors.New("redis down")
	f.products.count = 4

	summary, err := f.uc.GetDashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.ProductCount)
}

func TestGetDashboardSummary_FailsClosed(t *testing.T) {
	f := newFixture()
	f.orders.countErr = errors.New("orders table gone")

	summary, err := f.uc.GetDashboardSummary(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary, "a query failure must not yield a partial summary")
}

func TestListProducts(t *testing.T) {
	f := newFixture()

	items, err := f.uc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	f.products.listItems = []ProductListItem{{ID: 1, Name: "Mug", CategoryName: "Home & Kitchen"}}
	items, err = f.uc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].Name)

	f.products.listErr = errors.New("connection refused")
	_, err = f.uc.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestGetProductFormContext(t *testing.T) {
	f := newFixture()
	f.categories.categories = []domain.Category{{ID: 1, Name: "Books"}}
	f.products.details[10] = &ProductDetails{
		Product:   domain.Product{ID: 10, Name: "Atlas"},
		ImageURLs: []string{"http://cdn/atlas.png"},
	}

	formCtx, err := f.uc.GetProductFormContext(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, formCtx.Categories, 1)
	assert.Nil(t, formCtx.Product)

	id := int64(10)
	formCtx, err = f.uc.GetProductFormContext(context.Background(), &id)
	require.NoError(t, err)
	require.NotNil(t, formCtx.Product)
	assert.Equal(t, "Atlas", formCtx.Product.Product.Name)

	missing := int64(999)
	formCtx, err = f.uc.GetProductFormContext(context.Background(), &missing)
	require.NoError(t, err, "an unknown id is not an error")
	assert.Nil(t, formCtx.Product)
}

func TestCreateProduct_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  *CreateProductReq
		want error
	}{
		{"empty name", &CreateProductReq{Name: "  ", Price: 100, CategoryID: 1}, e.ErrProductNameRequired},
		{"zero price", &CreateProductReq{Name: "Mug", Price: 0, CategoryID: 1}, e.ErrPriceMustBePositive},
		{"negative price", &CreateProductReq{Name: "Mug", Price: -500, CategoryID: 1}, e.ErrPriceMustBePositive},
		{"missing category", &CreateProductReq{Name: "Mug", Price: 100}, e.ErrCategoryRequired},
		{"negative stock", &CreateProductReq{Name: "Mug", Price: 100, CategoryID: 1, Stock: -1}, e.ErrStockMustBeNonNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			err := f.uc.CreateProduct(context.Background(), tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, f.products.created, "invalid request must not touch the store")
			assert.Empty(t, f.outbox.created)
		})
	}
}

func TestCreateProduct_WithoutImage(t *testing.T) {
	f := newFixture()
	fixed := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	f.uc.now = func() time.Time { return fixed }

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Blue Mug",
		Price:      1299,
		CategoryID: 3,
		Stock:      10,
	})
	require.NoError(t, err)

	require.Len(t, f.products.created, 1)
	created := f.products.created[0]
	assert.Equal(t, "Blue Mug", created.Name)
	assert.True(t, strings.HasPrefix(created.Slug, "blue-mug-"), "slug %q", created.Slug)
	assert.Empty(t, f.images.created, "no image supplied, no image row")

	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, ProductCreated, f.outbox.created[0].EventType)
	assert.Equal(t, created.ID, f.outbox.created[0].ProductID)

	assert.Equal(t, 1, f.pool.tx.commits)
	assert.Equal(t, 0, f.pool.tx.rollbacks)
	assert.Equal(t, 1, f.cache.deleteCalls, "stale dashboard cache must be dropped")
}

func TestCreateProduct_WithImageURL(t *testing.T) {
	f := newFixture()

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Desk Lamp",
		Price:      4999,
		CategoryID: 1,
		Stock:      2,
		ImageURL:   "https://example.com/lamp.png",
	})
	require.NoError(t, err)

	require.Len(t, f.images.created, 1)
	img := f.images.created[0]
	assert.Equal(t, f.products.created[0].ID, img.ProductID)
	assert.Equal(t, "https://example.com/lamp.png", img.URL)
	assert.Empty(t, f.infra.uploadReqs, "a plain URL must not hit object storage")
}

func TestCreateProduct_WithUploadedFile(t *testing.T) {
	f := newFixture()
	f.infra.uploadRes = &UploadImageRes{
		Key: "desk-lamp/abc.png",
		URL: "https://cdn.example.com/products/desk-lamp/abc.png",
	}

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Desk Lamp",
		Price:      4999,
		CategoryID: 1,
		ImageURL:   "https://example.com/ignored.png",
		Image:      NewImageUpload([]byte{0xFF, 0xD8}, "image/jpeg", 2, "lamp.jpg"),
	})
	require.NoError(t, err)

	require.Len(t, f.infra.uploadReqs, 1)
	require.Len(t, f.images.created, 1)
	assert.Equal(t, f.infra.uploadRes.URL, f.images.created[0].URL, "uploaded object URL wins over the form URL")
	assert.Empty(t, f.infra.cleaned)
}

func TestCreateProduct_UploadFailureStopsEarly(t *testing.T) {
	f := newFixture()
	f.infra.uploadErr = errors.New("minio unavailable")

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Desk Lamp",
		Price:      4999,
		CategoryID: 1,
		Image:      NewImageUpload([]byte{0x89}, "image/png", 1, "lamp.png"),
	})
	require.Error(t, err)
	assert.Empty(t, f.products.created)
	assert.Empty(t, f.outbox.created)
}

func TestCreateProduct_InsertFailureRollsBackAndCleansUp(t *testing.T) {
	f := newFixture()
	f.infra.uploadRes = &UploadImageRes{Key: "mug/k.png", URL: "https://cdn/mug/k.png"}
	f.products.createErr = errors.New("duplicate slug")

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Mug",
		Price:      100,
		CategoryID: 1,
		Image:      NewImageUpload([]byte{0x89}, "image/png", 1, "mug.png"),
	})
	require.Error(t, err)

	assert.Equal(t, 1, f.pool.tx.rollbacks)
	assert.Equal(t, 0, f.pool.tx.commits)
	require.Len(t, f.infra.cleaned, 1)
	assert.Equal(t, []string{"mug/k.png"}, f.infra.cleaned[0])
	assert.Empty(t, f.outbox.created)
	assert.Equal(t, 0, f.cache.deleteCalls, "a failed create must not invalidate the cache")
}

func TestCreateProduct_OutboxFailureAbortsTransaction(t *testing.T) {
	f := newFixture()
	f.outbox.createErr = errors.New("outbox insert failed")

	err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Mug",
		Price:      100,
		CategoryID: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 1, f.pool.tx.rollbacks)
	assert.Equal(t, 0, f.pool.tx.commits)
}

func TestCreateProduct_Property_ValidRequestsAlwaysPairRowsWithEvents(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every accepted create yields one product and one outbox event", prop.ForAll(
		func(name string, price int64, categoryID int64, stock int32) bool {
			f := newFixture()
			err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
				Name:       name,
				Price:      price,
				CategoryID: categoryID,
				Stock:      stock,
			})
			if err != nil {
				return false
			}
			return len(f.products.created) == 1 &&
				len(f.outbox.created) == 1 &&
				len(f.images.created) == 0 &&
				f.outbox.created[0].ProductID == f.products.created[0].ID
		},
		gen.RegexMatch(`[a-zA-Z][a-zA-Z ]{0,30}`).SuchThat(func(s string) bool {
			return strings.TrimSpace(s) != ""
		}),
		gen.Int64Range(1, 100_000_000),
		gen.Int64Range(1, 1_000),
		gen.Int32Range(0, 10_000),
	))

	properties.TestingRun(t)
}
