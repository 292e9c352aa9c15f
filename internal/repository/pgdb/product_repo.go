package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/internal/repository/pgdb/converter"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/storekit/admin-backend/pkg/tr"
)

// ProductRepo implements the product repository over PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create inserts a product inside the ambient transaction and reads back its
// generated identifier and creation timestamp.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, slug, price, description, category_id, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, price, description, category_id, stock, created_at;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.Name, product.Slug, product.Price,
		product.Description, product.CategoryID, product.Stock,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Price,
		&model.Description, &model.CategoryID, &model.Stock, &model.CreatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListWithCategory returns every product with its category name, newest first.
func (p *ProductRepo) ListWithCategory(ctx context.Context) ([]usecase.ProductListItem, error) {
	query := `
		SELECT pr.id, pr.name, pr.slug, pr.price, pr.stock, cat.name, pr.created_at
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		ORDER BY pr.created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductListItem, 0)
	for rows.Next() {
		var item usecase.ProductListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Slug, &item.Price,
			&item.Stock, &item.CategoryName, &item.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetWithImages returns the product with its image URLs. A missing row is
// not an error: the result is nil.
func (p *ProductRepo) GetWithImages(ctx context.Context, id int64) (*usecase.ProductDetails, error) {
	query := `
		SELECT id, name, slug, price, description, category_id, stock, created_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Price,
		&model.Description, &model.CategoryID, &model.Stock, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imagesQuery := `
		SELECT url
		FROM product_images
		WHERE product_id = $1
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, imagesQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		urls = append(urls, url)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &usecase.ProductDetails{
		Product:   *p.conv.ToEntity(&model),
		ImageURLs: urls,
	}, nil
}

// Count returns the number of product rows.
func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
