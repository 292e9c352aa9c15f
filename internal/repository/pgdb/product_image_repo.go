package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/internal/repository/pgdb/converter"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/storekit/admin-backend/pkg/tr"
)

// ProductImageRepo implements the product image repository over PostgreSQL.
type ProductImageRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductImageConverter
}

func NewProductImageRepo(pool *pgxpool.Pool, conv converter.ProductImageConverter) *ProductImageRepo {
	return &ProductImageRepo{pool: pool, conv: conv}
}

// Create inserts an image row inside the ambient transaction, so the product
// insert it depends on either commits with it or not at all.
func (p *ProductImageRepo) Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, url)
		VALUES ($1, $2)
		RETURNING id, product_id, url, created_at;
	`

	var model converter.ProductImageModel
	if err := tx.QueryRow(ctx, query, image.ProductID, image.URL).
		Scan(&model.ID, &model.ProductID, &model.URL, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}
