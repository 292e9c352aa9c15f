package pgdb

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/e"
)

// OrderRepo implements the order aggregation queries over PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Count returns the number of order rows.
func (o *OrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := o.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// RevenueSince sums total_amount over orders created at or after the given
// instant. An empty range sums to 0.
func (o *OrderRepo) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1
	`

	var revenue int64
	if err := o.pool.QueryRow(ctx, query, since).Scan(&revenue); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return revenue, nil
}

// Recent returns the most recently created orders joined with the ordering
// user's name, newest first.
func (o *OrderRepo) Recent(ctx context.Context, limit int) ([]usecase.RecentOrder, error) {
	query := `
		SELECT ord.id, usr.name, ord.total_amount, ord.created_at
		FROM orders ord
		JOIN users usr ON ord.user_id = usr.id
		ORDER BY ord.created_at DESC
		LIMIT $1
	`

	rows, err := o.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.RecentOrder, 0, limit)
	for rows.Next() {
		var order usecase.RecentOrder
		if err := rows.Scan(&order.ID, &order.UserName, &order.TotalAmount, &order.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, order)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
