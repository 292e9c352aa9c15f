package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/storekit/admin-backend/pkg/e"
)

type txKey struct{}

// CtxWithTx puts a transaction into the context for repositories
// participating in the same write. The value must be a pgx.Tx.
func CtxWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx extracts the transaction object (pgx.Tx) from the context.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value(txKey{})
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
