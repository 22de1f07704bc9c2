package postgresql

import (
	"context"

	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to ctx when one is active,
// otherwise the pool. Repositories call this so the same code runs inside
// and outside WithinTx.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
