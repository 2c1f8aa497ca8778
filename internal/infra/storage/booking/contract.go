package booking

import (
	"context"
	"database/sql"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works against
// *sql.DB, the metrics wrapper, or an active transaction equally.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
