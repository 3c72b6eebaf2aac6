package database

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB (via Connection) quanto por *sql.Tx,
// permitindo que statements rodem dentro ou fora de uma transação
type Queryer interface {
	ExecContext(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
