package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
)

// Drivers suportados pela conexão
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("driver de banco de dados não suportado: %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	// O driver sqlite3 cria um banco por conexão quando o DSN é :memory:;
	// uma única conexão garante que todas as queries enxergam o mesmo banco.
	if cfg.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func (c *Connection) Driver() string {
	return c.driver
}

// PlaceholderFormat retorna o formato de placeholder do driver ativo
func (c *Connection) PlaceholderFormat() squirrel.PlaceholderFormat {
	if c.driver == DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
