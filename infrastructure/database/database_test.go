package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
)

func newSQLiteConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), config.Database{
		Driver: DriverSQLite,
		DSN:    ":memory:",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func TestNewConnection(t *testing.T) {
	t.Run("sqlite em memória", func(t *testing.T) {
		conn := newSQLiteConnection(t)
		assert.Equal(t, DriverSQLite, conn.Driver())
		assert.NoError(t, conn.Ping(context.Background()))
	})

	t.Run("driver não suportado retorna erro", func(t *testing.T) {
		_, err := NewConnection(context.Background(), config.Database{
			Driver: "mysql",
			DSN:    "qualquer",
		})
		assert.Error(t, err)
	})
}

func TestConnection_PlaceholderFormat(t *testing.T) {
	conn := newSQLiteConnection(t)
	assert.Equal(t, squirrel.Question, conn.PlaceholderFormat())

	postgres := &Connection{driver: DriverPostgres}
	assert.Equal(t, squirrel.Dollar, postgres.PlaceholderFormat())
}

func TestConnection_RunInTransaction(t *testing.T) {
	conn := newSQLiteConnection(t)
	ctx := context.Background()

	_, err := conn.ExecContext(ctx, `CREATE TABLE amostra (id INTEGER PRIMARY KEY, nome TEXT NOT NULL)`)
	require.NoError(t, err)

	countRows := func() int64 {
		var count int64
		require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM amostra`).Scan(&count))
		return count
	}

	t.Run("transação confirmada persiste as escritas", func(t *testing.T) {
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO amostra (nome) VALUES ('a'), ('b')`)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), countRows())
	})

	t.Run("erro desfaz todas as escritas da transação", func(t *testing.T) {
		expectedErr := errors.New("falha no meio da transação")

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO amostra (nome) VALUES ('c')`); err != nil {
				return err
			}
			return expectedErr
		})
		require.ErrorIs(t, err, expectedErr)
		assert.Equal(t, int64(2), countRows())
	})
}
