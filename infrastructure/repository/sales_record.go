// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/database"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

const (
	salesRecordsTable = "sales_records"
)

type SalesRecordRepository interface {
	InitSchema(ctx context.Context) error
	BulkInsert(ctx context.Context, records []*domain.SalesRecord) (int64, error)
	RowCount(ctx context.Context) (int64, error)
	CountMissing(ctx context.Context, field domain.MissingField) (int64, error)
	DistinctYearMonths(ctx context.Context) ([]domain.YearMonth, error)
	ApplyCleaning(ctx context.Context, overrides []domain.TypeOverride) (*domain.CleaningReport, error)
}

type salesRecordRepository struct {
	conn *database.Connection
}

func NewSalesRecordRepository(conn *database.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) InitSchema(ctx context.Context) error {
	// O dialeto só diverge na chave primária autoincrementada
	pk := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.conn.Driver() == database.DriverPostgres {
		pk = "id BIGSERIAL PRIMARY KEY"
	}

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS sales_records (
			%s,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			supplier TEXT,
			item_code TEXT NOT NULL,
			item_description TEXT NOT NULL,
			item_type TEXT,
			retail_sales DOUBLE PRECISION,
			retail_transfers DOUBLE PRECISION NOT NULL,
			warehouse_sales DOUBLE PRECISION NOT NULL
		)`, pk)

	if _, err := r.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar a tabela sales_records: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sales_records_year_month ON sales_records (year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_records_supplier ON sales_records (supplier)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_records_item_type ON sales_records (item_type)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_records_item_code ON sales_records (item_code)`,
	}
	for _, index := range indexes {
		if _, err := r.conn.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("erro ao criar índice: %w", err)
		}
	}

	return nil
}

func (r *salesRecordRepository) BulkInsert(ctx context.Context, records []*domain.SalesRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	// Inserção em lote com múltiplos VALUES
	query := squirrel.StatementBuilder.
		Insert(salesRecordsTable).
		Columns(
			"year",
			"month",
			"supplier",
			"item_code",
			"item_description",
			"item_type",
			"retail_sales",
			"retail_transfers",
			"warehouse_sales",
		).
		PlaceholderFormat(r.conn.PlaceholderFormat())

	for _, record := range records {
		query = query.Values(
			record.Year,
			record.Month,
			record.Supplier,
			record.ItemCode,
			record.ItemDescription,
			record.ItemType,
			nullableAmount(record.RetailSales),
			record.RetailTransfers.InexactFloat64(),
			record.WarehouseSales.InexactFloat64(),
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas inseridas: %w", err)
	}

	return inserted, nil
}

func (r *salesRecordRepository) RowCount(ctx context.Context) (int64, error) {
	return r.rowCount(ctx, r.conn)
}

func (r *salesRecordRepository) rowCount(ctx context.Context, q database.Queryer) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesRecordsTable).
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

func (r *salesRecordRepository) CountMissing(ctx context.Context, field domain.MissingField) (int64, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(salesRecordsTable).
		PlaceholderFormat(r.conn.PlaceholderFormat())

	switch field {
	case domain.FieldRetailSales:
		builder = builder.Where(squirrel.Expr("retail_sales IS NULL"))
	case domain.FieldSupplier:
		builder = builder.Where(squirrel.Expr("supplier IS NULL OR TRIM(supplier) = ''"))
	case domain.FieldItemType:
		builder = builder.Where(squirrel.Expr("item_type IS NULL OR TRIM(item_type) = ''"))
	default:
		return 0, fmt.Errorf("campo não monitorado pelo verificador de qualidade: %q", field)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar campos ausentes: %w", err)
	}

	return count, nil
}

func (r *salesRecordRepository) DistinctYearMonths(ctx context.Context) ([]domain.YearMonth, error) {
	query, args, err := squirrel.
		Select("DISTINCT year", "month").
		From(salesRecordsTable).
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	pairs := make([]domain.YearMonth, 0)
	for rows.Next() {
		var pair domain.YearMonth
		if err := rows.Scan(&pair.Year, &pair.Month); err != nil {
			return nil, fmt.Errorf("erro ao escanear par (ano, mês): %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pairs, nil
}

// ApplyCleaning aplica as três regras de limpeza na ordem fixa, dentro de uma
// única transação: nenhum estado parcial fica visível entre as regras.
func (r *salesRecordRepository) ApplyCleaning(ctx context.Context, overrides []domain.TypeOverride) (*domain.CleaningReport, error) {
	report := &domain.CleaningReport{}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		rowsBefore, err := r.rowCount(ctx, tx)
		if err != nil {
			return err
		}
		report.RowsBefore = rowsBefore

		// Regra (a): remover linhas sem retail_sales
		deleted, err := r.deleteNullRetailSales(ctx, tx)
		if err != nil {
			return err
		}
		report.Deleted = deleted

		// Regra (b): preencher fornecedor vazio com o sentinela
		filled, err := r.fillMissingSupplier(ctx, tx)
		if err != nil {
			return err
		}
		report.SupplierFilled = filled

		// Regra (c): preencher item_type vazio pela lista de sobrescritas
		typed, err := r.fillMissingItemType(ctx, tx, overrides)
		if err != nil {
			return err
		}
		report.ItemTypeFilled = typed

		rowsAfter, err := r.rowCount(ctx, tx)
		if err != nil {
			return err
		}
		report.RowsAfter = rowsAfter

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao aplicar limpeza: %w", err)
	}

	return report, nil
}

func (r *salesRecordRepository) deleteNullRetailSales(ctx context.Context, tx *sql.Tx) (int64, error) {
	query, args, err := squirrel.
		Delete(salesRecordsTable).
		Where(squirrel.Expr("retail_sales IS NULL")).
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover linhas sem retail_sales: %w", err)
	}

	return result.RowsAffected()
}

func (r *salesRecordRepository) fillMissingSupplier(ctx context.Context, tx *sql.Tx) (int64, error) {
	query, args, err := squirrel.
		Update(salesRecordsTable).
		Set("supplier", domain.SupplierUnknown).
		Where(squirrel.Expr("supplier IS NULL OR TRIM(supplier) = ''")).
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao preencher fornecedores vazios: %w", err)
	}

	return result.RowsAffected()
}

func (r *salesRecordRepository) fillMissingItemType(ctx context.Context, tx *sql.Tx, overrides []domain.TypeOverride) (int64, error) {
	var total int64

	for _, override := range overrides {
		query, args, err := squirrel.
			Update(salesRecordsTable).
			Set("item_type", override.ItemType).
			Where(squirrel.Eq{"item_code": override.ItemCode}).
			Where(squirrel.Expr("(item_type IS NULL OR TRIM(item_type) = '')")).
			PlaceholderFormat(r.conn.PlaceholderFormat()).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("erro ao preencher item_type do produto %s: %w", override.ItemCode, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		total += affected
	}

	return total, nil
}

// nullableAmount converte um valor monetário opcional para o argumento SQL
func nullableAmount(amount *decimal.Decimal) interface{} {
	if amount == nil {
		return nil
	}
	return amount.InexactFloat64()
}
