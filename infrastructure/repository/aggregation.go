package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/database"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
	"github.com/vfg2006/liquor-sales-analytics/pkg/utils"
)

// AggregationRepository executa o catálogo de consultas agregadas sobre os
// registros limpos. Todas as consultas são somente leitura, retornam fatias
// vazias quando nenhum grupo satisfaz os filtros e carregam um critério de
// desempate determinístico em cada ORDER BY.
type AggregationRepository interface {
	ChannelSplit(ctx context.Context) (*domain.ChannelSplit, error)
	CategoryBreakdown(ctx context.Context) ([]*domain.CategoryRevenue, error)
	CategoryEfficiency(ctx context.Context) ([]*domain.CategoryEfficiency, error)
	TopProductsByChannel(ctx context.Context, channel domain.SalesChannel, limit uint64) ([]*domain.ProductRevenue, error)
	TopSuppliers(ctx context.Context, limit uint64) ([]*domain.SupplierRevenue, error)
	SupplierConcentration(ctx context.Context, limit uint64) ([]*domain.SupplierConcentration, error)
	MonthlyPattern(ctx context.Context, year int) ([]*domain.MonthlyPattern, error)
	WholesaleRatio(ctx context.Context, threshold float64, limit uint64) ([]*domain.WholesaleRatio, error)
	SupplierDiversification(ctx context.Context, minProducts int, limit uint64) ([]*domain.SupplierDiversification, error)
	RevenueConcentrationTiers(ctx context.Context) ([]*domain.RevenueTier, error)
}

type aggregationRepository struct {
	conn *database.Connection
}

func NewAggregationRepository(conn *database.Connection) AggregationRepository {
	return &aggregationRepository{
		conn: conn,
	}
}

func (r *aggregationRepository) ChannelSplit(ctx context.Context) (*domain.ChannelSplit, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(retail_sales), 0) AS retail_sales",
			"COALESCE(SUM(warehouse_sales), 0) AS warehouse_sales",
		).
		From(salesRecordsTable).
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var retail, warehouse float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&retail, &warehouse); err != nil {
		return nil, fmt.Errorf("erro ao escanear divisão por canal: %w", err)
	}

	split := &domain.ChannelSplit{
		RetailSales:    money(retail),
		WarehouseSales: money(warehouse),
	}

	// Percentuais indefinidos quando não há receita em nenhum canal
	total := retail + warehouse
	split.RetailPct = utils.PctOf(retail, total)
	split.WarehousePct = utils.PctOf(warehouse, total)

	return split, nil
}

func (r *aggregationRepository) CategoryBreakdown(ctx context.Context) ([]*domain.CategoryRevenue, error) {
	core := domain.CoreItemTypes()

	query, args, err := squirrel.
		Select(
			"c.item_type",
			"c.revenue",
			"CASE WHEN t.core_revenue = 0 THEN NULL ELSE c.revenue * 100.0 / t.core_revenue END AS pct_of_core",
		).
		From("core c").
		CrossJoin("total t").
		OrderBy("c.revenue DESC", "c.item_type ASC").
		Prefix(`WITH core AS (
			SELECT item_type, SUM(retail_sales) AS revenue
			FROM sales_records
			WHERE item_type IN (?, ?, ?)
			GROUP BY item_type
		), total AS (
			SELECT SUM(revenue) AS core_revenue FROM core
		)`, core[0], core[1], core[2]).
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

	categories := make([]*domain.CategoryRevenue, 0)
	for rows.Next() {
		var (
			category domain.CategoryRevenue
			revenue  float64
			pct      sql.NullFloat64
		)
		if err := rows.Scan(&category.ItemType, &revenue, &pct); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		category.Revenue = money(revenue)
		category.PctOfCore = nullablePct(pct)
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *aggregationRepository) CategoryEfficiency(ctx context.Context) ([]*domain.CategoryEfficiency, error) {
	query, args, err := squirrel.
		Select(
			"item_type",
			"COALESCE(SUM(retail_sales), 0) AS revenue",
			"COUNT(DISTINCT item_code) AS products",
		).
		From(salesRecordsTable).
		GroupBy("item_type").
		OrderBy("revenue DESC", "item_type ASC").
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

	categories := make([]*domain.CategoryEfficiency, 0)
	for rows.Next() {
		var (
			category domain.CategoryEfficiency
			itemType sql.NullString
			revenue  float64
		)
		if err := rows.Scan(&itemType, &revenue, &category.Products); err != nil {
			return nil, fmt.Errorf("erro ao escanear eficiência de categoria: %w", err)
		}
		category.ItemType = itemType.String
		category.Revenue = money(revenue)
		category.RevenuePerProduct = revenuePerProduct(category.Revenue, category.Products)
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *aggregationRepository) TopProductsByChannel(ctx context.Context, channel domain.SalesChannel, limit uint64) ([]*domain.ProductRevenue, error) {
	metric, err := channelColumn(channel)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(
			"item_description",
			"item_type",
			fmt.Sprintf("COALESCE(SUM(%s), 0) AS revenue", metric),
		).
		From(salesRecordsTable).
		GroupBy("item_description", "item_type").
		OrderBy("revenue DESC", "item_description ASC").
		Limit(limit).
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

	products := make([]*domain.ProductRevenue, 0, limit)
	for rows.Next() {
		var (
			product  domain.ProductRevenue
			itemType sql.NullString
			revenue  float64
		)
		if err := rows.Scan(&product.ItemDescription, &itemType, &revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		product.ItemType = itemType.String
		product.Revenue = money(revenue)
		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *aggregationRepository) TopSuppliers(ctx context.Context, limit uint64) ([]*domain.SupplierRevenue, error) {
	query, args, err := squirrel.
		Select(
			"supplier",
			"COALESCE(SUM(retail_sales), 0) AS revenue",
			"COUNT(DISTINCT item_code) AS products",
		).
		From(salesRecordsTable).
		GroupBy("supplier").
		OrderBy("revenue DESC", "supplier ASC").
		Limit(limit).
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

	suppliers := make([]*domain.SupplierRevenue, 0, limit)
	for rows.Next() {
		var (
			supplier domain.SupplierRevenue
			revenue  float64
		)
		if err := rows.Scan(&supplier.Supplier, &revenue, &supplier.Products); err != nil {
			return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
		}
		supplier.Revenue = money(revenue)
		supplier.RevenuePerProduct = revenuePerProduct(supplier.Revenue, supplier.Products)
		suppliers = append(suppliers, &supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suppliers, nil
}

func (r *aggregationRepository) SupplierConcentration(ctx context.Context, limit uint64) ([]*domain.SupplierConcentration, error) {
	query, args, err := squirrel.
		Select(
			"s.supplier",
			"s.revenue",
			"CASE WHEN t.total_revenue = 0 THEN NULL ELSE s.revenue * 100.0 / t.total_revenue END AS pct_of_total",
			`CASE WHEN t.total_revenue = 0 THEN NULL
				ELSE SUM(s.revenue) OVER (ORDER BY s.revenue DESC, s.supplier ASC) * 100.0 / t.total_revenue
			END AS cumulative_pct`,
		).
		From("supplier_revenue s").
		CrossJoin("total t").
		OrderBy("s.revenue DESC", "s.supplier ASC").
		Limit(limit).
		Prefix(`WITH supplier_revenue AS (
			SELECT supplier, SUM(retail_sales) AS revenue
			FROM sales_records
			GROUP BY supplier
		), total AS (
			SELECT SUM(revenue) AS total_revenue FROM supplier_revenue
		)`).
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

	suppliers := make([]*domain.SupplierConcentration, 0, limit)
	for rows.Next() {
		var (
			supplier domain.SupplierConcentration
			revenue  float64
			pct      sql.NullFloat64
			cumPct   sql.NullFloat64
		)
		if err := rows.Scan(&supplier.Supplier, &revenue, &pct, &cumPct); err != nil {
			return nil, fmt.Errorf("erro ao escanear concentração de fornecedor: %w", err)
		}
		supplier.Revenue = money(revenue)
		supplier.PctOfTotal = nullablePct(pct)
		supplier.CumulativePct = nullablePct(cumPct)
		suppliers = append(suppliers, &supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suppliers, nil
}

func (r *aggregationRepository) MonthlyPattern(ctx context.Context, year int) ([]*domain.MonthlyPattern, error) {
	query, args, err := squirrel.
		Select(
			"month",
			"COALESCE(SUM(retail_sales), 0) AS revenue",
			"COUNT(*) AS row_count",
			"COALESCE(AVG(retail_sales), 0) AS avg_revenue",
		).
		From(salesRecordsTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("month").
		OrderBy("month ASC").
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

	months := make([]*domain.MonthlyPattern, 0, 12)
	for rows.Next() {
		var (
			month      domain.MonthlyPattern
			revenue    float64
			avgRevenue float64
		)
		if err := rows.Scan(&month.Month, &revenue, &month.Rows, &avgRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear padrão mensal: %w", err)
		}
		month.Revenue = money(revenue)
		month.AvgRevenue = money(avgRevenue)
		months = append(months, &month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *aggregationRepository) WholesaleRatio(ctx context.Context, threshold float64, limit uint64) ([]*domain.WholesaleRatio, error) {
	query, args, err := squirrel.
		Select(
			"item_description",
			"item_type",
			"SUM(warehouse_sales) AS warehouse_revenue",
			"SUM(retail_sales) AS retail_revenue",
			"SUM(warehouse_sales) / SUM(retail_sales) AS ratio",
		).
		From(salesRecordsTable).
		GroupBy("item_description", "item_type").
		// Ambos os canais precisam ser positivos mesmo com limiar zero ou
		// negativo na configuração; a razão nunca divide por zero
		Having("SUM(retail_sales) > ?", threshold).
		Having("SUM(retail_sales) > 0").
		Having("SUM(warehouse_sales) > 0").
		OrderBy("ratio DESC", "item_description ASC").
		Limit(limit).
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

	ratios := make([]*domain.WholesaleRatio, 0, limit)
	for rows.Next() {
		var (
			ratio     domain.WholesaleRatio
			itemType  sql.NullString
			warehouse float64
			retail    float64
		)
		if err := rows.Scan(&ratio.ItemDescription, &itemType, &warehouse, &retail, &ratio.Ratio); err != nil {
			return nil, fmt.Errorf("erro ao escanear razão atacado/varejo: %w", err)
		}
		ratio.ItemType = itemType.String
		ratio.WarehouseSales = money(warehouse)
		ratio.RetailSales = money(retail)
		ratios = append(ratios, &ratio)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ratios, nil
}

func (r *aggregationRepository) SupplierDiversification(ctx context.Context, minProducts int, limit uint64) ([]*domain.SupplierDiversification, error) {
	query, args, err := squirrel.
		Select(
			"supplier",
			"COUNT(DISTINCT item_type) AS item_types",
			"COUNT(DISTINCT item_code) AS products",
			"COALESCE(SUM(retail_sales), 0) AS revenue",
			r.distinctTypesExpr()+" AS type_list",
		).
		From(salesRecordsTable).
		GroupBy("supplier").
		Having("COUNT(DISTINCT item_code) > ?", minProducts).
		OrderBy("products DESC", "supplier ASC").
		Limit(limit).
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

	suppliers := make([]*domain.SupplierDiversification, 0, limit)
	for rows.Next() {
		var (
			supplier domain.SupplierDiversification
			revenue  float64
			typeList sql.NullString
		)
		if err := rows.Scan(&supplier.Supplier, &supplier.ItemTypes, &supplier.Products, &revenue, &typeList); err != nil {
			return nil, fmt.Errorf("erro ao escanear diversificação de fornecedor: %w", err)
		}
		supplier.Revenue = money(revenue)
		supplier.TypeList = typeList.String
		suppliers = append(suppliers, &supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suppliers, nil
}

func (r *aggregationRepository) RevenueConcentrationTiers(ctx context.Context) ([]*domain.RevenueTier, error) {
	query, args, err := squirrel.
		Select(
			"tr.tier",
			"COUNT(*) AS products",
			"SUM(tr.revenue) AS tier_revenue",
			"CASE WHEN t.total_revenue = 0 THEN NULL ELSE SUM(tr.revenue) * 100.0 / t.total_revenue END AS pct_of_total",
		).
		From("tiers tr").
		CrossJoin("total t").
		GroupBy("tr.tier", "t.total_revenue").
		OrderBy("tier_revenue DESC", "tr.tier ASC").
		Prefix(`WITH product_revenue AS (
			SELECT item_description, SUM(retail_sales) AS revenue
			FROM sales_records
			GROUP BY item_description
		), ranked AS (
			SELECT revenue,
				ROW_NUMBER() OVER (ORDER BY revenue DESC, item_description ASC) AS rank_pos
			FROM product_revenue
		), tiers AS (
			SELECT revenue,
				CASE
					WHEN rank_pos <= 10 THEN 'Top 10'
					WHEN rank_pos <= 50 THEN 'Top 11-50'
					WHEN rank_pos <= 100 THEN 'Top 51-100'
					ELSE 'Rest'
				END AS tier
			FROM ranked
		), total AS (
			SELECT SUM(revenue) AS total_revenue FROM product_revenue
		)`).
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

	tiers := make([]*domain.RevenueTier, 0, 4)
	for rows.Next() {
		var (
			tier    domain.RevenueTier
			revenue float64
			pct     sql.NullFloat64
		)
		if err := rows.Scan(&tier.Tier, &tier.Products, &revenue, &pct); err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de receita: %w", err)
		}
		tier.Revenue = money(revenue)
		tier.PctOfTotal = nullablePct(pct)
		tiers = append(tiers, &tier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tiers, nil
}

// distinctTypesExpr monta a lista de categorias distintas no dialeto do driver
func (r *aggregationRepository) distinctTypesExpr() string {
	if r.conn.Driver() == database.DriverPostgres {
		return "STRING_AGG(DISTINCT item_type, ',')"
	}
	return "GROUP_CONCAT(DISTINCT item_type)"
}

// channelColumn valida o canal e devolve a coluna de receita correspondente
func channelColumn(channel domain.SalesChannel) (string, error) {
	switch channel {
	case domain.ChannelRetail:
		return "retail_sales", nil
	case domain.ChannelWarehouse:
		return "warehouse_sales", nil
	default:
		return "", fmt.Errorf("canal de venda desconhecido: %q", channel)
	}
}

// money converte uma soma vinda do banco para valor monetário com duas casas
func money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

// nullablePct converte o percentual anulável do banco, arredondado em duas
// casas; NULL (divisor zero) vira nil, nunca zero
func nullablePct(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	pct := utils.RoundWithTwoDecimalPlace(value.Float64)
	return &pct
}

// revenuePerProduct aplica a política de divisão: divisor zero produz nil
func revenuePerProduct(revenue decimal.Decimal, products int64) *decimal.Decimal {
	if products == 0 {
		return nil
	}
	perProduct := revenue.Div(decimal.NewFromInt(products)).Round(2)
	return &perProduct
}
