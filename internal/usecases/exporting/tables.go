package exporting

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

// Table é uma tabela de resultado pronta para exportação como texto delimitado
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Nomes das tabelas exportadas, um por operação do catálogo
const (
	TableChannelSplit             = "channel_split"
	TableCategoryBreakdown        = "category_breakdown"
	TableCategoryEfficiency       = "category_efficiency"
	TableTopProductsRetail        = "top_products_retail"
	TableTopProductsWarehouse     = "top_products_warehouse"
	TableTopSuppliers             = "top_suppliers"
	TableSupplierConcentration    = "supplier_concentration"
	TableMonthlyPattern           = "monthly_pattern"
	TableWholesaleRatio           = "wholesale_ratio"
	TableSupplierDiversification  = "supplier_diversification"
	TableRevenueConcentrationTier = "revenue_concentration_tiers"
)

func ChannelSplitTable(split *domain.ChannelSplit) *Table {
	return &Table{
		Name:   TableChannelSplit,
		Header: []string{"retail_sales", "warehouse_sales", "retail_pct", "warehouse_pct"},
		Rows: [][]string{{
			amount(split.RetailSales),
			amount(split.WarehouseSales),
			pct(split.RetailPct),
			pct(split.WarehousePct),
		}},
	}
}

func CategoryBreakdownTable(categories []*domain.CategoryRevenue) *Table {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ItemType, amount(c.Revenue), pct(c.PctOfCore)})
	}
	return &Table{
		Name:   TableCategoryBreakdown,
		Header: []string{"item_type", "revenue", "pct_of_core"},
		Rows:   rows,
	}
}

func CategoryEfficiencyTable(categories []*domain.CategoryEfficiency) *Table {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.ItemType,
			amount(c.Revenue),
			strconv.FormatInt(c.Products, 10),
			optionalAmount(c.RevenuePerProduct),
		})
	}
	return &Table{
		Name:   TableCategoryEfficiency,
		Header: []string{"item_type", "revenue", "products", "revenue_per_product"},
		Rows:   rows,
	}
}

func TopProductsTable(name string, products []*domain.ProductRevenue) *Table {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.ItemDescription, p.ItemType, amount(p.Revenue)})
	}
	return &Table{
		Name:   name,
		Header: []string{"item_description", "item_type", "revenue"},
		Rows:   rows,
	}
}

func TopSuppliersTable(suppliers []*domain.SupplierRevenue) *Table {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			s.Supplier,
			amount(s.Revenue),
			strconv.FormatInt(s.Products, 10),
			optionalAmount(s.RevenuePerProduct),
		})
	}
	return &Table{
		Name:   TableTopSuppliers,
		Header: []string{"supplier", "revenue", "products", "revenue_per_product"},
		Rows:   rows,
	}
}

func SupplierConcentrationTable(suppliers []*domain.SupplierConcentration) *Table {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			s.Supplier,
			amount(s.Revenue),
			pct(s.PctOfTotal),
			pct(s.CumulativePct),
		})
	}
	return &Table{
		Name:   TableSupplierConcentration,
		Header: []string{"supplier", "revenue", "pct_of_total", "cumulative_pct"},
		Rows:   rows,
	}
}

func MonthlyPatternTable(months []*domain.MonthlyPattern) *Table {
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			strconv.Itoa(m.Month),
			amount(m.Revenue),
			strconv.FormatInt(m.Rows, 10),
			amount(m.AvgRevenue),
		})
	}
	return &Table{
		Name:   TableMonthlyPattern,
		Header: []string{"month", "revenue", "rows", "avg_revenue"},
		Rows:   rows,
	}
}

func WholesaleRatioTable(ratios []*domain.WholesaleRatio) *Table {
	rows := make([][]string, 0, len(ratios))
	for _, r := range ratios {
		rows = append(rows, []string{
			r.ItemDescription,
			r.ItemType,
			amount(r.WarehouseSales),
			amount(r.RetailSales),
			strconv.FormatFloat(r.Ratio, 'f', 4, 64),
		})
	}
	return &Table{
		Name:   TableWholesaleRatio,
		Header: []string{"item_description", "item_type", "warehouse_sales", "retail_sales", "ratio"},
		Rows:   rows,
	}
}

func SupplierDiversificationTable(suppliers []*domain.SupplierDiversification) *Table {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			s.Supplier,
			strconv.FormatInt(s.ItemTypes, 10),
			strconv.FormatInt(s.Products, 10),
			amount(s.Revenue),
			s.TypeList,
		})
	}
	return &Table{
		Name:   TableSupplierDiversification,
		Header: []string{"supplier", "item_types", "products", "revenue", "type_list"},
		Rows:   rows,
	}
}

func RevenueConcentrationTiersTable(tiers []*domain.RevenueTier) *Table {
	rows := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		rows = append(rows, []string{
			t.Tier,
			strconv.FormatInt(t.Products, 10),
			amount(t.Revenue),
			pct(t.PctOfTotal),
		})
	}
	return &Table{
		Name:   TableRevenueConcentrationTier,
		Header: []string{"tier", "products", "revenue", "pct_of_total"},
		Rows:   rows,
	}
}

func amount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

// optionalAmount e pct imprimem célula vazia para resultados indefinidos
// (divisor zero), nunca "0"
func optionalAmount(value *decimal.Decimal) string {
	if value == nil {
		return ""
	}
	return value.StringFixed(2)
}

func pct(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 2, 64)
}
