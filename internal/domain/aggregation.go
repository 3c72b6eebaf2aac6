package domain

import (
	"github.com/shopspring/decimal"
)

// ChannelSplit é o resultado único da divisão de receita entre os canais
// varejo e atacado. Os percentuais são nil quando a receita total é zero.
type ChannelSplit struct {
	RetailSales    decimal.Decimal `json:"retail_sales"`
	WarehouseSales decimal.Decimal `json:"warehouse_sales"`
	RetailPct      *float64        `json:"retail_pct"`
	WarehousePct   *float64        `json:"warehouse_pct"`
}

// CategoryRevenue é uma linha do recorte das categorias principais
// (LIQUOR, WINE, BEER); PctOfCore é relativo ao total dessas três categorias
type CategoryRevenue struct {
	ItemType  string          `json:"item_type"`
	Revenue   decimal.Decimal `json:"revenue"`
	PctOfCore *float64        `json:"pct_of_core"`
}

// CategoryEfficiency relaciona receita e amplitude de portfólio por categoria
type CategoryEfficiency struct {
	ItemType          string           `json:"item_type"`
	Revenue           decimal.Decimal  `json:"revenue"`
	Products          int64            `json:"products"`
	RevenuePerProduct *decimal.Decimal `json:"revenue_per_product"`
}

// ProductRevenue é uma linha dos rankings de produto por canal
type ProductRevenue struct {
	ItemDescription string          `json:"item_description"`
	ItemType        string          `json:"item_type"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// SupplierRevenue é uma linha do ranking de fornecedores por receita de varejo
type SupplierRevenue struct {
	Supplier          string           `json:"supplier"`
	Revenue           decimal.Decimal  `json:"revenue"`
	Products          int64            `json:"products"`
	RevenuePerProduct *decimal.Decimal `json:"revenue_per_product"`
}

// SupplierConcentration adiciona ao ranking de fornecedores o percentual do
// total geral e o percentual acumulado em ordem decrescente de receita
type SupplierConcentration struct {
	Supplier      string          `json:"supplier"`
	Revenue       decimal.Decimal `json:"revenue"`
	PctOfTotal    *float64        `json:"pct_of_total"`
	CumulativePct *float64        `json:"cumulative_pct"`
}

// MonthlyPattern é uma linha da sazonalidade mensal dentro de um ano filtrado
type MonthlyPattern struct {
	Month      int             `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	Rows       int64           `json:"rows"`
	AvgRevenue decimal.Decimal `json:"avg_revenue"`
}

// WholesaleRatio é uma linha da razão atacado/varejo por produto, restrita a
// produtos com ambos os canais positivos e varejo acima do limiar configurado
type WholesaleRatio struct {
	ItemDescription string          `json:"item_description"`
	ItemType        string          `json:"item_type"`
	WarehouseSales  decimal.Decimal `json:"warehouse_sales"`
	RetailSales     decimal.Decimal `json:"retail_sales"`
	Ratio           float64         `json:"ratio"`
}

// SupplierDiversification mede a amplitude de categorias e produtos por
// fornecedor, restrita a fornecedores acima do mínimo de produtos distintos
type SupplierDiversification struct {
	Supplier  string          `json:"supplier"`
	ItemTypes int64           `json:"item_types"`
	Products  int64           `json:"products"`
	Revenue   decimal.Decimal `json:"revenue"`
	TypeList  string          `json:"type_list"`
}

// Faixas de concentração de receita por posição do produto no ranking
const (
	TierTop10      = "Top 10"
	TierTop11To50  = "Top 11-50"
	TierTop51To100 = "Top 51-100"
	TierRest       = "Rest"
)

// RevenueTier agrega a receita dos produtos de uma faixa de ranking
type RevenueTier struct {
	Tier       string          `json:"tier"`
	Products   int64           `json:"products"`
	Revenue    decimal.Decimal `json:"revenue"`
	PctOfTotal *float64        `json:"pct_of_total"`
}
