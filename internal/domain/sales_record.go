package domain

import (
	"github.com/shopspring/decimal"
)

// SupplierUnknown é o valor sentinela aplicado a fornecedores vazios durante a limpeza
const SupplierUnknown = "UNKNOWN"

// Categorias principais usadas pelo recorte de categorias do agregador
const (
	ItemTypeLiquor = "LIQUOR"
	ItemTypeWine   = "WINE"
	ItemTypeBeer   = "BEER"
)

// CoreItemTypes retorna as três categorias principais na ordem canônica
func CoreItemTypes() []string {
	return []string{ItemTypeLiquor, ItemTypeWine, ItemTypeBeer}
}

// SalesRecord representa uma linha de venda por fornecedor/produto/mês.
// Os campos anuláveis (Supplier, ItemType, RetailSales) usam ponteiros:
// nil significa ausente no arquivo de origem, antes da limpeza.
type SalesRecord struct {
	Year            int
	Month           int
	Supplier        *string
	ItemCode        string
	ItemDescription string
	ItemType        *string
	RetailSales     *decimal.Decimal
	RetailTransfers decimal.Decimal
	WarehouseSales  decimal.Decimal
}

// TypeOverride associa um código de produto à categoria usada para
// preencher item_type vazio na regra (c) da limpeza
type TypeOverride struct {
	ItemCode string
	ItemType string
}

// MissingField identifica os campos monitorados pelo verificador de qualidade
type MissingField string

const (
	FieldRetailSales MissingField = "retail_sales"
	FieldSupplier    MissingField = "supplier"
	FieldItemType    MissingField = "item_type"
)

// SalesChannel identifica o canal de venda usado nos rankings de produto
type SalesChannel string

const (
	ChannelRetail    SalesChannel = "retail"
	ChannelWarehouse SalesChannel = "warehouse"
)
