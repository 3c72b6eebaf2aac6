package domain

// YearMonth é um par (ano, mês) observado nos registros carregados
type YearMonth struct {
	Year  int
	Month int
}

// CoverageCell é uma célula da grade de cobertura mensal: o par (ano, mês)
// e a indicação de existência de pelo menos um registro naquele mês
type CoverageCell struct {
	Year    int  `json:"year"`
	Month   int  `json:"month"`
	HasData bool `json:"has_data"`
}

// QualitySnapshot consolida as estatísticas de qualidade em um único ponto
// no tempo. É capturado antes e depois da limpeza para compor a auditoria.
type QualitySnapshot struct {
	RowCount           int64          `json:"row_count"`
	MissingRetailSales int64          `json:"missing_retail_sales"`
	MissingSupplier    int64          `json:"missing_supplier"`
	MissingItemType    int64          `json:"missing_item_type"`
	Coverage           []CoverageCell `json:"coverage"`
}

// MonthsWithData conta as células da grade de cobertura que possuem dados
func (s *QualitySnapshot) MonthsWithData() int {
	count := 0
	for _, cell := range s.Coverage {
		if cell.HasData {
			count++
		}
	}
	return count
}
