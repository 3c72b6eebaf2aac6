package domain

// CleaningReport é a trilha de auditoria da limpeza: quantas linhas cada
// regra afetou, na ordem fixa de aplicação. Reexecutar a limpeza sobre a
// própria saída deve produzir um relatório com todas as contagens zeradas.
type CleaningReport struct {
	Deleted        int64 `json:"deleted"`
	SupplierFilled int64 `json:"supplier_filled"`
	ItemTypeFilled int64 `json:"item_type_filled"`
	RowsBefore     int64 `json:"rows_before"`
	RowsAfter      int64 `json:"rows_after"`
}

// TotalAffected soma as linhas afetadas por todas as regras
func (r *CleaningReport) TotalAffected() int64 {
	return r.Deleted + r.SupplierFilled + r.ItemTypeFilled
}

// IsNoOp indica que nenhuma regra afetou linha alguma
func (r *CleaningReport) IsNoOp() bool {
	return r.TotalAffected() == 0
}
