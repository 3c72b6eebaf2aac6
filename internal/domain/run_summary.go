package domain

import "time"

// TableExport registra uma tabela de resultado exportada e o número de linhas
type TableExport struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// RunSummary consolida a execução completa do pipeline para exportação:
// identificação da execução, instantâneos de qualidade antes e depois da
// limpeza, relatório de limpeza e as tabelas de resultado geradas.
type RunSummary struct {
	RunID         string           `json:"run_id"`
	InputPath     string           `json:"input_path"`
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at"`
	RowsLoaded    int64            `json:"rows_loaded"`
	QualityBefore *QualitySnapshot `json:"quality_before"`
	QualityAfter  *QualitySnapshot `json:"quality_after"`
	Cleaning      *CleaningReport  `json:"cleaning"`
	Tables        []TableExport    `json:"tables"`
}
