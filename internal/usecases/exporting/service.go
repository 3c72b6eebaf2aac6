// Package exporting grava as tabelas de resultado como texto delimitado e o
// resumo da execução como JSON, para consumo do gerador externo de
// relatórios e gráficos.
package exporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const summaryFileName = "run_summary.json"

type Exporter interface {
	ExportTable(table *Table) error
	ExportSummary(summary *domain.RunSummary) error
}

type Service struct {
	outputDir string
}

func NewService(outputDir string) Exporter {
	return &Service{
		outputDir: outputDir,
	}
}

// ExportTable grava uma tabela de resultado em <outputDir>/<nome>.csv
func (s *Service) ExportTable(table *Table) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}

	path := filepath.Join(s.outputDir, table.Name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho de %s: %w", table.Name, err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("erro ao escrever linha de %s: %w", table.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", table.Name, err)
	}

	logrus.WithFields(logrus.Fields{
		"table": table.Name,
		"rows":  len(table.Rows),
	}).Debug("Tabela exportada")

	return nil
}

// ExportSummary grava o resumo completo da execução como JSON
func (s *Service) ExportSummary(summary *domain.RunSummary) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}

	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo da execução: %w", err)
	}

	path := filepath.Join(s.outputDir, summaryFileName)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar resumo da execução: %w", err)
	}

	return nil
}
