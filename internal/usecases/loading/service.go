// Package loading carrega o arquivo de vendas para o banco relacional,
// tipando cada campo uma única vez no momento da carga.
package loading

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

// Colunas esperadas no cabeçalho, na ordem do arquivo de referência.
// A comparação ignora caixa e espaços nas bordas.
var expectedColumns = []string{
	"YEAR",
	"MONTH",
	"SUPPLIER",
	"ITEM CODE",
	"ITEM DESCRIPTION",
	"ITEM TYPE",
	"RETAIL SALES",
	"RETAIL TRANSFERS",
	"WAREHOUSE SALES",
}

const progressInterval = 50000

type Loader interface {
	Load(ctx context.Context, path string) (int64, error)
	LoadTypeOverrides(path string) ([]domain.TypeOverride, error)
}

type Service struct {
	repo      repository.SalesRecordRepository
	batchSize int
}

func NewService(repo repository.SalesRecordRepository, batchSize int) Loader {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Service{
		repo:      repo,
		batchSize: batchSize,
	}
}

// Load lê o arquivo delimitado, valida o cabeçalho e insere os registros em
// lotes, na ordem do arquivo. Sem deduplicação e sem ordenação.
func (s *Service) Load(ctx context.Context, path string) (int64, error) {
	if err := s.repo.InitSchema(ctx); err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("erro ao abrir o arquivo de entrada: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// O cabeçalho é lido sem restrição de largura para que um cabeçalho
	// curto ou largo produza o FormatError com as colunas divergentes
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("erro ao ler o cabeçalho: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return 0, err
	}

	reader.FieldsPerRecord = len(expectedColumns)

	var total int64
	batch := make([]*domain.SalesRecord, 0, s.batchSize)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("erro ao ler a linha %d: %w", line, err)
		}

		record, err := parseRecord(row, index, line)
		if err != nil {
			return 0, err
		}

		batch = append(batch, record)
		if len(batch) >= s.batchSize {
			inserted, err := s.repo.BulkInsert(ctx, batch)
			if err != nil {
				return 0, err
			}
			total += inserted
			batch = batch[:0]

			if total%progressInterval < int64(s.batchSize) {
				logrus.WithField("rows", total).Debug("Carga em andamento")
			}
		}
	}

	if len(batch) > 0 {
		inserted, err := s.repo.BulkInsert(ctx, batch)
		if err != nil {
			return 0, err
		}
		total += inserted
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": total,
	}).Info("Carga do arquivo de vendas concluída")

	return total, nil
}

// LoadTypeOverrides lê a lista de sobrescritas produto→categoria usada pela
// regra (c) da limpeza. Caminho vazio significa nenhuma sobrescrita.
func (s *Service) LoadTypeOverrides(path string) ([]domain.TypeOverride, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo de sobrescritas: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho de sobrescritas: %w", err)
	}
	if len(header) != 2 || normalize(header[0]) != "ITEM CODE" || normalize(header[1]) != "ITEM TYPE" {
		return nil, &FormatError{Missing: []string{"ITEM CODE", "ITEM TYPE"}}
	}
	reader.FieldsPerRecord = 2

	overrides := make([]domain.TypeOverride, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler sobrescrita: %w", err)
		}
		overrides = append(overrides, domain.TypeOverride{
			ItemCode: strings.TrimSpace(row[0]),
			ItemType: strings.TrimSpace(row[1]),
		})
	}

	return overrides, nil
}

// columnIndex valida o cabeçalho e mapeia cada coluna esperada para a posição
// em que aparece no arquivo
func columnIndex(header []string) (map[string]int, error) {
	seen := make(map[string]int, len(header))
	extra := make([]string, 0)
	for i, column := range header {
		name := normalize(column)
		if !isExpected(name) {
			extra = append(extra, name)
			continue
		}
		seen[name] = i
	}

	missing := make([]string, 0)
	for _, column := range expectedColumns {
		if _, ok := seen[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return nil, &FormatError{Missing: missing, Extra: extra}
	}

	return seen, nil
}

func isExpected(name string) bool {
	for _, column := range expectedColumns {
		if column == name {
			return true
		}
	}
	return false
}

func normalize(column string) string {
	return strings.ToUpper(strings.TrimSpace(column))
}

// parseRecord tipifica uma linha do arquivo. Ano e mês inválidos são fatais,
// assim como os campos de transferência e atacado, para os quais nenhuma
// regra de imputação existe. retail_sales inválido vira NULL.
func parseRecord(row []string, index map[string]int, line int) (*domain.SalesRecord, error) {
	field := func(column string) string {
		return strings.TrimSpace(row[index[column]])
	}

	year, err := strconv.Atoi(field("YEAR"))
	if err != nil {
		return nil, &ParseError{Line: line, Column: "YEAR", Value: field("YEAR")}
	}

	month, err := strconv.Atoi(field("MONTH"))
	if err != nil {
		return nil, &ParseError{Line: line, Column: "MONTH", Value: field("MONTH")}
	}

	retailTransfers, err := decimal.NewFromString(field("RETAIL TRANSFERS"))
	if err != nil {
		return nil, &ParseError{Line: line, Column: "RETAIL TRANSFERS", Value: field("RETAIL TRANSFERS")}
	}

	warehouseSales, err := decimal.NewFromString(field("WAREHOUSE SALES"))
	if err != nil {
		return nil, &ParseError{Line: line, Column: "WAREHOUSE SALES", Value: field("WAREHOUSE SALES")}
	}

	record := &domain.SalesRecord{
		Year:            year,
		Month:           month,
		Supplier:        nullableText(field("SUPPLIER")),
		ItemCode:        field("ITEM CODE"),
		ItemDescription: field("ITEM DESCRIPTION"),
		ItemType:        nullableText(field("ITEM TYPE")),
		RetailTransfers: retailTransfers,
		WarehouseSales:  warehouseSales,
	}

	if retailSales, err := decimal.NewFromString(field("RETAIL SALES")); err == nil {
		record.RetailSales = &retailSales
	}

	return record, nil
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
