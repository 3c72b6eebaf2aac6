// Package pipeline orquestra as quatro etapas em sequência: carga,
// verificação de qualidade, limpeza e agregação, seguidas da exportação.
// Não há sobreposição entre etapas: cada uma lê o estado deixado pela
// anterior.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/liquor-sales-analytics/internal/config"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/cleaning"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/exporting"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/loading"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/quality"
	"github.com/vfg2006/liquor-sales-analytics/pkg/log"
)

type Runner struct {
	cfg        *config.Config
	loader     loading.Loader
	checker    quality.Checker
	cleaner    cleaning.Cleaner
	aggregator aggregating.Aggregator
	exporter   exporting.Exporter
}

func NewRunner(
	cfg *config.Config,
	loader loading.Loader,
	checker quality.Checker,
	cleaner cleaning.Cleaner,
	aggregator aggregating.Aggregator,
	exporter exporting.Exporter,
) *Runner {
	return &Runner{
		cfg:        cfg,
		loader:     loader,
		checker:    checker,
		cleaner:    cleaner,
		aggregator: aggregator,
		exporter:   exporter,
	}
}

// Run executa o pipeline completo uma única vez e devolve o resumo da
// execução. Qualquer falha interrompe a execução; não há repetição.
func (r *Runner) Run(ctx context.Context) (*domain.RunSummary, error) {
	ctx, runID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	summary := &domain.RunSummary{
		RunID:     runID,
		InputPath: r.cfg.Input.Path,
		StartedAt: time.Now(),
	}

	logger.WithField("input", r.cfg.Input.Path).Info("Iniciando execução do pipeline")

	// Etapa 1: carga
	loadStart := time.Now()
	rowsLoaded, err := r.loader.Load(ctx, r.cfg.Input.Path)
	if err != nil {
		return nil, fmt.Errorf("erro na etapa de carga: %w", err)
	}
	summary.RowsLoaded = rowsLoaded
	logger.WithFields(log.Fields{
		"rows":        rowsLoaded,
		"duration_ms": time.Since(loadStart).Milliseconds(),
	}).Info("Carga concluída")

	overrides, err := r.loader.LoadTypeOverrides(r.cfg.Input.TypeOverridesPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar sobrescritas de categoria: %w", err)
	}

	// Etapa 2: qualidade antes da limpeza
	before, err := r.checker.Snapshot(ctx, r.cfg.Coverage.Years)
	if err != nil {
		return nil, fmt.Errorf("erro na verificação de qualidade: %w", err)
	}
	summary.QualityBefore = before
	logger.WithFields(log.Fields{
		"missing_retail_sales": before.MissingRetailSales,
		"missing_supplier":     before.MissingSupplier,
		"missing_item_type":    before.MissingItemType,
		"months_with_data":     before.MonthsWithData(),
	}).Info("Qualidade antes da limpeza")

	// Etapa 3: limpeza
	report, err := r.cleaner.Clean(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("erro na etapa de limpeza: %w", err)
	}
	summary.Cleaning = report

	// Etapa 2 de novo: qualidade depois da limpeza comprova as contagens
	after, err := r.checker.Snapshot(ctx, r.cfg.Coverage.Years)
	if err != nil {
		return nil, fmt.Errorf("erro na verificação de qualidade pós-limpeza: %w", err)
	}
	summary.QualityAfter = after

	if after.MissingRetailSales > 0 || after.MissingSupplier > 0 || after.MissingItemType > 0 {
		logger.WithFields(log.Fields{
			"missing_retail_sales": after.MissingRetailSales,
			"missing_supplier":     after.MissingSupplier,
			"missing_item_type":    after.MissingItemType,
		}).Warn("Campos ausentes remanescentes após a limpeza")
	}

	// Etapa 4: agregação e exportação
	tables, err := r.runCatalog(ctx)
	if err != nil {
		return nil, err
	}

	for _, table := range tables {
		if err := r.exporter.ExportTable(table); err != nil {
			return nil, fmt.Errorf("erro ao exportar tabela %s: %w", table.Name, err)
		}
		summary.Tables = append(summary.Tables, domain.TableExport{
			Name: table.Name,
			Rows: len(table.Rows),
		})
	}

	summary.FinishedAt = time.Now()
	if err := r.exporter.ExportSummary(summary); err != nil {
		return nil, fmt.Errorf("erro ao exportar resumo da execução: %w", err)
	}

	logger.WithFields(log.Fields{
		"tables":      len(summary.Tables),
		"duration_ms": summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	}).Info("Execução do pipeline concluída")

	return summary, nil
}

// runCatalog executa todas as operações do catálogo na ordem fixa de
// exportação
func (r *Runner) runCatalog(ctx context.Context) ([]*exporting.Table, error) {
	tables := make([]*exporting.Table, 0, 11)

	split, err := r.aggregator.ChannelSplit(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em channel_split: %w", err)
	}
	tables = append(tables, exporting.ChannelSplitTable(split))

	breakdown, err := r.aggregator.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em category_breakdown: %w", err)
	}
	tables = append(tables, exporting.CategoryBreakdownTable(breakdown))

	efficiency, err := r.aggregator.CategoryEfficiency(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em category_efficiency: %w", err)
	}
	tables = append(tables, exporting.CategoryEfficiencyTable(efficiency))

	retailProducts, err := r.aggregator.TopProductsByChannel(ctx, domain.ChannelRetail)
	if err != nil {
		return nil, fmt.Errorf("erro em top_products (varejo): %w", err)
	}
	tables = append(tables, exporting.TopProductsTable(exporting.TableTopProductsRetail, retailProducts))

	warehouseProducts, err := r.aggregator.TopProductsByChannel(ctx, domain.ChannelWarehouse)
	if err != nil {
		return nil, fmt.Errorf("erro em top_products (atacado): %w", err)
	}
	tables = append(tables, exporting.TopProductsTable(exporting.TableTopProductsWarehouse, warehouseProducts))

	suppliers, err := r.aggregator.TopSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em top_suppliers: %w", err)
	}
	tables = append(tables, exporting.TopSuppliersTable(suppliers))

	concentration, err := r.aggregator.SupplierConcentration(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em supplier_concentration: %w", err)
	}
	tables = append(tables, exporting.SupplierConcentrationTable(concentration))

	months, err := r.aggregator.MonthlyPattern(ctx, r.cfg.Aggregator.MonthlyPatternYear)
	if err != nil {
		return nil, fmt.Errorf("erro em monthly_pattern: %w", err)
	}
	tables = append(tables, exporting.MonthlyPatternTable(months))

	ratios, err := r.aggregator.WholesaleRatio(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em wholesale_ratio: %w", err)
	}
	tables = append(tables, exporting.WholesaleRatioTable(ratios))

	diversification, err := r.aggregator.SupplierDiversification(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em supplier_diversification: %w", err)
	}
	tables = append(tables, exporting.SupplierDiversificationTable(diversification))

	tiers, err := r.aggregator.RevenueConcentrationTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro em revenue_concentration_tiers: %w", err)
	}
	tables = append(tables, exporting.RevenueConcentrationTiersTable(tiers))

	return tables, nil
}
