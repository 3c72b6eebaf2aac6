package pipeline

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/database"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/cleaning"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/exporting"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/loading"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/quality"
	"github.com/vfg2006/liquor-sales-analytics/pkg/log"
)

// Arquivo de entrada completo: nove linhas íntegras e três linhas sujas, uma
// para cada regra de limpeza
const salesFixture = `YEAR,MONTH,SUPPLIER,ITEM CODE,ITEM DESCRIPTION,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS,WAREHOUSE SALES
2019,1,GALLO,W1,WINE A,WINE,1000.00,0.00,500.00
2019,2,GALLO,W1,WINE A,WINE,500.00,0.00,250.00
2019,1,GALLO,W2,WINE B,WINE,300.00,0.00,0.00
2019,1,DIAGEO,L1,VODKA,LIQUOR,2000.00,0.00,100.00
2019,3,DIAGEO,L2,GIN,LIQUOR,700.00,0.00,0.00
2019,1,BREWCO,B1,LAGER,BEER,400.00,0.00,1600.00
2020,1,BREWCO,B2,STOUT,BEER,100.00,0.00,50.00
2019,1,DIAGEO,K1,KEGS,KEGS,0.00,0.00,10.00
2019,2,DIAGEO,L3,RUM,LIQUOR,1200.00,0.00,0.00
2019,1,GALLO,W1,WINE A,WINE,,0.00,5.00
2019,1,,B9,PILSEN,BEER,50.00,0.00,0.00
2019,1,DIAGEO,L2,GIN,,100.00,0.00,0.00
`

const overridesFixture = `ITEM CODE,ITEM TYPE
L2,LIQUOR
`

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "vendas.csv")
	overridesPath := filepath.Join(dir, "sobrescritas.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(salesFixture), 0o644))
	require.NoError(t, os.WriteFile(overridesPath, []byte(overridesFixture), 0o644))

	return &config.Config{
		App: config.App{LogLevel: "error"},
		Database: config.Database{
			Driver: database.DriverSQLite,
			DSN:    ":memory:",
		},
		Input: config.Input{
			Path:              inputPath,
			TypeOverridesPath: overridesPath,
			InsertBatchSize:   500,
		},
		Output: config.Output{
			Dir: filepath.Join(dir, "saida"),
		},
		Coverage: config.Coverage{
			Years: []int{2017, 2018, 2019, 2020},
		},
		Aggregator: config.Aggregator{
			MonthlyPatternYear:         2019,
			TopProductsLimit:           10,
			TopSuppliersLimit:          10,
			SupplierConcentrationLimit: 15,
			WholesaleRatioThreshold:    1000,
			WholesaleRatioLimit:        20,
			DiversificationMinProducts: 2,
			DiversificationLimit:       15,
		},
	}
}

func newTestRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	log.SetupTestLogger()

	conn, err := database.NewConnection(context.Background(), cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	salesRepo := repository.NewSalesRecordRepository(conn)
	aggRepo := repository.NewAggregationRepository(conn)

	return NewRunner(
		cfg,
		loading.NewService(salesRepo, cfg.Input.InsertBatchSize),
		quality.NewService(salesRepo),
		cleaning.NewService(salesRepo),
		aggregating.NewService(cfg.Aggregator, aggRepo),
		exporting.NewService(cfg.Output.Dir),
	)
}

func TestRunner_Run(t *testing.T) {
	cfg := newTestConfig(t)
	runner := newTestRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, cfg.Input.Path, summary.InputPath)
	assert.Equal(t, int64(12), summary.RowsLoaded)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))

	t.Run("qualidade antes e depois da limpeza", func(t *testing.T) {
		require.NotNil(t, summary.QualityBefore)
		assert.Equal(t, int64(12), summary.QualityBefore.RowCount)
		assert.Equal(t, int64(1), summary.QualityBefore.MissingRetailSales)
		assert.Equal(t, int64(1), summary.QualityBefore.MissingSupplier)
		assert.Equal(t, int64(1), summary.QualityBefore.MissingItemType)
		assert.Len(t, summary.QualityBefore.Coverage, 48)
		assert.Equal(t, 4, summary.QualityBefore.MonthsWithData())

		require.NotNil(t, summary.QualityAfter)
		assert.Equal(t, int64(11), summary.QualityAfter.RowCount)
		assert.Equal(t, int64(0), summary.QualityAfter.MissingRetailSales)
		assert.Equal(t, int64(0), summary.QualityAfter.MissingSupplier)
		assert.Equal(t, int64(0), summary.QualityAfter.MissingItemType)
	})

	t.Run("trilha de auditoria da limpeza", func(t *testing.T) {
		require.NotNil(t, summary.Cleaning)
		assert.Equal(t, int64(1), summary.Cleaning.Deleted)
		assert.Equal(t, int64(1), summary.Cleaning.SupplierFilled)
		assert.Equal(t, int64(1), summary.Cleaning.ItemTypeFilled)
		assert.Equal(t, int64(12), summary.Cleaning.RowsBefore)
		assert.Equal(t, int64(11), summary.Cleaning.RowsAfter)
	})

	t.Run("todas as tabelas do catálogo são exportadas", func(t *testing.T) {
		expected := []string{
			exporting.TableChannelSplit,
			exporting.TableCategoryBreakdown,
			exporting.TableCategoryEfficiency,
			exporting.TableTopProductsRetail,
			exporting.TableTopProductsWarehouse,
			exporting.TableTopSuppliers,
			exporting.TableSupplierConcentration,
			exporting.TableMonthlyPattern,
			exporting.TableWholesaleRatio,
			exporting.TableSupplierDiversification,
			exporting.TableRevenueConcentrationTier,
		}

		require.Len(t, summary.Tables, len(expected))
		for i, name := range expected {
			assert.Equal(t, name, summary.Tables[i].Name)

			path := filepath.Join(cfg.Output.Dir, name+".csv")
			info, err := os.Stat(path)
			require.NoError(t, err, "tabela %s", name)
			assert.Greater(t, info.Size(), int64(0))
		}
	})

	t.Run("maior fornecedor na tabela exportada", func(t *testing.T) {
		file, err := os.Open(filepath.Join(cfg.Output.Dir, "top_suppliers.csv"))
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 2)

		// GIN da linha suja soma na receita do DIAGEO depois da limpeza
		assert.Equal(t, []string{"DIAGEO", "4000.00", "4", "1000.00"}, rows[1])
	})

	t.Run("fornecedor preenchido participa das agregações", func(t *testing.T) {
		file, err := os.Open(filepath.Join(cfg.Output.Dir, "top_suppliers.csv"))
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)

		suppliers := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			suppliers = append(suppliers, row[0])
		}
		assert.Contains(t, suppliers, domain.SupplierUnknown)
	})

	t.Run("resumo da execução gravado como JSON", func(t *testing.T) {
		payload, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "run_summary.json"))
		require.NoError(t, err)

		var decoded domain.RunSummary
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, summary.RunID, decoded.RunID)
		assert.Equal(t, summary.RowsLoaded, decoded.RowsLoaded)
		assert.Len(t, decoded.Tables, 11)
	})
}

func TestRunner_RunArquivoInvalido(t *testing.T) {
	cfg := newTestConfig(t)
	invalid := "YEAR,MONTH,SUPLIER,ITEM CODE,ITEM DESCRIPTION,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS,WAREHOUSE SALES\n" +
		"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00\n"
	require.NoError(t, os.WriteFile(cfg.Input.Path, []byte(invalid), 0o644))

	runner := newTestRunner(t, cfg)

	_, err := runner.Run(context.Background())
	require.Error(t, err)

	var formatErr *loading.FormatError
	assert.ErrorAs(t, err, &formatErr)

	// Nada é exportado quando a carga falha
	_, statErr := os.Stat(cfg.Output.Dir)
	assert.True(t, os.IsNotExist(statErr))
}
