package loading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository/mocks"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
	"go.uber.org/mock/gomock"
)

const salesHeader = "YEAR,MONTH,SUPPLIER,ITEM CODE,ITEM DESCRIPTION,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS,WAREHOUSE SALES"

func writeTempCSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vendas.csv")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_Load(t *testing.T) {
	t.Run("carga completa com campos anuláveis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1000.00,5.50,500.00",
			"2019,2,,B1,LAGER,BEER,400.00,0.00,10.00",
			"2020,3,DIAGEO,L1,VODKA,,,1.00,0.00",
		)

		var captured []*domain.SalesRecord
		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)
		repo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) (int64, error) {
				captured = append(captured, records...)
				return int64(len(records)), nil
			})

		total, err := NewService(repo, 500).Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, captured, 3)

		first := captured[0]
		assert.Equal(t, 2019, first.Year)
		assert.Equal(t, 1, first.Month)
		require.NotNil(t, first.Supplier)
		assert.Equal(t, "GALLO", *first.Supplier)
		assert.Equal(t, "W1", first.ItemCode)
		assert.Equal(t, "WINE A", first.ItemDescription)
		require.NotNil(t, first.ItemType)
		assert.Equal(t, "WINE", *first.ItemType)
		require.NotNil(t, first.RetailSales)
		assert.Equal(t, "1000.00", first.RetailSales.StringFixed(2))
		assert.Equal(t, "5.50", first.RetailTransfers.StringFixed(2))
		assert.Equal(t, "500.00", first.WarehouseSales.StringFixed(2))

		// Fornecedor vazio permanece nulo na carga; a limpeza decide depois
		assert.Nil(t, captured[1].Supplier)

		// retail_sales vazio vira NULL, nunca zero
		assert.Nil(t, captured[2].RetailSales)
		assert.Nil(t, captured[2].ItemType)
	})

	t.Run("cabeçalho com caixa e espaços diferentes é aceito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			"year, month ,Supplier,Item Code,Item Description,Item Type,Retail Sales,Retail Transfers,Warehouse Sales",
			"2019,1,GALLO,W1,WINE A,WINE,1000.00,0.00,0.00",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)
		repo.EXPECT().BulkInsert(gomock.Any(), gomock.Len(1)).Return(int64(1), nil)

		total, err := NewService(repo, 500).Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("inserção em lotes respeita o tamanho configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
			"2019,2,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
			"2019,3,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
			"2019,4,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
			"2019,5,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
		)

		var batches []int
		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)
		repo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) (int64, error) {
				batches = append(batches, len(records))
				return int64(len(records)), nil
			}).
			Times(3)

		total, err := NewService(repo, 2).Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Equal(t, []int{2, 2, 1}, batches)
	})

	t.Run("coluna ausente interrompe a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		// SUPLIER no lugar de SUPPLIER: uma ausente e uma inesperada
		path := writeTempCSV(t,
			"YEAR,MONTH,SUPLIER,ITEM CODE,ITEM DESCRIPTION,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS,WAREHOUSE SALES",
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, []string{"SUPPLIER"}, formatErr.Missing)
		assert.Equal(t, []string{"SUPLIER"}, formatErr.Extra)
	})

	t.Run("cabeçalho curto lista as colunas ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		// Oito colunas: WAREHOUSE SALES não aparece
		path := writeTempCSV(t,
			"YEAR,MONTH,SUPPLIER,ITEM CODE,ITEM DESCRIPTION,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS",
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, []string{"WAREHOUSE SALES"}, formatErr.Missing)
		assert.Empty(t, formatErr.Extra)
	})

	t.Run("cabeçalho largo lista as colunas inesperadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader+",COUNTY",
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00,MONTGOMERY",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Empty(t, formatErr.Missing)
		assert.Equal(t, []string{"COUNTY"}, formatErr.Extra)
	})

	t.Run("linha de dados com largura errada interrompe a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("ano inválido interrompe a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
			"dois mil,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, "YEAR", parseErr.Column)
		assert.Equal(t, "dois mil", parseErr.Value)
	})

	t.Run("warehouse_sales inválido interrompe a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,n/d",
		)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "WAREHOUSE SALES", parseErr.Column)
	})

	t.Run("arquivo inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)

		_, err := NewService(repo, 500).Load(context.Background(), filepath.Join(t.TempDir(), "nao-existe.csv"))
		assert.Error(t, err)
	})

	t.Run("falha na inserção propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSalesRecordRepository(ctrl)

		path := writeTempCSV(t,
			salesHeader,
			"2019,1,GALLO,W1,WINE A,WINE,1.00,0.00,0.00",
		)

		expectedErr := errors.New("banco indisponível")
		repo.EXPECT().InitSchema(gomock.Any()).Return(nil)
		repo.EXPECT().BulkInsert(gomock.Any(), gomock.Any()).Return(int64(0), expectedErr)

		_, err := NewService(repo, 500).Load(context.Background(), path)
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestService_LoadTypeOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockSalesRecordRepository(ctrl), 500)

	t.Run("caminho vazio significa nenhuma sobrescrita", func(t *testing.T) {
		overrides, err := service.LoadTypeOverrides("")
		require.NoError(t, err)
		assert.Nil(t, overrides)
	})

	t.Run("arquivo válido é carregado", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sobrescritas.csv")
		require.NoError(t, os.WriteFile(path, []byte("ITEM CODE,ITEM TYPE\nL2,LIQUOR\nW9, WINE \n"), 0o644))

		overrides, err := service.LoadTypeOverrides(path)
		require.NoError(t, err)
		assert.Equal(t, []domain.TypeOverride{
			{ItemCode: "L2", ItemType: "LIQUOR"},
			{ItemCode: "W9", ItemType: "WINE"},
		}, overrides)
	})

	t.Run("cabeçalho inesperado retorna erro de formato", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sobrescritas.csv")
		require.NoError(t, os.WriteFile(path, []byte("CODE,TYPE\nL2,LIQUOR\n"), 0o644))

		_, err := service.LoadTypeOverrides(path)

		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("cabeçalho com largura errada retorna erro de formato", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sobrescritas.csv")
		require.NoError(t, os.WriteFile(path, []byte("ITEM CODE\nL2\n"), 0o644))

		_, err := service.LoadTypeOverrides(path)

		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}
