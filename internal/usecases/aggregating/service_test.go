package aggregating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository/mocks"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
	"go.uber.org/mock/gomock"
)

func testAggregatorConfig() config.Aggregator {
	return config.Aggregator{
		MonthlyPatternYear:         2019,
		SupplierConcentrationLimit: 15,
		WholesaleRatioThreshold:    1000,
		WholesaleRatioLimit:        20,
		DiversificationMinProducts: 50,
		DiversificationLimit:       15,
		TopProductsLimit:           10,
		TopSuppliersLimit:          10,
	}
}

// O serviço só aplica os parâmetros de configuração; a semântica das
// consultas é coberta pelos testes do repositório
func TestService_ParametrosDeConfiguracao(t *testing.T) {
	ctx := context.Background()

	t.Run("top de produtos usa o limite configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().
			TopProductsByChannel(gomock.Any(), domain.ChannelRetail, uint64(10)).
			Return([]*domain.ProductRevenue{}, nil)

		products, err := NewService(testAggregatorConfig(), repo).TopProductsByChannel(ctx, domain.ChannelRetail)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("top de fornecedores usa o limite configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().TopSuppliers(gomock.Any(), uint64(10)).Return([]*domain.SupplierRevenue{}, nil)

		_, err := NewService(testAggregatorConfig(), repo).TopSuppliers(ctx)
		require.NoError(t, err)
	})

	t.Run("concentração usa o limite configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().SupplierConcentration(gomock.Any(), uint64(15)).Return([]*domain.SupplierConcentration{}, nil)

		_, err := NewService(testAggregatorConfig(), repo).SupplierConcentration(ctx)
		require.NoError(t, err)
	})

	t.Run("razão atacado/varejo usa piso e limite configurados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().WholesaleRatio(gomock.Any(), float64(1000), uint64(20)).Return([]*domain.WholesaleRatio{}, nil)

		_, err := NewService(testAggregatorConfig(), repo).WholesaleRatio(ctx)
		require.NoError(t, err)
	})

	t.Run("diversificação usa piso de produtos e limite configurados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().SupplierDiversification(gomock.Any(), 50, uint64(15)).Return([]*domain.SupplierDiversification{}, nil)

		_, err := NewService(testAggregatorConfig(), repo).SupplierDiversification(ctx)
		require.NoError(t, err)
	})

	t.Run("padrão mensal repassa o ano pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAggregationRepository(ctrl)
		repo.EXPECT().MonthlyPattern(gomock.Any(), 2019).Return([]*domain.MonthlyPattern{}, nil)

		_, err := NewService(testAggregatorConfig(), repo).MonthlyPattern(ctx, 2019)
		require.NoError(t, err)
	})
}
