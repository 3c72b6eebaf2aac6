// Package aggregating expõe o catálogo de consultas agregadas com os
// parâmetros de configuração aplicados. Todas as operações são somente
// leitura sobre o conjunto limpo e retornam fatias vazias quando nenhum
// grupo satisfaz os filtros.
package aggregating

import (
	"context"

	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

type Aggregator interface {
	ChannelSplit(ctx context.Context) (*domain.ChannelSplit, error)
	CategoryBreakdown(ctx context.Context) ([]*domain.CategoryRevenue, error)
	CategoryEfficiency(ctx context.Context) ([]*domain.CategoryEfficiency, error)
	TopProductsByChannel(ctx context.Context, channel domain.SalesChannel) ([]*domain.ProductRevenue, error)
	TopSuppliers(ctx context.Context) ([]*domain.SupplierRevenue, error)
	SupplierConcentration(ctx context.Context) ([]*domain.SupplierConcentration, error)
	MonthlyPattern(ctx context.Context, year int) ([]*domain.MonthlyPattern, error)
	WholesaleRatio(ctx context.Context) ([]*domain.WholesaleRatio, error)
	SupplierDiversification(ctx context.Context) ([]*domain.SupplierDiversification, error)
	RevenueConcentrationTiers(ctx context.Context) ([]*domain.RevenueTier, error)
}

type Service struct {
	cfg  config.Aggregator
	repo repository.AggregationRepository
}

func NewService(cfg config.Aggregator, repo repository.AggregationRepository) Aggregator {
	return &Service{
		cfg:  cfg,
		repo: repo,
	}
}

func (s *Service) ChannelSplit(ctx context.Context) (*domain.ChannelSplit, error) {
	return s.repo.ChannelSplit(ctx)
}

func (s *Service) CategoryBreakdown(ctx context.Context) ([]*domain.CategoryRevenue, error) {
	return s.repo.CategoryBreakdown(ctx)
}

func (s *Service) CategoryEfficiency(ctx context.Context) ([]*domain.CategoryEfficiency, error) {
	return s.repo.CategoryEfficiency(ctx)
}

func (s *Service) TopProductsByChannel(ctx context.Context, channel domain.SalesChannel) ([]*domain.ProductRevenue, error) {
	return s.repo.TopProductsByChannel(ctx, channel, uint64(s.cfg.TopProductsLimit))
}

func (s *Service) TopSuppliers(ctx context.Context) ([]*domain.SupplierRevenue, error) {
	return s.repo.TopSuppliers(ctx, uint64(s.cfg.TopSuppliersLimit))
}

func (s *Service) SupplierConcentration(ctx context.Context) ([]*domain.SupplierConcentration, error) {
	return s.repo.SupplierConcentration(ctx, uint64(s.cfg.SupplierConcentrationLimit))
}

func (s *Service) MonthlyPattern(ctx context.Context, year int) ([]*domain.MonthlyPattern, error) {
	return s.repo.MonthlyPattern(ctx, year)
}

func (s *Service) WholesaleRatio(ctx context.Context) ([]*domain.WholesaleRatio, error) {
	return s.repo.WholesaleRatio(ctx, float64(s.cfg.WholesaleRatioThreshold), uint64(s.cfg.WholesaleRatioLimit))
}

func (s *Service) SupplierDiversification(ctx context.Context) ([]*domain.SupplierDiversification, error) {
	return s.repo.SupplierDiversification(ctx, s.cfg.DiversificationMinProducts, uint64(s.cfg.DiversificationLimit))
}

func (s *Service) RevenueConcentrationTiers(ctx context.Context) ([]*domain.RevenueTier, error) {
	return s.repo.RevenueConcentrationTiers(ctx)
}
