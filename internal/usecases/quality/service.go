// Package quality computa estatísticas de completude e cobertura sobre os
// registros carregados. Todas as operações são somente leitura e rodam antes
// e depois da limpeza para comprovar as contagens.
package quality

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

const monthsPerYear = 12

type Checker interface {
	RowCount(ctx context.Context) (int64, error)
	CountMissing(ctx context.Context, field domain.MissingField) (int64, error)
	CoverageGrid(ctx context.Context, years []int) ([]domain.CoverageCell, error)
	Snapshot(ctx context.Context, years []int) (*domain.QualitySnapshot, error)
}

type Service struct {
	repo repository.SalesRecordRepository
}

func NewService(repo repository.SalesRecordRepository) Checker {
	return &Service{
		repo: repo,
	}
}

func (s *Service) RowCount(ctx context.Context) (int64, error) {
	return s.repo.RowCount(ctx)
}

func (s *Service) CountMissing(ctx context.Context, field domain.MissingField) (int64, error) {
	return s.repo.CountMissing(ctx, field)
}

// CoverageGrid produz o produto cartesiano anos × meses com a marcação de
// existência de dados, ordenado por ano e mês
func (s *Service) CoverageGrid(ctx context.Context, years []int) ([]domain.CoverageCell, error) {
	observed, err := s.repo.DistinctYearMonths(ctx)
	if err != nil {
		return nil, err
	}

	hasData := make(map[domain.YearMonth]bool, len(observed))
	for _, pair := range observed {
		hasData[pair] = true
	}

	ordered := append([]int(nil), years...)
	sort.Ints(ordered)

	grid := make([]domain.CoverageCell, 0, len(ordered)*monthsPerYear)
	for _, year := range ordered {
		for month := 1; month <= monthsPerYear; month++ {
			grid = append(grid, domain.CoverageCell{
				Year:    year,
				Month:   month,
				HasData: hasData[domain.YearMonth{Year: year, Month: month}],
			})
		}
	}

	return grid, nil
}

// Snapshot consolida todas as estatísticas de qualidade em uma única leitura
func (s *Service) Snapshot(ctx context.Context, years []int) (*domain.QualitySnapshot, error) {
	rowCount, err := s.repo.RowCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar registros: %w", err)
	}

	snapshot := &domain.QualitySnapshot{RowCount: rowCount}

	missing := []struct {
		field  domain.MissingField
		target *int64
	}{
		{domain.FieldRetailSales, &snapshot.MissingRetailSales},
		{domain.FieldSupplier, &snapshot.MissingSupplier},
		{domain.FieldItemType, &snapshot.MissingItemType},
	}
	for _, m := range missing {
		count, err := s.repo.CountMissing(ctx, m.field)
		if err != nil {
			return nil, fmt.Errorf("erro ao contar campo ausente %s: %w", m.field, err)
		}
		*m.target = count
	}

	grid, err := s.CoverageGrid(ctx, years)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar grade de cobertura: %w", err)
	}
	snapshot.Coverage = grid

	return snapshot, nil
}
