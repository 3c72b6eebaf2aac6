// Package cleaning aplica as regras determinísticas de limpeza sobre os
// registros carregados e produz a trilha de auditoria com as contagens por
// regra. A operação é idempotente: reexecutar sobre a própria saída reporta
// zero linhas afetadas em todas as regras.
package cleaning

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/domain"
)

type Cleaner interface {
	Clean(ctx context.Context, overrides []domain.TypeOverride) (*domain.CleaningReport, error)
}

type Service struct {
	repo repository.SalesRecordRepository
}

func NewService(repo repository.SalesRecordRepository) Cleaner {
	return &Service{
		repo: repo,
	}
}

// Clean aplica as três regras na ordem fixa, como um passo atômico:
// (a) remove linhas sem retail_sales, (b) preenche fornecedor vazio com
// UNKNOWN, (c) preenche item_type vazio pela lista de sobrescritas.
func (s *Service) Clean(ctx context.Context, overrides []domain.TypeOverride) (*domain.CleaningReport, error) {
	report, err := s.repo.ApplyCleaning(ctx, overrides)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"deleted":          report.Deleted,
		"supplier_filled":  report.SupplierFilled,
		"item_type_filled": report.ItemTypeFilled,
		"rows_before":      report.RowsBefore,
		"rows_after":       report.RowsAfter,
	}).Info("Limpeza concluída")

	return report, nil
}
