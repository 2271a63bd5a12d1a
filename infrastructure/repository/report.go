package repository

import (
	"context"

	"github.com/grifun/direct-optimizer-api/internal/domain"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportRepository persiste os relatórios de otimização. Get e GetLatest devolvem nil, nil quando não há relatório.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.OptimizationReport) error
	Get(ctx context.Context, id string) (*domain.OptimizationReport, error)
	GetLatest(ctx context.Context) (*domain.OptimizationReport, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.OptimizationReport, error)
}
