package handler

import (
	"context"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/internal/usecases/optimizing"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type CampaignService interface {
	ListCampaigns(ctx context.Context) (*domain.CampaignList, error)
	GetCampaignDetails(ctx context.Context, campaignID int64) (*domain.CampaignDetails, error)
	GetStats(ctx context.Context, campaignIDs []int64, period domain.StatsPeriod) ([]domain.CampaignStats, error)
	CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (int64, error)
}

type OptimizationRunner interface {
	Run(ctx context.Context, req optimizing.RunRequest) (*optimizing.RunResult, error)
}

type ChangeService interface {
	Preview(req domain.ApplyChangesRequest) domain.ChangesPreview
	Apply(ctx context.Context, req domain.ApplyChangesRequest) domain.ApplyChangesResult
}

type ReportService interface {
	GetReport(ctx context.Context, id string) (*domain.OptimizationReport, error)
	GetLatestReport(ctx context.Context) (*domain.OptimizationReport, error)
	GetAllReports(ctx context.Context) ([]*domain.OptimizationReport, error)
	GenerateMarkdown(report *domain.OptimizationReport) string
}

// CronJob é o contrato dos agendadores que podem ser disparados pela API
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}
