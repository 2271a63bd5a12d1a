package optimizing

import (
	"context"

	"github.com/grifun/direct-optimizer-api/internal/domain"
)

// CampaignSource lê campanhas e estatísticas da plataforma de anúncios
type CampaignSource interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaignStats(ctx context.Context, campaignIDs []int64, period domain.StatsPeriod) ([]domain.CampaignStats, error)
}

// CampaignOptimizer avalia uma campanha. Nunca falha: em caso de erro devolve um resultado degradado.
type CampaignOptimizer interface {
	OptimizeCampaign(ctx context.Context, campaign domain.Campaign, stats *domain.CampaignStats) domain.CampaignOptimization
}

type ReportSaver interface {
	SaveReport(ctx context.Context, optimizations []domain.CampaignOptimization, period domain.StatsPeriod) (*domain.OptimizationReport, error)
}
