package applying

import (
	"context"

	"github.com/grifun/direct-optimizer-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ChangeApplier são as mutações da plataforma usadas ao aplicar mudanças sugeridas
type ChangeApplier interface {
	UpdateCampaign(ctx context.Context, campaignID int64, update domain.CampaignUpdate) error
	GetAdGroups(ctx context.Context, campaignID int64) ([]domain.AdGroup, error)
	AddKeywords(ctx context.Context, adGroupID int64, keywords []string) (int, error)
	AddNegativeKeywords(ctx context.Context, campaignID, adGroupID int64, keywords []string) (int, error)
	CreateTextAd(ctx context.Context, adGroupID int64, text string) (int64, error)
}
