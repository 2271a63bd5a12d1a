package campaigning

import (
	"context"
	"errors"
	"strings"

	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// CampaignGateway é a parte do integrador do Direct usada pelo serviço de campanhas
type CampaignGateway interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	GetCampaignStats(ctx context.Context, campaignIDs []int64, period domain.StatsPeriod) ([]domain.CampaignStats, error)
	CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (int64, error)
	GetAdGroups(ctx context.Context, campaignID int64) ([]domain.AdGroup, error)
	GetKeywords(ctx context.Context, campaignID int64) ([]domain.Keyword, error)
	GetAds(ctx context.Context, campaignID int64) ([]domain.Ad, error)
}

type Service struct {
	gateway CampaignGateway
}

func NewService(gateway CampaignGateway) *Service {
	return &Service{gateway: gateway}
}

func (s *Service) ListCampaigns(ctx context.Context) (*domain.CampaignList, error) {
	campaigns, err := s.gateway.ListCampaigns(ctx)
	if err != nil {
		return nil, NewCampaignError(ErrDirectRequest, "SRV_002", err.Error())
	}

	return &domain.CampaignList{
		Campaigns: campaigns,
		Summary:   domain.SummarizeCampaigns(campaigns),
	}, nil
}

// GetCampaignDetails reúne campanha, grupos, palavras-chave e anúncios
func (s *Service) GetCampaignDetails(ctx context.Context, campaignID int64) (*domain.CampaignDetails, error) {
	campaign, err := s.gateway.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, direct.ErrCampaignNotFound) {
			return nil, NewCampaignErrorWithID(ErrCampaignNotFound, "NF_001", campaignID, "")
		}
		return nil, NewCampaignErrorWithID(ErrDirectRequest, "SRV_002", campaignID, err.Error())
	}

	groups, err := s.gateway.GetAdGroups(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDirectRequest, "SRV_002", campaignID, err.Error())
	}

	keywords, err := s.gateway.GetKeywords(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDirectRequest, "SRV_002", campaignID, err.Error())
	}

	ads, err := s.gateway.GetAds(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDirectRequest, "SRV_002", campaignID, err.Error())
	}

	return &domain.CampaignDetails{
		Campaign: *campaign,
		AdGroups: groups,
		Keywords: keywords,
		Ads:      ads,
	}, nil
}

func (s *Service) GetStats(ctx context.Context, campaignIDs []int64, period domain.StatsPeriod) ([]domain.CampaignStats, error) {
	if len(campaignIDs) == 0 {
		return nil, NewCampaignError(ErrCampaignIDsRequired, "VAL_001", "")
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	stats, err := s.gateway.GetCampaignStats(ctx, campaignIDs, period)
	if err != nil {
		return nil, NewCampaignError(ErrDirectRequest, "SRV_002", err.Error())
	}

	return stats, nil
}

// CreateCampaign valida nome, tipo e orçamento antes de qualquer chamada à plataforma
func (s *Service) CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (int64, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return 0, NewCampaignError(ErrCampaignNameMissing, "VAL_001", "")
	}

	if req.Type == "" {
		req.Type = domain.CampaignTypeText
	}
	switch req.Type {
	case domain.CampaignTypeText, domain.CampaignTypeDynamicText, domain.CampaignTypePerformance:
	default:
		return 0, NewCampaignError(ErrInvalidCampaignType, "VAL_002", string(req.Type))
	}

	if req.DailyBudget != 0 {
		if _, err := domain.DailyBudgetMinor(req.DailyBudget); err != nil {
			if errors.Is(err, domain.ErrDailyBudgetTooLarge) {
				return 0, NewCampaignError(ErrBudgetTooLarge, "VAL_002", "")
			}
			return 0, NewCampaignError(ErrBudgetTooSmall, "VAL_002", "")
		}
	}

	for _, date := range []string{req.StartDate, req.EndDate} {
		if date == "" {
			continue
		}
		if _, err := utils.ParseDate(date); err != nil {
			return 0, NewCampaignError(ErrInvalidDate, "VAL_002", date)
		}
	}

	campaignID, err := s.gateway.CreateCampaign(ctx, req)
	if err != nil {
		return 0, NewCampaignError(ErrDirectRequest, "SRV_002", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaignID,
		"campaign_name": req.Name,
		"type":          req.Type,
	}).Info("campaigning: campaign created")

	return campaignID, nil
}

func validatePeriod(period domain.StatsPeriod) error {
	if period.DateFrom == "" || period.DateTo == "" {
		return NewCampaignError(ErrPeriodRequired, "VAL_001", "")
	}

	from, err := utils.ParseDate(period.DateFrom)
	if err != nil {
		return NewCampaignError(ErrInvalidDate, "VAL_002", period.DateFrom)
	}
	to, err := utils.ParseDate(period.DateTo)
	if err != nil {
		return NewCampaignError(ErrInvalidDate, "VAL_002", period.DateTo)
	}
	if from.After(*to) {
		return NewCampaignError(ErrInvalidPeriod, "VAL_002", "")
	}

	return nil
}
