package direct

import (
	"time"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
	"github.com/grifun/direct-optimizer-api/internal/domain"
)

const microUnits = 1_000_000

func FactoryCampaign(c directdomain.Campaign) domain.Campaign {
	campaign := domain.Campaign{
		ID:        c.ID,
		Name:      c.Name,
		Status:    domain.CampaignStatus(c.Status),
		State:     domain.CampaignState(c.State),
		Type:      domain.CampaignType(c.Type),
		StartDate: c.StartDate,
	}

	if c.EndDate != nil {
		campaign.EndDate = *c.EndDate
	}
	if c.DailyBudget != nil {
		campaign.DailyBudget = &domain.DailyBudget{Amount: c.DailyBudget.Amount, Mode: c.DailyBudget.Mode}
	}
	if c.WeeklyBudget != nil {
		campaign.WeeklyBudget = &domain.WeeklyBudget{Amount: c.WeeklyBudget.Amount}
	}
	if c.Funds != nil {
		campaign.FundsMode = c.Funds.Mode
	}
	if c.Statistics != nil {
		campaign.Statistics = &domain.CampaignStatistics{
			Impressions: c.Statistics.Impressions,
			Clicks:      c.Statistics.Clicks,
		}
	}

	return campaign
}

// FactoryCampaignAddItem monta a campanha a criar. Tipos desconhecidos viram campanha de texto.
func FactoryCampaignAddItem(req domain.CreateCampaignRequest, now time.Time) directdomain.CampaignAddItem {
	startDate := req.StartDate
	if startDate == "" {
		startDate = now.Format(time.DateOnly)
	}

	item := directdomain.CampaignAddItem{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   req.EndDate,
	}

	switch req.Type {
	case domain.CampaignTypePerformance:
		item.PerformanceCampaign = &directdomain.PerformanceCampaignSettings{}
	case domain.CampaignTypeDynamicText:
		item.DynamicTextCampaign = &directdomain.TextCampaignSettings{BiddingStrategy: searchOnlyAverageCpc()}
	default:
		item.TextCampaign = &directdomain.TextCampaignSettings{BiddingStrategy: searchOnlyAverageCpc()}
	}

	return item
}

func searchOnlyAverageCpc() directdomain.BiddingStrategy {
	return directdomain.BiddingStrategy{
		Search: &directdomain.StrategyPlacement{
			BiddingStrategyType: domain.BiddingStrategyAverageCPC,
			AverageCpc:          &directdomain.AverageCpc{AverageCpc: initialAverageCpc},
		},
		Network: &directdomain.StrategyPlacement{
			BiddingStrategyType: domain.BiddingStrategyServingOff,
		},
	}
}

func FactoryKeyword(k directdomain.Keyword) domain.Keyword {
	keyword := domain.Keyword{
		ID:        k.ID,
		Keyword:   k.Keyword,
		AdGroupID: k.AdGroupID,
		Bid:       float64(k.Bid) / microUnits,
	}
	if k.StatisticsSearch != nil {
		keyword.Impressions = k.StatisticsSearch.Impressions
		keyword.Clicks = k.StatisticsSearch.Clicks
	}
	return keyword
}

func FactoryAd(a directdomain.Ad) domain.Ad {
	ad := domain.Ad{
		ID:        a.ID,
		AdGroupID: a.AdGroupID,
		Type:      a.Type,
		State:     a.State,
	}
	if a.TextAd != nil {
		ad.Title = a.TextAd.Title
		ad.Text = a.TextAd.Text
	}
	return ad
}
