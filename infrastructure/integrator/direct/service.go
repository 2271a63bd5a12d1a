package direct

import (
	"context"
	"time"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/directclient"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// initialAverageCpc é o lance médio inicial (1 rublo) em micro-unidades
const initialAverageCpc int64 = 1_000_000

type DirectIntegrator struct {
	cfg    *config.Config
	Client directclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client directclient.Client) *DirectIntegrator {
	return &DirectIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *DirectIntegrator) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	resp, err := s.Client.GetCampaigns(ctx, nil)
	if err != nil {
		logrus.WithError(err).Error("direct: failed to list campaigns")
		return nil, errors.Wrap(err, "direct: list campaigns")
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, FactoryCampaign(c))
	}

	logrus.WithField("campaigns", len(campaigns)).Debug("direct: campaigns listed")

	return campaigns, nil
}

func (s *DirectIntegrator) GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	resp, err := s.Client.GetCampaigns(ctx, []int64{campaignID})
	if err != nil {
		return nil, errors.Wrapf(err, "direct: get campaign %d", campaignID)
	}

	if len(resp) == 0 {
		return nil, errors.Wrapf(ErrCampaignNotFound, "id %d", campaignID)
	}

	campaign := FactoryCampaign(resp[0])
	return &campaign, nil
}

// GetCampaignStats busca o relatório de desempenho e o converte em estatísticas por campanha
func (s *DirectIntegrator) GetCampaignStats(ctx context.Context, campaignIDs []int64, period domain.StatsPeriod) ([]domain.CampaignStats, error) {
	tsv, err := s.Client.GetCampaignPerformanceReport(ctx, campaignIDs, period.DateFrom, period.DateTo)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaigns": len(campaignIDs),
			"date_from": period.DateFrom,
			"date_to":   period.DateTo,
			"error":     err.Error(),
		}).Warn("direct: failed to fetch performance report")
		return nil, errors.Wrap(err, "direct: campaign stats")
	}

	return directclient.ParseStatsTSV(tsv), nil
}

// CreateCampaign cria a campanha e, se houver orçamento, aplica-o numa segunda chamada.
// Falha ao aplicar o orçamento não desfaz a criação.
func (s *DirectIntegrator) CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (int64, error) {
	var budgetMinor int64
	if req.DailyBudget != 0 {
		var err error
		if budgetMinor, err = domain.DailyBudgetMinor(req.DailyBudget); err != nil {
			return 0, err
		}
	}

	item := FactoryCampaignAddItem(req, s.now())

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"name": item.Name,
			"type": req.Type,
		}).Debugf("direct: creating campaign %s", utils.PrettyJson(item))
	}

	campaignID, err := s.Client.AddCampaign(ctx, item)
	if err != nil {
		logrus.WithError(err).Error("direct: failed to create campaign")
		return 0, errors.Wrap(err, "direct: create campaign")
	}

	logrus.WithField("campaign_id", campaignID).Info("direct: campaign created")

	if budgetMinor > 0 {
		err := s.UpdateCampaign(ctx, campaignID, domain.CampaignUpdate{
			DailyBudget: &domain.DailyBudget{Amount: budgetMinor, Mode: domain.BudgetModeDistributed},
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("direct: campaign created but daily budget was not applied")
		}
	}

	return campaignID, nil
}

// UpdateCampaign aplica uma alteração parcial. O orçamento é validado antes de qualquer chamada.
func (s *DirectIntegrator) UpdateCampaign(ctx context.Context, campaignID int64, update domain.CampaignUpdate) error {
	if update.DailyBudget != nil {
		if err := domain.ValidateDailyBudget(update.DailyBudget.Amount); err != nil {
			return err
		}
	}

	current, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}

	item := directdomain.CampaignUpdateItem{
		ID:    campaignID,
		Name:  update.Name,
		State: string(update.State),
	}

	if update.DailyBudget != nil {
		// Campanhas PERFORMANCE só aceitam orçamento diário com estratégia manual
		if current.Type == domain.CampaignTypePerformance {
			if err := s.SetBiddingStrategy(ctx, *current, domain.BiddingStrategyManualCPC); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaignID,
					"error":       err.Error(),
				}).Warn("direct: could not switch to manual strategy, trying budget anyway")
			}
		}

		mode := update.DailyBudget.Mode
		if mode == "" && current.DailyBudget != nil {
			mode = current.DailyBudget.Mode
		}
		if mode == "" {
			mode = domain.BudgetModeDistributed
		}

		item.DailyBudget = &directdomain.DailyBudget{
			Amount: update.DailyBudget.Amount,
			Mode:   mode,
		}
	}

	if update.BiddingStrategy != "" {
		applyBiddingStrategy(&item, current.Type, update.BiddingStrategy)
	}

	if err := s.Client.UpdateCampaign(ctx, item); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("direct: failed to update campaign")
		return errors.Wrapf(err, "direct: update campaign %d", campaignID)
	}

	logrus.WithField("campaign_id", campaignID).Info("direct: campaign updated")

	return nil
}

func (s *DirectIntegrator) SetBiddingStrategy(ctx context.Context, campaign domain.Campaign, strategy string) error {
	item := directdomain.CampaignUpdateItem{ID: campaign.ID}
	applyBiddingStrategy(&item, campaign.Type, strategy)

	if err := s.Client.UpdateCampaign(ctx, item); err != nil {
		return errors.Wrapf(err, "direct: set bidding strategy %s", strategy)
	}

	return nil
}

func (s *DirectIntegrator) GetAdGroups(ctx context.Context, campaignID int64) ([]domain.AdGroup, error) {
	resp, err := s.Client.GetAdGroups(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "direct: ad groups of campaign %d", campaignID)
	}

	groups := make([]domain.AdGroup, 0, len(resp))
	for _, g := range resp {
		groups = append(groups, domain.AdGroup{ID: g.ID, Name: g.Name, CampaignID: g.CampaignID})
	}
	return groups, nil
}

func (s *DirectIntegrator) GetKeywords(ctx context.Context, campaignID int64) ([]domain.Keyword, error) {
	resp, err := s.Client.GetKeywords(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "direct: keywords of campaign %d", campaignID)
	}

	keywords := make([]domain.Keyword, 0, len(resp))
	for _, k := range resp {
		keywords = append(keywords, FactoryKeyword(k))
	}
	return keywords, nil
}

func (s *DirectIntegrator) GetAds(ctx context.Context, campaignID int64) ([]domain.Ad, error) {
	resp, err := s.Client.GetAds(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "direct: ads of campaign %d", campaignID)
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, a := range resp {
		ads = append(ads, FactoryAd(a))
	}
	return ads, nil
}

// AddKeywords adiciona as frases ao grupo e devolve quantas foram enviadas após a limpeza
func (s *DirectIntegrator) AddKeywords(ctx context.Context, adGroupID int64, keywords []string) (int, error) {
	cleaned := domain.SanitizeKeywords(keywords)
	if len(cleaned) == 0 {
		return 0, ErrNoValidKeywords
	}

	items := make([]directdomain.KeywordAddItem, 0, len(cleaned))
	for _, kw := range cleaned {
		items = append(items, directdomain.KeywordAddItem{Keyword: kw, AdGroupID: adGroupID})
	}

	if _, err := s.Client.AddKeywords(ctx, items); err != nil {
		return 0, errors.Wrapf(err, "direct: add keywords to ad group %d", adGroupID)
	}

	logrus.WithFields(logrus.Fields{
		"ad_group_id": adGroupID,
		"keywords":    len(cleaned),
	}).Info("direct: keywords added")

	return len(cleaned), nil
}

// AddNegativeKeywords acrescenta minus-palavras ao grupo informado ou, com adGroupID zero, ao primeiro grupo da campanha.
// As minus-palavras existentes no grupo são preservadas.
func (s *DirectIntegrator) AddNegativeKeywords(ctx context.Context, campaignID, adGroupID int64, keywords []string) (int, error) {
	cleaned := domain.SanitizeKeywords(keywords)
	if len(cleaned) == 0 {
		return 0, ErrNoValidNegativeKeyword
	}

	groups, err := s.Client.GetAdGroups(ctx, campaignID)
	if err != nil {
		return 0, errors.Wrapf(err, "direct: ad groups of campaign %d", campaignID)
	}
	if len(groups) == 0 {
		return 0, ErrNoAdGroups
	}

	target := groups[0]
	if adGroupID != 0 {
		found := false
		for _, g := range groups {
			if g.ID == adGroupID {
				target, found = g, true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrAdGroupNotInCampaign, "direct: ad group %d, campaign %d", adGroupID, campaignID)
		}
	}

	var existing []string
	if target.NegativeKeywords != nil {
		existing = target.NegativeKeywords.Items
	}
	merged := mergeUnique(existing, cleaned)

	err = s.Client.UpdateAdGroup(ctx, directdomain.AdGroupUpdateItem{
		ID:               target.ID,
		NegativeKeywords: &directdomain.ArrayOfString{Items: merged},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "direct: negative keywords for ad group %d", target.ID)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"ad_group_id": target.ID,
		"keywords":    len(cleaned),
	}).Info("direct: negative keywords added")

	return len(cleaned), nil
}

// CreateTextAd compõe o anúncio a partir do texto livre, cria-o e envia para moderação
func (s *DirectIntegrator) CreateTextAd(ctx context.Context, adGroupID int64, text string) (int64, error) {
	adCopy, err := ComposeTextAd(text)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_group_id": adGroupID,
		"lengths":     describeAdCopy(adCopy),
	}).Debug("direct: ad copy composed")

	adID, err := s.Client.AddAd(ctx, directdomain.AdAddItem{
		AdGroupID: adGroupID,
		TextAd: &directdomain.TextAd{
			Title:          adCopy.Title,
			Text:           adCopy.Text,
			Href:           s.cfg.Direct.AdHref,
			Mobile:         "NO",
			DisplayURLPath: s.cfg.Direct.AdDisplayPath,
		},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "direct: create ad in group %d", adGroupID)
	}

	if err := s.ModerateAd(ctx, adID); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("direct: ad created but not sent to moderation")
	}

	return adID, nil
}

func (s *DirectIntegrator) ModerateAd(ctx context.Context, adID int64) error {
	if err := s.Client.ModerateAds(ctx, []int64{adID}); err != nil {
		return errors.Wrapf(err, "direct: moderate ad %d", adID)
	}
	return nil
}

func applyBiddingStrategy(item *directdomain.CampaignUpdateItem, campaignType domain.CampaignType, strategy string) {
	bidding := &directdomain.BiddingStrategy{
		Search:  &directdomain.StrategyPlacement{BiddingStrategyType: strategy},
		Network: &directdomain.StrategyPlacement{BiddingStrategyType: strategy},
	}

	switch campaignType {
	case domain.CampaignTypePerformance:
		item.PerformanceCampaign = &directdomain.PerformanceCampaignSettings{BiddingStrategy: bidding}
	case domain.CampaignTypeDynamicText:
		item.DynamicTextCampaign = &directdomain.TextCampaignUpdateSettings{BiddingStrategy: bidding}
	default:
		item.TextCampaign = &directdomain.TextCampaignUpdateSettings{BiddingStrategy: bidding}
	}
}

func mergeUnique(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(added))
	merged := make([]string, 0, len(existing)+len(added))
	for _, list := range [][]string{existing, added} {
		for _, kw := range list {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			merged = append(merged, kw)
		}
	}
	return merged
}
