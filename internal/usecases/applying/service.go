package applying

import (
	"context"
	"errors"
	"fmt"

	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Service struct {
	applier ChangeApplier
}

func NewService(applier ChangeApplier) *Service {
	return &Service{applier: applier}
}

// Preview descreve as mudanças sem tocar na plataforma
func (s *Service) Preview(req domain.ApplyChangesRequest) domain.ChangesPreview {
	items := make([]domain.ChangePreviewItem, 0, len(req.Changes))
	for _, c := range req.Changes {
		items = append(items, domain.ChangePreviewItem{Type: c.Type, Action: c.Action})
	}

	return domain.ChangesPreview{
		CampaignID:   req.CampaignID,
		ChangesCount: len(req.Changes),
		Changes:      items,
	}
}

// Apply aplica cada mudança de forma independente e devolve um resultado por mudança, na mesma ordem
func (s *Service) Apply(ctx context.Context, req domain.ApplyChangesRequest) domain.ApplyChangesResult {
	results := make([]domain.ChangeResult, 0, len(req.Changes))
	applied := 0

	for _, change := range req.Changes {
		result := s.applyChange(ctx, req.CampaignID, change)
		if result.Success {
			applied++
		} else {
			logrus.WithFields(logrus.Fields{
				"campaign_id": req.CampaignID,
				"type":        change.Type,
				"message":     result.Message,
			}).Warn("applying: change not applied")
		}
		results = append(results, result)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": req.CampaignID,
		"changes":     len(req.Changes),
		"applied":     applied,
	}).Info("applying: changes processed")

	return domain.ApplyChangesResult{
		Success:    applied > 0,
		CampaignID: req.CampaignID,
		Applied:    applied,
		Total:      len(req.Changes),
		Results:    results,
	}
}

func (s *Service) applyChange(ctx context.Context, campaignID int64, change domain.ChangeRequest) domain.ChangeResult {
	switch change.Type {
	case domain.ChangeTypeBudget:
		return s.applyBudget(ctx, campaignID, change)
	case domain.ChangeTypeKeywords:
		return s.applyKeywords(ctx, campaignID, change)
	case domain.ChangeTypeNegative:
		return s.applyNegativeKeywords(ctx, campaignID, change)
	case domain.ChangeTypeAdText:
		return s.applyAdTexts(ctx, campaignID, change)
	case domain.ChangeTypeTargeting:
		return failed(change.Type, targetingNotSupportedMessage)
	default:
		return failed(change.Type, fmt.Sprintf("Тип изменения \"%s\" не поддерживается для автоматического применения", change.Type))
	}
}

func (s *Service) applyBudget(ctx context.Context, campaignID int64, change domain.ChangeRequest) domain.ChangeResult {
	rubles, ok := extractBudget(change)
	if !ok || rubles <= 0 {
		return failed(change.Type, "❌ "+ErrBudgetValueMissing.Error())
	}

	amount, err := domain.DailyBudgetMinor(rubles)
	switch {
	case errors.Is(err, domain.ErrDailyBudgetTooLarge):
		return failed(change.Type, failureMessage(ErrBudgetTooLarge))
	case errors.Is(err, domain.ErrDailyBudgetTooSmall):
		return failed(change.Type, failureMessage(ErrBudgetTooSmall))
	case err != nil:
		return failed(change.Type, "❌ "+ErrBudgetValueMissing.Error())
	}

	err = s.applier.UpdateCampaign(ctx, campaignID, domain.CampaignUpdate{
		DailyBudget: &domain.DailyBudget{Amount: amount},
	})
	if err != nil {
		if requiresManualStrategy(err) {
			return failed(change.Type, manualStrategyMessage+err.Error())
		}
		return failed(change.Type, failureMessage(err))
	}

	return succeeded(change.Type, fmt.Sprintf("✅ Бюджет установлен: %s руб/день", utils.FormatDecimal(rubles)))
}

func (s *Service) applyKeywords(ctx context.Context, campaignID int64, change domain.ChangeRequest) domain.ChangeResult {
	keywords := extractKeywords(change)
	if len(keywords) == 0 {
		return failed(change.Type, failureMessage(ErrKeywordsNotFound))
	}

	adGroupID, err := s.firstAdGroup(ctx, campaignID)
	if err != nil {
		return failed(change.Type, failureMessage(err))
	}

	added, err := s.applier.AddKeywords(ctx, adGroupID, keywords)
	if err != nil {
		return failed(change.Type, failureMessage(err))
	}

	return succeeded(change.Type, fmt.Sprintf("✅ Добавлено ключевых слов: %d", added))
}

func (s *Service) applyNegativeKeywords(ctx context.Context, campaignID int64, change domain.ChangeRequest) domain.ChangeResult {
	keywords := extractNegativeKeywords(change)
	if len(keywords) == 0 {
		return failed(change.Type, failureMessage(ErrNegativesNotFound))
	}

	added, err := s.applier.AddNegativeKeywords(ctx, campaignID, 0, keywords)
	if err != nil {
		return failed(change.Type, failureMessage(err))
	}

	return succeeded(change.Type, fmt.Sprintf("✅ Добавлено минус-слов: %d", added))
}

// applyAdTexts cria até cinco anúncios; falhas individuais são apenas registradas
func (s *Service) applyAdTexts(ctx context.Context, campaignID int64, change domain.ChangeRequest) domain.ChangeResult {
	texts := extractAdTexts(change)
	if len(texts) == 0 {
		return failed(change.Type, failureMessage(ErrAdTextsNotFound))
	}

	adGroupID, err := s.firstAdGroup(ctx, campaignID)
	if err != nil {
		return failed(change.Type, failureMessage(err))
	}

	created := 0
	for _, text := range texts {
		if _, err := s.applier.CreateTextAd(ctx, adGroupID, text); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"ad_group_id": adGroupID,
				"text":        preview(text),
				"error":       err.Error(),
			}).Warn("applying: failed to create ad")
			continue
		}
		created++
	}

	if created == 0 {
		return failed(change.Type, failureMessage(ErrNoAdsCreated))
	}

	return succeeded(change.Type, fmt.Sprintf("✅ Создано объявлений: %d", created))
}

func (s *Service) firstAdGroup(ctx context.Context, campaignID int64) (int64, error) {
	groups, err := s.applier.GetAdGroups(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if len(groups) == 0 {
		return 0, direct.ErrNoAdGroups
	}
	return groups[0].ID, nil
}

func succeeded(t domain.ChangeType, message string) domain.ChangeResult {
	return domain.ChangeResult{Type: t, Success: true, Message: message}
}

func failed(t domain.ChangeType, message string) domain.ChangeResult {
	return domain.ChangeResult{Type: t, Success: false, Message: message}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return text
}
