package optimizing

import (
	"context"
	"math"
	"strings"

	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/llm"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrInvalidAnalysis = errors.New("optimizer: invalid analysis structure")

const fallbackSummary = "Не удалось проанализировать запрос автоматически. Требуется ручная проверка."

var fallbackRecommendations = []string{
	"Проверить релевантность ключевых слов",
	"Оптимизировать тексты объявлений",
	"Настроить минус-слова",
}

type Optimizer struct {
	completer llm.Completer
}

func NewOptimizer(completer llm.Completer) *Optimizer {
	return &Optimizer{completer: completer}
}

type analysis struct {
	Score            *float64         `json:"score"`
	Summary          *string          `json:"summary"`
	Recommendations  []string         `json:"recommendations"`
	SuggestedChanges []analysisChange `json:"suggestedChanges"`
}

type analysisChange struct {
	Type     string              `json:"type"`
	Action   string              `json:"action"`
	Reason   string              `json:"reason"`
	Priority string              `json:"priority"`
	Value    *domain.ChangeValue `json:"value"`
}

// OptimizeCampaign pede a análise ao modelo e normaliza a resposta. Qualquer falha resulta na avaliação heurística.
func (o *Optimizer) OptimizeCampaign(ctx context.Context, campaign domain.Campaign, stats *domain.CampaignStats) domain.CampaignOptimization {
	content, err := o.completer.CompleteJSON(ctx, systemPrompt, buildCampaignBrief(campaign, stats))
	if err != nil {
		return fallbackOptimization(campaign, stats, err)
	}

	result, err := parseAnalysis(content)
	if err != nil {
		return fallbackOptimization(campaign, stats, err)
	}

	result.CampaignID = campaign.ID
	result.CampaignName = campaign.Name

	return result
}

func parseAnalysis(content string) (domain.CampaignOptimization, error) {
	var a analysis
	if err := json.Unmarshal([]byte(content), &a); err != nil {
		return domain.CampaignOptimization{}, errors.Wrap(err, "optimizer: malformed analysis JSON")
	}

	if a.Score == nil || a.Summary == nil || a.Recommendations == nil || a.SuggestedChanges == nil {
		return domain.CampaignOptimization{}, ErrInvalidAnalysis
	}

	changes := make([]domain.SuggestedChange, 0, len(a.SuggestedChanges))
	for _, c := range a.SuggestedChanges {
		change := domain.SuggestedChange{
			Type:     domain.ChangeType(strings.TrimSpace(c.Type)),
			Action:   c.Action,
			Reason:   c.Reason,
			Priority: domain.Priority(strings.TrimSpace(c.Priority)),
			Value:    c.Value,
		}
		if change.Type == "" {
			change.Type = domain.ChangeTypeTargeting
		}
		if change.Priority == "" {
			change.Priority = domain.PriorityMedium
		}
		changes = append(changes, change)
	}

	return domain.CampaignOptimization{
		Score:            clampScore(*a.Score),
		Summary:          *a.Summary,
		Recommendations:  a.Recommendations,
		SuggestedChanges: changes,
		Outcome:          domain.OutcomeOK,
	}, nil
}

func fallbackOptimization(campaign domain.Campaign, stats *domain.CampaignStats, cause error) domain.CampaignOptimization {
	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"error":       cause.Error(),
	}).Warn("optimizer: AI analysis failed, using heuristic score")

	recommendations := make([]string, len(fallbackRecommendations))
	copy(recommendations, fallbackRecommendations)

	return domain.CampaignOptimization{
		CampaignID:       campaign.ID,
		CampaignName:     campaign.Name,
		Score:            heuristicScore(stats),
		Summary:          fallbackSummary,
		Recommendations:  recommendations,
		SuggestedChanges: []domain.SuggestedChange{},
		Outcome:          domain.OutcomeDegraded,
		DegradedReason:   cause.Error(),
	}
}

func heuristicScore(stats *domain.CampaignStats) float64 {
	if stats == nil {
		return 50
	}
	if stats.CTR > 2 {
		return 60
	}
	return 40
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}
