package optimizing

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultLookbackDays = 7

// RunRequest descreve uma execução: campanhas explícitas ou todas as ativas, janela em dias e filtro opcional de score
type RunRequest struct {
	CampaignIDs []int64
	Days        int
	MinScore    float64
}

type RunResult struct {
	Report         *domain.OptimizationReport
	Period         domain.StatsPeriod
	Days           int
	TotalCampaigns int
	Optimizations  []domain.CampaignOptimization
}

type Service struct {
	source    CampaignSource
	optimizer CampaignOptimizer
	reports   ReportSaver
	now       func() time.Time
}

func NewService(source CampaignSource, optimizer CampaignOptimizer, reports ReportSaver) *Service {
	return &Service{
		source:    source,
		optimizer: optimizer,
		reports:   reports,
		now:       time.Now,
	}
}

// Run seleciona as campanhas, busca estatísticas do período, avalia cada campanha e grava o relatório.
// Sem campanhas elegíveis devolve um resultado sem relatório.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	days := req.Days
	if days <= 0 {
		days = DefaultLookbackDays
	}

	campaigns, err := s.source.ListCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "optimizing: failed to list campaigns")
	}

	selected := selectCampaigns(campaigns, req.CampaignIDs)
	period := domain.LookbackPeriod(s.now(), days)

	result := &RunResult{
		Period:         period,
		Days:           days,
		TotalCampaigns: len(selected),
		Optimizations:  []domain.CampaignOptimization{},
	}

	if len(selected) == 0 {
		logrus.Info("optimizing: no campaigns to optimize")
		return result, nil
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(selected),
		"date_from": period.DateFrom,
		"date_to":   period.DateTo,
	}).Info("optimizing: analyzing campaigns")

	statsByID := s.fetchStats(ctx, selected, period)
	optimizations := s.optimizeAll(ctx, selected, statsByID)
	optimizations = filterByScore(optimizations, req.MinScore)

	for _, opt := range optimizations {
		entry := logrus.WithFields(logrus.Fields{
			"campaign_id":     opt.CampaignID,
			"campaign_name":   opt.CampaignName,
			"score":           opt.Score,
			"recommendations": len(opt.Recommendations),
			"changes":         len(opt.SuggestedChanges),
			"outcome":         opt.Outcome,
		})
		if opt.Score < domain.LowScoreThreshold {
			entry.Warn("optimizing: low score campaign")
			continue
		}
		entry.Info("optimizing: campaign analyzed")
	}

	report, err := s.reports.SaveReport(ctx, optimizations, period)
	if err != nil {
		return nil, err
	}

	result.Report = report
	result.Optimizations = optimizations

	return result, nil
}

// fetchStats falha de forma silenciosa: sem estatísticas as campanhas são avaliadas como novas
func (s *Service) fetchStats(ctx context.Context, campaigns []domain.Campaign, period domain.StatsPeriod) map[int64]domain.CampaignStats {
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	stats, err := s.source.GetCampaignStats(ctx, ids, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaigns": len(ids),
			"error":     err.Error(),
		}).Warn("optimizing: failed to get stats, continuing without them")
		return map[int64]domain.CampaignStats{}
	}

	return domain.StatsByCampaign(stats)
}

func (s *Service) optimizeAll(ctx context.Context, campaigns []domain.Campaign, statsByID map[int64]domain.CampaignStats) []domain.CampaignOptimization {
	results := make([]domain.CampaignOptimization, len(campaigns))

	var wg sync.WaitGroup

	for i, campaign := range campaigns {
		wg.Add(1)

		go func(i int, campaign domain.Campaign) {
			defer wg.Done()

			var stats *domain.CampaignStats
			if st, ok := statsByID[campaign.ID]; ok {
				stats = &st
			}

			results[i] = s.optimizer.OptimizeCampaign(ctx, campaign, stats)
		}(i, campaign)
	}

	wg.Wait()

	return results
}

func selectCampaigns(campaigns []domain.Campaign, ids []int64) []domain.Campaign {
	selected := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if len(ids) > 0 {
			if slices.Contains(ids, c.ID) {
				selected = append(selected, c)
			}
			continue
		}
		if c.IsActive() {
			selected = append(selected, c)
		}
	}
	return selected
}

// filterByScore mantém apenas as campanhas abaixo de minScore. Zero desliga o filtro.
func filterByScore(optimizations []domain.CampaignOptimization, minScore float64) []domain.CampaignOptimization {
	if minScore <= 0 {
		return optimizations
	}

	filtered := make([]domain.CampaignOptimization, 0, len(optimizations))
	for _, opt := range optimizations {
		if opt.Score < minScore {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
