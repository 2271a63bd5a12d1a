package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grifun/direct-optimizer-api/infrastructure/repository"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 50

type Reporter interface {
	SaveReport(ctx context.Context, optimizations []domain.CampaignOptimization, period domain.StatsPeriod) (*domain.OptimizationReport, error)
	GetReport(ctx context.Context, id string) (*domain.OptimizationReport, error)
	GetLatestReport(ctx context.Context) (*domain.OptimizationReport, error)
	GetAllReports(ctx context.Context) ([]*domain.OptimizationReport, error)
	GenerateMarkdown(report *domain.OptimizationReport) string
}

type Service struct {
	repository repository.ReportRepository
	listLimit  int
	now        func() time.Time
}

func NewService(repo repository.ReportRepository, listLimit int) *Service {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	return &Service{
		repository: repo,
		listLimit:  listLimit,
		now:        time.Now,
	}
}

// SaveReport monta o relatório da execução com o resumo agregado e o persiste com id opt_<epoch-millis>
func (s *Service) SaveReport(ctx context.Context, optimizations []domain.CampaignOptimization, period domain.StatsPeriod) (*domain.OptimizationReport, error) {
	if optimizations == nil {
		optimizations = []domain.CampaignOptimization{}
	}

	now := s.now().UTC()
	report := &domain.OptimizationReport{
		ID:                fmt.Sprintf("opt_%d", now.UnixMilli()),
		Timestamp:         now,
		DateFrom:          period.DateFrom,
		DateTo:            period.DateTo,
		CampaignsAnalyzed: len(optimizations),
		Optimizations:     optimizations,
		Summary:           domain.SummarizeOptimizations(optimizations),
	}

	if err := s.repository.Save(ctx, report); err != nil {
		return nil, errors.Wrapf(err, "reporting: failed to save report %s", report.ID)
	}

	logrus.WithFields(logrus.Fields{
		"report_id":     report.ID,
		"campaigns":     report.CampaignsAnalyzed,
		"average_score": report.Summary.AverageScore,
	}).Info("reporting: report saved")

	return report, nil
}

func (s *Service) GetReport(ctx context.Context, id string) (*domain.OptimizationReport, error) {
	report, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "reporting: failed to read report %s", id)
	}
	return report, nil
}

func (s *Service) GetLatestReport(ctx context.Context) (*domain.OptimizationReport, error) {
	report, err := s.repository.GetLatest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: failed to read latest report")
	}
	return report, nil
}

// GetAllReports devolve até listLimit relatórios, do mais recente para o mais antigo
func (s *Service) GetAllReports(ctx context.Context) ([]*domain.OptimizationReport, error) {
	reports, err := s.repository.ListRecent(ctx, s.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: failed to list reports")
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})

	return reports, nil
}
