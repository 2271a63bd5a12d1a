package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/internal/usecases/optimizing"
	"github.com/sirupsen/logrus"
)

// OptimizationRunner executa uma rodada de otimização
type OptimizationRunner interface {
	Run(ctx context.Context, req optimizing.RunRequest) (*optimizing.RunResult, error)
}

// AutoOptimizeConfig representa a configuração do agendador de otimização automática
type AutoOptimizeConfig struct {
	CronSchedule string
	LookbackDays int
	MinScore     float64
	Enabled      bool
}

// AutoOptimizeService agenda a otimização periódica das campanhas ativas
type AutoOptimizeService struct {
	scheduler          *gocron.Scheduler
	config             AutoOptimizeConfig
	runner             OptimizationRunner
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastReportID       string
	lastError          string
}

func NewAutoOptimizeService(runner OptimizationRunner, appConfig *config.Config) *AutoOptimizeService {
	cfg := AutoOptimizeConfig{
		CronSchedule: appConfig.AutoOptimize.CronSchedule,
		LookbackDays: appConfig.AutoOptimize.LookbackDays,
		MinScore:     appConfig.AutoOptimize.MinScore,
		Enabled:      appConfig.AutoOptimize.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"lookback_days": cfg.LookbackDays,
		"min_score":     cfg.MinScore,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador de otimização automática carregada")

	return &AutoOptimizeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		runner:    runner,
	}
}

// Start inicia o agendador
func (s *AutoOptimizeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Otimização automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de otimização automática")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runOptimization(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar otimização automática: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de otimização automática")
		s.scheduler.Stop()
	}()

	return nil
}

// runOptimization executa uma rodada; rodadas sobrepostas são ignoradas
func (s *AutoOptimizeService) runOptimization(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Otimização automática já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	result, err := s.runner.Run(ctx, optimizing.RunRequest{
		Days:     s.config.LookbackDays,
		MinScore: s.config.MinScore,
	})

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastRunCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na otimização automática")
		return
	}

	s.lastError = ""
	fields := logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": result.TotalCampaigns,
	}
	if result.Report != nil {
		s.lastReportID = result.Report.ID
		fields["report_id"] = result.Report.ID
		fields["average_score"] = result.Report.Summary.AverageScore
	}

	logrus.WithFields(fields).Info("Otimização automática concluída")
}

// TriggerManualSync inicia manualmente uma rodada de otimização
func (s *AutoOptimizeService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Otimização automática já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando otimização manual")
	go s.runOptimization(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AutoOptimizeService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"lookback_days":         s.config.LookbackDays,
		"min_score":             s.config.MinScore,
		"running":               s.syncRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_report_id":        s.lastReportID,
		"last_error":            s.lastError,
	}
}
