package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/grifun/direct-optimizer-api/infrastructure/database/postgres"
	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct"
	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/directclient"
	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/llm"
	"github.com/grifun/direct-optimizer-api/infrastructure/repository"
	"github.com/grifun/direct-optimizer-api/internal/api"
	"github.com/grifun/direct-optimizer-api/internal/api/handler"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/internal/scheduler"
	"github.com/grifun/direct-optimizer-api/internal/usecases/applying"
	"github.com/grifun/direct-optimizer-api/internal/usecases/campaigning"
	"github.com/grifun/direct-optimizer-api/internal/usecases/optimizing"
	"github.com/grifun/direct-optimizer-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reportRepo, closeRepo := reportRepository(ctx, cfg)
	defer closeRepo()

	directClient := directclient.NewClient(cfg)
	directIntegrator := direct.New(cfg, directClient)
	llmClient := llm.NewClient(cfg)

	reportService := reporting.NewService(reportRepo, cfg.Reports.ListLimit)
	campaignService := campaigning.NewService(directIntegrator)
	changeService := applying.NewService(directIntegrator)
	optimizationService := optimizing.NewService(
		directIntegrator,
		optimizing.NewOptimizer(llmClient),
		reportService,
	)

	autoOptimizeService := scheduler.NewAutoOptimizeService(optimizationService, cfg)
	if err := autoOptimizeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de otimização automática")
	} else {
		logrus.Info("Agendador de otimização automática iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Campaigns: campaignService,
		Optimizer: optimizationService,
		Changes:   changeService,
		Reports:   reportService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeAutoOptimize: autoOptimizeService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// reportRepository escolhe o armazenamento dos relatórios conforme REPORTS_STORAGE
func reportRepository(ctx context.Context, cfg *config.Config) (repository.ReportRepository, func()) {
	if cfg.Reports.Storage != config.ReportStoragePostgres {
		logrus.WithField("dir", cfg.Reports.Dir).Info("Relatórios gravados em arquivos")
		return repository.NewFileReportRepository(cfg.Reports.Dir), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	if err := repository.EnsureReportSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de relatórios")
	}

	logrus.Info("Relatórios gravados no PostgreSQL")
	return repository.NewPostgresReportRepository(conn), func() { conn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
