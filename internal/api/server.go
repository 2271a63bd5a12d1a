package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/api/handler"
	"github.com/grifun/direct-optimizer-api/internal/api/handler/router"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Campaigns handler.CampaignService
	Optimizer handler.OptimizationRunner
	Changes   handler.ChangeService
	Reports   handler.ReportService
	CronJobs  handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Campaigns == nil || services.Optimizer == nil || services.Changes == nil || services.Reports == nil {
		return nil, fmt.Errorf("api: missing service dependencies")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta rotas e middlewares globais; usado também nos testes
func NewHandler(cfg *config.Config, services Services) http.Handler {
	directMissing := cfg.MissingDirectCredentials()
	optimizerMissing := cfg.MissingOptimizerCredentials()
	secret := cfg.AutoOptimize.Secret

	if len(optimizerMissing) > 0 {
		logrus.WithField("missing", optimizerMissing).Warn("Credenciais ausentes: rotas do Yandex Direct responderão 500")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Campaigns(services.Campaigns, directMissing)...),
		router.WithRoutes(handler.Optimization(services.Optimizer, optimizerMissing, secret)...),
		router.WithRoutes(handler.Changes(services.Changes, directMissing)...),
		router.WithRoutes(handler.Reports(services.Reports)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, secret)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	).Then(rt)
}

// Run bloqueia até SIGINT/SIGTERM ou cancelamento do contexto e então desliga o servidor
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
