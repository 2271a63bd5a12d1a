package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/grifun/direct-optimizer-api/infrastructure/database/postgres"
	"github.com/grifun/direct-optimizer-api/infrastructure/repository"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Copia os relatórios gravados em arquivo (REPORTS_DIR) para a tabela optimization_reports.
// Usado ao trocar REPORTS_STORAGE de "file" para "postgres"; pode ser executado mais de uma vez.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	dir := flag.String("dir", cfg.Reports.Dir, "diretório com os relatórios <id>.json")
	dryRun := flag.Bool("dry-run", false, "apenas lista os relatórios encontrados")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.WithField("dir", *dir).Info("Iniciando importação de relatórios...")
	startTime := time.Now()

	reports, err := repository.NewFileReportRepository(*dir).ListRecent(ctx, 0)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler relatórios do diretório")
	}
	if len(reports) == 0 {
		logrus.Info("Nenhum relatório encontrado, nada a importar")
		return
	}

	for _, report := range reports {
		logrus.WithFields(logrus.Fields{
			"report_id": report.ID,
			"campaigns": report.CampaignsAnalyzed,
			"date_from": report.DateFrom,
			"date_to":   report.DateTo,
		}).Debug("Relatório encontrado")
	}

	if *dryRun {
		logrus.Infof("Dry run: %d relatórios seriam importados", len(reports))
		return
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := repository.EnsureReportSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar a tabela de relatórios")
	}

	if err := repository.ImportReports(ctx, conn, reports); err != nil {
		logrus.WithError(err).Error("Importação revertida")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"reports":  len(reports),
		"duration": time.Since(startTime).String(),
	}).Info("Importação concluída")
}
