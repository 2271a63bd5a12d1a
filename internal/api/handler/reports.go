package handler

import (
	"net/http"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const formatMarkdown = "markdown"

// GetReports atende ?id=, ?latest=true ou, sem parâmetros, a listagem resumida
func GetReports(service ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		ctx := r.Context()

		if id := query.Get("id"); id != "" {
			report, err := service.GetReport(ctx, id)
			if err != nil {
				logrus.WithError(err).Error("handler: failed to get report")
				apiErrors.WriteError(w, apiErrors.ErrStorage, "Failed to get reports", err.Error())
				return
			}
			if report == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Report not found", nil)
				return
			}
			writeReport(w, service, report, query.Get("format"))
			return
		}

		if query.Get("latest") == "true" {
			report, err := service.GetLatestReport(ctx)
			if err != nil {
				logrus.WithError(err).Error("handler: failed to get latest report")
				apiErrors.WriteError(w, apiErrors.ErrStorage, "Failed to get reports", err.Error())
				return
			}
			if report == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "No reports found", nil)
				return
			}
			writeReport(w, service, report, query.Get("format"))
			return
		}

		reports, err := service.GetAllReports(ctx)
		if err != nil {
			logrus.WithError(err).Error("handler: failed to list reports")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Failed to get reports", err.Error())
			return
		}

		items := make([]domain.ReportListItem, 0, len(reports))
		for _, report := range reports {
			items = append(items, report.ListItem())
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(items),
			"reports": items,
		})
	})
}

func writeReport(w http.ResponseWriter, service ReportService, report *domain.OptimizationReport, format string) {
	if format != formatMarkdown {
		writeJSON(w, http.StatusOK, report)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(service.GenerateMarkdown(report))); err != nil {
		logrus.WithError(err).Warn("handler: failed to write markdown report")
	}
}
