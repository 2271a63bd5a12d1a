package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/internal/usecases/optimizing"
	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type optimizeRequest struct {
	CampaignIDs []int64 `json:"campaignIds"`
	Days        int     `json:"days"`
}

type autoOptimizeSummary struct {
	Total        int     `json:"total"`
	Analyzed     int     `json:"analyzed"`
	AverageScore float64 `json:"averageScore"`
	LowScore     int     `json:"lowScore"`
	HighScore    int     `json:"highScore"`
}

type periodWithDays struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Days     int    `json:"days"`
}

// Optimize avalia as campanhas indicadas, ou as ativas, e grava o relatório
func Optimize(runner OptimizationRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req optimizeRequest
		if err := decodeBody(r, &req, true); err != nil {
			writeInvalidBody(w, err)
			return
		}

		result, err := runner.Run(r.Context(), optimizing.RunRequest{
			CampaignIDs: req.CampaignIDs,
			Days:        req.Days,
		})
		if err != nil {
			logrus.WithError(err).Error("handler: optimization failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to optimize campaigns", err.Error())
			return
		}

		if result.Report == nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"success":           true,
				"message":           "No active campaigns found",
				"campaignsAnalyzed": 0,
				"optimizations":     []domain.CampaignOptimization{},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":           true,
			"reportId":          result.Report.ID,
			"campaignsAnalyzed": result.TotalCampaigns,
			"dateFrom":          result.Period.DateFrom,
			"dateTo":            result.Period.DateTo,
			"optimizations":     result.Optimizations,
			"summary":           result.Report.Summary,
		})
	})
}

// AutoOptimize roda sobre todas as campanhas ativas; days e minScore vêm da query string
func AutoOptimize(runner OptimizationRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", optimizing.DefaultLookbackDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be an integer", nil)
			return
		}
		minScore, err := queryInt(r, "minScore", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "minScore must be an integer", nil)
			return
		}

		result, err := runner.Run(r.Context(), optimizing.RunRequest{
			Days:     days,
			MinScore: float64(minScore),
		})
		if err != nil {
			logrus.WithError(err).Error("handler: auto optimization failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to auto-optimize campaigns", err.Error())
			return
		}

		if result.Report == nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"success":           true,
				"message":           "No active campaigns to optimize",
				"campaignsAnalyzed": 0,
			})
			return
		}

		summary := autoOptimizeSummary{
			Total:        result.TotalCampaigns,
			Analyzed:     len(result.Optimizations),
			AverageScore: result.Report.Summary.AverageScore,
			LowScore:     result.Report.Summary.LowScoreCount,
			HighScore:    result.Report.Summary.HighScoreCount,
		}

		logrus.WithFields(logrus.Fields{
			"report_id":     result.Report.ID,
			"total":         summary.Total,
			"analyzed":      summary.Analyzed,
			"average_score": summary.AverageScore,
		}).Info("handler: auto optimization finished")

		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"reportId":      result.Report.ID,
			"timestamp":     time.Now().UTC(),
			"summary":       summary,
			"period":        periodWithDays{DateFrom: result.Period.DateFrom, DateTo: result.Period.DateTo, Days: result.Days},
			"optimizations": result.Optimizations,
		})
	})
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
