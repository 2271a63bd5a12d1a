package handler

import (
	"net/http"
	"strconv"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type statsRequest struct {
	CampaignIDs []int64 `json:"campaignIds"`
	DateFrom    string  `json:"dateFrom"`
	DateTo      string  `json:"dateTo"`
}

func ListCampaigns(service CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := service.ListCampaigns(r.Context())
		if err != nil {
			logrus.WithError(err).Error("handler: failed to list campaigns")
			writeCampaignError(w, err, "Failed to get campaigns")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"campaigns": list.Campaigns,
			"summary":   list.Summary,
		})
	})
}

func CreateCampaign(service CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCampaignRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeInvalidBody(w, err)
			return
		}

		campaignID, err := service.CreateCampaign(r.Context(), req)
		if err != nil {
			logrus.WithError(err).Error("handler: failed to create campaign")
			writeCampaignError(w, err, "Failed to create campaign")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"campaignId": campaignID,
			"message":    `Campaign "` + req.Name + `" created successfully`,
		})
	})
}

func GetCampaignDetails(service CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		campaignID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || campaignID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid campaign id", rawID)
			return
		}

		details, err := service.GetCampaignDetails(r.Context(), campaignID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("handler: failed to get campaign details")
			writeCampaignError(w, err, "Failed to get campaign")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"details": details,
		})
	})
}

func GetStats(service CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req statsRequest
		if err := decodeBody(r, &req, true); err != nil {
			writeInvalidBody(w, err)
			return
		}

		period := domain.StatsPeriod{DateFrom: req.DateFrom, DateTo: req.DateTo}
		stats, err := service.GetStats(r.Context(), req.CampaignIDs, period)
		if err != nil {
			logrus.WithError(err).Error("handler: failed to get campaign statistics")
			writeCampaignError(w, err, "Failed to get campaign statistics")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"stats":          stats,
			"period":         period,
			"campaignsCount": len(stats),
		})
	})
}
