package handler

import (
	"net/http"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const confirmationRequiredMessage = `Требуется подтверждение. Добавьте "confirm": true в запрос`

// ApplyChanges sem "confirm": true só devolve a prévia e não chama a plataforma
func ApplyChanges(service ChangeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ApplyChangesRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeInvalidBody(w, err)
			return
		}

		if req.CampaignID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaignId is required", nil)
			return
		}
		if len(req.Changes) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "changes array is required", nil)
			return
		}

		if !req.Confirm {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": false,
				"message": confirmationRequiredMessage,
				"preview": service.Preview(req),
			})
			return
		}

		result := service.Apply(r.Context(), req)

		logrus.WithFields(logrus.Fields{
			"campaign_id": req.CampaignID,
			"applied":     result.Applied,
			"total":       result.Total,
		}).Info("handler: changes applied")

		writeJSON(w, http.StatusOK, result)
	})
}
