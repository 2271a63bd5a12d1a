package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/grifun/direct-optimizer-api/internal/usecases/campaigning"
	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("handler: failed to encode response")
	}
}

// decodeBody aceita corpo vazio quando allowEmpty é verdadeiro; JSON malformado é sempre erro
func decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}

func writeInvalidBody(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", err.Error())
}

// writeCampaignError traduz CampaignError para o código da API; outros erros viram 500
func writeCampaignError(w http.ResponseWriter, err error, message string) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		if apiErrors.StatusFor(campaignErr.Code) >= http.StatusInternalServerError {
			apiErrors.WriteError(w, campaignErr.Code, message, campaignErr.Error())
			return
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, err.Error())
}
