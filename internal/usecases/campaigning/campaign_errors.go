package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignIDsRequired = errors.New("campaignIds array is required")
	ErrPeriodRequired      = errors.New("dateFrom and dateTo are required (YYYY-MM-DD format)")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPeriod       = errors.New("dateFrom must not be after dateTo")
	ErrCampaignNameMissing = errors.New("Campaign name is required")
	ErrInvalidCampaignType = errors.New("unsupported campaign type")
	ErrBudgetTooSmall      = errors.New("Daily budget must be at least 3 rubles (300 kopecks)")
	ErrBudgetTooLarge      = errors.New("Daily budget must be at most 10,000,000 rubles")

	// Erros da plataforma
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrDirectRequest    = errors.New("yandex direct request failed")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID int64  // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID int64, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
