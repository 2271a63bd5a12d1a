package domain

import jsoniter "github.com/json-iterator/go"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ChangeRequest é uma mudança sugerida enviada de volta para aplicação
type ChangeRequest struct {
	Type   ChangeType   `json:"type"`
	Action string       `json:"action"`
	Value  *ChangeValue `json:"value,omitempty"`
}

type ApplyChangesRequest struct {
	CampaignID int64           `json:"campaignId"`
	Changes    []ChangeRequest `json:"changes"`
	Confirm    bool            `json:"confirm"`
}

type ChangeResult struct {
	Type    ChangeType `json:"type"`
	Success bool       `json:"success"`
	Message string     `json:"message"`
}

type ApplyChangesResult struct {
	Success    bool           `json:"success"`
	CampaignID int64          `json:"campaignId"`
	Applied    int            `json:"applied"`
	Total      int            `json:"total"`
	Results    []ChangeResult `json:"results"`
}

type ChangePreviewItem struct {
	Type   ChangeType `json:"type"`
	Action string     `json:"action"`
}

type ChangesPreview struct {
	CampaignID   int64               `json:"campaignId"`
	ChangesCount int                 `json:"changesCount"`
	Changes      []ChangePreviewItem `json:"changes"`
}
