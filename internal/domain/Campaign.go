package domain

type CampaignState string

type CampaignStatus string

type CampaignType string

const (
	CampaignStateOn        CampaignState = "ON"
	CampaignStateOff       CampaignState = "OFF"
	CampaignStateSuspended CampaignState = "SUSPENDED"
	CampaignStateEnded     CampaignState = "ENDED"
	CampaignStateArchived  CampaignState = "ARCHIVED"

	CampaignStatusAccepted   CampaignStatus = "ACCEPTED"
	CampaignStatusDraft      CampaignStatus = "DRAFT"
	CampaignStatusModeration CampaignStatus = "MODERATION"
	CampaignStatusRejected   CampaignStatus = "REJECTED"

	CampaignTypeText        CampaignType = "TEXT_CAMPAIGN"
	CampaignTypeDynamicText CampaignType = "DYNAMIC_TEXT_CAMPAIGN"
	CampaignTypePerformance CampaignType = "PERFORMANCE"
)

const (
	BudgetModeDistributed = "DISTRIBUTED"
	BudgetModeStandard    = "STANDARD"

	BiddingStrategyManualCPC  = "MANUAL_CPC"
	BiddingStrategyAverageCPC = "AVERAGE_CPC"
	BiddingStrategyServingOff = "SERVING_OFF"
)

// Campaign é a visão de domínio de uma campanha do Direct. Valores monetários em copeques.
type Campaign struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Status       CampaignStatus      `json:"status"`
	State        CampaignState       `json:"state"`
	Type         CampaignType        `json:"type,omitempty"`
	StartDate    string              `json:"startDate,omitempty"`
	EndDate      string              `json:"endDate,omitempty"`
	DailyBudget  *DailyBudget        `json:"dailyBudget,omitempty"`
	WeeklyBudget *WeeklyBudget       `json:"weeklyBudget,omitempty"`
	FundsMode    string              `json:"fundsMode,omitempty"`
	Statistics   *CampaignStatistics `json:"statistics,omitempty"`
}

type DailyBudget struct {
	Amount int64  `json:"amount"`
	Mode   string `json:"mode,omitempty"`
}

type WeeklyBudget struct {
	Amount int64 `json:"amount"`
}

type CampaignStatistics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost,omitempty"`
}

// IsActive indica campanha ligada e aprovada na moderação
func (c Campaign) IsActive() bool {
	return c.State == CampaignStateOn && c.Status == CampaignStatusAccepted
}

// HasBudget indica se a campanha já possui algum limite de gasto configurado
func (c Campaign) HasBudget() bool {
	if c.DailyBudget != nil && (c.DailyBudget.Amount > 0 || c.DailyBudget.Mode != "") {
		return true
	}
	if c.WeeklyBudget != nil && c.WeeklyBudget.Amount > 0 {
		return true
	}
	return c.FundsMode != ""
}

type CampaignsSummary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Paused   int `json:"paused"`
	Archived int `json:"archived"`
}

type CampaignList struct {
	Campaigns []Campaign       `json:"campaigns"`
	Summary   CampaignsSummary `json:"summary"`
}

func SummarizeCampaigns(campaigns []Campaign) CampaignsSummary {
	summary := CampaignsSummary{Total: len(campaigns)}
	for _, c := range campaigns {
		switch {
		case c.IsActive():
			summary.Active++
		case c.State == CampaignStateOff:
			summary.Paused++
		case c.State == CampaignStateArchived:
			summary.Archived++
		}
	}
	return summary
}

// CreateCampaignRequest recebe o orçamento diário em rublos
type CreateCampaignRequest struct {
	Name        string       `json:"name"`
	Type        CampaignType `json:"type"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
	DailyBudget float64      `json:"dailyBudget,omitempty"`
}

// CampaignUpdate descreve uma alteração parcial. Campos vazios não são enviados.
type CampaignUpdate struct {
	Name            string
	State           CampaignState
	DailyBudget     *DailyBudget
	BiddingStrategy string
}

type CampaignDetails struct {
	Campaign Campaign  `json:"campaign"`
	AdGroups []AdGroup `json:"adGroups"`
	Keywords []Keyword `json:"keywords"`
	Ads      []Ad      `json:"ads"`
}

type AdGroup struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CampaignID int64  `json:"campaignId"`
}

type Keyword struct {
	ID          int64   `json:"id"`
	Keyword     string  `json:"keyword"`
	AdGroupID   int64   `json:"adGroupId"`
	Bid         float64 `json:"bid,omitempty"`
	Impressions int64   `json:"impressions,omitempty"`
	Clicks      int64   `json:"clicks,omitempty"`
}

type Ad struct {
	ID        int64  `json:"id"`
	AdGroupID int64  `json:"adGroupId"`
	Type      string `json:"type"`
	State     string `json:"state"`
	Title     string `json:"title,omitempty"`
	Text      string `json:"text,omitempty"`
}
