package directdomain

type Campaign struct {
	ID           int64         `json:"Id"`
	Name         string        `json:"Name"`
	Status       string        `json:"Status"`
	State        string        `json:"State"`
	Type         string        `json:"Type,omitempty"`
	StartDate    string        `json:"StartDate,omitempty"`
	EndDate      *string       `json:"EndDate,omitempty"`
	DailyBudget  *DailyBudget  `json:"DailyBudget,omitempty"`
	WeeklyBudget *WeeklyBudget `json:"WeeklyBudget,omitempty"`
	Funds        *Funds        `json:"Funds,omitempty"`
	Statistics   *Statistics   `json:"Statistics,omitempty"`
}

type DailyBudget struct {
	Amount int64  `json:"Amount"`
	Mode   string `json:"Mode,omitempty"`
}

type WeeklyBudget struct {
	Amount int64 `json:"Amount"`
}

type Funds struct {
	Mode string `json:"Mode,omitempty"`
}

type Statistics struct {
	Impressions int64 `json:"Impressions"`
	Clicks      int64 `json:"Clicks"`
}

var CampaignFieldNames = []string{
	"Id", "Name", "Status", "State", "DailyBudget", "Statistics", "Type", "StartDate", "EndDate", "Funds",
}

type CampaignsSelectionCriteria struct {
	IDs []int64 `json:"Ids,omitempty"`
}

type GetCampaignsParams struct {
	SelectionCriteria CampaignsSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string                   `json:"FieldNames"`
}

type GetCampaignsResult struct {
	Campaigns []Campaign `json:"Campaigns"`
}

type BiddingStrategy struct {
	Search  *StrategyPlacement `json:"Search,omitempty"`
	Network *StrategyPlacement `json:"Network,omitempty"`
}

type StrategyPlacement struct {
	BiddingStrategyType string      `json:"BiddingStrategyType"`
	AverageCpc          *AverageCpc `json:"AverageCpc,omitempty"`
}

// AverageCpc em micro-unidades da moeda da conta
type AverageCpc struct {
	AverageCpc int64 `json:"AverageCpc"`
}

type TextCampaignSettings struct {
	BiddingStrategy BiddingStrategy `json:"BiddingStrategy"`
}

type PerformanceCampaignSettings struct {
	BiddingStrategy *BiddingStrategy `json:"BiddingStrategy,omitempty"`
}

type CampaignAddItem struct {
	Name                string                       `json:"Name"`
	StartDate           string                       `json:"StartDate"`
	EndDate             string                       `json:"EndDate,omitempty"`
	TextCampaign        *TextCampaignSettings        `json:"TextCampaign,omitempty"`
	DynamicTextCampaign *TextCampaignSettings        `json:"DynamicTextCampaign,omitempty"`
	PerformanceCampaign *PerformanceCampaignSettings `json:"PerformanceCampaign,omitempty"`
}

type AddCampaignsParams struct {
	Campaigns []CampaignAddItem `json:"Campaigns"`
}

type CampaignUpdateItem struct {
	ID                  int64                        `json:"Id"`
	Name                string                       `json:"Name,omitempty"`
	State               string                       `json:"State,omitempty"`
	DailyBudget         *DailyBudget                 `json:"DailyBudget,omitempty"`
	TextCampaign        *TextCampaignUpdateSettings  `json:"TextCampaign,omitempty"`
	DynamicTextCampaign *TextCampaignUpdateSettings  `json:"DynamicTextCampaign,omitempty"`
	PerformanceCampaign *PerformanceCampaignSettings `json:"PerformanceCampaign,omitempty"`
}

type TextCampaignUpdateSettings struct {
	BiddingStrategy *BiddingStrategy `json:"BiddingStrategy,omitempty"`
}

type UpdateCampaignsParams struct {
	Campaigns []CampaignUpdateItem `json:"Campaigns"`
}
