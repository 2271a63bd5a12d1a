package directdomain

type AdGroup struct {
	ID               int64          `json:"Id"`
	Name             string         `json:"Name"`
	CampaignID       int64          `json:"CampaignId"`
	NegativeKeywords *ArrayOfString `json:"NegativeKeywords,omitempty"`
}

type AdGroupsSelectionCriteria struct {
	CampaignIDs []int64 `json:"CampaignIds,omitempty"`
	IDs         []int64 `json:"Ids,omitempty"`
}

type GetAdGroupsParams struct {
	SelectionCriteria AdGroupsSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string                  `json:"FieldNames"`
}

type GetAdGroupsResult struct {
	AdGroups []AdGroup `json:"AdGroups"`
}

type ArrayOfString struct {
	Items []string `json:"Items"`
}

type AdGroupUpdateItem struct {
	ID               int64          `json:"Id"`
	NegativeKeywords *ArrayOfString `json:"NegativeKeywords,omitempty"`
}

type UpdateAdGroupsParams struct {
	AdGroups []AdGroupUpdateItem `json:"AdGroups"`
}

type Keyword struct {
	ID               int64             `json:"Id"`
	Keyword          string            `json:"Keyword"`
	AdGroupID        int64             `json:"AdGroupId"`
	Bid              int64             `json:"Bid,omitempty"`
	StatisticsSearch *KeywordStatistic `json:"StatisticsSearch,omitempty"`
}

type KeywordStatistic struct {
	Impressions int64 `json:"Impressions"`
	Clicks      int64 `json:"Clicks"`
}

type KeywordsSelectionCriteria struct {
	CampaignIDs []int64 `json:"CampaignIds,omitempty"`
	AdGroupIDs  []int64 `json:"AdGroupIds,omitempty"`
}

type GetKeywordsParams struct {
	SelectionCriteria KeywordsSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string                  `json:"FieldNames"`
}

type GetKeywordsResult struct {
	Keywords []Keyword `json:"Keywords"`
}

// KeywordAddItem com Bid em micro-unidades
type KeywordAddItem struct {
	Keyword   string `json:"Keyword"`
	AdGroupID int64  `json:"AdGroupId"`
	Bid       int64  `json:"Bid,omitempty"`
}

type AddKeywordsParams struct {
	Keywords []KeywordAddItem `json:"Keywords"`
}
