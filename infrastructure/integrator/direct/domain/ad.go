package directdomain

type Ad struct {
	ID        int64   `json:"Id"`
	AdGroupID int64   `json:"AdGroupId"`
	Type      string  `json:"Type"`
	State     string  `json:"State"`
	TextAd    *TextAd `json:"TextAd,omitempty"`
}

type TextAd struct {
	Title          string `json:"Title"`
	Text           string `json:"Text"`
	Href           string `json:"Href,omitempty"`
	Mobile         string `json:"Mobile,omitempty"`
	DisplayURLPath string `json:"DisplayUrlPath,omitempty"`
}

type AdsSelectionCriteria struct {
	CampaignIDs []int64 `json:"CampaignIds,omitempty"`
	AdGroupIDs  []int64 `json:"AdGroupIds,omitempty"`
}

type GetAdsParams struct {
	SelectionCriteria AdsSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string             `json:"FieldNames"`
	TextAdFieldNames  []string             `json:"TextAdFieldNames,omitempty"`
}

type GetAdsResult struct {
	Ads []Ad `json:"Ads"`
}

type AdAddItem struct {
	AdGroupID int64   `json:"AdGroupId"`
	TextAd    *TextAd `json:"TextAd,omitempty"`
}

type AddAdsParams struct {
	Ads []AdAddItem `json:"Ads"`
}

type ModerateAdsParams struct {
	SelectionCriteria IDsCriteria `json:"SelectionCriteria"`
}
