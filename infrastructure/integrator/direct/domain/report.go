package directdomain

const (
	ReportTypeCampaignPerformance = "CAMPAIGN_PERFORMANCE_REPORT"
	DateRangeCustom               = "CUSTOM_DATE"
	ReportFormatTSV               = "TSV"
)

var CampaignPerformanceFieldNames = []string{
	"CampaignId", "Impressions", "Clicks", "Cost", "Ctr", "AvgCpc",
}

type ReportSelectionCriteria struct {
	CampaignIDs []int64 `json:"CampaignIds,omitempty"`
	DateFrom    string  `json:"DateFrom"`
	DateTo      string  `json:"DateTo"`
}

type ReportDefinition struct {
	SelectionCriteria ReportSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string                `json:"FieldNames"`
	ReportName        string                  `json:"ReportName"`
	ReportType        string                  `json:"ReportType"`
	DateRangeType     string                  `json:"DateRangeType"`
	Format            string                  `json:"Format"`
	IncludeVAT        string                  `json:"IncludeVAT"`
	IncludeDiscount   string                  `json:"IncludeDiscount"`
}

type ReportRequest struct {
	Params ReportDefinition `json:"params"`
}
