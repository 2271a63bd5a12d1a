package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type ChangeType string

type Priority string

type OptimizationOutcome string

const (
	ChangeTypeBudget    ChangeType = "budget"
	ChangeTypeKeywords  ChangeType = "keywords"
	ChangeTypeAdText    ChangeType = "ad_text"
	ChangeTypeTargeting ChangeType = "targeting"
	ChangeTypeBid       ChangeType = "bid"
	ChangeTypeNegative  ChangeType = "negative"

	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	OutcomeOK       OptimizationOutcome = "ok"
	OutcomeDegraded OptimizationOutcome = "degraded"
)

func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeTypeBudget, ChangeTypeKeywords, ChangeTypeAdText, ChangeTypeTargeting, ChangeTypeBid, ChangeTypeNegative:
		return true
	}
	return false
}

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ChangeValue carrega o parâmetro estruturado de uma mudança: número, texto ou lista de textos.
type ChangeValue struct {
	raw any
}

func NewChangeValue(v any) *ChangeValue {
	if v == nil {
		return nil
	}
	return &ChangeValue{raw: v}
}

func (v *ChangeValue) Raw() any {
	if v == nil {
		return nil
	}
	return v.raw
}

// Number aceita números e textos numéricos ("150", "150,5")
func (v *ChangeValue) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := v.raw.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", "."), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Strings devolve a lista quando o valor é um array, ou o texto quando é uma string
func (v *ChangeValue) Strings() ([]string, bool) {
	if v == nil {
		return nil, false
	}
	switch s := v.raw.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			switch it := item.(type) {
			case string:
				out = append(out, it)
			case float64:
				out = append(out, strconv.FormatFloat(it, 'f', -1, 64))
			}
		}
		return out, true
	case string:
		return []string{s}, true
	}
	return nil, false
}

func (v *ChangeValue) IsList() bool {
	if v == nil {
		return false
	}
	switch v.raw.(type) {
	case []any, []string:
		return true
	}
	return false
}

func (v ChangeValue) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(v.raw)
}

func (v *ChangeValue) UnmarshalJSON(data []byte) error {
	return jsonAPI.Unmarshal(data, &v.raw)
}

func (v *ChangeValue) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v.raw)
}

type SuggestedChange struct {
	Type     ChangeType   `json:"type"`
	Action   string       `json:"action"`
	Reason   string       `json:"reason"`
	Priority Priority     `json:"priority"`
	Value    *ChangeValue `json:"value,omitempty"`
}

// CampaignOptimization é o resultado da análise de uma campanha. Outcome indica se veio do modelo ou do fallback.
type CampaignOptimization struct {
	CampaignID       int64               `json:"campaignId"`
	CampaignName     string              `json:"campaignName"`
	Score            float64             `json:"score"`
	Summary          string              `json:"summary"`
	Recommendations  []string            `json:"recommendations"`
	SuggestedChanges []SuggestedChange   `json:"suggestedChanges"`
	Outcome          OptimizationOutcome `json:"outcome,omitempty"`
	DegradedReason   string              `json:"degradedReason,omitempty"`
}

func (o CampaignOptimization) IsDegraded() bool {
	return o.Outcome == OutcomeDegraded
}

type ReportSummary struct {
	AverageScore         float64 `json:"averageScore"`
	LowScoreCount        int     `json:"lowScoreCount"`
	HighScoreCount       int     `json:"highScoreCount"`
	TotalRecommendations int     `json:"totalRecommendations"`
	TotalChanges         int     `json:"totalChanges"`
}

const (
	LowScoreThreshold  = 50
	HighScoreThreshold = 70
)

func SummarizeOptimizations(optimizations []CampaignOptimization) ReportSummary {
	summary := ReportSummary{}
	if len(optimizations) == 0 {
		return summary
	}

	var total float64
	for _, o := range optimizations {
		total += o.Score
		if o.Score < LowScoreThreshold {
			summary.LowScoreCount++
		}
		if o.Score >= HighScoreThreshold {
			summary.HighScoreCount++
		}
		summary.TotalRecommendations += len(o.Recommendations)
		summary.TotalChanges += len(o.SuggestedChanges)
	}
	summary.AverageScore = total / float64(len(optimizations))

	return summary
}

type OptimizationReport struct {
	ID                string                 `json:"id"`
	Timestamp         time.Time              `json:"timestamp"`
	DateFrom          string                 `json:"dateFrom"`
	DateTo            string                 `json:"dateTo"`
	CampaignsAnalyzed int                    `json:"campaignsAnalyzed"`
	Optimizations     []CampaignOptimization `json:"optimizations"`
	Summary           ReportSummary          `json:"summary"`
}

// ReportListItem é a forma resumida usada na listagem de relatórios
type ReportListItem struct {
	ID                string        `json:"id"`
	Timestamp         time.Time     `json:"timestamp"`
	DateFrom          string        `json:"dateFrom"`
	DateTo            string        `json:"dateTo"`
	CampaignsAnalyzed int           `json:"campaignsAnalyzed"`
	Summary           ReportSummary `json:"summary"`
}

func (r OptimizationReport) ListItem() ReportListItem {
	return ReportListItem{
		ID:                r.ID,
		Timestamp:         r.Timestamp,
		DateFrom:          r.DateFrom,
		DateTo:            r.DateTo,
		CampaignsAnalyzed: r.CampaignsAnalyzed,
		Summary:           r.Summary,
	}
}
