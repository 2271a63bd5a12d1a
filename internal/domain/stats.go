package domain

import "time"

// CampaignStats é uma linha do relatório de desempenho. Cost e AvgCPC em rublos, CTR em percentual.
type CampaignStats struct {
	CampaignID     int64    `json:"campaignId"`
	Impressions    int64    `json:"impressions"`
	Clicks         int64    `json:"clicks"`
	Cost           float64  `json:"cost"`
	CTR            float64  `json:"ctr"`
	AvgCPC         float64  `json:"avgCpc"`
	Conversions    *int64   `json:"conversions,omitempty"`
	ConversionRate *float64 `json:"conversionRate,omitempty"`
}

type StatsPeriod struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// LookbackPeriod devolve o intervalo [now-days, now] em datas do calendário
func LookbackPeriod(now time.Time, days int) StatsPeriod {
	return StatsPeriod{
		DateFrom: now.AddDate(0, 0, -days).Format(time.DateOnly),
		DateTo:   now.Format(time.DateOnly),
	}
}

func StatsByCampaign(stats []CampaignStats) map[int64]CampaignStats {
	byID := make(map[int64]CampaignStats, len(stats))
	for _, s := range stats {
		byID[s.CampaignID] = s
	}
	return byID
}
