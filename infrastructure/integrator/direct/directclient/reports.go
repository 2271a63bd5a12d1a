package directclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const statsColumns = 6

// GetCampaignPerformanceReport solicita o relatório de desempenho em TSV para o período informado
func (c *DirectClient) GetCampaignPerformanceReport(ctx context.Context, campaignIDs []int64, dateFrom, dateTo string) (string, error) {
	reportName, err := c.reportName()
	if err != nil {
		return "", err
	}

	payload := directdomain.ReportRequest{
		Params: directdomain.ReportDefinition{
			SelectionCriteria: directdomain.ReportSelectionCriteria{
				CampaignIDs: campaignIDs,
				DateFrom:    dateFrom,
				DateTo:      dateTo,
			},
			FieldNames:      directdomain.CampaignPerformanceFieldNames,
			ReportName:      reportName,
			ReportType:      directdomain.ReportTypeCampaignPerformance,
			DateRangeType:   directdomain.DateRangeCustom,
			Format:          directdomain.ReportFormatTSV,
			IncludeVAT:      "YES",
			IncludeDiscount: "NO",
		},
	}

	status, data, err := c.post(ctx, "reports", payload, map[string]string{
		"processingMode":      "auto",
		"returnMoneyInMicros": "false",
		"skipReportHeader":    "true",
		"skipReportSummary":   "true",
	})
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK:
		return string(data), nil
	case http.StatusCreated, http.StatusAccepted:
		logrus.WithFields(logrus.Fields{
			"report_name": reportName,
			"status":      status,
		}).Info("direct: report queued for offline generation")
		return "", ErrReportNotReady
	}

	var response directdomain.Response[struct{}]
	if jsonErr := json.Unmarshal(data, &response); jsonErr == nil && response.Error != nil {
		return "", errors.WithStack(response.Error)
	}

	return "", errors.Errorf("direct: reports returned status %d: %s", status, truncate(string(data), 300))
}

// reportName precisa ser único por conta, senão a plataforma devolve o relatório anterior
func (c *DirectClient) reportName() (string, error) {
	suffix, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "direct: failed to generate report name")
	}

	return fmt.Sprintf("%s %s %s", c.Cfg.Direct.ReportNamespace, time.Now().Format("20060102150405"), suffix), nil
}

// ParseStatsTSV converte o relatório TSV (primeira linha é o cabeçalho) em estatísticas por campanha.
// Linhas com menos de seis colunas são ignoradas e campos não numéricos viram zero.
func ParseStatsTSV(tsv string) []domain.CampaignStats {
	lines := make([]string, 0)
	for _, line := range strings.Split(tsv, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) <= 1 {
		return []domain.CampaignStats{}
	}

	stats := make([]domain.CampaignStats, 0, len(lines)-1)
	for _, line := range lines[1:] {
		columns := strings.Split(line, "\t")
		if len(columns) < statsColumns {
			continue
		}

		stats = append(stats, domain.CampaignStats{
			CampaignID:  parseInt(columns[0]),
			Impressions: parseInt(columns[1]),
			Clicks:      parseInt(columns[2]),
			Cost:        parseFloat(columns[3]),
			CTR:         parseFloat(columns[4]),
			AvgCPC:      parseFloat(columns[5]),
		})
	}

	return stats
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return int64(parseFloat(s))
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
