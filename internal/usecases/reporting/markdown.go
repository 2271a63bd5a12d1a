package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/domain"
)

const reportDateLayout = "02.01.2006, 15:04:05"

var moscow = loadMoscow()

func loadMoscow() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// GenerateMarkdown renderiza o relatório em Markdown. Não tem efeitos colaterais.
func (s *Service) GenerateMarkdown(report *domain.OptimizationReport) string {
	return RenderMarkdown(report)
}

func RenderMarkdown(report *domain.OptimizationReport) string {
	var b strings.Builder

	b.WriteString("# 📊 Отчет об оптимизации кампаний Яндекс.Директа\n\n")
	fmt.Fprintf(&b, "**Дата создания:** %s\n", report.Timestamp.In(moscow).Format(reportDateLayout))
	fmt.Fprintf(&b, "**Период анализа:** %s - %s\n", report.DateFrom, report.DateTo)
	fmt.Fprintf(&b, "**Кампаний проанализировано:** %d\n\n", report.CampaignsAnalyzed)

	b.WriteString("## 📈 Сводка\n\n")
	fmt.Fprintf(&b, "- **Средний score:** %.1f/100\n", report.Summary.AverageScore)
	fmt.Fprintf(&b, "- **Кампаний с низким score (<%d):** %d\n", domain.LowScoreThreshold, report.Summary.LowScoreCount)
	fmt.Fprintf(&b, "- **Кампаний с высоким score (≥%d):** %d\n", domain.HighScoreThreshold, report.Summary.HighScoreCount)
	fmt.Fprintf(&b, "- **Всего рекомендаций:** %d\n", report.Summary.TotalRecommendations)
	fmt.Fprintf(&b, "- **Всего предложенных изменений:** %d\n\n", report.Summary.TotalChanges)

	b.WriteString("## 🎯 Детальный анализ кампаний\n\n")

	for _, opt := range report.Optimizations {
		fmt.Fprintf(&b, "### %s %s (ID: %d)\n\n", scoreEmoji(opt.Score), opt.CampaignName, opt.CampaignID)
		fmt.Fprintf(&b, "**Оценка эффективности:** %s/100\n\n", formatScore(opt.Score))
		fmt.Fprintf(&b, "**Анализ AI:** %s\n\n", opt.Summary)

		if opt.IsDegraded() {
			b.WriteString("> ⚠️ Автоматический анализ недоступен, показана базовая оценка.\n\n")
		}

		if len(opt.Recommendations) > 0 {
			b.WriteString("**Рекомендации:**\n")
			for i, rec := range opt.Recommendations {
				fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
			}
			b.WriteString("\n")
		}

		if len(opt.SuggestedChanges) > 0 {
			b.WriteString("**Предложенные изменения:**\n\n")
			for i, change := range opt.SuggestedChanges {
				fmt.Fprintf(&b, "%d. %s **%s** - %s\n", i+1, priorityEmoji(change.Priority), strings.ToUpper(string(change.Type)), change.Action)
				fmt.Fprintf(&b, "   *Причина:* %s\n", change.Reason)
				fmt.Fprintf(&b, "   *Приоритет:* %s\n\n", change.Priority)
			}
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}

func scoreEmoji(score float64) string {
	switch {
	case score >= domain.HighScoreThreshold:
		return "🟢"
	case score >= domain.LowScoreThreshold:
		return "🟡"
	default:
		return "🔴"
	}
}

func priorityEmoji(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "🔴"
	case domain.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
