package optimizing

import (
	"fmt"
	"strings"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/pkg/utils"
)

const systemPrompt = `Ты — эксперт по оптимизации рекламных кампаний в Яндекс.Директе для B2B SaaS агентства по автоматизации и внедрению ИИ.

Твоя задача: проанализировать статистику кампании и предложить конкретные улучшения для увеличения конверсий и снижения стоимости лида.

КРИТЕРИИ ОПТИМИЗАЦИИ:
1. CTR (Click-Through Rate) — должен быть > 2% для поиска, > 0.5% для сетей
2. Конверсия — низкая конверсия при высоком трафике = проблема таргетинга
3. Стоимость клика — должна быть оптимальной для B2B ниши (обычно 50-200 руб)
4. Релевантность ключевых слов — убрать нерелевантные запросы
5. Текст объявлений — должен соответствовать поисковым запросам и целям
6. Бюджет — распределение должно быть оптимальным

ВАЖНО:
- НЕ предлагай установить бюджет, если в описании кампании указано, что бюджет уже установлен (даже если Amount = 0, но есть Mode или другие признаки бюджета).
- Если пользователь говорит, что бюджет установлен (например, "5 000 Р в неделю"), НЕ предлагай установить бюджет.
- Предлагай установить бюджет ТОЛЬКО если явно указано, что бюджет не установлен или равен 0 без Mode.

НАШ ПРОДУКТ:
- B2B SaaS агентство по автоматизации бизнеса с помощью ИИ
- Целевая аудитория: B2B компании, e-commerce, сервисные компании
- Услуги: AI-аудит, Proof of Concept, интеграции под ключ, поддержка 24/7
- Цель: привлечение качественных лидов с низкой стоимостью

ВЕРНИ СТРОГО JSON:
{
  "score": число от 0 до 100 (оценка эффективности кампании),
  "summary": "краткий анализ проблем и возможностей (2-3 предложения)",
  "recommendations": ["список конкретных рекомендаций"],
  "suggestedChanges": [
    {
      "type": "bid" | "keywords" | "negative" | "ad_text" | "budget" | "targeting",
      "action": "конкретное действие (например: 'Увеличить ставку на 20% для высокочастотных запросов')",
      "reason": "обоснование изменения",
      "priority": "high" | "medium" | "low",
      "value": параметр изменения
    }
  ]
}

ПОЛЕ "value" ОБЯЗАТЕЛЬНО для следующих типов:
- "budget": число — новый дневной бюджет в рублях (например: 500)
- "keywords" и "negative": массив строк — сами ключевые фразы или минус-слова (например: ["обувь", "ремонт"])
- "ad_text": массив строк — готовые тексты объявлений, каждый до 130 символов
Для остальных типов "value" можно не указывать.

ВАЖНО: Всегда возвращай валидный JSON, без дополнительных комментариев.`

// buildCampaignBrief descreve a campanha e o período para o modelo
func buildCampaignBrief(campaign domain.Campaign, stats *domain.CampaignStats) string {
	var b strings.Builder

	b.WriteString("Проанализируй кампанию Яндекс.Директа и предложи оптимизацию:\n\n")
	fmt.Fprintf(&b, "Название кампании: %s\n", campaign.Name)
	fmt.Fprintf(&b, "ID кампании: %d\n", campaign.ID)
	fmt.Fprintf(&b, "Статус: %s\n", campaign.Status)
	fmt.Fprintf(&b, "Состояние: %s\n", campaign.State)
	fmt.Fprintf(&b, "Бюджет: %s", describeBudget(campaign))
	if campaign.HasBudget() {
		b.WriteString(" (БЮДЖЕТ УЖЕ УСТАНОВЛЕН - НЕ ПРЕДЛАГАЙ ЕГО УСТАНОВИТЬ!)")
	}
	b.WriteString("\n\n")

	b.WriteString(describeStats(stats))
	b.WriteString("\n\n")

	b.WriteString(`Наш продукт: B2B SaaS агентство по автоматизации бизнеса с помощью ИИ.
Целевая аудитория: B2B компании, e-commerce, сервисные компании.
Услуги: AI-аудит, Proof of Concept, интеграции под ключ, поддержка 24/7.
Цель: привлечение качественных лидов с низкой стоимостью.

Предложи конкретные улучшения для:
1. Увеличения CTR
2. Снижения стоимости клика
3. Повышения конверсии
4. Оптимизации бюджета
5. Улучшения таргетинга`)

	return b.String()
}

func describeBudget(campaign domain.Campaign) string {
	switch {
	case campaign.DailyBudget != nil && campaign.DailyBudget.Amount > 0:
		return formatRubles(campaign.DailyBudget.Amount) + " руб/день"
	case campaign.WeeklyBudget != nil && campaign.WeeklyBudget.Amount > 0:
		return formatRubles(campaign.WeeklyBudget.Amount) + " руб/неделю"
	case campaign.DailyBudget != nil && campaign.DailyBudget.Mode != "":
		return fmt.Sprintf("установлен (режим: %s)", campaign.DailyBudget.Mode)
	case campaign.FundsMode != "":
		return fmt.Sprintf("установлен (режим: %s)", campaign.FundsMode)
	default:
		return "не установлен"
	}
}

func describeStats(stats *domain.CampaignStats) string {
	if stats == nil {
		return "Статистика недоступна (кампания новая или нет данных)"
	}

	var b strings.Builder
	b.WriteString("Статистика за период:\n")
	fmt.Fprintf(&b, "- Показы: %s\n", utils.FormatThousands(stats.Impressions))
	fmt.Fprintf(&b, "- Клики: %s\n", utils.FormatThousands(stats.Clicks))
	fmt.Fprintf(&b, "- CTR: %.2f%%\n", stats.CTR)
	fmt.Fprintf(&b, "- Стоимость: %.2f руб.\n", stats.Cost)
	fmt.Fprintf(&b, "- Средняя стоимость клика: %.2f руб.", stats.AvgCPC)
	if stats.Conversions != nil && *stats.Conversions > 0 {
		fmt.Fprintf(&b, "\n- Конверсии: %d", *stats.Conversions)
	}
	if stats.ConversionRate != nil && *stats.ConversionRate > 0 {
		fmt.Fprintf(&b, "\n- Конверсия: %.2f%%", *stats.ConversionRate)
	}

	return b.String()
}

func formatRubles(minor int64) string {
	return utils.FormatDecimal(domain.FromMinorUnits(minor))
}
