package applying

import (
	"testing"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		change   domain.ChangeRequest
		expected []string
	}{
		{
			name:     "lista no valor",
			change:   domain.ChangeRequest{Value: domain.NewChangeValue([]any{" автоматизация ", "внедрение ИИ", ""})},
			expected: []string{"автоматизация", "внедрение ИИ"},
		},
		{
			name:     "texto delimitado no valor",
			change:   domain.ChangeRequest{Value: domain.NewChangeValue("автоматизация; ИИ интеграция\nCRM，чат-бот")},
			expected: []string{"автоматизация", "ИИ интеграция", "CRM", "чат-бот"},
		},
		{
			name:     "prefixo explícito na ação",
			change:   domain.ChangeRequest{Action: "Добавить ключевые слова: автоматизация бизнеса, внедрение ИИ"},
			expected: []string{"автоматизация бизнеса", "внедрение ИИ"},
		},
		{
			name:     "frases entre aspas depois de 'связанные с'",
			change:   domain.ChangeRequest{Action: "Расширить семантику за счет запросов, связанные с 'автоматизацией бизнеса', 'интеграцией ИИ'"},
			expected: []string{"автоматизацией бизнеса", "интеграцией ИИ"},
		},
		{
			name:     "qualquer frase entre aspas",
			change:   domain.ChangeRequest{Action: `Проверить запрос "ремонт квартир" на релевантность`},
			expected: []string{"ремонт квартир"},
		},
		{
			name:     "texto sem aspas depois de 'например' não vira palavra-chave",
			change:   domain.ChangeRequest{Action: "Расширить семантику, например добавить больше целевых запросов"},
			expected: []string{},
		},
		{
			name:     "texto sem aspas depois de 'такие как' com dois-pontos",
			change:   domain.ChangeRequest{Action: "Добавить запросы, такие как: автоматизация бизнеса"},
			expected: []string{},
		},
		{
			name:     "nada extraível",
			change:   domain.ChangeRequest{Action: "Улучшить семантическое ядро"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractKeywords(tt.change)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractNegativeKeywords(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		expected []string
	}{
		{name: "минус-слова com dois-pontos", action: "Добавить минус-слова: обувь, ремонт", expected: []string{"обувь", "ремонт"}},
		{name: "негативные ключевые слова", action: "Добавить негативные ключевые слова: вакансии", expected: []string{"вакансии"}},
		{name: "exemplos depois de например", action: "Исключить нецелевые запросы, например: бесплатно, скачать", expected: []string{"бесплатно", "скачать"}},
		{name: "texto sem aspas depois de например sem dois-pontos", action: "Сократить показы, например исключить нерелевантные площадки", expected: []string{}},
		{name: "aspas angulares", action: "Исключить запросы «своими руками» и «бесплатно»", expected: []string{"своими руками", "бесплатно"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractNegativeKeywords(domain.ChangeRequest{Action: tt.action})
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name     string
		change   domain.ChangeRequest
		expected float64
		ok       bool
	}{
		{name: "número no valor", change: domain.ChangeRequest{Value: domain.NewChangeValue(float64(150))}, expected: 150, ok: true},
		{name: "texto numérico com vírgula", change: domain.ChangeRequest{Value: domain.NewChangeValue("250,5")}, expected: 250.5, ok: true},
		{name: "valor citado na ação", change: domain.ChangeRequest{Action: "Увеличить дневной бюджет до 1 500 руб"}, expected: 1500, ok: true},
		{name: "símbolo do rublo", change: domain.ChangeRequest{Action: "Поднять бюджет до 700₽ в день"}, expected: 700, ok: true},
		{name: "sem valor", change: domain.ChangeRequest{Action: "Оптимизировать бюджет"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractBudget(tt.change)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractAdTexts(t *testing.T) {
	t.Run("valor em lista", func(t *testing.T) {
		texts := extractAdTexts(domain.ChangeRequest{
			Value: domain.NewChangeValue([]any{"Короткий текст для теста объявления номер один", "short"}),
		})
		assert.Equal(t, []string{"Короткий текст для теста объявления номер один"}, texts)
	})

	t.Run("ação com rótulo, frases e 'или'", func(t *testing.T) {
		texts := extractAdTexts(domain.ChangeRequest{
			Action: "Создать объявления: Автоматизация бизнеса под ключ. Внедрим ИИ за 2 недели или: Аудит процессов бесплатно",
		})
		assert.Equal(t, []string{
			"Автоматизация бизнеса под ключ",
			"Внедрим ИИ за 2 недели",
			"Аудит процессов бесплатно",
		}, texts)
	})

	t.Run("no máximo cinco textos", func(t *testing.T) {
		texts := extractAdTexts(domain.ChangeRequest{
			Value: domain.NewChangeValue([]any{
				"Первый текст объявления", "Второй текст объявления", "Третий текст объявления",
				"Четвертый текст объявления", "Пятый текст объявления", "Шестой текст объявления",
			}),
		})
		assert.Len(t, texts, maxAdsPerChange)
	})
}
