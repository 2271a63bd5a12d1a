package applying

import (
	"errors"
	"strings"
)

var (
	ErrBudgetValueMissing = errors.New("Значение бюджета не указано или неверно")
	ErrBudgetTooSmall     = errors.New("Бюджет слишком мал. Минимум: 3 руб/день (300 копеек)")
	ErrBudgetTooLarge     = errors.New("Бюджет слишком велик. Максимум: 10 000 000 руб/день")
	ErrKeywordsNotFound   = errors.New(`Ключевые слова не найдены. Укажите их в поле value или в описании в формате: "Добавить: слово1, слово2"`)
	ErrNegativesNotFound  = errors.New(`Минус-слова не найдены. Укажите их в поле value или в описании в формате: "Добавить минус-слова: слово1, слово2"`)
	ErrAdTextsNotFound    = errors.New("Тексты объявлений не найдены. Укажите тексты в поле value или в описании.")
	ErrNoAdsCreated       = errors.New("Не удалось создать ни одного объявления")
)

const (
	targetingNotSupportedMessage = "Автоматическая настройка таргетинга требует дополнительной настройки"
	manualStrategyMessage        = "❌ Для установки бюджета требуется ручная стратегия (MANUAL_CPC). Установите стратегию в интерфейсе Яндекс.Директа, затем повторите попытку. Техническая ошибка: "
)

// requiresManualStrategy reconhece as respostas da plataforma que recusam orçamento sob estratégia automática
func requiresManualStrategy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "manual strategies") || strings.Contains(msg, "Inconsistent object state")
}

func failureMessage(err error) string {
	return "❌ Ошибка: " + err.Error()
}
