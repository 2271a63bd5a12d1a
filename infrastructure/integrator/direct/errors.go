package direct

import "github.com/pkg/errors"

var (
	ErrCampaignNotFound       = errors.New("Кампания не найдена")
	ErrNoAdGroups             = errors.New("В кампании нет групп объявлений. Создайте группу объявлений вручную.")
	ErrAdGroupNotInCampaign   = errors.New("Группа объявлений не принадлежит кампании")
	ErrNoValidKeywords        = errors.New("Нет валидных ключевых слов после очистки")
	ErrNoValidNegativeKeyword = errors.New("Нет валидных минус-слов после очистки")
)
