package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Limites do orçamento diário aceitos pela plataforma, em copeques
const (
	MinDailyBudgetMinor int64 = 300
	MaxDailyBudgetMinor int64 = 1_000_000_000
)

var (
	ErrDailyBudgetOutOfRange = errors.New("daily budget out of range")
	ErrDailyBudgetTooSmall   = fmt.Errorf("%w: below minimum", ErrDailyBudgetOutOfRange)
	ErrDailyBudgetTooLarge   = fmt.Errorf("%w: above maximum", ErrDailyBudgetOutOfRange)
	ErrDailyBudgetNotFinite  = errors.New("daily budget is not a finite number")
)

// ToMinorUnits converte rublos em copeques arredondando para o copeque mais próximo
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// ValidateDailyBudget rejeita valores fora do intervalo antes de qualquer chamada à plataforma
func ValidateDailyBudget(minor int64) error {
	if minor < MinDailyBudgetMinor || minor > MaxDailyBudgetMinor {
		return fmt.Errorf("%w: %.2f руб (допустимо от %.0f до %.0f руб)",
			ErrDailyBudgetOutOfRange,
			FromMinorUnits(minor),
			FromMinorUnits(MinDailyBudgetMinor),
			FromMinorUnits(MaxDailyBudgetMinor),
		)
	}
	return nil
}

// DailyBudgetMinor converte o orçamento em rublos para copeques já validando o intervalo.
// O limite superior é verificado antes da conversão para int64.
func DailyBudgetMinor(major float64) (int64, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return 0, ErrDailyBudgetNotFinite
	}
	if major*100 >= float64(MaxDailyBudgetMinor)+0.5 {
		return 0, fmt.Errorf("%w: %s руб", ErrDailyBudgetTooLarge, strconv.FormatFloat(major, 'g', -1, 64))
	}

	minor := ToMinorUnits(major)
	if minor < MinDailyBudgetMinor {
		return 0, fmt.Errorf("%w: %.2f руб", ErrDailyBudgetTooSmall, FromMinorUnits(minor))
	}
	return minor, nil
}
