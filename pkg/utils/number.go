package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatDecimal escreve o valor com até duas casas, sem zeros à direita (150, 150.5)
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', -1, 64)
}

// FormatThousands agrupa os milhares com espaço não separável, como no locale ru-RU
func FormatThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteString("\u00a0")
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
