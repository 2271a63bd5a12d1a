package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas YYYY-MM-DD. Texto vazio devolve a data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	dateStr = strings.TrimSpace(dateStr)
	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
