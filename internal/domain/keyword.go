package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxKeywordLength = 50

var (
	keywordDisallowedChars = regexp.MustCompile(`[^\w\sа-яёА-ЯЁ\-]`)
	keywordSpaces          = regexp.MustCompile(`\s+`)
)

// SanitizeKeywords remove caracteres não aceitos pela plataforma e descarta frases vazias ou longas demais
func SanitizeKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = keywordDisallowedChars.ReplaceAllString(strings.TrimSpace(kw), "")
		kw = strings.TrimSpace(keywordSpaces.ReplaceAllString(kw, " "))

		length := utf8.RuneCountInString(kw)
		if length == 0 || length > MaxKeywordLength {
			continue
		}
		cleaned = append(cleaned, kw)
	}
	return cleaned
}
