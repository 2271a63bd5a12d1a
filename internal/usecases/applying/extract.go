package applying

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/grifun/direct-optimizer-api/internal/domain"
)

const (
	minAdTextLength = 10
	maxAdsPerChange = 5
)

var (
	listDelimiters = regexp.MustCompile(`[,;，；\n]`)
	quotedPhrase   = regexp.MustCompile(`["'«“„]([^"'«»“”„]+)["'»”“]`)
	quoteChars     = regexp.MustCompile(`["'«»“”„]`)

	keywordPatterns = []actionPattern{
		{re: regexp.MustCompile(`(?i)(?:добавить\s+)?(?:ключевые\s+(?:слова|фразы|запросы)|слова|фразы|добавить)\s*[:：]\s*(.+)`)},
		{re: regexp.MustCompile(`(?i)(?:связанные\s+с|такие\s+как|например)\s*[:：]?\s*(.+)`), quotedOnly: true},
	}

	negativePatterns = []actionPattern{
		{re: regexp.MustCompile(`(?i)(?:добавить\s+)?(?:минус[\s-]*(?:слова|фразы)|негативные\s+(?:ключевые\s+)?слова)\s*[:：]\s*(.+)`)},
		{re: regexp.MustCompile(`(?i)добавить\s*[:：]\s*(.+)`)},
		{re: regexp.MustCompile(`(?i)(?:такие\s+как|например)\s*[:：]\s*(.+)`)},
		{re: regexp.MustCompile(`(?i)(?:такие\s+как|например)\s+(.+)`), quotedOnly: true},
	}

	budgetInAction = regexp.MustCompile(`(?i)(\d[\d\s\x{00a0}]*(?:[.,]\d+)?)\s*(?:руб|₽|р\.)`)

	adTextLabel    = regexp.MustCompile(`(?i)(?:создать|текст|объявлени)[^:：]*[:：]\s*(.+)`)
	adTextSplitter = regexp.MustCompile(`(?i)[.!?\n]+|\s+или:?\s+`)
)

// actionPattern captura o trecho da ação com os termos; com quotedOnly só valem frases entre aspas
type actionPattern struct {
	re         *regexp.Regexp
	quotedOnly bool
}

// splitList quebra o texto pelos delimitadores de lista e remove aspas
func splitList(text string) []string {
	parts := listDelimiters.Split(text, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(quoteChars.ReplaceAllString(p, ""))
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}

// listFromValue aceita array ou texto delimitado
func listFromValue(value *domain.ChangeValue) []string {
	if value == nil {
		return nil
	}

	items, ok := value.Strings()
	if !ok {
		return nil
	}

	if value.IsList() {
		out := make([]string, 0, len(items))
		for _, it := range items {
			if it = strings.TrimSpace(it); it != "" {
				out = append(out, it)
			}
		}
		return out
	}

	if len(items) == 0 {
		return nil
	}
	return splitList(items[0])
}

// extractFromAction aplica os padrões em ordem e para no primeiro que produzir algum termo.
// Por último procura frases entre aspas.
func extractFromAction(action string, patterns []actionPattern) []string {
	for _, pattern := range patterns {
		m := pattern.re.FindStringSubmatch(action)
		if m == nil {
			continue
		}

		text := m[1]
		if quoted := quotedItems(text); len(quoted) > 0 {
			return quoted
		}
		if pattern.quotedOnly {
			continue
		}
		if items := splitList(text); len(items) > 0 {
			return items
		}
	}

	return quotedItems(action)
}

func quotedItems(text string) []string {
	matches := quotedPhrase.FindAllStringSubmatch(text, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, splitList(m[1])...)
	}
	return items
}

func extractKeywords(change domain.ChangeRequest) []string {
	if items := listFromValue(change.Value); len(items) > 0 {
		return items
	}
	return extractFromAction(change.Action, keywordPatterns)
}

func extractNegativeKeywords(change domain.ChangeRequest) []string {
	if items := listFromValue(change.Value); len(items) > 0 {
		return items
	}
	return extractFromAction(change.Action, negativePatterns)
}

// extractBudget usa o valor estruturado e, na falta dele, o valor em rublos citado na ação
func extractBudget(change domain.ChangeRequest) (float64, bool) {
	if n, ok := change.Value.Number(); ok {
		return n, true
	}

	m := budgetInAction.FindStringSubmatch(change.Action)
	if m == nil {
		return 0, false
	}

	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0':
			return -1
		case ',':
			return '.'
		}
		return r
	}, m[1])

	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractAdTexts devolve até cinco textos candidatos, descartando fragmentos curtos
func extractAdTexts(change domain.ChangeRequest) []string {
	var texts []string

	if change.Value != nil {
		if items, ok := change.Value.Strings(); ok {
			texts = items
		}
	}

	if len(texts) == 0 {
		source := change.Action
		if m := adTextLabel.FindStringSubmatch(source); m != nil {
			source = m[1]
		}
		texts = adTextSplitter.Split(source, -1)
	}

	out := make([]string, 0, maxAdsPerChange)
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if utf8.RuneCountInString(t) < minAdTextLength {
			continue
		}
		out = append(out, t)
		if len(out) == maxAdsPerChange {
			break
		}
	}

	return out
}
