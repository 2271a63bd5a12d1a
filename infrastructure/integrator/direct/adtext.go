package direct

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Limites de texto de um anúncio de texto e imagem
const (
	MaxTitleLength       = 56
	MaxBodyRegularLength = 81
	MaxBodyNarrowLength  = 15

	minAdTextLength = 10
	minBodyLength   = 5
)

// narrowChars são contados em separado no limite do texto
const narrowChars = `!,.;:"`

var (
	ErrAdTextTooShort = errors.New("Текст объявления слишком короткий")
	ErrEmptyAdTitle   = errors.New("Заголовок объявления пуст после очистки")
	ErrEmptyAdBody    = errors.New("Описание объявления пусто после очистки")
)

var (
	adSpaces           = regexp.MustCompile(`\s+`)
	adSentenceBoundary = regexp.MustCompile(`[.!?]\s+`)
	adClauseBoundary   = regexp.MustCompile(`,\s+`)
	adDisallowedChars  = regexp.MustCompile(`[^\w\sа-яёА-ЯЁ\-.,!?():;"]`)
)

var connectiveWords = map[string]struct{}{
	"в": {}, "во": {}, "на": {}, "с": {}, "со": {}, "для": {}, "и": {}, "или": {}, "по": {}, "к": {},
	"от": {}, "до": {}, "из": {}, "за": {}, "о": {}, "об": {}, "а": {}, "но": {}, "что": {}, "как": {},
}

type AdCopy struct {
	Title string
	Text  string
}

// ComposeTextAd transforma um texto livre em título e descrição dentro dos limites da plataforma
func ComposeTextAd(text string) (AdCopy, error) {
	cleaned := normalizeAdText(text)
	if runeLen(cleaned) < minAdTextLength {
		return AdCopy{}, errors.Wrapf(ErrAdTextTooShort, "%d символов, минимум %d", runeLen(cleaned), minAdTextLength)
	}

	title, body := splitAdText(cleaned)
	if runeLen(body) < minBodyLength {
		rest := strings.TrimSpace(strings.TrimPrefix(cleaned, title))
		if runeLen(rest) >= minBodyLength {
			body = rest
		} else {
			body = cleaned
		}
	}

	title = fitTitle(sanitizeAdPart(title))
	body = fitBody(sanitizeAdPart(body))

	if title == "" {
		return AdCopy{}, ErrEmptyAdTitle
	}
	if body == "" {
		return AdCopy{}, ErrEmptyAdBody
	}

	return AdCopy{Title: title, Text: body}, nil
}

func normalizeAdText(s string) string {
	s = strings.NewReplacer("%", " процентов", "&", " и ", "<", "", ">", "").Replace(s)
	return strings.TrimSpace(adSpaces.ReplaceAllString(s, " "))
}

// splitAdText prefere fronteiras de frase, depois de oração, e só então divide por palavras
func splitAdText(text string) (string, string) {
	parts := splitNonEmpty(adSentenceBoundary, text)
	if len(parts) == 1 && runeLen(parts[0]) > MaxTitleLength {
		parts = splitNonEmpty(adClauseBoundary, text)
	}

	if len(parts) > 1 {
		return truncateWords(parts[0], MaxTitleLength), strings.Join(parts[1:], ". ")
	}

	return splitByWords(text)
}

func splitByWords(text string) (string, string) {
	words := strings.Fields(text)
	target := runeLen(text) / 2
	if target > MaxTitleLength {
		target = MaxTitleLength
	}

	taken := 0
	length := 0
	for i, w := range words {
		next := length + runeLen(w)
		if taken > 0 {
			next++
		}
		if next > MaxTitleLength {
			break
		}
		taken++
		length = next

		if length >= target && i < len(words)-1 && !isConnective(w) {
			break
		}
	}

	if taken == 0 {
		return truncateRunes(words[0], MaxTitleLength), strings.Join(words[1:], " ")
	}

	return strings.Join(words[:taken], " "), strings.Join(words[taken:], " ")
}

func isConnective(word string) bool {
	_, ok := connectiveWords[strings.ToLower(strings.Trim(word, narrowChars))]
	return ok
}

func sanitizeAdPart(s string) string {
	s = adDisallowedChars.ReplaceAllString(s, "")
	return strings.TrimSpace(adSpaces.ReplaceAllString(s, " "))
}

func fitTitle(s string) string {
	return strings.TrimRight(truncateWords(s, MaxTitleLength), " ,;:-")
}

// fitBody corta por palavras respeitando os dois limites, caindo para corte por caractere se preciso
func fitBody(s string) string {
	if fitsBody(s) {
		return s
	}

	var kept []string
	for _, w := range strings.Fields(s) {
		candidate := strings.Join(append(kept, w), " ")
		if !fitsBody(candidate) {
			break
		}
		kept = append(kept, w)
	}
	if len(kept) > 0 {
		return strings.TrimRight(strings.Join(kept, " "), " ,;:-")
	}

	var b strings.Builder
	regular, narrow := 0, 0
	for _, r := range s {
		if strings.ContainsRune(narrowChars, r) {
			if narrow+1 > MaxBodyNarrowLength {
				break
			}
			narrow++
		} else {
			if regular+1 > MaxBodyRegularLength {
				break
			}
			regular++
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func fitsBody(s string) bool {
	regular, narrow := countBodyChars(s)
	return regular <= MaxBodyRegularLength && narrow <= MaxBodyNarrowLength
}

func countBodyChars(s string) (regular, narrow int) {
	for _, r := range s {
		if strings.ContainsRune(narrowChars, r) {
			narrow++
		} else {
			regular++
		}
	}
	return regular, narrow
}

func truncateWords(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}

	words := strings.Fields(s)
	out := ""
	for _, w := range words {
		candidate := w
		if out != "" {
			candidate = out + " " + w
		}
		if runeLen(candidate) > max {
			break
		}
		out = candidate
	}
	if out == "" {
		return truncateRunes(s, max)
	}
	return out
}

func truncateRunes(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	var parts []string
	for _, p := range re.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func describeAdCopy(c AdCopy) string {
	regular, narrow := countBodyChars(c.Text)
	return fmt.Sprintf("title=%d body=%d/%d", runeLen(c.Title), regular, narrow)
}
