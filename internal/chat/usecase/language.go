package usecase

import (
	"regexp"
	"strings"

	"advisor-edge/internal/chat"
)

var (
	englishWords = regexp.MustCompile(`\b(the|and|with|your|project|book|free|strategy|call|we|you|can)\b`)
	frenchWords  = regexp.MustCompile(`\b(le|la|les|de|des|vous|nous|projet|consultation|gratuite|strategie|appel|avec|pour)\b`)

	ctaSentencePattern = map[chat.Locale]*regexp.Regexp{
		chat.LocaleEN: regexp.MustCompile(`(?i)\b(book|schedule|contact us|let us discuss|strategy call)\b`),
		chat.LocaleFR: regexp.MustCompile(`(?i)\b(r[eé]servez|reservez|contactez|discutons|parlons|consultation)\b`),
	}
)

// isLikelyWrongLanguage counts common function words of each language. Text is
// wrong when the other language has at least 3 hits and leads by more than 1.
func isLikelyWrongLanguage(text string, locale chat.Locale) bool {
	lower := " " + strings.ToLower(text) + " "
	en := len(englishWords.FindAllStringIndex(lower, -1))
	fr := len(frenchWords.FindAllStringIndex(lower, -1))

	if locale == chat.LocaleFR {
		return en >= 3 && en > fr+1
	}
	return fr >= 3 && fr > en+1
}

func isCtaSentence(sentence string, locale chat.Locale) bool {
	p, ok := ctaSentencePattern[locale]
	if !ok {
		p = ctaSentencePattern[chat.LocaleEN]
	}
	return p.MatchString(sentence)
}
