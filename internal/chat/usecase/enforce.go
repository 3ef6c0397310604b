package usecase

import (
	"regexp"
	"strings"

	"advisor-edge/internal/chat"
)

var (
	outputLeakPattern = regexp.MustCompile(`(?i)\b(internal prompt|system prompt|hidden instructions|developer message|output rules|regles de sortie|you are the ai advisor)\b`)

	sentencePattern   = regexp.MustCompile(`[^.!?]+[.!?]?`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	trailingPunct     = regexp.MustCompile(`[,:;.!?]+$`)
	terminalPunct     = regexp.MustCompile(`[.!?]$`)
)

type cleanRule struct {
	re   *regexp.Regexp
	repl string
}

// Applied in order to raw model text before any check.
var cleanRules = []cleanRule{
	{regexp.MustCompile("`+"), ""},
	{regexp.MustCompile(`(?m)^[\s>\-•*]+`), ""},
	{regexp.MustCompile(`(?m)^#{1,6}\s*`), ""},
	{regexp.MustCompile(`(?m)^\d+[.)]\s+`), ""},
	{regexp.MustCompile(`\s[-*•]+\s+`), " "},
	{regexp.MustCompile(`\*+`), ""},
	{regexp.MustCompile(`__+`), ""},
	{regexp.MustCompile(`(?i)\b(?:point|item)\s*\d+\s*:\s*`), ""},
	{regexp.MustCompile(`(?i)\b(User|Utilisateur|Response|Reponse)\s*:`), ""},
}

func cleanModelText(raw string) string {
	text := raw
	for _, r := range cleanRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return collapseWhitespace(text)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func splitSentences(text string) []string {
	chunks := sentencePattern.FindAllString(text, -1)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if s := collapseWhitespace(c); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// trimWords keeps the first maxWords words and closes them with a period.
// Text within budget is returned unchanged.
func trimWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return trailingPunct.ReplaceAllString(strings.Join(words[:maxWords], " "), "") + "."
}

// fitWords truncates body to leave room for cta, keeps at most two body
// sentences, and caps the joined result at maxWords.
func fitWords(body, cta string, maxWords int) string {
	body = trimWords(body, max(minBodyWords, maxWords-countWords(cta)))

	safe := splitSentences(body)
	if len(safe) > 2 {
		safe = safe[:2]
	}
	for i, s := range safe {
		safe[i] = ensureSentencePunctuation(s)
	}

	return trimWords(collapseWhitespace(strings.Join(safe, " ")+" "+cta), maxWords)
}

func ensureSentencePunctuation(text string) string {
	if terminalPunct.MatchString(text) {
		return text
	}
	return text + "."
}

// selectBody returns up to two non-CTA sentences, or the first sentence when
// every sentence reads as a CTA.
func selectBody(sentences []string, locale chat.Locale) string {
	body := make([]string, 0, 2)
	for _, s := range sentences {
		if len(body) == 2 {
			break
		}
		if !isCtaSentence(s, locale) {
			body = append(body, s)
		}
	}
	if len(body) == 0 && len(sentences) > 0 {
		body = append(body, sentences[0])
	}
	return strings.TrimSpace(strings.Join(body, " "))
}

// enforceOutputRules turns raw model text into a short plain-text reply in the
// requested locale ending with exactly one CTA. Leaked instructions become the
// refusal; wrong-language or empty output becomes the fallback. Both gates run
// again on the assembled result.
func enforceOutputRules(raw string, locale chat.Locale, seed string, maxWords int) string {
	text := cleanModelText(raw)
	if text == "" {
		return fallbackReply(locale, seed, maxWords)
	}
	if outputLeakPattern.MatchString(text) {
		return promptLeakRefusal(locale, seed, maxWords)
	}
	if isLikelyWrongLanguage(text, locale) {
		return fallbackReply(locale, seed, maxWords)
	}

	body := selectBody(splitSentences(text), locale)
	if body == "" {
		body = defaultBodyTemplate.in(locale)
	}

	result := fitWords(body, ensureSentencePunctuation(pickCta(locale, seed)), maxWords)

	if outputLeakPattern.MatchString(result) {
		return promptLeakRefusal(locale, seed, maxWords)
	}
	if isLikelyWrongLanguage(result, locale) {
		return fallbackReply(locale, seed, maxWords)
	}
	return result
}
