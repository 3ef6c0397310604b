package usecase

import "strings"

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", `"`, "&quot;")

// sanitize escapes < > " then caps the result at maxLen characters and trims it.
// The cap applies after escaping, so an entity may be cut.
func sanitize(input string, maxLen int) string {
	s := htmlEscaper.Replace(input)
	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return strings.TrimSpace(s)
}
