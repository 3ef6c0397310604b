package usecase

import (
	"unicode/utf16"

	"advisor-edge/internal/chat"
)

var ctaOptions = map[chat.Locale][]string{
	chat.LocaleEN: {
		"Book a free strategy call to discuss your project.",
		"Schedule a free strategy call to review your project.",
		"Let us discuss your project in a free strategy call.",
	},
	chat.LocaleFR: {
		"Reservez une consultation strategique gratuite pour en parler.",
		"Discutons-en lors d'une consultation strategique gratuite.",
		"Contactez-nous pour une consultation strategique gratuite.",
		"Parlons de votre projet lors d'une consultation strategique gratuite.",
	},
}

// pickCta selects a call-to-action for locale. The choice is a stable hash of
// seed, so the same seed always yields the same sentence.
func pickCta(locale chat.Locale, seed string) string {
	options, ok := ctaOptions[locale]
	if !ok {
		options = ctaOptions[chat.LocaleEN]
	}
	if seed == "" {
		seed = "default"
	}
	return options[hashString(seed)%int64(len(options))]
}

// hashString is the 31-multiplier string hash over UTF-16 code units with
// 32-bit wraparound, returned as an absolute value.
func hashString(s string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
