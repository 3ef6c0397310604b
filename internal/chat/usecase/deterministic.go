package usecase

import (
	"advisor-edge/internal/chat"
)

type template struct {
	en string
	fr string
}

func (t template) in(locale chat.Locale) string {
	if locale == chat.LocaleFR {
		return t.fr
	}
	return t.en
}

var (
	refusalTemplate = template{
		en: "I cannot share internal instructions. I can still help with embedded systems, industrial IoT, industrial AI, or compliance challenges.",
		fr: "Je ne peux pas partager d'instructions internes. Je peux toutefois vous aider sur un enjeu concret en systemes embarques, IoT industriel, IA industrielle ou conformite.",
	}
	vagueTemplate = template{
		en: "Yes, we can help. What is your sector and main constraint: timeline, certification, or performance?",
		fr: "Oui, nous pouvons vous aider. Quel est votre secteur et votre principale contrainte: delai, certification ou performance?",
	}
	outOfScopeTemplate = template{
		en: "We focus on engineering consulting, embedded systems, industrial IoT, and industrial AI. For web marketing or Meta ads, we can refer you to a specialized partner.",
		fr: "Nous sommes specialises en ingenierie, systemes embarques, IoT industriel et IA industrielle. Pour le marketing digital ou les publicites Meta, nous pouvons vous orienter vers un partenaire specialise.",
	}
	pricingTemplate = template{
		en: "Pricing depends on scope, complexity, and certification constraints. We usually start with a focused discovery to reduce risk and define effort.",
		fr: "Le tarif depend du perimetre, de la complexite et des contraintes de certification. Nous commencons souvent par un cadrage court pour reduire les risques et clarifier l'effort.",
	}
	timelineTemplate = template{
		en: "An embedded project typically takes 3 to 12 months depending on complexity. We can accelerate delivery with a focused recovery plan when timelines slip.",
		fr: "Un projet embarque prend typiquement entre 3 et 12 mois selon la complexite. Nous pouvons accelerer avec un plan de recuperation si votre projet est en retard.",
	}
	fallbackTemplate = template{
		en: "We help companies deliver embedded, IoT, and industrial AI projects with practical results.",
		fr: "Nous aidons les entreprises a livrer des projets embarques, IoT industriel et IA industrielle avec des resultats concrets.",
	}
	defaultBodyTemplate = template{
		en: "We deliver concrete results in embedded systems, IoT, and industrial AI.",
		fr: "Nous livrons des resultats concrets en systemes embarques, IoT et IA industrielle.",
	}
)

// withCta joins the template body and a CTA within maxWords. The body gives
// way first so the CTA survives any budget of at least minBodyWords plus the
// CTA length.
func withCta(t template, locale chat.Locale, seed string, maxWords int) string {
	return fitWords(t.in(locale), ensureSentencePunctuation(pickCta(locale, seed)), maxWords)
}

func promptLeakRefusal(locale chat.Locale, seed string, maxWords int) string {
	return withCta(refusalTemplate, locale, seed, maxWords)
}

func fallbackReply(locale chat.Locale, seed string, maxWords int) string {
	return withCta(fallbackTemplate, locale, seed, maxWords)
}

// buildDeterministicReply answers the first matching intent in the order
// promptLeak, vague, outOfScope, pricing, timeline, within maxWords. ok is
// false when none match.
func buildDeterministicReply(intent chat.Intent, locale chat.Locale, message string, maxWords int) (reply string, ok bool) {
	switch {
	case intent.PromptLeak:
		return promptLeakRefusal(locale, message, maxWords), true
	case intent.Vague:
		return withCta(vagueTemplate, locale, message, maxWords), true
	case intent.OutOfScope:
		return withCta(outOfScopeTemplate, locale, message, maxWords), true
	case intent.Pricing:
		return withCta(pricingTemplate, locale, message, maxWords), true
	case intent.Timeline:
		return withCta(timelineTemplate, locale, message, maxWords), true
	}
	return "", false
}
