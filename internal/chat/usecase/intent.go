package usecase

import (
	"regexp"
	"strings"

	"advisor-edge/internal/chat"
)

var (
	pricingPattern     = regexp.MustCompile(`(?i)\b(price|pricing|cost|costs|quote|budget|tarif|tarifs|prix|cout|co[uû]t|devis)\b`)
	timelinePattern    = regexp.MustCompile(`(?i)\b(how long|timeline|timeframe|duration|deadline|delai|d[eé]lai|combien de temps)\b`)
	marketingPattern   = regexp.MustCompile(`(?i)\b(marketing|meta ads?|facebook ads?|google ads?|seo|sem|social media|branding|copywriting|content marketing|email marketing|publicit[eé]|campagne|campagnes)\b`)
	engineeringPattern = regexp.MustCompile(`(?i)\b(embedded|firmware|iot|industrial|automation|medical|device|iec|iso|dlms|cosem|compliance|energy|smart meter|ai|ml|emc|hil|sil|simulink|matlab|software|safety|certification|ingenier|ing[eé]nier)\b`)
	vaguePattern       = regexp.MustCompile(`(?i)\b(can you help|can you support|can you assist|pouvez-vous nous aider|pouvez-vous m'aider|pouvez-vous nous accompagner|pouvez-vous m'accompagner)\b`)
	promptLeakPattern = regexp.MustCompile(`(?i)\b(system prompt|internal prompt|hidden instructions|secret instructions|developer message|jailbreak|ignore (all|your) instructions|prompt interne|instructions cach[eé]es|consignes internes|message systeme|message system|revele tes instructions|show your prompt|show your hidden instructions)\b`)
)

// detectIntent flags the topics a message touches. Engineering terms veto the
// out-of-scope flag; any specific signal vetoes the vague flag.
func detectIntent(message string) chat.Intent {
	text := strings.ToLower(message)

	engineering := engineeringPattern.MatchString(text)
	pricing := pricingPattern.MatchString(text)
	timeline := timelinePattern.MatchString(text)

	return chat.Intent{
		Pricing:     pricing,
		Timeline:    timeline,
		OutOfScope:  marketingPattern.MatchString(text) && !engineering,
		PromptLeak:  promptLeakPattern.MatchString(text),
		Vague:       vaguePattern.MatchString(text) && !(engineering || pricing || timeline),
	}
}
