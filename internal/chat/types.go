package chat

// Locale is the reply language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// ParseLocale returns LocaleFR only for the exact value "fr".
func ParseLocale(s string) Locale {
	if s == string(LocaleFR) {
		return LocaleFR
	}
	return LocaleEN
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryEntry is one prior conversation turn supplied by the client.
type HistoryEntry struct {
	Role    string
	Content string
}

// ReplyInput is the use-case input for one chat turn.
type ReplyInput struct {
	Message string
	Locale  Locale
	History []HistoryEntry
}

// Source records which path produced a reply.
type Source string

const (
	SourceDeterministic Source = "deterministic"
	SourceModel         Source = "model"
)

// ReplyOutput is the shaped reply returned to the client.
type ReplyOutput struct {
	Response string
	Locale   Locale
	Source   Source
}

// Intent is the set of topical flags detected in one message.
type Intent struct {
	Pricing     bool
	Timeline    bool
	OutOfScope  bool
	PromptLeak  bool
	Vague       bool
}
