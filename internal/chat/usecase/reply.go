package usecase

import (
	"context"
	"fmt"
	"strings"

	"advisor-edge/internal/chat"
	"advisor-edge/pkg/llmprovider"
)

// Reply answers one chat turn.
func (uc *implUseCase) Reply(ctx context.Context, input chat.ReplyInput) (chat.ReplyOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ReplyOutput{}, chat.ErrMessageRequired
	}

	locale := chat.ParseLocale(string(input.Locale))
	message := sanitize(input.Message, uc.cfg.MaxMessageLength)
	intent := detectIntent(message)

	if reply, ok := buildDeterministicReply(intent, locale, message, uc.cfg.MaxOutputWords); ok {
		uc.l.Infof(ctx, "chat.usecase.Reply: deterministic reply locale=%s intent=%+v", locale, intent)
		return chat.ReplyOutput{Response: reply, Locale: locale, Source: chat.SourceDeterministic}, nil
	}

	if err := uc.throttle.Wait(ctx); err != nil {
		return chat.ReplyOutput{}, fmt.Errorf("%w: throttle: %v", chat.ErrUpstream, err)
	}

	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(locale, message, input.History))
	if err != nil {
		return chat.ReplyOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	reply := enforceOutputRules(resp.Text, locale, message, uc.cfg.MaxOutputWords)
	uc.l.Infof(ctx, "chat.usecase.Reply: model reply provider=%s locale=%s raw_len=%d words=%d",
		resp.ProviderName, locale, len(resp.Text), countWords(reply))

	return chat.ReplyOutput{Response: reply, Locale: locale, Source: chat.SourceModel}, nil
}

// buildRequest assembles the system prompt, the last HistoryLimit history
// entries with each content capped, and the current message.
func (uc *implUseCase) buildRequest(locale chat.Locale, message string, history []chat.HistoryEntry) *llmprovider.Request {
	if len(history) > uc.cfg.HistoryLimit {
		history = history[len(history)-uc.cfg.HistoryLimit:]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, h := range history {
		if h.Role != chat.RoleUser && h.Role != chat.RoleAssistant {
			continue
		}
		msgs = append(msgs, llmprovider.Message{
			Role:    h.Role,
			Content: sanitize(h.Content, uc.cfg.MaxHistoryLength),
		})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: message})

	return &llmprovider.Request{
		SystemPrompt: systemPrompt(locale),
		Messages:     msgs,
		Temperature:  uc.cfg.Temperature,
		MaxTokens:    uc.cfg.MaxTokens,
	}
}
