package http

import (
	"encoding/json"

	"advisor-edge/internal/chat"
)

// --- Request DTOs ---

// chatReq keeps fields raw so that non-string values can be told apart from
// missing ones.
type chatReq struct {
	Message json.RawMessage `json:"message"`
	Lang    json.RawMessage `json:"lang"`
	History json.RawMessage `json:"history"`
}

type historyItemReq struct {
	Role    json.RawMessage `json:"role"`
	Content json.RawMessage `json:"content"`
}

// chatReqDoc documents the request body for swagger.
type chatReqDoc struct {
	Message string           `json:"message" example:"How long does an embedded project take?"`
	Lang    string           `json:"lang" enums:"en,fr" example:"en"`
	History []historyItemDoc `json:"history"`
}

type historyItemDoc struct {
	Role    string `json:"role" enums:"user,assistant"`
	Content string `json:"content"`
}

func (r chatReq) validate() error {
	msg, ok := jsonString(r.Message)
	if !ok || isBlank(msg) {
		return chat.ErrMessageRequired
	}
	return nil
}

// toInput keeps the last limit history items and drops those whose role or
// content is not a string.
func (r chatReq) toInput(limit int) chat.ReplyInput {
	msg, _ := jsonString(r.Message)
	lang, _ := jsonString(r.Lang)

	return chat.ReplyInput{
		Message: msg,
		Locale:  chat.ParseLocale(lang),
		History: historyEntries(r.History, limit),
	}
}

func historyEntries(raw json.RawMessage, limit int) []chat.HistoryEntry {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil
	}
	if len(items) > limit {
		items = items[len(items)-limit:]
	}

	entries := make([]chat.HistoryEntry, 0, len(items))
	for _, item := range items {
		var h historyItemReq
		if err := json.Unmarshal(item, &h); err != nil {
			continue
		}
		role, okRole := jsonString(h.Role)
		content, okContent := jsonString(h.Content)
		if !okRole || !okContent {
			continue
		}
		entries = append(entries, chat.HistoryEntry{Role: role, Content: content})
	}
	return entries
}

// jsonString decodes raw only when it is a JSON string literal.
func jsonString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// --- Response DTOs ---

type chatResp struct {
	Response string `json:"response"`
	Lang     string `json:"lang" enums:"en,fr"`
}

func (h *handler) newChatResp(out chat.ReplyOutput) chatResp {
	return chatResp{
		Response: out.Response,
		Lang:     string(out.Locale),
	}
}
