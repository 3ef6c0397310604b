package chat

import "context"

// UseCase answers one chat turn.
type UseCase interface {
	// Reply classifies the message, answers high-confidence intents from templates
	// and otherwise asks the upstream model, shaping its output before returning.
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)

	// Model returns the id of the primary upstream model.
	Model() string
}
