package llm

import "context"

// Classifier is a text-in/text-out classification call backed by an LLM
// Service with a fixed system prompt. The router and the continuity
// detector both consume it through their own narrow interfaces.
type Classifier struct {
	svc    Service
	system string
}

// NewClassifier creates a classifier bound to the given system prompt.
func NewClassifier(svc Service, systemPrompt string) *Classifier {
	return &Classifier{svc: svc, system: systemPrompt}
}

// Classify sends the prompt and returns the raw model reply.
func (c *Classifier) Classify(ctx context.Context, prompt string) (string, error) {
	messages := []Message{}
	if c.system != "" {
		messages = append(messages, SystemPrompt(c.system))
	}
	messages = append(messages, UserMessage(prompt))
	return c.svc.Chat(ctx, messages)
}
