package agents

import (
	"context"

	"github.com/rahulnsecc/agenthub/ai/core/llm"
)

// llmResponder is a responder backed by an LLM role with a fixed system
// prompt. Search and Finance are both instances of it.
type llmResponder struct {
	name   string
	system string
	llm    llm.Service
}

// NewSearchResponder creates the web-search role responder.
func NewSearchResponder(svc llm.Service) Responder {
	return &llmResponder{name: "Web Search Agent", system: webSearchSystemPrompt, llm: svc}
}

// NewFinanceResponder creates the finance role responder.
func NewFinanceResponder(svc llm.Service) Responder {
	return &llmResponder{name: "Finance Agent", system: financeSystemPrompt, llm: svc}
}

func (r *llmResponder) Name() string {
	return r.name
}

func (r *llmResponder) Run(ctx context.Context, contextText string) (string, error) {
	return r.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(r.system),
		llm.UserMessage(contextText),
	})
}
