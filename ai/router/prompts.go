package router

import "fmt"

// RoutingSystemPrompt instructs the classifier to pick one agent and reply
// in the machine-parseable "Agent|Confidence%|Reason" form.
const RoutingSystemPrompt = `You are a routing agent. Select exactly one agent for the query and respond in the required format only.`

const routingPromptTemplate = `Route query: %q

Agents:
1. Content - blog/article/edit, context: %s
2. Finance - stock/market, context: %s
3. Web - search/find, context: %s

Conversation history:
%s

Last assistant response: %s
Long-term context: %s

Decision factors:
- Keywords (40%%)
- Context (30%%)
- Capability (20%%)
- Urgency (10%%)

Response format: "Agent|Confidence%%|Reason"
Examples:
- "Content Agent|90%%|Blog request"
- "Finance Agent|85%%|Stock analysis"`

func buildRoutingPrompt(req Request) string {
	return fmt.Sprintf(routingPromptTemplate,
		req.Message,
		orNone(req.ContentContext),
		orNone(req.FinanceContext),
		orNone(req.SearchContext),
		orNone(req.History),
		orNone(req.LastAssistantReply),
		orNone(req.LongTermContext),
	)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
