package continuity

import "fmt"

// ContinuitySystemPrompt frames the scoring rubric for the classifier.
const ContinuitySystemPrompt = `Analyze continuity between the previous context and the user input using:
1. Semantic similarity
2. Entity continuity
3. Temporal relevance
4. Intent alignment

Score 0-3 per criterion. Total 0-12:
9-12: continue [score] [reason]
5-8: clarify [score] [reason]
0-4: new [score] [reason]

Response format: "continue|clarify|new [score] [reason]"`

func buildContinuityPrompt(previousContext, userMessage string) string {
	return fmt.Sprintf("Previous context: %s\nUser input: %s\nEvaluate topic continuity based on the provided framework.",
		previousContext, userMessage)
}
