package agents

// Search role instructions.
const webSearchSystemPrompt = `Search and analyze the request.

Parameters:
1. Query: Time/location/context links
2. Sources: Credibility (0-100), freshness, authority
3. Synthesis: Validate sources, detect bias, identify gaps

Output:
- Key insights (confidence %, sources)
- Context links from the provided history
- Analysis: Current data vs trends`

// Finance role instructions.
const financeSystemPrompt = `Analyze financial data. Include:
- Real-time market data
- Historical trends
- Risk modeling
- Links to the provided context

Output structured metrics`
