package prompt

import (
	"strings"

	"cluely/internal/trigger"
)

// Category-specific instruction blocks. Selection is an exhaustive switch over
// the closed category set; reminder/question/creative go through the dedicated
// composer variants, so Build hands them the general block.
func instructionBlock(cat trigger.Category, utterance string) string {
	audio := strings.ToLower(utterance)
	switch cat {
	case trigger.SocialMedia:
		return socialBlock
	case trigger.Communication:
		return communicationBlock
	case trigger.Writing:
		if strings.Contains(audio, "summarize") || strings.Contains(audio, "summary") {
			return summarizeBlock
		}
		return writingBlock
	case trigger.WebBrowsing:
		if containsAny(audio, "chart", "graph", "data", "visualization", "plot") {
			return chartBlock
		}
		return webBlock
	case trigger.Development:
		return developmentBlock
	case trigger.Reminder, trigger.Question, trigger.Action, trigger.Creative, trigger.Suggestion:
		return defaultBlock
	default:
		return defaultBlock
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const socialBlock = `
Context: User wants to create a tweet/post on Twitter/X.

Instructions:
- Suggest a compelling tweet based on screen content
- Keep it under 280 characters
- Make it engaging and authentic
- Include relevant hashtags if appropriate
- Consider current trends or topics visible on screen

`

const communicationBlock = `
Context: User is working with email/messages.

Instructions:
- Help compose professional, clear communication
- Suggest appropriate tone based on context
- Offer template phrases if composing
- Suggest improvements if reviewing content

`

const summarizeBlock = `
Context: User wants to summarize content.

Instructions:
- Provide a concise summary of visible text
- Highlight key points and main ideas
- Use bullet points if appropriate
- Keep summary to 2-3 sentences

`

const writingBlock = `
Context: User is writing or editing documents.

Instructions:
- Suggest improvements to writing
- Help with clarity and flow
- Offer alternative phrasings
- Assist with structure and organization

`

const chartBlock = `
Context: User is asking about charts, graphs, or data visualizations on a web page.

Instructions:
- Focus on explaining the data and trends shown
- Identify the type of chart/graph if possible
- Explain what the data represents
- Point out key insights or patterns
- Explain axes, labels, and data points if visible
- If chart details are unclear, explain based on context

`

const webBlock = `
Context: User is browsing the web.

Instructions:
- Help explain or summarize web content
- Suggest related topics or actions
- Offer to extract key information
- Provide context about what's being viewed

`

const developmentBlock = `
Context: User is coding or using development tools.

Instructions:
- Offer coding suggestions or explanations
- Help debug or improve code
- Suggest best practices
- Explain technical concepts if asked

`

const defaultBlock = `
Context: General assistance needed.

Instructions:
- Provide helpful, relevant suggestions
- Consider the user's current activity
- Offer actionable next steps
- Be proactive but not intrusive

`
