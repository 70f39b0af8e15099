package prompt

import (
	"fmt"
	"strings"
	"time"

	"cluely/internal/trigger"
)

const (
	// Screen text is embedded verbatim up to this many characters.
	maxScreenChars = 1500
	// Soft cap on the whole composed prompt.
	defaultMaxChars = 2000

	noScreenText   = "[No readable text detected]"
	truncationMark = `..."`
)

// Composer turns (utterance, screen text, app, category) into a bounded
// instruction text for a completion provider. The clock is injectable so
// composition stays deterministic under test.
type Composer struct {
	Now      func() time.Time
	MaxChars int
}

func NewComposer() *Composer {
	return &Composer{Now: time.Now, MaxChars: defaultMaxChars}
}

// Build assembles the full prompt: fixed system preamble, the instruction
// block for the routed category, then the screen-content block.
func (c *Composer) Build(utterance, screenText, app string, cat trigger.Category) string {
	full := c.preamble(utterance, app) + instructionBlock(cat, utterance) + screenBlock(screenText)
	return c.capLength(full)
}

func (c *Composer) preamble(utterance, app string) string {
	now := c.Now()
	return fmt.Sprintf(`You are Cluely, a helpful and proactive desktop AI assistant. You understand context from what users say and what's visible on their screen.

Current Context:
- Time: %s
- Date: %s
- Active App: %s
- User Said: "%s"

Response Guidelines:
- Be helpful, concise, and actionable (2-4 sentences max)
- Directly address what the user asked about
- Use information from the screen when relevant
- Provide specific suggestions or explanations
- Be conversational and friendly, not robotic
- If screen text is unclear, focus on the user's question

`, now.Format("03:04 PM"), now.Format("Monday, January 2, 2006"), app, utterance)
}

func screenBlock(screenText string) string {
	if len(strings.TrimSpace(screenText)) < 10 {
		return "\nScreen Content: " + noScreenText + "\n"
	}
	if len(screenText) > maxScreenChars {
		screenText = screenText[:maxScreenChars] + "..."
	}
	return fmt.Sprintf(`
Screen Content (what user is currently viewing):
"%s"

Based on this screen content and the user's request, provide your response:
`, screenText)
}

// capLength enforces the soft cap. The prompt ends with the screen-content
// block, so cutting from the first over-budget line inside that block keeps
// the preamble and instruction blocks intact; anything over budget before the
// screen block is dropped line by line.
func (c *Composer) capLength(prompt string) string {
	max := c.MaxChars
	if max <= 0 {
		max = defaultMaxChars
	}
	if len(prompt) <= max {
		return prompt
	}

	lines := strings.Split(prompt, "\n")
	out := make([]string, 0, len(lines))
	length := 0
	inScreen := false
	for _, line := range lines {
		if strings.Contains(line, "Screen Content") {
			inScreen = true
		}
		need := len(line) + 1
		if length+need > max {
			if inScreen {
				remaining := max - length - len(truncationMark)
				if remaining > 0 {
					out = append(out, line[:remaining]+truncationMark)
				}
			}
			break
		}
		out = append(out, line)
		length += need
	}
	return strings.Join(out, "\n")
}

// BuildReminder composes the confirmation request for a captured reminder.
func (c *Composer) BuildReminder(payload string) string {
	return fmt.Sprintf(`You are Cluely, a desktop AI assistant. The user asked you to remind them about something.

User's reminder request: "%s"

Create a helpful reminder message that:
- Clearly restates what they wanted to remember
- Is friendly and conversational
- Includes the current time for context
- Suggests any relevant next steps

Current time: %s

Reminder message:`, payload, c.Now().Format("03:04 PM"))
}

// BuildQuestion composes a direct question-answering prompt.
func (c *Composer) BuildQuestion(question, screenText, app string) string {
	contextInfo := ""
	if len(strings.TrimSpace(screenText)) > 10 {
		contextInfo = "\n\nContext from screen:\n" + screenText
	}
	return fmt.Sprintf(`You are Cluely, a helpful desktop AI assistant. The user asked a question while using %s.

Question: "%s"%s

Provide a helpful, accurate answer that:
- Directly addresses their question
- Uses screen context if relevant
- Is concise but complete
- Offers additional help if appropriate

Answer:`, app, question, contextInfo)
}

// BuildCreative composes a brainstorming prompt.
func (c *Composer) BuildCreative(request, screenText, app string) string {
	contextInfo := ""
	if len(strings.TrimSpace(screenText)) > 10 {
		contextInfo = "\n\nCurrent context:\n" + screenText
	}
	return fmt.Sprintf(`You are Cluely, a creative AI assistant. The user needs help with brainstorming or creative thinking while using %s.

Request: "%s"%s

Provide creative, actionable suggestions that:
- Are relevant to their current context
- Offer 3-5 concrete ideas
- Are practical and achievable
- Spark further creativity

Ideas:`, app, request, contextInfo)
}
