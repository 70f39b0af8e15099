package trigger

import (
	"regexp"
	"strings"
)

// Reminder patterns run against the raw utterance so the captured payload
// keeps its original casing.
var reminderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)remind me (?:to )?(.+)`),
	regexp.MustCompile(`(?i)don't forget (?:to )?(.+)`),
	regexp.MustCompile(`(?i)remember (?:to )?(.+)`),
	regexp.MustCompile(`(?i)note that (.+)`),
	regexp.MustCompile(`(?i)make a note (.+)`),
}

// Deliberately broad: any of these anywhere in speech counts as a question.
// Inherited product behaviour; expect false positives in ambient listening.
var questionKeywords = []string{
	"what", "how", "why", "when", "where", "who", "which",
	"explain", "tell me", "describe", "show me", "help me understand",
	"what's", "what is", "what are", "what does", "what do",
	"how does", "how do", "how can", "how should",
	"can you explain", "can you tell me", "can you show me",
	"what's this", "what's that", "what are these", "what are those",
	"tell me about", "explain this", "explain that",
	"what is this", "what is that",
	"help me with",
}

var actionPhrases = []string{
	"copy this", "copy that", "select all",
	"open", "close", "save", "delete",
	"search for", "find", "look up",
}

var creativePhrases = []string{
	"brainstorm", "ideas", "creative", "inspiration",
	"alternatives", "options", "suggestions",
}

// matchIntent checks the standalone intent tables in order: reminders,
// questions, actions, creative requests.
func matchIntent(utterance string) (Intent, bool) {
	for _, re := range reminderPatterns {
		if m := re.FindStringSubmatch(utterance); m != nil {
			return Intent{
				Category: Reminder,
				Phrase:   strings.ToLower(m[0]),
				Payload:  strings.TrimSpace(m[1]),
			}, true
		}
	}

	audio := strings.ToLower(utterance)
	for _, k := range questionKeywords {
		if strings.Contains(audio, k) {
			return Intent{Category: Question, Phrase: k}, true
		}
	}
	for _, p := range actionPhrases {
		if strings.Contains(audio, p) {
			return Intent{Category: Action, Phrase: p}, true
		}
	}
	for _, p := range creativePhrases {
		if strings.Contains(audio, p) {
			return Intent{Category: Creative, Phrase: p}, true
		}
	}
	return Intent{}, false
}
