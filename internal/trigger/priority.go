package trigger

import "strings"

// Priority is the interruption tier assigned to a response, derived from the
// raw utterance independently of its routed intent.
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

var urgencyWords = []string{
	"urgent", "important", "asap", "quickly",
	"help", "error", "problem", "issue",
}

var requestWords = []string{
	"please", "can you", "could you", "would you",
	"suggest", "recommend", "generate",
}

var interruptPhrases = []string{
	"stop", "cancel", "never mind", "forget it",
	"wait", "hold on", "actually",
}

// PriorityFor assigns a tier from the utterance text. Tiers are checked
// high → medium → low; the first match wins.
func PriorityFor(utterance string) Priority {
	audio := strings.ToLower(utterance)
	for _, w := range urgencyWords {
		if strings.Contains(audio, w) {
			return High
		}
	}
	for _, w := range requestWords {
		if strings.Contains(audio, w) {
			return Medium
		}
	}
	return Low
}

// ShouldInterrupt reports whether the response should preempt an ongoing
// notification or its auto-dismiss timer.
func ShouldInterrupt(utterance string, p Priority) bool {
	if p == High {
		return true
	}
	audio := strings.ToLower(utterance)
	for _, w := range interruptPhrases {
		if strings.Contains(audio, w) {
			return true
		}
	}
	return false
}
