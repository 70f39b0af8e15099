package trigger

import (
	log "log/slog"
	"strings"
)

// Classifier decides whether an utterance, given screen and app context,
// warrants a generated response. It is a pure function over string matching;
// identical inputs always produce the identical decision.
type Classifier struct {
	wake []string
}

// Wake phrases recognised anywhere in the utterance. The name variants cover
// common transcription misspellings of "Cluely".
var defaultWakePhrases = []string{
	"hey cluely", "cluely", "hey cluey", "cluey",
	"hey chloe", "chloe", "hey clue", "clue",
	"suggest", "help me", "what should i",
	"generate", "create", "write", "compose",
}

// NewClassifier builds a classifier with the default wake-phrase set plus any
// extra activation phrases from configuration.
func NewClassifier(extraWake ...string) *Classifier {
	wake := append([]string(nil), defaultWakePhrases...)
	for _, w := range extraWake {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			wake = append(wake, w)
		}
	}
	return &Classifier{wake: wake}
}

// ShouldRespond reports whether the utterance should produce a response.
// Checks short-circuit in a fixed order: empty speech, direct wake phrases,
// app/screen-conditioned phrases, standalone intents.
func (c *Classifier) ShouldRespond(utterance, screenText, app string) bool {
	audio := strings.ToLower(strings.TrimSpace(utterance))
	if audio == "" {
		return false
	}

	for _, w := range c.wake {
		if strings.Contains(audio, w) {
			log.Debug("direct trigger", "phrase", w)
			return true
		}
	}

	if in, ok := matchContext(audio, strings.ToLower(app), screenText); ok {
		log.Debug("context trigger", "match", in.Descriptor())
		return true
	}

	if in, ok := matchIntent(utterance); ok {
		log.Debug("intent trigger", "match", in.Descriptor())
		return true
	}

	return false
}

// Route refines a positive trigger decision into a structured intent. The
// context and intent tables are re-evaluated independently of ShouldRespond;
// when neither matches, the foreground app alone may still label the
// response, and a bare wake phrase falls back to a generic suggestion.
func (c *Classifier) Route(utterance, screenText, app string) Intent {
	audio := strings.ToLower(strings.TrimSpace(utterance))
	appLower := strings.ToLower(app)

	if in, ok := matchContext(audio, appLower, screenText); ok {
		return in
	}
	if in, ok := matchIntent(utterance); ok {
		return in
	}
	if in, ok := matchAppFallback(appLower); ok {
		return in
	}
	return Intent{Category: Suggestion}
}
