package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRespondIgnoresSilence(t *testing.T) {
	c := NewClassifier()

	for _, utterance := range []string{"", "   ", "\n\t ", "  \r\n"} {
		assert.False(t, c.ShouldRespond(utterance, "plenty of screen text here", "Chrome"),
			"utterance %q must never trigger", utterance)
	}
}

func TestShouldRespondDirectTriggers(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name      string
		utterance string
	}{
		{"assistant name", "hey cluely, are you there"},
		{"misheard name", "chloe what do you think"},
		{"bare name", "Cluely"},
		{"suggest verb", "suggest something for dinner"},
		{"help me", "help me with this form"},
		{"compose verb", "compose a short poem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Direct triggers fire even with no screen context and an
			// unknown app.
			assert.True(t, c.ShouldRespond(tt.utterance, "", "Unknown"))
		})
	}
}

func TestShouldRespondContextTriggers(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		utterance  string
		screenText string
		app        string
		want       bool
	}{
		{"tweet phrase in twitter", "should i tweet this", "", "Twitter", true},
		{"tweet phrase via screen keyword", "maybe post it", "logged in to Twitter", "Unknown", true},
		{"tweet phrase without context", "maybe post it", "", "Unknown", false},
		{"email phrase in mail app", "reply to that thread", "", "Mail", true},
		{"writing phrase in docs", "polish this paragraph", "", "Docs", true},
		{"web phrase in browser", "tldr", "", "Firefox", true},
		{"web phrase outside browser", "tldr", "", "Terminal", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ShouldRespond(tt.utterance, tt.screenText, tt.app))
		})
	}
}

func TestShouldRespondIntentTriggers(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.ShouldRespond("remind me to stretch", "", "Unknown"))
	assert.True(t, c.ShouldRespond("how does this work", "", "Unknown"))
	assert.True(t, c.ShouldRespond("look up the capital of peru", "", "Unknown"))
	assert.True(t, c.ShouldRespond("brainstorm names for the project", "", "Unknown"))

	// Plain conversation with no trigger at all.
	assert.False(t, c.ShouldRespond("nice weather today", "", "Unknown"))
}

func TestExtraWakePhrases(t *testing.T) {
	c := NewClassifier("computer", "  JARVIS  ", "")

	assert.True(t, c.ShouldRespond("computer, lights on", "", "Unknown"))
	assert.True(t, c.ShouldRespond("jarvis are you awake", "", "Unknown"))
}

func TestRoute(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		utterance  string
		screenText string
		app        string
		want       Category
	}{
		{"social media", "cluely, what should I tweet about this", "Breaking: new product launch today", "Twitter", SocialMedia},
		{"communication", "help me reply to this email", "", "Gmail", Communication},
		{"writing", "summarize this section", "", "Notion", Writing},
		{"web browsing", "explain this", "", "Chrome", WebBrowsing},
		{"reminder", "remind me to call mom at 3pm", "", "Unknown", Reminder},
		{"question", "what is a goroutine", "", "Unknown", Question},
		{"action", "open the downloads folder", "", "Unknown", Action},
		{"creative", "give me some ideas", "", "Unknown", Creative},
		{"dev app fallback", "cluely", "", "vscode", Development},
		{"wake phrase only", "hey cluely", "", "Unknown", Suggestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := c.Route(tt.utterance, tt.screenText, tt.app)
			assert.Equal(t, tt.want, in.Category, "descriptor: %s", in.Descriptor())
		})
	}
}

func TestRouteIsIndependentOfClassifier(t *testing.T) {
	c := NewClassifier()

	// The router re-evaluates its own tables; a context label is produced
	// even though the classifier would already have fired on the wake word.
	in := c.Route("cluely, tweet about this", "", "Twitter")
	assert.Equal(t, SocialMedia, in.Category)
	assert.Equal(t, "tweet", in.Phrase)
}
