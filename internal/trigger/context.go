package trigger

import "strings"

// contextRule labels an utterance by the app in focus or by keywords visible
// on screen, combined with a phrase list specific to that context. Rules are
// evaluated in order; the first phrase hit wins.
type contextRule struct {
	category    Category
	apps        []string // lowercase app names, exact match
	screenWords []string // lowercase substrings of the screen text
	phrases     []string // lowercase substrings of the utterance
}

var contextRules = []contextRule{
	{
		category:    SocialMedia,
		apps:        []string{"twitter", "x.com"},
		screenWords: []string{"twitter"},
		phrases: []string{
			"tweet", "post", "share", "publish",
			"what should i tweet", "tweet about this",
			"social media", "share this",
		},
	},
	{
		category:    Communication,
		apps:        []string{"mail", "gmail", "outlook"},
		screenWords: []string{"email", "message", "reply"},
		phrases: []string{
			"reply", "respond", "email", "message",
			"write back", "send", "compose",
		},
	},
	{
		category:    Writing,
		apps:        []string{"word", "docs", "notion", "obsidian"},
		screenWords: []string{"document", "note", "write"},
		phrases: []string{
			"summarize", "summary", "rewrite", "edit",
			"improve", "polish", "draft", "outline",
		},
	},
	{
		category: WebBrowsing,
		apps:     []string{"chrome", "safari", "firefox"},
		phrases: []string{
			"summarize this page", "what is this about",
			"explain this", "tldr", "summary",
		},
	},
}

// appFallbacks label a response by the foreground app alone when neither a
// context phrase nor a standalone intent matched.
var appFallbacks = []struct {
	category Category
	apps     []string
}{
	{Communication, []string{"mail", "gmail", "outlook"}},
	{Writing, []string{"word", "docs", "notion", "obsidian"}},
	{WebBrowsing, []string{"chrome", "safari", "firefox"}},
	{Development, []string{"vscode", "cursor", "xcode", "terminal"}},
}

func (r contextRule) applies(app, screen string) bool {
	for _, a := range r.apps {
		if app == a {
			return true
		}
	}
	for _, w := range r.screenWords {
		if strings.Contains(screen, w) {
			return true
		}
	}
	return false
}

func matchContext(audio, app, screenText string) (Intent, bool) {
	screen := strings.ToLower(screenText)
	for _, r := range contextRules {
		if !r.applies(app, screen) {
			continue
		}
		for _, p := range r.phrases {
			if strings.Contains(audio, p) {
				return Intent{Category: r.category, Phrase: p}, true
			}
		}
	}
	return Intent{}, false
}

func matchAppFallback(app string) (Intent, bool) {
	for _, f := range appFallbacks {
		for _, a := range f.apps {
			if app == a {
				return Intent{Category: f.category}, true
			}
		}
	}
	return Intent{}, false
}
