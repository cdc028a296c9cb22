// Package intent classifies a raw utterance into one of the shopping actions.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the action category of an utterance.
type Intent string

const (
	Add    Intent = "add"
	Remove Intent = "remove"
	Find   Intent = "find"
)

type pattern struct {
	intent Intent
	re     *regexp.Regexp
}

// patterns is evaluated in order. Add patterns come strictly before remove
// patterns, so an utterance matching both ("get rid of the shoes") classifies
// as add.
var patterns = []pattern{
	{Add, regexp.MustCompile(`\b(add|buy|purchase|include|get)\b`)},
	{Add, regexp.MustCompile(`\bi\s+want\s+to\s+buy\b`)},
	{Remove, regexp.MustCompile(`\b(remove|delete|discard|drop|take\s+away)\b`)},
}

// Classify returns the first matching category, falling back to Find so that
// every utterance gets an action. Pure function of the input text.
func Classify(text string) Intent {
	t := strings.ToLower(text)
	for _, p := range patterns {
		if p.re.MatchString(t) {
			return p.intent
		}
	}
	return Find
}
