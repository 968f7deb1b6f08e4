package nlp

import "strings"

// Intent is the coarse classification of a single user message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentSmalltalk Intent = "smalltalk"
	IntentFarewell  Intent = "farewell"
	IntentMeta      Intent = "meta"
	IntentReset     Intent = "reset"
	IntentQuestion  Intent = "question"
	IntentRecommend Intent = "recommend"
	IntentChat      Intent = "chat"
)

var (
	questionKeywords = []string{
		"beginner", "advanced", "intermediate", "level",
		"duration", "time", "how long",
		"price", "cost", "fees",
	}
	// recommendKeywords includes common misspellings of "recommend" so a
	// sloppy "recomend me something" still triggers the recommendation path.
	recommendKeywords = []string{
		"course", "courses", "learn", "study", "explore",
		"recommend", "recomend", "reccomend", "suggest", "advise",
	}
	greetingKeywords  = []string{"hi", "hello", "hey", "yo", "sup"}
	smalltalkKeywords = []string{"how are you", "who are you", "what can you do", "help"}
	farewellKeywords  = []string{"thanks", "thank you", "bye", "goodbye", "see you", "later"}
	metaKeywords      = []string{"follow up", "follow-up", "can i ask", "how does this work"}
	resetKeywords     = []string{"reset", "start over", "new topic", "clear"}
)

// Classify maps a message to an intent via an ordered keyword cascade; the
// first matching bucket wins. The order is load-bearing: a message carrying
// both a recommend verb and a farewell word classifies as recommend.
func Classify(message string) Intent {
	text := strings.ToLower(message)

	switch {
	case containsAny(text, questionKeywords):
		return IntentQuestion
	case containsAny(text, recommendKeywords):
		return IntentRecommend
	case containsAny(text, greetingKeywords):
		return IntentGreeting
	case containsAny(text, smalltalkKeywords):
		return IntentSmalltalk
	case containsAny(text, farewellKeywords):
		return IntentFarewell
	case containsAny(text, metaKeywords):
		return IntentMeta
	case containsAny(text, resetKeywords):
		return IntentReset
	}
	return IntentChat
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
