package constant

const (
	// DefaultUserId keys the session when the client sends no user id.
	DefaultUserId = "user1"

	// PageSize is how many courses one reply surfaces.
	PageSize = 5

	// CandidateLimit caps the repository candidate query.
	CandidateLimit = 200

	// ShortReplyThreshold: a non-recommend message shorter than this right
	// after a recommendation is treated as an implicit follow-up.
	ShortReplyThreshold = 20

	// MaxSwitchSuggestions caps the "Switch interest to ..." quick replies.
	MaxSwitchSuggestions = 3
)

// Reply copy mirrors the assistant voice of the web client.
const (
	ReplyNothingDetected = "😅 Oops — nothing detected. Try asking about a course or select skills/interests."
	ReplyMoreCourses     = "📚 Here are more courses similar to your last search:"
	ReplyExhausted       = "🤔 You’ve already seen all the courses I found. Try a new topic or refine your interests."
	ReplyGreeting        = "👋 Hey! I’m Mentora — tell me your skills/interests and I’ll suggest courses."
	ReplySmalltalk       = "🙂 I can help you find courses. Try: 'show me AI courses' or select skills on the left."
	ReplyFarewell        = "🙏 Good luck! Come back anytime to explore more courses."
	ReplyDontKnow        = "🤔 I don’t have that exact info. Try asking about duration, price, or level."
	ReplyGenericHelp     = "💡 You can ask 'I want to learn coding' or 'recommend AI courses'."
	ReplyReset           = "🔄 Fresh start! Tell me what you’d like to learn."
	ReplyNoTopic         = "Sorry, I couldn't identify a topic. Try 'I want to learn AI' or select skills/interests."
	ReplyRepositoryError = "Something went wrong. Try again in a moment."
)

// FollowUpTriggers short-circuit classification: any of these phrases plus a
// prior result set means "next page".
var FollowUpTriggers = []string{
	"show me more", "more", "another one", "few more", "tell me more",
	"continue", "yes", "please", "i want more", "recommend more",
}

// FixedQuickReplies lead every recommendation reply.
var FixedQuickReplies = []string{
	"Tell me more",
	"How long does this take?",
	"Is this for beginners?",
	"Show me more",
}
