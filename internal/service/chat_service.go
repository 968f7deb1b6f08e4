package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"course-mentor-be/internal/constant"
	"course-mentor-be/internal/dto"
	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/pkg/logger"
	"course-mentor-be/internal/repository/contract"
	"course-mentor-be/internal/repository/memory"
	"course-mentor-be/pkg/enrich"
	"course-mentor-be/pkg/nlp"
	"course-mentor-be/pkg/rank"
	"course-mentor-be/pkg/store"
)

// IChatService processes one conversational turn. SendTurn never fails hard:
// every internal error degrades to a valid reply envelope.
type IChatService interface {
	SendTurn(ctx context.Context, request *dto.ChatTurnRequest) *dto.ChatTurnResponse
}

type chatService struct {
	courseRepo    contract.CourseRepository
	sessionRepo   *memory.SessionRepository
	enricher      enrich.Enricher
	publisher     IPublisherService
	log           logger.ILogger
	queryTimeout  time.Duration
	enrichTimeout time.Duration
}

func NewChatService(
	courseRepo contract.CourseRepository,
	sessionRepo *memory.SessionRepository,
	enricher enrich.Enricher,
	publisher IPublisherService,
	log logger.ILogger,
	queryTimeout time.Duration,
	enrichTimeout time.Duration,
) IChatService {
	return &chatService{
		courseRepo:    courseRepo,
		sessionRepo:   sessionRepo,
		enricher:      enricher,
		publisher:     publisher,
		log:           log,
		queryTimeout:  queryTimeout,
		enrichTimeout: enrichTimeout,
	}
}

func (s *chatService) SendTurn(ctx context.Context, request *dto.ChatTurnRequest) *dto.ChatTurnResponse {
	userId := strings.TrimSpace(request.UserId)
	if userId == "" {
		userId = constant.DefaultUserId
	}

	// Turns for the same session run one at a time, so reads and writes of
	// the dialogue state below need no further synchronization.
	release := s.sessionRepo.Acquire(userId)
	defer release()

	session := s.sessionRepo.GetOrCreate(userId)

	text := strings.TrimSpace(request.Message)
	if text == "" {
		if len(request.Skills) == 0 && len(request.Interests) == 0 {
			return s.reply(session, constant.ReplyNothingDetected)
		}
		// A bare selection submit acts like an explicit ask for those topics.
		text = "recommend courses for " +
			strings.Join(request.Skills, " ") + " " + strings.Join(request.Interests, " ")
	}

	lower := strings.ToLower(text)
	intent := nlp.Classify(text)

	if len(session.LastResults) > 0 && containsAnyPhrase(lower, constant.FollowUpTriggers) {
		return s.nextPage(ctx, session)
	}

	// Question-intent messages resolve their own ordinal target below, so
	// they skip the plain indexed lookup.
	if len(session.LastResults) > 0 && intent != nlp.IntentQuestion {
		if idx, ok := nlp.ParseOrdinal(lower); ok {
			return s.describeCourse(ctx, session, text, idx)
		}
	}

	switch intent {
	case nlp.IntentGreeting:
		return s.reply(session, constant.ReplyGreeting)
	case nlp.IntentSmalltalk, nlp.IntentMeta:
		return s.reply(session, constant.ReplySmalltalk)
	case nlp.IntentFarewell:
		return s.reply(session, constant.ReplyFarewell)
	case nlp.IntentReset:
		s.resetSession(session)
		return s.reply(session, constant.ReplyReset)
	}

	if intent == nlp.IntentQuestion && len(session.LastResults) > 0 {
		return s.answerQuestion(ctx, session, text, lower)
	}

	// Only an explicit recommend intent runs a search. A terse non-recommend
	// message right after a recommendation reads as an implicit "show me
	// more"; any other non-recommend message gets pointed at what the bot
	// can do.
	if intent != nlp.IntentRecommend {
		if session.LastIntent == string(nlp.IntentRecommend) &&
			len(text) < constant.ShortReplyThreshold &&
			len(session.LastResults) > 0 {
			return s.nextPage(ctx, session)
		}
		return s.reply(session, constant.ReplyGenericHelp)
	}

	return s.recommend(ctx, session, request, text)
}

// recommend is the catch-all search path: it merges the selection panels with
// the tags extracted from the message, queries the catalog, ranks the whole
// candidate set and serves the first page.
func (s *chatService) recommend(
	ctx context.Context,
	session *store.Session,
	request *dto.ChatTurnRequest,
	text string,
) *dto.ChatTurnResponse {
	messageTags := nlp.ExtractTags(text)
	skills := normalizeSelections(request.Skills)
	interests := normalizeSelections(request.Interests)

	effectiveInterests := union(interests, messageTags)
	explicitNewTopics := difference(messageTags, union(skills, interests))
	searchTags := union(skills, effectiveInterests)

	if len(searchTags) == 0 {
		return s.reply(session, constant.ReplyNoTopic)
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	candidates, err := s.courseRepo.FindByAnyTag(queryCtx, searchTags, constant.CandidateLimit)
	if err != nil {
		s.log.Error("ChatService", "catalog query failed", map[string]interface{}{
			"user_id":     session.ID,
			"search_tags": searchTags,
			"error":       err.Error(),
		})
		return s.reply(session, constant.ReplyRepositoryError)
	}

	ranked := rank.Order(candidates, skills, effectiveInterests, messageTags)
	if len(ranked) == 0 {
		return s.reply(session, fmt.Sprintf(
			"😕 Couldn't find good matches for %s. Try different skills or interests.",
			strings.Join(searchTags, ", "),
		))
	}

	top := ranked[:min(constant.PageSize, len(ranked))]

	session.LastIntent = string(nlp.IntentRecommend)
	session.LastSearchTags = searchTags
	session.LastResults = ranked
	session.LastOffset = len(top)
	session.RecordTurn(text, searchTags)
	s.sessionRepo.Save(session)

	s.publishTurn(ctx, session, string(nlp.IntentRecommend), searchTags, len(ranked))

	reply := "✨ Based on your selected skills and message, here are some top matches."
	if len(explicitNewTopics) > 0 {
		reply += "\n💡 I also considered: " + strings.Join(explicitNewTopics, ", ")
	}

	return &dto.ChatTurnResponse{
		Reply:        reply,
		Courses:      mapCourses(top),
		QuickReplies: s.quickReplies(len(top), explicitNewTopics),
		History:      mapHistory(session.History),
	}
}

// nextPage serves the next slice of the last ranked result set.
func (s *chatService) nextPage(ctx context.Context, session *store.Session) *dto.ChatTurnResponse {
	if session.LastOffset >= len(session.LastResults) {
		return s.reply(session, constant.ReplyExhausted)
	}

	end := min(session.LastOffset+constant.PageSize, len(session.LastResults))
	page := session.LastResults[session.LastOffset:end]
	session.LastOffset = end
	s.sessionRepo.Save(session)

	s.publishTurn(ctx, session, "followup", session.LastSearchTags, len(page))

	// No quick replies here: "Tell me about #i" suggestions number items by
	// their position in the full ranked list, which a later page no longer
	// starts at.
	return &dto.ChatTurnResponse{
		Reply:   constant.ReplyMoreCourses,
		Courses: mapCourses(page),
		History: mapHistory(session.History),
	}
}

// describeCourse answers "tell me about #3" style references against the last
// ranked list. Read-only: pagination state stays where it was.
func (s *chatService) describeCourse(
	ctx context.Context,
	session *store.Session,
	text string,
	idx int,
) *dto.ChatTurnResponse {
	if idx < 0 || idx >= len(session.LastResults) {
		return s.reply(session, fmt.Sprintf(
			"🤔 I only have %d results from your last search. Pick one of those or start a new search.",
			len(session.LastResults),
		))
	}

	course := session.LastResults[idx]
	base := fmt.Sprintf("📘 %s — ⭐ %.1f (%d reviews)\nLevel: %s • Duration: %s • Price: $%.2f • Provider: %s\n%s",
		course.Title, course.Rating, course.NumReviews,
		orNA(course.Level), orNA(course.Duration), course.Price, orNA(course.Provider), course.Url)

	reply := s.enrichReply(ctx, enrich.Context{
		UserMessage:   text,
		Course:        course,
		BaseReply:     base,
		Intent:        string(nlp.IntentQuestion),
		RecentHistory: session.History,
	})

	return &dto.ChatTurnResponse{
		Reply:   reply,
		Courses: mapCourses([]*entity.Course{course}),
		History: mapHistory(session.History),
	}
}

// answerQuestion resolves a follow-up question to one of the last results and
// answers from the catalog fields, deferring to the enricher only when no
// field applies.
func (s *chatService) answerQuestion(
	ctx context.Context,
	session *store.Session,
	text, lower string,
) *dto.ChatTurnResponse {
	course := s.resolveTarget(session, lower)

	// Canned answers come only from fields the catalog actually has; an
	// absent field defers to enrichment or the don't-know reply.
	var base string
	switch {
	case containsAnyPhrase(lower, []string{"beginner", "difficulty", "level"}):
		if course.Level != "" {
			base = fmt.Sprintf("📘 %q is suitable for %s learners.", course.Title, course.Level)
		}
	case containsAnyPhrase(lower, []string{"time", "duration", "long"}):
		if course.Duration != "" {
			base = fmt.Sprintf("⏱️ %q takes about %s to complete.", course.Title, course.Duration)
		}
	case containsAnyPhrase(lower, []string{"price", "cost", "fee"}):
		if course.Price > 0 {
			base = fmt.Sprintf("💰 %q costs around $%.2f.", course.Title, course.Price)
		}
	}

	if base == "" {
		reply := s.enrichReply(ctx, enrich.Context{
			UserMessage:   text,
			Course:        course,
			Intent:        string(nlp.IntentQuestion),
			RecentHistory: session.History,
		})
		if reply == "" {
			reply = constant.ReplyDontKnow
		}
		return s.reply(session, reply)
	}

	reply := s.enrichReply(ctx, enrich.Context{
		UserMessage:   text,
		Course:        course,
		BaseReply:     base,
		Intent:        string(nlp.IntentQuestion),
		RecentHistory: session.History,
	})
	return s.reply(session, reply)
}

// resolveTarget picks which of the last results a question refers to: an
// ordinal reference wins, then a title mention, then the top result.
func (s *chatService) resolveTarget(session *store.Session, lower string) *entity.Course {
	if idx, ok := nlp.ParseOrdinal(lower); ok && idx >= 0 && idx < len(session.LastResults) {
		return session.LastResults[idx]
	}

	for _, course := range session.LastResults {
		words := strings.Fields(strings.ToLower(course.Title))
		if len(words) > 0 && len(words[0]) > 2 && strings.Contains(lower, words[0]) {
			return course
		}
	}

	return session.LastResults[0]
}

func (s *chatService) resetSession(session *store.Session) {
	session.LastIntent = ""
	session.LastSearchTags = nil
	session.LastResults = nil
	session.LastOffset = 0
	session.History = nil
	s.sessionRepo.Save(session)
}

// enrichReply runs the rewriter under its own deadline and falls back to the
// base reply on any failure.
func (s *chatService) enrichReply(ctx context.Context, ec enrich.Context) string {
	enrichCtx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	rewritten, err := s.enricher.Rewrite(enrichCtx, ec)
	if err != nil {
		s.log.Warn("ChatService", "reply enrichment failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ec.BaseReply
	}
	if strings.TrimSpace(rewritten) == "" {
		return ec.BaseReply
	}
	return rewritten
}

func (s *chatService) publishTurn(ctx context.Context, session *store.Session, intent string, searchTags []string, resultCount int) {
	payload, err := json.Marshal(dto.TurnProcessedMessage{
		UserId:      session.ID,
		Intent:      intent,
		SearchTags:  searchTags,
		ResultCount: resultCount,
	})
	if err != nil {
		s.log.Error("ChatService", "failed to marshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	// Best effort: the publisher logs its own failures.
	_ = s.publisher.Publish(ctx, payload)
}

// quickReplies builds the suggestion list for a recommendation reply: the
// fixed prompts, one indexed detail prompt per shown course, and a switch
// suggestion for each topic the message introduced beyond the selections.
func (s *chatService) quickReplies(shown int, newTopics []string) []string {
	replies := append([]string(nil), constant.FixedQuickReplies...)
	for i := 0; i < shown; i++ {
		replies = append(replies, "Tell me about #"+strconv.Itoa(i+1))
	}
	for i, topic := range newTopics {
		if i == constant.MaxSwitchSuggestions {
			break
		}
		replies = append(replies, fmt.Sprintf("Switch interest to %q", topic))
	}
	return replies
}

// reply builds a course-less envelope. Session state is left untouched.
func (s *chatService) reply(session *store.Session, text string) *dto.ChatTurnResponse {
	return &dto.ChatTurnResponse{
		Reply:   text,
		Courses: []dto.CourseDTO{},
		History: mapHistory(session.History),
	}
}

// normalizeSelections maps UI selection labels onto the canonical vocabulary.
// Compound labels split on "/"; unknown labels pass through lowercased so they
// can still match catalog fields verbatim.
func normalizeSelections(selections []string) []string {
	var out []string
	for _, selection := range selections {
		for _, part := range strings.Split(selection, "/") {
			part = strings.Join(strings.Fields(part), " ")
			if part == "" {
				continue
			}
			if canonical, ok := nlp.NormalizeToken(part); ok {
				out = append(out, canonical)
				continue
			}
			out = append(out, strings.ToLower(part))
		}
	}
	return dedupeStrings(out)
}

func mapCourses(courses []*entity.Course) []dto.CourseDTO {
	out := make([]dto.CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseDTO{
			Title:    c.Title,
			Rating:   c.Rating,
			Reviews:  c.NumReviews,
			Url:      c.Url,
			Level:    c.Level,
			Price:    c.Price,
			Duration: c.Duration,
			Provider: c.Provider,
		})
	}
	return out
}

func mapHistory(history []store.HistoryEntry) []dto.HistoryEntryDTO {
	out := make([]dto.HistoryEntryDTO, 0, len(history))
	for _, h := range history {
		out = append(out, dto.HistoryEntryDTO{Message: h.Message, Tags: h.Tags})
	}
	return out
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func union(a, b []string) []string {
	return dedupeStrings(append(append([]string(nil), a...), b...))
}

func difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, s := range b {
		exclude[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := exclude[s]; !ok {
			out = append(out, s)
		}
	}
	return dedupeStrings(out)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
