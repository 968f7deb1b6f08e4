package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"course-mentor-be/internal/constant"
	"course-mentor-be/internal/dto"
	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/pkg/logger"
	"course-mentor-be/internal/repository/memory"
	"course-mentor-be/internal/repository/specification"
	"course-mentor-be/pkg/enrich"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCourseRepository struct {
	courses   []*entity.Course
	err       error
	lastTags  []string
	lastLimit int
}

func (s *stubCourseRepository) Create(context.Context, *entity.Course) error       { return nil }
func (s *stubCourseRepository) CreateBulk(context.Context, []*entity.Course) error { return nil }
func (s *stubCourseRepository) DeleteAll(context.Context) error                    { return nil }

func (s *stubCourseRepository) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(s.courses)), nil
}

func (s *stubCourseRepository) FindAll(context.Context, ...specification.Specification) ([]*entity.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseRepository) FindByAnyTag(_ context.Context, tags []string, limit int) ([]*entity.Course, error) {
	s.lastTags = tags
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.courses, nil
}

type stubPublisher struct {
	payloads [][]byte
}

func (s *stubPublisher) Publish(_ context.Context, payload []byte) error {
	s.payloads = append(s.payloads, payload)
	return nil
}

func (s *stubPublisher) lastTurn(t *testing.T) dto.TurnProcessedMessage {
	t.Helper()
	require.NotEmpty(t, s.payloads)
	var turn dto.TurnProcessedMessage
	require.NoError(t, json.Unmarshal(s.payloads[len(s.payloads)-1], &turn))
	return turn
}

func newTestService(repo *stubCourseRepository) (IChatService, *stubPublisher) {
	publisher := &stubPublisher{}
	svc := NewChatService(
		repo,
		memory.NewSessionRepository(),
		enrich.NoopEnricher{},
		publisher,
		logger.NewNopLogger(),
		time.Second,
		time.Second,
	)
	return svc, publisher
}

// aiCatalog builds n distinct courses tagged "ai" with strictly descending
// ratings, so the ranked order matches the build order.
func aiCatalog(n int) []*entity.Course {
	courses := make([]*entity.Course, n)
	for i := range courses {
		courses[i] = &entity.Course{
			Title:      fmt.Sprintf("alpha%d", i+1),
			Provider:   "Udemy",
			Tags:       []string{"ai"},
			Level:      "Beginner",
			Price:      19.99,
			Rating:     5.0 - float64(i)*0.1,
			NumReviews: 100 + i,
			Duration:   "6 weeks",
			Url:        fmt.Sprintf("https://example.com/alpha%d", i+1),
		}
	}
	return courses
}

func titles(courses []dto.CourseDTO) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.Title
	}
	return out
}

func TestSendTurnWithSelectionsOnly(t *testing.T) {
	repo := &stubCourseRepository{courses: aiCatalog(3)}
	svc, publisher := newTestService(repo)

	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{Skills: []string{"AI"}})

	require.Len(t, res.Courses, 3)
	assert.Contains(t, res.Reply, "top matches")
	assert.Contains(t, repo.lastTags, "ai")
	assert.Equal(t, constant.CandidateLimit, repo.lastLimit)
	assert.Equal(t, "Tell me more", res.QuickReplies[0])
	assert.Contains(t, res.QuickReplies, "Tell me about #1")

	turn := publisher.lastTurn(t)
	assert.Equal(t, "recommend", turn.Intent)
	assert.Equal(t, 3, turn.ResultCount)
	assert.Equal(t, constant.DefaultUserId, turn.UserId)
}

func TestSendTurnEmptyInput(t *testing.T) {
	svc, publisher := newTestService(&stubCourseRepository{})

	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{})

	assert.Equal(t, constant.ReplyNothingDetected, res.Reply)
	assert.Empty(t, res.Courses)
	assert.Empty(t, publisher.payloads)
}

func TestSendTurnPagination(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(12)})
	ctx := context.Background()

	first := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})
	require.Len(t, first.Courses, 5)
	assert.Equal(t, []string{"alpha1", "alpha2", "alpha3", "alpha4", "alpha5"}, titles(first.Courses))

	second := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "show me more"})
	assert.Equal(t, constant.ReplyMoreCourses, second.Reply)
	assert.Equal(t, []string{"alpha6", "alpha7", "alpha8", "alpha9", "alpha10"}, titles(second.Courses))
	assert.Empty(t, second.QuickReplies, "indexed prompts would point at the wrong courses on a later page")

	third := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "more"})
	assert.Equal(t, []string{"alpha11", "alpha12"}, titles(third.Courses))

	fourth := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "more"})
	assert.Equal(t, constant.ReplyExhausted, fourth.Reply)
	assert.Empty(t, fourth.Courses)
}

func TestSendTurnIndexedLookupIsReadOnly(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(12)})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})

	detail := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "#3"})
	require.Len(t, detail.Courses, 1)
	assert.Equal(t, "alpha3", detail.Courses[0].Title)
	assert.Contains(t, detail.Reply, "alpha3")

	// The lookup must not advance pagination.
	next := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "show me more"})
	assert.Equal(t, []string{"alpha6", "alpha7", "alpha8", "alpha9", "alpha10"}, titles(next.Courses))
}

func TestSendTurnIndexedLookupOutOfRange(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(2)})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})

	res := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "#9"})
	assert.Contains(t, res.Reply, "2 results")
	assert.Empty(t, res.Courses)
}

func TestSendTurnAnswersQuestionsFromCatalogFields(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(5)})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})

	level := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "is this for beginners?"})
	assert.Contains(t, level.Reply, "suitable for Beginner learners")
	assert.Contains(t, level.Reply, "alpha1")

	duration := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "what is the duration of #2"})
	assert.Contains(t, duration.Reply, "alpha2")
	assert.Contains(t, duration.Reply, "6 weeks")

	price := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "how much does it cost"})
	assert.Contains(t, price.Reply, "$19.99")
}

func TestSendTurnGreetingAndFarewell(t *testing.T) {
	svc, publisher := newTestService(&stubCourseRepository{})
	ctx := context.Background()

	greeting := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "hello"})
	assert.Equal(t, constant.ReplyGreeting, greeting.Reply)
	assert.Empty(t, greeting.Courses)

	farewell := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "thanks, bye"})
	assert.Equal(t, constant.ReplyFarewell, farewell.Reply)
	assert.Empty(t, publisher.payloads)
}

func TestSendTurnNoTopic(t *testing.T) {
	svc, publisher := newTestService(&stubCourseRepository{courses: aiCatalog(3)})

	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{Message: "suggest something"})

	assert.Equal(t, constant.ReplyNoTopic, res.Reply)
	assert.Empty(t, res.Courses)
	assert.Empty(t, publisher.payloads)
}

func TestSendTurnNoMatchesLeavesStateUntouched(t *testing.T) {
	svc, publisher := newTestService(&stubCourseRepository{})
	ctx := context.Background()

	res := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})
	assert.Contains(t, res.Reply, "Couldn't find good matches")
	assert.Empty(t, publisher.payloads)

	// No result set was stored, so a follow-up cannot page.
	next := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "show me more"})
	assert.NotEqual(t, constant.ReplyMoreCourses, next.Reply)
}

func TestSendTurnRepositoryErrorDegradesToApology(t *testing.T) {
	svc, publisher := newTestService(&stubCourseRepository{err: fmt.Errorf("connection refused")})

	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{Message: "recommend ai courses"})

	assert.Equal(t, constant.ReplyRepositoryError, res.Reply)
	assert.Empty(t, res.Courses)
	assert.Empty(t, publisher.payloads)
}

func TestSendTurnSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(12)})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{UserId: "a", Message: "recommend ai courses"})

	other := svc.SendTurn(ctx, &dto.ChatTurnRequest{UserId: "b", Message: "thanks, bye"})
	assert.Equal(t, constant.ReplyFarewell, other.Reply)

	next := svc.SendTurn(ctx, &dto.ChatTurnRequest{UserId: "a", Message: "show me more"})
	assert.Equal(t, []string{"alpha6", "alpha7", "alpha8", "alpha9", "alpha10"}, titles(next.Courses))
}

func TestSendTurnResetClearsSession(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(5)})
	ctx := context.Background()

	seeded := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})
	require.NotEmpty(t, seeded.History)

	res := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "reset"})
	assert.Equal(t, constant.ReplyReset, res.Reply)
	assert.Empty(t, res.History)
}

func TestSendTurnMentionsExplicitNewTopics(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(3)})

	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{
		Message: "recommend blockchain courses",
		Skills:  []string{"AI"},
	})

	assert.Contains(t, res.Reply, "I also considered")
	assert.Contains(t, res.Reply, "blockchain")

	// Switch suggestions come from the topics the message introduced, not
	// from tags already searched for.
	assert.Contains(t, res.QuickReplies, `Switch interest to "blockchain"`)
	assert.NotContains(t, res.QuickReplies, `Switch interest to "machine learning"`)

	// History keeps the full searched tag set for the turn.
	require.NotEmpty(t, res.History)
	recorded := res.History[len(res.History)-1].Tags
	assert.Contains(t, recorded, "ai")
	assert.Contains(t, recorded, "blockchain")
}

func TestSendTurnChatMessageGetsGenericHelp(t *testing.T) {
	repo := &stubCourseRepository{courses: aiCatalog(3)}
	svc, publisher := newTestService(repo)

	// Carries an extractable tag but no recommend signal; it must not run a
	// search or touch session state.
	res := svc.SendTurn(context.Background(), &dto.ChatTurnRequest{
		Message: "blockchain is a scam, honestly",
	})

	assert.Equal(t, constant.ReplyGenericHelp, res.Reply)
	assert.Empty(t, res.Courses)
	assert.Empty(t, res.History)
	assert.Empty(t, publisher.payloads)
	assert.Nil(t, repo.lastTags)
}

func TestSendTurnQuestionWithMissingCatalogFields(t *testing.T) {
	sparse := []*entity.Course{{
		Title:  "alpha1",
		Tags:   []string{"ai"},
		Rating: 4.5,
	}}
	svc, _ := newTestService(&stubCourseRepository{courses: sparse})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})

	level := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "is this for beginners?"})
	assert.Equal(t, constant.ReplyDontKnow, level.Reply)

	duration := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "how long does it take"})
	assert.Equal(t, constant.ReplyDontKnow, duration.Reply)

	price := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "what does it cost"})
	assert.Equal(t, constant.ReplyDontKnow, price.Reply)
}

func TestSendTurnDetailReferenceWithRecommendVerb(t *testing.T) {
	svc, _ := newTestService(&stubCourseRepository{courses: aiCatalog(12)})
	ctx := context.Background()

	svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "recommend ai courses"})

	// "course" reads as a recommend signal, but the indexed reference still
	// resolves against the last results instead of re-running a search.
	detail := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "tell me about course 2"})
	require.Len(t, detail.Courses, 1)
	assert.Equal(t, "alpha2", detail.Courses[0].Title)

	next := svc.SendTurn(ctx, &dto.ChatTurnRequest{Message: "show me more"})
	assert.Equal(t, []string{"alpha6", "alpha7", "alpha8", "alpha9", "alpha10"}, titles(next.Courses))
}
