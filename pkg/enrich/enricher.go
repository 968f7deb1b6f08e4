package enrich

import (
	"context"

	"course-mentor-be/internal/entity"
	"course-mentor-be/pkg/store"
)

// Context carries everything the rewriter may use to phrase a reply.
type Context struct {
	UserMessage   string
	Course        *entity.Course
	BaseReply     string
	Intent        string
	RecentHistory []store.HistoryEntry
}

// Enricher rewrites a deterministic base reply into a friendlier one. Any
// failure is recoverable: callers fall back to the base reply.
type Enricher interface {
	Rewrite(ctx context.Context, ec Context) (string, error)
}

// NoopEnricher returns the base reply unchanged. Used when USE_LLM is off.
type NoopEnricher struct{}

func (NoopEnricher) Rewrite(_ context.Context, ec Context) (string, error) {
	return ec.BaseReply, nil
}
