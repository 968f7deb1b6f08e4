package store

import "course-mentor-be/internal/entity"

// HistoryLimit caps the rolling history kept per session.
const HistoryLimit = 5

// HistoryEntry records one past query and the tags it resolved to.
type HistoryEntry struct {
	Message string   `json:"message"`
	Tags    []string `json:"tags"`
}

// Session is the per-conversation dialogue state kept in memory between
// turns. It is created lazily on the first turn for a user id and lives for
// the process lifetime.
type Session struct {
	ID             string
	LastIntent     string
	LastSearchTags []string

	// LastResults holds the full ranked candidate list, not just the page
	// that was shown. Pagination and indexed lookups resolve against it.
	LastResults []*entity.Course

	// LastOffset is the next pagination cursor: 0 <= LastOffset <= len(LastResults).
	LastOffset int

	History []HistoryEntry
}

// RecordTurn appends to the rolling history, evicting the oldest entries past
// the cap.
func (s *Session) RecordTurn(message string, tags []string) {
	s.History = append(s.History, HistoryEntry{Message: message, Tags: tags})
	if len(s.History) > HistoryLimit {
		s.History = s.History[len(s.History)-HistoryLimit:]
	}
}
