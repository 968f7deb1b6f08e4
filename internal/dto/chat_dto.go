package dto

// ChatTurnRequest is one inbound conversational turn. Skills and interests
// are the labels the user toggled in the UI; UserId identifies the session
// and falls back to a fixed default when absent.
type ChatTurnRequest struct {
	Message   string   `json:"message"`
	Skills    []string `json:"skills" validate:"omitempty,dive,max=64"`
	Interests []string `json:"interests" validate:"omitempty,dive,max=64"`
	UserId    string   `json:"userId" validate:"omitempty,max=64"`
}

// CourseDTO is the shape of one recommended course inside a reply.
type CourseDTO struct {
	Title    string  `json:"title"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Url      string  `json:"url"`
	Level    string  `json:"level,omitempty"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"`
	Provider string  `json:"provider,omitempty"`
}

type HistoryEntryDTO struct {
	Message string   `json:"message"`
	Tags    []string `json:"tags"`
}

// ChatTurnResponse is the single outbound envelope. Every branch of the
// engine degrades to a valid instance of it; a turn never hard-fails.
type ChatTurnResponse struct {
	Reply        string            `json:"reply"`
	Courses      []CourseDTO       `json:"courses"`
	QuickReplies []string          `json:"quickReplies,omitempty"`
	History      []HistoryEntryDTO `json:"history,omitempty"`
}

// TurnProcessedMessage is published on the event bus after each
// state-mutating turn.
type TurnProcessedMessage struct {
	UserId      string   `json:"user_id"`
	Intent      string   `json:"intent"`
	SearchTags  []string `json:"search_tags"`
	ResultCount int      `json:"result_count"`
}
