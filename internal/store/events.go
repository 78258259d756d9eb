package store

import (
	"context"
	"time"
)

// LLMRequestEventData is one call to a language model.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AnswerEventData is one submitted quiz answer.
type AnswerEventData struct {
	SessionID     string
	Function      string
	Angle         float64
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	TimeMs        int64
}

// Session actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData marks the start or end of an explorer session.
type SessionEventData struct {
	SessionID string
	Action    string
	Mode      string
	Function  string
	Score     int
	Total     int
}

// EventRepo appends events to the log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
}

// AnswerEvent is a stored answer with its log position.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// QueryOpts filters event queries.
type QueryOpts struct {
	SessionID string // exact match when set
	After     int64  // sequence > After
	Limit     int    // 0 = unlimited
}

// UsageRow aggregates LLM requests under one key (a purpose or a model).
type UsageRow struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
}

// StatsRepo reads aggregates back out of the log.
type StatsRepo interface {
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error)
	LLMUsageByModel(ctx context.Context) ([]UsageRow, error)
}
