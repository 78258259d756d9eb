package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschema "github.com/abhisek/geomotion/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{tableLLMRequests, tableAnswers, tableSessions, "global_sequence"} {
		var got string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&got)
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}
}

func TestOpen_PragmasApplied(t *testing.T) {
	s := openTestStore(t)
	var fk int
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, a.EventRepo().AppendAnswerEvent(ctx, AnswerEventData{SessionID: "x", Function: "SIN"}))

	got, err := b.StatsRepo().QueryAnswerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s", Function: "SIN"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "explanation", Success: true}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s", Function: "COS"}))

	events, err := s.StatsRepo().QueryAnswerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Sequence)
	assert.Equal(t, int64(3), events[1].Sequence)
}

func TestAnswerEvents_RoundTripAndFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	sessionA := uuid.NewString()
	sessionB := uuid.NewString()
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: sessionA, Function: "SIN", Angle: 0.785,
		CorrectAnswer: "0.71", LearnerAnswer: "0.71", Correct: true, TimeMs: 1200,
	}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: sessionB, Function: "TAN", Angle: 1.2,
		CorrectAnswer: "2.57", LearnerAnswer: "-2.57", Correct: false, TimeMs: 800,
	}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: sessionA, Function: "COS", Angle: 3.1,
		CorrectAnswer: "-1.00", LearnerAnswer: "1.00", Correct: false, TimeMs: 500,
	}))

	got, err := s.StatsRepo().QueryAnswerEvents(ctx, QueryOpts{SessionID: sessionA})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SIN", got[0].Function)
	assert.InDelta(t, 0.785, got[0].Angle, 1e-12)
	assert.True(t, got[0].Correct)
	assert.Equal(t, int64(1200), got[0].TimeMs)
	assert.False(t, got[0].Timestamp.IsZero())
	assert.Equal(t, "COS", got[1].Function)
	assert.False(t, got[1].Correct)

	got, err = s.StatsRepo().QueryAnswerEvents(ctx, QueryOpts{After: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TAN", got[0].Function)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "explanation", InputTokens: 100, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "explanation", InputTokens: 120, OutputTokens: 50, LatencyMs: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "explanation", LatencyMs: 50, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "unknown", InputTokens: 10, OutputTokens: 5, LatencyMs: 20, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := s.StatsRepo().LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, UsageRow{
		Key: "explanation", Calls: 3, Failures: 1,
		InputTokens: 220, OutputTokens: 90, LatencyMs: 850,
	}, byPurpose[0])

	byModel, err := s.StatsRepo().LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Key)
	assert.Equal(t, "gpt-4o-mini", byModel[1].Key)

	total := Totals(byModel)
	assert.Equal(t, 4, total.Calls)
	assert.Equal(t, 230, total.InputTokens)
}

func TestLLMUsage_Empty(t *testing.T) {
	s := openTestStore(t)
	rows, err := s.StatsRepo().LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	repo := s.EventRepo()
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: id, Action: SessionStart, Mode: "quiz", Function: "SIN"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: id, Action: SessionEnd, Mode: "quiz", Function: "TAN", Score: 3, Total: 4}))

	var n int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM session_events WHERE session_id = ?", id).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestTableFor_LaysOutEventSchema(t *testing.T) {
	tbl, err := tableFor(tableAnswers, entschema.AnswerEvent{})
	require.NoError(t, err)

	var names []string
	for _, c := range tbl.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"id", "sequence", "timestamp",
		"session_id", "function", "angle", "correct_answer", "learner_answer", "correct", "time_ms",
	}, names)
	require.Len(t, tbl.PrimaryKey, 1)
	assert.Equal(t, "id", tbl.PrimaryKey[0].Name)

	seq, ok := tbl.Column("sequence")
	require.True(t, ok)
	assert.True(t, seq.Unique)

	ts, ok := tbl.Column("timestamp")
	require.True(t, ok)
	assert.Nil(t, ts.Default)

	var idx []string
	for _, i := range tbl.Indexes {
		idx = append(idx, i.Name)
	}
	assert.Equal(t, []string{"answer_events_timestamp", "answer_events_session_id"}, idx)
}

func TestOpen_CreatesIndexes(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"answer_events_session_id", "llm_request_events_purpose", "session_events_timestamp"} {
		var got string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name=?", name).Scan(&got)
		require.NoError(t, err, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.EventRepo().AppendAnswerEvent(ctx, AnswerEventData{SessionID: "a", Function: "SIN"}))

	require.NoError(t, migrate(ctx, s.DB()))

	got, err := s.StatsRepo().QueryAnswerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
