package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder renders SQLite statements.
var builder = entsql.Dialect(dialect.SQLite)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// insert stamps the next sequence number and the current time onto a row.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals []any) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := builder.Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, cols...)...).
		Values(append([]any{seq, time.Now().UTC()}, vals...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, d LLMRequestEventData) error {
	return r.insert(ctx, tableLLMRequests,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message", "request_body", "response_body"},
		[]any{d.Provider, d.Model, d.Purpose, d.InputTokens, d.OutputTokens, d.LatencyMs, d.Success, d.ErrorMessage, d.RequestBody, d.ResponseBody},
	)
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, d AnswerEventData) error {
	return r.insert(ctx, tableAnswers,
		[]string{"session_id", "function", "angle", "correct_answer", "learner_answer", "correct", "time_ms"},
		[]any{d.SessionID, d.Function, d.Angle, d.CorrectAnswer, d.LearnerAnswer, d.Correct, d.TimeMs},
	)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, d SessionEventData) error {
	return r.insert(ctx, tableSessions,
		[]string{"session_id", "action", "mode", "function", "score", "total"},
		[]any{d.SessionID, d.Action, d.Mode, d.Function, d.Score, d.Total},
	)
}
