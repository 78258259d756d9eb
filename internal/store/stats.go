package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

type statsRepo struct {
	db *sql.DB
}

func (r *statsRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	sel := builder.Select(
		"sequence", "timestamp", "session_id", "function", "angle",
		"correct_answer", "learner_answer", "correct", "time_ms",
	).From(entsql.Table(tableAnswers))

	var preds []*entsql.Predicate
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ("session_id", opts.SessionID))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy("sequence")
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		if err := rows.Scan(
			&e.Sequence, &e.Timestamp, &e.SessionID, &e.Function, &e.Angle,
			&e.CorrectAnswer, &e.LearnerAnswer, &e.Correct, &e.TimeMs,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *statsRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsage(ctx, "purpose")
}

func (r *statsRepo) LLMUsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsage(ctx, "model")
}

// llmUsage groups LLM request events by column, busiest first.
func (r *statsRepo) llmUsage(ctx context.Context, column string) ([]UsageRow, error) {
	query, args := builder.Select(
		column,
		entsql.As(entsql.Count("*"), "calls"),
		"COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0)",
		"COALESCE("+entsql.Sum("input_tokens")+", 0)",
		"COALESCE("+entsql.Sum("output_tokens")+", 0)",
		"COALESCE("+entsql.Sum("latency_ms")+", 0)",
	).
		From(entsql.Table(tableLLMRequests)).
		GroupBy(column).
		OrderBy(entsql.Desc("calls"), column).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var u UsageRow
		if err := rows.Scan(&u.Key, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &u.LatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Totals sums usage rows.
func Totals(rows []UsageRow) UsageRow {
	var t UsageRow
	for _, r := range rows {
		t.Calls += r.Calls
		t.Failures += r.Failures
		t.InputTokens += r.InputTokens
		t.OutputTokens += r.OutputTokens
		t.LatencyMs += r.LatencyMs
	}
	return t
}
