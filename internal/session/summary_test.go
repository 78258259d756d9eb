package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunningAccuracy(t *testing.T) {
	got := RunningAccuracy([]bool{true, false, true, true})
	require.Len(t, got, 4)
	assert.InDelta(t, 100, got[0], 1e-9)
	assert.InDelta(t, 50, got[1], 1e-9)
	assert.InDelta(t, 200.0/3, got[2], 1e-9)
	assert.InDelta(t, 75, got[3], 1e-9)

	assert.Empty(t, RunningAccuracy(nil))
}

func TestBuildSummary(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	events := st.EventRepo()

	answers := []store.AnswerEventData{
		{SessionID: "s1", Function: "SIN", Correct: true},
		{SessionID: "s1", Function: "TAN", Correct: false},
		{SessionID: "s1", Function: "SIN", Correct: false},
		{SessionID: "s1", Function: "SIN", Correct: true},
		{SessionID: "other", Function: "COS", Correct: true},
	}
	for _, a := range answers {
		require.NoError(t, events.AppendAnswerEvent(ctx, a))
	}
	require.NoError(t, events.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation",
		InputTokens: 2000, OutputTokens: 500, Success: true,
	}))

	sum, err := BuildSummary(ctx, st.StatsRepo(), "s1", 95*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.TotalQuestions)
	assert.Equal(t, 2, sum.TotalCorrect)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.Equal(t, []FunctionResult{
		{Function: trig.Sine, Attempted: 3, Correct: 2},
		{Function: trig.Tangent, Attempted: 1, Correct: 0},
	}, sum.Functions)
	assert.Len(t, sum.Trend, 4)
	assert.InDelta(t, 50, sum.Trend[3], 1e-9)

	require.Len(t, sum.Usage, 1)
	assert.Equal(t, "explanation", sum.Usage[0].Key)
	assert.InDelta(t, 0.0006, sum.Cost, 1e-12)
	assert.Empty(t, sum.Unpriced)
	assert.Equal(t, "$0.0006", sum.CostString())
	assert.Equal(t, "1:35", sum.DurationString())
}

func TestBuildSummary_Empty(t *testing.T) {
	st := openStore(t)
	sum, err := BuildSummary(context.Background(), st.StatsRepo(), "s1", 0)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalQuestions)
	assert.Zero(t, sum.Accuracy)
	assert.Empty(t, sum.Trend)
	assert.Equal(t, "$0.0000", sum.CostString())
}

func TestBuildSummary_UnpricedModel(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	require.NoError(t, st.EventRepo().AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "explanation", Success: true,
	}))

	sum, err := BuildSummary(ctx, st.StatsRepo(), "s1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"mock"}, sum.Unpriced)
	assert.Equal(t, "n/a", sum.CostString())
}

func TestTrendChart(t *testing.T) {
	assert.Empty(t, TrendChart(nil, 30, 5))
	assert.Empty(t, TrendChart([]float64{100}, 30, 5))

	chart := TrendChart([]float64{100, 50, 66, 75}, 30, 5)
	assert.NotEmpty(t, chart)
	assert.Contains(t, chart, "Accuracy %")
	assert.GreaterOrEqual(t, strings.Count(chart, "\n"), 5)
}
