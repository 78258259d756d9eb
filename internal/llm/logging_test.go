package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/store"
)

func TestLogging_RecordsUsage(t *testing.T) {
	ctx := context.Background()
	s, err := store.OpenMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"explanation":"ok"}`), Usage: Usage{InputTokens: 40, OutputTokens: 12}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, ProviderMock, s.EventRepo())

	_, err = p.Generate(WithPurpose(ctx, PurposeExplanation), Request{Schema: testSchema()})
	require.NoError(t, err)
	_, err = p.Generate(WithPurpose(ctx, PurposeExplanation), Request{})
	require.Error(t, err)

	rows, err := s.StatsRepo().LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "explanation", rows[0].Key)
	assert.Equal(t, 2, rows[0].Calls)
	assert.Equal(t, 1, rows[0].Failures)
	assert.Equal(t, 40, rows[0].InputTokens)
	assert.Equal(t, 12, rows[0].OutputTokens)

	byModel, err := s.StatsRepo().LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, "mock", byModel[0].Key)
}

func TestLogging_ClosedStoreDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	s, err := store.OpenMemory(ctx)
	require.NoError(t, err)
	repo := s.EventRepo()
	require.NoError(t, s.Close())

	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"explanation":"ok"}`)})
	resp, err := WithLogging(mock, ProviderMock, repo).Generate(ctx, Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"explanation":"ok"}`, string(resp.Content))
}

func TestSerializeRequest(t *testing.T) {
	out := serializeRequest(Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "why is sin(0) zero?"}},
		Schema:   testSchema(),
	})
	assert.Contains(t, out, "[system]\nbe brief")
	assert.Contains(t, out, "[user]\nwhy is sin(0) zero?")
	assert.Contains(t, out, "[schema: test-explanation]")
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeout_CancelsSlowProvider(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())
}

func TestTimeout_NonPositiveIsPassthrough(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, Provider(mock), WithTimeout(mock, 0))
}

func TestEstimateCost(t *testing.T) {
	usd, ok := EstimateCost("gemini-2.5-flash", 1_000_000, 1_000_000)
	require.True(t, ok)
	assert.InDelta(t, 2.8, usd, 1e-9)

	usd, ok = EstimateCost("gpt-4o-mini", 2000, 500)
	require.True(t, ok)
	assert.InDelta(t, 0.0006, usd, 1e-12)

	_, ok = EstimateCost("mock", 10, 10)
	assert.False(t, ok)
	assert.Nil(t, LookupCost("mock"))
}

func TestTruncated(t *testing.T) {
	assert.NoError(t, truncated("end", nil))
	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, truncated("max_tokens", json.RawMessage(`{"explanation":"cut`)), &mt)
}
