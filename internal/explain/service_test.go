package explain

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/llm"
	"github.com/abhisek/geomotion/internal/trig"
)

func TestExplain_NoProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	assert.False(t, svc.Configured())
	assert.Equal(t, MsgCredentialMissing, svc.Explain(context.Background(), Input{Function: trig.Sine, Angle: 1}))

	var nilSvc *Service
	assert.Equal(t, MsgCredentialMissing, nilSvc.Explain(context.Background(), Input{}))
}

func TestExplain_ReturnsModelText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"  At 45 degrees the point sits at (0.71, 0.71).  "}`),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Explain(context.Background(), Input{Function: trig.Sine, Angle: math.Pi / 4})
	assert.Equal(t, "At 45 degrees the point sits at (0.71, 0.71).", got)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls()[0]
	assert.Equal(t, ExplanationSchema, req.Schema)
	assert.Equal(t, 300, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "- Function: SIN")
	assert.Contains(t, req.Messages[0].Content, "- Angle: 45 degrees (0.79 radians)")
	assert.Contains(t, req.Messages[0].Content, "- Value: 0.71")
}

func TestExplain_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want string
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("dial tcp")}}, MsgUnavailable},
		{"rate limited", llm.MockResponse{Err: &llm.ErrRateLimit{}}, MsgUnavailable},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"text":"hi"}`)}, MsgUnavailable},
		{"blank text", llm.MockResponse{Content: json.RawMessage(`{"explanation":"   "}`)}, MsgEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(llm.NewMockProvider(tt.resp), DefaultConfig())
			assert.Equal(t, tt.want, svc.Explain(context.Background(), Input{Function: trig.Cosine, Angle: 2}))
		})
	}
}

func TestBuildUserMessage_Tangent(t *testing.T) {
	msg := buildUserMessage(Input{Function: trig.Tangent, Angle: 3 * math.Pi})
	assert.Contains(t, msg, "- Angle: 540 degrees (9.42 radians)")
	assert.Contains(t, msg, "- Function: TAN")
	assert.Contains(t, msg, "English")
}

func TestState(t *testing.T) {
	var s State
	assert.False(t, s.Visible())

	require.True(t, s.Begin())
	assert.True(t, s.Pending)
	assert.False(t, s.Begin(), "second request while pending")

	s.Complete("done")
	assert.False(t, s.Pending)
	assert.Equal(t, "done", s.Text)
	assert.True(t, s.Visible())

	require.True(t, s.Begin())
	assert.Empty(t, s.Text)

	s.Clear()
	assert.Equal(t, State{}, s)
}
