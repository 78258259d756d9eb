// Package explain asks a language model to describe the current angle.
// Every outcome is a displayable string; failures map to fixed messages.
package explain

import (
	"context"
	"strings"

	"github.com/abhisek/geomotion/internal/llm"
)

// Service turns a function and angle into a short explanation.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service. A nil provider is allowed and
// makes every call return MsgCredentialMissing.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s != nil && s.provider != nil
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
}

// Explain blocks until the provider answers. It never returns an empty
// string.
func (s *Service) Explain(ctx context.Context, in Input) string {
	if !s.Configured() {
		return MsgCredentialMissing
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return MsgUnavailable
	}

	var out explanationOutput
	if err := resp.Decode(&out); err != nil {
		return MsgUnavailable
	}
	text := strings.TrimSpace(out.Explanation)
	if text == "" {
		return MsgEmpty
	}
	return text
}
