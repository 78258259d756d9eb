package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/app"
	"github.com/abhisek/geomotion/internal/explain"
	"github.com/abhisek/geomotion/internal/llm"
	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/screens/explorer"
	"github.com/abhisek/geomotion/internal/session"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
)

// runApp opens the session log, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	modeVal, _ := cmd.Flags().GetString("mode")
	mode, err := explorer.ParseMode(modeVal)
	if err != nil {
		return fmt.Errorf("--mode: %w", err)
	}
	fn, err := functionFromFlags(cmd)
	if err != nil {
		return err
	}
	speed, _ := cmd.Flags().GetFloat64("speed")
	if err := trig.ValidateSpeed(speed); err != nil {
		return fmt.Errorf("--speed: %w", err)
	}
	seed, _ := cmd.Flags().GetUint64("seed")

	st, err := store.OpenMemory(ctx)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	provider, providerName := openProvider(ctx, events)

	opts := app.Options{
		Mode:      mode,
		Function:  fn,
		Speed:     speed,
		Seed:      seed,
		Explainer: explain.NewService(provider, explain.DefaultConfig()),
		Provider:  providerName,
		Events:    events,
		Stats:     st.StatsRepo(),
		SessionID: uuid.NewString(),
		Quiz:      &quiz.State{},
		Started:   time.Now(),
	}

	logSession(ctx, events, opts, store.SessionStart)
	runErr := app.Run(opts)
	logSession(ctx, events, opts, store.SessionEnd)
	if runErr != nil {
		return runErr
	}

	sum, err := session.BuildSummary(ctx, st.StatsRepo(), opts.SessionID, time.Since(opts.Started))
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}
	printSummary(os.Stdout, sum)
	return nil
}

// openProvider builds the LLM provider from the environment. Without one
// the tutor answers with a fixed notice, so failures are only reported.
func openProvider(ctx context.Context, repo store.EventRepo) (llm.Provider, string) {
	provider, cfg, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		} else {
			fmt.Fprintln(os.Stderr, "LLM provider failed to start:", err)
		}
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
		return nil, ""
	}
	return provider, cfg.Provider
}

func logSession(ctx context.Context, events store.EventRepo, opts app.Options, action string) {
	err := events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: opts.SessionID,
		Action:    action,
		Mode:      string(opts.Mode),
		Function:  opts.Function.String(),
		Score:     opts.Quiz.Score(),
		Total:     opts.Quiz.Total(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session %s: %v\n", action, err)
	}
}
