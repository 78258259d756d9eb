package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/render"
	"github.com/abhisek/geomotion/internal/session"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer value-estimation questions in the console",
	Long: `Show the views for random angles and ask for the function value.

No TUI: the views are printed as braille text and answers (1-4) are read
from stdin, so the command also works in pipes.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("function", "sin", "Function: sin, cos or tan")
	quizCmd.Flags().Int("count", 5, "Number of questions")
	quizCmd.Flags().Uint64("seed", 0, "Seed for the questions (0 = random)")
}

// quizRun is one console quiz.
type quizRun struct {
	Function  trig.Function
	Count     int
	Generator *quiz.Generator
	Events    store.EventRepo
	SessionID string
}

func runQuiz(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fn, err := functionFromFlags(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	seed, _ := cmd.Flags().GetUint64("seed")

	st, err := store.OpenMemory(ctx)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer st.Close()

	run := quizRun{
		Function:  fn,
		Count:     count,
		Generator: quiz.NewSeededGenerator(seed),
		Events:    st.EventRepo(),
		SessionID: uuid.NewString(),
	}

	started := time.Now()
	out := cmd.OutOrStdout()
	run.play(ctx, cmd.InOrStdin(), out)

	sum, err := session.BuildSummary(ctx, st.StatsRepo(), run.SessionID, time.Since(started))
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}
	fmt.Fprintln(out)
	printSummary(out, sum)
	return nil
}

// play asks Count questions and returns the final quiz state. It stops
// early when in is exhausted.
func (r quizRun) play(ctx context.Context, in io.Reader, out io.Writer) *quiz.State {
	state := &quiz.State{}
	scanner := bufio.NewScanner(in)

	for i := 1; i <= r.Count; i++ {
		q, err := r.Generator.Next(r.Function)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		state.Start(q)
		asked := time.Now()

		fmt.Fprintf(out, "── Question %d/%d ──\n", i, r.Count)
		fmt.Fprintln(out, render.Plain(q.Function, q.Angle, 48, 8))
		fmt.Fprintln(out, quiz.Prompt(q))
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || !state.Submit(choice-1) {
			fmt.Fprintf(out, "(skipped) Answer: %s\n\n", q.Answer)
			continue
		}

		if state.IsCorrect() {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		fmt.Fprintln(out)

		if r.Events == nil {
			continue
		}
		err = r.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     r.SessionID,
			Function:      q.Function.String(),
			Angle:         q.Angle,
			CorrectAnswer: q.Answer,
			LearnerAnswer: q.Options[choice-1],
			Correct:       state.IsCorrect(),
			TimeMs:        time.Since(asked).Milliseconds(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log answer: %v\n", err)
		}
	}
	return state
}
