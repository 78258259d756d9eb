package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/explain"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Ask the AI tutor about one angle",
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().String("function", "sin", "Function: sin, cos or tan")
	addAngleFlags(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fn, err := functionFromFlags(cmd)
	if err != nil {
		return err
	}
	angle := angleFromFlags(cmd)

	st, err := store.OpenMemory(ctx)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer st.Close()

	provider, _ := openProvider(ctx, st.EventRepo())
	svc := explain.NewService(provider, explain.DefaultConfig())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s at %.0f° (%.2f rad) = %s\n\n",
		fn, math.Round(trig.Degrees(angle)), angle, trig.Readout(fn, angle))
	fmt.Fprintln(out, svc.Explain(ctx, explain.Input{Function: fn, Angle: angle}))
	return nil
}
