package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/trig"
)

// addAngleFlags registers --angle (radians) and --degrees on cmd.
func addAngleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("angle", trig.InitialAngle, "Angle in radians")
	cmd.Flags().Float64("degrees", 0, "Angle in degrees (overrides the radians default)")
	cmd.MarkFlagsMutuallyExclusive("angle", "degrees")
}

// angleFromFlags returns the angle in radians.
func angleFromFlags(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("degrees") {
		deg, _ := cmd.Flags().GetFloat64("degrees")
		return trig.Radians(deg)
	}
	angle, _ := cmd.Flags().GetFloat64("angle")
	return angle
}

func functionFromFlags(cmd *cobra.Command) (trig.Function, error) {
	val, _ := cmd.Flags().GetString("function")
	fn, err := trig.ParseFunction(val)
	if err != nil {
		return "", fmt.Errorf("--function: %w", err)
	}
	return fn, nil
}
