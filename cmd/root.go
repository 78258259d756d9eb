package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/trig"
)

var rootCmd = &cobra.Command{
	Use:   "geomotion",
	Short: "Watch the unit circle turn into trig waves",
	Long: `GeoMotion: a terminal visualization of sine, cosine and tangent.

A radius turns on the unit circle next to the matching waveform. In quiz
mode you estimate values from the pictures; in tutor mode an AI tutor
explains the current angle (needs an LLM API key, e.g. GEMINI_API_KEY).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("mode", "quiz", "Panel mode: quiz or tutor")
	rootCmd.Flags().String("function", "sin", "Starting function: sin, cos or tan")
	rootCmd.Flags().Float64("speed", trig.DefaultSpeed, "Rotation speed in radians per second")
	rootCmd.Flags().Uint64("seed", 0, "Seed for quiz questions (0 = random)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}
