package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/geomotion/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the wave or circle view as an image",
	Long: `Render one view at a fixed angle with gonum/plot.

The output format follows the file extension: svg, png, pdf, eps, jpg or tif.`,
	Example: `  geomotion export --function cos --degrees 120 --view circle --out circle.svg
  geomotion export --function tan --angle 1.2 --out tan.png --size 8`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("function", "sin", "Function: sin, cos or tan")
	addAngleFlags(exportCmd)
	exportCmd.Flags().String("view", "wave", "View to export: wave or circle")
	exportCmd.Flags().StringP("out", "o", "", "Output file (required)")
	exportCmd.Flags().Float64("size", export.DefaultSize, "Image width in inches")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	fn, err := functionFromFlags(cmd)
	if err != nil {
		return err
	}
	viewVal, _ := cmd.Flags().GetString("view")
	view, err := export.ParseView(viewVal)
	if err != nil {
		return fmt.Errorf("--view: %w", err)
	}
	out, _ := cmd.Flags().GetString("out")
	size, _ := cmd.Flags().GetFloat64("size")
	if size <= 0 {
		return fmt.Errorf("--size must be positive, got %v", size)
	}

	opts := export.Options{
		Function: fn,
		Angle:    angleFromFlags(cmd),
		View:     view,
		Size:     size,
	}
	if err := export.Save(opts, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}
