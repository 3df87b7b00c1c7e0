package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/legend"
	"github.com/banshee-data/bivariate.report/internal/palette"
)

// LegendCmd returns the legend command
func LegendCmd() *cobra.Command {
	var paletteName string
	var legacy bool
	var breaksA, breaksB []float64
	var xLabel, yLabel string
	var outPath string

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Render a standalone legend image",
		Long: `Render the k-by-k legend grid for a palette and two manual break
sets. The class count is inferred from the number of breaks (k-1
breaks per variable). The output format follows the file extension
(png, svg, pdf).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(breaksA) != len(breaksB) {
				return fmt.Errorf("breaks-a and breaks-b must have the same length")
			}
			k := len(breaksA) + 1

			bx, err := classify.NewManualBreakSet(breaksA, k)
			if err != nil {
				return fmt.Errorf("breaks-a: %w", err)
			}
			by, err := classify.NewManualBreakSet(breaksB, k)
			if err != nil {
				return fmt.Errorf("breaks-b: %w", err)
			}

			reg := palette.Default()
			var p *palette.Palette
			if legacy {
				p, err = reg.LookupVariant(paletteName, k, true)
			} else {
				p, err = reg.Lookup(paletteName, k)
			}
			if err != nil {
				return err
			}

			l, err := legend.Build(p, bx, by)
			if err != nil {
				return err
			}
			l.XLabel = xLabel
			l.YLabel = yLabel

			if err := l.Render(outPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paletteName, "palette", "p", "DkViolet", "Palette name")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Use the legacy palette variant")
	cmd.Flags().Float64SliceVar(&breaksA, "breaks-a", nil, "Break values for variable A")
	cmd.Flags().Float64SliceVar(&breaksB, "breaks-b", nil, "Break values for variable B")
	cmd.Flags().StringVar(&xLabel, "x-label", "Variable A", "Horizontal axis label")
	cmd.Flags().StringVar(&yLabel, "y-label", "Variable B", "Vertical axis label")
	cmd.Flags().StringVarP(&outPath, "out", "o", "legend.png", "Output image path")

	_ = cmd.MarkFlagRequired("breaks-a")
	_ = cmd.MarkFlagRequired("breaks-b")

	return cmd
}
