// Package cli implements the bivar command tree.
package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/config"
	"github.com/banshee-data/bivariate.report/internal/pipeline"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var outDir string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run <job.yaml>",
		Short: "Run a full bivariate classification job",
		Long: `Run a classification job described by a YAML file: load the two
input rasters, classify both variables, combine them into a single
coded raster, and write the raster, symbology, legend, and report
artifacts to the job's output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.LoadJobConfig(args[0])
			if err != nil {
				return err
			}
			if outDir != "" {
				job.OutDir = &outDir
			}

			logger := log.Default()
			if quiet {
				logger = log.New(io.Discard, "", 0)
			}

			res, err := pipeline.NewRunner(nil, nil, logger).Run(cmd.Context(), job)
			if err != nil {
				return err
			}

			fmt.Printf("Run %s complete\n", color.New(color.FgHiMagenta).Sprint(res.RunID))
			fmt.Printf("  Breaks A: %v\n", res.XBreaks.Labels())
			fmt.Printf("  Breaks B: %v\n", res.YBreaks.Labels())
			fmt.Printf("  Cells: %d (%d nodata)\n", res.TotalCells, res.Nodata.Combined)
			for _, name := range res.Artifacts {
				fmt.Printf("  wrote %s\n", color.New(color.FgCyan).Sprintf("%s/%s", res.OutDir, name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Override the job's output directory")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress logging")

	return cmd
}
