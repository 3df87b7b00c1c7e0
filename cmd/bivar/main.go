package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/cli"
	"github.com/banshee-data/bivariate.report/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bivar",
		Short:   "bivar - bivariate choropleth classification for rasters",
		Version: version.String(),
		Long: `bivar classifies two aligned rasters into k classes each, combines
the class pairs into a single coded raster, and produces the
symbology, legend, and report artifacts needed to map them together.`,
	}

	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.ClassifyCmd())
	rootCmd.AddCommand(cli.StyleCmd())
	rootCmd.AddCommand(cli.LegendCmd())
	rootCmd.AddCommand(cli.PalettesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
