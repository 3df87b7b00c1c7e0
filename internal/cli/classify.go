package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/bivar"
	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/grid"
	"github.com/banshee-data/bivariate.report/internal/pipeline"
)

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	var classes int
	var method string
	var breaksA, breaksB []float64
	var outDir string

	cmd := &cobra.Command{
		Use:   "classify <raster_a.asc> <raster_b.asc>",
		Short: "Classify two rasters and combine them into a coded raster",
		Long: `Classify two aligned ESRI ASCII rasters into k classes each and
combine the class pairs into a single coded raster (code = classA*10 +
classB, 0 for nodata). Writes the two class rasters and the combined
raster to the output directory and prints the break values. Symbology
and legend artifacts are the run command's job.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ga, err := readRaster(args[0])
			if err != nil {
				return err
			}
			gb, err := readRaster(args[1])
			if err != nil {
				return err
			}
			if err := grid.CheckAligned(ga, gb); err != nil {
				return err
			}

			m, err := classify.ParseMethod(method)
			if err != nil {
				return err
			}
			bx, err := breaksFor("a", ga, breaksA, classes, m)
			if err != nil {
				return err
			}
			by, err := breaksFor("b", gb, breaksB, classes, m)
			if err != nil {
				return err
			}

			classA, nodataA := classify.ClassifyGrid(ga, bx)
			classB, nodataB := classify.ClassifyGrid(gb, by)
			combined, err := bivar.Combine(classA, classB, classes)
			if err != nil {
				return err
			}

			fmt.Printf("Method: %s, classes: %d\n", bx.Method, bx.K)
			fmt.Printf("Breaks A: %s\n", color.New(color.FgCyan).Sprintf("%v", bx.Labels()))
			fmt.Printf("Breaks B: %s\n", color.New(color.FgCyan).Sprintf("%v", by.Labels()))
			fmt.Printf("Cells: %d (nodata a=%d b=%d)\n", len(ga.Data), nodataA, nodataB)

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			for _, out := range []struct {
				name string
				g    *grid.Grid
			}{
				{pipeline.FileClassA, classA},
				{pipeline.FileClassB, classB},
				{pipeline.FileCombined, combined},
			} {
				path := filepath.Join(outDir, out.name)
				if err := writeRaster(path, out.g); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&classes, "classes", "k", 3, "Number of classes (3 or 4)")
	cmd.Flags().StringVarP(&method, "method", "m", "equal-interval", "Break method: equal-interval, quantile, manual")
	cmd.Flags().Float64SliceVar(&breaksA, "breaks-a", nil, "Manual break values for raster A (requires --method manual)")
	cmd.Flags().Float64SliceVar(&breaksB, "breaks-b", nil, "Manual break values for raster B (requires --method manual)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory for the output rasters")

	return cmd
}

func readRaster(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := grid.ReadASCII(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func writeRaster(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := grid.WriteASCII(f, g); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func breaksFor(name string, g *grid.Grid, manual []float64, k int, m classify.Method) (classify.BreakSet, error) {
	if m == classify.MethodManual {
		return classify.NewManualBreakSet(manual, k)
	}
	if len(manual) > 0 {
		return classify.BreakSet{}, fmt.Errorf("manual breaks are only valid with --method manual")
	}
	return classify.ComputeBreaks(name, g.ValidValues(), k, m)
}
