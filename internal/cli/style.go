package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/bivar"
	"github.com/banshee-data/bivariate.report/internal/grid"
	"github.com/banshee-data/bivariate.report/internal/palette"
	"github.com/banshee-data/bivariate.report/internal/style"
)

// StyleCmd returns the style command
func StyleCmd() *cobra.Command {
	var paletteName string
	var classes int
	var legacy bool
	var nodataColor string
	var qmlPath, csvPath string

	cmd := &cobra.Command{
		Use:   "style <bivariate.asc>",
		Short: "Generate symbology for a combined-code raster",
		Long: `Resolve a palette against the combined codes present in a coded
raster and write the QGIS style (--qml) and colour-table CSV (--csv).
The palette dimension is inferred from the codes in the raster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qmlPath == "" && csvPath == "" {
				return fmt.Errorf("nothing to do: pass --qml and/or --csv")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			g, err := grid.ReadASCII(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			codes := bivar.PresentCodes(g)
			if len(codes) == 0 {
				return fmt.Errorf("%s contains no coded cells", args[0])
			}
			k := classes
			if k == 0 {
				k = 3
				for _, code := range codes {
					if code/10 > 3 || code%10 > 3 {
						k = 4
						break
					}
				}
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

			table, err := style.Resolve(codes, p, nodataColor)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := writeStyleFile(csvPath, func(w *os.File) error {
					return style.WriteColorTableCSV(w, table)
				}); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", csvPath)
			}
			if qmlPath != "" {
				if err := writeStyleFile(qmlPath, func(w *os.File) error {
					return style.WriteQML(w, table)
				}); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", qmlPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&paletteName, "palette", "p", "DkViolet", "Palette name")
	cmd.Flags().IntVarP(&classes, "classes", "k", 0, "Palette dimension (default: inferred from the codes)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Use the legacy palette variant")
	cmd.Flags().StringVar(&nodataColor, "nodata-color", "", "Hex colour for nodata cells")
	cmd.Flags().StringVar(&qmlPath, "qml", "", "Write a QGIS paletted-raster style to this path")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write a colour-table CSV to this path")

	return cmd
}

func writeStyleFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
