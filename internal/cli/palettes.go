package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/banshee-data/bivariate.report/internal/palette"
	"github.com/banshee-data/bivariate.report/internal/palette/palettedb"
)

// PalettesCmd returns the palettes command with its subcommands
func PalettesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List, inspect, and exchange colour palettes",
	}

	cmd.AddCommand(palettesListCmd())
	cmd.AddCommand(palettesShowCmd())
	cmd.AddCommand(palettesExportCmd())
	cmd.AddCommand(palettesImportCmd())

	return cmd
}

func palettesListCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Built-in palettes:")
			for _, p := range palette.Default().All() {
				printPaletteLine(p.Name, p.K, p.Legacy, p.Tag)
			}

			if dbPath != "" {
				store, err := palettedb.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()

				metas, err := store.List()
				if err != nil {
					return err
				}
				fmt.Printf("\nStored palettes (%s):\n", dbPath)
				for _, m := range metas {
					printPaletteLine(m.Name, m.K, m.Legacy, m.Tag)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Also list palettes from this catalog database")

	return cmd
}

func printPaletteLine(name string, k int, legacy bool, tag string) {
	marker := ""
	if legacy {
		marker = color.New(color.FgYellow).Sprint(" [legacy]")
	}
	fmt.Printf("  %s %dx%d (%s)%s\n", color.New(color.FgCyan).Sprint(name), k, k, tag, marker)
}

func palettesShowCmd() *cobra.Command {
	var classes int
	var legacy bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one palette's colour grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := palette.Default()
			var p *palette.Palette
			var err error
			if legacy {
				p, err = reg.LookupVariant(args[0], classes, true)
			} else {
				p, err = reg.Lookup(args[0], classes)
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s %dx%d (%s)\n", p.Name, p.K, p.K, p.Tag)
			// Top row of the grid is the high-B row.
			for y := p.K; y >= 1; y-- {
				for x := 1; x <= p.K; x++ {
					c, _ := p.Color(x*10 + y)
					fmt.Printf("  %d%d %s", x, y, c)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&classes, "classes", "k", 3, "Number of classes (3 or 4)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Show the legacy variant")

	return cmd
}

func palettesExportCmd() *cobra.Command {
	var classes int
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export built-in palettes as interchange CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			var matching []*palette.Palette
			for _, p := range palette.Default().All() {
				if p.K == classes {
					matching = append(matching, p)
				}
			}
			if len(matching) == 0 {
				return fmt.Errorf("no built-in palettes with %d classes", classes)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := palette.WriteCSV(out, classes, matching); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(os.Stderr, "wrote %d palettes to %s\n", len(matching), outPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&classes, "classes", "k", 3, "Palette dimension to export (3 or 4)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func palettesImportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <palettes.csv>",
		Short: "Import palettes from interchange CSV into a catalog database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			palettes, err := palette.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			store, err := palettedb.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, p := range palettes {
				if err := store.Put(p); err != nil {
					return err
				}
				fmt.Printf("imported %s %dx%d\n", p.Name, p.K, p.K)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "palettes.db", "Catalog database path")

	return cmd
}
