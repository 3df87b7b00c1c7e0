package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/banshee-data/bivariate.report/internal/bivar"
	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/config"
	"github.com/banshee-data/bivariate.report/internal/fsutil"
	"github.com/banshee-data/bivariate.report/internal/grid"
	"github.com/banshee-data/bivariate.report/internal/legend"
	"github.com/banshee-data/bivariate.report/internal/palette"
	"github.com/banshee-data/bivariate.report/internal/report"
	"github.com/banshee-data/bivariate.report/internal/style"
)

// Output artifact filenames, relative to the job's out_dir.
const (
	FileClassA     = "a_class.asc"
	FileClassB     = "b_class.asc"
	FileCombined   = "bivariate.asc"
	FileColorTable = "color_table.csv"
	FileQML        = "style.qml"
	FileReport     = "report.html"
)

// LegendFile returns the legend artifact name for a format.
func LegendFile(format string) string {
	return "legend." + format
}

// NodataNotice reports how many cells were masked at each stage of a
// run. It is informational, never an error; masked cells flow through
// as code 0.
type NodataNotice struct {
	VariableA int
	VariableB int
	Combined  int
}

// Result summarises one completed run.
type Result struct {
	RunID      uuid.UUID
	OutDir     string
	XBreaks    classify.BreakSet
	YBreaks    classify.BreakSet
	CodeCounts map[int]int
	Nodata     NodataNotice
	TotalCells int

	// Artifacts lists the files written, relative to OutDir.
	Artifacts []string
}

// Runner executes classification jobs. The zero value is not usable;
// use NewRunner.
type Runner struct {
	fs       fsutil.FileSystem
	palettes *palette.Registry
	log      *log.Logger
}

// NewRunner builds a Runner. fs and palettes may be nil to take the OS
// filesystem and the built-in registry; logger may be nil to use the
// default logger.
func NewRunner(fs fsutil.FileSystem, palettes *palette.Registry, logger *log.Logger) *Runner {
	if fs == nil {
		fs = fsutil.OSFileSystem{}
	}
	if palettes == nil {
		palettes = palette.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{fs: fs, palettes: palettes, log: logger}
}

// Run executes one job. All inputs are validated and every colour
// resolved before the first artifact is written, so an error means the
// output directory was left untouched.
func (r *Runner) Run(ctx context.Context, job *config.JobConfig) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	ga, err := r.loadRaster(job.RasterA)
	if err != nil {
		return nil, fmt.Errorf("raster A: %w", err)
	}
	gb, err := r.loadRaster(job.RasterB)
	if err != nil {
		return nil, fmt.Errorf("raster B: %w", err)
	}
	if err := grid.CheckAligned(ga, gb); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d := job.GetDivisorB(); d != 1 {
		gb, err = gb.Scaled(d)
		if err != nil {
			return nil, fmt.Errorf("raster B: %w", err)
		}
	}

	k := job.GetClasses()
	bx, err := r.breaksFor("a", ga, job.BreaksA, k, job.GetMethod())
	if err != nil {
		return nil, err
	}
	by, err := r.breaksFor("b", gb, job.BreaksB, k, job.GetMethod())
	if err != nil {
		return nil, err
	}
	r.log.Printf("pipeline: breaks a=%v b=%v", bx.Labels(), by.Labels())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classA, nodataA := classify.ClassifyGrid(ga, bx)
	classB, nodataB := classify.ClassifyGrid(gb, by)
	if nodataA > 0 || nodataB > 0 {
		r.log.Printf("pipeline: nodata cells a=%d b=%d", nodataA, nodataB)
	}

	combined, err := bivar.Combine(classA, classB, k)
	if err != nil {
		return nil, err
	}
	counts, nodataCells := bivar.CountCodes(combined)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pal, err := r.lookupPalette(job)
	if err != nil {
		return nil, err
	}
	table, err := style.Resolve(bivar.PresentCodes(combined), pal, job.GetNodataColor())
	if err != nil {
		return nil, err
	}

	var lg *legend.Legend
	if job.GetLegend() {
		lg, err = legend.Build(pal, bx, by)
		if err != nil {
			return nil, err
		}
		lg.XLabel = job.GetXLabel()
		lg.YLabel = job.GetYLabel()
		lg.SetCounts(counts)
	}

	rep := report.New(pal.Name, k, bx, by)
	rep.CodeCounts = counts
	rep.NodataCells = nodataCells
	rep.TotalCells = combined.Cols * combined.Rows

	res := &Result{
		RunID:      rep.RunID,
		OutDir:     job.GetOutDir(),
		XBreaks:    bx,
		YBreaks:    by,
		CodeCounts: counts,
		Nodata: NodataNotice{
			VariableA: nodataA,
			VariableB: nodataB,
			Combined:  nodataCells,
		},
		TotalCells: rep.TotalCells,
	}

	// Everything is resolved; writes start here.
	if err := r.fs.MkdirAll(res.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FileClassA, func(w io.Writer) error { return grid.WriteASCII(w, classA) }},
		{FileClassB, func(w io.Writer) error { return grid.WriteASCII(w, classB) }},
		{FileCombined, func(w io.Writer) error { return grid.WriteASCII(w, combined) }},
		{FileColorTable, func(w io.Writer) error { return style.WriteColorTableCSV(w, table) }},
		{FileQML, func(w io.Writer) error { return style.WriteQML(w, table) }},
	}
	if lg != nil {
		format := job.GetLegendFormat()
		outputs = append(outputs, struct {
			name  string
			write func(io.Writer) error
		}{LegendFile(format), func(w io.Writer) error { return lg.WriteImage(w, format) }})
	}
	if job.GetReport() {
		outputs = append(outputs, struct {
			name  string
			write func(io.Writer) error
		}{FileReport, func(w io.Writer) error { return rep.WriteHTML(w, table) }})
	}

	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.writeArtifact(res.OutDir, out.name, out.write); err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, out.name)
	}

	r.log.Printf("pipeline: run %s wrote %d artifacts to %s", res.RunID, len(res.Artifacts), res.OutDir)
	return res, nil
}

func (r *Runner) loadRaster(path string) (*grid.Grid, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.ReadASCII(f)
}

func (r *Runner) breaksFor(name string, g *grid.Grid, manual []float64, k int, method classify.Method) (classify.BreakSet, error) {
	if method == classify.MethodManual {
		return classify.NewManualBreakSet(manual, k)
	}
	return classify.ComputeBreaks(name, g.ValidValues(), k, method)
}

func (r *Runner) lookupPalette(job *config.JobConfig) (*palette.Palette, error) {
	if job.GetLegacyPalette() {
		return r.palettes.LookupVariant(job.GetPalette(), job.GetClasses(), true)
	}
	return r.palettes.Lookup(job.GetPalette(), job.GetClasses())
}

func (r *Runner) writeArtifact(dir, name string, write func(io.Writer) error) error {
	f, err := r.fs.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
