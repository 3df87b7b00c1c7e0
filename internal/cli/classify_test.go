package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/bivariate.report/internal/grid"
	"github.com/banshee-data/bivariate.report/internal/pipeline"
)

const testRaster = `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 3
4 5 6
7 8 9
`

func writeTestRaster(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(testRaster), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClassifyCmdWritesRasters(t *testing.T) {
	dir := t.TempDir()
	a := writeTestRaster(t, dir, "a.asc")
	b := writeTestRaster(t, dir, "b.asc")
	out := filepath.Join(dir, "out")

	cmd := ClassifyCmd()
	cmd.SetArgs([]string{a, b,
		"--method", "manual", "--breaks-a", "3,6", "--breaks-b", "3,6",
		"--out-dir", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("classify: %v", err)
	}

	f, err := os.Open(filepath.Join(out, pipeline.FileCombined))
	if err != nil {
		t.Fatalf("open combined raster: %v", err)
	}
	defer f.Close()
	g, err := grid.ReadASCII(f)
	if err != nil {
		t.Fatalf("ReadASCII: %v", err)
	}

	want := []float64{11, 11, 11, 22, 22, 22, 33, 33, 33}
	for i, wv := range want {
		if g.Data[i] != wv {
			t.Errorf("cell %d = %g, want %g", i, g.Data[i], wv)
		}
	}

	for _, name := range []string{pipeline.FileClassA, pipeline.FileClassB} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("class raster %s missing: %v", name, err)
		}
	}
}

func TestClassifyCmdRejectsBreaksWithoutManual(t *testing.T) {
	dir := t.TempDir()
	a := writeTestRaster(t, dir, "a.asc")
	b := writeTestRaster(t, dir, "b.asc")

	cmd := ClassifyCmd()
	cmd.SetArgs([]string{a, b, "--breaks-a", "3,6", "--breaks-b", "3,6"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for manual breaks without --method manual")
	}
}
