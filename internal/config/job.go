package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/bivariate.report/internal/classify"
)

// JobConfig describes one bivariate classification run. Optional
// fields are pointers so a partial YAML file can be distinguished from
// explicit zero values; the Get* methods supply defaults.
type JobConfig struct {
	// Input rasters (ESRI ASCII). Both are required and must share the
	// same georeferencing.
	RasterA string `yaml:"raster_a"`
	RasterB string `yaml:"raster_b"`

	// Classification params
	Classes *int      `yaml:"classes,omitempty"`  // 3 or 4
	Method  *string   `yaml:"method,omitempty"`   // equal-interval, quantile, manual
	BreaksA []float64 `yaml:"breaks_a,omitempty"`
	BreaksB []float64 `yaml:"breaks_b,omitempty"`

	// DivisorB rescales raster B before classification, e.g. to turn a
	// count surface into a rate.
	DivisorB *float64 `yaml:"divisor_b,omitempty"`

	// Symbology params
	Palette       *string `yaml:"palette,omitempty"`
	LegacyPalette *bool   `yaml:"legacy_palette,omitempty"`
	NodataColor   *string `yaml:"nodata_color,omitempty"`

	// Output params
	OutDir       *string `yaml:"out_dir,omitempty"`
	Legend       *bool   `yaml:"legend,omitempty"`
	LegendFormat *string `yaml:"legend_format,omitempty"` // png or svg
	Report       *bool   `yaml:"report,omitempty"`
	XLabel       *string `yaml:"x_label,omitempty"`
	YLabel       *string `yaml:"y_label,omitempty"`
}

// LoadJobConfig loads a JobConfig from a YAML file. Fields omitted
// from the file keep their defaults, so partial configs are safe.
func LoadJobConfig(path string) (*JobConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("job file must have .yaml or .yml extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	cfg := &JobConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid. Each error
// names the offending YAML field.
func (c *JobConfig) Validate() error {
	if c.RasterA == "" {
		return fmt.Errorf("raster_a is required")
	}
	if c.RasterB == "" {
		return fmt.Errorf("raster_b is required")
	}

	if c.Classes != nil {
		if err := classify.CheckK(*c.Classes); err != nil {
			return fmt.Errorf("classes: %w", err)
		}
	}

	if c.Method != nil {
		if _, err := classify.ParseMethod(*c.Method); err != nil {
			return fmt.Errorf("method: %w", err)
		}
	}

	method := c.GetMethod()
	if method == classify.MethodManual {
		if len(c.BreaksA) == 0 || len(c.BreaksB) == 0 {
			return fmt.Errorf("breaks_a and breaks_b are required when method is %q", classify.MethodManual)
		}
	} else if len(c.BreaksA) > 0 || len(c.BreaksB) > 0 {
		return fmt.Errorf("breaks_a and breaks_b are only valid when method is %q", classify.MethodManual)
	}

	if c.DivisorB != nil && *c.DivisorB == 0 {
		return fmt.Errorf("divisor_b must be non-zero")
	}

	if c.LegendFormat != nil {
		switch *c.LegendFormat {
		case "png", "svg":
		default:
			return fmt.Errorf("legend_format must be png or svg, got %q", *c.LegendFormat)
		}
	}

	return nil
}

// GetClasses returns the classes value or the default.
func (c *JobConfig) GetClasses() int {
	if c.Classes == nil {
		return 3 // default
	}
	return *c.Classes
}

// GetMethod returns the parsed classification method or the default.
func (c *JobConfig) GetMethod() classify.Method {
	if c.Method == nil {
		return classify.MethodEqualInterval // default
	}
	m, err := classify.ParseMethod(*c.Method)
	if err != nil {
		return classify.MethodEqualInterval // default on parse error
	}
	return m
}

// GetDivisorB returns the divisor_b value or 1 (no rescale).
func (c *JobConfig) GetDivisorB() float64 {
	if c.DivisorB == nil {
		return 1
	}
	return *c.DivisorB
}

// GetPalette returns the palette name or the default scheme.
func (c *JobConfig) GetPalette() string {
	if c.Palette == nil || *c.Palette == "" {
		return "DkViolet" // default
	}
	return *c.Palette
}

// GetLegacyPalette returns the legacy_palette value or the default.
func (c *JobConfig) GetLegacyPalette() bool {
	if c.LegacyPalette == nil {
		return false
	}
	return *c.LegacyPalette
}

// GetNodataColor returns the nodata_color value, empty meaning the
// built-in default.
func (c *JobConfig) GetNodataColor() string {
	if c.NodataColor == nil {
		return ""
	}
	return *c.NodataColor
}

// GetOutDir returns the out_dir value or the current directory.
func (c *JobConfig) GetOutDir() string {
	if c.OutDir == nil || *c.OutDir == "" {
		return "."
	}
	return *c.OutDir
}

// GetLegend returns whether a legend image should be produced.
func (c *JobConfig) GetLegend() bool {
	if c.Legend == nil {
		return true // default: produce the legend
	}
	return *c.Legend
}

// GetLegendFormat returns the legend_format value or the default.
func (c *JobConfig) GetLegendFormat() string {
	if c.LegendFormat == nil || *c.LegendFormat == "" {
		return "png" // default
	}
	return *c.LegendFormat
}

// GetReport returns whether an HTML report should be produced.
func (c *JobConfig) GetReport() bool {
	if c.Report == nil {
		return true // default: produce the report
	}
	return *c.Report
}

// GetXLabel returns the legend x axis label or the default.
func (c *JobConfig) GetXLabel() string {
	if c.XLabel == nil || *c.XLabel == "" {
		return "Variable A"
	}
	return *c.XLabel
}

// GetYLabel returns the legend y axis label or the default.
func (c *JobConfig) GetYLabel() string {
	if c.YLabel == nil || *c.YLabel == "" {
		return "Variable B"
	}
	return *c.YLabel
}
