package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/pipeline"
)

// defaultConfigFile is read from the working directory when --config is
// not given. Its absence is not an error.
const defaultConfigFile = appName + ".toml"

// Config is the contribnet.toml file and, with the same fields, the set of
// command-line overrides.
type Config struct {
	InputPath   string `toml:"input_path"`
	OutDir      string `toml:"out_dir"`
	FullOutput  string `toml:"full_output"`
	GiantOutput string `toml:"giant_output"`
	Top         int    `toml:"top"`
	Weighting   string `toml:"weighting"`
	GraphJSON   string `toml:"graph_json"`
	GraphDOT    string `toml:"graph_dot"`
	GraphSVG    string `toml:"graph_svg"`
	MetricsFile string `toml:"metrics_file"`
}

// loadConfig reads a TOML config file. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errs.WrapIO(err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errs.New(errs.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// findConfig loads path, or defaultConfigFile when path is empty and the file
// exists. It returns the zero Config when there is nothing to load.
func findConfig(path string) (Config, error) {
	if path != "" {
		return loadConfig(path)
	}
	cfg, err := loadConfig(defaultConfigFile)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// overlay returns c with every non-zero field of o applied on top.
func (c Config) overlay(o Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.InputPath, o.InputPath)
	set(&c.OutDir, o.OutDir)
	set(&c.FullOutput, o.FullOutput)
	set(&c.GiantOutput, o.GiantOutput)
	set(&c.Weighting, o.Weighting)
	set(&c.GraphJSON, o.GraphJSON)
	set(&c.GraphDOT, o.GraphDOT)
	set(&c.GraphSVG, o.GraphSVG)
	set(&c.MetricsFile, o.MetricsFile)
	if o.Top != 0 {
		c.Top = o.Top
	}
	return c
}

// resolveConfig merges defaults < file < flags < positional input.
func resolveConfig(configPath string, flags Config, args []string) (Config, error) {
	file, err := findConfig(configPath)
	if err != nil {
		return Config{}, err
	}
	cfg := file.overlay(flags)
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	return cfg, nil
}

// options converts c into pipeline options. Relative output paths, including
// the default file names, are placed under OutDir.
func (c Config) options() pipeline.Options {
	full, giant := c.FullOutput, c.GiantOutput
	if full == "" {
		full = pipeline.DefaultFullOutput
	}
	if giant == "" {
		giant = pipeline.DefaultGiantOutput
	}
	return pipeline.Options{
		InputPath:   c.InputPath,
		FullOutput:  c.under(full),
		GiantOutput: c.under(giant),
		Top:         c.Top,
		Weighting:   network.Weighting(c.Weighting),
		GraphJSON:   c.under(c.GraphJSON),
		GraphDOT:    c.under(c.GraphDOT),
		GraphSVG:    c.under(c.GraphSVG),
	}
}

// ensureOutDir creates OutDir when it is set.
func (c Config) ensureOutDir() error {
	if c.OutDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return errs.WrapIO(err, "create output directory %s", c.OutDir)
	}
	return nil
}

func (c Config) under(path string) string {
	if path == "" || c.OutDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutDir, path)
}
