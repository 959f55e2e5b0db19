// Package config loads the rapidtables command configuration. Sources are
// layered, later ones winning: built-in defaults, a TOML file, then
// RAPIDTABLES_* environment variables. Command-line flags are applied on top
// by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bjaus/rapidtables"
)

// ErrInvalid reports a configuration value outside its allowed set.
var ErrInvalid = errors.New("invalid configuration")

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = ".rapidtables.toml"

const envPrefix = "RAPIDTABLES_"

// Output values.
const (
	OutputTable  = "table"
	OutputLines  = "lines"
	OutputTuples = "tuples"
)

// Config is the merged command configuration.
type Config struct {
	Format      string   `koanf:"format"`
	Output      string   `koanf:"output"`
	Separator   string   `koanf:"separator"`
	Align       string   `koanf:"align"`
	Header      bool     `koanf:"header"`
	Headers     []string `koanf:"headers"`
	Width       string   `koanf:"width"`
	BodySep     string   `koanf:"body_sep"`
	BodySepFill string   `koanf:"body_sep_fill"`
}

func defaults() map[string]any {
	return map[string]any{
		"format":        string(rapidtables.Simple),
		"output":        OutputTable,
		"separator":     "  ",
		"align":         "numeric",
		"header":        true,
		"headers":       []string{},
		"width":         "auto",
		"body_sep":      "",
		"body_sep_fill": "  ",
	}
}

// Load merges defaults, the TOML file at path and the environment. An empty
// path falls back to DefaultFile when it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := rapidtables.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	switch c.Output {
	case OutputTable, OutputLines, OutputTuples:
	default:
		return fmt.Errorf("%w: output %q (want %s, %s or %s)", ErrInvalid, c.Output, OutputTable, OutputLines, OutputTuples)
	}
	switch c.Align {
	case "numeric", "none":
	default:
		return fmt.Errorf("%w: align %q (want numeric or none)", ErrInvalid, c.Align)
	}
	if _, err := ParseWidth(c.Width); err != nil {
		return err
	}
	return nil
}

// Options translates the configuration into formatting options. Separator,
// header and body separator settings only matter outside table output, where
// the template decides them.
func (c *Config) Options() ([]rapidtables.Option, error) {
	width, err := ParseWidth(c.Width)
	if err != nil {
		return nil, err
	}
	opts := []rapidtables.Option{width, rapidtables.WithSeparator(c.Separator)}
	if len(c.Headers) > 0 {
		opts = append(opts, rapidtables.WithHeaders(c.Headers...))
	}
	if c.Align == "none" {
		opts = append(opts, rapidtables.WithNoAlign())
	}
	if !c.Header {
		opts = append(opts, rapidtables.WithoutHeader())
	}
	if c.BodySep != "" {
		opts = append(opts,
			rapidtables.WithBodySeparator(c.BodySep),
			rapidtables.WithBodySeparatorFill(c.BodySepFill),
		)
	}
	return opts, nil
}

// ParseWidth turns a width setting into an option: "auto" or "" scans every
// row, "first-row" sizes from the first row, "N" fixes every column and
// "N,N,..." fixes each column.
func ParseWidth(s string) (rapidtables.Option, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "auto":
		return rapidtables.WithWidthStrategy(rapidtables.WidthFullScan), nil
	case "first-row":
		return rapidtables.WithFirstRowWidths(), nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: width %q", ErrInvalid, s)
		}
		widths[i] = n
	}
	if len(widths) == 1 {
		return rapidtables.WithColumnWidth(widths[0]), nil
	}
	return rapidtables.WithColumnWidths(widths...), nil
}
