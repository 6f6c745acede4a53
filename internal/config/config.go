// Package config provides layered configuration for the explorer: built-in
// defaults, an optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/sheet"
)

// DefaultOutput is the page written when no output path is given.
const DefaultOutput = "mantle_network_explorer.html"

// Default focus flags of the Mantle export.
var defaultFocusFlags = []string{"actuarial_liability", "payment_risk", "payment_insured"}

// Config holds all application configuration values.
type Config struct {
	DataStartRow  int          `yaml:"data_start_row"`
	SectionMarker string       `yaml:"section_marker"`
	Schema        sheet.Schema `yaml:"schema"`
	DefaultDepth  int          `yaml:"default_depth"`
	Focus         Focus        `yaml:"focus"`
	LogLevel      string       `yaml:"log_level"`
	Output        string       `yaml:"output"`
	Title         string       `yaml:"title"`
}

// Focus controls restriction of the graph to items around flagged items.
type Focus struct {
	Enabled  bool     `yaml:"enabled"`
	Flags    []string `yaml:"flags"`
	MaxDepth int      `yaml:"max_depth"`
}

// Default returns the configuration matching the Mantle benefit export layout.
func Default() *Config {
	flags := make(map[string]sheet.FieldRef, len(defaultFocusFlags))
	for _, f := range defaultFocusFlags {
		flags[f] = sheet.FieldRef{Header: f, Key: f}
	}

	return &Config{
		DataStartRow:  24,
		SectionMarker: "BENEFIT ITEMS",
		Schema: sheet.Schema{
			ID:    sheet.FieldRef{Header: "id_item", Column: "A"},
			Name:  sheet.FieldRef{Header: "item_name", Column: "B"},
			Type:  sheet.FieldRef{Column: "C"},
			Event: sheet.FieldRef{Header: "id_event"},
			Group: sheet.FieldRef{Header: "display_group", Aliases: []string{"group"}},
			Quote: sheet.FieldRef{Header: "is_quote", Key: "is_quote"},
			Flags: flags,
			Relations: []sheet.RangeRef{
				{Kind: "params1", From: "DF", To: "HV"},
				{Kind: "params2", From: "HW", To: "MN"},
			},
			DetectPatterns: true,
		},
		DefaultDepth: graph.DefaultDepth,
		Focus: Focus{
			Flags:    append([]string(nil), defaultFocusFlags...),
			MaxDepth: 10,
		},
		LogLevel: "info",
		Output:   DefaultOutput,
		Title:    "Mantle Network Explorer",
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is non-empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MANTLE_DATA_START_ROW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MANTLE_DATA_START_ROW must be an integer: %w", err)
		}
		c.DataStartRow = n
	}

	if v := os.Getenv("MANTLE_DEFAULT_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MANTLE_DEFAULT_DEPTH must be an integer: %w", err)
		}
		c.DefaultDepth = n
	}

	if v := os.Getenv("MANTLE_FOCUS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MANTLE_FOCUS must be a boolean: %w", err)
		}
		c.Focus.Enabled = b
	}

	c.SectionMarker = envOrDefault("MANTLE_SECTION_MARKER", c.SectionMarker)
	c.LogLevel = strings.ToLower(envOrDefault("MANTLE_LOG_LEVEL", c.LogLevel))
	c.Output = envOrDefault("MANTLE_OUTPUT", c.Output)

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
