package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tablesort/internal/sorter"
)

// Config holds file-based settings.
type Config struct {
	Comparator     string           `yaml:"comparator"`
	AutoNumeric    *bool            `yaml:"auto_numeric"`
	NumericColumns map[string][]int `yaml:"numeric_columns"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	auto := true
	return &Config{
		Comparator:     string(sorter.CompareThreeWay),
		AutoNumeric:    &auto,
		NumericColumns: map[string][]int{},
	}
}

// DefaultPath returns ~/.tablesort/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tablesort", "config.yaml"), nil
}

// Load reads a config file. A missing file yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that yaml cannot.
func (c *Config) Validate() error {
	if _, err := sorter.ParseComparator(c.Comparator); err != nil {
		return fmt.Errorf("%w, one of: %s", err, sorter.AllComparators)
	}
	for table, cols := range c.NumericColumns {
		for _, col := range cols {
			if col < 0 {
				return fmt.Errorf("numeric_columns.%s: negative column %d", table, col)
			}
		}
	}
	return nil
}

// SorterComparator returns the comparator to hand to the sorter.
func (c *Config) SorterComparator() sorter.Comparator {
	cmp, err := sorter.ParseComparator(c.Comparator)
	if err != nil {
		return sorter.CompareThreeWay
	}
	return cmp
}

// IsNumeric reports whether a column is configured as numeric.
// ok is false when the table has no configured columns.
func (c *Config) IsNumeric(tableID string, col int) (numeric, ok bool) {
	cols, ok := c.NumericColumns[tableID]
	if !ok {
		return false, false
	}
	for _, n := range cols {
		if n == col {
			return true, true
		}
	}
	return false, true
}

// Auto reports whether numeric columns should be auto-detected.
func (c *Config) Auto() bool {
	return c.AutoNumeric == nil || *c.AutoNumeric
}
