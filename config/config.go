// Package config loads table settings from an optional hxtable.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxtable"
)

// FileName is the file LoadOptional looks for.
const FileName = "hxtable.yaml"

// Config represents the hxtable.yaml configuration.
type Config struct {
	Tables map[string]TableConfig `yaml:"tables"`
}

// TableConfig holds the settings of one table. Unset fields leave the
// table's options untouched.
type TableConfig struct {
	RowsPerPage       int                   `yaml:"rows_per_page,omitempty"`
	ShowPagination    *bool                 `yaml:"show_pagination,omitempty"`
	EnableSearch      *bool                 `yaml:"enable_search,omitempty"`
	EnableSorting     *bool                 `yaml:"enable_sorting,omitempty"`
	EnableMultiSelect *bool                 `yaml:"enable_multi_select,omitempty"`
	SearchableColumns []string              `yaml:"searchable_columns,omitempty"`
	SortableColumns   []string              `yaml:"sortable_columns,omitempty"`
	ClassNames        hxtable.RowClassNames `yaml:"class_names,omitempty"`
	Styles            hxtable.RowStyles     `yaml:"styles,omitempty"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return parse(path, data)
}

// LoadOptional reads hxtable.yaml from dir if present. A missing file
// yields an empty config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	for name, tc := range cfg.Tables {
		if tc.RowsPerPage < 0 {
			return nil, fmt.Errorf("table %q: rows_per_page must not be negative", name)
		}
	}
	return &cfg, nil
}

// Table returns the settings for the named table and whether any exist.
func (c *Config) Table(name string) (TableConfig, bool) {
	if c == nil {
		return TableConfig{}, false
	}
	tc, ok := c.Tables[name]
	return tc, ok
}

// Apply copies the configured settings onto opts.
func Apply[T any](tc TableConfig, opts *hxtable.Options[T]) {
	if tc.RowsPerPage > 0 {
		opts.RowsPerPage = tc.RowsPerPage
	}
	setBool(&opts.ShowPagination, tc.ShowPagination)
	setBool(&opts.EnableSearch, tc.EnableSearch)
	setBool(&opts.EnableSorting, tc.EnableSorting)
	setBool(&opts.EnableMultiSelect, tc.EnableMultiSelect)
	if len(tc.SearchableColumns) > 0 {
		opts.SearchableColumns = tc.SearchableColumns
	}
	if len(tc.SortableColumns) > 0 {
		opts.SortableColumns = tc.SortableColumns
	}
	mergeClass(&opts.ClassNames.Row, tc.ClassNames.Row)
	mergeClass(&opts.ClassNames.AlternativeRow, tc.ClassNames.AlternativeRow)
	mergeClass(&opts.ClassNames.Hover, tc.ClassNames.Hover)
	mergeClass(&opts.ClassNames.Selected, tc.ClassNames.Selected)
	mergeClass(&opts.ClassNames.Expanded, tc.ClassNames.Expanded)
	mergeStyle(&opts.Styles.Row, tc.Styles.Row)
	mergeStyle(&opts.Styles.AlternativeRow, tc.Styles.AlternativeRow)
	mergeStyle(&opts.Styles.Hover, tc.Styles.Hover)
	mergeStyle(&opts.Styles.Selected, tc.Styles.Selected)
	mergeStyle(&opts.Styles.Expanded, tc.Styles.Expanded)
}

// ApplyNamed applies the settings for name, if any, and reports whether
// it found them.
func ApplyNamed[T any](c *Config, name string, opts *hxtable.Options[T]) bool {
	tc, ok := c.Table(name)
	if ok {
		Apply(tc, opts)
	}
	return ok
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func mergeClass(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeStyle(dst *hxtable.Style, v hxtable.Style) {
	if len(v) == 0 {
		return
	}
	merged := make(hxtable.Style, len(*dst)+len(v))
	for k, val := range *dst {
		merged[k] = val
	}
	for k, val := range v {
		merged[k] = val
	}
	*dst = merged
}
