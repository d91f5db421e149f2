// Package config loads getitem settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/getitem/internal/catalog"
	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/match"
	"github.com/Veraticus/getitem/internal/model"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyCatalogPath      = "catalog.path"
	KeyCatalogDelimiter = "catalog.delimiter"
	KeyCatalogKeyField  = "catalog.key_field"
	KeyCatalogHeader    = "catalog.header"
	KeyCatalogColumns   = "catalog.columns"
	KeyCatalogProgress  = "catalog.progress"
	KeySearchLimit      = "search.limit"
	KeySearchMatcher    = "search.matcher"
	KeyDisplayPageSize  = "display.page_size"
	KeyDisplayPrefix    = "display.show_prefix"
	KeyDisplayTUI       = "display.tui"
	KeyLoggingLevel     = "logging.level"
	KeyLoggingFormat    = "logging.format"
)

// DefaultCatalogPath is where the catalog is looked for when nothing is set.
const DefaultCatalogPath = "./itemdb.csv"

// Config is the resolved application configuration.
type Config struct {
	CatalogPath string
	Delimiter   string
	Matcher     string
	LogLevel    string
	LogFormat   string
	Columns     []string
	KeyField    int
	Limit       int
	PageSize    int
	SkipHeader  bool
	ShowPrefix  bool
	Progress    bool
	TUI         bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalogPath, DefaultCatalogPath)
	v.SetDefault(KeyCatalogDelimiter, catalog.DefaultDelimiter)
	v.SetDefault(KeyCatalogKeyField, model.DefaultKeyField)
	v.SetDefault(KeyCatalogHeader, false)
	v.SetDefault(KeyCatalogProgress, false)
	v.SetDefault(KeySearchLimit, match.DefaultLimit)
	v.SetDefault(KeySearchMatcher, match.MatcherRatio)
	v.SetDefault(KeyDisplayPageSize, 5)
	v.SetDefault(KeyDisplayPrefix, true)
	v.SetDefault(KeyDisplayTUI, false)
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	delimiter, err := catalog.ParseDelimiter(v.GetString(KeyCatalogDelimiter))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CatalogPath: ExpandPath(v.GetString(KeyCatalogPath)),
		Delimiter:   delimiter,
		KeyField:    v.GetInt(KeyCatalogKeyField),
		SkipHeader:  v.GetBool(KeyCatalogHeader),
		Columns:     splitColumns(v.GetStringSlice(KeyCatalogColumns)),
		Progress:    v.GetBool(KeyCatalogProgress),
		Limit:       v.GetInt(KeySearchLimit),
		Matcher:     strings.ToLower(v.GetString(KeySearchMatcher)),
		PageSize:    v.GetInt(KeyDisplayPageSize),
		ShowPrefix:  v.GetBool(KeyDisplayPrefix),
		TUI:         v.GetBool(KeyDisplayTUI),
		LogLevel:    v.GetString(KeyLoggingLevel),
		LogFormat:   v.GetString(KeyLoggingFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the tool cannot use.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("%w: catalog path is required", common.ErrInvalidConfig)
	}
	if c.KeyField < 0 {
		return fmt.Errorf("%w: key field must be non-negative, got %d", common.ErrInvalidConfig, c.KeyField)
	}
	if c.Limit < 1 {
		return fmt.Errorf("%w: search limit must be at least 1, got %d", common.ErrInvalidConfig, c.Limit)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", common.ErrInvalidConfig, c.PageSize)
	}
	if _, err := match.NewMatcher(c.Matcher); err != nil {
		return err
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// CatalogOptions converts the configuration into loader options.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Delimiter:  c.Delimiter,
		KeyField:   c.KeyField,
		SkipHeader: c.SkipHeader,
	}
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// splitColumns accepts both a YAML list and a single comma-separated string.
func splitColumns(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, c := range strings.Split(entry, ",") {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}
