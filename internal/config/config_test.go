package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/getitem/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultCatalogPath, cfg.CatalogPath)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 1, cfg.KeyField)
	assert.Equal(t, 20, cfg.Limit)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "ratio", cfg.Matcher)
	assert.True(t, cfg.ShowPrefix)
	assert.False(t, cfg.SkipHeader)
	assert.False(t, cfg.TUI)
	assert.Empty(t, cfg.Columns)
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `catalog:
  path: items.tsv
  delimiter: tab
  key_field: 1
  header: true
  columns: [category, name, value, weight, stats]
search:
  limit: 10
  matcher: subsequence
display:
  page_size: 3
  show_prefix: false
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "items.tsv", cfg.CatalogPath)
	assert.Equal(t, "\t", cfg.Delimiter)
	assert.True(t, cfg.SkipHeader)
	assert.Equal(t, []string{"category", "name", "value", "weight", "stats"}, cfg.Columns)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, "subsequence", cfg.Matcher)
	assert.Equal(t, 3, cfg.PageSize)
	assert.False(t, cfg.ShowPrefix)

	opts := cfg.CatalogOptions()
	assert.Equal(t, "\t", opts.Delimiter)
	assert.True(t, opts.SkipHeader)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "zero limit", key: KeySearchLimit, value: 0},
		{name: "zero page size", key: KeyDisplayPageSize, value: 0},
		{name: "negative key field", key: KeyCatalogKeyField, value: -1},
		{name: "unknown matcher", key: KeySearchMatcher, value: "soundex"},
		{name: "bad log level", key: KeyLoggingLevel, value: "chatty"},
		{name: "empty path", key: KeyCatalogPath, value: ""},
		{name: "newline delimiter", key: KeyCatalogDelimiter, value: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestSplitColumns(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitColumns([]string{"a, b", "c"}))
	assert.Nil(t, splitColumns(nil))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("GETITEM_TEST_DIR", "/data")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/items.csv", want: filepath.Join(home, "items.csv")},
		{input: "$GETITEM_TEST_DIR/items.csv", want: "/data/items.csv"},
		{input: "./itemdb.csv", want: "./itemdb.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
