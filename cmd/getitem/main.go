package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/getitem/internal/cli"
	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"

	// envKeyReplacer maps catalog.path to GETITEM_CATALOG_PATH.
	envKeyReplacer = strings.NewReplacer(".", "_")
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "getitem [query]",
		Short: "Look up an item in a local catalog by name",
		Long: `getitem finds catalog records whose names start with or closely resemble
a query, lets you pick one from a short list, and prints the full record.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, v, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/getitem/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	local := rootCmd.Flags()
	local.StringP("catalog", "c", config.DefaultCatalogPath, "catalog file to search")
	local.String("delimiter", ",", `field delimiter (a literal, or "tab", "comma", "semicolon", "pipe")`)
	local.Int("key-field", 1, "zero-based index of the searchable field")
	local.Bool("header", false, "skip the first line of the catalog")
	local.StringSlice("columns", nil, "column names used to label the printed record")
	local.Int("limit", 20, "maximum number of candidates")
	local.Int("page-size", 5, "candidates shown before asking for more")
	local.String("matcher", "ratio", "approximate matcher (ratio, subsequence)")
	local.Bool("tui", false, "pick from a full-screen list that updates as you type")
	local.Bool("progress", false, "show a progress bar while loading the catalog")
	local.Bool("show-prefix", true, "print the raw prefix matches before the list")

	bindings := map[string]string{
		config.KeyLoggingLevel:     "log-level",
		config.KeyLoggingFormat:    "log-format",
		config.KeyCatalogPath:      "catalog",
		config.KeyCatalogDelimiter: "delimiter",
		config.KeyCatalogKeyField:  "key-field",
		config.KeyCatalogHeader:    "header",
		config.KeyCatalogColumns:   "columns",
		config.KeySearchLimit:      "limit",
		config.KeyDisplayPageSize:  "page-size",
		config.KeySearchMatcher:    "matcher",
		config.KeyDisplayTUI:       "tui",
		config.KeyCatalogProgress:  "progress",
		config.KeyDisplayPrefix:    "show-prefix",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			flag = local.Lookup(name)
		}
		_ = v.BindPFlag(key, flag)
	}

	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func main() {
	v := viper.New()
	config.SetDefaults(v)

	ctx, stop := cli.NewInterruptHandler(os.Stderr).HandleInterrupts(context.Background())
	err := newRootCmd(v).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		v.AddConfigPath(fmt.Sprintf("%s/.config/getitem", home))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GETITEM")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(v.GetString(config.KeyLoggingLevel), v.GetString(config.KeyLoggingFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "getitem %s\n", version)
		},
	}
}
