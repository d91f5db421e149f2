package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/getitem/internal/catalog"
	"github.com/Veraticus/getitem/internal/cli"
	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/config"
	"github.com/Veraticus/getitem/internal/match"
	"github.com/Veraticus/getitem/internal/model"
	"github.com/Veraticus/getitem/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runLookup(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return common.NewUserError("Invalid configuration", err)
	}

	cat, err := loadCatalog(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	matcher, err := match.NewMatcher(cfg.Matcher)
	if err != nil {
		return err
	}
	resolver := match.NewResolver(cat, match.WithLimit(cfg.Limit), match.WithMatcher(matcher))
	common.LogDebug("Resolver ready", common.Fields{
		"keys":    resolver.DistinctKeys(),
		"matcher": matcher.Name(),
		"limit":   resolver.Limit(),
	})

	presenter := cli.NewPresenter(cmd.InOrStdin(), cmd.OutOrStdout(),
		cli.WithPageSize(cfg.PageSize),
		cli.WithColumns(cfg.Columns),
		cli.WithPrefixDump(cfg.ShowPrefix))

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	if cfg.TUI {
		return pickWithTUI(cmd, presenter, cat, resolver, query)
	}

	if _, err := presenter.Run(cmd.Context(), cat, resolver, query); err != nil {
		return err
	}
	return nil
}

func pickWithTUI(cmd *cobra.Command, presenter *cli.Presenter, cat *model.Catalog, resolver *match.Resolver, query string) error {
	sel, picked, err := tui.Run(cmd.Context(), resolver, query)
	if err != nil {
		return err
	}
	if !picked {
		slog.Debug("Picker closed without a selection")
		return nil
	}

	_, err = presenter.PrintSelected(sel, cat)
	return err
}

func loadCatalog(stderr io.Writer, cfg *config.Config) (*model.Catalog, error) {
	opts := cfg.CatalogOptions()

	var finish func()
	if cfg.Progress {
		opts.Progress, finish = newLoadProgress(stderr, cfg.CatalogPath)
		defer finish()
	}

	result, err := catalog.LoadFile(cfg.CatalogPath, opts)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Could not load catalog %s", cfg.CatalogPath), err)
	}

	if n := len(result.Skipped); n > 0 {
		first := result.Skipped[0]
		msg := fmt.Sprintf("Skipped %d malformed line(s), first at line %d: %q", n, first.Line, first.Text)
		if _, werr := fmt.Fprintln(stderr, cli.FormatWarning(msg)); werr != nil {
			slog.Warn("Failed to write skipped-line warning", "error", werr)
		}
	}

	if result.Catalog.Len() == 0 {
		return nil, common.NewUserError(fmt.Sprintf("Catalog %s has no usable records", cfg.CatalogPath), common.ErrEmptyCatalog)
	}

	common.LogInfo("Catalog ready", common.Fields{
		"path":    cfg.CatalogPath,
		"records": result.Catalog.Len(),
		"skipped": len(result.Skipped),
	})
	return result.Catalog, nil
}
