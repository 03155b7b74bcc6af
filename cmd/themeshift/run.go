package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/emenda-labs/themeshift/core/changespec"
	"github.com/emenda-labs/themeshift/core/cli"
	"github.com/emenda-labs/themeshift/core/driver"
	"github.com/emenda-labs/themeshift/drivers/sass"
	"github.com/emenda-labs/themeshift/drivers/sass/themingapi"
	"github.com/emenda-labs/themeshift/pkg/config"
	"github.com/emenda-labs/themeshift/pkg/fstree"
	"github.com/emenda-labs/themeshift/pkg/npmpkg"
)

const materialPackage = "@angular/material"

// runner carries out the commands once flags are parsed.
type runner struct {
	stdout io.Writer
	logger *zap.Logger
}

func (r *runner) upgradeMaterial(ctx context.Context, opts cli.UpgradeMaterialOptions) error {
	from := opts.From
	if from == "" {
		current, err := npmpkg.FindPackageVersion(opts.Repo, materialPackage)
		if err != nil {
			return err
		}
		from = current
	}

	if from == opts.To {
		return fmt.Errorf("package %s is already at %s", materialPackage, opts.To)
	}
	if semver.Compare(opts.To, from) < 0 {
		r.logger.Warn("target version is older than current version",
			zap.String("current", from), zap.String("target", opts.To))
	}

	cfg, err := r.resolveConfig(opts.RunOptions)
	if err != nil {
		return err
	}

	all, err := materialMigrations(cfg)
	if err != nil {
		return err
	}
	selected, err := sass.SelectMigrations(all, from, opts.To)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "Package:         %s\n", materialPackage)
	fmt.Fprintf(r.stdout, "Current version: %s\n", from)
	fmt.Fprintf(r.stdout, "Target version:  %s\n", opts.To)
	fmt.Fprintln(r.stdout)

	if len(selected) == 0 {
		fmt.Fprintln(r.stdout, "No stylesheet migrations apply to this upgrade.")
		return nil
	}

	return r.apply(ctx, opts.RunOptions, cfg, selected)
}

func (r *runner) migrateThemingAPI(ctx context.Context, opts cli.RunOptions) error {
	cfg, err := r.resolveConfig(opts)
	if err != nil {
		return err
	}
	if cfg.ExcludeImports == "" {
		cfg.ExcludeImports = themingapi.PrebuiltThemeImports
	}

	migration, err := sass.NewThemingAPIMigration(cfg.MigratorOptions())
	if err != nil {
		return err
	}
	return r.apply(ctx, opts, cfg, []driver.Migration{migration})
}

// materialMigrations lists every known Material stylesheet migration.
func materialMigrations(cfg *config.Config) ([]driver.Migration, error) {
	themingAPI, err := sass.NewThemingAPIMigration(cfg.MigratorOptions())
	if err != nil {
		return nil, err
	}
	return []driver.Migration{themingAPI}, nil
}

// resolveConfig loads the config file and lets explicit flags override it.
func (r *runner) resolveConfig(opts cli.RunOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config, false)
	} else {
		cfg, err = config.LoadRepo(opts.Repo)
	}
	if err != nil {
		return nil, err
	}

	if opts.Explicit[cli.FlagImportsOnly] {
		cfg.ImportsOnly = opts.ImportsOnly
	}
	if opts.Explicit[cli.FlagInclude] {
		cfg.Include = opts.Include
	}
	if opts.Explicit[cli.FlagExclude] {
		cfg.Exclude = opts.Exclude
	}
	if opts.Explicit[cli.FlagConcurrency] {
		cfg.Concurrency = opts.Concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *runner) apply(ctx context.Context, opts cli.RunOptions, cfg *config.Config, migrations []driver.Migration) error {
	tree, err := fstree.NewDir(opts.Repo, cfg.Include, cfg.Exclude)
	if err != nil {
		return err
	}

	result, err := sass.NewDriver(r.logger).Apply(ctx, tree, migrations, sass.ApplyOptions{
		DryRun:      opts.DryRun,
		FailFast:    opts.FailFast,
		Concurrency: cfg.Concurrency,
	})
	printSummary(r.stdout, result)
	if err != nil {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("%d of %d stylesheets failed to migrate", len(result.Failed), result.Scanned)
	}
	return nil
}

func printSummary(w io.Writer, result changespec.ApplyResult) {
	marker := ""
	if result.DryRun {
		marker = "[dry-run] "
	}

	for _, c := range result.Changed {
		fmt.Fprintf(w, "%smigrated %s\n", marker, c.Path)
	}
	for _, f := range result.Failed {
		fmt.Fprintf(w, "failed   %s: %s\n", f.Path, f.Error)
	}

	fmt.Fprintf(w, "%s%d scanned, %d changed, %d failed\n", marker, result.Scanned, len(result.Changed), len(result.Failed))
	if result.DryRun && len(result.Changed) > 0 {
		fmt.Fprintln(w, "[dry-run] No changes applied.")
	}
}
