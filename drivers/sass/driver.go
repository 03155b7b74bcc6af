// Package sass applies stylesheet migrations across a file tree.
package sass

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emenda-labs/themeshift/core/changespec"
	"github.com/emenda-labs/themeshift/core/driver"
)

// ApplyOptions controls a Driver run.
type ApplyOptions struct {
	// DryRun computes changes without writing them back.
	DryRun bool

	// FailFast stops at the first file that fails to migrate.
	FailFast bool

	// Concurrency limits the number of files migrated at once. Zero uses
	// GOMAXPROCS.
	Concurrency int
}

// Driver runs migrations over every stylesheet of a Tree.
type Driver struct {
	logger *zap.Logger
}

// NewDriver creates a Driver. A nil logger discards all output.
func NewDriver(logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{logger: logger}
}

// Apply migrates every stylesheet in tree with migrations, in order. Files
// that fail are reported in the result. With FailFast the run is cancelled
// and the first failure is returned as the error.
func (d *Driver) Apply(ctx context.Context, tree driver.Tree, migrations []driver.Migration, opts ApplyOptions) (changespec.ApplyResult, error) {
	if opts.Concurrency < 0 {
		return changespec.ApplyResult{}, fmt.Errorf("concurrency must not be negative, got %d", opts.Concurrency)
	}

	files, err := tree.Files(ctx)
	if err != nil {
		return changespec.ApplyResult{}, fmt.Errorf("listing files: %w", err)
	}

	var stylesheets []string
	for _, path := range files {
		if tree.IsStylesheet(path) {
			stylesheets = append(stylesheets, path)
		}
	}

	result := changespec.ApplyResult{
		Scanned: len(stylesheets),
		DryRun:  opts.DryRun,
	}
	if len(migrations) == 0 || len(stylesheets) == 0 {
		d.logger.Info("nothing to migrate",
			zap.Int("stylesheets", len(stylesheets)),
			zap.Int("migrations", len(migrations)))
		return result, nil
	}

	limit := opts.Concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for _, path := range stylesheets {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			change, failure := d.applyFile(tree, path, migrations, opts.DryRun)

			mu.Lock()
			defer mu.Unlock()
			if failure != nil {
				result.Failed = append(result.Failed, *failure)
				if opts.FailFast {
					return fmt.Errorf("%s: %s", failure.Path, failure.Error)
				}
				return nil
			}
			if change != nil {
				result.Changed = append(result.Changed, *change)
			}
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	sort.Slice(result.Changed, func(i, j int) bool { return result.Changed[i].Path < result.Changed[j].Path })
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].Path < result.Failed[j].Path })

	d.logger.Info("migration finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("changed", len(result.Changed)),
		zap.Int("failed", len(result.Failed)),
		zap.Bool("dry_run", opts.DryRun))

	if err != nil {
		return result, err
	}
	return result, nil
}

// applyFile runs each migration over one file. It returns a change when the
// content differs, or a failure when reading, migrating or writing failed.
func (d *Driver) applyFile(tree driver.Tree, path string, migrations []driver.Migration, dryRun bool) (*changespec.FileChange, *changespec.FileFailure) {
	original, err := tree.Read(path)
	if err != nil {
		d.logger.Warn("read failed", zap.String("path", path), zap.Error(err))
		return nil, &changespec.FileFailure{Path: path, Error: err.Error()}
	}

	content := original
	var applied []string
	for _, m := range migrations {
		out, err := m.MigrateFile(path, content)
		if err != nil {
			d.logger.Warn("migration failed",
				zap.String("path", path),
				zap.String("migration", m.Name()),
				zap.Error(err))
			return nil, &changespec.FileFailure{Path: path, Migration: m.Name(), Error: err.Error()}
		}
		if out != content {
			applied = append(applied, m.Name())
			content = out
		}
	}

	if content == original {
		d.logger.Debug("unchanged", zap.String("path", path))
		return nil, nil
	}

	if !dryRun {
		if err := tree.Overwrite(path, content); err != nil {
			d.logger.Warn("write failed", zap.String("path", path), zap.Error(err))
			return nil, &changespec.FileFailure{Path: path, Error: err.Error()}
		}
	}

	d.logger.Debug("migrated",
		zap.String("path", path),
		zap.Strings("migrations", applied),
		zap.Bool("dry_run", dryRun))

	return &changespec.FileChange{Path: path, Migrations: applied}, nil
}
