package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emenda-labs/themeshift/core/cli"
	"github.com/emenda-labs/themeshift/pkg/logging"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var globals cli.GlobalOptions
	r := &runner{stdout: os.Stdout, logger: logging.Nop()}

	// The logger depends on persistent flags, so it is built once they are parsed.
	withLogger := func(run func() error) error {
		logger, err := logging.New(logging.Options{Verbose: globals.Verbose, Format: globals.LogFormat})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		r.logger = logger
		return run()
	}

	runUpgradeMaterial := func(ctx context.Context, opts cli.UpgradeMaterialOptions) error {
		return withLogger(func() error { return r.upgradeMaterial(ctx, opts) })
	}
	runMigrateThemingAPI := func(ctx context.Context, opts cli.RunOptions) error {
		return withLogger(func() error { return r.migrateThemingAPI(ctx, opts) })
	}

	root := cli.NewRootCmd(version, &globals)
	upgradeCmd := cli.NewUpgradeCmd()
	upgradeCmd.AddCommand(cli.NewUpgradeMaterialCmd(runUpgradeMaterial))
	root.AddCommand(upgradeCmd)

	migrateCmd := cli.NewMigrateCmd()
	migrateCmd.AddCommand(cli.NewMigrateThemingAPICmd(runMigrateThemingAPI))
	root.AddCommand(migrateCmd)

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
