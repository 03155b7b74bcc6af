package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the "migrate" parent command.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run a single stylesheet migration",
		Long:  "Run one migration regardless of the installed dependency versions.",
	}
}

// MigrateRunFunc is the function signature for a migrate subcommand handler.
type MigrateRunFunc func(ctx context.Context, opts RunOptions) error

// NewMigrateThemingAPICmd creates the "migrate theming-api" subcommand.
func NewMigrateThemingAPICmd(runFunc MigrateRunFunc) *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:   "theming-api",
		Short: "Move stylesheets to the Sass module theming API",
		Long: "Rewrite @import-based Angular Material and CDK theming to @use, renaming mixins, " +
			"functions and variables. Imports of the prebuilt themes are left alone.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateRunFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Explicit = explicitFlags(cmd)
			return runFunc(cmd.Context(), opts)
		},
	}

	addRunFlags(cmd, &opts)

	return cmd
}
