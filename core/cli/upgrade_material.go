package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// UpgradeMaterialOptions holds the parsed flags for "upgrade material".
type UpgradeMaterialOptions struct {
	RunOptions

	// From is the installed version. Empty means read it from package.json.
	From string
	To   string
}

// UpgradeMaterialRunFunc is the function signature for the upgrade material command handler.
// It is injected by the wiring layer (cmd/themeshift/main.go).
type UpgradeMaterialRunFunc func(ctx context.Context, opts UpgradeMaterialOptions) error

// NewUpgradeMaterialCmd creates the "upgrade material" subcommand.
func NewUpgradeMaterialCmd(runFunc UpgradeMaterialRunFunc) *cobra.Command {
	var opts UpgradeMaterialOptions

	cmd := &cobra.Command{
		Use:   "material",
		Short: "Upgrade Angular Material stylesheets",
		Long:  "Run the Angular Material stylesheet migrations between the installed version and --to.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateUpgradeMaterialFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Explicit = explicitFlags(cmd)
			return runFunc(cmd.Context(), opts)
		},
	}

	addRunFlags(cmd, &opts.RunOptions)
	cmd.Flags().StringVar(&opts.To, "to", "", "Target version to upgrade to (required)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Installed version (default read from package.json)")

	cmd.MarkFlagRequired("to")

	return cmd
}

func validateUpgradeMaterialFlags(opts UpgradeMaterialOptions) error {
	if opts.To == "" {
		return fmt.Errorf("--to is required")
	}
	if err := validateVersionFlag("--to", opts.To); err != nil {
		return err
	}
	if opts.From != "" {
		if err := validateVersionFlag("--from", opts.From); err != nil {
			return err
		}
	}
	return validateRunFlags(opts.RunOptions)
}

func validateVersionFlag(name, version string) error {
	if !strings.HasPrefix(version, "v") {
		return fmt.Errorf("%s version must start with 'v' (e.g. v12.0.0)", name)
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("%s version is not valid semver: %s", name, version)
	}
	return nil
}
