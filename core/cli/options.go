package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RunOptions holds the flags shared by every command that migrates a repo.
type RunOptions struct {
	Repo        string
	Config      string
	DryRun      bool
	FailFast    bool
	ImportsOnly bool
	Include     []string
	Exclude     []string
	Concurrency int

	// Explicit names the flags given on the command line. They take
	// precedence over the config file.
	Explicit map[string]bool
}

// Flag names that a config file can also set.
const (
	FlagImportsOnly = "imports-only"
	FlagInclude     = "include"
	FlagExclude     = "exclude"
	FlagConcurrency = "concurrency"
)

func addRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Path to the repository (required)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Config file (default <repo>/.themeshift.yaml)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would change without applying")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "Stop at the first file that fails to migrate")
	cmd.Flags().BoolVar(&opts.ImportsOnly, FlagImportsOnly, false, "Only migrate files that import Material or the CDK")
	cmd.Flags().StringArrayVar(&opts.Include, FlagInclude, nil, "Glob of stylesheets to migrate, repeatable (default **/*.scss)")
	cmd.Flags().StringArrayVar(&opts.Exclude, FlagExclude, nil, "Glob of paths to skip, repeatable")
	cmd.Flags().IntVar(&opts.Concurrency, FlagConcurrency, 0, "Files migrated in parallel (default GOMAXPROCS)")

	cmd.MarkFlagRequired("repo")
}

// explicitFlags records which flags were set on the command line.
func explicitFlags(cmd *cobra.Command) map[string]bool {
	explicit := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}

func validateRunFlags(opts RunOptions) error {
	if opts.Repo == "" {
		return fmt.Errorf("--repo is required")
	}
	if opts.Concurrency < 0 {
		return fmt.Errorf("--concurrency must not be negative")
	}

	info, err := os.Stat(opts.Repo)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("repo path does not exist: %s", opts.Repo)
		}
		return fmt.Errorf("cannot access repo path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repo path is not a directory: %s", opts.Repo)
	}

	if opts.Config != "" {
		if _, err := os.Stat(opts.Config); err != nil {
			return fmt.Errorf("cannot access config file: %w", err)
		}
	}

	return nil
}
