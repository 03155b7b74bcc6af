package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emenda-labs/themeshift/pkg/logging"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	Verbose   bool
	LogFormat string
}

// NewRootCmd creates the top-level themeshift command. Persistent flags are
// parsed into globals.
func NewRootCmd(version string, globals *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themeshift",
		Short: "Automated stylesheet migration tool",
		Long:  "Themeshift rewrites Angular Material stylesheets from the @import theming API to Sass modules.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch globals.LogFormat {
			case logging.FormatJSON, logging.FormatConsole:
				return nil
			}
			return fmt.Errorf("--log-format must be %s or %s", logging.FormatJSON, logging.FormatConsole)
		},
		SilenceUsage: true,
	}

	cmd.Version = version

	cmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "Log every file at debug level")
	cmd.PersistentFlags().StringVar(&globals.LogFormat, "log-format", logging.FormatConsole, "Log format: json or console")

	return cmd
}
