package cli

import (
	"github.com/spf13/cobra"
)

// NewUpgradeCmd creates the "upgrade" parent command.
func NewUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade a dependency and migrate its stylesheets",
		Long:  "Run every stylesheet migration between the installed and the target version of a dependency.",
	}

	return cmd
}
