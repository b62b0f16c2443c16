// Implements: prd005-unitconv-cli (R2.2: version command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the unitconv release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/quanta"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the unitconv version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "unitconv v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
