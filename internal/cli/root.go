// Package cli implements the unitconv command-line interface.
// Implements: prd005-unitconv-cli (R1: root command structure, R6: global
//
//	flags, R7: exit codes, R8: output modes).
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quanta/internal/paths"
)

// Exit codes (prd005-unitconv-cli R7).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "unitconv" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "unitconv",
		Short: "A dimensional-algebra and unit-conversion tool",
		Long:  "Unitconv converts measured values between compatible units\nusing a symbolic dimension and unit registry.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	// Global persistent flags (prd005-unitconv-cli R6).
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .quanta)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newDimensionsCmd())
	root.AddCommand(newUnitsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return paths.DefaultConfigDirName
	}
	return dir
}
