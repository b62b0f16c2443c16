// Listing commands for the unitconv CLI.
// Implements: prd005-unitconv-cli (R4: dimensions command, R5: units
//
//	command).
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quanta/pkg/units"
)

// dimensionInfo is the JSON output of the dimensions command.
type dimensionInfo struct {
	Kind     string `json:"kind"`
	Standard string `json:"standard,omitempty"`
}

// unitsInfo is the JSON output of the units command.
type unitsInfo struct {
	Kind     string   `json:"kind"`
	Standard string   `json:"standard,omitempty"`
	Patterns []string `json:"patterns"`
}

func newDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List registered dimensions and their standard units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := units.NewStandardRegistry()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("load registry: %s", err))
			}

			infos := make([]dimensionInfo, 0)
			for _, dim := range registry.Dimensions() {
				info := dimensionInfo{Kind: dim.Kind()}
				if std, ok := registry.StandardUnit(dim); ok {
					info.Standard = std.Name()
				}
				infos = append(infos, info)
			}

			if flags.jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (standard: %s)\n", info.Kind, info.Standard)
			}
			return nil
		},
	}
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units DIMENSION",
		Short: "List unit patterns registered for a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := units.NewStandardRegistry()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("load registry: %s", err))
			}

			for _, dim := range registry.Dimensions() {
				if dim.Kind() != args[0] {
					continue
				}
				info := unitsInfo{Kind: dim.Kind(), Patterns: registry.Patterns(dim)}
				if std, ok := registry.StandardUnit(dim); ok {
					info.Standard = std.Name()
				}
				if flags.jsonMode {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (standard: %s)\n", info.Kind, info.Standard)
				for _, p := range info.Patterns {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
				}
				return nil
			}
			return fmt.Errorf("%w: %q", units.ErrUnknownDimension, args[0])
		},
	}
}
