package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logicgrid/internal/application"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
)

var truthAll bool

var truthCmd = &cobra.Command{
	Use:   "truth [kind]",
	Short: "Print a gate kind's truth table",
	Long: `Print the truth table of a gate kind: AND, OR, NOT, NAND, NOR, XOR,
XNOR, 1 (constant HIGH) or 0 (constant LOW).

Example:
  logicgrid-cli truth nand
  logicgrid-cli truth --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		if truthAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := domain.GateKinds
		if !truthAll {
			kind, err := application.ParseGateKind(args[0])
			if err != nil {
				return err
			}
			kinds = []domain.GateKind{kind}
		}

		ctx := context.Background()
		for i, kind := range kinds {
			result, err := commands.NewTruthTableCommand(kind).Execute(ctx)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

func init() {
	truthCmd.Flags().BoolVarP(&truthAll, "all", "a", false, "print every kind")
	rootCmd.AddCommand(truthCmd)
}
