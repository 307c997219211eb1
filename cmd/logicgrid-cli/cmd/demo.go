package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logicgrid/internal/adapters/script"
)

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a built-in example circuit",
	Long: `Run one of the built-in example circuits, or list them when no name
is given.

Example:
  logicgrid-cli demo
  logicgrid-cli demo junction`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, d := range script.Demos {
				fmt.Fprintf(out, "%s  %s\n", d.Name, d.Title)
			}
			return nil
		}

		demo, ok := script.FindDemo(args[0])
		if !ok {
			return fmt.Errorf("unknown demo %q (run 'logicgrid-cli demo' to list them)", args[0])
		}

		fmt.Fprintf(out, "# %s\n", demo.Title)
		return script.NewRunner(newSession(), out).RunString(context.Background(), demo.Script)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
