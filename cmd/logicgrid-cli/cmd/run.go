package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logicgrid/internal/adapters/report"
	"logicgrid/internal/adapters/script"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a circuit script",
	Long: `Run a circuit script and print each statement's result followed by
the final circuit report. Reads stdin when no file or "-" is given.

Example:
  logicgrid-cli run adder.lg
  echo "gate 1 0 0
  wire 20,7 60,7
  propagate" | logicgrid-cli run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readScript(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		session := newSession()
		out := cmd.OutOrStdout()
		if err := script.NewRunner(session, out).RunString(context.Background(), src); err != nil {
			return err
		}

		fmt.Fprintln(out)
		return report.Write(out, session)
	},
}

func readScript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	return string(b), nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
