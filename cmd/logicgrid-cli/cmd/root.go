package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logicgrid/internal/circuit"
	"logicgrid/internal/config"
)

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:   "logicgrid-cli",
	Short: "Run digital logic circuits from the command line",
	Long: `logicgrid-cli builds and simulates circuits of wires, gates and lamps
on a grid.

Circuits are described with the same statements the editor's console
accepts (wire, gate, lamp, select, delete, kind, cycle, force, propagate,
clear, show). Flags override the LOGICGRID_* environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&cfg.GridSize, "grid", cfg.GridSize, "grid cell size")
	flags.IntVar(&cfg.MaxPasses, "max-passes", cfg.MaxPasses, "propagation pass cap")
	flags.Float64Var(&cfg.PinSnap, "pin-snap", cfg.PinSnap, "gate pin snap radius")
	flags.Float64Var(&cfg.MergeRadius, "merge-radius", cfg.MergeRadius, "wire endpoint merge radius")
	flags.Float64Var(&cfg.LampRadius, "lamp-radius", cfg.LampRadius, "lamp connection radius")
}

// newSession creates an empty circuit with the configured options
func newSession() *circuit.Session {
	return circuit.New(cfg.Options())
}
