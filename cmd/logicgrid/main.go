package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"logicgrid/internal/adapters/tui"
	"logicgrid/internal/circuit"
	"logicgrid/internal/config"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI, so logging goes to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "logicgrid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Printf("starting: %+v", cfg)
	}

	session := circuit.New(cfg.Options())
	app := tui.NewApp(session)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Printf("tui: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
