package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/gridnav/internal/cli"
	"github.com/lucky7xz/gridnav/internal/config"
	"github.com/lucky7xz/gridnav/internal/core"
	"github.com/lucky7xz/gridnav/internal/ui"
)

const maxLogBytes = 1024 * 1024

// Run dispatches CLI subcommands, or sets up logging and runs the grid TUI.
func Run() {
	if cli.HandleCLI(os.Args) {
		return
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not get config dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create config dir: %v\n", err)
		os.Exit(1)
	}

	// Logging setup
	logPath := filepath.Join(configDir, config.AppName+".log")
	if err := core.RotateLogIfNeeded(logPath, maxLogBytes); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("%s %s starting", config.AppName, config.Version)

	program := tea.NewProgram(
		ui.InitialModel(),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		log.Printf("program exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
