package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucky7xz/gridnav/internal/config"
	"github.com/lucky7xz/gridnav/internal/ui"
	"golang.org/x/term"
)

// HandleCLI checks if the program was invoked with a subcommand.
// Returns true if a command was handled, false if it should proceed to the TUI.
func HandleCLI(args []string) bool {
	if len(args) <= 1 {
		return false
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return true
	case "config", "--config":
		if err := ExecuteConfig(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return true
	case "snapshot", "--snapshot":
		HandleSnapshotCommand(args[2:])
		return true
	case "help", "--help", "-h":
		printUsage(os.Stdout)
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [command]\n\n", config.AppName)
	fmt.Fprintln(w, "Without a command the interactive grid starts.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                 print the version")
	fmt.Fprintln(w, "  config                  print the config path and effective config")
	fmt.Fprintln(w, "  snapshot [flags]        render the grid once to stdout")
}

// ExecuteConfig prints where the config lives and what it resolves to.
func ExecuteConfig(w io.Writer) error {
	cfg, path, err := config.LoadConfig(nil)
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# %s\n%s", path, data)
	return nil
}

// SnapshotOptions drive a one-shot render.
type SnapshotOptions struct {
	ConfigPath string
	Width      int
	Items      int // -1 keeps the configured count
	Gap        int // -1 keeps the configured gap
	Keys       []string
}

// ParseSnapshotFlags processes raw arguments into SnapshotOptions.
func ParseSnapshotFlags(args []string) (*SnapshotOptions, error) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := &SnapshotOptions{}
	var keys string
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file to use instead of the default")
	fs.IntVar(&opts.Width, "width", 0, "Terminal width (defaults to the current terminal, or 80)")
	fs.IntVar(&opts.Items, "items", -1, "Number of items")
	fs.IntVar(&opts.Items, "n", -1, "Alias for --items")
	fs.IntVar(&opts.Gap, "gap", -1, "Column gap in cells")
	fs.StringVar(&keys, "keys", "", "Comma-separated keys to replay, e.g. right,right,down")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	if opts.Width < 0 {
		return nil, fmt.Errorf("width must not be negative")
	}

	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			opts.Keys = append(opts.Keys, k)
		}
	}
	return opts, nil
}

// ExecuteSnapshot renders the grid described by opts to w.
func ExecuteSnapshot(opts SnapshotOptions, w io.Writer) error {
	var override *string
	if opts.ConfigPath != "" {
		override = &opts.ConfigPath
	}
	cfg, _, err := config.LoadConfig(override)
	if err != nil {
		return err
	}
	if opts.Items >= 0 {
		cfg.ItemCount = opts.Items
	}
	if opts.Gap >= 0 {
		cfg.ColumnGap = opts.Gap
	}

	width := opts.Width
	if width == 0 {
		width = terminalWidth()
	}
	fmt.Fprintln(w, ui.Snapshot(cfg, width, opts.Keys))
	return nil
}

// HandleSnapshotCommand processes 'gridnav snapshot [flags]'.
func HandleSnapshotCommand(args []string) {
	opts, err := ParseSnapshotFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printSnapshotUsage()
		os.Exit(1)
	}
	if err := ExecuteSnapshot(*opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
		os.Exit(1)
	}
}

func printSnapshotUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s snapshot [--items N] [--width W] [--gap G] [--keys right,down] [--config path]\n", config.AppName)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
