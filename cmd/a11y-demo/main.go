// Command a11y-demo is an interactive playground for the a11y toolkit.
//
// It hosts a small patient-intake form in a headless interface tree and
// drives focus traversal, a modal confirmation dialog with a focus
// trap, and polite/assertive live-region announcements from real
// terminal key events.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/go-drift/a11y/cmd/a11y-demo/internal/config"
	a11yerrors "github.com/go-drift/a11y/pkg/errors"
)

func main() {
	var (
		configDir = pflag.String("config-dir", ".", "directory containing a11y.yaml")
		expiry    = pflag.Duration("expiry", 0, "announcement expiry override (e.g. 2s)")
		verbose   = pflag.BoolP("verbose", "v", false, "verbose error logging")
	)
	pflag.Parse()

	a11yerrors.SetHandler(&a11yerrors.LogHandler{Verbose: *verbose})

	cfg, err := config.LoadOptional(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	resolved := cfg.Resolve()
	if *expiry > 0 {
		resolved.Expiry = *expiry
	}

	p := tea.NewProgram(newApp(resolved), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
