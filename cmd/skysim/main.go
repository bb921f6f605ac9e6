// Command skysim generates a synthetic star catalog scattered around a sky
// position (Andromeda by default) and writes it as CSV.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/litescript/skysim/internal/ui"
)

func main() {
	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		preview:    ui.Run,
	}

	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
