// ABOUTME: The debug command: interactive viewer for raw terminal input bytes.
// ABOUTME: Session bounds come from --timeout and --max-inputs.

package main

import (
	"flag"

	"github.com/mauromedda/keywire/internal/mode/debug"
)

func runDebug(args []string) error {
	fs := flag.NewFlagSet("debug", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 0, "Quit after this duration (0 means no deadline)")
	maxInputs := fs.Int("max-inputs", 0, "Quit after this many captured events (0 means no limit)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}
	if _, _, err := setup(*verbose); err != nil {
		return err
	}

	return debug.Run(debug.Options{
		MaxInputs: *maxInputs,
		Timeout:   *timeout,
	})
}
