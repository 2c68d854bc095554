// ABOUTME: The bindings command: prints multiplexer configuration snippets.
// ABOUTME: Defaults the multiplexer to the one detection found in front of us.

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mauromedda/keywire/internal/detect"
	"github.com/mauromedda/keywire/internal/muxconf"
)

func runBindings(args []string) error {
	fs := flag.NewFlagSet("bindings", flag.ContinueOnError)
	mux := fs.String("mux", "", "Multiplexer: tmux, zellij, or screen (default: the detected one)")
	app := fs.String("app", "", "Target application profile")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}

	settings, registry, err := setup(*verbose)
	if err != nil {
		return err
	}

	if *mux == "" {
		*mux = settings.DefaultMux
	}
	if *mux == "" {
		*mux = detect.Detect().Mux
	}
	if *mux == "" {
		return usagef("no multiplexer detected; pass --mux %s", strings.Join(muxconf.Muxes, "|"))
	}

	if *app == "" {
		*app = settings.DefaultApp
	}
	if *app == "" {
		return usagef("missing --app (or default_app in settings)")
	}

	p, err := registry.Lookup(*app)
	if err != nil {
		return err
	}

	snippet, err := muxconf.For(*mux, p)
	if err != nil {
		return err
	}
	fmt.Print(snippet.Text)
	return nil
}
