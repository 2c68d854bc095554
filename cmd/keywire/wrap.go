// ABOUTME: The wrap command: runs a child under a PTY with live input normalization.
// ABOUTME: Propagates the child's exit code through a process.Exit at the end of main.

package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/mauromedda/keywire/internal/forward"
	"github.com/mauromedda/keywire/internal/log"
	"github.com/mauromedda/keywire/internal/profile"
)

func runWrap(args []string) error {
	fs := flag.NewFlagSet("wrap", flag.ContinueOnError)
	app := fs.String("app", "", "Target application profile (default: the command's name)")
	lossy := fs.Bool("lossy", false, "Permit the plain-CR fallback, dropping modifiers")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}
	if fs.NArg() == 0 {
		return usagef("missing command: keywire wrap [--app NAME] -- cmd [args...]")
	}
	cmdArgs := fs.Args()

	settings, registry, err := setup(*verbose)
	if err != nil {
		return err
	}

	p, err := wrapProfile(registry, *app, settings.DefaultApp, cmdArgs[0])
	if err != nil {
		return err
	}

	opts := forward.Options{Lossy: *lossy || settings.Lossy}
	if settings.EscTimeoutMs > 0 {
		opts.EscTimeout = time.Duration(settings.EscTimeoutMs) * time.Millisecond
	}

	log.Debug("wrapping %v with profile %s (schemes %v)", cmdArgs, p.Name, p.Schemes)
	code, err := forward.New(p, opts).Run(cmdArgs[0], cmdArgs[1:]...)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// wrapProfile picks the target profile: an explicit --app fails hard on an
// unknown name, while the command-name guess falls back to passthrough.
func wrapProfile(registry *profile.Registry, app, defaultApp, command string) (*profile.Profile, error) {
	if app == "" {
		app = defaultApp
	}
	if app != "" {
		return registry.Lookup(app)
	}

	base := filepath.Base(command)
	if p, err := registry.Lookup(base); err == nil {
		log.Debug("using profile %s matched from command name", p.Name)
		return p, nil
	}
	log.Info("no profile for %q; input passes through as literal newlines", base)
	return registry.Lookup("raw")
}
