// ABOUTME: The send command: emits a chord in the target application's preferred encoding.
// ABOUTME: Bytes go to stdout for piping; diagnostics stay on stderr.

package main

import (
	"flag"
	"os"

	"github.com/mauromedda/keywire/internal/emit"
	"github.com/mauromedda/keywire/internal/log"
	"github.com/mauromedda/keywire/internal/profile"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

func runSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	app := fs.String("app", "", "Target application profile")
	lossy := fs.Bool("lossy", false, "Permit the plain-CR fallback, dropping modifiers")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}

	settings, registry, err := setup(*verbose)
	if err != nil {
		return err
	}
	if *app == "" {
		*app = settings.DefaultApp
	}
	if *app == "" {
		return usagef("missing --app (or default_app in settings)")
	}

	chord := "shift+enter"
	if fs.NArg() > 0 {
		chord = fs.Arg(0)
	}
	ev, err := keyseq.ParseChord(chord)
	if err != nil {
		return usagef("%v", err)
	}

	p, err := registry.Lookup(*app)
	if err != nil {
		return err
	}

	em, err := resolveEmission(p, ev, *lossy || settings.Lossy)
	if err != nil {
		return err
	}
	if em.Degraded {
		log.Warn("%s cannot express %v; sent plain CR (modifiers lost)", p.Name, ev)
	}
	log.Debug("sending %v to %s as %v: %s", ev, p.Name, em.Scheme, keyseq.EscapeBytes(em.Bytes))

	_, err = os.Stdout.Write(em.Bytes)
	return err
}

func resolveEmission(p *profile.Profile, ev keyseq.Event, lossy bool) (emit.Emission, error) {
	if lossy {
		return emit.ResolveLossy(p, ev)
	}
	return emit.Resolve(p, ev)
}
