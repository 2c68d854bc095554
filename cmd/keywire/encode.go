// ABOUTME: The encode command: registry lookups from chord and scheme to wire bytes.
// ABOUTME: --all prints every defined (scheme, chord) pair as a reference table.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	schemeName := fs.String("scheme", "csi-u", "Encoding scheme: csi-u, modify-other-keys, literal")
	format := fs.String("format", "escaped", "Output format: hex, escaped, raw")
	all := fs.Bool("all", false, "Print the full wire table instead of one chord")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}

	if *all {
		printWireTable()
		return nil
	}

	scheme, err := keyseq.ParseScheme(*schemeName)
	if err != nil {
		return usagef("%v", err)
	}

	chord := "shift+enter"
	if fs.NArg() > 0 {
		chord = fs.Arg(0)
	}
	ev, err := keyseq.ParseChord(chord)
	if err != nil {
		return usagef("%v", err)
	}

	data, err := keyseq.Encode(scheme, ev)
	if err != nil {
		return err
	}

	switch *format {
	case "hex":
		fmt.Println(keyseq.HexBytes(data))
	case "escaped":
		fmt.Println(keyseq.EscapeBytes(data))
	case "raw":
		_, err = os.Stdout.Write(data)
		return err
	default:
		return usagef("unknown format %q (want hex, escaped, or raw)", *format)
	}
	return nil
}

// printWireTable lists every chord each scheme can express, with both the
// escaped and hex spellings.
func printWireTable() {
	events := make([]keyseq.Event, 0, 16)
	for mod := keyseq.Mod(0); mod < 8; mod++ {
		events = append(events, keyseq.Event{Key: keyseq.KeyEnter, Mod: mod})
	}
	for mod := keyseq.Mod(0); mod < 8; mod++ {
		events = append(events, keyseq.Event{Key: keyseq.KeyKPEnter, Mod: mod})
	}

	fmt.Printf("%-22s %-19s %-14s %s\n", "CHORD", "SCHEME", "ESCAPED", "HEX")
	for _, scheme := range keyseq.AllSchemes {
		for _, ev := range events {
			data, err := keyseq.Encode(scheme, ev)
			if errors.Is(err, keyseq.ErrUnsupportedCombination) {
				continue
			}
			if err != nil {
				continue
			}
			fmt.Printf("%-22s %-19s %-14s %s\n",
				ev.Chord(), scheme, keyseq.EscapeBytes(data), keyseq.HexBytes(data))
		}
	}
}
