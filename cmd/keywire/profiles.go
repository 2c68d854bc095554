// ABOUTME: The profiles command: lists the capability registry or inspects one entry.
// ABOUTME: Plain-text table by default; --json for machine consumers.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/keywire/internal/profile"
	"github.com/mauromedda/keywire/internal/textwidth"
)

func runProfiles(args []string) error {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Emit profiles as JSON")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}

	_, registry, err := setup(*verbose)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		p, err := registry.Lookup(fs.Arg(0))
		if err != nil {
			return err
		}
		if *jsonOut {
			return writeProfilesJSON([]profile.Profile{*p})
		}
		printProfileDetail(p)
		return nil
	}

	all := registry.All()
	if *jsonOut {
		return writeProfilesJSON(all)
	}
	printProfileTable(all)
	return nil
}

type profileReport struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Schemes []string `json:"schemes"`
	Notes   string   `json:"notes,omitempty"`
}

func writeProfilesJSON(profiles []profile.Profile) error {
	reports := make([]profileReport, len(profiles))
	for i, p := range profiles {
		reports[i] = profileReport{
			Name:    p.Name,
			Aliases: p.Aliases,
			Schemes: schemeNameList(p.Schemes),
			Notes:   p.Notes,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func printProfileDetail(p *profile.Profile) {
	fmt.Printf("%s\n", p.Name)
	if len(p.Aliases) > 0 {
		fmt.Printf("  aliases: %s\n", strings.Join(p.Aliases, ", "))
	}
	fmt.Printf("  schemes: %s\n", schemeNames(p.Schemes))
	if p.Notes != "" {
		fmt.Printf("  %s\n", p.Notes)
	}
}

func printProfileTable(profiles []profile.Profile) {
	nameW := len("NAME")
	for _, p := range profiles {
		if w := textwidth.Width(p.Name); w > nameW {
			nameW = w
		}
	}

	fmt.Printf("%s  %s\n", textwidth.PadRight("NAME", nameW), "SCHEMES")
	for _, p := range profiles {
		fmt.Printf("%s  %s\n", textwidth.PadRight(p.Name, nameW), schemeNames(p.Schemes))
	}
	fmt.Println("\nRun keywire profiles NAME for aliases and notes.")
}
