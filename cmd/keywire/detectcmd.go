// ABOUTME: The detect command: reports terminal, multiplexer, and deliverable schemes.
// ABOUTME: Passive by default; --query probes the controlling tty behind a DA1 fence.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/mauromedda/keywire/internal/detect"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	query := fs.Bool("query", false, "Actively probe the terminal for protocol support")
	jsonOut := fs.Bool("json", false, "Emit the report as JSON")
	timeout := fs.Duration("timeout", 300*time.Millisecond, "Probe deadline for --query")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}
	if _, _, err := setup(*verbose); err != nil {
		return err
	}

	info := detect.Detect()

	var probe *detect.Result
	if *query {
		res, err := probeTerminal(*timeout)
		if err != nil {
			return err
		}
		probe = &res
	}

	if *jsonOut {
		return printDetectJSON(info, probe)
	}
	printDetectText(info, probe)
	return nil
}

// probeTerminal runs the active query with the tty in raw mode, so the
// responses arrive as bytes instead of being cooked into lines.
func probeTerminal(timeout time.Duration) (detect.Result, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return detect.Result{}, fmt.Errorf("--query needs a terminal on stdin")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return detect.Result{}, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	tty := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	return detect.Query(tty, timeout)
}

func printDetectText(info detect.Info, probe *detect.Result) {
	name := info.Terminal
	if name == "" {
		name = "unknown"
	}
	fmt.Printf("terminal:    %s\n", name)
	if info.Mux != "" {
		fmt.Printf("multiplexer: %s (masks the terminal; schemes below are what it forwards)\n", info.Mux)
	}
	fmt.Printf("background:  %s\n", info.Background)
	fmt.Printf("schemes:     %s\n", schemeNames(info.Schemes))

	if probe == nil {
		return
	}
	if !probe.Answered {
		fmt.Println("probe:       no DA1 answer before the deadline")
		return
	}
	fmt.Printf("probe:       kitty keyboard %s", yesNo(probe.KittyKeyboard))
	if probe.KittyKeyboard {
		fmt.Printf(" (flags %d)", probe.KittyFlags)
	}
	fmt.Printf(", modifyOtherKeys %s", yesNo(probe.ModifyOtherKeys))
	if probe.ModifyOtherKeys {
		fmt.Printf(" (mode %d)", probe.ModifyOtherKeysMode)
	}
	fmt.Println()
	fmt.Printf("probed schemes: %s\n", schemeNames(probe.Schemes()))
}

type detectReport struct {
	Terminal   string       `json:"terminal"`
	Mux        string       `json:"mux,omitempty"`
	Background string       `json:"background"`
	Schemes    []string     `json:"schemes"`
	Probe      *probeReport `json:"probe,omitempty"`
}

type probeReport struct {
	Answered            bool     `json:"answered"`
	KittyKeyboard       bool     `json:"kitty_keyboard"`
	KittyFlags          int      `json:"kitty_flags,omitempty"`
	ModifyOtherKeys     bool     `json:"modify_other_keys"`
	ModifyOtherKeysMode int      `json:"modify_other_keys_mode,omitempty"`
	Schemes             []string `json:"schemes"`
}

func printDetectJSON(info detect.Info, probe *detect.Result) error {
	report := detectReport{
		Terminal:   info.Terminal,
		Mux:        info.Mux,
		Background: info.Background.String(),
		Schemes:    schemeNameList(info.Schemes),
	}
	if probe != nil {
		report.Probe = &probeReport{
			Answered:            probe.Answered,
			KittyKeyboard:       probe.KittyKeyboard,
			KittyFlags:          probe.KittyFlags,
			ModifyOtherKeys:     probe.ModifyOtherKeys,
			ModifyOtherKeysMode: probe.ModifyOtherKeysMode,
			Schemes:             schemeNameList(probe.Schemes()),
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func schemeNames(schemes []keyseq.Scheme) string {
	if len(schemes) == 0 {
		return "none"
	}
	out := ""
	for i, s := range schemes {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out
}

func schemeNameList(schemes []keyseq.Scheme) []string {
	out := make([]string, len(schemes))
	for i, s := range schemes {
		out[i] = s.String()
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
