// ABOUTME: CLI entry point for keywire: subcommand dispatch, exit codes, shared setup.
// ABOUTME: Exit 0 on success, 1 on operational errors, 2 on usage errors.

package main

import (
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It pre-sets the lipgloss background in its init(), preventing Bubble
	// Tea's tea_init.go from sending OSC 10/11 queries whose async
	// responses would land in the viewer's raw input stream.
	_ "github.com/mauromedda/keywire/internal/termfix"

	"github.com/mauromedda/keywire/internal/config"
	"github.com/mauromedda/keywire/internal/log"
	"github.com/mauromedda/keywire/internal/profile"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// usageError marks a failure that is the caller's fault: exit code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "detect":
		err = runDetect(args)
	case "encode":
		err = runEncode(args)
	case "send":
		err = runSend(args)
	case "wrap":
		err = runWrap(args)
	case "debug":
		err = runDebug(args)
	case "bindings":
		err = runBindings(args)
	case "profiles":
		err = runProfiles(args)
	case "explain":
		err = runExplain(args)
	case "version", "--version":
		fmt.Printf("keywire %s (%s) built %s\n", version, commit, date)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "keywire: unknown command %q\n\n", cmd)
		printUsage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "keywire %s: %v\n", cmd, err)
		if _, ok := err.(usageError); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `keywire normalizes how Shift+Enter travels between terminals,
multiplexers, and applications.

Usage: keywire <command> [flags] [args]

Commands:
  detect     Identify the hosting terminal, multiplexer, and their schemes
  encode     Print the wire bytes for a chord under a scheme
  send       Emit a chord in the encoding a target application prefers
  wrap       Run a command under a PTY with live input normalization
  debug      Interactive viewer for the raw bytes your terminal transmits
  bindings   Print multiplexer configuration for forwarding Shift+Enter
  profiles   List or inspect application capability profiles
  explain    Render the built-in explainer for the shift+enter problem
  version    Print version information

Run any command with -h for its flags.
`)
}

// setup loads settings and the profile registry, applying the verbose
// flag and optional file logging before anything else runs.
func setup(verbose bool) (*config.Settings, *profile.Registry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}
	if verbose || settings.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	if path := os.Getenv("KEYWIRE_LOG_FILE"); path != "" {
		if err := log.TeeFile(path); err != nil {
			log.Warn("%v", err)
		}
	}

	registry, err := profile.Load(
		config.GlobalProfilesFile(),
		config.ProjectProfilesFile(cwd),
	)
	if err != nil {
		return nil, nil, err
	}
	return settings, registry, nil
}
