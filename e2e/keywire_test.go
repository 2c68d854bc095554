// ABOUTME: E2E tests for the keywire CLI: encode output, profile lookup, send bytes.
// ABOUTME: Plain exec tests; PTY-based wrap and debug tests live in wrap_test.go.

package e2e

import (
	"strings"
	"testing"
)

func TestEncode_ShiftEnterHex(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "encode", "--scheme", "csi-u", "--format", "hex", "shift+enter")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSpace(stdout); got != "1b 5b 31 33 3b 32 75" {
		t.Errorf("hex output = %q", got)
	}
}

func TestEncode_DefaultChordEscaped(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "encode")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSpace(stdout); got != `\e[13;2u` {
		t.Errorf("escaped output = %q", got)
	}
}

func TestEncode_WireTableCoversAllSchemes(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "encode", "--all")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{`\e[13;2u`, `\e[27;2;13~`, `\e\r`, "kp-enter"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("wire table missing %s", want)
		}
	}
}

func TestEncode_UnknownSchemeIsUsageError(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	_, stderr, code := run(t, "encode", "--scheme", "osc52")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "osc52") {
		t.Errorf("stderr does not name the bad scheme: %q", stderr)
	}
}

func TestSend_EmitsProfilePreferredBytes(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "send", "--app", "claude-code")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "\x1b\r" {
		t.Errorf("sent bytes = %q, want ESC CR", stdout)
	}
}

func TestSend_NoCompatibleSchemeFails(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	_, stderr, code := run(t, "send", "--app", "screen")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "no compatible encoding scheme") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestProfiles_UnknownApplicationFails(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	_, stderr, code := run(t, "profiles", "clade-code")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown application") {
		t.Errorf("stderr = %q", stderr)
	}
	// Fuzzy suggestion for the typo.
	if !strings.Contains(stderr, "claude-code") {
		t.Errorf("stderr carries no suggestion: %q", stderr)
	}
}

func TestProfiles_ListsBuiltins(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "profiles")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, name := range []string{"claude-code", "neovim", "tmux", "screen"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("listing missing %s", name)
		}
	}
}

func TestBindings_TmuxSnippet(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	stdout, _, code := run(t, "bindings", "--mux", "tmux", "--app", "claude-code")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "bind-key -n S-Enter send-keys -H 1b 0d") {
		t.Errorf("tmux snippet = %q", stdout)
	}
}

func TestExplain_RawSource(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	// stdout is a pipe here, so the raw markdown path is taken.
	stdout, _, code := run(t, "explain", "csi-u")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "ESC [ 1 3 ; 2 u") {
		t.Errorf("explainer lost the wire bytes:\n%s", stdout)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	_, _, code := run(t, "normalize")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
