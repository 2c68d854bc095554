// ABOUTME: Tests for the active keyboard protocol probe against a scripted tty.
// ABOUTME: Covers full answers, partial answers, split reads, and silent terminals.

package detect

import (
	"bytes"
	"io"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

// scriptedTTY replays canned responses one chunk per Read, then blocks
// until the test finishes, like a quiet terminal would.
type scriptedTTY struct {
	mu     sync.Mutex
	wrote  bytes.Buffer
	chunks [][]byte
	done   chan struct{}
}

func newScriptedTTY(t *testing.T, chunks ...string) *scriptedTTY {
	t.Helper()
	s := &scriptedTTY{done: make(chan struct{})}
	for _, c := range chunks {
		s.chunks = append(s.chunks, []byte(c))
	}
	t.Cleanup(func() { close(s.done) })
	return s
}

func (s *scriptedTTY) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrote.Write(p)
}

func (s *scriptedTTY) Read(p []byte) (int, error) {
	s.mu.Lock()
	if len(s.chunks) > 0 {
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		s.mu.Unlock()
		return copy(p, chunk), nil
	}
	s.mu.Unlock()
	<-s.done
	return 0, io.EOF
}

func (s *scriptedTTY) written() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrote.String()
}

func TestQueryFullSupport(t *testing.T) {
	t.Parallel()

	tty := newScriptedTTY(t, "\x1b[?1u\x1b[>4;2m\x1b[?62;22c")
	res, err := Query(tty, time.Second)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if !res.Answered {
		t.Error("Answered = false, want DA1 fence seen")
	}
	if !res.KittyKeyboard || res.KittyFlags != 1 {
		t.Errorf("kitty = %v flags %d, want true/1", res.KittyKeyboard, res.KittyFlags)
	}
	if !res.ModifyOtherKeys || res.ModifyOtherKeysMode != 2 {
		t.Errorf("modifyOtherKeys = %v mode %d, want true/2", res.ModifyOtherKeys, res.ModifyOtherKeysMode)
	}

	wrote := tty.written()
	for _, q := range []string{"\x1b[?u", "\x1b[?4m", "\x1b[c"} {
		if !strings.Contains(wrote, q) {
			t.Errorf("probe missing query %q in %q", q, wrote)
		}
	}
}

func TestQuerySplitAcrossReads(t *testing.T) {
	t.Parallel()

	tty := newScriptedTTY(t, "\x1b[?1", "u\x1b[?62", ";22c")
	res, err := Query(tty, time.Second)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !res.KittyKeyboard {
		t.Error("kitty answer lost across split reads")
	}
	if !res.Answered {
		t.Error("fence lost across split reads")
	}
}

func TestQueryDA1Only(t *testing.T) {
	t.Parallel()

	tty := newScriptedTTY(t, "\x1b[?62c")
	res, err := Query(tty, time.Second)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !res.Answered {
		t.Error("Answered = false")
	}
	if res.KittyKeyboard || res.ModifyOtherKeys {
		t.Errorf("claimed support the terminal never reported: %+v", res)
	}
	if got := res.Schemes(); len(got) != 1 {
		t.Errorf("Schemes() = %v, want just literal", got)
	}
}

// chattyTTY answers the fence immediately and then never stops talking,
// like a terminal with user input queued behind the probe answers.
type chattyTTY struct{ answered bool }

func (c *chattyTTY) Write(p []byte) (int, error) { return len(p), nil }

func (c *chattyTTY) Read(p []byte) (int, error) {
	if !c.answered {
		c.answered = true
		return copy(p, "\x1b[?62c"), nil
	}
	return copy(p, "x"), nil
}

func TestQueryReaderStopsAfterFence(t *testing.T) {
	// Counts goroutines, so it must not run alongside parallel tests.
	before := runtime.NumGoroutine()

	for i := 0; i < 8; i++ {
		res, err := Query(&chattyTTY{}, time.Second)
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if !res.Answered {
			t.Fatal("fence not seen")
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("reader goroutines still running: have %d, started with %d",
		runtime.NumGoroutine(), before)
}

func TestQuerySilentTerminal(t *testing.T) {
	t.Parallel()

	tty := newScriptedTTY(t)
	res, err := Query(tty, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Answered || res.KittyKeyboard || res.ModifyOtherKeys {
		t.Errorf("silent terminal produced %+v", res)
	}
}
