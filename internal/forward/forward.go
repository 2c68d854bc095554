// ABOUTME: Runs a child process under a PTY with Enter-family input normalization.
// ABOUTME: Owns raw mode on the host tty, size propagation, and guaranteed state restore.

package forward

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/keywire/internal/log"
	"github.com/mauromedda/keywire/internal/profile"
)

// DefaultEscTimeout is how long a lone ESC may wait for continuation bytes
// before it is forwarded as the Escape key.
const DefaultEscTimeout = 50 * time.Millisecond

// Options configures a Forwarder run.
type Options struct {
	Lossy      bool
	EscTimeout time.Duration // zero means DefaultEscTimeout
}

// Forwarder wraps a child process and rewrites its keyboard input through
// a Rewriter. One Forwarder runs one child.
type Forwarder struct {
	profile *profile.Profile
	opts    Options

	mu       sync.Mutex
	oldState *term.State
}

// New builds a Forwarder targeting p.
func New(p *profile.Profile, opts Options) *Forwarder {
	if opts.EscTimeout <= 0 {
		opts.EscTimeout = DefaultEscTimeout
	}
	return &Forwarder{profile: p, opts: opts}
}

// Run starts the child under a PTY sized to the host terminal and copies
// bytes both ways until the child exits, rewriting the input direction.
// It returns the child's exit code. The host tty is restored on every
// exit path, panics included.
func (f *Forwarder) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)

	ptmx, err := f.startSized(cmd)
	if err != nil {
		return 1, err
	}
	defer ptmx.Close()

	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		if err := f.enterRawMode(stdinFd); err != nil {
			return 1, err
		}
	}
	defer f.exitRawMode(stdinFd)
	defer f.restoreOnPanic(stdinFd)

	stopResize := f.watchResize(ptmx)
	defer stopResize()

	done := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(os.Stdout, ptmx)
		// The PTY master errors with EIO when the child exits; that is
		// the normal end of the output stream on Linux.
		if err != nil && !errors.Is(err, io.EOF) {
			log.Debug("output copy ended: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		f.copyInput(ptmx, done)
		return nil
	})

	waitErr := cmd.Wait()
	close(done)
	// Unblocks the output copy.
	ptmx.Close()
	_ = g.Wait()

	f.exitRawMode(stdinFd)

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("waiting for %s: %w", name, waitErr)
	}
	return 0, nil
}

// startSized starts the child on a PTY matching the host terminal size,
// falling back to 80x24 when stdout is not a terminal.
func (f *Forwarder) startSized(cmd *exec.Cmd) (*os.File, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("starting %s under pty: %w", cmd.Path, err)
	}
	return ptmx, nil
}

// copyInput pumps host stdin through the rewriter into the PTY. A reader
// goroutine feeds a channel so the pump can also wake on the lone-ESC
// flush timeout while bytes are held, and on done when the child exits.
func (f *Forwarder) copyInput(ptmx *os.File, done <-chan struct{}) {
	type chunk struct {
		data []byte
		err  error
	}
	reads := make(chan chunk, 1)
	go func() {
		for {
			buf := make([]byte, 4096)
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				reads <- chunk{data: buf[:n]}
			}
			if err != nil {
				reads <- chunk{err: err}
				return
			}
		}
	}()

	rw := NewRewriter(f.profile, f.opts.Lossy)
	flush := time.NewTimer(f.opts.EscTimeout)
	flush.Stop()

	for {
		select {
		case c := <-reads:
			if c.data != nil {
				if out := rw.Transform(c.data); len(out) > 0 {
					if _, err := ptmx.Write(out); err != nil {
						return
					}
				}
				flush.Stop()
				if rw.Pending() {
					flush.Reset(f.opts.EscTimeout)
				}
			}
			if c.err != nil {
				if out := rw.Flush(); len(out) > 0 {
					ptmx.Write(out)
				}
				return
			}
		case <-flush.C:
			if out := rw.Flush(); len(out) > 0 {
				if _, err := ptmx.Write(out); err != nil {
					return
				}
			}
		case <-done:
			return
		}
	}
}

// enterRawMode switches the host tty to raw mode, saving prior state.
func (f *Forwarder) enterRawMode(fd int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	f.oldState = state
	return nil
}

// exitRawMode restores the saved tty state. Safe to call more than once.
func (f *Forwarder) exitRawMode(fd int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.oldState == nil {
		return
	}
	if err := term.Restore(fd, f.oldState); err != nil {
		log.Warn("restoring terminal state: %v", err)
	}
	f.oldState = nil
}

// restoreOnPanic restores the tty before re-raising, so a crash never
// leaves the user's shell in raw mode.
func (f *Forwarder) restoreOnPanic(fd int) {
	if r := recover(); r != nil {
		os.Stdout.Write([]byte("\033[?25h")) // show cursor
		f.exitRawMode(fd)
		panic(r)
	}
}
