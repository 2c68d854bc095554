// ABOUTME: Unix SIGWINCH handling that propagates host terminal resizes to the child PTY.
// ABOUTME: Fires once at startup so the child sees the real size immediately.

//go:build unix

package forward

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"

	"github.com/mauromedda/keywire/internal/log"
)

// watchResize forwards SIGWINCH-driven size changes to the PTY. The
// returned stop function releases the signal handler.
func (f *Forwarder) watchResize(ptmx *os.File) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for range sigCh {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Debug("resize propagation: %v", err)
			}
		}
	}()
	sigCh <- syscall.SIGWINCH

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
