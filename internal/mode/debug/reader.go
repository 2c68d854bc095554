// ABOUTME: Raw input capture for the viewer, bypassing Bubble Tea's key parser.
// ABOUTME: Segments stdin with keyseq.Scanner and injects units as messages.

package debug

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/keywire/internal/forward"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

// neverReader blocks forever, starving Bubble Tea's own input loop so the
// raw reader below is the only consumer of the tty.
type neverReader struct{ done chan struct{} }

func newNeverReader() neverReader { return neverReader{done: make(chan struct{})} }

func (r neverReader) Read([]byte) (int, error) {
	<-r.done
	return 0, io.EOF
}

// readLoop reads in from the raw tty, segments it into wire units, and
// sends each to the program. An ESC with no continuation within the flush
// timeout is sent as-is.
func readLoop(p *tea.Program, in io.Reader, escTimeout time.Duration) {
	type chunk struct {
		data []byte
		err  error
	}
	reads := make(chan chunk, 1)
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := in.Read(buf)
			if n > 0 {
				reads <- chunk{data: buf[:n]}
			}
			if err != nil {
				reads <- chunk{err: err}
				return
			}
		}
	}()

	var scanner keyseq.Scanner
	flush := time.NewTimer(escTimeout)
	flush.Stop()

	for {
		select {
		case c := <-reads:
			if c.data != nil {
				scanner.Write(c.data)
				for {
					unit, ok := scanner.Next()
					if !ok {
						break
					}
					p.Send(rawUnitMsg{data: unit})
				}
				flush.Stop()
				if scanner.Pending() {
					flush.Reset(escTimeout)
				}
			}
			if c.err != nil {
				if held := scanner.Flush(); len(held) > 0 {
					p.Send(rawUnitMsg{data: held})
				}
				if c.err != io.EOF {
					p.Send(readErrMsg{err: c.err})
				}
				return
			}
		case <-flush.C:
			if held := scanner.Flush(); len(held) > 0 {
				p.Send(rawUnitMsg{data: held})
			}
		}
	}
}

// DefaultEscTimeout mirrors the forwarder's lone-ESC flush window.
const DefaultEscTimeout = forward.DefaultEscTimeout
