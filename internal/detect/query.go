// ABOUTME: Active terminal probe for keyboard protocol support over the controlling tty.
// ABOUTME: Queries kitty keyboard and XTQMODKEYS, fenced by DA1 so silence is bounded.

package detect

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

const (
	kittyQuery  = "\x1b[?u"  // kitty keyboard protocol: report current flags
	xtqmodkeys  = "\x1b[?4m" // XTQMODKEYS: report modifyOtherKeys resource
	da1Query    = "\x1b[c"   // primary device attributes: the fence
	da1Response = 'c'
)

// Result holds what the terminal answered during an active probe.
type Result struct {
	KittyKeyboard       bool // answered the kitty flags query
	KittyFlags          int  // progressive enhancement flags currently set
	ModifyOtherKeys     bool // answered XTQMODKEYS
	ModifyOtherKeysMode int  // reported modifyOtherKeys resource value
	Answered            bool // the DA1 fence arrived
}

// Schemes converts probe answers into transmit capabilities.
func (r Result) Schemes() []keyseq.Scheme {
	var out []keyseq.Scheme
	if r.KittyKeyboard {
		out = append(out, keyseq.SchemeCSIU)
	}
	if r.ModifyOtherKeys {
		out = append(out, keyseq.SchemeModifyOtherKeys)
	}
	return append(out, keyseq.SchemeLiteral)
}

// Query actively probes the terminal behind rw, which must already be in
// raw mode. It writes the kitty keyboard query and XTQMODKEYS followed by a
// DA1 fence: every terminal answers DA1, so its arrival means any earlier
// answers are already in. Expiry of the timeout is not an error; it reports
// a terminal that answered nothing.
func Query(rw io.ReadWriter, timeout time.Duration) (Result, error) {
	if _, err := rw.Write([]byte(kittyQuery + xtqmodkeys + da1Query)); err != nil {
		return Result{}, fmt.Errorf("writing probe: %w", err)
	}

	type chunk struct {
		data []byte
		err  error
	}
	// done releases the reader goroutine once Query returns on the fence
	// or the deadline, so a terminal that keeps talking cannot strand it.
	reads := make(chan chunk)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := rw.Read(buf)
			if n > 0 {
				select {
				case reads <- chunk{data: buf[:n]}:
				case <-done:
					return
				}
			}
			if err != nil {
				select {
				case reads <- chunk{err: err}:
				case <-done:
				}
				return
			}
		}
	}()

	var res Result
	var scanner keyseq.Scanner
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case c := <-reads:
			if c.err != nil {
				return res, fmt.Errorf("reading probe answers: %w", c.err)
			}
			scanner.Write(c.data)
			for {
				unit, ok := scanner.Next()
				if !ok {
					break
				}
				if res.absorb(unit) {
					return res, nil
				}
			}
		case <-deadline.C:
			return res, nil
		}
	}
}

// absorb classifies one response unit; reports true on the DA1 fence.
func (r *Result) absorb(unit []byte) bool {
	s := string(unit)
	if !strings.HasPrefix(s, "\x1b[") {
		return false
	}
	switch s[len(s)-1] {
	case 'u': // CSI ? <flags> u
		if strings.HasPrefix(s, "\x1b[?") {
			r.KittyKeyboard = true
			if flags, err := strconv.Atoi(s[3 : len(s)-1]); err == nil {
				r.KittyFlags = flags
			}
		}
	case 'm': // CSI > 4 ; <mode> m
		if strings.HasPrefix(s, "\x1b[>4;") {
			r.ModifyOtherKeys = true
			if mode, err := strconv.Atoi(s[5 : len(s)-1]); err == nil {
				r.ModifyOtherKeysMode = mode
			}
		}
	case da1Response:
		r.Answered = true
		return true
	}
	return false
}
