// ABOUTME: Streaming transformer that normalizes Enter-family input for a wrapped child.
// ABOUTME: Decodes complete wire units, re-encodes per the target profile, passes the rest through.

package forward

import (
	"bytes"
	"errors"

	"github.com/mauromedda/keywire/internal/emit"
	"github.com/mauromedda/keywire/internal/profile"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

var (
	pasteBegin = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// Rewriter rewrites Enter-family sequences arriving from the hosting
// terminal into the encoding the target profile prefers. All other bytes
// pass through untouched, and bracketed paste bodies are never rewritten.
//
// Feed bytes with Transform; call Flush when the input goes quiet (the
// lone-ESC timeout) or closes, so held partial sequences are released.
type Rewriter struct {
	profile *profile.Profile
	lossy   bool
	scanner keyseq.Scanner
	inPaste bool
}

// NewRewriter builds a rewriter targeting p. With lossy set, events no
// scheme in the profile can express degrade to plain CR instead of passing
// through in their original spelling.
func NewRewriter(p *profile.Profile, lossy bool) *Rewriter {
	return &Rewriter{profile: p, lossy: lossy}
}

// Transform feeds raw input bytes and returns the rewritten output for
// every complete wire unit they finish. An incomplete trailing sequence is
// held until more bytes arrive or Flush is called.
func (r *Rewriter) Transform(p []byte) []byte {
	r.scanner.Write(p)
	var out []byte
	for {
		unit, ok := r.scanner.Next()
		if !ok {
			return out
		}
		out = append(out, r.rewriteUnit(unit)...)
	}
}

// Pending reports whether a partial sequence is being held.
func (r *Rewriter) Pending() bool { return r.scanner.Pending() }

// Flush releases held bytes verbatim. A lone ESC held past the flush
// timeout was the Escape key, not the start of a sequence.
func (r *Rewriter) Flush() []byte { return r.scanner.Flush() }

func (r *Rewriter) rewriteUnit(unit []byte) []byte {
	if r.inPaste {
		if bytes.Equal(unit, pasteEnd) {
			r.inPaste = false
		}
		return unit
	}
	if bytes.Equal(unit, pasteBegin) {
		r.inPaste = true
		return unit
	}
	// Plain CR is the universal spelling of unmodified Enter; rewriting
	// it would break children reading a canonical-mode line discipline.
	if len(unit) == 1 && unit[0] == '\r' {
		return unit
	}

	d, ok := keyseq.Decode(unit)
	if !ok {
		return unit
	}
	if d.Release {
		// The rewritten encodings carry no release concept; forwarding
		// the raw sequence would hand the child bytes it cannot parse.
		if r.profile.Supports(keyseq.SchemeCSIU) {
			return unit
		}
		return nil
	}

	em, err := resolve(r.profile, d.Event, r.lossy)
	if errors.Is(err, emit.ErrNoCompatibleScheme) {
		// Never swallow the user's keystroke: the original spelling is
		// still the best available approximation.
		return unit
	}
	if err != nil {
		return unit
	}
	return em.Bytes
}

func resolve(p *profile.Profile, ev keyseq.Event, lossy bool) (emit.Emission, error) {
	if lossy {
		return emit.ResolveLossy(p, ev)
	}
	return emit.Resolve(p, ev)
}
