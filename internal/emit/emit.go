// ABOUTME: Sequence emitter: resolves a key event against a profile's scheme preferences.
// ABOUTME: First-preference resolution with an explicit, self-reporting lossy fallback.

package emit

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/keywire/internal/profile"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

// ErrNoCompatibleScheme reports that none of a profile's schemes define an
// encoding for the requested event.
var ErrNoCompatibleScheme = errors.New("no compatible encoding scheme")

// Emission is the outcome of resolving an event against a profile.
type Emission struct {
	Bytes  []byte
	Scheme keyseq.Scheme
	// Degraded marks the lossy fallback: modifiers were stripped to reach
	// an encodable event.
	Degraded bool
}

// Resolve selects the first scheme in the profile's preference order that
// defines an encoding for ev. It never emits a scheme absent from the
// profile; when nothing fits it fails with ErrNoCompatibleScheme.
func Resolve(p *profile.Profile, ev keyseq.Event) (Emission, error) {
	for _, scheme := range p.Schemes {
		data, err := keyseq.Encode(scheme, ev)
		if errors.Is(err, keyseq.ErrUnsupportedCombination) {
			continue
		}
		if err != nil {
			return Emission{}, err
		}
		return Emission{Bytes: data, Scheme: scheme}, nil
	}
	return Emission{}, fmt.Errorf("%s cannot receive %v: %w", p.Name, ev, ErrNoCompatibleScheme)
}

// ResolveLossy resolves ev and, when no scheme fits, retries with the
// modifiers stripped against the literal scheme. The result is flagged
// Degraded so callers can tell the user the modifier was lost on the wire.
func ResolveLossy(p *profile.Profile, ev keyseq.Event) (Emission, error) {
	em, err := Resolve(p, ev)
	if err == nil || !errors.Is(err, ErrNoCompatibleScheme) {
		return em, err
	}
	data, encErr := keyseq.Encode(keyseq.SchemeLiteral, keyseq.Event{Key: ev.Key})
	if encErr != nil {
		return Emission{}, err // the original failure is the useful one
	}
	return Emission{Bytes: data, Scheme: keyseq.SchemeLiteral, Degraded: true}, nil
}

// To resolves ev against p and writes the encoded bytes to w.
func To(w io.Writer, p *profile.Profile, ev keyseq.Event) (Emission, error) {
	em, err := Resolve(p, ev)
	if err != nil {
		return em, err
	}
	if _, err := w.Write(em.Bytes); err != nil {
		return em, fmt.Errorf("writing %v bytes: %w", em.Scheme, err)
	}
	return em, nil
}
