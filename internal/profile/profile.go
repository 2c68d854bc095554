// ABOUTME: Application capability profiles: which Enter encodings a consumer understands.
// ABOUTME: Registry resolves names and aliases case-insensitively and suggests near misses.

package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

// ErrUnknownApplication reports a lookup for a name the registry does not
// know. Resolution never falls back to a default profile.
var ErrUnknownApplication = errors.New("unknown application")

// Profile describes the Enter-family encodings one consumer understands,
// most preferred first. An empty Schemes list is a documented limitation:
// the application cannot receive a modified Enter at all.
type Profile struct {
	Name    string
	Aliases []string
	Schemes []keyseq.Scheme
	Notes   string
}

// Supports reports whether the profile lists the given scheme.
func (p *Profile) Supports(scheme keyseq.Scheme) bool {
	for _, s := range p.Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Registry is an immutable profile lookup built from the builtin table plus
// user overrides.
type Registry struct {
	ordered []Profile
	byName  map[string]int
}

// newRegistry indexes profiles in order. A later profile with an existing
// name overlays the earlier one field by field; canonical names win over
// aliases when both claim the same key.
func newRegistry(profiles []Profile) *Registry {
	r := &Registry{byName: make(map[string]int)}

	pos := make(map[string]int)
	for _, p := range profiles {
		key := strings.ToLower(p.Name)
		if idx, ok := pos[key]; ok {
			r.ordered[idx] = overlay(r.ordered[idx], p)
			continue
		}
		pos[key] = len(r.ordered)
		r.ordered = append(r.ordered, p)
	}

	for i, p := range r.ordered {
		r.byName[strings.ToLower(p.Name)] = i
	}
	for i, p := range r.ordered {
		for _, alias := range p.Aliases {
			key := strings.ToLower(alias)
			if _, taken := r.byName[key]; !taken {
				r.byName[key] = i
			}
		}
	}
	return r
}

// overlay merges the non-empty fields of over onto base. A non-nil empty
// Schemes slice is an explicit override to "none".
func overlay(base, over Profile) Profile {
	if len(over.Aliases) > 0 {
		base.Aliases = over.Aliases
	}
	if over.Schemes != nil {
		base.Schemes = over.Schemes
	}
	if over.Notes != "" {
		base.Notes = over.Notes
	}
	return base
}

// Lookup resolves a profile by name or alias, case-insensitively. Unknown
// names fail with ErrUnknownApplication, carrying near-miss suggestions.
func (r *Registry) Lookup(name string) (*Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if idx, ok := r.byName[key]; ok {
		return &r.ordered[idx], nil
	}
	if sugg := r.suggest(key); len(sugg) > 0 {
		return nil, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownApplication, name, strings.Join(sugg, ", "))
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownApplication, name)
}

// All returns every profile in registry order.
func (r *Registry) All() []Profile {
	out := make([]Profile, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// suggest returns up to three fuzzy-matched canonical names for a miss.
func (r *Registry) suggest(name string) []string {
	names := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		names[i] = p.Name
	}
	matches := fuzzy.Find(name, names)
	if len(matches) > 3 {
		matches = matches[:3]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
