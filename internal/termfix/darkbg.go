// ABOUTME: Pre-sets the lipgloss background before Bubble Tea's init() sends OSC queries.
// ABOUTME: Must be imported (with _) before any package that imports bubbletea.

package termfix

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/keywire/internal/detect"
)

func init() {
	// Fix the lipgloss background from environment hints so it never
	// sends OSC 10/11 terminal queries. Bubble Tea's own init() calls
	// lipgloss.HasDarkBackground(); once an explicit background is set,
	// the sync.Once that fires the query is skipped. Those async query
	// responses would otherwise land in the viewer's raw input stream
	// and show up as phantom key events.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	dark := detect.BackgroundPreference() != detect.BackgroundLight
	lipgloss.SetHasDarkBackground(dark)
}
