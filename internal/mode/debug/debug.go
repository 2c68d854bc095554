// ABOUTME: Bubble Tea model for the raw key-event viewer.
// ABOUTME: Stacks one row per wire unit: hex, escaped bytes, key name, scheme, notes.

package debug

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/keywire/internal/textwidth"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

// Options bounds a viewer session.
type Options struct {
	// MaxInputs quits the viewer after this many rows; zero means no limit.
	MaxInputs int
	// Timeout quits the viewer after this duration; zero means no deadline.
	Timeout time.Duration
}

// rawUnitMsg carries one complete wire unit from the input reader.
type rawUnitMsg struct{ data []byte }

// readErrMsg reports that the input reader stopped.
type readErrMsg struct{ err error }

// deadlineMsg fires when the session timeout expires.
type deadlineMsg struct{}

// row is one captured wire unit.
type row struct{ raw []byte }

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the viewer's Bubble Tea model.
type Model struct {
	opts  Options
	rows  []row
	width int
	err   error
}

// NewModel builds a viewer model.
func NewModel(opts Options) Model {
	return Model{opts: opts, width: 80}
}

// Init arms the session deadline when one is configured.
func (m Model) Init() tea.Cmd {
	if m.opts.Timeout > 0 {
		return tea.Tick(m.opts.Timeout, func(time.Time) tea.Msg { return deadlineMsg{} })
	}
	return nil
}

// Update appends rows and decides when the session ends. Key messages from
// Bubble Tea itself never arrive: the program's input is a never-ready
// reader and raw units come in through rawUnitMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rawUnitMsg:
		if isQuitChord(msg.data) {
			return m, tea.Quit
		}
		m.rows = append(m.rows, row{raw: msg.data})
		if m.opts.MaxInputs > 0 && len(m.rows) >= m.opts.MaxInputs {
			return m, tea.Quit
		}
	case deadlineMsg:
		return m, tea.Quit
	case readErrMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// isQuitChord reports whether a raw unit is q or Ctrl+C.
func isQuitChord(data []byte) bool {
	return len(data) == 1 && (data[0] == 'q' || data[0] == 0x03)
}

// View renders the live table with a quit hint. Lines are clipped to the
// terminal width so long info notes never wrap and shear the columns.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.fit(m.headerLine())))
	b.WriteString("\r\n")
	for i, r := range m.rows {
		b.WriteString(m.fit(m.rowLine(i, r)))
		b.WriteString("\r\n")
	}
	b.WriteString(hintStyle.Render(m.fit("press keys to inspect them; q or Ctrl+C quits")))
	b.WriteString("\r\n")
	return b.String()
}

func (m Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return textwidth.Truncate(line, m.width)
}

// Err returns the reader error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Table renders the captured rows without styling, for reprinting to
// stdout after the session so the capture survives scrollback.
func (m Model) Table() string {
	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	for i, r := range m.rows {
		b.WriteString(m.rowLine(i, r))
		b.WriteString("\n")
	}
	return b.String()
}

// Column widths: hex and bytes grow with content, the rest are fixed.
const (
	numWidth    = 4
	keyWidth    = 22
	schemeWidth = 18
)

func (m Model) hexWidth() int {
	w := len("Hex")
	for _, r := range m.rows {
		if hw := len(keyseq.HexBytes(r.raw)); hw > w {
			w = hw
		}
	}
	return w
}

func (m Model) bytesWidth() int {
	w := len("Bytes")
	for _, r := range m.rows {
		if bw := textwidth.Width(keyseq.EscapeBytes(r.raw)); bw > w {
			w = bw
		}
	}
	return w
}

func (m Model) headerLine() string {
	return joinColumns(m.hexWidth(), m.bytesWidth(), "#", "Hex", "Bytes", "Key", "Scheme", "Info")
}

func (m Model) rowLine(i int, r row) string {
	name := keyseq.Describe(r.raw)
	var scheme string
	if d, ok := keyseq.Decode(r.raw); ok {
		scheme = d.Scheme.String()
	}
	return joinColumns(m.hexWidth(), m.bytesWidth(),
		fmt.Sprintf("%d", i+1),
		keyseq.HexBytes(r.raw),
		keyseq.EscapeBytes(r.raw),
		name,
		scheme,
		infoFor(r.raw),
	)
}

func joinColumns(hexW, bytesW int, num, hex, escaped, key, scheme, info string) string {
	return textwidth.PadRight(num, numWidth) + "  " +
		textwidth.PadRight(hex, hexW) + "  " +
		textwidth.PadRight(escaped, bytesW) + "  " +
		textwidth.PadRight(textwidth.Truncate(key, keyWidth), keyWidth) + "  " +
		textwidth.PadRight(textwidth.Truncate(scheme, schemeWidth), schemeWidth) + "  " +
		info
}

// infoFor notes the ambiguous readings of the literal spellings, so the
// viewer never hides what else a sequence could mean.
func infoFor(data []byte) string {
	switch {
	case len(data) == 1 && data[0] == '\n':
		return "also Ctrl+J; terminals send CR for plain Enter"
	case len(data) == 2 && data[0] == 0x1b && data[1] == '\r':
		return "legacy reading: Alt+Enter"
	case len(data) == 1 && data[0] == 0x1b:
		return "lone ESC after flush timeout"
	}
	return ""
}
