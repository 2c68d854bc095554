// ABOUTME: Rendered explainer for the shift+enter problem, shipped inside the binary.
// ABOUTME: Embedded markdown topics rendered through glamour; raw source for non-terminals.

package explain

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/keywire/internal/detect"
)

//go:embed docs/*.md
var docsFS embed.FS

// ErrUnknownTopic reports a topic with no embedded document.
var ErrUnknownTopic = errors.New("unknown topic")

// DefaultTopic is rendered when no topic is named.
const DefaultTopic = "overview"

// topics lists the embedded documents in display order.
var topics = []string{"overview", "csi-u", "modify-other-keys", "literal", "tmux"}

// Topics returns the available topic names in display order.
func Topics() []string {
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// Source returns a topic's raw markdown.
func Source(topic string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(topic))
	data, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w %q (have: %s)", ErrUnknownTopic, topic, strings.Join(topics, ", "))
	}
	return string(data), nil
}

// Render returns a topic styled for the terminal. The light/dark style
// follows the environment background hint; no terminal query is sent. On
// a renderer failure the raw markdown comes back instead, never nothing.
func Render(topic string, width int) (string, error) {
	src, err := Source(topic)
	if err != nil {
		return "", err
	}

	style := "dark"
	if detect.BackgroundPreference() == detect.BackgroundLight {
		style = "light"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return src, nil
	}
	rendered, err := renderer.Render(src)
	if err != nil {
		return src, nil
	}
	return strings.TrimRight(rendered, "\n ") + "\n", nil
}
