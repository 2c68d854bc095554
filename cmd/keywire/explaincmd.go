// ABOUTME: The explain command: renders the embedded shift+enter explainer.
// ABOUTME: Styled output on a terminal, raw markdown everywhere else.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mauromedda/keywire/internal/explain"
)

const maxExplainWidth = 100

func runExplain(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "Print the markdown source unrendered")
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}

	topic := explain.DefaultTopic
	if fs.NArg() > 0 {
		topic = fs.Arg(0)
	}
	if topic == "topics" || topic == "list" {
		fmt.Println(strings.Join(explain.Topics(), "\n"))
		return nil
	}

	fd := int(os.Stdout.Fd())
	if *raw || !term.IsTerminal(fd) {
		src, err := explain.Source(topic)
		if err != nil {
			return err
		}
		fmt.Print(src)
		return nil
	}

	width := maxExplainWidth
	if w, _, err := term.GetSize(fd); err == nil && w < width {
		width = w
	}
	out, err := explain.Render(topic, width)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
