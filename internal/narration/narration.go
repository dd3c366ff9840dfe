// Package narration handles the emphasis markup in engine output.
//
// The engine wraps words worth highlighting in square brackets, e.g.
// "The hallway is to the [north]." Display sinks render the brackets and
// speech sinks drop them.
package narration

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	emphasis = regexp.MustCompile(`\[([^\[\]\n]*)\]`)
	markers  = strings.NewReplacer("[", "", "]", "")
)

// Strip removes all emphasis markers, leaving plain text for a vocalizer.
func Strip(text string) string {
	return markers.Replace(text)
}

// Render replaces each bracketed span with its content styled by style.
// Unpaired brackets are left alone.
func Render(text string, style lipgloss.Style) string {
	return emphasis.ReplaceAllStringFunc(text, func(m string) string {
		return style.Render(m[1 : len(m)-1])
	})
}

// Wrap word-wraps text to width columns. A non-positive width leaves the
// text untouched.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
