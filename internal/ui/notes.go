package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// notesRenderer renders system notes as markdown. Output is cached by
// content and width; a renderer is rebuilt whenever the width changes.
type notesRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newNotesRenderer() *notesRenderer {
	return &notesRenderer{cache: make(map[string]string)}
}

func (n *notesRenderer) render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" || width < 10 {
		return ""
	}
	if width != n.width || n.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		n.renderer = r
		n.width = width
		clear(n.cache)
	}
	if out, ok := n.cache[md]; ok {
		return out
	}
	out, err := n.renderer.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")
	n.cache[md] = out
	return out
}
