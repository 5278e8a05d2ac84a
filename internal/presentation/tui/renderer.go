package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders a generated document as
// markdown for terminal preview.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
