// Package color provides the palette used by the CLI.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Darcula editor colors.
var (
	Background = New("#3c3f41")
	Editor     = New("#2b2b2b")
	Foreground = New("#bbbbbb")
	Selection  = New("#4b6eaf")
	Keyword    = New("#cc7832")
	Number     = New("#6897bb")
	String     = New("#6a8759")
	Comment    = New("#808080")
	Error      = New("#c75450")
	Link       = New("#589df6")
)

// Contrast picks black or white text for the background hex, whichever reads better.
func Contrast(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return New("#000000")
	}

	if l, _, _ := c.Lab(); l < 0.5 {
		return New("#ffffff")
	}
	return New("#000000")
}
