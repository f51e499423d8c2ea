package style

import "github.com/darcula-go/darcula/color"

// Semantic colors of the CLI, taken from the darcula editor scheme.
var (
	AccentColor    = color.Keyword
	SecondaryColor = color.Number
	SuccessColor   = color.String
	WarningColor   = color.Keyword
	ErrorColor     = color.Error
	FaintColor     = color.Comment
	KeyColor       = color.Link
)
