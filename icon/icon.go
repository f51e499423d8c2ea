// Package icon renders the status markers printed by the CLI.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/darcula-go/darcula/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}

// Icon identifies a status marker.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Missing
	Found
	Arrow
	Font
)

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "\uf00c", plain: "ok", kaomoji: "(◕‿◕)", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "\uf00d", plain: "fail", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Warn:    {emoji: "⚠️", nerd: "\uf071", plain: "warn", kaomoji: "(・_・;)", squares: "🟨"},
	Missing: {emoji: "➖", nerd: "\uf068", plain: "-", kaomoji: "(・・?)", squares: "⬜"},
	Found:   {emoji: "📄", nerd: "\uf15b", plain: "+", kaomoji: "(ﾉ◕ヮ◕)", squares: "🟦"},
	Arrow:   {emoji: "➡️", nerd: "\uf061", plain: "->", kaomoji: "→", squares: "▶"},
	Font:    {emoji: "🔤", nerd: "\uf031", plain: "Aa", kaomoji: "(Aa)", squares: "🟪"},
}
