package laf

import (
	"strings"

	"github.com/darcula-go/darcula/fontprobe"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/platform"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// TitleFontKey receives the bold variant of the substituted font.
const TitleFontKey = "InternalFrame.titleFont"

// FontKeys receive the plain substituted font.
var FontKeys = []string{
	"Button.font",
	"CheckBox.font",
	"CheckBoxMenuItem.font",
	"ComboBox.font",
	"Label.font",
	"List.font",
	"Menu.font",
	"MenuBar.font",
	"MenuItem.font",
	"OptionPane.font",
	"OptionPane.messageFont",
	"OptionPane.buttonFont",
	"Panel.font",
	"PopupMenu.font",
	"RadioButton.font",
	"RadioButtonMenuItem.font",
	"ScrollPane.font",
	"Spinner.font",
	"TabbedPane.font",
	"Table.font",
	"TableHeader.font",
	"TitledBorder.font",
	"ToggleButton.font",
	"ToolBar.font",
	"ToolTip.font",
	"Tree.font",
	"Viewport.font",
	"EditorPane.font",
	"TextArea.font",
	"TextField.font",
	"TextPane.font",
}

// MonospaceKeys receive the monospace family when one is configured.
var MonospaceKeys = []string{
	"TextArea.font",
	"TextPane.font",
	"EditorPane.font",
}

// WindowsCandidates are tried in order on windows.
var WindowsCandidates = []string{"Segoe UI", "Tahoma", fontprobe.GenericFamily}

// LegacyFamilies are remapped by RemapLegacyFonts.
var LegacyFamilies = []string{"Tahoma", "MS Sans Serif"}

// LegacyMinVersion is the first windows version whose legacy fonts are remapped.
const LegacyMinVersion = "6.0"

type decoration struct {
	key   string
	glyph string
}

// decorationIcons are set alongside the substituted fonts.
var decorationIcons = []decoration{
	{"InternalFrame.closeIcon", GlyphClose},
	{"InternalFrame.iconifyIcon", GlyphMinimize},
	{"InternalFrame.minimizeIcon", GlyphRestore},
	{"InternalFrame.maximizeIcon", GlyphMaximize},
}

const decorationIconSize = 16

// Candidate picks the family to substitute. Only windows has candidates.
// The first installed entry of WindowsCandidates wins. The probed dialog
// font is consulted only when none is installed, and only if it is
// installed itself and is not the generic family.
func Candidate(info platform.Info, fonts fontprobe.Prober) (mo.Option[string], error) {
	if info.OS != platform.Windows {
		return mo.None[string](), nil
	}

	family, err := fontprobe.FirstInstalled(fonts, WindowsCandidates...)
	if err != nil || family.IsPresent() {
		return family, err
	}

	dialog, ok := fontprobe.DialogFamily(fonts).Get()
	if !ok {
		return mo.None[string](), nil
	}

	return fontprobe.FirstInstalled(fonts, dialog)
}

// SubstituteFonts writes the candidate family into the fixed font keys.
// Every value is built before the first write, so the table either gets
// all of them or none.
func SubstituteFonts(t *table.Table, family mo.Option[string], size int, monospace string) {
	name, ok := family.Get()
	if !ok {
		return
	}

	plain := value.OfFont(value.Font{Family: name, Style: value.Plain, Size: size})
	bold := value.OfFont(value.Font{Family: name, Style: value.Bold, Size: size})

	staged := make(map[string]value.Value, len(FontKeys)+len(MonospaceKeys)+len(decorationIcons)+1)
	for _, k := range FontKeys {
		staged[k] = plain
	}
	staged[TitleFontKey] = bold

	if monospace != "" {
		mono := value.OfFont(value.Font{Family: monospace, Style: value.Plain, Size: size})
		for _, k := range MonospaceKeys {
			staged[k] = mono
		}
	}

	for _, d := range decorationIcons {
		staged[d.key] = value.OfIcon(Synthesized(d.glyph, decorationIconSize))
	}

	// Keys are written in a fixed order so new entries land deterministically.
	order := append(append([]string{}, FontKeys...), TitleFontKey)
	order = append(order, lo.Map(decorationIcons, func(d decoration, _ int) string {
		return d.key
	})...)

	for _, k := range order {
		t.Put(k, staged[k])
	}

	log.Debugf("substituted %s %dpt into %d keys", name, size, len(order))
}

// RemapLegacyFonts rewrites every font of a legacy family to family,
// keeping its style and size. Menu fonts are left alone.
func RemapLegacyFonts(t *table.Table, family string) int {
	var remapped int

	t.Each(func(k string, v value.Value) {
		if strings.Contains(k, "Menu") {
			return
		}

		font, ok := v.Font()
		if !ok || !lo.Contains(LegacyFamilies, font.Family) {
			return
		}

		t.Put(k, value.OfFont(font.Derive(family)))
		remapped++
	})

	return remapped
}
