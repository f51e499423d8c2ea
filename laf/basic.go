package laf

import (
	"github.com/darcula-go/darcula/border"
	"github.com/darcula-go/darcula/platform"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
)

// BaseTableProvider supplies the host toolkit's default table.
// Each call returns a table the caller may keep.
type BaseTableProvider interface {
	BaseTable() *table.Table
}

// BasicDefaults is a static base table shaped like the defaults of a plain
// cross-platform toolkit theme. On windows its fonts use the native families
// a host theme would report.
type BasicDefaults struct {
	OS platform.OS
}

// system colors have no component prefix.
var basicSystem = []string{
	"desktop", "activeCaption", "activeCaptionText", "inactiveCaption",
	"inactiveCaptionText", "window", "windowBorder", "windowText", "menu",
	"menuText", "text", "textText", "textHighlight", "textHighlightText",
	"textInactiveText", "control", "controlText", "controlHighlight",
	"controlLtHighlight", "controlShadow", "controlDkShadow", "info", "infoText",
}

// basicComponents lists the local keys defined per component.
var basicComponents = []struct {
	name string
	keys []string
}{
	{"Button", []string{"background", "foreground", "shadow", "darkShadow", "light", "highlight", "focus", "select", "disabledText", "margin", "border", "font", "opaque"}},
	{"ToggleButton", []string{"background", "foreground", "shadow", "darkShadow", "light", "highlight", "focus", "select", "disabledText", "margin", "border", "font"}},
	{"CheckBox", []string{"background", "foreground", "focus", "disabledText", "margin", "border", "font"}},
	{"RadioButton", []string{"background", "foreground", "focus", "disabledText", "margin", "border", "font"}},
	{"ComboBox", []string{"background", "foreground", "selectionBackground", "selectionForeground", "disabledBackground", "disabledForeground", "border", "font"}},
	{"TextField", []string{"background", "foreground", "inactiveBackground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "caretBlinkRate", "margin", "border", "font"}},
	{"FormattedTextField", []string{"background", "foreground", "inactiveBackground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "margin", "border", "font"}},
	{"PasswordField", []string{"background", "foreground", "inactiveBackground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "margin", "border", "font"}},
	{"TextArea", []string{"background", "foreground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "caretBlinkRate", "margin", "border", "font"}},
	{"TextPane", []string{"background", "foreground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "margin", "border", "font"}},
	{"EditorPane", []string{"background", "foreground", "inactiveForeground", "selectionBackground", "selectionForeground", "caretForeground", "margin", "border", "font"}},
	{"Label", []string{"background", "foreground", "disabledForeground", "disabledShadow", "font"}},
	{"List", []string{"background", "foreground", "selectionBackground", "selectionForeground", "focusCellHighlightBorder", "cellNoFocusBorder", "font"}},
	{"MenuBar", []string{"background", "foreground", "shadow", "highlight", "border", "font"}},
	{"Menu", []string{"background", "foreground", "selectionBackground", "selectionForeground", "disabledForeground", "acceleratorForeground", "acceleratorSelectionForeground", "margin", "border", "font", "acceleratorFont"}},
	{"MenuItem", []string{"background", "foreground", "selectionBackground", "selectionForeground", "disabledForeground", "acceleratorForeground", "acceleratorSelectionForeground", "margin", "border", "font", "acceleratorFont"}},
	{"CheckBoxMenuItem", []string{"background", "foreground", "selectionBackground", "selectionForeground", "disabledForeground", "acceleratorForeground", "margin", "border", "font", "acceleratorFont"}},
	{"RadioButtonMenuItem", []string{"background", "foreground", "selectionBackground", "selectionForeground", "disabledForeground", "acceleratorForeground", "margin", "border", "font", "acceleratorFont"}},
	{"PopupMenu", []string{"background", "foreground", "border", "font"}},
	{"Panel", []string{"background", "foreground", "font"}},
	{"ScrollPane", []string{"background", "foreground", "border", "font"}},
	{"ScrollBar", []string{"background", "foreground", "thumb", "thumbHighlight", "thumbShadow", "thumbDarkShadow", "track", "trackHighlight", "width"}},
	{"Spinner", []string{"background", "foreground", "border", "arrowButtonBorder", "font"}},
	{"TabbedPane", []string{"background", "foreground", "shadow", "darkShadow", "light", "highlight", "focus", "tabInsets", "selectedTabPadInsets", "tabAreaInsets", "contentBorderInsets", "font"}},
	{"Table", []string{"background", "foreground", "selectionBackground", "selectionForeground", "gridColor", "focusCellBackground", "focusCellForeground", "focusCellHighlightBorder", "cellNoFocusBorder", "font"}},
	{"TableHeader", []string{"background", "foreground", "cellBorder", "font"}},
	{"TitledBorder", []string{"titleColor", "border", "font"}},
	{"ToolBar", []string{"background", "foreground", "shadow", "darkShadow", "light", "highlight", "border", "font"}},
	{"ToolTip", []string{"background", "foreground", "border", "font"}},
	{"Tree", []string{"background", "foreground", "textBackground", "textForeground", "selectionBackground", "selectionForeground", "selectionBorderColor", "hash", "rowHeight", "font"}},
	{"Viewport", []string{"background", "foreground", "font"}},
	{"OptionPane", []string{"background", "foreground", "messageForeground", "border", "font", "messageFont", "buttonFont"}},
	{"InternalFrame", []string{"activeTitleBackground", "activeTitleForeground", "inactiveTitleBackground", "inactiveTitleForeground", "border", "titleFont"}},
	{"ProgressBar", []string{"background", "foreground", "selectionBackground", "selectionForeground", "border", "cycleTime", "repaintInterval", "font"}},
	{"Separator", []string{"background", "foreground", "shadow", "highlight"}},
	{"Slider", []string{"background", "foreground", "focus", "highlight", "shadow", "font"}},
	{"SplitPane", []string{"background", "shadow", "highlight", "darkShadow", "dividerSize"}},
	{"ColorChooser", []string{"background", "foreground", "font"}},
}

var (
	basicLight  = value.RGB(0xee, 0xee, 0xee)
	basicDark   = value.RGB(0x33, 0x33, 0x33)
	basicSelect = value.RGB(0xb8, 0xcf, 0xe5)
	basicShadow = value.RGB(0x99, 0x99, 0x99)
	basicWhite  = value.RGB(0xff, 0xff, 0xff)
	basicGray   = value.RGB(0x80, 0x80, 0x80)
)

// basicLocal gives the value of a local key shared by every component.
var basicLocal = map[string]value.Value{
	"background":                     value.OfColor(basicLight),
	"foreground":                     value.OfColor(basicDark),
	"textBackground":                 value.OfColor(basicWhite),
	"textForeground":                 value.OfColor(basicDark),
	"inactiveBackground":             value.OfColor(basicLight),
	"inactiveForeground":             value.OfColor(basicGray),
	"disabledBackground":             value.OfColor(basicLight),
	"disabledForeground":             value.OfColor(basicGray),
	"disabledText":                   value.OfColor(basicGray),
	"disabledShadow":                 value.OfColor(basicWhite),
	"selectionBackground":            value.OfColor(basicSelect),
	"selectionForeground":            value.OfColor(basicDark),
	"selectionBorderColor":           value.OfColor(basicShadow),
	"caretForeground":                value.OfColor(basicDark),
	"acceleratorForeground":          value.OfColor(basicShadow),
	"acceleratorSelectionForeground": value.OfColor(basicDark),
	"messageForeground":              value.OfColor(basicDark),
	"shadow":                         value.OfColor(basicShadow),
	"darkShadow":                     value.OfColor(basicDark),
	"light":                          value.OfColor(basicWhite),
	"highlight":                      value.OfColor(basicWhite),
	"focus":                          value.OfColor(basicSelect),
	"select":                         value.OfColor(basicShadow),
	"titleColor":                     value.OfColor(basicDark),
	"gridColor":                      value.OfColor(basicGray),
	"focusCellBackground":            value.OfColor(basicWhite),
	"focusCellForeground":            value.OfColor(basicDark),
	"thumb":                          value.OfColor(basicShadow),
	"thumbHighlight":                 value.OfColor(basicWhite),
	"thumbShadow":                    value.OfColor(basicGray),
	"thumbDarkShadow":                value.OfColor(basicDark),
	"track":                          value.OfColor(basicLight),
	"trackHighlight":                 value.OfColor(basicDark),
	"hash":                           value.OfColor(basicGray),
	"activeTitleBackground":          value.OfColor(basicSelect),
	"activeTitleForeground":          value.OfColor(basicDark),
	"inactiveTitleBackground":        value.OfColor(basicLight),
	"inactiveTitleForeground":        value.OfColor(basicGray),
	"margin":                         value.OfInsets(value.Insets{Top: 2, Left: 2, Bottom: 2, Right: 2}),
	"tabInsets":                      value.OfInsets(value.Insets{Top: 0, Left: 4, Bottom: 1, Right: 4}),
	"selectedTabPadInsets":           value.OfInsets(value.Insets{Top: 2, Left: 2, Bottom: 2, Right: 1}),
	"tabAreaInsets":                  value.OfInsets(value.Insets{Top: 3, Left: 2, Bottom: 0, Right: 2}),
	"contentBorderInsets":            value.OfInsets(value.Insets{Top: 2, Left: 2, Bottom: 3, Right: 3}),
	"opaque":                         value.OfBool(true),
	"caretBlinkRate":                 value.OfInt(500),
	"rowHeight":                      value.OfInt(16),
	"width":                          value.OfInt(16),
	"dividerSize":                    value.OfInt(7),
	"cycleTime":                      value.OfInt(3000),
	"repaintInterval":                value.OfInt(50),
}

// BaseTable builds a fresh table on every call.
func (b BasicDefaults) BaseTable() *table.Table {
	t := table.New()

	for _, k := range basicSystem {
		if v, ok := basicLocal[k]; ok {
			t.Put(k, v)
			continue
		}
		t.Put(k, value.OfColor(basicLight))
	}

	family, legacy := b.families()
	regular := value.Font{Family: family, Style: value.Plain, Size: 12}

	for _, c := range basicComponents {
		for _, local := range c.keys {
			k := c.name + "." + local

			switch {
			case local == "font" && c.name == "ToolTip":
				t.Put(k, value.OfFont(regular.Derive(legacy)))
			case local == "font" || local == "messageFont" || local == "buttonFont":
				t.Put(k, value.OfFont(regular))
			case local == "acceleratorFont":
				t.Put(k, value.OfFont(value.Font{Family: family, Style: value.Plain, Size: 10}))
			case local == "titleFont":
				t.Put(k, value.OfFont(value.Font{Family: family, Style: value.Bold, Size: 12}))
			case local == "focusCellHighlightBorder" || local == "arrowButtonBorder":
				t.Put(k, value.OfBorder(border.NewLine(basicSelect, 1)))
			case local == "cellNoFocusBorder":
				t.Put(k, value.OfBorder(border.NewEmpty(1, 1, 1, 1)))
			case local == "border" || local == "cellBorder":
				t.Put(k, value.OfBorder(border.NewLine(basicShadow, 1)))
			default:
				v, ok := basicLocal[local]
				if !ok {
					v = value.OfColor(basicLight)
				}
				t.Put(k, v)
			}
		}
	}

	return t
}

// families returns the regular family and the one used by tooltips.
func (b BasicDefaults) families() (regular, legacy string) {
	if b.OS == platform.Windows {
		return "Tahoma", "MS Sans Serif"
	}
	return "Dialog", "Dialog"
}
