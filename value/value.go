// Package value defines typed style values and the rules that coerce raw
// property tokens into them.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindColor
	KindInteger
	KindBoolean
	KindInsets
	KindBorder
	KindFont
	KindIcon
	KindDimension
	KindString
)

var kindNames = [...]string{
	KindNull:      "null",
	KindColor:     "color",
	KindInteger:   "integer",
	KindBoolean:   "boolean",
	KindInsets:    "insets",
	KindBorder:    "border",
	KindFont:      "font",
	KindIcon:      "icon",
	KindDimension: "dimension",
	KindString:    "string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Color is an opaque RGB color with alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Lipgloss converts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Insets are the four edge widths of a component, in top, left, bottom, right order.
type Insets struct {
	Top, Left, Bottom, Right int
}

// String formats the insets the way they are written in property sources.
func (i Insets) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", i.Top, i.Left, i.Bottom, i.Right)
}

// Dimension is a width and height pair.
type Dimension struct {
	Width, Height int
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// FontStyle is the weight of a font.
type FontStyle int

const (
	Plain FontStyle = iota
	Bold
)

func (s FontStyle) String() string {
	if s == Bold {
		return "bold"
	}
	return "plain"
}

// Font describes a font resource by family, style and point size.
type Font struct {
	Family string
	Style  FontStyle
	Size   int
}

// Derive returns the same font with another family.
func (f Font) Derive(family string) Font {
	f.Family = family
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s-%s-%d", f.Family, f.Style, f.Size)
}

// BorderHandle is an instantiated border type.
type BorderHandle interface {
	Name() string
	Insets() Insets
}

// IconHandle is a loaded or synthesized icon.
type IconHandle interface {
	Path() string
	Width() int
	Height() int
}

// Value is one typed entry of a style table. The zero Value is Null.
type Value struct {
	kind   Kind
	color  Color
	num    int
	flag   bool
	insets Insets
	dim    Dimension
	font   Font
	border BorderHandle
	icon   IconHandle
	str    string
}

func Null() Value                      { return Value{kind: KindNull} }
func OfColor(c Color) Value            { return Value{kind: KindColor, color: c} }
func OfInt(n int) Value                { return Value{kind: KindInteger, num: n} }
func OfBool(b bool) Value              { return Value{kind: KindBoolean, flag: b} }
func OfInsets(i Insets) Value          { return Value{kind: KindInsets, insets: i} }
func OfDimension(d Dimension) Value    { return Value{kind: KindDimension, dim: d} }
func OfFont(f Font) Value              { return Value{kind: KindFont, font: f} }
func OfBorder(b BorderHandle) Value    { return Value{kind: KindBorder, border: b} }
func OfIcon(i IconHandle) Value        { return Value{kind: KindIcon, icon: i} }
func OfString(s string) Value          { return Value{kind: KindString, str: s} }
func (v Value) Kind() Kind             { return v.kind }
func (v Value) IsNull() bool           { return v.kind == KindNull }
func (v Value) Color() (Color, bool)   { return v.color, v.kind == KindColor }
func (v Value) Int() (int, bool)       { return v.num, v.kind == KindInteger }
func (v Value) Bool() (bool, bool)     { return v.flag, v.kind == KindBoolean }
func (v Value) Insets() (Insets, bool) { return v.insets, v.kind == KindInsets }
func (v Value) Font() (Font, bool)     { return v.font, v.kind == KindFont }
func (v Value) Str() (string, bool)    { return v.str, v.kind == KindString }

func (v Value) Dimension() (Dimension, bool) {
	return v.dim, v.kind == KindDimension
}

func (v Value) Border() (BorderHandle, bool) {
	return v.border, v.kind == KindBorder
}

func (v Value) Icon() (IconHandle, bool) {
	return v.icon, v.kind == KindIcon
}

// Equal compares two values. Borders and icons compare by name/path and size,
// since their handles are fresh instances on every pass.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindBorder:
		return v.border.Name() == o.border.Name() && v.border.Insets() == o.border.Insets()
	case KindIcon:
		return v.icon.Path() == o.icon.Path() &&
			v.icon.Width() == o.icon.Width() &&
			v.icon.Height() == o.icon.Height()
	default:
		return v.color == o.color &&
			v.num == o.num &&
			v.flag == o.flag &&
			v.insets == o.insets &&
			v.dim == o.dim &&
			v.font == o.font &&
			v.str == o.str
	}
}

// Format renders the value back into its property-source token.
func Format(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindColor:
		return strings.TrimPrefix(v.color.Hex(), "#")
	case KindInteger:
		return strconv.Itoa(v.num)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	case KindInsets:
		return v.insets.String()
	case KindDimension:
		return v.dim.String()
	case KindFont:
		return v.font.String()
	case KindBorder:
		return v.border.Name()
	case KindIcon:
		return v.icon.Path()
	default:
		return v.str
	}
}

func (v Value) String() string {
	return Format(v)
}
