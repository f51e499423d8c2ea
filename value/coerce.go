package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrMalformedValue is returned when a raw token does not fit the rule selected by its key.
	ErrMalformedValue = errors.New("malformed value")

	// ErrTypeUnavailable is returned when a named border type cannot be instantiated.
	ErrTypeUnavailable = errors.New("type unavailable")
)

// Instantiator creates a fresh border instance from a type name.
type Instantiator interface {
	Instantiate(name string) (BorderHandle, error)
}

// Coercer turns raw property tokens into typed values.
type Coercer struct {
	Types Instantiator
}

// NewCoercer returns a coercer that instantiates border types through types.
func NewCoercer(types Instantiator) *Coercer {
	return &Coercer{Types: types}
}

// Coerce converts raw into a Value, dispatching on the naming convention of key.
//
// The rules are tried in order: "null", insets for keys whose local part is
// "margin" or that end in "Insets", borders for local part "border" or keys
// ending in "Border", then color, integer, boolean and finally the raw string.
func (c *Coercer) Coerce(key, raw string) (Value, error) {
	if raw == "null" {
		return Null(), nil
	}

	local := LocalKey(key)
	switch {
	case local == "margin" || strings.HasSuffix(key, "Insets"):
		insets, err := ParseInsets(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		return OfInsets(insets), nil

	case local == "border" || strings.HasSuffix(key, "Border"):
		if c.Types == nil {
			return Value{}, fmt.Errorf("%s: %w: no border registry", key, ErrTypeUnavailable)
		}

		handle, err := c.Types.Instantiate(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		return OfBorder(handle), nil
	}

	if color, ok := ParseColor(raw); ok {
		return OfColor(color), nil
	}

	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return OfInt(int(n)), nil
	}

	switch raw {
	case "true":
		return OfBool(true), nil
	case "false":
		return OfBool(false), nil
	}

	return OfString(raw), nil
}

// LocalKey returns the part of key after its last dot, or key itself when it has none.
func LocalKey(key string) string {
	return key[strings.LastIndexByte(key, '.')+1:]
}

// ParseInsets parses "top,left,bottom,right". Every component must be an
// integer; components after the fourth are ignored.
func ParseInsets(raw string) (Insets, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 4 {
		return Insets{}, fmt.Errorf("%w: insets need 4 components, got %d in %q", ErrMalformedValue, len(parts), raw)
	}

	n := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Insets{}, fmt.Errorf("%w: insets component %q is not an integer", ErrMalformedValue, part)
		}
		n[i] = v
	}

	return Insets{Top: n[0], Left: n[1], Bottom: n[2], Right: n[3]}, nil
}

// named mirrors the AWT color constants.
var named = map[string]Color{
	"black":     RGB(0, 0, 0),
	"blue":      RGB(0, 0, 255),
	"cyan":      RGB(0, 255, 255),
	"darkgray":  RGB(64, 64, 64),
	"gray":      RGB(128, 128, 128),
	"green":     RGB(0, 255, 0),
	"lightgray": RGB(192, 192, 192),
	"magenta":   RGB(255, 0, 255),
	"orange":    RGB(255, 200, 0),
	"pink":      RGB(255, 175, 175),
	"red":       RGB(255, 0, 0),
	"white":     RGB(255, 255, 255),
	"yellow":    RGB(255, 255, 0),
}

// ParseColor accepts #rrggbb, #rgb, a bare rrggbb or a named color.
// Bare three digit tokens are not colors, so small integers stay integers.
func ParseColor(raw string) (Color, bool) {
	if c, ok := named[strings.ToLower(raw)]; ok {
		return c, true
	}

	hex := raw
	switch {
	case strings.HasPrefix(raw, "#") && (len(raw) == 7 || len(raw) == 4):
	case len(raw) == 6:
		hex = "#" + raw
	default:
		return Color{}, false
	}

	if !isHex(hex[1:]) {
		return Color{}, false
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, false
	}

	r, g, b := parsed.RGB255()
	return RGB(r, g, b), true
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return s != ""
}
