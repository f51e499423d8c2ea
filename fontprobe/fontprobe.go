// Package fontprobe reports the font families installed on the host and the
// font the host uses for dialog boxes.
package fontprobe

import (
	"sort"
	"strings"

	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// GenericFamily is the logical family every toolkit falls back to.
// A probed dialog font reporting it carries no information.
const GenericFamily = "Dialog"

// Prober reports host fonts.
type Prober interface {
	// InstalledFamilies lists the families available for rendering.
	InstalledFamilies() ([]string, error)

	// DialogFont returns the font used by native message boxes, if known.
	DialogFont() mo.Option[value.Font]
}

// Static is a Prober with fixed answers.
type Static struct {
	Families []string
	Dialog   mo.Option[value.Font]
}

func (s Static) InstalledFamilies() ([]string, error) {
	return s.Families, nil
}

func (s Static) DialogFont() mo.Option[value.Font] {
	return s.Dialog
}

// FirstInstalled returns the first of candidates that p reports as installed.
func FirstInstalled(p Prober, candidates ...string) (mo.Option[string], error) {
	families, err := p.InstalledFamilies()
	if err != nil {
		return mo.None[string](), err
	}

	installed := lo.SliceToMap(families, func(f string) (string, struct{}) {
		return f, struct{}{}
	})

	for _, c := range candidates {
		if _, ok := installed[c]; ok {
			return mo.Some(c), nil
		}
	}

	return mo.None[string](), nil
}

// DialogFamily returns the family of the probed dialog font,
// unless it is missing or reports the generic fallback.
func DialogFamily(p Prober) mo.Option[string] {
	font, ok := p.DialogFont().Get()
	if !ok || font.Family == "" || font.Family == GenericFamily {
		return mo.None[string]()
	}

	return mo.Some(font.Family)
}

// normalize trims, dedupes and sorts family names.
func normalize(families []string) []string {
	families = lo.FilterMap(families, func(f string, _ int) (string, bool) {
		f = strings.TrimSpace(f)
		return f, f != ""
	})

	families = lo.Uniq(families)
	sort.Strings(families)
	return families
}
