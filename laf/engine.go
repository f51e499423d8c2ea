// Package laf resolves the style table of a theme: it layers property
// sources over a host base table, expands shorthands, applies structural
// patches and substitutes system fonts.
package laf

import (
	"context"
	"fmt"

	"github.com/darcula-go/darcula/border"
	"github.com/darcula-go/darcula/fontprobe"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/platform"
	"github.com/darcula-go/darcula/property"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
	"github.com/darcula-go/darcula/where"
)

// Engine runs resolution passes. Its collaborators are injected so tests
// can replace the filesystem, the host probes and the icon resources.
type Engine struct {
	Loader   *property.Loader
	Coercer  *value.Coercer
	Platform platform.Prober
	Fonts    fontprobe.Prober
	Icons    IconLoader
	Options  Options
}

// New returns an engine wired to the host: builtin themes shadowed by the
// user theme directory, builtin border types, probed platform and fonts.
func New(opts Options) *Engine {
	return &Engine{
		Loader:   property.Layered(where.Themes()),
		Coercer:  value.NewCoercer(border.Builtin()),
		Platform: platform.Host{},
		Fonts:    fontprobe.Default(),
		Icons:    DefaultCatalog(),
		Options:  opts.normalized(),
	}
}

// Info returns the probed platform with the configured override applied.
// The probed version is dropped when the override names another family.
func (e *Engine) Info() platform.Info {
	info := e.Platform.Probe()

	if p, ok := e.Options.Platform.Get(); ok && p != info.OS {
		info = platform.Info{OS: p}
	}

	return info
}

// Sources lists the property sources read for info.
func (e *Engine) Sources(info platform.Info) []property.Source {
	return property.SourcesFor(e.Options.Theme, info.OS)
}

// Resolve returns a resolved copy of base. On any failure the failure is
// logged and base itself is returned untouched.
func (e *Engine) Resolve(base *table.Table) *table.Table {
	resolved, err := e.TryResolve(context.Background(), base)
	if err != nil {
		log.Errorf("theme %s not applied: %s", e.Options.Theme, err)
		return base
	}

	return resolved
}

// TryResolve runs the same pass as Resolve but reports the failure.
// base is never modified.
func (e *Engine) TryResolve(ctx context.Context, base *table.Table) (resolved *table.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			resolved, err = nil, fmt.Errorf("resolution panicked: %v", r)
		}
	}()

	t := base.Clone()
	info := e.Info()
	prefix := e.Options.Prefix

	merged, err := e.Loader.Load(ctx, e.Sources(info)...)
	if err != nil {
		return nil, err
	}

	sh := Expand(merged, prefix, e.Coercer)
	Merge(t, sh, merged, prefix, e.Coercer)
	log.Debugf("merged %d keys and %d shorthands for %s", merged.Len(), len(sh), info.OS)

	ApplyPatches(t, e.Icons)

	if err := e.substitute(t, info); err != nil {
		return nil, err
	}

	return t, nil
}

func (e *Engine) substitute(t *table.Table, info platform.Info) error {
	if !e.Options.Substitute || info.OS != platform.Windows {
		return nil
	}

	candidate, err := Candidate(info, e.Fonts)
	if err != nil {
		return fmt.Errorf("font probe: %w", err)
	}

	SubstituteFonts(t, candidate, e.Options.FontSize, e.Options.Monospace)

	if family, ok := candidate.Get(); ok && info.AtLeast(LegacyMinVersion) {
		n := RemapLegacyFonts(t, family)
		log.Debugf("remapped %d legacy fonts to %s", n, family)
	}

	return nil
}
