// Package border provides the border types that property sources can name,
// and a registry that instantiates them by name.
package border

import (
	"fmt"
	"sort"

	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
)

// Plain is a border with fixed insets and no painting state.
type Plain struct {
	name   string
	insets value.Insets
}

func (p *Plain) Name() string         { return p.name }
func (p *Plain) Insets() value.Insets { return p.insets }

// Uniform returns a factory for a border with the same width on every edge.
func Uniform(name string, width int) Factory {
	return func() value.BorderHandle {
		return &Plain{name: name, insets: value.Insets{Top: width, Left: width, Bottom: width, Right: width}}
	}
}

// Fixed returns a factory for a border with explicit insets.
func Fixed(name string, insets value.Insets) Factory {
	return func() value.BorderHandle {
		return &Plain{name: name, insets: insets}
	}
}

// Line is a solid border of a single color.
type Line struct {
	Color     value.Color
	Thickness int
}

// NewLine returns a line border.
func NewLine(c value.Color, thickness int) *Line {
	return &Line{Color: c, Thickness: thickness}
}

func (l *Line) Name() string { return LineName }

func (l *Line) Insets() value.Insets {
	t := l.Thickness
	return value.Insets{Top: t, Left: t, Bottom: t, Right: t}
}

// Empty is a transparent border that only reserves space.
type Empty struct {
	insets value.Insets
}

// NewEmpty returns an empty border.
func NewEmpty(top, left, bottom, right int) *Empty {
	return &Empty{insets: value.Insets{Top: top, Left: left, Bottom: bottom, Right: right}}
}

func (e *Empty) Name() string         { return EmptyName }
func (e *Empty) Insets() value.Insets { return e.insets }

// Factory builds a fresh border instance.
type Factory func() value.BorderHandle

// Registry maps type names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Registering a name twice panics.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic("duplicate border type: " + name)
	}
	r.factories[name] = f
}

// Instantiate builds a new instance of the named type.
func (r *Registry) Instantiate(name string) (value.BorderHandle, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: no border type %q", value.ErrTypeUnavailable, name)
	}
	return f(), nil
}

// Names lists registered type names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.factories)
	sort.Strings(names)
	return names
}
