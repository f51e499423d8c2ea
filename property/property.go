// Package property loads named key=value sources into an ordered source map.
//
// Sources are read through an afero filesystem. By default the user theme
// directory is layered over the themes compiled into the binary, so dropping a
// file with the same name into the theme directory replaces a builtin source.
package property

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/platform"
	"github.com/darcula-go/darcula/util"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrSourceUnavailable is returned when a required source cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

//go:embed themes/*.properties
var themes embed.FS

// Builtin returns the themes shipped with the binary.
func Builtin() fs.FS {
	return lo.Must(fs.Sub(themes, "themes"))
}

// Source names one property file and whether resolution can proceed without it.
type Source struct {
	Name     string
	Required bool
}

// SourcesFor lists the base source of theme followed by its overlay for p.
func SourcesFor(theme string, p platform.OS) []Source {
	return []Source{
		{Name: theme + ".properties", Required: true},
		{Name: theme + "_" + p.Suffix() + ".properties"},
	}
}

// SourceMap is the ordered union of several sources.
// A key keeps the position of its first definition and the value of its last.
type SourceMap struct {
	entries *orderedmap.OrderedMap[string, string]
	origin  map[string]string
}

// NewSourceMap returns an empty map.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		entries: orderedmap.New[string, string](),
		origin:  make(map[string]string),
	}
}

// Set records raw for key as defined by the named source.
func (m *SourceMap) Set(source, key, raw string) {
	m.entries.Set(key, raw)
	m.origin[key] = source
}

// Get returns the raw value of key.
func (m *SourceMap) Get(key string) (string, bool) {
	return m.entries.Get(key)
}

// Origin returns the name of the source that last defined key.
func (m *SourceMap) Origin(key string) string {
	return m.origin[key]
}

// Len returns the number of distinct keys.
func (m *SourceMap) Len() int {
	return m.entries.Len()
}

// Each calls fn for every key in order.
func (m *SourceMap) Each(fn func(key, raw string)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Keys returns every key in order.
func (m *SourceMap) Keys() []string {
	keys := make([]string, 0, m.entries.Len())
	m.Each(func(key, _ string) {
		keys = append(keys, key)
	})
	return keys
}

// Loader reads sources from a filesystem.
type Loader struct {
	Fs afero.Fs
}

// NewLoader returns a loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{Fs: fsys}
}

// Layered returns a loader over the builtin themes shadowed by the files in dir.
func Layered(dir string) *Loader {
	return NewLoader(filesystem.Layered(Builtin(), dir))
}

// Exists reports whether the named source can be found.
func (l *Loader) Exists(name string) bool {
	ok, err := afero.Exists(l.Fs, name)
	return err == nil && ok
}

// Load reads every source in order into one map. Later sources override
// earlier ones. A missing optional source is treated as empty.
func (l *Loader) Load(ctx context.Context, sources ...Source) (*SourceMap, error) {
	merged := NewSourceMap()

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pairs, err := l.read(src.Name)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !src.Required:
			log.Debugf("optional source %s not found", src.Name)
			continue
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, src.Name)
		case src.Required:
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, src.Name, err)
		default:
			log.Warnf("optional source %s skipped: %s", src.Name, err)
			continue
		}

		for _, p := range pairs {
			merged.Set(src.Name, p.Key, p.Value)
		}
		log.Debugf("loaded %d keys from %s", len(pairs), src.Name)
	}

	return merged, nil
}

func (l *Loader) read(name string) ([]Pair, error) {
	f, err := l.Fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
		}
		return nil, err
	}
	defer util.Ignore(f.Close)

	return Parse(f, name)
}
