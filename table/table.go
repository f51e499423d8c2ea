// Package table holds the style table: an insertion-ordered mapping from
// style keys to typed values, with typed accessors for rendering code.
package table

import (
	"errors"
	"fmt"

	"github.com/darcula-go/darcula/value"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrKeyNotFound is returned by accessors when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned by accessors when the key holds another kind of value.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Table is a mutable style table. It is not safe for concurrent mutation.
type Table struct {
	entries *orderedmap.OrderedMap[string, value.Value]
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: orderedmap.New[string, value.Value]()}
}

// FromMap builds a table from m, inserting keys in the order given by keys.
// Keys missing from m are ignored.
func FromMap(keys []string, m map[string]value.Value) *Table {
	t := New()
	for _, k := range keys {
		if v, ok := m[k]; ok {
			t.Put(k, v)
		}
	}
	return t
}

// Put sets key to v. An existing key keeps its position.
func (t *Table) Put(key string, v value.Value) {
	t.entries.Set(key, v)
}

// Get returns the raw value stored under key.
func (t *Table) Get(key string) (value.Value, bool) {
	return t.entries.Get(key)
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.entries.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key string) bool {
	_, ok := t.entries.Delete(key)
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Keys returns every key in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order.
// fn must not add or remove keys; overwriting existing keys is allowed.
func (t *Table) Each(fn func(key string, v value.Value)) {
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns an independent copy with the same order.
func (t *Table) Clone() *Table {
	c := New()
	t.Each(c.Put)
	return c
}

// Equal reports whether both tables hold the same keys with equal values.
// Insertion order is not compared.
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() {
		return false
	}

	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		other, ok := o.Get(pair.Key)
		if !ok || !pair.Value.Equal(other) {
			return false
		}
	}
	return true
}

func (t *Table) lookup(key string, want value.Kind) (value.Value, error) {
	v, ok := t.entries.Get(key)
	if !ok {
		return value.Value{}, t.notFound(key)
	}

	if v.Kind() != want {
		return value.Value{}, fmt.Errorf("%w: %s holds %s, not %s", ErrTypeMismatch, key, v.Kind(), want)
	}

	return v, nil
}

func (t *Table) notFound(key string) error {
	closest, ok := t.Closest(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return fmt.Errorf("%w: %s, did you mean %s?", ErrKeyNotFound, key, closest)
}

// Closest returns the key with the smallest edit distance to key.
func (t *Table) Closest(key string) (string, bool) {
	if t.Len() == 0 {
		return "", false
	}

	return lo.MinBy(t.Keys(), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	}), true
}

func (t *Table) Color(key string) (value.Color, error) {
	v, err := t.lookup(key, value.KindColor)
	c, _ := v.Color()
	return c, err
}

func (t *Table) Int(key string) (int, error) {
	v, err := t.lookup(key, value.KindInteger)
	n, _ := v.Int()
	return n, err
}

func (t *Table) Bool(key string) (bool, error) {
	v, err := t.lookup(key, value.KindBoolean)
	b, _ := v.Bool()
	return b, err
}

func (t *Table) Insets(key string) (value.Insets, error) {
	v, err := t.lookup(key, value.KindInsets)
	i, _ := v.Insets()
	return i, err
}

func (t *Table) Font(key string) (value.Font, error) {
	v, err := t.lookup(key, value.KindFont)
	f, _ := v.Font()
	return f, err
}

func (t *Table) Border(key string) (value.BorderHandle, error) {
	v, err := t.lookup(key, value.KindBorder)
	b, _ := v.Border()
	return b, err
}

func (t *Table) Icon(key string) (value.IconHandle, error) {
	v, err := t.lookup(key, value.KindIcon)
	i, _ := v.Icon()
	return i, err
}

func (t *Table) Dimension(key string) (value.Dimension, error) {
	v, err := t.lookup(key, value.KindDimension)
	d, _ := v.Dimension()
	return d, err
}

func (t *Table) Str(key string) (string, error) {
	v, err := t.lookup(key, value.KindString)
	s, _ := v.Str()
	return s, err
}

// IsNull reports whether key is present and explicitly null.
func (t *Table) IsNull(key string) (bool, error) {
	v, ok := t.entries.Get(key)
	if !ok {
		return false, t.notFound(key)
	}
	return v.IsNull(), nil
}
