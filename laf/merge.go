package laf

import (
	"strings"

	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/property"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
)

// Shorthand maps a local key to the value every base key ending in it receives.
type Shorthand map[string]value.Value

// Expand collects the keys of merged that start with prefix, keyed by the
// rest of the key. Values are coerced as if the rest were the whole key.
// Entries that fail to coerce are skipped.
func Expand(merged *property.SourceMap, prefix string, c *value.Coercer) Shorthand {
	sh := make(Shorthand)

	merged.Each(func(k, raw string) {
		suffix, ok := strings.CutPrefix(k, prefix)
		if !ok || suffix == "" {
			return
		}

		v, err := c.Coerce(suffix, raw)
		if err != nil {
			log.Warnf("shorthand %s skipped: %s", k, err)
			return
		}

		sh[suffix] = v
	})

	return sh
}

// Merge overlays the sources onto base.
//
// First every base key whose local part has a shorthand entry takes that
// value. Then every non-shorthand key of merged is coerced and written,
// so a direct key always beats shorthand. A direct key that fails to
// coerce leaves base untouched.
func Merge(base *table.Table, sh Shorthand, merged *property.SourceMap, prefix string, c *value.Coercer) {
	applyShorthand(base, sh)

	merged.Each(func(k, raw string) {
		if strings.HasPrefix(k, prefix) {
			return
		}

		v, err := c.Coerce(k, raw)
		if err != nil {
			log.Warnf("%s (from %s) left unchanged: %s", k, merged.Origin(k), err)
			return
		}

		base.Put(k, v)
	})
}

func applyShorthand(base *table.Table, sh Shorthand) {
	if len(sh) == 0 {
		return
	}

	base.Each(func(k string, _ value.Value) {
		i := strings.LastIndexByte(k, '.')
		if i < 0 {
			return
		}

		if v, ok := sh[k[i+1:]]; ok {
			base.Put(k, v)
		}
	})
}
