package inline

import (
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/mo"
)

type KeyFilter func(key string) bool

type Options struct {
	Out      io.Writer
	Json     bool
	Theme    string
	Platform string
	Filter   mo.Option[KeyFilter]
	// Swatches renders colors as colored blocks in plain text output.
	Swatches bool
}

// ParseKeyFilter builds a filter from a query. A query wrapped in @ matches
// keys by substring, anything else matches fuzzily, case-insensitively.
func ParseKeyFilter(query string) mo.Option[KeyFilter] {
	if query == "" {
		return mo.None[KeyFilter]()
	}

	if len(query) > 1 && query[0] == '@' && query[len(query)-1] == '@' {
		sub := query[1 : len(query)-1]
		return mo.Some[KeyFilter](func(key string) bool {
			return strings.Contains(strings.ToLower(key), strings.ToLower(sub))
		})
	}

	return mo.Some[KeyFilter](func(key string) bool {
		return fuzzy.MatchFold(query, key)
	})
}
