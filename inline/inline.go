// Package inline writes a resolved style table for scripts and terminals,
// either as JSON or as aligned plain text.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/util"
	"github.com/darcula-go/darcula/value"
)

type Entry struct {
	Key   string `json:"key" jsonschema:"description=Style key, dot delimited."`
	Kind  string `json:"kind" jsonschema:"enum=null,enum=color,enum=integer,enum=boolean,enum=insets,enum=border,enum=font,enum=icon,enum=dimension,enum=string,description=Kind of the typed value."`
	Value string `json:"value" jsonschema:"description=Value in property source notation. Colors are rrggbb and insets are top,left,bottom,right."`
}

type Output struct {
	Theme    string   `json:"theme" jsonschema:"description=Name of the resolved theme."`
	Platform string   `json:"platform" jsonschema:"enum=mac,enum=windows,enum=linux,description=Platform overlay that was applied."`
	Entries  []*Entry `json:"entries" jsonschema:"description=Resolved entries in table order."`
}

// Run writes the entries of t selected by the options.
func Run(t *table.Table, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	entries := collect(t, options)

	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	return writeText(options.Out, entries, options)
}

func collect(t *table.Table, options *Options) []*Entry {
	entries := make([]*Entry, 0, t.Len())

	t.Each(func(k string, v value.Value) {
		if filter, ok := options.Filter.Get(); ok && !filter(k) {
			return
		}

		entries = append(entries, &Entry{
			Key:   k,
			Kind:  v.Kind().String(),
			Value: value.Format(v),
		})
	})

	return entries
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	data, err := json.Marshal(&Output{
		Theme:    options.Theme,
		Platform: options.Platform,
		Entries:  entries,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))
	return err
}

func writeText(out io.Writer, entries []*Entry, options *Options) error {
	var width int
	for _, e := range entries {
		width = util.Max(width, len(e.Key))
	}

	for _, e := range entries {
		rendered := e.Value
		if options.Swatches && e.Kind == value.KindColor.String() {
			rendered = style.Swatch("#" + e.Value)
		}

		line := fmt.Sprintf("%s  %s  %s", e.Key+strings.Repeat(" ", width-len(e.Key)), style.Faint(fmt.Sprintf("%-9s", e.Kind)), rendered)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
