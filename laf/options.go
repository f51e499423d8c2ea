package laf

import (
	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/key"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/platform"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Options tune one resolution pass.
type Options struct {
	// Theme is the base name of the property sources.
	Theme string

	// Prefix marks shorthand keys in the sources.
	Prefix string

	// Platform overrides the probed platform family.
	Platform mo.Option[platform.OS]

	// Substitute enables the system font heuristics.
	Substitute bool

	// FontSize is the point size of substituted fonts.
	FontSize int

	// Monospace, when set, is the family used by multi-line text components.
	Monospace string
}

// DefaultOptions matches the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Theme:      constant.DefaultTheme,
		Prefix:     constant.ShorthandPrefix,
		Substitute: true,
		FontSize:   12,
	}
}

// OptionsFromConfig reads the options from viper.
func OptionsFromConfig() Options {
	opts := Options{
		Theme:      viper.GetString(key.ThemeName),
		Prefix:     viper.GetString(key.ThemePrefix),
		Substitute: viper.GetBool(key.FontsSubstitute),
		FontSize:   viper.GetInt(key.FontsSize),
		Monospace:  viper.GetString(key.FontsMonospace),
	}

	if name := viper.GetString(key.ThemePlatform); name != "" {
		p, err := platform.Parse(name)
		if err != nil {
			log.Warnf("%s: %s, probing instead", key.ThemePlatform, err)
		} else {
			opts.Platform = mo.Some(p)
		}
	}

	return opts.normalized()
}

func (o Options) normalized() Options {
	defaults := DefaultOptions()
	if o.Theme == "" {
		o.Theme = defaults.Theme
	}
	if o.Prefix == "" {
		o.Prefix = defaults.Prefix
	}
	if o.FontSize <= 0 {
		o.FontSize = defaults.FontSize
	}
	return o
}
