// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Darcula is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Darcula = "darcula"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// DefaultTheme is the theme whose property sources are resolved when nothing else is configured.
	DefaultTheme = "darcula"

	// ShorthandPrefix is the reserved key namespace for global suffix overrides.
	ShorthandPrefix = "darcula."
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = ""
	BuiltBy  = ""
	Revision = ""
)
