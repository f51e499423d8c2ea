// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 12

// Theme Selection - these keys choose which property sources feed the resolution pass.
const (
	ThemeName     = "theme.name"
	ThemePrefix   = "theme.prefix"
	ThemePlatform = "theme.platform"
)

// Font Substitution - these keys govern the system font family heuristics.
const (
	FontsSubstitute = "fonts.substitute"
	FontsSize       = "fonts.size"
	FontsMonospace  = "fonts.monospace"
	FontsCache      = "fonts.cache"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored = "cli.colored"
)

// Icons - this key selects the glyph set used by CLI status markers.
const (
	IconsVariant = "icons.variant"
)
