package fontprobe

import (
	"fmt"
	"strings"

	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sys/windows/registry"
)

const (
	fontsKey       = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`
	substitutesKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontSubstitutes`
	shellDialog    = "MS Shell Dlg 2"
)

// Host reads the installed fonts from the registry.
type Host struct{}

func (Host) InstalledFamilies() ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fontsKey, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open fonts key: %w", err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("read fonts key: %w", err)
	}

	return parseRegistryNames(names), nil
}

// DialogFont resolves the family behind the shell dialog alias.
func (Host) DialogFont() mo.Option[value.Font] {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, substitutesKey, registry.QUERY_VALUE)
	if err != nil {
		return mo.None[value.Font]()
	}
	defer k.Close()

	family, _, err := k.GetStringValue(shellDialog)
	if err != nil || family == "" {
		return mo.None[value.Font]()
	}

	return mo.Some(value.Font{Family: family, Style: value.Plain, Size: 12})
}

// parseRegistryNames turns value names such as "Segoe UI Bold (TrueType)"
// or "Cambria & Cambria Math (TrueType)" into family names.
func parseRegistryNames(names []string) []string {
	return normalize(lo.FlatMap(names, func(name string, _ int) []string {
		if i := strings.LastIndex(name, " ("); i >= 0 {
			name = name[:i]
		}
		return strings.Split(name, " & ")
	}))
}
