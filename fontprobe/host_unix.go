//go:build !windows

package fontprobe

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Host probes fontconfig through fc-list.
type Host struct{}

func (Host) InstalledFamilies() ([]string, error) {
	path, err := exec.LookPath("fc-list")
	if err != nil {
		return nil, fmt.Errorf("fc-list not found: %w", err)
	}

	var stdout bytes.Buffer
	cmd := exec.Command(path, ":", "family")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("fc-list: %w", err)
	}

	return parseFcList(stdout.String()), nil
}

// DialogFont is unknown outside windows.
func (Host) DialogFont() mo.Option[value.Font] {
	return mo.None[value.Font]()
}

// parseFcList splits fc-list output. A line may name several
// comma separated aliases of one family.
func parseFcList(out string) []string {
	return normalize(lo.FlatMap(strings.Split(out, "\n"), func(line string, _ int) []string {
		return strings.Split(line, ",")
	}))
}
