// Package platform identifies the host platform family and OS version that
// select theme overlays and font heuristics.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/version"
)

// OS is one of the three platform families themes distinguish.
type OS int

const (
	Linux OS = iota
	Mac
	Windows
)

// Suffix is the name fragment of the platform overlay source.
func (o OS) Suffix() string {
	switch o {
	case Mac:
		return constant.SuffixMac
	case Windows:
		return constant.SuffixWindows
	default:
		return constant.SuffixLinux
	}
}

func (o OS) String() string {
	return o.Suffix()
}

// Parse maps an overlay suffix or a GOOS value to an OS.
func Parse(s string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constant.SuffixMac, constant.Darwin, "macos", "osx":
		return Mac, nil
	case constant.SuffixWindows:
		return Windows, nil
	case constant.SuffixLinux:
		return Linux, nil
	default:
		return Linux, fmt.Errorf("unknown platform %q", s)
	}
}

// FromGOOS classifies a GOOS value. Everything that is neither darwin nor windows is treated as linux.
func FromGOOS(goos string) OS {
	switch goos {
	case constant.Darwin:
		return Mac
	case constant.Windows:
		return Windows
	default:
		return Linux
	}
}

// Info describes the probed host.
type Info struct {
	OS OS
	// Version is the dotted OS version, empty when unknown.
	Version string
}

// AtLeast reports whether the OS version is known and not older than min.
func (i Info) AtLeast(min string) bool {
	return version.AtLeast(i.Version, min)
}

// Prober reports the host platform.
type Prober interface {
	Probe() Info
}

// Static is a Prober that always reports the same Info.
type Static Info

func (s Static) Probe() Info { return Info(s) }

// Host probes the running process.
type Host struct{}

func (Host) Probe() Info {
	return Info{OS: FromGOOS(runtime.GOOS), Version: osVersion()}
}
