//go:build unix

package platform

import (
	"strings"

	"golang.org/x/sys/unix"
)

func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}

	release := unix.ByteSliceToString(uts.Release[:])
	// Unix systems report the kernel release, which may carry a suffix such as "6.8.0-45-generic".
	if i := strings.IndexAny(release, "-+_ "); i >= 0 {
		release = release[:i]
	}
	return release
}
