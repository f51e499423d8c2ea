// Package version compares dotted version strings, such as application releases and host OS builds.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Compare performs a numeric comparison between two dotted version strings.
// Missing components count as zero, so "6.0" equals "6.0.0".
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	type version struct {
		major, minor, patch int
	}

	parse := func(s string) (version, error) {
		var n [3]int
		parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
		if len(parts) > len(n) {
			parts = parts[:len(n)]
		}

		for i, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil {
				return version{}, fmt.Errorf("invalid version %q: %w", s, err)
			}
			n[i] = v
		}

		return version{major: n[0], minor: n[1], patch: n[2]}, nil
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// AtLeast reports whether v >= min. Unparseable versions never qualify.
func AtLeast(v, min string) bool {
	cmp, err := Compare(v, min)
	return err == nil && cmp >= 0
}
