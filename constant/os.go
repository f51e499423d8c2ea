package constant

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Theme overlay suffixes, one per supported platform family.
const (
	SuffixMac     = "mac"
	SuffixWindows = "windows"
	SuffixLinux   = "linux"
)
