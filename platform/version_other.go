//go:build !windows && !unix

package platform

func osVersion() string { return "" }
