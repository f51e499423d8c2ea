// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Layered stacks the directory dir of the active backend on top of a read-only builtin tree.
// Files present under dir shadow builtin files with the same name; everything else falls through.
func Layered(builtin fs.FS, dir string) afero.Fs {
	lower := afero.NewReadOnlyFs(afero.FromIOFS{FS: builtin})
	if dir == "" {
		return lower
	}

	upper := afero.NewBasePathFs(backend.Fs, dir)
	return afero.NewCopyOnWriteFs(lower, upper)
}
