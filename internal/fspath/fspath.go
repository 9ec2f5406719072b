// Package fspath gives the Go type system a name for the absolute,
// system-separated directory paths that package manager detection walks.
//
// Paths enter the package through ResolveDirectory (checked) or
// AbsoluteSystemPathFromUpstream (trusted). Everything downstream of those
// two functions can assume the value is absolute and cleaned.
package fspath

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// AbsoluteSystemPathFromUpstream takes a path string and casts it to an
// AbsoluteSystemPath without checking. If the input to this function is
// not an AbsoluteSystemPath it will result in downstream errors.
func AbsoluteSystemPathFromUpstream(path string) AbsoluteSystemPath {
	return AbsoluteSystemPath(path)
}

// CheckedToAbsoluteSystemPath inspects a string and determines if it is an absolute path.
func CheckedToAbsoluteSystemPath(s string) (AbsoluteSystemPath, error) {
	if filepath.IsAbs(s) {
		return AbsoluteSystemPath(filepath.Clean(s)), nil
	}
	return "", errors.Errorf("%v is not an absolute path", s)
}

// ResolveDirectory turns a user supplied directory into an absolute path.
// An empty string means the process working directory. Relative paths are
// resolved against the process working directory.
func ResolveDirectory(raw string) (AbsoluteSystemPath, error) {
	if raw == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "invalid working directory")
		}
		return CheckedToAbsoluteSystemPath(cwd)
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid working directory %v", raw)
	}
	return AbsoluteSystemPath(abs), nil
}
