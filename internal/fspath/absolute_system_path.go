package fspath

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// AbsoluteSystemPath is a root-relative path using system separators.
type AbsoluteSystemPath string

// ToString returns a string represenation of this Path.
// Used for interfacing with APIs that require a string.
func (p AbsoluteSystemPath) ToString() string {
	return string(p)
}

// UntypedJoin is a Join that does not constrain the type of the arguments.
// This enables you to pass in strings, but does not protect you from garbage in.
func (p AbsoluteSystemPath) UntypedJoin(args ...string) AbsoluteSystemPath {
	return AbsoluteSystemPath(filepath.Join(p.ToString(), filepath.Join(args...)))
}

// Dir implements filepath.Dir() for an AbsoluteSystemPath
func (p AbsoluteSystemPath) Dir() AbsoluteSystemPath {
	return AbsoluteSystemPath(filepath.Dir(p.ToString()))
}

// IsRoot returns true if this path has no parent.
func (p AbsoluteSystemPath) IsRoot() bool {
	return p.Dir() == p
}

// Depth is the number of parents between this path and the filesystem root.
// The root itself has depth 0.
func (p AbsoluteSystemPath) Depth() int {
	depth := 0
	for cursor := p; !cursor.IsRoot(); cursor = cursor.Dir() {
		depth++
	}
	return depth
}

// Stat implements os.Stat for absolute path
func (p AbsoluteSystemPath) Stat() (os.FileInfo, error) {
	return os.Stat(p.ToString())
}

// Exists returns true if the given path exists. Symlinks are followed, and
// directories count as existing.
func (p AbsoluteSystemPath) Exists() bool {
	_, err := p.Stat()
	return err == nil
}

// ReadFile reads the contents of the specified file
func (p AbsoluteSystemPath) ReadFile() ([]byte, error) {
	return ioutil.ReadFile(p.ToString())
}
