package fspath

// DirectoryWalker yields a directory, then each of its parents, ending with
// the filesystem root. It is single use: once Next reports false it stays
// exhausted.
type DirectoryWalker struct {
	next AbsoluteSystemPath
	done bool
}

// WalkUp returns a DirectoryWalker starting at p.
func (p AbsoluteSystemPath) WalkUp() *DirectoryWalker {
	return &DirectoryWalker{next: p}
}

// Next returns the next candidate directory. The root is always the final
// element and is produced exactly once, including when the walk starts there.
func (w *DirectoryWalker) Next() (AbsoluteSystemPath, bool) {
	if w.done {
		return "", false
	}
	current := w.next
	if current.IsRoot() {
		w.done = true
	} else {
		w.next = current.Dir()
	}
	return current, true
}

// Ancestors collects the full WalkUp sequence for p, p first.
func (p AbsoluteSystemPath) Ancestors() []AbsoluteSystemPath {
	dirs := []AbsoluteSystemPath{}
	walker := p.WalkUp()
	for dir, ok := walker.Next(); ok; dir, ok = walker.Next() {
		dirs = append(dirs, dir)
	}
	return dirs
}
