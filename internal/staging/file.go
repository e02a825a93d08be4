package staging

import "sync/atomic"

// File is a handle to one staged upload. It is owned by the Store that created it.
type File struct {
	path     string
	size     int
	released atomic.Bool
}

// Path is the on-disk location, ending in the original suffix.
func (f *File) Path() string {
	return f.path
}

func (f *File) Size() int {
	return f.size
}

// Released reports whether Release has already run for this handle.
func (f *File) Released() bool {
	return f.released.Load()
}
