package fs

import "os"

// EntryName is the best-effort decoded display name of a directory entry.
// Valid is false when the raw on-disk name was not valid UTF-8; Display then
// holds a lossy placeholder form and must not be used to build paths.
type EntryName struct {
	Display string
	Valid   bool
}

// Entry represents a single child of a directory. Immutable once read.
type Entry struct {
	Name     EntryName
	FullPath string
	IsDir    bool
	Mode     os.FileMode
}
