// Package fs reads and orders directory listings for the browser core.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ReadListing enumerates the immediate children of path, sorted with
// directories first and names compared case-insensitively (case-sensitive
// tie-break). When foldersOnly is set, non-directory entries are dropped.
// Every call re-reads the filesystem; nothing is cached.
func ReadListing(path string, foldersOnly bool) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		rawName := child.Name()
		fullPath := filepath.Join(path, rawName)

		isDir := child.IsDir()
		if child.Type()&os.ModeSymlink != 0 {
			// Classify symlinks by their target when it resolves.
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}
		if foldersOnly && !isDir {
			continue
		}

		mode := child.Type()
		if fi, err := child.Info(); err == nil {
			mode = fi.Mode()
		}

		entries = append(entries, Entry{
			Name:     decodeName(rawName),
			FullPath: fullPath,
			IsDir:    isDir,
			Mode:     mode,
		})
	}

	sortEntries(entries)
	return entries, nil
}

func decodeName(raw string) EntryName {
	if !utf8.ValidString(raw) {
		return EntryName{
			Display: strings.ToValidUTF8(raw, "�"),
			Valid:   false,
		}
	}
	return EntryName{Display: norm.NFC.String(raw), Valid: true}
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		an := strings.ToLower(a.Name.Display)
		bn := strings.ToLower(b.Name.Display)
		if an != bn {
			return an < bn
		}
		return a.Name.Display < b.Name.Display
	})
}
