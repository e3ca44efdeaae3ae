package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// Sentinel errors for the failure modes of reading a directory. Callers
// classify with errors.Is; anything else from the OS is wrapped as a plain
// IO failure.
var (
	ErrNotFound         = errors.New("no such directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
)

func classifyReadError(path string, err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("cannot read directory %s: %w", path, err)
	}
}
