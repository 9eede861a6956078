package grubconfigs

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmarrero/bootupd/internal/system"
)

// FallbackDir is the removable-media loader directory mandated by UEFI.
// It is never the vendor directory.
const FallbackDir = "BOOT"

// findVendorDir scans efiDir for vendor directories: entries other than
// FallbackDir that are directories themselves. Symlinks are not followed, so
// an alias of FallbackDir never qualifies. Without strict the first candidate
// in name order wins; with strict every entry is examined and more than one
// candidate is an error.
func findVendorDir(fs system.FileSystemManager, efiDir *os.Root, strict bool) (string, error) {
	names, err := fs.ListDirectory(efiDir)
	if err != nil {
		return "", ioError(StageLocateVendor, efiDir.Name(), err)
	}

	var candidates []string
	for _, name := range names {
		if name == FallbackDir {
			continue
		}
		info, err := fs.Lstat(efiDir, name)
		if err != nil {
			return "", ioError(StageLocateVendor, efiDir.Name(), err)
		}
		if !info.IsDir() {
			continue
		}
		if !strict {
			return name, nil
		}
		candidates = append(candidates, name)
	}

	switch len(candidates) {
	case 0:
		return "", &StageError{Stage: StageLocateVendor, Path: efiDir.Name(), Kind: ErrVendorNotFound}
	case 1:
		return candidates[0], nil
	default:
		return "", &StageError{
			Stage: StageLocateVendor,
			Path:  efiDir.Name(),
			Kind:  ErrAmbiguousVendor,
			Err:   fmt.Errorf("%w: %s", ErrAmbiguousVendor, strings.Join(candidates, ", ")),
		}
	}
}
