package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// FileSystem handles file operations relative to open directory handles.
// All paths passed alongside a *os.Root are resolved inside that root and
// cannot escape it. Copy sources are plain host paths.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// OpenDir opens a directory handle for an absolute or relative host path
func (fs *FileSystem) OpenDir(path string) (*os.Root, error) {
	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}
	return root, nil
}

// OpenSubdir opens a subdirectory of parent. The subdirectory must exist.
func (fs *FileSystem) OpenSubdir(parent *os.Root, name string) (*os.Root, error) {
	sub, err := parent.OpenRoot(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", filepath.Join(parent.Name(), name), err)
	}
	return sub, nil
}

// OpenSubdirOptional opens a subdirectory of parent.
// It returns (nil, nil) if the subdirectory does not exist.
func (fs *FileSystem) OpenSubdirOptional(parent *os.Root, name string) (*os.Root, error) {
	sub, err := parent.OpenRoot(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", filepath.Join(parent.Name(), name), err)
	}
	return sub, nil
}

// ListDirectory lists all entry names in a directory (non-recursive), sorted by name
func (fs *FileSystem) ListDirectory(dir *os.Root) ([]string, error) {
	d, err := dir.Open(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir.Name(), err)
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir.Name(), err)
	}
	sort.Strings(names)

	return names, nil
}

// Lstat returns file info for name inside dir without following a final symlink
func (fs *FileSystem) Lstat(dir *os.Root, name string) (os.FileInfo, error) {
	info, err := dir.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(dir.Name(), name), err)
	}
	return info, nil
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(dir *os.Root, name string) (bool, error) {
	_, err := dir.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", filepath.Join(dir.Name(), name), err)
}

// ReadFile reads the whole content of name inside dir
func (fs *FileSystem) ReadFile(dir *os.Root, name string) ([]byte, error) {
	data, err := dir.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(dir.Name(), name), err)
	}
	return data, nil
}

// CopyFile copies the host file src to dst in dstDir, keeping the source permission bits.
// src is opened on the host, so symlinks in the source tree are followed wherever
// they point. The destination is replaced atomically, so it is never observed half written.
func (fs *FileSystem) CopyFile(src string, dstDir *os.Root, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("failed to copy %s: not a regular file", src)
	}

	return fs.writeAtomic(dstDir, dst, info.Mode().Perm(), func(w io.Writer) error {
		if _, err := io.Copy(w, in); err != nil {
			return fmt.Errorf("failed to copy %s to %s: %w", src, filepath.Join(dstDir.Name(), dst), err)
		}
		return nil
	})
}

// WriteFile writes content to name inside dir using write-then-rename
func (fs *FileSystem) WriteFile(dir *os.Root, name string, content []byte, perms os.FileMode) error {
	return fs.writeAtomic(dir, name, perms, func(w io.Writer) error {
		if _, err := w.Write(content); err != nil {
			return fmt.Errorf("failed to write to temp file: %w", err)
		}
		return nil
	})
}

// writeAtomic creates a temp file next to name, fills it, syncs it and renames
// it over name. The temp file is removed on any failure.
func (fs *FileSystem) writeAtomic(dir *os.Root, name string, perms os.FileMode, fill func(io.Writer) error) (err error) {
	tmpName := filepath.Join(filepath.Dir(name), fmt.Sprintf(".%s.tmp-%s", filepath.Base(name), uuid.NewString()))

	tmpFile, err := dir.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perms)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", filepath.Join(dir.Name(), name), err)
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			err = multierr.Append(err, tmpFile.Close())
		}
		if rmErr := dir.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, fmt.Errorf("failed to remove temp file %s: %w", tmpName, rmErr))
		}
	}()

	// The umask may have masked bits off at creation time
	if err := tmpFile.Chmod(perms); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := fill(tmpFile); err != nil {
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	closed = true
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := dir.Rename(tmpName, name); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filepath.Join(dir.Name(), name), err)
	}

	return nil
}
