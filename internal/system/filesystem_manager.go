package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	OpenDir(path string) (*os.Root, error)
	OpenSubdir(parent *os.Root, name string) (*os.Root, error)
	OpenSubdirOptional(parent *os.Root, name string) (*os.Root, error)
	ListDirectory(dir *os.Root) ([]string, error)
	Lstat(dir *os.Root, name string) (os.FileInfo, error)
	FileExists(dir *os.Root, name string) (bool, error)
	ReadFile(dir *os.Root, name string) ([]byte, error)
	CopyFile(src string, dstDir *os.Root, dst string) error
	WriteFile(dir *os.Root, name string, content []byte, perms os.FileMode) error
}

var _ FileSystemManager = (*FileSystem)(nil)
