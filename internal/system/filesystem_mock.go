package system

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is a mock of the FileSystem for testing purposes.
// It delegates to the real FileSystem, records every copy and write,
// and can be told to fail copies of specific source names.
type MockFileSystem struct {
	FileSystem
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Copied       []string
	FailCopy     map[string]error
	// Listing, when set, replaces the real directory listing for every directory
	Listing []string
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		FailCopy:     make(map[string]error),
	}
}

// ListDirectory returns Listing verbatim if set, otherwise the real listing.
func (m *MockFileSystem) ListDirectory(dir *os.Root) ([]string, error) {
	if m.Listing != nil {
		return append([]string(nil), m.Listing...), nil
	}
	return m.FileSystem.ListDirectory(dir)
}

// CopyFile records the copy and fails if the base name of src was registered in FailCopy.
func (m *MockFileSystem) CopyFile(src string, dstDir *os.Root, dst string) error {
	m.mu.Lock()
	failErr, fail := m.FailCopy[filepath.Base(src)]
	m.mu.Unlock()
	if fail {
		return fmt.Errorf("failed to copy %s: %w", src, failErr)
	}

	if err := m.FileSystem.CopyFile(src, dstDir, dst); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Copied = append(m.Copied, dst)
	return nil
}

// WriteFile captures the content and writes it through to disk.
func (m *MockFileSystem) WriteFile(dir *os.Root, name string, content []byte, perms os.FileMode) error {
	if err := m.FileSystem.WriteFile(dir, name, content, perms); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.WrittenFiles[name] = content
	return nil
}

var _ FileSystemManager = (*MockFileSystem)(nil)
