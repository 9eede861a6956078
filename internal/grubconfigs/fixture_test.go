package grubconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/jmarrero/bootupd/internal/system"
)

const (
	testPre  = "set timeout=5\n"
	testPost = "blscfg\n"
	testEFI  = "search --label boot --set prefix\nconfigfile $prefix/grub2/grub.cfg\n"
)

type fixture struct {
	configDir  string
	targetRoot string
	layout     Layout
}

// newFixture creates a config source tree with the static templates and an
// empty drop-in directory, plus a target root containing boot/grub2.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	f := &fixture{
		configDir:  filepath.Join(base, "grub2-static"),
		targetRoot: filepath.Join(base, "target"),
	}
	f.layout = DefaultLayout()
	f.layout.ConfigDir = f.configDir

	require.NoError(t, os.MkdirAll(filepath.Join(f.configDir, DefaultDropinDir), 0755))
	f.writeConfig(t, DefaultPreFile, testPre)
	f.writeConfig(t, DefaultPostFile, testPost)
	f.writeConfig(t, DefaultEFIFile, testEFI)
	require.NoError(t, os.MkdirAll(filepath.Join(f.targetRoot, "boot", "grub2"), 0755))
	return f
}

func (f *fixture) writeConfig(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.configDir, name), []byte(content), 0644))
}

func (f *fixture) addFragment(t *testing.T, name, content string) {
	t.Helper()
	f.writeConfig(t, filepath.Join(DefaultDropinDir, name), content)
}

func (f *fixture) addEFIDir(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(f.targetRoot, "boot", "efi", "EFI", name), 0755))
	}
	if len(names) == 0 {
		require.NoError(t, os.MkdirAll(filepath.Join(f.targetRoot, "boot", "efi", "EFI"), 0755))
	}
}

func (f *fixture) target(parts ...string) string {
	return filepath.Join(append([]string{f.targetRoot}, parts...)...)
}

func (f *fixture) readTarget(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(f.target(parts...))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) installer(fs system.FileSystemManager) (*Installer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewInstaller(fs, f.layout, logger), hook
}
