package grubconfigs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default locations of the static GRUB sources and of the installed files.
const (
	DefaultConfigDir  = "/usr/lib/bootupd/grub2-static"
	DefaultDropinDir  = "configs.d"
	DefaultPreFile    = "grub-static-pre.cfg"
	DefaultPostFile   = "grub-static-post.cfg"
	DefaultEFIFile    = "grub-static-efi.cfg"
	DefaultBootDir    = "boot"
	DefaultGrub2Dir   = "grub2"
	DefaultEFIDir     = "boot/efi/EFI"
	DefaultConfigName = "grub.cfg"
	DefaultMode       = os.FileMode(0o644)
)

// Layout describes where the static sources are read from and where the
// generated files are placed below a target root.
type Layout struct {
	// ConfigDir is the absolute host directory holding the templates.
	ConfigDir string
	// DropinDir is the fragment directory, relative to ConfigDir.
	DropinDir string
	PreFile   string
	PostFile  string
	EFIFile   string

	// BootDir, EFIDir are relative to the target root; Grub2Dir is relative to BootDir.
	BootDir    string
	Grub2Dir   string
	EFIDir     string
	ConfigName string
	Mode       os.FileMode

	// StrictVendor rejects EFI directories with more than one vendor candidate.
	StrictVendor bool
}

// DefaultLayout returns the layout used on installed systems.
func DefaultLayout() Layout {
	return Layout{
		ConfigDir:  DefaultConfigDir,
		DropinDir:  DefaultDropinDir,
		PreFile:    DefaultPreFile,
		PostFile:   DefaultPostFile,
		EFIFile:    DefaultEFIFile,
		BootDir:    DefaultBootDir,
		Grub2Dir:   DefaultGrub2Dir,
		EFIDir:     DefaultEFIDir,
		ConfigName: DefaultConfigName,
		Mode:       DefaultMode,
	}
}

// Validate checks that every relative entry stays inside its parent directory.
func (l Layout) Validate() error {
	if !filepath.IsAbs(l.ConfigDir) {
		return fmt.Errorf("config directory must be absolute: %q", l.ConfigDir)
	}

	relative := []struct {
		field string
		value string
	}{
		{"drop-in directory", l.DropinDir},
		{"pre-amble file", l.PreFile},
		{"post-amble file", l.PostFile},
		{"EFI template file", l.EFIFile},
		{"boot directory", l.BootDir},
		{"grub2 directory", l.Grub2Dir},
		{"EFI directory", l.EFIDir},
		{"config name", l.ConfigName},
	}
	for _, r := range relative {
		if r.value == "" || !filepath.IsLocal(r.value) {
			return fmt.Errorf("%s must be a non-empty relative path without '..': %q", r.field, r.value)
		}
	}

	if filepath.Base(l.ConfigName) != l.ConfigName {
		return fmt.Errorf("config name cannot contain path separators: %q", l.ConfigName)
	}

	if l.Mode == 0 || l.Mode&^os.ModePerm != 0 {
		return fmt.Errorf("invalid file mode: %#o", uint32(l.Mode))
	}

	return nil
}

// ConfigPath is the generated grub.cfg path relative to the boot directory.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.Grub2Dir, l.ConfigName)
}

// FragmentPath is the installed copy of a fragment relative to the boot directory.
func (l Layout) FragmentPath(name string) string {
	return filepath.Join(l.Grub2Dir, name)
}
