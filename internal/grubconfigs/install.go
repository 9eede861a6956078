// Package grubconfigs installs the static GRUB configuration: a grub.cfg
// assembled from a fixed pre-amble, one "source" directive per drop-in
// fragment and a fixed post-amble, plus an EFI grub.cfg placed into the
// vendor directory of the EFI system partition.
package grubconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/jmarrero/bootupd/internal/system"
)

// EFISkipReason tells why no EFI config was written.
type EFISkipReason string

const (
	EFIInstalled    EFISkipReason = ""
	EFINotRequested EFISkipReason = "not requested"
	EFIDirMissing   EFISkipReason = "EFI directory missing"
)

// Result lists what an installation wrote. Paths are relative to the target root.
type Result struct {
	Fragments     []string
	Written       []string
	ConfigPath    string
	EFIVendor     string
	EFIConfigPath string
	EFISkipped    EFISkipReason
}

// Installer writes the static GRUB configuration into a target root.
type Installer struct {
	fs     system.FileSystemManager
	layout Layout
	log    logrus.FieldLogger
}

// NewInstaller creates an Installer. A nil logger falls back to the logrus standard logger.
func NewInstaller(fs system.FileSystemManager, layout Layout, log logrus.FieldLogger) *Installer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Installer{fs: fs, layout: layout, log: log}
}

// Install composes grub.cfg from the configured sources and writes it, together
// with a copy of every fragment, below targetRoot. If efi is set and the EFI
// directory exists, the static EFI config is copied into the vendor directory.
// The first failure aborts the installation.
func (i *Installer) Install(targetRoot string, efi bool) (*Result, error) {
	root, err := i.fs.OpenDir(targetRoot)
	if err != nil {
		return nil, ioError(StageOpenTarget, targetRoot, err)
	}
	defer root.Close()

	return i.InstallAt(root, efi)
}

// InstallAt is Install for an already opened target root.
func (i *Installer) InstallAt(root *os.Root, efi bool) (*Result, error) {
	l := i.layout

	bootDir, err := i.fs.OpenSubdir(root, l.BootDir)
	if err != nil {
		return nil, ioError(StageOpenBoot, l.BootDir, err)
	}
	defer bootDir.Close()

	configDir, err := i.fs.OpenDir(l.ConfigDir)
	if err != nil {
		return nil, ioError(StageOpenConfig, l.ConfigDir, err)
	}
	defer configDir.Close()

	res := &Result{}
	text, fragments, err := i.compose(configDir, func(name string) error {
		dst := l.FragmentPath(name)
		if err := i.fs.CopyFile(filepath.Join(l.ConfigDir, l.DropinDir, name), bootDir, dst); err != nil {
			return ioError(StageCopyFragment, name, err)
		}
		i.log.Debugf("Installed %s", name)
		res.Written = append(res.Written, filepath.Join(l.BootDir, dst))
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Fragments = fragments

	if err := i.fs.WriteFile(bootDir, l.ConfigPath(), []byte(text), l.Mode); err != nil {
		return nil, ioError(StageWriteConfig, filepath.Join(l.BootDir, l.ConfigPath()), err)
	}
	res.ConfigPath = filepath.Join(l.BootDir, l.ConfigPath())
	res.Written = append(res.Written, res.ConfigPath)
	i.log.Debugf("Installed: %s", l.ConfigName)

	if !efi {
		res.EFISkipped = EFINotRequested
		return res, nil
	}

	efiDir, err := i.fs.OpenSubdirOptional(root, l.EFIDir)
	if err != nil {
		return nil, ioError(StageOpenEFI, l.EFIDir, err)
	}
	if efiDir == nil {
		i.log.Debugf("No %s directory, skipping EFI config", l.EFIDir)
		res.EFISkipped = EFIDirMissing
		return res, nil
	}
	defer efiDir.Close()

	vendor, err := findVendorDir(i.fs, efiDir, l.StrictVendor)
	if err != nil {
		return nil, err
	}
	i.log.Debugf("vendordir=%s", vendor)

	target := filepath.Join(vendor, l.ConfigName)
	if err := i.fs.CopyFile(filepath.Join(l.ConfigDir, l.EFIFile), efiDir, target); err != nil {
		return nil, ioError(StageCopyEFIConfig, filepath.Join(l.EFIDir, target), err)
	}
	i.log.Debugf("Installed: %s", target)

	res.EFIVendor = vendor
	res.EFIConfigPath = filepath.Join(l.EFIDir, target)
	res.Written = append(res.Written, res.EFIConfigPath)
	return res, nil
}

// Render returns the grub.cfg text and the fragments it references without
// writing anything.
func (i *Installer) Render() (string, []string, error) {
	configDir, err := i.fs.OpenDir(i.layout.ConfigDir)
	if err != nil {
		return "", nil, ioError(StageOpenConfig, i.layout.ConfigDir, err)
	}
	defer configDir.Close()

	return i.compose(configDir, nil)
}

// compose builds the grub.cfg text. onFragment, if set, runs for every
// fragment right after its directive is appended.
func (i *Installer) compose(configDir *os.Root, onFragment func(name string) error) (string, []string, error) {
	l := i.layout

	pre, err := i.readText(configDir, l.PreFile, StageReadPre)
	if err != nil {
		return "", nil, err
	}

	dropin, err := i.fs.OpenSubdir(configDir, l.DropinDir)
	if err != nil {
		return "", nil, ioError(StageCollect, l.DropinDir, err)
	}
	defer dropin.Close()

	fragments, err := CollectFragments(i.fs, dropin, i.log)
	if err != nil {
		return "", nil, err
	}

	var config strings.Builder
	config.WriteString(pre)
	for _, name := range fragments {
		config.WriteString(sourceLine(name))
		if onFragment != nil {
			if err := onFragment(name); err != nil {
				return "", nil, err
			}
		}
	}

	post, err := i.readText(configDir, l.PostFile, StageReadPost)
	if err != nil {
		return "", nil, err
	}
	config.WriteString(post)

	return config.String(), fragments, nil
}

func (i *Installer) readText(dir *os.Root, name string, stage Stage) (string, error) {
	data, err := i.fs.ReadFile(dir, name)
	if err != nil {
		return "", ioError(stage, name, err)
	}
	if !utf8.Valid(data) {
		return "", encodingError(stage, name)
	}
	return string(data), nil
}
