package grubconfigs

import (
	"path/filepath"
)

// FragmentStatus tells whether the installed copy of a fragment exists.
type FragmentStatus struct {
	Name    string
	Present bool
}

// Status describes the static GRUB files currently present in a target root.
// Paths are relative to the target root.
type Status struct {
	ConfigPath       string
	ConfigPresent    bool
	Fragments        []FragmentStatus
	EFIDirPresent    bool
	EFIVendor        string
	EFIConfigPath    string
	EFIConfigPresent bool
}

// LocateVendor returns the EFI vendor directory name below targetRoot.
// Unlike Install, a missing EFI directory is an error here.
func (i *Installer) LocateVendor(targetRoot string) (string, error) {
	root, err := i.fs.OpenDir(targetRoot)
	if err != nil {
		return "", ioError(StageOpenTarget, targetRoot, err)
	}
	defer root.Close()

	efiDir, err := i.fs.OpenSubdir(root, i.layout.EFIDir)
	if err != nil {
		return "", ioError(StageOpenEFI, i.layout.EFIDir, err)
	}
	defer efiDir.Close()

	return findVendorDir(i.fs, efiDir, i.layout.StrictVendor)
}

// Inspect reports which of the files Install would write exist in targetRoot.
// Fragments are taken from the current drop-in directory.
func (i *Installer) Inspect(targetRoot string) (*Status, error) {
	l := i.layout

	root, err := i.fs.OpenDir(targetRoot)
	if err != nil {
		return nil, ioError(StageOpenTarget, targetRoot, err)
	}
	defer root.Close()

	configDir, err := i.fs.OpenDir(l.ConfigDir)
	if err != nil {
		return nil, ioError(StageOpenConfig, l.ConfigDir, err)
	}
	defer configDir.Close()

	dropin, err := i.fs.OpenSubdir(configDir, l.DropinDir)
	if err != nil {
		return nil, ioError(StageCollect, l.DropinDir, err)
	}
	defer dropin.Close()

	fragments, err := CollectFragments(i.fs, dropin, i.log)
	if err != nil {
		return nil, err
	}

	st := &Status{ConfigPath: filepath.Join(l.BootDir, l.ConfigPath())}
	if st.ConfigPresent, err = i.fs.FileExists(root, st.ConfigPath); err != nil {
		return nil, ioError(StageInspect, st.ConfigPath, err)
	}

	for _, name := range fragments {
		p := filepath.Join(l.BootDir, l.FragmentPath(name))
		present, err := i.fs.FileExists(root, p)
		if err != nil {
			return nil, ioError(StageInspect, p, err)
		}
		st.Fragments = append(st.Fragments, FragmentStatus{Name: name, Present: present})
	}

	efiDir, err := i.fs.OpenSubdirOptional(root, l.EFIDir)
	if err != nil {
		return nil, ioError(StageOpenEFI, l.EFIDir, err)
	}
	if efiDir == nil {
		return st, nil
	}
	defer efiDir.Close()
	st.EFIDirPresent = true

	vendor, err := findVendorDir(i.fs, efiDir, l.StrictVendor)
	if err != nil {
		return nil, err
	}
	st.EFIVendor = vendor
	st.EFIConfigPath = filepath.Join(l.EFIDir, vendor, l.ConfigName)
	if st.EFIConfigPresent, err = i.fs.FileExists(efiDir, filepath.Join(vendor, l.ConfigName)); err != nil {
		return nil, ioError(StageInspect, st.EFIConfigPath, err)
	}

	return st, nil
}
