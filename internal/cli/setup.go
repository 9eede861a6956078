// Package cli wires configuration, console output and logging into a
// grubconfigs.Installer for the bootupd commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jmarrero/bootupd/internal/config"
	"github.com/jmarrero/bootupd/internal/grubconfigs"
	"github.com/jmarrero/bootupd/internal/system"
	"github.com/jmarrero/bootupd/internal/ui"
)

// Options are the command-line overrides shared by all commands.
// Empty or false values leave the configuration file value in place.
type Options struct {
	ConfigFile     string
	ConfigDir      string
	StrictVendor   bool
	NonInteractive bool
	Debug          bool
	// LogOutput defaults to stderr
	LogOutput io.Writer
}

// InstallContext holds all dependencies needed for install operations
type InstallContext struct {
	Config    *config.Config
	UI        *ui.UI
	Log       *logrus.Logger
	Layout    grubconfigs.Layout
	Installer *grubconfigs.Installer
}

// NewInstallContext creates a new InstallContext with all dependencies initialized
func NewInstallContext(opts Options) (*InstallContext, error) {
	return NewInstallContextWithFS(opts, system.NewFileSystem())
}

// NewInstallContextWithFS is NewInstallContext with a custom file system
func NewInstallContextWithFS(opts Options, fs system.FileSystemManager) (*InstallContext, error) {
	cfg := config.New(opts.ConfigFile)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	layout, err := LayoutFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if opts.ConfigDir != "" {
		layout.ConfigDir = opts.ConfigDir
	}
	if opts.StrictVendor {
		layout.StrictVendor = true
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if opts.LogOutput != nil {
		log.SetOutput(opts.LogOutput)
	}
	// Debug output is only wanted on request
	log.SetLevel(logrus.WarnLevel)
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(opts.NonInteractive)

	return &InstallContext{
		Config:    cfg,
		UI:        uiInstance,
		Log:       log,
		Layout:    layout,
		Installer: grubconfigs.NewInstaller(fs, layout, log),
	}, nil
}

// LayoutFromConfig builds a layout from the configuration file, using the
// built-in defaults for keys that are not set.
func LayoutFromConfig(cfg *config.Config) (grubconfigs.Layout, error) {
	layout := grubconfigs.DefaultLayout()
	layout.ConfigDir = cfg.GetOrDefault(config.KeyConfigDir, layout.ConfigDir)
	layout.DropinDir = cfg.GetOrDefault(config.KeyDropinDir, layout.DropinDir)
	layout.BootDir = cfg.GetOrDefault(config.KeyBootDir, layout.BootDir)
	layout.Grub2Dir = cfg.GetOrDefault(config.KeyGrub2Dir, layout.Grub2Dir)
	layout.EFIDir = cfg.GetOrDefault(config.KeyEFIDir, layout.EFIDir)

	mode, err := cfg.GetFileMode(config.KeyMode)
	if err != nil {
		return layout, err
	}
	layout.Mode = mode

	strict, err := cfg.GetBool(config.KeyStrictVendor)
	if err != nil {
		return layout, err
	}
	layout.StrictVendor = strict

	return layout, nil
}

// RunInstall asks for confirmation, installs, and reports every written file.
// It returns the installation result, or nil if the user declined.
func RunInstall(ctx *InstallContext, targetRoot string, efi bool) (*grubconfigs.Result, error) {
	ctx.UI.Header("Installing static GRUB configs")
	ctx.UI.Infof("Target root: %s", targetRoot)
	ctx.UI.Infof("Config source: %s", ctx.Layout.ConfigDir)

	proceed, err := ctx.UI.PromptYesNo(fmt.Sprintf("Write GRUB configuration into %s?", targetRoot), true)
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !proceed {
		ctx.UI.Warning("Installation cancelled")
		return nil, nil
	}

	res, err := ctx.Installer.Install(targetRoot, efi)
	if err != nil {
		return nil, err
	}

	for _, name := range res.Fragments {
		ctx.UI.Successf("Installed %s", name)
	}
	ctx.UI.Successf("Installed: %s", ctx.Layout.ConfigName)

	switch res.EFISkipped {
	case grubconfigs.EFIInstalled:
		ctx.UI.Successf("Installed: %s", res.EFIConfigPath)
	case grubconfigs.EFIDirMissing:
		ctx.UI.Warningf("EFI requested but %s does not exist; skipped EFI config", ctx.Layout.EFIDir)
	}

	return res, nil
}
