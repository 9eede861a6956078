package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmarrero/bootupd/internal/cli"
)

var (
	targetRoot string
	installEFI bool
	assumeYes  bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install static GRUB configs",
	Long: `Write grub.cfg and the drop-in fragments into <target-root>/boot/grub2.

With --efi, also copy the static EFI config to
<target-root>/boot/efi/EFI/<vendor>/grub.cfg. A missing EFI
directory is reported as a warning, not an error.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&targetRoot, "target-root", "/", "Root of the system to install into")
	installCmd.Flags().BoolVar(&installEFI, "efi", false, "Also install the EFI config")
	installCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	// Never block on a prompt when nobody can answer it
	nonInteractive := assumeYes || !isatty.IsTerminal(os.Stdin.Fd())

	ctx, err := newContext(nonInteractive)
	if err != nil {
		return err
	}

	_, err = cli.RunInstall(ctx, targetRoot, installEFI)
	return err
}
