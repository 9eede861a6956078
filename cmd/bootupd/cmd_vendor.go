package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vendorRoot string

var vendorCmd = &cobra.Command{
	Use:   "vendor-dir",
	Short: "Print the EFI vendor directory name",
	Args:  cobra.NoArgs,
	RunE:  runVendor,
}

func init() {
	vendorCmd.Flags().StringVar(&vendorRoot, "target-root", "/", "Root of the system to inspect")

	rootCmd.AddCommand(vendorCmd)
}

func runVendor(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(true)
	if err != nil {
		return err
	}

	vendor, err := ctx.Installer.LocateVendor(vendorRoot)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), vendor)
	return nil
}
