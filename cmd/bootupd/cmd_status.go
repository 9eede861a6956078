package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var statusRoot string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed static GRUB files",
	Long:  `Display which of the files written by install exist under the target root.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusRoot, "target-root", "/", "Root of the system to inspect")

	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(true)
	if err != nil {
		return err
	}

	st, err := ctx.Installer.Inspect(statusRoot)
	if err != nil {
		return err
	}

	ctx.UI.Header("Static GRUB Status")

	report := func(present bool, path string) {
		if present {
			ctx.UI.Successf("%s", path)
		} else {
			ctx.UI.Infof("%s (missing)", path)
		}
	}

	report(st.ConfigPresent, st.ConfigPath)
	for _, frag := range st.Fragments {
		report(frag.Present, frag.Name)
	}

	if st.EFIDirPresent {
		ctx.UI.Infof("EFI vendor: %s", st.EFIVendor)
		report(st.EFIConfigPresent, st.EFIConfigPath)
	} else {
		ctx.UI.Infof("No EFI directory at %s", ctx.Layout.EFIDir)
	}

	fmt.Fprintln(os.Stderr)

	// Show configuration file location and overrides
	if _, err := os.Stat(ctx.Config.FilePath()); err == nil {
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
		overrides := ctx.Config.GetAll()
		keys := make([]string, 0, len(overrides))
		for k := range overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ctx.UI.Print(fmt.Sprintf("  %s=%s", k, overrides[k]))
		}
	}

	return nil
}
