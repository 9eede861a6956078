package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmarrero/bootupd/internal/cli"
	"github.com/jmarrero/bootupd/internal/ui"
	"github.com/jmarrero/bootupd/pkg/version"
)

var (
	// Flags shared by all commands
	configFile   string
	configDir    string
	strictVendor bool
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "bootupd",
	Short: "Static GRUB configuration installer",
	Long: `Install the static GRUB configuration into a boot partition.

grub.cfg is assembled from a fixed pre-amble, one "source" line per
drop-in fragment in configs.d (sorted by name), and a fixed post-amble.
With --efi the static EFI config is also copied into the vendor
directory of the EFI system partition.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configFile, "config", "", "Configuration file (default /etc/bootupd/grub-static.conf)")
	flags.StringVar(&configDir, "config-dir", "", "Directory holding the static GRUB templates")
	flags.BoolVar(&strictVendor, "strict-vendor", false, "Fail if more than one EFI vendor directory exists")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
}

// newContext builds the install context from the global flags
func newContext(nonInteractive bool) (*cli.InstallContext, error) {
	ctx, err := cli.NewInstallContext(cli.Options{
		ConfigFile:     configFile,
		ConfigDir:      configDir,
		StrictVendor:   strictVendor,
		NonInteractive: nonInteractive,
		Debug:          debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize install context: %w", err)
	}
	return ctx, nil
}

// execute runs the root command and reports a failure through u.
// It returns the process exit code.
func execute(u *ui.UI) int {
	if err := rootCmd.Execute(); err != nil {
		u.Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(ui.New()))
}
