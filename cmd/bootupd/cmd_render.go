package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the composed grub.cfg",
	Long:  `Compose grub.cfg from the static templates and print it to stdout without writing anything.`,
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(true)
	if err != nil {
		return err
	}

	text, _, err := ctx.Installer.Render()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
