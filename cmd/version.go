package cmd

import (
	"fmt"

	"snapclip/pkg/clipboard"
	"snapclip/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd displays the build information and whether the clipboard
// can be used. --short prints the bare version number.
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of snapclip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
				return nil
			}

			v.Clipboard = "available"
			if err := clipboard.CheckAvailable(); err != nil {
				v.Clipboard = "unavailable (install xclip, xsel or wl-clipboard, or use --stdout)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	cmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return cmd
}
