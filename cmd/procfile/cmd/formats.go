package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procfile-cnb/parser/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats for check",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range registry.Default.ListSupportedFormats() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
