package cmd

import (
	"github.com/spf13/cobra"

	"github.com/procfile-cnb/parser/internal/buildpack"
)

// detectFailCode is the buildpack detect exit code for "does not apply".
const detectFailCode = 100

var detectCmd = &cobra.Command{
	Use:   "detect <app-dir>",
	Short: "Check whether the app has a Procfile",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	ok, err := buildpack.Detect(args[0])
	if err != nil {
		return err
	}
	if !ok {
		cmd.PrintErrln("No Procfile found")
		return &exitError{code: detectFailCode}
	}
	return nil
}
