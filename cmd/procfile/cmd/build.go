package cmd

import (
	"github.com/spf13/cobra"

	"github.com/procfile-cnb/parser/internal/buildpack"
	"github.com/procfile-cnb/parser/internal/parser"
)

var (
	buildEmitHCL bool
	buildStrict  bool
	buildMaxSize int64
)

var buildCmd = &cobra.Command{
	Use:   "build <app-dir> <layers-dir>",
	Short: "Write launch metadata for the app's Procfile",
	Args:  cobra.ExactArgs(2),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildEmitHCL, "emit-hcl", false, "Also write launch.hcl")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "Reject process names that need correction")
	buildCmd.Flags().Int64Var(&buildMaxSize, "max-size", 0, "Maximum Procfile size in bytes (0 = unlimited)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	_, err = buildpack.Build(buildpack.Config{
		AppDir:    args[0],
		LayersDir: args[1],
		MaxSize:   buildMaxSize,
		Parser: parser.Options{
			Strict:  buildStrict,
			EmitHCL: buildEmitHCL,
			Logger:  log,
		},
	}, newDisplay(cmd))
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	return nil
}
