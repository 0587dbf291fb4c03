package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/procfile-cnb/parser/internal/display"
	"github.com/procfile-cnb/parser/internal/logger"
)

var (
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "procfile",
	Short: "Procfile buildpack tooling",
	Long: `procfile parses Procfiles and turns them into launch metadata.

Commands:
  detect   - exit 0 when the app has a Procfile, 100 otherwise
  build    - write launch.toml for the app's Procfile
  check    - parse a Procfile and print the result
  formats  - list output formats for check`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	var ee *exitError
	if err != nil && !errors.As(err, &ee) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func newLogger() (*slog.Logger, error) {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(level), nil
}

func newDisplay(cmd *cobra.Command) *display.Writer {
	if noColor {
		return display.NewPlain(cmd.OutOrStdout())
	}
	return display.New(cmd.OutOrStdout())
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
