package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/procfile-cnb/parser/internal/format" // register formatters
	"github.com/procfile-cnb/parser/internal/parser"
	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/source"
)

var (
	checkFormat  string
	checkStrict  bool
	checkMaxSize int64
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Parse a Procfile and print the result",
	Long: `Parse a Procfile (default ./Procfile, - for stdin) and print the
processes in the chosen format. Exits 1 when the Procfile is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format ("+strings.Join(registry.Default.ListSupportedFormats(), ", ")+")")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Reject process names that need correction")
	checkCmd.Flags().Int64Var(&checkMaxSize, "max-size", 0, "Maximum Procfile size in bytes (0 = unlimited)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatter, ok := registry.Default.Get(checkFormat)
	if !ok {
		return fmt.Errorf("unknown format %q (supported: %s)", checkFormat, strings.Join(registry.Default.ListSupportedFormats(), ", "))
	}
	log, err := newLogger()
	if err != nil {
		return err
	}

	path := "Procfile"
	if len(args) == 1 {
		path = args[0]
	}
	var text string
	if path == "-" {
		text, err = source.Decode(cmd.InOrStdin(), checkMaxSize)
	} else {
		text, err = source.Read(path, checkMaxSize)
	}
	if err != nil {
		return err
	}

	opts := parser.DefaultOptions()
	if path != "-" {
		opts.Filename = path
	}
	opts.Strict = checkStrict
	opts.Logger = log
	res, err := parser.New(opts).Parse(text)
	if err != nil {
		return err
	}

	if checkFormat == "text" {
		for _, w := range res.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
		}
	}
	data, err := formatter.Format(res)
	if err != nil {
		return err
	}
	out := io.Writer(cmd.OutOrStdout())
	if !res.Success && checkFormat == "text" {
		out = cmd.ErrOrStderr()
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	if !res.Success {
		return &exitError{code: 1}
	}
	return nil
}
