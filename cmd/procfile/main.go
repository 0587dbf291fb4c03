package main

import (
	"os"

	"github.com/procfile-cnb/parser/cmd/procfile/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
