package main

import (
	"fmt"
	"os"

	"github.com/aril-lang/arilc/cmd/arilc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
