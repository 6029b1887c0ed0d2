// Package cmd implements the arilc CLI surface described in spec §6: a
// <source-file> argument and a persistent --config flag, with exit codes
// 0 (success), ExitOpts (option parse failure), or nonzero (any
// diagnostic). There is no --print-ir flag: the IR dump is the `dump-ir`
// subcommand, and the config file's printIR setting makes `check` print it
// too. Grounded on the teacher's cmd/dwscript/cmd package: one
// cobra.Command per subcommand registered from its own init, a shared
// rootCmd carrying version info and persistent flags.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Exit codes. ExitOpts matches spec §6's named option-parse-failure code;
// ExitDiagnostics is "nonzero on any diagnostic" given its own distinct
// value so scripts can tell the two failure modes apart.
const (
	ExitOK = iota
	ExitOpts
	ExitDiagnostics
)

// errDiagnostics is returned by a subcommand's RunE when the compilation
// itself ran to completion but reported one or more diagnostics.
var errDiagnostics = errors.New("compilation reported diagnostics")

// ExitCode maps an error returned from Execute to the process exit code
// spec §6 requires.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errDiagnostics):
		return ExitDiagnostics
	default:
		return ExitOpts
	}
}

var (
	version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "arilc",
	Short:   "Semantic analysis core for the Aril compiler front end",
	Version: version,
	SilenceUsage: true,
}

// Execute runs the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "arilc.yaml", "path to the project config file")
}
