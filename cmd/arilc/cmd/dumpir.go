package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aril-lang/arilc/internal/config"
	"github.com/aril-lang/arilc/internal/driver"
	"github.com/aril-lang/arilc/internal/fixture"
	"github.com/aril-lang/arilc/internal/irdump"
	"github.com/aril-lang/arilc/internal/nametbl"
)

var dumpIRCmd = &cobra.Command{
	Use:   "dump-ir [source-file]",
	Short: "Print the resolved IR as an indented text tree",
	Long: `Runs the semantic core and writes the resulting IR to stdout in the
program.ast text format (spec §6 "Persisted artifacts"). If any diagnostic
was reported the tree printed is whatever the passes produced before
stopping (type-check is skipped entirely once name resolution reports an
error, per spec §5's cancellation rule), so some value-type slots may be
absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDumpIR,
}

func init() {
	rootCmd.AddCommand(dumpIRCmd)
}

func runDumpIR(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	names := nametbl.New()
	mod := fixture.Demo(names)

	result := driver.RunStrict(names, mod, cfg.StrictPermissions, cfg.MaxErrors)
	irdump.Dump(os.Stdout, result.Module)

	if result.Diags.Count() > 0 {
		fmt.Fprint(os.Stderr, result.Diags.Format())
		return errDiagnostics
	}
	return nil
}
