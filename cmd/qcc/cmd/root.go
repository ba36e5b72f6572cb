package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "qcc",
	Short: "QuakeC parser and semantic analyzer",
	Long: `qcc is the lexer, parser, and semantic analyzer front end for
QuakeC, the scripting language used by id Software's QuakeWorld engines.

It produces a typed abstract syntax tree from QuakeC source: declarations,
field bindings, builtin bindings, and function bodies, with full static
type checking. It does not generate a .dat file — there is no IR builder
or code generator here, only the front end that would feed one.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
