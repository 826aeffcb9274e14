package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bigc",
	Short: "Big source-to-source compiler",
	Long: `bigc compiles a Big program to C, C++, JavaScript, or WebAssembly text.

A Big program is a set of source files: the compiler reads an entry file,
transitively loads its imports, lowers defer statements, resolves every
declaration and reference, and emits one of the four supported targets.`,
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
}
