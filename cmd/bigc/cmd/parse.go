package cmd

import (
	"fmt"
	"os"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/pkg/bigc"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Big program and print its AST",
	Long: `parse reads the entry file and every file it transitively imports and
prints a dump of the resulting AST, one node kind per line. It is useful
for debugging the parser; the printed tree does not yet carry binder
information, since parse stops before binding.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]

	prog, err := bigc.Parse(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Format())
		return fmt.Errorf("parsing failed for %s", filename)
	}

	entry := prog.Entry()
	dumpStatements(entry.Statements, 0)
	return nil
}

func dumpStatements(stmts []ast.Statement, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	for _, stmt := range stmts {
		fmt.Printf("%s%s\n", indent, stmt.Kind())
		if block, ok := stmt.(*ast.StatementBlock); ok {
			dumpStatements(block.Statements, depth+1)
		}
		if fn, ok := stmt.(*ast.FuncDeclaration); ok && fn.Body != nil {
			dumpStatements(fn.Body.Statements, depth+1)
		}
	}
}
