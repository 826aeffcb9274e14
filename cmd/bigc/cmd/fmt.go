package cmd

import (
	"fmt"
	"os"

	"github.com/smack0007/bigc/internal/printer"
	"github.com/smack0007/bigc/pkg/bigc"
	"github.com/spf13/cobra"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format Big source files",
	Long: `fmt parses each file named on the command line, along with every file
it imports, and re-emits just that file as canonical Big source.

  bigc fmt file.big          format to stdout
  bigc fmt -w file.big       overwrite the file with its formatted form
  bigc fmt -l *.big          list files whose formatting would change
  bigc fmt -d file.big       show a line-by-line diff instead of rewriting`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display a diff instead of rewriting files")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	hasErrors := false
	for _, filename := range args {
		if err := formatFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", filename, err)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	original := string(src)

	prog, perr := bigc.Parse(filename)
	if perr != nil {
		return fmt.Errorf("%s", perr.Format())
	}
	formatted := printer.Print(prog.Entry())

	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}

	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", filename)
			fmt.Printf("+++ %s (formatted)\n", filename)
			showDiff(original, formatted)
		}

	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("error writing file: %w", err)
			}
		}

	default:
		fmt.Print(formatted)
	}

	return nil
}

func showDiff(original, formatted string) {
	origLines := splitLines(original)
	fmtLines := splitLines(formatted)

	max := len(origLines)
	if len(fmtLines) > max {
		max = len(fmtLines)
	}

	for i := 0; i < max; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine == fmtLine {
			continue
		}
		if origLine != "" {
			fmt.Printf("- %s\n", origLine)
		}
		if fmtLine != "" {
			fmt.Printf("+ %s\n", fmtLine)
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
