package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/token"
	"github.com/smack0007/bigc/pkg/bigc"
	"github.com/spf13/cobra"
)

// CompileOptions is the result of parsing the compile subcommand's raw
// argument list.
type CompileOptions struct {
	Debug  bool
	Output string
	Files  []string
}

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file>",
	Short: "Compile a Big program to a target language",
	Long: `Compile reads an entry file and every file it transitively imports,
binds every declaration and reference, and emits one of the supported
target languages: c (default), cpp, js, or wat.

Examples:
  bigc compile --output ./output.c ./input.big
  bigc compile -o ./out/output.c ./src/input.big
  bigc compile --target wat -o ./out/output.wat ./src/input.big`,
	DisableFlagParsing: true,
	RunE:               runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, rawArgs []string) error {
	args, targetArg, err := splitTargetFlag(rawArgs)
	if err != nil {
		return err
	}

	opts, cerr := parseCompileArgs(args)
	if cerr != nil {
		return cerr
	}

	target, ok := parseTarget(targetArg)
	if !ok {
		return fmt.Errorf("unknown target %q (want c, cpp, js, or wat)", targetArg)
	}

	for _, file := range opts.Files {
		output, errs := bigc.Compile(file, target)
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Format())
			}
			return fmt.Errorf("compilation failed for %s", file)
		}

		if opts.Output == "" {
			fmt.Print(output)
			continue
		}
		if err := os.WriteFile(opts.Output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", opts.Output, err)
		}
		if opts.Debug {
			fmt.Fprintf(os.Stderr, "Compiled %s -> %s (%s)\n", file, opts.Output, target)
		}
	}

	return nil
}

// splitTargetFlag pulls a --target/-t VALUE pair out of rawArgs before the
// rest is handed to parseCompileArgs, since --target isn't part of the
// documented argument-parser scenarios and shouldn't affect their error
// semantics.
func splitTargetFlag(rawArgs []string) (rest []string, target string, err error) {
	target = "c"
	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]
		if arg == "--target" || arg == "-t" {
			if i+1 >= len(rawArgs) {
				return nil, "", fmt.Errorf("missing value for %s", arg)
			}
			target = rawArgs[i+1]
			i++
			continue
		}
		rest = append(rest, arg)
	}
	return rest, target, nil
}

func parseTarget(name string) (bigc.Target, bool) {
	switch strings.ToLower(name) {
	case "c":
		return bigc.TargetC, true
	case "cpp", "c++":
		return bigc.TargetCPP, true
	case "js", "javascript":
		return bigc.TargetJS, true
	case "wat", "wasm":
		return bigc.TargetWat, true
	default:
		return 0, false
	}
}

// parseCompileArgs parses a raw, un-flag-split argument list into a
// CompileOptions. It recognizes --output/-o VALUE and --debug; anything
// else starting with "-" is an UnknownOption error, and a final positional
// list that ends up empty is a NoInputFiles error.
func parseCompileArgs(args []string) (*CompileOptions, *bigerrors.CompilerError) {
	opts := &CompileOptions{}
	var files []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug":
			opts.Debug = true

		case arg == "--output" || arg == "-o":
			i++
			if i >= len(args) {
				return nil, bigerrors.New(bigerrors.NoInputFiles, token.Position{}, "missing value for "+arg)
			}
			opts.Output = args[i]

		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, bigerrors.New(bigerrors.UnknownOption, token.Position{}, "unknown option "+arg)

		default:
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		return nil, bigerrors.New(bigerrors.NoInputFiles, token.Position{}, "no input files")
	}

	opts.Files = files
	return opts, nil
}
