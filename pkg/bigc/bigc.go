// Package bigc embeds the Big transpiler in a Go program: parse, lower,
// bind, and emit one of the four supported targets without shelling out to
// the bigc command-line tool.
package bigc

import (
	"os"
	"path/filepath"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/binder"
	"github.com/smack0007/bigc/internal/emit/c"
	"github.com/smack0007/bigc/internal/emit/cpp"
	"github.com/smack0007/bigc/internal/emit/js"
	"github.com/smack0007/bigc/internal/emit/wat"
	"github.com/smack0007/bigc/internal/lowering"
	"github.com/smack0007/bigc/internal/parser"
)

// Target names a backend the compiler can emit.
type Target int

const (
	TargetC Target = iota
	TargetCPP
	TargetJS
	TargetWat
)

func (t Target) String() string {
	switch t {
	case TargetC:
		return "c"
	case TargetCPP:
		return "cpp"
	case TargetJS:
		return "js"
	case TargetWat:
		return "wat"
	default:
		return "unknown"
	}
}

// Compile reads entry and every file it transitively imports from disk,
// binds the result, and emits target's text form. A non-nil error slice
// means compilation aborted at whichever phase produced it; the returned
// string is empty in that case. Every phase is fail-fast, so the slice
// currently always holds exactly one error, but callers should range over
// it rather than index [0] in case a future phase starts collecting more.
func Compile(entry string, target Target) (string, []*bigerrors.CompilerError) {
	prog, err := Parse(entry)
	if err != nil {
		return "", []*bigerrors.CompilerError{err}
	}

	lowering.Program(prog)

	if err := binder.Program(prog); err != nil {
		return "", []*bigerrors.CompilerError{err}
	}

	return EmitProgram(prog, target), nil
}

// Parse reads entry and every file it transitively imports from disk and
// returns the resulting (unbound, unlowered) Program. It is exposed for
// callers that only need the AST, such as the lex/parse debug subcommands.
func Parse(entry string) (*ast.Program, *bigerrors.CompilerError) {
	return parser.ParseProgram(entry, readFile, canonicalize)
}

// EmitProgram renders an already-parsed, lowered, and bound program as
// target's text form.
func EmitProgram(prog *ast.Program, target Target) string {
	switch target {
	case TargetC:
		return c.Emit(prog)
	case TargetCPP:
		return cpp.Emit(prog)
	case TargetJS:
		return js.Emit(prog)
	case TargetWat:
		return wat.Emit(prog)
	default:
		return ""
	}
}

func readFile(absPath string) (string, error) {
	content, err := os.ReadFile(absPath)
	return string(content), err
}

func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
