package binder_test

import (
	"path/filepath"
	"testing"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/binder"
	"github.com/smack0007/bigc/internal/parser"
)

func canonicalize(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return filepath.Clean(abs)
}

func readerFor(files map[string]string) parser.FileReader {
	canon := make(map[string]string, len(files))
	for k, v := range files {
		canon[canonicalize(k)] = v
	}
	return func(absPath string) (string, error) {
		if src, ok := canon[absPath]; ok {
			return src, nil
		}
		return "", errNotFound{absPath}
	}
}

type errNotFound struct{ path string }

func (e errNotFound) Error() string { return "no such file: " + e.path }

func bindFiles(t *testing.T, files map[string]string, entry string) (*ast.Program, *bigerrors.CompilerError) {
	t.Helper()
	prog, err := parser.ParseProgram(entry, readerFor(files), canonicalize)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	return prog, binder.Program(prog)
}

func TestProgramBindsSimpleFunc(t *testing.T) {
	files := map[string]string{
		"main.big": `func main(): int32 { return 0; }`,
	}
	prog, err := bindFiles(t, files, "main.big")
	if err != nil {
		t.Fatalf("Program() error = %v", err)
	}

	sf := prog.SourceFiles[canonicalize("main.big")]
	decl := sf.Statements[0].(*ast.FuncDeclaration)
	if decl.Symbol == nil {
		t.Fatalf("expected main's FuncDeclaration to have a Symbol")
	}
	if decl.Symbol.Flags != ast.FlagFunction {
		t.Fatalf("expected FlagFunction, got %v", decl.Symbol.Flags)
	}
}

// TestProgramBindsCrossFileForwardReference is a regression test for a bug
// where declareTopLevel and bindTopLevelBody ran file-by-file instead of
// phase-by-phase: main.big references util.big's add export, which only
// resolves if every file's declarations exist before any file's body is
// bound. util.big sorts after main.big, so a naive single-pass-per-file
// walk in map order would sometimes bind main's body before util's add
// was declared.
func TestProgramBindsCrossFileForwardReference(t *testing.T) {
	files := map[string]string{
		"main.big": `
import util "util.big";

func main(): int32 {
	return util.add(1, 2);
}
`,
		"util.big": `
export func add(a: int32, b: int32): int32 {
	return a + b;
}
`,
	}
	prog, err := bindFiles(t, files, "main.big")
	if err != nil {
		t.Fatalf("Program() error = %v", err)
	}

	mainFile := prog.SourceFiles[canonicalize("main.big")]
	mainDecl := mainFile.Statements[1].(*ast.FuncDeclaration)
	ret := mainDecl.Body.Statements[0].(*ast.ReturnStatement)
	call := ret.Value.(*ast.CallExpression)
	callee := call.Callee.(*ast.PropertyAccessExpression)

	if callee.Symbol == nil {
		t.Fatalf("expected util.add() call to resolve to util.big's export")
	}
	if callee.Symbol.SourceFileName != canonicalize("util.big") {
		t.Fatalf("expected add's symbol to be declared in util.big, got %s", callee.Symbol.SourceFileName)
	}
}

func TestProgramReportsMissingSymbol(t *testing.T) {
	files := map[string]string{
		"main.big": `
func main(): int32 {
	return undeclared;
}
`,
	}
	_, err := bindFiles(t, files, "main.big")
	if err == nil {
		t.Fatalf("expected a MissingSymbol error")
	}
	if err.Kind != bigerrors.MissingSymbol {
		t.Fatalf("expected MissingSymbol, got %v", err.Kind)
	}
}

func TestProgramBindsStructMemberAccess(t *testing.T) {
	files := map[string]string{
		"main.big": `
struct Point {
	x: int32;
	y: int32;
}

func main(): int32 {
	var p: Point = { x: 1, y: 2 };
	return p.x;
}
`,
	}
	prog, err := bindFiles(t, files, "main.big")
	if err != nil {
		t.Fatalf("Program() error = %v", err)
	}

	sf := prog.SourceFiles[canonicalize("main.big")]
	mainDecl := sf.Statements[1].(*ast.FuncDeclaration)
	ret := mainDecl.Body.Statements[1].(*ast.ReturnStatement)
	access := ret.Value.(*ast.PropertyAccessExpression)
	if access.Symbol == nil {
		t.Fatalf("expected p.x to resolve to Point's x member")
	}
	if access.Symbol.Flags != ast.FlagStructMember {
		t.Fatalf("expected FlagStructMember, got %v", access.Symbol.Flags)
	}
}

func TestProgramBindingIsIdempotent(t *testing.T) {
	files := map[string]string{
		"main.big": `func main(): int32 { return 0; }`,
	}
	prog, err := parser.ParseProgram("main.big", readerFor(files), canonicalize)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}

	if err := binder.Program(prog); err != nil {
		t.Fatalf("first Program() error = %v", err)
	}
	sf := prog.SourceFiles[canonicalize("main.big")]
	first := sf.Statements[0].(*ast.FuncDeclaration).Symbol

	if err := binder.Program(prog); err != nil {
		t.Fatalf("second Program() error = %v", err)
	}
	second := sf.Statements[0].(*ast.FuncDeclaration).Symbol

	if first != second {
		t.Fatalf("expected re-binding to leave the existing Symbol untouched")
	}
}

// TestProgramRebindResolvesReferences re-binds a program whose bodies
// actually reference declared names. Phase 1 hands every scope node a fresh
// Locals table on each pass, so the second pass must re-register every
// surviving symbol or the references below would report MissingSymbol.
func TestProgramRebindResolvesReferences(t *testing.T) {
	files := map[string]string{
		"main.big": `
import util "util.big";

var limit: int32 = 10;

func main(): int32 {
	var x: int32 = limit;
	return x + util.add(x, limit);
}
`,
		"util.big": `export func add(a: int32, b: int32): int32 { return a + b; }`,
	}
	prog, err := parser.ParseProgram("main.big", readerFor(files), canonicalize)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}

	if err := binder.Program(prog); err != nil {
		t.Fatalf("first Program() error = %v", err)
	}
	if err := binder.Program(prog); err != nil {
		t.Fatalf("second Program() error = %v", err)
	}

	mainFile := prog.SourceFiles[canonicalize("main.big")]
	mainDecl := mainFile.Statements[2].(*ast.FuncDeclaration)
	varDecl := mainDecl.Body.Statements[0].(*ast.VariableDeclaration)
	init := varDecl.Initializer.(*ast.Identifier)
	if init.Symbol == nil || init.Symbol.Name != "limit" {
		t.Fatalf("expected limit reference to stay bound after re-binding, got %+v", init.Symbol)
	}
}
