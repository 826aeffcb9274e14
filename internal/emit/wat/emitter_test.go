package wat_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/smack0007/bigc/internal/binder"
	"github.com/smack0007/bigc/internal/emit/wat"
	"github.com/smack0007/bigc/internal/lowering"
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

func compileTo(t *testing.T, files map[string]string, entry string) string {
	t.Helper()
	prog, err := parser.ParseProgram(entry, readerFor(files), canonicalize)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	lowering.Program(prog)
	if err := binder.Program(prog); err != nil {
		t.Fatalf("binder.Program() error = %v", err)
	}
	return wat.Emit(prog)
}

// TestEmitGreetPrintln pins the minimal end-to-end shape: the module
// header importing env.println, a data directive for "hi", and a call to
// $println with the offset/length pair, followed by the return.
func TestEmitGreetPrintln(t *testing.T) {
	files := map[string]string{
		"main.big": `func greet(): int32 { println("hi"); return 0; }`,
	}
	out := compileTo(t, files, "main.big")

	headerIdx := strings.Index(out, `(import "env" "println" (func $println (param i32 i32)))`)
	dataIdx := strings.Index(out, `(data (i32.const 0) "hi")`)
	callIdx := strings.Index(out, "(call $println (i32.const 0) (i32.const 2))")
	returnIdx := strings.Index(out, "(return (i32.const 0))")

	if headerIdx == -1 || dataIdx == -1 || callIdx == -1 || returnIdx == -1 {
		t.Fatalf("missing expected fragment in output:\n%s", out)
	}
	if !(headerIdx < dataIdx && dataIdx < callIdx && callIdx < returnIdx) {
		t.Fatalf("fragments out of order in output:\n%s", out)
	}

	snaps.MatchSnapshot(t, "greet_println", out)
}

func TestEmitWhileLoop(t *testing.T) {
	files := map[string]string{
		"main.big": `
func sumTo(n: int32): int32 {
	var total: int32 = 0;
	var i: int32 = 0;
	while (i < n) {
		total += i;
		i += 1;
	}
	return total;
}
`,
	}
	out := compileTo(t, files, "main.big")
	snaps.MatchSnapshot(t, "while_loop", out)
}

func TestEmitStringTableOffsets(t *testing.T) {
	files := map[string]string{
		"main.big": `
func main(): int32 {
	println("ab");
	println("cde");
	return 0;
}
`,
	}
	out := compileTo(t, files, "main.big")
	if !strings.Contains(out, `(data (i32.const 0) "ab")`) {
		t.Fatalf(`expected offset 0 for "ab":\n%s`, out)
	}
	if !strings.Contains(out, `(data (i32.const 2) "cde")`) {
		t.Fatalf(`expected offset 2 for "cde" (sum of preceding lengths):\n%s`, out)
	}
	snaps.MatchSnapshot(t, "string_table_offsets", out)
}
