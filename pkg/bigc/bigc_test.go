package bigc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smack0007/bigc/pkg/bigc"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile(%s) error = %v", path, err)
	}
	return path
}

func TestCompileToEachTarget(t *testing.T) {
	dir := t.TempDir()
	entry := writeTempFile(t, dir, "main.big", `func main(): int32 { return 0; }`)

	targets := []bigc.Target{bigc.TargetC, bigc.TargetCPP, bigc.TargetJS, bigc.TargetWat}
	for _, target := range targets {
		t.Run(target.String(), func(t *testing.T) {
			out, errs := bigc.Compile(entry, target)
			if len(errs) != 0 {
				t.Fatalf("Compile() errs = %v", errs)
			}
			if out == "" {
				t.Fatalf("Compile() returned empty output for target %s", target)
			}
		})
	}
}

func TestCompileWithImport(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "util.big", `export func add(a: int32, b: int32): int32 { return a + b; }`)
	entry := writeTempFile(t, dir, "main.big", `
import util "util.big";

func main(): int32 {
	return util.add(1, 2);
}
`)

	out, errs := bigc.Compile(entry, bigc.TargetC)
	if len(errs) != 0 {
		t.Fatalf("Compile() errs = %v", errs)
	}
	if !strings.Contains(out, "add") {
		t.Fatalf("expected emitted output to reference add(), got:\n%s", out)
	}
}

func TestCompileReportsParseError(t *testing.T) {
	dir := t.TempDir()
	entry := writeTempFile(t, dir, "main.big", `func main(: int32 { return 0; }`)

	_, errs := bigc.Compile(entry, bigc.TargetC)
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for malformed source")
	}
}

func TestCompileReportsMissingSymbol(t *testing.T) {
	dir := t.TempDir()
	entry := writeTempFile(t, dir, "main.big", `
func main(): int32 {
	return undeclared;
}
`)

	_, errs := bigc.Compile(entry, bigc.TargetC)
	if len(errs) == 0 {
		t.Fatalf("expected a binder error for an undeclared reference")
	}
}

func TestParseExposesUnboundProgram(t *testing.T) {
	dir := t.TempDir()
	entry := writeTempFile(t, dir, "main.big", `func main(): int32 { return 0; }`)

	prog, err := bigc.Parse(entry)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.SourceFiles) != 1 {
		t.Fatalf("len(SourceFiles) = %d, want 1", len(prog.SourceFiles))
	}
}

func TestTargetString(t *testing.T) {
	tests := map[bigc.Target]string{
		bigc.TargetC:   "c",
		bigc.TargetCPP: "cpp",
		bigc.TargetJS:  "js",
		bigc.TargetWat: "wat",
	}
	for target, want := range tests {
		if got := target.String(); got != want {
			t.Errorf("Target(%d).String() = %q, want %q", target, got, want)
		}
	}
}
