package printer_test

import (
	"path/filepath"
	"testing"

	"github.com/smack0007/bigc/internal/parser"
	"github.com/smack0007/bigc/internal/printer"
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

func printFile(t *testing.T, src string) string {
	t.Helper()
	files := map[string]string{"main.big": src}
	prog, err := parser.ParseProgram("main.big", readerFor(files), canonicalize)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	return printer.Print(prog.SourceFiles[canonicalize("main.big")])
}

func TestPrintFuncDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "empty return",
			src:      "func main(): int32 { return 0; }",
			expected: "func main(): int32 {\n\treturn 0;\n}\n",
		},
		{
			name:     "exported",
			src:      "export func main(): int32 { return 0; }",
			expected: "export func main(): int32 {\n\treturn 0;\n}\n",
		},
		{
			name:     "args",
			src:      "func add(a: int32, b: int32): int32 { return a + b; }",
			expected: "func add(a: int32, b: int32): int32 {\n\treturn a + b;\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := printFile(t, tt.src)
			if got != tt.expected {
				t.Errorf("Print() =\n%q\nwant\n%q", got, tt.expected)
			}
		})
	}
}

func TestPrintIfElse(t *testing.T) {
	src := `
func sign(x: int32): int32 {
	if (x > 0) {
		return 1;
	} else {
		return 0;
	}
}
`
	want := "func sign(x: int32): int32 {\n" +
		"\tif (x > 0) {\n" +
		"\t\treturn 1;\n" +
		"\t} else {\n" +
		"\t\treturn 0;\n" +
		"\t}\n" +
		"}\n"

	got := printFile(t, src)
	if got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func TestPrintStructAndEnum(t *testing.T) {
	src := `
struct Point {
	x: int32;
	y: int32;
}

enum Color {
	Red,
	Green,
	Blue
}
`
	want := "struct Point {\n" +
		"\tx: int32;\n" +
		"\ty: int32;\n" +
		"}\n\n" +
		"enum Color {\n" +
		"\tRed,\n" +
		"\tGreen,\n" +
		"\tBlue\n" +
		"}\n"

	got := printFile(t, src)
	if got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func TestPrintDeferStatementSurvives(t *testing.T) {
	src := `
func use(): int32 {
	defer close();
	return 0;
}
`
	got := printFile(t, src)
	want := "func use(): int32 {\n" +
		"\tdefer close();\n" +
		"\treturn 0;\n" +
		"}\n"
	if got != want {
		t.Errorf("Print() =\n%q\nwant\n%q\n(printer runs before lowering, so the defer must still be present)", got, want)
	}
}

func TestPrintArrayAndPointerTypes(t *testing.T) {
	src := `
func first(xs: []int32): int32 {
	return xs[0];
}

func deref(p: *int32): int32 {
	return 0;
}
`
	got := printFile(t, src)
	want := "func first(xs: []int32): int32 {\n" +
		"\treturn xs[0];\n" +
		"}\n\n" +
		"func deref(p: *int32): int32 {\n" +
		"\treturn 0;\n" +
		"}\n"
	if got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}
