package cpp_test

import (
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/smack0007/bigc/internal/binder"
	"github.com/smack0007/bigc/internal/emit/cpp"
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
	return cpp.Emit(prog)
}

func TestEmitMainReturnsZero(t *testing.T) {
	files := map[string]string{"main.big": `func main(): int32 { return 0; }`}
	out := compileTo(t, files, "main.big")
	snaps.MatchSnapshot(t, "main_returns_zero", out)
}

func TestEmitStructAndEnum(t *testing.T) {
	files := map[string]string{
		"main.big": `
struct Point {
	x: int32;
	y: int32;
}

enum Direction {
	North,
	South,
	East,
	West
}

func main(): int32 {
	var p: Point = { x: 1, y: 2 };
	var d: Direction = Direction.North;
	if (p.x > 0) {
		return p.x;
	} else {
		return p.y;
	}
}
`,
	}
	out := compileTo(t, files, "main.big")
	snaps.MatchSnapshot(t, "struct_and_enum", out)
}
