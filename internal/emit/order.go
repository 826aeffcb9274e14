package emit

import (
	"sort"

	"github.com/smack0007/bigc/internal/ast"
)

// FilesInOrder returns every SourceFile in prog in a deterministic order:
// the entry file first, then every transitively imported file sorted by
// its canonical path. Each of the four emitters walks the whole program
// this way rather than just the entry file, so that a struct or function
// defined in an imported module actually appears in the emitted output.
func FilesInOrder(prog *ast.Program) []*ast.SourceFile {
	rest := make([]string, 0, len(prog.SourceFiles))
	for name := range prog.SourceFiles {
		if name != prog.EntryFileName {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	files := make([]*ast.SourceFile, 0, len(prog.SourceFiles))
	if entry := prog.Entry(); entry != nil {
		files = append(files, entry)
	}
	for _, name := range rest {
		files = append(files, prog.SourceFiles[name])
	}
	return files
}
