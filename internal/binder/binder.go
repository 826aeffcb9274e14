// Package binder implements the two-phase symbol resolver that attaches
// ast.Symbol metadata to every declaration and reference. Phase 1
// initializes parent pointers and scope tables; phase 2 constructs
// symbols top-down and resolves references by walking the scope chain.
// Binding a program twice is a no-op the second time: every symbol
// attachment is idempotent because it is keyed off whether the target
// field is already non-nil.
package binder

import (
	"sort"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
)

// builtinNames bypasses ordinary binding: println is an ambient function,
// int32 is the one primitive type name.
var builtinNames = map[string]bool{
	"println": true,
	"int32":   true,
}

// Program runs both binder phases over every file in prog, each phase
// spanning the whole program rather than one file at a time: every file's
// top-level declarations (and, critically, its Exports table) must exist
// before any file's bodies are bound, since an ImportDeclaration's Module
// symbol exposes another file's Exports table and a cross-file reference
// may be bound before that file's own declarations are processed (map
// iteration order is not specification-ordered). Files are visited in
// canonical-path order so the first error reported is deterministic. The
// first MissingSymbol (or other) error aborts binding entirely.
func Program(prog *ast.Program) *bigerrors.CompilerError {
	files := filesInOrder(prog)

	for _, sf := range files {
		initFile(sf)
	}

	b := &binder{prog: prog}
	for _, sf := range files {
		for _, stmt := range sf.Statements {
			if err := b.declareTopLevel(sf, stmt); err != nil {
				return err
			}
		}
	}
	for _, sf := range files {
		for _, stmt := range sf.Statements {
			if err := bindTopLevelBody(stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func filesInOrder(prog *ast.Program) []*ast.SourceFile {
	names := make([]string, 0, len(prog.SourceFiles))
	for name := range prog.SourceFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]*ast.SourceFile, 0, len(names))
	for _, name := range names {
		files = append(files, prog.SourceFiles[name])
	}
	return files
}

type binder struct {
	prog *ast.Program
}
