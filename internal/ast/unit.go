package ast

import "github.com/smack0007/bigc/internal/token"

// SourceFile is the root node produced by parsing a single file. It is a
// scope node: Locals records every top-level name declared in the file,
// and Exports is the subset marked `export`.
type SourceFile struct {
	base
	scope
	FileName   string
	Statements []Statement
	Exports    SymbolTable
}

func NewSourceFile(fileName string, statements []Statement) *SourceFile {
	sf := &SourceFile{
		base:       base{kind: KindSourceFile, pos: token.Position{Line: 1, Column: 1}},
		FileName:   fileName,
		Statements: statements,
		Exports:    NewSymbolTable(),
	}
	return sf
}

// Program is the whole compilation unit: the entry file plus every file
// transitively reachable through ImportDeclarations, keyed by canonicalized
// absolute path.
type Program struct {
	EntryFileName string
	SourceFiles   map[string]*SourceFile
}

func NewProgram(entryFileName string) *Program {
	return &Program{EntryFileName: entryFileName, SourceFiles: make(map[string]*SourceFile)}
}

// Entry returns the SourceFile for the program's entry point.
func (p *Program) Entry() *SourceFile {
	return p.SourceFiles[p.EntryFileName]
}
