// Package parser implements a recursive-descent parser with Pratt-style
// precedence climbing for expressions. The parser for the entry file
// recursively invokes itself on each import target (see imports.go). All
// parser state is local to a per-file Parser value; the only cross-file
// state is the Session's Program.SourceFiles map.
package parser

import (
	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/lexer"
	"github.com/smack0007/bigc/internal/token"
)

// FileReader reads the complete contents of a source file given an
// already-resolved, canonicalized absolute path. The CLI driver backs this
// with os.ReadFile; tests back it with an in-memory map.
type FileReader func(absPath string) (string, error)

// Session tracks the state shared across every file visited while parsing
// one Program: the sourceFiles map and the file reader. It is the only
// mutable state shared across per-file Parser instances.
type Session struct {
	program      *ast.Program
	readFile     FileReader
	canonicalize func(path string) string
}

// ParseProgram parses entryFileName and every file it transitively
// imports, returning the resulting Program. The first error encountered in
// any file aborts the whole parse.
func ParseProgram(entryFileName string, readFile FileReader, canonicalize func(string) string) (*ast.Program, *bigerrors.CompilerError) {
	entryAbs := canonicalize(entryFileName)
	sess := &Session{
		program:      ast.NewProgram(entryAbs),
		readFile:     readFile,
		canonicalize: canonicalize,
	}
	if _, err := sess.parseFile(entryAbs); err != nil {
		return nil, err
	}
	return sess.program, nil
}

// parseFile resolves absPath against the memoization table before parsing.
// Inserting the (not yet populated) SourceFile into the map before
// descending into its own imports is what makes diamond imports resolve to
// a single shared node; it is also why an import cycle does not infinite
// loop — it instead resolves to a partially-populated SourceFile. Cycle
// detection is deliberately not performed (see DESIGN.md).
func (s *Session) parseFile(absPath string) (*ast.SourceFile, *bigerrors.CompilerError) {
	if sf, ok := s.program.SourceFiles[absPath]; ok {
		return sf, nil
	}

	content, ioErr := s.readFile(absPath)
	if ioErr != nil {
		return nil, bigerrors.New(bigerrors.Unknown, token.Position{}, "cannot read "+absPath+": "+ioErr.Error())
	}

	sf := ast.NewSourceFile(absPath, nil)
	s.program.SourceFiles[absPath] = sf

	tokens := lexer.Scan(content)
	p := newParser(tokens, absPath, s)
	stmts, perr := p.parseTopLevel()
	if perr != nil {
		delete(s.program.SourceFiles, absPath)
		return nil, perr
	}

	sf.Statements = stmts
	return sf, nil
}

// Parser holds the state needed to parse a single file's token stream.
type Parser struct {
	tokens   []token.Token
	pos      int
	fileName string
	sess     *Session
}

func newParser(tokens []token.Token, fileName string, sess *Session) *Parser {
	return &Parser{tokens: tokens, fileName: fileName, sess: sess}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.isEOF() {
		p.pos++
	}
	return tok
}

// isEOF reports whether the cursor is at or past the end of the sequence.
func (p *Parser) isEOF() bool {
	return p.peek().Type == token.EOF
}

// check reports whether the current token has type t, without consuming it.
func (p *Parser) check(t token.Type) bool {
	return p.peek().Type == t
}

// match advances and returns true if the current token's type is any of
// types; otherwise it leaves the cursor untouched and returns false.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, otherwise it
// produces an UnexpectedTokenType error.
func (p *Parser) expect(t token.Type) (token.Token, *bigerrors.CompilerError) {
	if p.check(t) {
		return p.advance(), nil
	}
	got := p.peek()
	return token.Token{}, bigerrors.New(
		bigerrors.UnexpectedTokenType,
		got.Pos,
		"expected "+t.String()+" but found "+got.Type.String(),
	)
}
