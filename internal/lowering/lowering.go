// Package lowering desugars DeferStatements out of the AST before the
// binder and emitters run. A deferred call is spliced back into its
// enclosing StatementBlock, in reverse declaration order, immediately
// before the block's trailing return (or at the end of the block, if it
// has none). Lowering runs per function body and recurses into nested
// blocks reachable through if/while statements.
package lowering

import "github.com/smack0007/bigc/internal/ast"

// Program lowers every FuncDeclaration body in prog in place.
func Program(prog *ast.Program) {
	for _, sf := range prog.SourceFiles {
		File(sf)
	}
}

// File lowers every FuncDeclaration body declared directly in sf.
func File(sf *ast.SourceFile) {
	for _, stmt := range sf.Statements {
		if fn, ok := stmt.(*ast.FuncDeclaration); ok && fn.Body != nil {
			block(fn.Body)
		}
	}
}

// statement recurses into the nested blocks a single statement may carry,
// without itself being a desugaring target.
func statement(s ast.Statement) {
	switch st := s.(type) {
	case *ast.StatementBlock:
		block(st)
	case *ast.IfStatement:
		statement(st.Then)
		if st.Else != nil {
			statement(st.Else)
		}
	case *ast.WhileStatement:
		statement(st.Body)
	}
}

// block removes every DeferStatement directly inside b, recurses into any
// remaining nested blocks, then splices the deferred calls back in
// reverse order just before a trailing return.
func block(b *ast.StatementBlock) {
	var defers []*ast.DeferStatement
	rest := make([]ast.Statement, 0, len(b.Statements))

	for _, stmt := range b.Statements {
		if d, ok := stmt.(*ast.DeferStatement); ok {
			defers = append(defers, d)
			continue
		}
		statement(stmt)
		rest = append(rest, stmt)
	}

	if len(defers) == 0 {
		b.Statements = rest
		return
	}

	deferred := make([]ast.Statement, len(defers))
	for i, d := range defers {
		deferred[len(defers)-1-i] = ast.NewExpressionStatement(d.Pos(), d.Call)
	}

	if n := len(rest); n > 0 {
		if _, ok := rest[n-1].(*ast.ReturnStatement); ok {
			out := make([]ast.Statement, 0, n+len(deferred))
			out = append(out, rest[:n-1]...)
			out = append(out, deferred...)
			out = append(out, rest[n-1])
			b.Statements = out
			return
		}
	}

	b.Statements = append(rest, deferred...)
}
