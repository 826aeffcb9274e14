package binder

import (
	"path/filepath"
	"strings"

	"github.com/smack0007/bigc/internal/ast"
)

// enclosingScope returns the nearest ancestor of n that is a ScopeNode, by
// walking parent back-pointers set during phase 1. It never returns nil for
// a properly bound node: every node is reachable from some SourceFile.
func enclosingScope(n ast.Node) ast.ScopeNode {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if sn, ok := cur.(ast.ScopeNode); ok {
			return sn
		}
	}
	return nil
}

// lookup walks the chain of enclosing scopes outward, starting at scope,
// until name is found or the chain is exhausted.
func lookup(name string, scope ast.ScopeNode) *ast.Symbol {
	for s := ast.ScopeNode(scope); s != nil; {
		if sym, ok := s.Locals()[name]; ok {
			return sym
		}
		next := s.NextScope()
		if next == nil {
			return nil
		}
		sn, ok := next.(ast.ScopeNode)
		if !ok {
			return nil
		}
		s = sn
	}
	return nil
}

// rootFile returns the SourceFile at the root of n's parent chain.
func rootFile(n ast.Node) *ast.SourceFile {
	cur := n
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	sf, _ := cur.(*ast.SourceFile)
	return sf
}

// moduleName derives the local binding name for an import: its explicit
// alias if present, otherwise the imported file's base name with its
// extension stripped.
func moduleName(decl *ast.ImportDeclaration) string {
	if decl.Alias != nil {
		return decl.Alias.Value
	}
	base := filepath.Base(decl.ResolvedFileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
