package parser

import (
	"path/filepath"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
)

// resolveImport computes decl's absolute ResolvedFileName and recurses into
// Session.parseFile for it. Constructing the Module symbol is left to the
// binder; resolveImport only resolves the path and ensures the target file
// parses. An absolute import path is used as-is (after canonicalization); a
// relative path is joined against the directory of the file containing the
// import.
func (p *Parser) resolveImport(decl *ast.ImportDeclaration) *bigerrors.CompilerError {
	var target string
	if filepath.IsAbs(decl.Path) {
		target = p.sess.canonicalize(decl.Path)
	} else {
		target = p.sess.canonicalize(filepath.Join(filepath.Dir(p.fileName), decl.Path))
	}

	if _, err := p.sess.parseFile(target); err != nil {
		return err
	}

	decl.ResolvedFileName = target
	return nil
}
