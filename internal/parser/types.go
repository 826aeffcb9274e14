package parser

import (
	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/token"
)

// parseType implements:
//
//	Type := '*' Type | '[' ']' Type | Identifier ['.' Identifier]
func (p *Parser) parseType() (ast.TypeExpr, *bigerrors.CompilerError) {
	if p.check(token.Star) {
		pos := p.advance().Pos
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewPointerType(pos, inner), nil
	}

	if p.check(token.LBracket) {
		pos := p.advance().Pos
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(pos, elem), nil
	}

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)

	if p.match(token.Dot) {
		rightTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		right := ast.NewIdentifier(rightTok.Pos, rightTok.Text)
		return ast.NewTypeReference(nameTok.Pos, name, right), nil
	}

	return ast.NewTypeReference(nameTok.Pos, nil, name), nil
}
