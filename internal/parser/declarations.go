package parser

import (
	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/token"
)

// parseTopLevel implements `SourceFile := TopLevelStmt* EOF`.
func (p *Parser) parseTopLevel() ([]ast.Statement, *bigerrors.CompilerError) {
	var stmts []ast.Statement
	for !p.isEOF() {
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseTopLevelStatement implements:
//
//	TopLevelStmt := ['export'] (Import | Var | Func | Struct | Enum)
func (p *Parser) parseTopLevelStatement() (ast.Statement, *bigerrors.CompilerError) {
	exported := p.match(token.Export)

	switch {
	case p.check(token.Import):
		return p.parseImport(exported)
	case p.check(token.Var):
		return p.parseVarDeclaration(exported)
	case p.check(token.Func):
		return p.parseFuncDeclaration(exported)
	case p.check(token.Struct):
		return p.parseStructDeclaration(exported)
	case p.check(token.Enum):
		return p.parseEnumDeclaration(exported)
	default:
		got := p.peek()
		return nil, bigerrors.New(bigerrors.UnknownTopLevelStatement, got.Pos, "unexpected token "+got.Type.String()+" at top level")
	}
}

// parseImport implements `Import := 'import' [Identifier] StringLiteral`
// and resolves/recurses into the referenced file (see imports.go).
func (p *Parser) parseImport(exported bool) (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'import'

	var alias *ast.Identifier
	if p.check(token.Identifier) {
		tok := p.advance()
		alias = ast.NewIdentifier(tok.Pos, tok.Text)
	}

	pathTok, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}

	p.match(token.Semicolon)

	decl := ast.NewImportDeclaration(pos, alias, pathTok.Text, exported)
	if err := p.resolveImport(decl); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseVarDeclaration implements `Var := 'var' Identifier ':' Type ['=' Expression] ';'`.
func (p *Parser) parseVarDeclaration(exported bool) (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'var'

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)

	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var init ast.Expression
	if p.match(token.Assign) {
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.NewVariableDeclaration(pos, name, typ, init, exported), nil
}

// parseFuncDeclaration implements `Func := 'func' Identifier '(' ArgList ')' ':' Type Block`.
func (p *Parser) parseFuncDeclaration(exported bool) (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'func'

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewFuncDeclaration(pos, name, args, retType, body, exported), nil
}

// parseArgList parses a comma-separated `name: Type` list up to (but not
// consuming) the closing ')'.
func (p *Parser) parseArgList() ([]*ast.FuncArgument, *bigerrors.CompilerError) {
	var args []*ast.FuncArgument
	if p.check(token.RParen) {
		return args, nil
	}
	for {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.NewFuncArgument(nameTok.Pos, name, typ))
		if !p.match(token.Comma) {
			break
		}
	}
	return args, nil
}

// parseStructDeclaration implements `Struct := 'struct' Identifier '{' StructMember* '}'`.
func (p *Parser) parseStructDeclaration(exported bool) (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'struct'

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var members []*ast.StructMember
	for !p.check(token.RBrace) && !p.isEOF() {
		memberTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		memberName := ast.NewIdentifier(memberTok.Pos, memberTok.Text)
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.match(token.Semicolon)
		members = append(members, ast.NewStructMember(memberTok.Pos, memberName, typ))
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return ast.NewStructDeclaration(pos, name, members, exported), nil
}

// parseEnumDeclaration implements `Enum := 'enum' Identifier '{' EnumMember* '}'`,
// with comma-separated members.
func (p *Parser) parseEnumDeclaration(exported bool) (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'enum'

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var members []*ast.EnumMember
	for !p.check(token.RBrace) && !p.isEOF() {
		memberTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		members = append(members, ast.NewEnumMember(memberTok.Pos, ast.NewIdentifier(memberTok.Pos, memberTok.Text)))
		if !p.match(token.Comma) {
			break
		}
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return ast.NewEnumDeclaration(pos, name, members, exported), nil
}
