package parser

import (
	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/token"
)

// parseStatementBlock implements `Block := '{' Statement* '}'`.
func (p *Parser) parseStatementBlock() (*ast.StatementBlock, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for !p.check(token.RBrace) && !p.isEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return ast.NewStatementBlock(pos, stmts), nil
}

// parseStatement implements:
//
//	Statement := Block | IfStmt | WhileStmt | ReturnStmt | DeferStmt
//	           | VarDecl | ExprStmt
func (p *Parser) parseStatement() (ast.Statement, *bigerrors.CompilerError) {
	switch {
	case p.check(token.LBrace):
		return p.parseStatementBlock()
	case p.check(token.If):
		return p.parseIfStatement()
	case p.check(token.While):
		return p.parseWhileStatement()
	case p.check(token.Return):
		return p.parseReturnStatement()
	case p.check(token.Defer):
		return p.parseDeferStatement()
	case p.check(token.Var):
		return p.parseVarDeclaration(false)
	default:
		return p.parseExpressionStatement()
	}
}

// parseIfStatement implements `IfStmt := 'if' '(' Expression ')' Statement ['else' Statement]`.
func (p *Parser) parseIfStatement() (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'if'

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var els ast.Statement
	if p.match(token.Else) {
		els, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIfStatement(pos, cond, then, els), nil
}

// parseWhileStatement implements `WhileStmt := 'while' '(' Expression ')' Statement`.
func (p *Parser) parseWhileStatement() (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'while'

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return ast.NewWhileStatement(pos, cond, body), nil
}

// parseReturnStatement implements `ReturnStmt := 'return' [Expression] ';'`.
func (p *Parser) parseReturnStatement() (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'return'

	var value ast.Expression
	if !p.check(token.Semicolon) {
		var err *bigerrors.CompilerError
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.NewReturnStatement(pos, value), nil
}

// parseDeferStatement implements `DeferStmt := 'defer' Expression ';'`. Any
// expression is accepted; neither the parser nor lowering checks that it is
// a CallExpression.
func (p *Parser) parseDeferStatement() (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // 'defer'

	call, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.NewDeferStatement(pos, call), nil
}

// parseExpressionStatement implements `ExprStmt := Expression ';'`.
func (p *Parser) parseExpressionStatement() (ast.Statement, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.NewExpressionStatement(pos, expr), nil
}
