package parser

import (
	"strconv"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
	"github.com/smack0007/bigc/internal/token"
)

// parseExpression is the entry point into the precedence chain:
//
//	Expression := Assignment
//	Assignment := LogicalOr [('=' | '+=' | '-=' | '*=' | '/=') Assignment]
//	LogicalOr   := LogicalAnd ('||' LogicalAnd)*
//	LogicalAnd  := Equality ('&&' Equality)*
//	Equality    := Comparison (('==' | '!=') Comparison)*
//	Comparison  := Additive [('<' | '<=' | '>' | '>=') Additive]
//	Additive    := Multiplicative [('+' | '-') Additive]
//	Multiplicative := Unary [('*' | '/') Multiplicative]
//	Unary       := ('&' | '*' | '!' | '-') Unary | Postfix
//	Postfix     := Primary (Call | Index | Property)*
//
// Comparison is intentionally NOT left-folded into a loop: the grammar
// allows only a single comparison operator per expression, so comparisons
// do not chain. Additive and Multiplicative
// recurse into themselves on the right-hand side rather than looping,
// which means a run of same-precedence operators builds a right-skewed
// tree (`1 - 2 - 3` parses as `1 - (2 - 3)`) — a known, intentionally
// preserved quirk rather than a bug.
func (p *Parser) parseExpression() (ast.Expression, *bigerrors.CompilerError) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	var op ast.Operator
	switch {
	case p.check(token.Assign):
		op = ast.OpAssign
	case p.check(token.PlusAssign):
		op = ast.OpAddAssign
	case p.check(token.MinusAssign):
		op = ast.OpSubAssign
	case p.check(token.StarAssign):
		op = ast.OpMulAssign
	case p.check(token.SlashAssign):
		op = ast.OpDivAssign
	default:
		return left, nil
	}

	pos := p.advance().Pos

	target, ok := left.(*ast.Identifier)
	if !ok {
		return nil, bigerrors.New(bigerrors.InvalidAssignmentTarget, pos, "left-hand side of assignment must be an identifier")
	}

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	return ast.NewAssignmentExpression(pos, target, op, value), nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.BarBar) {
		pos := p.advance().Pos
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogicalExpression(pos, left, ast.OpOr, right)
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(token.AmpAmp) {
		pos := p.advance().Pos
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogicalExpression(pos, left, ast.OpAnd, right)
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Operator
		switch {
		case p.check(token.EqEq):
			op = ast.OpEq
		case p.check(token.NotEq):
			op = ast.OpNotEq
		default:
			return left, nil
		}
		pos := p.advance().Pos
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewEqualityExpression(pos, left, op, right)
	}
}

// parseComparison is a single, non-associative level: at most one
// comparison operator is consumed per call.
func (p *Parser) parseComparison() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	var op ast.Operator
	switch {
	case p.check(token.Less):
		op = ast.OpLess
	case p.check(token.LessEq):
		op = ast.OpLessEq
	case p.check(token.Greater):
		op = ast.OpGreater
	case p.check(token.GreaterEq):
		op = ast.OpGreaterEq
	default:
		return left, nil
	}

	pos := p.advance().Pos
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewComparisonExpression(pos, left, op, right), nil
}

// parseAdditive recurses on its right-hand side instead of looping, so a
// chain of additive operators builds right-skewed (see parseExpression's doc comment).
func (p *Parser) parseAdditive() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	var op ast.Operator
	switch {
	case p.check(token.Plus):
		op = ast.OpAdd
	case p.check(token.Minus):
		op = ast.OpSub
	default:
		return left, nil
	}

	pos := p.advance().Pos
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewAdditiveExpression(pos, left, op, right), nil
}

// parseMultiplicative shares parseAdditive's right-recursive quirk.
func (p *Parser) parseMultiplicative() (ast.Expression, *bigerrors.CompilerError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	var op ast.Operator
	switch {
	case p.check(token.Star):
		op = ast.OpMul
	case p.check(token.Slash):
		op = ast.OpDiv
	default:
		return left, nil
	}

	pos := p.advance().Pos
	right, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	return ast.NewMultiplicativeExpression(pos, left, op, right), nil
}

func (p *Parser) parseUnary() (ast.Expression, *bigerrors.CompilerError) {
	var op ast.Operator
	switch {
	case p.check(token.Ampersand):
		op = ast.OpAddressOf
	case p.check(token.Star):
		op = ast.OpDeref
	case p.check(token.Bang):
		op = ast.OpNot
	case p.check(token.Minus):
		op = ast.OpNegate
	default:
		return p.parsePostfix()
	}

	pos := p.advance().Pos
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpression(pos, op, operand), nil
}

// parsePostfix chains call, index, and property-access forms onto a
// primary expression: `a.b[c](d).e` parses left-to-right.
func (p *Parser) parsePostfix() (ast.Expression, *bigerrors.CompilerError) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.check(token.LParen):
			pos := p.advance().Pos
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			expr = ast.NewCallExpression(pos, expr, args)

		case p.check(token.LBracket):
			pos := p.advance().Pos
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			expr = ast.NewElementAccessExpression(pos, expr, index)

		case p.check(token.Dot):
			pos := p.advance().Pos
			nameTok, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)
			expr = ast.NewPropertyAccessExpression(pos, expr, name)

		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses a comma-separated expression list up to (but not
// consuming) the closing ')'.
func (p *Parser) parseCallArgs() ([]ast.Expression, *bigerrors.CompilerError) {
	var args []ast.Expression
	if p.check(token.RParen) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(token.Comma) {
			break
		}
	}
	return args, nil
}

// parsePrimary implements:
//
//	Primary := Int | Float | String | Char | 'true' | 'false' | 'null'
//	         | Identifier | '(' Expression ')' | ArrayLiteral | StructLiteral
func (p *Parser) parsePrimary() (ast.Expression, *bigerrors.CompilerError) {
	tok := p.peek()

	switch tok.Type {
	case token.Int:
		p.advance()
		v, convErr := strconv.ParseInt(tok.Text, 10, 64)
		if convErr != nil {
			return nil, bigerrors.New(bigerrors.Unexpected, tok.Pos, "invalid integer literal "+tok.Text)
		}
		return ast.NewIntegerLiteral(tok.Pos, v), nil

	case token.Float:
		p.advance()
		v, convErr := strconv.ParseFloat(tok.Text, 64)
		if convErr != nil {
			return nil, bigerrors.New(bigerrors.Unexpected, tok.Pos, "invalid float literal "+tok.Text)
		}
		return ast.NewFloatLiteral(tok.Pos, v), nil

	case token.String:
		p.advance()
		return ast.NewStringLiteral(tok.Pos, tok.Text), nil

	case token.Char:
		p.advance()
		return ast.NewCharLiteral(tok.Pos, tok.Text), nil

	case token.True:
		p.advance()
		return ast.NewBooleanLiteral(tok.Pos, true), nil

	case token.False:
		p.advance()
		return ast.NewBooleanLiteral(tok.Pos, false), nil

	case token.Null:
		p.advance()
		return ast.NewNullLiteral(tok.Pos), nil

	case token.Identifier:
		p.advance()
		if tok.Text == "" {
			return nil, bigerrors.New(bigerrors.TokenTextIsNull, tok.Pos, "identifier token has no text")
		}
		return ast.NewIdentifier(tok.Pos, tok.Text), nil

	case token.LParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.NewParenthesizedExpression(tok.Pos, inner), nil

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LBrace:
		return p.parseStructLiteral(nil)

	default:
		return nil, bigerrors.New(bigerrors.UnknownExpression, tok.Pos, "unexpected token "+tok.Type.String()+" in expression")
	}
}

// parseArrayLiteral implements `ArrayLiteral := '[' (Expression (',' Expression)*)? ']'`.
func (p *Parser) parseArrayLiteral() (ast.Expression, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // '['

	var elems []ast.Expression
	for !p.check(token.RBracket) {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if !p.match(token.Comma) {
			break
		}
	}

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}

	return ast.NewArrayLiteralExpression(pos, elems), nil
}

// parseStructLiteral implements
// `StructLiteral := '{' (Identifier ':' Expression (',' Identifier ':' Expression)*)? '}'`.
// typ is nil for an untyped literal.
func (p *Parser) parseStructLiteral(typ ast.TypeExpr) (ast.Expression, *bigerrors.CompilerError) {
	pos := p.peek().Pos
	p.advance() // '{'

	var elems []*ast.StructLiteralElement
	for !p.check(token.RBrace) {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		name := ast.NewIdentifier(nameTok.Pos, nameTok.Text)
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, ast.NewStructLiteralElement(nameTok.Pos, name, value))
		if !p.match(token.Comma) {
			break
		}
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return ast.NewStructLiteralExpression(pos, typ, elems), nil
}
