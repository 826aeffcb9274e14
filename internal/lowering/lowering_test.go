package lowering_test

import (
	"testing"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/lowering"
	"github.com/smack0007/bigc/internal/token"
)

func call(name string) ast.Expression {
	return ast.NewCallExpression(token.Position{}, ast.NewIdentifier(token.Position{}, name), nil)
}

func TestLowerDeferReverseOrderBeforeReturn(t *testing.T) {
	body := ast.NewStatementBlock(token.Position{}, []ast.Statement{
		ast.NewDeferStatement(token.Position{}, call("closeA")),
		ast.NewDeferStatement(token.Position{}, call("closeB")),
		ast.NewExpressionStatement(token.Position{}, call("work")),
		ast.NewReturnStatement(token.Position{}, ast.NewIntegerLiteral(token.Position{}, 0)),
	})
	fn := ast.NewFuncDeclaration(token.Position{}, ast.NewIdentifier(token.Position{}, "main"), nil, nil, body, false)
	sf := ast.NewSourceFile("main.big", []ast.Statement{fn})

	lowering.File(sf)

	if len(body.Statements) != 4 {
		t.Fatalf("len(Statements) = %d, want 4", len(body.Statements))
	}

	closeB := body.Statements[1].(*ast.ExpressionStatement)
	if closeB.Expr.(*ast.CallExpression).Callee.(*ast.Identifier).Value != "closeB" {
		t.Errorf("Statements[1] should be closeB() (reverse order)")
	}
	closeA := body.Statements[2].(*ast.ExpressionStatement)
	if closeA.Expr.(*ast.CallExpression).Callee.(*ast.Identifier).Value != "closeA" {
		t.Errorf("Statements[2] should be closeA() (reverse order)")
	}
	if _, ok := body.Statements[3].(*ast.ReturnStatement); !ok {
		t.Errorf("Statements[3] should remain the trailing return")
	}
}

func TestLowerDeferWithoutTrailingReturnAppendsAtEnd(t *testing.T) {
	body := ast.NewStatementBlock(token.Position{}, []ast.Statement{
		ast.NewDeferStatement(token.Position{}, call("closeA")),
		ast.NewExpressionStatement(token.Position{}, call("work")),
	})
	fn := ast.NewFuncDeclaration(token.Position{}, ast.NewIdentifier(token.Position{}, "main"), nil, nil, body, false)
	sf := ast.NewSourceFile("main.big", []ast.Statement{fn})

	lowering.File(sf)

	if len(body.Statements) != 2 {
		t.Fatalf("len(Statements) = %d, want 2", len(body.Statements))
	}
	if _, ok := body.Statements[1].(*ast.ExpressionStatement); !ok {
		t.Errorf("Statements[1] should be the lowered defer call")
	}
}

func TestLowerRecursesIntoNestedBlocks(t *testing.T) {
	inner := ast.NewStatementBlock(token.Position{}, []ast.Statement{
		ast.NewDeferStatement(token.Position{}, call("closeA")),
		ast.NewReturnStatement(token.Position{}, nil),
	})
	outer := ast.NewStatementBlock(token.Position{}, []ast.Statement{
		ast.NewIfStatement(token.Position{}, ast.NewBooleanLiteral(token.Position{}, true), inner, nil),
	})
	fn := ast.NewFuncDeclaration(token.Position{}, ast.NewIdentifier(token.Position{}, "main"), nil, nil, outer, false)
	sf := ast.NewSourceFile("main.big", []ast.Statement{fn})

	lowering.File(sf)

	if len(inner.Statements) != 2 {
		t.Fatalf("len(inner.Statements) = %d, want 2", len(inner.Statements))
	}
	if _, ok := inner.Statements[0].(*ast.ExpressionStatement); !ok {
		t.Errorf("inner.Statements[0] should be the lowered defer call")
	}
}
