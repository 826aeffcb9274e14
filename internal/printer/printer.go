// Package printer re-emits canonical Big source text from a parsed AST.
// It runs on the output of the parser, before lowering or binding, so the
// formatted text still contains every DeferStatement a user wrote and
// carries no Symbol information. Like the four target emitters, it is a
// syntax-directed walk built on the shared EmitSink.
package printer

import (
	"fmt"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/emit"
)

// Print renders a single parsed file as canonical Big source.
func Print(sf *ast.SourceFile) string {
	s := emit.NewSink()
	for i, stmt := range sf.Statements {
		if i > 0 {
			s.Append("\n")
		}
		printTopLevel(s, stmt)
	}
	return s.String()
}

func printTopLevel(s *emit.Sink, stmt ast.Statement) {
	switch st := stmt.(type) {
	case *ast.ImportDeclaration:
		printImport(s, st)
	case *ast.StructDeclaration:
		printStruct(s, st)
	case *ast.EnumDeclaration:
		printEnum(s, st)
	case *ast.FuncDeclaration:
		printFunc(s, st)
	case *ast.VariableDeclaration:
		printVarDecl(s, st)
	default:
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */\n", stmt.Kind())
	}
}

func printImport(s *emit.Sink, im *ast.ImportDeclaration) {
	s.Append("import ")
	if im.IsExported {
		s.Append("export ")
	}
	if im.Alias != nil {
		s.Append(im.Alias.Value + " ")
	}
	s.Append("\"" + im.Path + "\";\n")
}

func printStruct(s *emit.Sink, st *ast.StructDeclaration) {
	if st.IsExported {
		s.Append("export ")
	}
	s.Append("struct " + st.Name.Value + " {\n")
	s.IndentLevel++
	for _, m := range st.Members {
		s.Indent()
		s.Append(m.Name.Value + ": " + typeText(m.Type) + ";\n")
	}
	s.IndentLevel--
	s.Append("}\n")
}

func printEnum(s *emit.Sink, en *ast.EnumDeclaration) {
	if en.IsExported {
		s.Append("export ")
	}
	s.Append("enum " + en.Name.Value + " {\n")
	s.IndentLevel++
	for i, m := range en.Members {
		s.Indent()
		s.Append(m.Name.Value)
		if i != len(en.Members)-1 {
			s.Append(",")
		}
		s.Append("\n")
	}
	s.IndentLevel--
	s.Append("}\n")
}

func printFunc(s *emit.Sink, fn *ast.FuncDeclaration) {
	if fn.IsExported {
		s.Append("export ")
	}
	s.Append("func " + fn.Name.Value + "(")
	for i, a := range fn.Args {
		if i > 0 {
			s.Append(", ")
		}
		s.Append(a.Name.Value + ": " + typeText(a.Type))
	}
	s.Append(")")
	if fn.ReturnType != nil {
		s.Append(": " + typeText(fn.ReturnType))
	}
	s.Append(" {\n")
	s.IndentLevel++
	for _, stmt := range fn.Body.Statements {
		printStatement(s, stmt)
	}
	s.IndentLevel--
	s.Append("}\n")
}

func printVarDecl(s *emit.Sink, v *ast.VariableDeclaration) {
	s.Indent()
	if v.IsExported {
		s.Append("export ")
	}
	s.Append("var " + v.Name.Value + ": " + typeText(v.Type))
	if v.Initializer != nil {
		s.Append(" = ")
		printExpr(s, v.Initializer)
	}
	s.Append(";\n")
}

func printStatement(s *emit.Sink, stmt ast.Statement) {
	switch st := stmt.(type) {
	case *ast.StatementBlock:
		s.Indent()
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range st.Statements {
			printStatement(s, inner)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")

	case *ast.IfStatement:
		s.Indent()
		s.Append("if (")
		printExpr(s, st.Condition)
		s.Append(") ")
		printInlineOrBlock(s, st.Then)
		if st.Else != nil {
			s.Remove(1)
			s.Append(" else ")
			printInlineOrBlock(s, st.Else)
		}

	case *ast.WhileStatement:
		s.Indent()
		s.Append("while (")
		printExpr(s, st.Condition)
		s.Append(") ")
		printInlineOrBlock(s, st.Body)

	case *ast.ReturnStatement:
		s.Indent()
		s.Append("return")
		if st.Value != nil {
			s.Append(" ")
			printExpr(s, st.Value)
		}
		s.Append(";\n")

	case *ast.DeferStatement:
		s.Indent()
		s.Append("defer ")
		printExpr(s, st.Call)
		s.Append(";\n")

	case *ast.VariableDeclaration:
		printVarDecl(s, st)

	case *ast.ExpressionStatement:
		s.Indent()
		printExpr(s, st.Expr)
		s.Append(";\n")

	default:
		s.Indent()
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */\n", stmt.Kind())
	}
}

func printInlineOrBlock(s *emit.Sink, body ast.Statement) {
	if blk, ok := body.(*ast.StatementBlock); ok {
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range blk.Statements {
			printStatement(s, inner)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")
		return
	}
	s.Append("\n")
	s.IndentLevel++
	printStatement(s, body)
	s.IndentLevel--
}

func printExpr(s *emit.Sink, e ast.Expression) {
	switch v := e.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprintf(s, "%d", v.Value)
	case *ast.FloatLiteral:
		fmt.Fprintf(s, "%g", v.Value)
	case *ast.StringLiteral:
		s.Append("\"" + v.Value + "\"")
	case *ast.CharLiteral:
		s.Append("'" + v.Value + "'")
	case *ast.BooleanLiteral:
		if v.Value {
			s.Append("true")
		} else {
			s.Append("false")
		}
	case *ast.NullLiteral:
		s.Append("null")
	case *ast.Identifier:
		s.Append(v.Value)
	case *ast.UnaryExpression:
		s.Append(v.Operator.String())
		printExpr(s, v.Operand)
	case *ast.AdditiveExpression:
		printBinary(s, v.Left, v.Operator, v.Right)
	case *ast.MultiplicativeExpression:
		printBinary(s, v.Left, v.Operator, v.Right)
	case *ast.EqualityExpression:
		printBinary(s, v.Left, v.Operator, v.Right)
	case *ast.ComparisonExpression:
		printBinary(s, v.Left, v.Operator, v.Right)
	case *ast.LogicalExpression:
		printBinary(s, v.Left, v.Operator, v.Right)
	case *ast.AssignmentExpression:
		s.Append(v.Target.Value + " " + v.Operator.String() + " ")
		printExpr(s, v.Value)
	case *ast.ParenthesizedExpression:
		s.Append("(")
		printExpr(s, v.Inner)
		s.Append(")")
	case *ast.CallExpression:
		printExpr(s, v.Callee)
		s.Append("(")
		for i, a := range v.Args {
			if i > 0 {
				s.Append(", ")
			}
			printExpr(s, a)
		}
		s.Append(")")
	case *ast.ElementAccessExpression:
		printExpr(s, v.Object)
		s.Append("[")
		printExpr(s, v.Index)
		s.Append("]")
	case *ast.PropertyAccessExpression:
		printExpr(s, v.Object)
		s.Append("." + v.Name.Value)
	case *ast.ArrayLiteralExpression:
		s.Append("[")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			printExpr(s, elem)
		}
		s.Append("]")
	case *ast.StructLiteralExpression:
		if v.Type != nil {
			s.Append(typeText(v.Type))
		}
		s.Append("{ ")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			s.Append(elem.Name.Value + ": ")
			printExpr(s, elem.Value)
		}
		s.Append(" }")
	default:
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */", e.Kind())
	}
}

func printBinary(s *emit.Sink, left ast.Expression, op ast.Operator, right ast.Expression) {
	printExpr(s, left)
	s.Append(" " + op.String() + " ")
	printExpr(s, right)
}

// typeText renders t in Big's own `[]`/`*` prefix type syntax: `[]TYPE`
// for an array, `*TYPE` for a pointer.
func typeText(t ast.TypeExpr) string {
	switch v := t.(type) {
	case *ast.PointerType:
		return "*" + typeText(v.Inner)
	case *ast.ArrayType:
		return "[]" + typeText(v.Element)
	case *ast.TypeReference:
		if v.Qualifier != nil {
			return v.Qualifier.Value + "." + v.Name.Value
		}
		return v.Name.Value
	default:
		return ""
	}
}
