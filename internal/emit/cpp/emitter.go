// Package cpp emits C++ source text from a bound, lowered Big SourceFile.
// It mirrors internal/emit/c's structure closely — same statement and
// expression dispatch, same program-flattening strategy — but differs in
// every leaf that the dialect actually differs on: the preamble, struct
// declaration syntax, array-type spelling, `enum class` declarations with
// `::` member access, `nullptr`, and struct literals without a C cast.
// Per internal/emit's package
// doc, this duplication with the C backend is deliberate rather than
// factored out.
package cpp

import (
	"fmt"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/emit"
)

// Emit walks prog's entry file and every file it transitively imports and
// returns a single C++ translation unit (see internal/emit/c.Emit's doc
// comment for the whole-program flattening rationale, shared verbatim).
func Emit(prog *ast.Program) string {
	s := emit.NewSink()
	s.Append("#include <biggie.cpp>\n\n")
	for _, sf := range emit.FilesInOrder(prog) {
		emitFile(s, sf)
	}
	return s.String()
}

func emitFile(s *emit.Sink, sf *ast.SourceFile) {
	for _, stmt := range sf.Statements {
		emitTopLevel(s, stmt)
	}
}

func emitTopLevel(s *emit.Sink, stmt ast.Statement) {
	switch st := stmt.(type) {
	case *ast.ImportDeclaration:
	case *ast.StructDeclaration:
		emitStruct(s, st)
	case *ast.EnumDeclaration:
		emitEnum(s, st)
	case *ast.FuncDeclaration:
		emitFunc(s, st)
	case *ast.VariableDeclaration:
		emitVarDecl(s, st)
	default:
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */\n", stmt.Kind())
	}
}

// emitStruct emits `struct NAME { ... };` — unlike C, there is no trailing
// typedef-alias repetition of NAME.
func emitStruct(s *emit.Sink, st *ast.StructDeclaration) {
	s.Append("struct " + st.Name.Value + " {\n")
	s.IndentLevel++
	for _, m := range st.Members {
		s.Indent()
		emitDeclarator(s, m.Type, m.Name.Value)
		s.Append(";\n")
	}
	s.IndentLevel--
	s.Append("};\n\n")
}

func emitEnum(s *emit.Sink, en *ast.EnumDeclaration) {
	s.Append("enum class " + en.Name.Value + " {\n")
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
	s.Append("};\n\n")
}

func emitFunc(s *emit.Sink, fn *ast.FuncDeclaration) {
	s.Append(typeName(fn.ReturnType))
	s.Append(" " + fn.Name.Value + "(")
	for i, a := range fn.Args {
		if i > 0 {
			s.Append(", ")
		}
		emitDeclarator(s, a.Type, a.Name.Value)
	}
	s.Append(") {\n")
	s.IndentLevel++
	for _, stmt := range fn.Body.Statements {
		emitStatement(s, stmt)
	}
	s.IndentLevel--
	s.Append("}\n\n")
}

func emitVarDecl(s *emit.Sink, v *ast.VariableDeclaration) {
	s.Indent()
	emitDeclarator(s, v.Type, v.Name.Value)
	if v.Initializer != nil {
		s.Append(" = ")
		emitExpr(s, v.Initializer)
	}
	s.Append(";\n")
}

func emitStatement(s *emit.Sink, stmt ast.Statement) {
	switch st := stmt.(type) {
	case *ast.StatementBlock:
		s.Indent()
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range st.Statements {
			emitStatement(s, inner)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")

	case *ast.IfStatement:
		s.Indent()
		s.Append("if (")
		emitExpr(s, st.Condition)
		s.Append(") ")
		emitInlineOrBlock(s, st.Then)
		if st.Else != nil {
			s.Remove(1)
			s.Append(" else ")
			emitInlineOrBlock(s, st.Else)
		}

	case *ast.WhileStatement:
		s.Indent()
		s.Append("while (")
		emitExpr(s, st.Condition)
		s.Append(") ")
		emitInlineOrBlock(s, st.Body)

	case *ast.ReturnStatement:
		s.Indent()
		s.Append("return")
		if st.Value != nil {
			s.Append(" ")
			emitExpr(s, st.Value)
		}
		s.Append(";\n")

	case *ast.DeferStatement:
		s.Indent()
		s.Append("defer ")
		emitExpr(s, st.Call)
		s.Append(";\n")

	case *ast.VariableDeclaration:
		emitVarDecl(s, st)

	case *ast.ExpressionStatement:
		s.Indent()
		emitExpr(s, st.Expr)
		s.Append(";\n")

	default:
		s.Indent()
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */\n", stmt.Kind())
	}
}

func emitInlineOrBlock(s *emit.Sink, body ast.Statement) {
	if blk, ok := body.(*ast.StatementBlock); ok {
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range blk.Statements {
			emitStatement(s, inner)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")
		return
	}
	s.Append("\n")
	s.IndentLevel++
	emitStatement(s, body)
	s.IndentLevel--
}

func emitExpr(s *emit.Sink, e ast.Expression) {
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
		s.Append("nullptr")
	case *ast.Identifier:
		s.Append(v.Value)
	case *ast.UnaryExpression:
		s.Append(v.Operator.String())
		emitExpr(s, v.Operand)
	case *ast.AdditiveExpression:
		emitBinary(s, v.Left, v.Operator, v.Right)
	case *ast.MultiplicativeExpression:
		emitBinary(s, v.Left, v.Operator, v.Right)
	case *ast.EqualityExpression:
		emitBinary(s, v.Left, v.Operator, v.Right)
	case *ast.ComparisonExpression:
		emitBinary(s, v.Left, v.Operator, v.Right)
	case *ast.LogicalExpression:
		emitBinary(s, v.Left, v.Operator, v.Right)
	case *ast.AssignmentExpression:
		s.Append(v.Target.Value + " " + v.Operator.String() + " ")
		emitExpr(s, v.Value)
	case *ast.ParenthesizedExpression:
		s.Append("(")
		emitExpr(s, v.Inner)
		s.Append(")")
	case *ast.CallExpression:
		emitExpr(s, v.Callee)
		s.Append("(")
		for i, a := range v.Args {
			if i > 0 {
				s.Append(", ")
			}
			emitExpr(s, a)
		}
		s.Append(")")
	case *ast.ElementAccessExpression:
		emitExpr(s, v.Object)
		s.Append("[")
		emitExpr(s, v.Index)
		s.Append("]")
	case *ast.PropertyAccessExpression:
		if id, ok := v.Object.(*ast.Identifier); ok && id.Symbol != nil && id.Symbol.Flags == ast.FlagEnum {
			// enum class members are scoped, not dotted.
			s.Append(id.Value + "::" + v.Name.Value)
			return
		}
		emitExpr(s, v.Object)
		s.Append("." + v.Name.Value)
	case *ast.ArrayLiteralExpression:
		s.Append("{ ")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			emitExpr(s, elem)
		}
		s.Append(" }")
	case *ast.StructLiteralExpression:
		if v.Type != nil {
			s.Append(typeName(v.Type))
		}
		s.Append("{ ")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			s.Append("." + elem.Name.Value + " = ")
			emitExpr(s, elem.Value)
		}
		s.Append(" }")
	default:
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */", e.Kind())
	}
}

func emitBinary(s *emit.Sink, left ast.Expression, op ast.Operator, right ast.Expression) {
	emitExpr(s, left)
	s.Append(" " + op.String() + " ")
	emitExpr(s, right)
}

func emitDeclarator(s *emit.Sink, t ast.TypeExpr, name string) {
	s.Append(typeName(t) + " " + name)
}

// typeName renders t as a C++ type spelling. Unlike C, array nesting is
// expressed as a template — Array<T> wrapping Array<T> — rather than
// trailing bracket pairs after the declarator's name.
func typeName(t ast.TypeExpr) string {
	switch v := t.(type) {
	case *ast.PointerType:
		return typeName(v.Inner) + "*"
	case *ast.ArrayType:
		return "Array<" + typeName(v.Element) + ">"
	case *ast.TypeReference:
		if v.Qualifier != nil {
			return v.Qualifier.Value + "::" + v.Name.Value
		}
		return v.Name.Value
	default:
		return ""
	}
}
