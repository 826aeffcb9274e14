// Package js emits JavaScript source text from a bound, lowered Big
// SourceFile. Like internal/emit/c and internal/emit/cpp, it is a
// self-contained syntax-directed walk; it differs from both in carrying a
// preamble/postamble pair (jsPreamble.js, jsPostamble.js, embedded as
// assets rather than generated) and in annotating types as comments
// instead of emitting them, since the target language has none.
package js

import (
	_ "embed"
	"fmt"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/emit"
)

//go:embed jsPreamble.js
var preamble string

//go:embed jsPostamble.js
var postamble string

// Emit walks prog's entry file and every file it transitively imports,
// wrapping the result in the preamble/postamble pair (see internal/emit/c's
// Emit doc comment for the whole-program flattening this shares).
func Emit(prog *ast.Program) string {
	s := emit.NewSink()
	s.Append(preamble)
	for _, sf := range emit.FilesInOrder(prog) {
		emitFile(s, sf)
	}
	s.Append(postamble)
	return s.String()
}

func emitFile(s *emit.Sink, sf *ast.SourceFile) {
	reassigned := collectReassignedTopLevel(sf)
	for _, stmt := range sf.Statements {
		emitTopLevel(s, stmt, reassigned)
	}
}

// collectReassignedTopLevel walks every top-level var's initializer and
// every function body in sf and returns the set of names that appear as
// an AssignmentExpression target anywhere in the file. A
// VariableDeclaration whose name is absent from this set is never written
// to after its initializer, so it is emitted as `const`; the Big grammar
// has no explicit const/let distinction (only `var`), so this is the JS
// emitter's stand-in for an "isConst hint".
func collectReassignedTopLevel(sf *ast.SourceFile) map[string]bool {
	names := map[string]bool{}
	for _, stmt := range sf.Statements {
		if fn, ok := stmt.(*ast.FuncDeclaration); ok && fn.Body != nil {
			for k := range collectReassignedInBlock(fn.Body) {
				names[k] = true
			}
		}
		if v, ok := stmt.(*ast.VariableDeclaration); ok && v.Initializer != nil {
			collectReassignedExpr(v.Initializer, names)
		}
	}
	return names
}

// collectReassignedInBlock scopes the same reassignment scan to a single
// function body, used when emitting that function's own locals.
func collectReassignedInBlock(body *ast.StatementBlock) map[string]bool {
	names := map[string]bool{}
	collectReassignedStmt(body, names)
	return names
}

func collectReassignedStmt(s ast.Statement, names map[string]bool) {
	switch st := s.(type) {
	case *ast.StatementBlock:
		for _, inner := range st.Statements {
			collectReassignedStmt(inner, names)
		}
	case *ast.IfStatement:
		collectReassignedExpr(st.Condition, names)
		collectReassignedStmt(st.Then, names)
		if st.Else != nil {
			collectReassignedStmt(st.Else, names)
		}
	case *ast.WhileStatement:
		collectReassignedExpr(st.Condition, names)
		collectReassignedStmt(st.Body, names)
	case *ast.ReturnStatement:
		if st.Value != nil {
			collectReassignedExpr(st.Value, names)
		}
	case *ast.DeferStatement:
		collectReassignedExpr(st.Call, names)
	case *ast.VariableDeclaration:
		if st.Initializer != nil {
			collectReassignedExpr(st.Initializer, names)
		}
	case *ast.ExpressionStatement:
		collectReassignedExpr(st.Expr, names)
	}
}

func collectReassignedExpr(e ast.Expression, names map[string]bool) {
	switch v := e.(type) {
	case *ast.AssignmentExpression:
		names[v.Target.Value] = true
		collectReassignedExpr(v.Value, names)
	case *ast.UnaryExpression:
		collectReassignedExpr(v.Operand, names)
	case *ast.AdditiveExpression:
		collectReassignedExpr(v.Left, names)
		collectReassignedExpr(v.Right, names)
	case *ast.MultiplicativeExpression:
		collectReassignedExpr(v.Left, names)
		collectReassignedExpr(v.Right, names)
	case *ast.EqualityExpression:
		collectReassignedExpr(v.Left, names)
		collectReassignedExpr(v.Right, names)
	case *ast.ComparisonExpression:
		collectReassignedExpr(v.Left, names)
		collectReassignedExpr(v.Right, names)
	case *ast.LogicalExpression:
		collectReassignedExpr(v.Left, names)
		collectReassignedExpr(v.Right, names)
	case *ast.ParenthesizedExpression:
		collectReassignedExpr(v.Inner, names)
	case *ast.CallExpression:
		collectReassignedExpr(v.Callee, names)
		for _, a := range v.Args {
			collectReassignedExpr(a, names)
		}
	case *ast.ElementAccessExpression:
		collectReassignedExpr(v.Object, names)
		collectReassignedExpr(v.Index, names)
	case *ast.PropertyAccessExpression:
		collectReassignedExpr(v.Object, names)
	case *ast.ArrayLiteralExpression:
		for _, elem := range v.Elements {
			collectReassignedExpr(elem, names)
		}
	case *ast.StructLiteralExpression:
		for _, elem := range v.Elements {
			collectReassignedExpr(elem.Value, names)
		}
	}
}

func emitTopLevel(s *emit.Sink, stmt ast.Statement, reassigned map[string]bool) {
	switch st := stmt.(type) {
	case *ast.ImportDeclaration:
	case *ast.StructDeclaration:
		emitStructFactory(s, st)
	case *ast.EnumDeclaration:
		emitEnum(s, st)
	case *ast.FuncDeclaration:
		emitFunc(s, st)
	case *ast.VariableDeclaration:
		emitVarDecl(s, st, reassigned)
	default:
		fmt.Fprintf(s, "// ERROR: Unexpected node %s\n", stmt.Kind())
	}
}

// emitStructFactory emits a plain factory function standing in for a
// struct type, since JS has no nominal record type of its own.
func emitStructFactory(s *emit.Sink, st *ast.StructDeclaration) {
	s.Append("function " + st.Name.Value + "(")
	for i, m := range st.Members {
		if i > 0 {
			s.Append(", ")
		}
		s.Append(m.Name.Value + " /* : " + typeComment(m.Type) + " */")
	}
	s.Append(") {\n")
	s.IndentLevel++
	for _, m := range st.Members {
		s.Indent()
		s.Append("this." + m.Name.Value + " = " + m.Name.Value + ";\n")
	}
	s.IndentLevel--
	s.Append("}\n\n")
}

func emitEnum(s *emit.Sink, en *ast.EnumDeclaration) {
	s.Append("const " + en.Name.Value + " = Object.freeze({\n")
	s.IndentLevel++
	for i, m := range en.Members {
		s.Indent()
		fmt.Fprintf(s, "%s: %d", m.Name.Value, i)
		if i != len(en.Members)-1 {
			s.Append(",")
		}
		s.Append("\n")
	}
	s.IndentLevel--
	s.Append("});\n\n")
}

// emitFunc emits a function declaration whose parameter and return types
// are annotated in comments, since JS itself carries no static types.
func emitFunc(s *emit.Sink, fn *ast.FuncDeclaration) {
	reassigned := collectReassignedInBlock(fn.Body)
	s.Append("function " + fn.Name.Value + "(")
	for i, a := range fn.Args {
		if i > 0 {
			s.Append(", ")
		}
		s.Append(a.Name.Value + " /* : " + typeComment(a.Type) + " */")
	}
	s.Append(") /* : " + typeComment(fn.ReturnType) + " */ {\n")
	s.IndentLevel++
	for _, stmt := range fn.Body.Statements {
		emitStatement(s, stmt, reassigned)
	}
	s.IndentLevel--
	s.Append("}\n\n")
}

func emitVarDecl(s *emit.Sink, v *ast.VariableDeclaration, reassigned map[string]bool) {
	s.Indent()
	if reassigned[v.Name.Value] || v.Initializer == nil {
		s.Append("let ")
	} else {
		s.Append("const ")
	}
	s.Append(v.Name.Value + " /* : " + typeComment(v.Type) + " */")
	if v.Initializer != nil {
		s.Append(" = ")
		emitExpr(s, v.Initializer)
	}
	s.Append(";\n")
}

func emitStatement(s *emit.Sink, stmt ast.Statement, reassigned map[string]bool) {
	switch st := stmt.(type) {
	case *ast.StatementBlock:
		s.Indent()
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range st.Statements {
			emitStatement(s, inner, reassigned)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")

	case *ast.IfStatement:
		s.Indent()
		s.Append("if (")
		emitExpr(s, st.Condition)
		s.Append(") ")
		emitInlineOrBlock(s, st.Then, reassigned)
		if st.Else != nil {
			s.Remove(1)
			s.Append(" else ")
			emitInlineOrBlock(s, st.Else, reassigned)
		}

	case *ast.WhileStatement:
		s.Indent()
		s.Append("while (")
		emitExpr(s, st.Condition)
		s.Append(") ")
		emitInlineOrBlock(s, st.Body, reassigned)

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
		emitVarDecl(s, st, reassigned)

	case *ast.ExpressionStatement:
		s.Indent()
		emitExpr(s, st.Expr)
		s.Append(";\n")

	default:
		s.Indent()
		fmt.Fprintf(s, "// ERROR: Unexpected node %s\n", stmt.Kind())
	}
}

func emitInlineOrBlock(s *emit.Sink, body ast.Statement, reassigned map[string]bool) {
	if blk, ok := body.(*ast.StatementBlock); ok {
		s.Append("{\n")
		s.IndentLevel++
		for _, inner := range blk.Statements {
			emitStatement(s, inner, reassigned)
		}
		s.IndentLevel--
		s.Indent()
		s.Append("}\n")
		return
	}
	s.Append("\n")
	s.IndentLevel++
	emitStatement(s, body, reassigned)
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
		s.Append("\"" + v.Value + "\"")
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
		s.Append(unaryOp(v.Operator))
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
		emitExpr(s, v.Object)
		s.Append("." + v.Name.Value)
	case *ast.ArrayLiteralExpression:
		s.Append("[")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			emitExpr(s, elem)
		}
		s.Append("]")
	case *ast.StructLiteralExpression:
		s.Append("{ ")
		for i, elem := range v.Elements {
			if i > 0 {
				s.Append(", ")
			}
			s.Append(elem.Name.Value + ": ")
			emitExpr(s, elem.Value)
		}
		s.Append(" }")
	default:
		fmt.Fprintf(s, "/* ERROR: Unexpected node %s */", e.Kind())
	}
}

func emitBinary(s *emit.Sink, left ast.Expression, op ast.Operator, right ast.Expression) {
	emitExpr(s, left)
	s.Append(" " + jsOp(op) + " ")
	emitExpr(s, right)
}

// jsOp translates Big's == / != to JS's strict === / !==; every other
// operator keeps its spelling unchanged.
func jsOp(op ast.Operator) string {
	switch op {
	case ast.OpEq:
		return "==="
	case ast.OpNotEq:
		return "!=="
	default:
		return op.String()
	}
}

func unaryOp(op ast.Operator) string {
	switch op {
	case ast.OpAddressOf, ast.OpDeref:
		// JS has no address-of/deref; the value itself stands in, since
		// structs are already emitted as reference-typed objects.
		return ""
	default:
		return op.String()
	}
}

// typeComment renders t for use inside a `/* : ... */` annotation comment.
func typeComment(t ast.TypeExpr) string {
	if t == nil {
		return "void"
	}
	switch v := t.(type) {
	case *ast.PointerType:
		return typeComment(v.Inner)
	case *ast.ArrayType:
		return typeComment(v.Element) + "[]"
	case *ast.TypeReference:
		if v.Qualifier != nil {
			return v.Qualifier.Value + "." + v.Name.Value
		}
		return v.Name.Value
	default:
		return "?"
	}
}
