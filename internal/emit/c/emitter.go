// Package c emits C source text from a bound, lowered Big SourceFile. It
// is one of four independent backends sharing only the emit.Sink buffer
// (see internal/emit's package doc); its leaf logic — type spelling,
// struct layout, the ".length" hack — is its own and is not shared with
// the C++ backend even where the two dialects agree.
package c

import (
	"fmt"
	"strings"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/emit"
)

// Emit walks prog's entry file and every file it transitively imports
// (entry first, then the rest in canonical-path order) and returns a
// single C translation unit. Import declarations contribute nothing to
// the output themselves — they exist only to make cross-file symbols
// resolvable during binding — so the result is the concatenation of every
// file's non-import top-level declarations, in emit.FilesInOrder order.
func Emit(prog *ast.Program) string {
	s := emit.NewSink()
	s.Append("#include <biggie.c>\n\n")
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
		// Contributes nothing; see Emit's doc comment.
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

// emitStruct emits `typedef struct NAME { ... } NAME;`.
func emitStruct(s *emit.Sink, st *ast.StructDeclaration) {
	s.Append("typedef struct " + st.Name.Value + " {\n")
	s.IndentLevel++
	for _, m := range st.Members {
		s.Indent()
		emitDeclarator(s, m.Type, m.Name.Value)
		s.Append(";\n")
	}
	s.IndentLevel--
	s.Append("} " + st.Name.Value + ";\n\n")
}

// emitEnum emits a plain C enum; Big enums carry no explicit values, so
// members take the implicit 0, 1, 2... C assigns them.
func emitEnum(s *emit.Sink, en *ast.EnumDeclaration) {
	s.Append("typedef enum " + en.Name.Value + " {\n")
	s.IndentLevel++
	for i, m := range en.Members {
		s.Indent()
		s.Append(en.Name.Value + "_" + m.Name.Value)
		if i != len(en.Members)-1 {
			s.Append(",")
		}
		s.Append("\n")
	}
	s.IndentLevel--
	s.Append("} " + en.Name.Value + ";\n\n")
}

// emitFunc emits `RET NAME(ARGS) { body }`.
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
			s.Remove(1) // un-emit the trailing "\n" to join the else on the brace line
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
		// Lowering has already removed every DeferStatement; one surviving
		// here is printed verbatim for diagnostics rather than aborting.
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

// emitInlineOrBlock emits body as a braced block if it already is one,
// otherwise indents and emits the single statement directly (C permits a
// bare statement as an if/while body; this mirrors what the parser itself
// accepts without forcing a synthetic block).
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
		s.Append("NULL")
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
			// Matches the NAME_MEMBER flattening emitEnum declares.
			s.Append(id.Value + "_" + v.Name.Value)
			return
		}
		emitExpr(s, v.Object)
		if v.Name.Value == "length" {
			// Arrays carry their length as a runtime-provided function
			// rather than a stored field; biggie.c exposes it as a call.
			s.Append(".length()")
		} else {
			s.Append("." + v.Name.Value)
		}
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
			s.Append("(" + typeName(v.Type) + ")")
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

// emitDeclarator writes a C declarator: pointer stars go before the name,
// array bracket pairs go after it, matching ordinary C declaration syntax
// (`int32* p`, `int32 grid[][]`).
func emitDeclarator(s *emit.Sink, t ast.TypeExpr, name string) {
	prefix, suffix := declParts(t)
	s.Append(prefix + " " + name + suffix)
}

// typeName renders t as a single type-only string (no declarator name),
// used for function return types.
func typeName(t ast.TypeExpr) string {
	prefix, suffix := declParts(t)
	return prefix + suffix
}

// declParts splits t into the text that precedes a declarator's name
// (the base type plus any pointer stars) and the text that follows it
// (array bracket pairs, one per nesting level).
func declParts(t ast.TypeExpr) (prefix, suffix string) {
	switch v := t.(type) {
	case *ast.PointerType:
		p, s := declParts(v.Inner)
		return p + "*", s
	case *ast.ArrayType:
		depth := 0
		var elem ast.TypeExpr = v
		for {
			at, ok := elem.(*ast.ArrayType)
			if !ok {
				break
			}
			depth++
			elem = at.Element
		}
		p, s := declParts(elem)
		return p, s + strings.Repeat("[]", depth)
	case *ast.TypeReference:
		if v.Qualifier != nil {
			return v.Qualifier.Value + "_" + v.Name.Value, ""
		}
		return v.Name.Value, ""
	default:
		return "", ""
	}
}
