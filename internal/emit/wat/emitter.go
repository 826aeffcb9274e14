// Package wat emits WebAssembly text format from a bound, lowered Big
// SourceFile. Unlike the c, cpp, and js backends, there is no native target
// runtime to include: the module declares its own linear memory, imports a
// single host function (env.println), and carries its own string table.
// Converting the resulting text to a binary module is left to an external
// assembler.
package wat

import (
	"fmt"

	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/emit"
)

// Emit walks prog's entry file and every file it transitively imports (see
// internal/emit/c's Emit doc comment for the whole-program flattening this
// shares) and returns a single `(module ...)` text form.
//
// String literals are interned once, up front, into a single data section:
// each literal gets a byte offset equal to the sum of the lengths of every
// literal interned before it. A call argument or a string-typed local
// references the literal by its assigned offset and length; any other use
// site emits only the offset.
// The data section and the module header are spliced in ahead of the
// function bodies with Prepend once the full set of literals is known.
func Emit(prog *ast.Program) string {
	files := emit.FilesInOrder(prog)

	strings := newStringTable()
	for _, sf := range files {
		for _, stmt := range sf.Statements {
			collectStrings(stmt, strings)
		}
	}

	body := emit.NewSink()
	for _, sf := range files {
		for _, stmt := range sf.Statements {
			emitTopLevel(body, stmt, strings)
		}
	}
	body.Append(")\n")

	if data := strings.dataSection(); data != "" {
		body.Prepend(data)
	}
	body.Prepend(moduleHeader())

	return body.String()
}

func moduleHeader() string {
	return "(module\n" +
		"\t(import \"env\" \"println\" (func $println (param i32 i32)))\n" +
		"\t(memory (export \"memory\") 1)\n"
}

// stringTable interns string literals in first-encountered order and hands
// out monotonically increasing byte offsets, each equal to the running sum
// of the lengths of the literals interned before it.
type stringTable struct {
	offset map[string]int
	order  []string
	next   int
}

func newStringTable() *stringTable {
	return &stringTable{offset: map[string]int{}}
}

func (t *stringTable) intern(value string) int {
	if off, ok := t.offset[value]; ok {
		return off
	}
	off := t.next
	t.offset[value] = off
	t.order = append(t.order, value)
	t.next += len(value)
	return off
}

func (t *stringTable) offsetOf(value string) int {
	return t.offset[value]
}

func (t *stringTable) dataSection() string {
	if len(t.order) == 0 {
		return ""
	}
	s := emit.NewSink()
	for _, value := range t.order {
		fmt.Fprintf(s, "\t(data (i32.const %d) %q)\n", t.offsetOf(value), value)
	}
	return s.String()
}

func collectStrings(stmt ast.Statement, t *stringTable) {
	switch st := stmt.(type) {
	case *ast.FuncDeclaration:
		if st.Body != nil {
			collectStringsStmt(st.Body, t)
		}
	case *ast.VariableDeclaration:
		if st.Initializer != nil {
			collectStringsExpr(st.Initializer, t)
		}
	}
}

func collectStringsStmt(s ast.Statement, t *stringTable) {
	switch st := s.(type) {
	case *ast.StatementBlock:
		for _, inner := range st.Statements {
			collectStringsStmt(inner, t)
		}
	case *ast.IfStatement:
		collectStringsExpr(st.Condition, t)
		collectStringsStmt(st.Then, t)
		if st.Else != nil {
			collectStringsStmt(st.Else, t)
		}
	case *ast.WhileStatement:
		collectStringsExpr(st.Condition, t)
		collectStringsStmt(st.Body, t)
	case *ast.ReturnStatement:
		if st.Value != nil {
			collectStringsExpr(st.Value, t)
		}
	case *ast.DeferStatement:
		collectStringsExpr(st.Call, t)
	case *ast.VariableDeclaration:
		if st.Initializer != nil {
			collectStringsExpr(st.Initializer, t)
		}
	case *ast.ExpressionStatement:
		collectStringsExpr(st.Expr, t)
	}
}

func collectStringsExpr(e ast.Expression, t *stringTable) {
	switch v := e.(type) {
	case *ast.StringLiteral:
		t.intern(v.Value)
	case *ast.UnaryExpression:
		collectStringsExpr(v.Operand, t)
	case *ast.AdditiveExpression:
		collectStringsExpr(v.Left, t)
		collectStringsExpr(v.Right, t)
	case *ast.MultiplicativeExpression:
		collectStringsExpr(v.Left, t)
		collectStringsExpr(v.Right, t)
	case *ast.EqualityExpression:
		collectStringsExpr(v.Left, t)
		collectStringsExpr(v.Right, t)
	case *ast.ComparisonExpression:
		collectStringsExpr(v.Left, t)
		collectStringsExpr(v.Right, t)
	case *ast.LogicalExpression:
		collectStringsExpr(v.Left, t)
		collectStringsExpr(v.Right, t)
	case *ast.AssignmentExpression:
		collectStringsExpr(v.Value, t)
	case *ast.ParenthesizedExpression:
		collectStringsExpr(v.Inner, t)
	case *ast.CallExpression:
		collectStringsExpr(v.Callee, t)
		for _, a := range v.Args {
			collectStringsExpr(a, t)
		}
	case *ast.ElementAccessExpression:
		collectStringsExpr(v.Object, t)
		collectStringsExpr(v.Index, t)
	case *ast.PropertyAccessExpression:
		collectStringsExpr(v.Object, t)
	case *ast.ArrayLiteralExpression:
		for _, elem := range v.Elements {
			collectStringsExpr(elem, t)
		}
	case *ast.StructLiteralExpression:
		for _, elem := range v.Elements {
			collectStringsExpr(elem.Value, t)
		}
	}
}

func emitTopLevel(s *emit.Sink, stmt ast.Statement, strings *stringTable) {
	switch st := stmt.(type) {
	case *ast.ImportDeclaration:
	case *ast.FuncDeclaration:
		emitFunc(s, st, strings)
	case *ast.VariableDeclaration:
		emitGlobal(s, st)
	default:
		fmt.Fprintf(s, "\t;; ERROR: Unexpected node %s\n", stmt.Kind())
	}
}

// emitGlobal emits a mutable global backed by a constant initializer.
// Struct and enum declarations have no linear-memory representation here
// and reach emitTopLevel's default case, which writes an unexpected-node
// comment for them; a variable whose initializer isn't a constant literal
// gets the same unexpected-node comment.
func emitGlobal(s *emit.Sink, v *ast.VariableDeclaration) {
	t := watType(v.Type)
	switch lit := v.Initializer.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprintf(s, "\t(global $%s (mut %s) (%s.const %d))\n", v.Name.Value, t, t, lit.Value)
	case *ast.FloatLiteral:
		fmt.Fprintf(s, "\t(global $%s (mut %s) (%s.const %g))\n", v.Name.Value, t, t, lit.Value)
	case *ast.BooleanLiteral:
		n := 0
		if lit.Value {
			n = 1
		}
		fmt.Fprintf(s, "\t(global $%s (mut i32) (i32.const %d))\n", v.Name.Value, n)
	default:
		fmt.Fprintf(s, "\t;; ERROR: Unexpected node %s\n", v.Kind())
	}
}

// emitFunc emits a function whose string-typed parameters are split into
// an i32 offset/length pair, since Wasm has no string parameter type of
// its own.
func emitFunc(s *emit.Sink, fn *ast.FuncDeclaration, strings *stringTable) {
	locals := map[string]bool{}

	s.Append("\t(func $" + fn.Name.Value + " (export \"" + fn.Name.Value + "\")")
	for _, a := range fn.Args {
		locals[a.Name.Value] = true
		if isStringType(a.Type) {
			s.Append(" (param $" + a.Name.Value + "__offset i32) (param $" + a.Name.Value + "__length i32)")
		} else {
			s.Append(" (param $" + a.Name.Value + " " + watType(a.Type) + ")")
		}
	}
	if fn.ReturnType != nil {
		s.Append(" (result " + watType(fn.ReturnType) + ")")
	}
	s.Append("\n")

	s.IndentLevel = 2
	for _, stmt := range fn.Body.Statements {
		emitStatement(s, stmt, locals, strings)
	}
	s.IndentLevel = 1
	s.Indent()
	s.Append(")\n")
	s.IndentLevel = 0
}

func emitStatement(s *emit.Sink, stmt ast.Statement, locals map[string]bool, strings *stringTable) {
	switch st := stmt.(type) {
	case *ast.StatementBlock:
		for _, inner := range st.Statements {
			emitStatement(s, inner, locals, strings)
		}

	case *ast.IfStatement:
		s.Indent()
		s.Append("(if ")
		emitExpr(s, st.Condition, locals, strings)
		s.Append("\n")
		s.IndentLevel++
		s.Indent()
		s.Append("(then\n")
		s.IndentLevel++
		emitStatement(s, st.Then, locals, strings)
		s.IndentLevel--
		s.Indent()
		s.Append(")\n")
		if st.Else != nil {
			s.Indent()
			s.Append("(else\n")
			s.IndentLevel++
			emitStatement(s, st.Else, locals, strings)
			s.IndentLevel--
			s.Indent()
			s.Append(")\n")
		}
		s.IndentLevel--
		s.Indent()
		s.Append(")\n")

	case *ast.WhileStatement:
		s.Indent()
		s.Append("(block\n")
		s.IndentLevel++
		s.Indent()
		s.Append("(loop\n")
		s.IndentLevel++
		s.Indent()
		s.Append("(br_if 1 (i32.eqz ")
		emitExpr(s, st.Condition, locals, strings)
		s.Append("))\n")
		emitStatement(s, st.Body, locals, strings)
		s.Indent()
		s.Append("(br 0)\n")
		s.IndentLevel--
		s.Indent()
		s.Append(")\n")
		s.IndentLevel--
		s.Indent()
		s.Append(")\n")

	case *ast.ReturnStatement:
		s.Indent()
		if st.Value != nil {
			s.Append("(return ")
			emitExpr(s, st.Value, locals, strings)
			s.Append(")\n")
		} else {
			s.Append("(return)\n")
		}

	case *ast.DeferStatement:
		s.Indent()
		s.Append(";; ERROR: Unexpected node Defer\n")

	case *ast.VariableDeclaration:
		emitVarDecl(s, st, locals, strings)

	case *ast.ExpressionStatement:
		s.Indent()
		emitExprStatement(s, st.Expr, locals, strings)

	default:
		s.Indent()
		fmt.Fprintf(s, ";; ERROR: Unexpected node %s\n", stmt.Kind())
	}
}

// emitVarDecl emits `(local ...)` followed by `(local.set ...)`, splitting
// a string-typed local into an offset/length pair the same way a
// string-typed parameter is split.
func emitVarDecl(s *emit.Sink, v *ast.VariableDeclaration, locals map[string]bool, strings *stringTable) {
	locals[v.Name.Value] = true

	if isStringType(v.Type) {
		s.Indent()
		s.Append("(local $" + v.Name.Value + "__offset i32)\n")
		s.Indent()
		s.Append("(local $" + v.Name.Value + "__length i32)\n")
		if v.Initializer != nil {
			offset, length := stringExprParts(v.Initializer, locals, strings)
			s.Indent()
			s.Append("(local.set $" + v.Name.Value + "__offset " + offset + ")\n")
			s.Indent()
			s.Append("(local.set $" + v.Name.Value + "__length " + length + ")\n")
		}
		return
	}

	t := watType(v.Type)
	s.Indent()
	s.Append("(local $" + v.Name.Value + " " + t + ")\n")
	if v.Initializer != nil {
		s.Indent()
		s.Append("(local.set $" + v.Name.Value + " ")
		emitExpr(s, v.Initializer, locals, strings)
		s.Append(")\n")
	}
}

func emitExprStatement(s *emit.Sink, e ast.Expression, locals map[string]bool, strings *stringTable) {
	if asn, ok := e.(*ast.AssignmentExpression); ok {
		emitAssignment(s, asn, locals, strings)
		return
	}
	emitExpr(s, e, locals, strings)
	s.Append("\n")
}

func emitAssignment(s *emit.Sink, asn *ast.AssignmentExpression, locals map[string]bool, strings *stringTable) {
	name := asn.Target.Value
	setter := "global.set"
	if locals[name] {
		setter = "local.set"
	}

	if asn.Operator == ast.OpAssign {
		s.Append("(" + setter + " $" + name + " ")
		emitExpr(s, asn.Value, locals, strings)
		s.Append(")\n")
		return
	}

	s.Append("(" + setter + " $" + name + " (" + compoundOp(asn.Operator) + " ")
	emitIdentGet(s, name, locals)
	s.Append(" ")
	emitExpr(s, asn.Value, locals, strings)
	s.Append("))\n")
}

func emitIdentGet(s *emit.Sink, name string, locals map[string]bool) {
	getter := "global.get"
	if locals[name] {
		getter = "local.get"
	}
	s.Append("(" + getter + " $" + name + ")")
}

func compoundOp(op ast.Operator) string {
	switch op {
	case ast.OpAddAssign:
		return "i32.add"
	case ast.OpSubAssign:
		return "i32.sub"
	case ast.OpMulAssign:
		return "i32.mul"
	case ast.OpDivAssign:
		return "i32.div_s"
	default:
		return "i32.add"
	}
}

func emitExpr(s *emit.Sink, e ast.Expression, locals map[string]bool, strings *stringTable) {
	switch v := e.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprintf(s, "(i32.const %d)", v.Value)
	case *ast.FloatLiteral:
		fmt.Fprintf(s, "(f64.const %g)", v.Value)
	case *ast.StringLiteral:
		fmt.Fprintf(s, "(i32.const %d)", strings.offsetOf(v.Value))
	case *ast.CharLiteral:
		if len(v.Value) > 0 {
			fmt.Fprintf(s, "(i32.const %d)", v.Value[0])
		} else {
			s.Append("(i32.const 0)")
		}
	case *ast.BooleanLiteral:
		if v.Value {
			s.Append("(i32.const 1)")
		} else {
			s.Append("(i32.const 0)")
		}
	case *ast.NullLiteral:
		s.Append("(i32.const 0)")
	case *ast.Identifier:
		emitIdentGet(s, v.Value, locals)
	case *ast.UnaryExpression:
		emitUnary(s, v, locals, strings)
	case *ast.AdditiveExpression:
		emitBinary(s, v.Left, v.Operator, v.Right, locals, strings)
	case *ast.MultiplicativeExpression:
		emitBinary(s, v.Left, v.Operator, v.Right, locals, strings)
	case *ast.EqualityExpression:
		emitBinary(s, v.Left, v.Operator, v.Right, locals, strings)
	case *ast.ComparisonExpression:
		emitBinary(s, v.Left, v.Operator, v.Right, locals, strings)
	case *ast.LogicalExpression:
		emitBinary(s, v.Left, v.Operator, v.Right, locals, strings)
	case *ast.ParenthesizedExpression:
		emitExpr(s, v.Inner, locals, strings)
	case *ast.CallExpression:
		emitCall(s, v, locals, strings)
	default:
		fmt.Fprintf(s, "(i32.const 0) ;; ERROR: Unexpected node %s", e.Kind())
	}
}

func emitUnary(s *emit.Sink, v *ast.UnaryExpression, locals map[string]bool, strings *stringTable) {
	switch v.Operator {
	case ast.OpNegate:
		s.Append("(i32.sub (i32.const 0) ")
		emitExpr(s, v.Operand, locals, strings)
		s.Append(")")
	case ast.OpNot:
		s.Append("(i32.eqz ")
		emitExpr(s, v.Operand, locals, strings)
		s.Append(")")
	default:
		fmt.Fprintf(s, "(i32.const 0) ;; ERROR: Unexpected node %s", v.Kind())
	}
}

func emitBinary(s *emit.Sink, left ast.Expression, op ast.Operator, right ast.Expression, locals map[string]bool, strings *stringTable) {
	s.Append("(" + watOp(op) + " ")
	emitExpr(s, left, locals, strings)
	s.Append(" ")
	emitExpr(s, right, locals, strings)
	s.Append(")")
}

func watOp(op ast.Operator) string {
	switch op {
	case ast.OpAdd:
		return "i32.add"
	case ast.OpSub:
		return "i32.sub"
	case ast.OpMul:
		return "i32.mul"
	case ast.OpDiv:
		return "i32.div_s"
	case ast.OpEq:
		return "i32.eq"
	case ast.OpNotEq:
		return "i32.ne"
	case ast.OpLess:
		return "i32.lt_s"
	case ast.OpLessEq:
		return "i32.le_s"
	case ast.OpGreater:
		return "i32.gt_s"
	case ast.OpGreaterEq:
		return "i32.ge_s"
	case ast.OpAnd:
		return "i32.and"
	case ast.OpOr:
		return "i32.or"
	default:
		return "i32.add"
	}
}

// emitCall emits `(call $name ARGS)`. A string-typed argument is split
// into its offset/length pair at the call site, matching the split made
// for a string-typed parameter.
func emitCall(s *emit.Sink, v *ast.CallExpression, locals map[string]bool, strings *stringTable) {
	id, ok := v.Callee.(*ast.Identifier)
	if !ok {
		fmt.Fprintf(s, "(i32.const 0) ;; ERROR: Unexpected node %s", v.Kind())
		return
	}

	s.Append("(call $" + id.Value + " ")
	for i, a := range v.Args {
		if i > 0 {
			s.Append(" ")
		}
		if isStringArg(a) {
			offset, length := stringExprParts(a, locals, strings)
			s.Append(offset + " " + length)
		} else {
			emitExpr(s, a, locals, strings)
		}
	}
	s.Append(")")
}

// stringExprParts computes a string-valued expression's offset and length
// as two independent Wat expression texts, rather than as two stack
// pushes — that keeps the offset and length available separately wherever
// one is needed without them, since a string's representation here is a
// pair of locals/constants rather than a single value.
func stringExprParts(e ast.Expression, locals map[string]bool, strings *stringTable) (offset, length string) {
	switch v := e.(type) {
	case *ast.StringLiteral:
		return fmt.Sprintf("(i32.const %d)", strings.offsetOf(v.Value)), fmt.Sprintf("(i32.const %d)", len(v.Value))
	case *ast.Identifier:
		getter := "global.get"
		if locals[v.Value] {
			getter = "local.get"
		}
		return fmt.Sprintf("(%s $%s__offset)", getter, v.Value), fmt.Sprintf("(%s $%s__length)", getter, v.Value)
	default:
		return "(i32.const 0) ;; ERROR: Unexpected node " + v.Kind().String(), "(i32.const 0)"
	}
}

func isStringArg(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.StringLiteral:
		return true
	case *ast.Identifier:
		return isStringType(typeOfIdentifier(v))
	default:
		return false
	}
}

func typeOfIdentifier(id *ast.Identifier) ast.TypeExpr {
	if id.Symbol == nil {
		return nil
	}
	switch d := id.Symbol.Decl.(type) {
	case *ast.VariableDeclaration:
		return d.Type
	case *ast.FuncArgument:
		return d.Type
	default:
		return nil
	}
}

func isStringType(t ast.TypeExpr) bool {
	ref, ok := t.(*ast.TypeReference)
	return ok && ref.Qualifier == nil && ref.Name.Value == "string"
}

// watType renders t as a Wasm value type. Pointers and arrays have no
// dedicated Wasm type and are represented as i32 linear-memory offsets.
func watType(t ast.TypeExpr) string {
	if t == nil {
		return ""
	}
	ref, ok := t.(*ast.TypeReference)
	if !ok {
		return "i32"
	}
	switch ref.Name.Value {
	case "float32":
		return "f32"
	case "float64":
		return "f64"
	case "int64", "uint64":
		return "i64"
	default:
		return "i32"
	}
}
