// Package ast defines the Big abstract syntax tree: a closed set of node
// kinds, each implemented as its own Go type, discriminated by a Kind()
// tag.
package ast

import "github.com/smack0007/bigc/internal/token"

// SyntaxKind is a closed enumeration covering every node variety the parser
// can produce.
type SyntaxKind int

const (
	KindSourceFile SyntaxKind = iota

	// Declarations.
	KindFuncDeclaration
	KindStructDeclaration
	KindVariableDeclaration
	KindEnumDeclaration
	KindImportDeclaration

	// Statements.
	KindStatementBlock
	KindIf
	KindWhile
	KindReturn
	KindDefer
	KindExpressionStatement

	// Expressions.
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindCharLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindIdentifier
	KindUnary
	KindAdditive
	KindMultiplicative
	KindEquality
	KindComparison
	KindLogical
	KindAssignment
	KindParenthesized
	KindCall
	KindElementAccess
	KindPropertyAccess
	KindArrayLiteral
	KindStructLiteral

	// Type nodes.
	KindTypeReference
	KindPointerType
	KindArrayType

	// Auxiliary nodes.
	KindFuncArgument
	KindStructMember
	KindEnumMember
	KindStructLiteralElement
)

var kindNames = [...]string{
	"SourceFile",
	"FuncDeclaration", "StructDeclaration", "VariableDeclaration", "EnumDeclaration", "ImportDeclaration",
	"StatementBlock", "If", "While", "Return", "Defer", "ExpressionStatement",
	"IntegerLiteral", "FloatLiteral", "StringLiteral", "CharLiteral", "BooleanLiteral", "NullLiteral",
	"Identifier", "Unary", "Additive", "Multiplicative", "Equality", "Comparison", "Logical",
	"Assignment", "Parenthesized", "Call", "ElementAccess", "PropertyAccess", "ArrayLiteral", "StructLiteral",
	"TypeReference", "PointerType", "ArrayType",
	"FuncArgument", "StructMember", "EnumMember", "StructLiteralElement",
}

func (k SyntaxKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Operator is a closed enumeration of binary and unary operators. Each
// concrete binary/unary expression node constrains its Operator field to a
// sub-enum of compatible operators, enforced by construction rather than
// by the type system.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAnd
	OpOr
	OpAddressOf // unary &
	OpDeref     // unary *
	OpNot       // unary !
	OpNegate    // unary -
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
)

var operatorText = map[Operator]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/",
	OpEq: "==", OpNotEq: "!=",
	OpLess: "<", OpLessEq: "<=", OpGreater: ">", OpGreaterEq: ">=",
	OpAnd: "&&", OpOr: "||",
	OpAddressOf: "&", OpDeref: "*", OpNot: "!", OpNegate: "-",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=", OpDivAssign: "/=",
}

func (o Operator) String() string { return operatorText[o] }

// Node is the base interface implemented by every AST node. Every node
// produced by the parser has a defined Kind and a source Position.
type Node interface {
	Kind() SyntaxKind
	Pos() token.Position
	// Parent returns the node's syntactic parent, set during binding.
	// It is nil for the root SourceFile and for any node not yet bound.
	Parent() Node
	setParent(Node)
}

// Statement is any node that performs an action but doesn't produce a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpr is any node that denotes a type: TypeReference (bare or
// qualified), PointerType, or ArrayType.
type TypeExpr interface {
	Node
	typeNode()
}

// base is embedded by every concrete node type; it implements the common
// Node plumbing (kind tag, position, parent back-pointer).
type base struct {
	kind   SyntaxKind
	pos    token.Position
	parent Node
}

func (b *base) Kind() SyntaxKind    { return b.kind }
func (b *base) Pos() token.Position { return b.pos }
func (b *base) Parent() Node        { return b.parent }
func (b *base) setParent(p Node)    { b.parent = p }

// SetParent attaches n's syntactic parent. It is exported for use by the
// binder, which is the only phase permitted to mutate the AST after parse.
func SetParent(n Node, parent Node) {
	n.setParent(parent)
}
