package ast

import "github.com/smack0007/bigc/internal/token"

// FuncDeclaration is a top-level or (per the grammar) only top-level
// function declaration: `func NAME(ARGS): TYPE { BODY }`. It is a scope
// node: its Locals table holds its parameters. Body is a StatementBlock and
// so a scope of its own: `var`s declared in the body are recorded in
// Body's Locals, not here.
type FuncDeclaration struct {
	base
	scope
	Name       *Identifier
	Args       []*FuncArgument
	ReturnType TypeExpr
	Body       *StatementBlock
	IsExported bool
	Symbol     *Symbol
}

func NewFuncDeclaration(pos token.Position, name *Identifier, args []*FuncArgument, returnType TypeExpr, body *StatementBlock, exported bool) *FuncDeclaration {
	return &FuncDeclaration{base: base{kind: KindFuncDeclaration, pos: pos}, Name: name, Args: args, ReturnType: returnType, Body: body, IsExported: exported}
}

func (*FuncDeclaration) statementNode() {}

// FuncArgument is one parameter in a FuncDeclaration's argument list.
type FuncArgument struct {
	base
	Name *Identifier
	Type TypeExpr
}

func NewFuncArgument(pos token.Position, name *Identifier, typ TypeExpr) *FuncArgument {
	return &FuncArgument{base: base{kind: KindFuncArgument, pos: pos}, Name: name, Type: typ}
}

// StructDeclaration is `struct NAME { MEMBER* }`.
type StructDeclaration struct {
	base
	Name       *Identifier
	Members    []*StructMember
	IsExported bool
	Symbol     *Symbol
}

func NewStructDeclaration(pos token.Position, name *Identifier, members []*StructMember, exported bool) *StructDeclaration {
	return &StructDeclaration{base: base{kind: KindStructDeclaration, pos: pos}, Name: name, Members: members, IsExported: exported}
}

func (*StructDeclaration) statementNode() {}

// StructMember is one field of a StructDeclaration.
type StructMember struct {
	base
	Name   *Identifier
	Type   TypeExpr
	Symbol *Symbol
}

func NewStructMember(pos token.Position, name *Identifier, typ TypeExpr) *StructMember {
	return &StructMember{base: base{kind: KindStructMember, pos: pos}, Name: name, Type: typ}
}

// VariableDeclaration is `var NAME: TYPE [= EXPR];`. It appears both at
// top level (file-scoped) and inside a StatementBlock (block-scoped).
type VariableDeclaration struct {
	base
	Name        *Identifier
	Type        TypeExpr
	Initializer Expression // nil if omitted
	IsExported  bool
	Symbol      *Symbol
}

func NewVariableDeclaration(pos token.Position, name *Identifier, typ TypeExpr, init Expression, exported bool) *VariableDeclaration {
	return &VariableDeclaration{base: base{kind: KindVariableDeclaration, pos: pos}, Name: name, Type: typ, Initializer: init, IsExported: exported}
}

func (*VariableDeclaration) statementNode() {}

// EnumDeclaration is `enum NAME { MEMBER* }`.
type EnumDeclaration struct {
	base
	Name       *Identifier
	Members    []*EnumMember
	IsExported bool
	Symbol     *Symbol
}

func NewEnumDeclaration(pos token.Position, name *Identifier, members []*EnumMember, exported bool) *EnumDeclaration {
	return &EnumDeclaration{base: base{kind: KindEnumDeclaration, pos: pos}, Name: name, Members: members, IsExported: exported}
}

func (*EnumDeclaration) statementNode() {}

// EnumMember is one variant of an EnumDeclaration.
type EnumMember struct {
	base
	Name   *Identifier
	Symbol *Symbol
}

func NewEnumMember(pos token.Position, name *Identifier) *EnumMember {
	return &EnumMember{base: base{kind: KindEnumMember, pos: pos}, Name: name}
}

// ImportDeclaration is `import [NAME] "PATH";`. ResolvedFileName is filled
// in by the parser once the referenced file has been located.
type ImportDeclaration struct {
	base
	Alias            *Identifier // nil if the import has no explicit binding name
	Path             string
	ResolvedFileName string
	IsExported       bool
	Symbol           *Symbol
}

func NewImportDeclaration(pos token.Position, alias *Identifier, path string, exported bool) *ImportDeclaration {
	return &ImportDeclaration{base: base{kind: KindImportDeclaration, pos: pos}, Alias: alias, Path: path, IsExported: exported}
}

func (*ImportDeclaration) statementNode() {}
