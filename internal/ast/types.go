package ast

import "github.com/smack0007/bigc/internal/token"

// TypeReference is a bare or qualified type name: `Identifier` or
// `Identifier.Identifier`. Qualifier is nil for an unqualified reference.
type TypeReference struct {
	base
	Qualifier *Identifier
	Name      *Identifier
	Symbol    *Symbol
}

func NewTypeReference(pos token.Position, qualifier, name *Identifier) *TypeReference {
	return &TypeReference{base: base{kind: KindTypeReference, pos: pos}, Qualifier: qualifier, Name: name}
}
func (*TypeReference) typeNode() {}

// PointerType is `* TYPE`.
type PointerType struct {
	base
	Inner TypeExpr
}

func NewPointerType(pos token.Position, inner TypeExpr) *PointerType {
	return &PointerType{base: base{kind: KindPointerType, pos: pos}, Inner: inner}
}
func (*PointerType) typeNode() {}

// ArrayType is `[] TYPE`.
type ArrayType struct {
	base
	Element TypeExpr
}

func NewArrayType(pos token.Position, element TypeExpr) *ArrayType {
	return &ArrayType{base: base{kind: KindArrayType, pos: pos}, Element: element}
}
func (*ArrayType) typeNode() {}

// ArrayDepth returns how many ArrayType layers wrap t, used by the C/C++
// emitters to print `[]` pairs equal to the array-nesting depth.
func ArrayDepth(t TypeExpr) int {
	depth := 0
	for {
		at, ok := t.(*ArrayType)
		if !ok {
			return depth
		}
		depth++
		t = at.Element
	}
}
