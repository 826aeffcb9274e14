package binder

import (
	"github.com/smack0007/bigc/internal/ast"
	"github.com/smack0007/bigc/internal/bigerrors"
)

// declareTopLevel constructs stmt's Symbol (if it is a declaration) and
// inserts it into sf's Locals (and Exports, if exported). Run across every
// file in the program before any file's bindTopLevelBody, so that forward
// references — within a file or across an import — always resolve (see
// Program's doc comment in binder.go).
func (b *binder) declareTopLevel(sf *ast.SourceFile, stmt ast.Statement) *bigerrors.CompilerError {
	// Symbol construction is guarded on the declaration's existing Symbol
	// so that re-binding reuses the same Symbol values; the declareInto
	// insertion always runs, because phase 1 hands every scope node a fresh
	// Locals table on each pass.
	switch st := stmt.(type) {
	case *ast.FuncDeclaration:
		if st.Symbol == nil {
			sym := &ast.Symbol{SourceFileName: sf.FileName, Name: st.Name.Value, Flags: ast.FlagFunction, Decl: st}
			st.Symbol = sym
			st.Name.Symbol = sym
		}
		declareInto(sf, st.Name.Value, st.Symbol, st.IsExported)

	case *ast.StructDeclaration:
		if st.Symbol == nil {
			members := ast.NewSymbolTable()
			for _, m := range st.Members {
				msym := &ast.Symbol{SourceFileName: sf.FileName, Name: m.Name.Value, Flags: ast.FlagStructMember, Decl: m}
				m.Symbol = msym
				m.Name.Symbol = msym
				members[m.Name.Value] = msym
			}
			sym := &ast.Symbol{SourceFileName: sf.FileName, Name: st.Name.Value, Flags: ast.FlagStruct, Members: members, Decl: st}
			st.Symbol = sym
			st.Name.Symbol = sym
		}
		declareInto(sf, st.Name.Value, st.Symbol, st.IsExported)

	case *ast.EnumDeclaration:
		if st.Symbol == nil {
			members := ast.NewSymbolTable()
			for _, m := range st.Members {
				msym := &ast.Symbol{SourceFileName: sf.FileName, Name: m.Name.Value, Flags: ast.FlagEnumMember, Decl: m}
				m.Symbol = msym
				m.Name.Symbol = msym
				members[m.Name.Value] = msym
			}
			sym := &ast.Symbol{SourceFileName: sf.FileName, Name: st.Name.Value, Flags: ast.FlagEnum, Members: members, Decl: st}
			st.Symbol = sym
			st.Name.Symbol = sym
		}
		declareInto(sf, st.Name.Value, st.Symbol, st.IsExported)

	case *ast.VariableDeclaration:
		if st.Symbol == nil {
			sym := &ast.Symbol{SourceFileName: sf.FileName, Name: st.Name.Value, Flags: ast.FlagVariable, Decl: st}
			st.Symbol = sym
			st.Name.Symbol = sym
		}
		declareInto(sf, st.Name.Value, st.Symbol, st.IsExported)

	case *ast.ImportDeclaration:
		name := moduleName(st)
		if st.Symbol == nil {
			resolved := b.prog.SourceFiles[st.ResolvedFileName]
			sym := &ast.Symbol{SourceFileName: sf.FileName, Name: name, Flags: ast.FlagModule, Members: resolved.Exports, Decl: st}
			st.Symbol = sym
			if st.Alias != nil {
				st.Alias.Symbol = sym
			}
		}
		declareInto(sf, name, st.Symbol, st.IsExported)
	}
	return nil
}

func declareInto(sf *ast.SourceFile, name string, sym *ast.Symbol, exported bool) {
	sf.Locals()[name] = sym
	if exported {
		sf.Exports[name] = sym
	}
}

func bindTopLevelBody(stmt ast.Statement) *bigerrors.CompilerError {
	switch st := stmt.(type) {
	case *ast.FuncDeclaration:
		for _, a := range st.Args {
			if err := resolveType(a.Type); err != nil {
				return err
			}
			if a.Name.Symbol == nil {
				sym := &ast.Symbol{SourceFileName: st.Symbol.SourceFileName, Name: a.Name.Value, Flags: ast.FlagVariable, Decl: a}
				if m := structMembersOfType(a.Type); m != nil {
					sym.Members = m
				}
				a.Name.Symbol = sym
			}
			st.Locals()[a.Name.Value] = a.Name.Symbol
		}
		if err := resolveType(st.ReturnType); err != nil {
			return err
		}
		return bindBlock(st.Body)

	case *ast.StructDeclaration:
		for _, m := range st.Members {
			if err := resolveType(m.Type); err != nil {
				return err
			}
		}
		return nil

	case *ast.VariableDeclaration:
		if err := resolveType(st.Type); err != nil {
			return err
		}
		if st.Initializer != nil {
			if err := resolveExpr(st.Initializer); err != nil {
				return err
			}
		}
		if m := structMembersOfType(st.Type); m != nil {
			st.Symbol.Members = m
		}
		return nil
	}
	return nil
}

func bindBlock(blk *ast.StatementBlock) *bigerrors.CompilerError {
	for _, stmt := range blk.Statements {
		if err := bindStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func bindStatement(s ast.Statement) *bigerrors.CompilerError {
	switch st := s.(type) {
	case *ast.StatementBlock:
		return bindBlock(st)

	case *ast.VariableDeclaration:
		if st.Symbol != nil {
			// Re-binding: the symbol survives from the first pass but phase 1
			// gave the scope a fresh Locals table, so re-register it.
			enclosingScope(st).Locals()[st.Name.Value] = st.Symbol
			return nil
		}
		if err := resolveType(st.Type); err != nil {
			return err
		}
		if st.Initializer != nil {
			if err := resolveExpr(st.Initializer); err != nil {
				return err
			}
		}
		scope := enclosingScope(st)
		sym := &ast.Symbol{SourceFileName: rootFile(st).FileName, Name: st.Name.Value, Flags: ast.FlagVariable, Decl: st}
		if m := structMembersOfType(st.Type); m != nil {
			sym.Members = m
		}
		st.Symbol = sym
		st.Name.Symbol = sym
		scope.Locals()[st.Name.Value] = sym
		return nil

	case *ast.IfStatement:
		if err := resolveExpr(st.Condition); err != nil {
			return err
		}
		if err := bindStatement(st.Then); err != nil {
			return err
		}
		if st.Else != nil {
			return bindStatement(st.Else)
		}
		return nil

	case *ast.WhileStatement:
		if err := resolveExpr(st.Condition); err != nil {
			return err
		}
		return bindStatement(st.Body)

	case *ast.ReturnStatement:
		if st.Value == nil {
			return nil
		}
		return resolveExpr(st.Value)

	case *ast.DeferStatement:
		return resolveExpr(st.Call)

	case *ast.ExpressionStatement:
		return resolveExpr(st.Expr)
	}
	return nil
}

// resolveType attaches a Symbol to t's name (or, for a qualified
// reference, to both the qualifier and the name), skipping the int32
// primitive pass-through.
func resolveType(t ast.TypeExpr) *bigerrors.CompilerError {
	switch v := t.(type) {
	case *ast.TypeReference:
		if v.Symbol != nil {
			return nil
		}
		if v.Qualifier != nil {
			qualSym := lookup(v.Qualifier.Value, enclosingScope(v.Qualifier))
			if qualSym == nil {
				return bigerrors.New(bigerrors.MissingSymbol, v.Qualifier.Pos(), "undefined symbol "+v.Qualifier.Value)
			}
			v.Qualifier.Symbol = qualSym
			nameSym, ok := qualSym.Members[v.Name.Value]
			if !ok {
				return bigerrors.New(bigerrors.MissingSymbol, v.Name.Pos(), "undefined member "+v.Name.Value+" on "+v.Qualifier.Value)
			}
			v.Name.Symbol = nameSym
			v.Symbol = nameSym
			return nil
		}

		if builtinNames[v.Name.Value] {
			return nil
		}
		sym := lookup(v.Name.Value, enclosingScope(v.Name))
		if sym == nil {
			return bigerrors.New(bigerrors.MissingSymbol, v.Name.Pos(), "undefined type "+v.Name.Value)
		}
		v.Name.Symbol = sym
		v.Symbol = sym
		return nil

	case *ast.PointerType:
		return resolveType(v.Inner)

	case *ast.ArrayType:
		return resolveType(v.Element)
	}
	return nil
}

// resolveExpr attaches Symbols to every Identifier and PropertyAccess
// reference reachable from e.
func resolveExpr(e ast.Expression) *bigerrors.CompilerError {
	switch v := e.(type) {
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.CharLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return nil

	case *ast.Identifier:
		return resolveIdentifier(v)

	case *ast.UnaryExpression:
		return resolveExpr(v.Operand)

	case *ast.AdditiveExpression:
		return resolveBinary(v.Left, v.Right)
	case *ast.MultiplicativeExpression:
		return resolveBinary(v.Left, v.Right)
	case *ast.EqualityExpression:
		return resolveBinary(v.Left, v.Right)
	case *ast.ComparisonExpression:
		return resolveBinary(v.Left, v.Right)
	case *ast.LogicalExpression:
		return resolveBinary(v.Left, v.Right)

	case *ast.AssignmentExpression:
		if err := resolveIdentifier(v.Target); err != nil {
			return err
		}
		return resolveExpr(v.Value)

	case *ast.ParenthesizedExpression:
		return resolveExpr(v.Inner)

	case *ast.CallExpression:
		if err := resolveExpr(v.Callee); err != nil {
			return err
		}
		for _, a := range v.Args {
			if err := resolveExpr(a); err != nil {
				return err
			}
		}
		return nil

	case *ast.ElementAccessExpression:
		if err := resolveExpr(v.Object); err != nil {
			return err
		}
		return resolveExpr(v.Index)

	case *ast.PropertyAccessExpression:
		if err := resolveExpr(v.Object); err != nil {
			return err
		}
		lhs := symbolOf(v.Object)
		if lhs == nil || lhs.Members == nil {
			return bigerrors.New(bigerrors.MissingSymbol, v.Name.Pos(), "undefined member "+v.Name.Value)
		}
		sym, ok := lhs.Members[v.Name.Value]
		if !ok {
			return bigerrors.New(bigerrors.MissingSymbol, v.Name.Pos(), "undefined member "+v.Name.Value+" on "+lhs.Name)
		}
		v.Name.Symbol = sym
		v.Symbol = sym
		return nil

	case *ast.ArrayLiteralExpression:
		for _, elem := range v.Elements {
			if err := resolveExpr(elem); err != nil {
				return err
			}
		}
		return nil

	case *ast.StructLiteralExpression:
		if v.Type != nil {
			if err := resolveType(v.Type); err != nil {
				return err
			}
		}
		for _, elem := range v.Elements {
			if err := resolveExpr(elem.Value); err != nil {
				return err
			}
			if fieldMembers := structMembersOfType(v.Type); fieldMembers != nil {
				if sym, ok := fieldMembers[elem.Name.Value]; ok {
					elem.Name.Symbol = sym
				}
			}
		}
		return nil
	}
	return nil
}

func resolveBinary(left, right ast.Expression) *bigerrors.CompilerError {
	if err := resolveExpr(left); err != nil {
		return err
	}
	return resolveExpr(right)
}

// resolveIdentifier resolves id as a value reference, skipping the
// println ambient-function pass-through.
func resolveIdentifier(id *ast.Identifier) *bigerrors.CompilerError {
	if id.Symbol != nil || builtinNames[id.Value] {
		return nil
	}
	sym := lookup(id.Value, enclosingScope(id))
	if sym == nil {
		return bigerrors.New(bigerrors.MissingSymbol, id.Pos(), "undefined symbol "+id.Value)
	}
	id.Symbol = sym
	return nil
}

// symbolOf extracts the Symbol attached to e, if any, for use as the LHS
// of a property access.
func symbolOf(e ast.Expression) *ast.Symbol {
	switch v := e.(type) {
	case *ast.Identifier:
		return v.Symbol
	case *ast.PropertyAccessExpression:
		return v.Symbol
	case *ast.ParenthesizedExpression:
		return symbolOf(v.Inner)
	}
	return nil
}

// structMembersOfType unwraps pointer types to find a TypeReference bound
// to a Struct symbol, and returns its Members table. This is how a
// variable or parameter of struct (or pointer-to-struct) type supports
// property access on its fields: the variable's own Symbol.Members is
// populated from its declared type's Struct symbol.
func structMembersOfType(t ast.TypeExpr) ast.SymbolTable {
	for {
		switch v := t.(type) {
		case *ast.PointerType:
			t = v.Inner
		case *ast.TypeReference:
			if v.Symbol != nil && v.Symbol.Flags == ast.FlagStruct {
				return v.Symbol.Members
			}
			return nil
		default:
			return nil
		}
	}
}
