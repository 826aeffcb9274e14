package binder

import "github.com/smack0007/bigc/internal/ast"

// initFile runs phase 1 (Initialize) over every node in sf: parent
// back-pointers, empty locals tables on scope nodes, and each scope
// node's nextSymbolScope.
func initFile(sf *ast.SourceFile) {
	walk(sf, nil, nil)
}

// walk sets n's parent, initializes n's scope (if it is a ScopeNode), and
// recurses into n's children with the correct enclosing scope.
func walk(n ast.Node, parent ast.Node, enclosing ast.Node) {
	if n == nil {
		return
	}

	ast.SetParent(n, parent)

	nextEnclosing := enclosing
	if sn, ok := n.(ast.ScopeNode); ok {
		ast.InitScope(sn)
		ast.SetNextScope(sn, enclosing)
		nextEnclosing = n
	}

	switch node := n.(type) {
	case *ast.SourceFile:
		for _, s := range node.Statements {
			walk(s, n, nextEnclosing)
		}

	case *ast.FuncDeclaration:
		walk(node.Name, n, nextEnclosing)
		for _, a := range node.Args {
			walk(a, n, nextEnclosing)
		}
		walk(node.ReturnType, n, nextEnclosing)
		walk(node.Body, n, nextEnclosing)

	case *ast.FuncArgument:
		walk(node.Name, n, nextEnclosing)
		walk(node.Type, n, nextEnclosing)

	case *ast.StructDeclaration:
		walk(node.Name, n, nextEnclosing)
		for _, m := range node.Members {
			walk(m, n, nextEnclosing)
		}

	case *ast.StructMember:
		walk(node.Name, n, nextEnclosing)
		walk(node.Type, n, nextEnclosing)

	case *ast.VariableDeclaration:
		walk(node.Name, n, nextEnclosing)
		walk(node.Type, n, nextEnclosing)
		if node.Initializer != nil {
			walk(node.Initializer, n, nextEnclosing)
		}

	case *ast.EnumDeclaration:
		walk(node.Name, n, nextEnclosing)
		for _, m := range node.Members {
			walk(m, n, nextEnclosing)
		}

	case *ast.EnumMember:
		walk(node.Name, n, nextEnclosing)

	case *ast.ImportDeclaration:
		if node.Alias != nil {
			walk(node.Alias, n, nextEnclosing)
		}

	case *ast.StatementBlock:
		for _, s := range node.Statements {
			walk(s, n, nextEnclosing)
		}

	case *ast.IfStatement:
		walk(node.Condition, n, nextEnclosing)
		walk(node.Then, n, nextEnclosing)
		if node.Else != nil {
			walk(node.Else, n, nextEnclosing)
		}

	case *ast.WhileStatement:
		walk(node.Condition, n, nextEnclosing)
		walk(node.Body, n, nextEnclosing)

	case *ast.ReturnStatement:
		if node.Value != nil {
			walk(node.Value, n, nextEnclosing)
		}

	case *ast.DeferStatement:
		walk(node.Call, n, nextEnclosing)

	case *ast.ExpressionStatement:
		walk(node.Expr, n, nextEnclosing)

	case *ast.UnaryExpression:
		walk(node.Operand, n, nextEnclosing)

	case *ast.AdditiveExpression:
		walk(node.Left, n, nextEnclosing)
		walk(node.Right, n, nextEnclosing)

	case *ast.MultiplicativeExpression:
		walk(node.Left, n, nextEnclosing)
		walk(node.Right, n, nextEnclosing)

	case *ast.EqualityExpression:
		walk(node.Left, n, nextEnclosing)
		walk(node.Right, n, nextEnclosing)

	case *ast.ComparisonExpression:
		walk(node.Left, n, nextEnclosing)
		walk(node.Right, n, nextEnclosing)

	case *ast.LogicalExpression:
		walk(node.Left, n, nextEnclosing)
		walk(node.Right, n, nextEnclosing)

	case *ast.AssignmentExpression:
		walk(node.Target, n, nextEnclosing)
		walk(node.Value, n, nextEnclosing)

	case *ast.ParenthesizedExpression:
		walk(node.Inner, n, nextEnclosing)

	case *ast.CallExpression:
		walk(node.Callee, n, nextEnclosing)
		for _, a := range node.Args {
			walk(a, n, nextEnclosing)
		}

	case *ast.ElementAccessExpression:
		walk(node.Object, n, nextEnclosing)
		walk(node.Index, n, nextEnclosing)

	case *ast.PropertyAccessExpression:
		walk(node.Object, n, nextEnclosing)
		walk(node.Name, n, nextEnclosing)

	case *ast.ArrayLiteralExpression:
		for _, e := range node.Elements {
			walk(e, n, nextEnclosing)
		}

	case *ast.StructLiteralExpression:
		if node.Type != nil {
			walk(node.Type, n, nextEnclosing)
		}
		for _, e := range node.Elements {
			walk(e, n, nextEnclosing)
		}

	case *ast.StructLiteralElement:
		walk(node.Name, n, nextEnclosing)
		walk(node.Value, n, nextEnclosing)

	case *ast.TypeReference:
		if node.Qualifier != nil {
			walk(node.Qualifier, n, nextEnclosing)
		}
		walk(node.Name, n, nextEnclosing)

	case *ast.PointerType:
		walk(node.Inner, n, nextEnclosing)

	case *ast.ArrayType:
		walk(node.Element, n, nextEnclosing)

		// Leaves (IntegerLiteral, FloatLiteral, StringLiteral, CharLiteral,
		// BooleanLiteral, NullLiteral, Identifier) have no children.
	}
}
