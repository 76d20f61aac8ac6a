package cppast

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// The binder recovers variable types from declaration syntax: for every
// visible declaration (parameters, locals, file-scope variables) it maps
// the declared name to a Type built inside-out from the declarator
// nesting. The table is flat; a redeclared name keeps its last binding.
// Member access, call results, and dependent types stay unbound and
// resolve to nil, which downstream classification treats as "no match".

func (tu *TranslationUnit) bind(node *tree_sitter.Node) {
	switch node.Kind() {
	case "declaration", "parameter_declaration", "field_declaration":
		tu.bindDeclaration(node)
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		if child := node.NamedChild(i); child != nil {
			tu.bind(child)
		}
	}
}

func (tu *TranslationUnit) bindDeclaration(node *tree_sitter.Node) {
	base := &Type{Kind: TypeOther, Const: tu.hasConstQualifier(node)}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "field_identifier", "init_declarator",
			"pointer_declarator", "reference_declarator", "array_declarator":
			tu.bindDeclarator(child, base)
		}
	}
}

func (tu *TranslationUnit) bindDeclarator(node *tree_sitter.Node, t *Type) {
	switch node.Kind() {
	case "identifier", "field_identifier":
		tu.bindings[tu.text(node)] = t
	case "init_declarator":
		if inner := innerDeclarator(node); inner != nil {
			tu.bindDeclarator(inner, t)
		}
	case "pointer_declarator":
		// A type_qualifier inside the pointer declarator qualifies the
		// pointer itself (int* const), not the pointee.
		next := &Type{Kind: TypePointer, Pointee: t, Const: tu.hasConstQualifier(node)}
		if inner := innerDeclarator(node); inner != nil {
			tu.bindDeclarator(inner, next)
		}
	case "reference_declarator":
		next := &Type{Kind: TypeOther}
		if !tu.hasToken(node, "&&") {
			next = &Type{Kind: TypeLValueReference, Pointee: t}
		}
		if inner := innerDeclarator(node); inner != nil {
			tu.bindDeclarator(inner, next)
		}
	case "array_declarator":
		// Element structure is irrelevant to the pattern set; bind the
		// name with an opaque type so lookups stay best-effort.
		if inner := innerDeclarator(node); inner != nil {
			tu.bindDeclarator(inner, &Type{Kind: TypeOther})
		}
	}
}

// innerDeclarator returns the nested declarator of a declarator node,
// preferring the grammar's field and falling back to the first named
// child with a declarator-ish kind.
func innerDeclarator(node *tree_sitter.Node) *tree_sitter.Node {
	if inner := node.ChildByFieldName("declarator"); inner != nil {
		return inner
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "field_identifier", "init_declarator",
			"pointer_declarator", "reference_declarator",
			"array_declarator", "function_declarator",
			"parenthesized_declarator":
			return child
		}
	}
	return nil
}

func (tu *TranslationUnit) hasConstQualifier(node *tree_sitter.Node) bool {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Kind() == "type_qualifier" && tu.text(child) == "const" {
			return true
		}
	}
	return false
}

// hasToken scans raw children, anonymous tokens included.
func (tu *TranslationUnit) hasToken(node *tree_sitter.Node, token string) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && tu.text(child) == token {
			return true
		}
	}
	return false
}

// typeOf resolves the type of an expression structurally. Identifiers
// come from the binding table; unary * and & adjust one pointer level;
// an assignment carries its left-hand side's type. Everything else is
// unresolved.
func (tu *TranslationUnit) typeOf(node *tree_sitter.Node) *Type {
	switch node.Kind() {
	case "identifier", "field_identifier":
		return tu.bindings[tu.text(node)]
	case "parenthesized_expression":
		if inner := node.NamedChild(0); inner != nil {
			return tu.typeOf(inner)
		}
	case "pointer_expression":
		arg := node.ChildByFieldName("argument")
		op := node.ChildByFieldName("operator")
		if arg == nil || op == nil {
			return nil
		}
		t := tu.typeOf(arg)
		if t == nil {
			return nil
		}
		switch tu.text(op) {
		case "*":
			if t.Kind == TypePointer {
				return t.Pointee
			}
		case "&":
			return &Type{Kind: TypePointer, Pointee: t}
		}
	case "assignment_expression":
		if left := node.ChildByFieldName("left"); left != nil {
			return tu.typeOf(left)
		}
	}
	return nil
}
