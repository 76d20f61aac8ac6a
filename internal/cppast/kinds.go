package cppast

// NodeKind is the closed set of syntactic categories the classifier
// consumes. Everything else in the tree is KindOther and is only walked
// through, never matched.
type NodeKind uint8

const (
	KindOther NodeKind = iota
	KindUnaryExpr
	KindAssignExpr
	KindNewExpr
	KindThrowExpr
	KindFunctionDecl
	KindMethodDecl
)

// String returns the kind name for debug output.
func (k NodeKind) String() string {
	switch k {
	case KindUnaryExpr:
		return "unary_expression"
	case KindAssignExpr:
		return "assignment_expression"
	case KindNewExpr:
		return "new_expression"
	case KindThrowExpr:
		return "throw_expression"
	case KindFunctionDecl:
		return "function_declaration"
	case KindMethodDecl:
		return "method_declaration"
	default:
		return "other"
	}
}

// TypeKind is the closed set of type categories the classifier consumes.
type TypeKind uint8

const (
	TypeOther TypeKind = iota
	TypePointer
	TypeLValueReference
)

// Type is the canonical shape of a declared or derived C++ type, reduced
// to what side-effect classification needs: pointer/reference structure
// and const qualification. Pointee is set for pointer and lvalue
// reference kinds.
type Type struct {
	Kind    TypeKind
	Pointee *Type
	Const   bool
}

// IsConst reports whether the type is const-qualified. Safe on nil.
func (t *Type) IsConst() bool { return t != nil && t.Const }
