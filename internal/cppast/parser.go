// Package cppast parses one C++ translation unit with tree-sitter and
// exposes it behind a small facade: node kinds, canonical-ish types
// recovered from declarator syntax, source extents, and children.
//
// tree-sitter recovers from syntax errors, so a file that does not parse
// cleanly still yields a best-effort tree; callers scan whatever comes
// back. There is no semantic layer: type information is bound from
// visible declarations only, and anything unresolvable reports a nil
// type.
package cppast

import (
	"errors"
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

	"github.com/standardbeagle/cppeffects/internal/debug"
	"github.com/standardbeagle/cppeffects/internal/source"
)

// Parser wraps a tree-sitter parser configured for C++. Not safe for
// concurrent use; Close releases the cgo handle.
type Parser struct {
	parser *tree_sitter.Parser
}

// NewParser creates a parser with the C++ grammar loaded.
func NewParser() (*Parser, error) {
	parser := tree_sitter.NewParser()
	language := tree_sitter.NewLanguage(tree_sitter_cpp.Language())
	if err := parser.SetLanguage(language); err != nil {
		parser.Close()
		return nil, fmt.Errorf("failed to load C++ grammar: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses the file's content and binds declared variable types.
// The returned translation unit owns the tree; Close it when done.
func (p *Parser) Parse(src *source.File) (*TranslationUnit, error) {
	tree := p.parser.Parse(src.Content(), nil)
	if tree == nil {
		return nil, errors.New("parser produced no tree")
	}
	tu := &TranslationUnit{
		file:     src,
		tree:     tree,
		bindings: make(map[string]*Type),
	}
	tu.bind(tree.RootNode())
	debug.Logf("parsed %s: %d bytes, %d bindings", src.Path(), len(src.Content()), len(tu.bindings))
	return tu, nil
}

// Close releases the parser.
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
}

// TranslationUnit is one parsed file. Nodes handed out by Functions and
// Children are owned by the translation unit and become invalid after
// Close.
type TranslationUnit struct {
	file     *source.File
	tree     *tree_sitter.Tree
	bindings map[string]*Type
}

// Close releases the parse tree.
func (tu *TranslationUnit) Close() {
	if tu.tree != nil {
		tu.tree.Close()
		tu.tree = nil
	}
}

// Functions returns the function and method definitions that are direct
// children of the translation-unit root, in encounter order. Definitions
// with a qualified name (out-of-line members like Widget::resize) report
// KindMethodDecl, plain definitions KindFunctionDecl.
func (tu *TranslationUnit) Functions() []Function {
	root := tu.tree.RootNode()
	var fns []Function
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil || child.Kind() != "function_definition" {
			continue
		}
		if fn, ok := tu.functionInfo(child); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Lookup returns the bound type of a declared variable, nil if unknown.
func (tu *TranslationUnit) Lookup(name string) *Type {
	return tu.bindings[name]
}

func (tu *TranslationUnit) functionInfo(node *tree_sitter.Node) (Function, bool) {
	decl := node.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Kind() {
		case "pointer_declarator", "reference_declarator":
			decl = innerDeclarator(decl)
		case "function_declarator":
			name := decl.ChildByFieldName("declarator")
			if name == nil {
				return Function{}, false
			}
			kind := KindFunctionDecl
			if name.Kind() == "qualified_identifier" {
				kind = KindMethodDecl
			}
			fn := Function{Name: tu.text(name), Kind: kind}
			if body := node.ChildByFieldName("body"); body != nil {
				fn.Body = tu.wrap(body)
			}
			return fn, true
		default:
			return Function{}, false
		}
	}
	return Function{}, false
}

func (tu *TranslationUnit) wrap(node *tree_sitter.Node) Node {
	return &tsNode{inner: node, tu: tu}
}

func (tu *TranslationUnit) text(node *tree_sitter.Node) string {
	content := tu.file.Content()
	start, end := int(node.StartByte()), int(node.EndByte())
	if start < 0 || end > len(content) || start > end {
		return ""
	}
	return string(content[start:end])
}

// extent converts tree-sitter's 0-based points to the 1-based,
// end-exclusive convention of source.Range.
func (tu *TranslationUnit) extent(node *tree_sitter.Node) source.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return source.Range{
		File:  tu.file.Path(),
		Start: source.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   source.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}
