package ast

import (
	"fmt"
	"strings"
)

// DebugVisitor prints the AST back as source, with every expression fully
// parenthesized so that operator binding is visible. Used for testing the
// parser (by comparing AST to string) and for debugging.
type DebugVisitor struct {
	sb *strings.Builder
}

func NewDebugVisitor() *DebugVisitor {
	return &DebugVisitor{
		sb: &strings.Builder{},
	}
}

// Sprint walks the tree and returns the printed form, one statement
// per line.
func Sprint(tree *Program) string {
	d := NewDebugVisitor()
	tree.Walk(d)
	return strings.TrimSpace(d.String())
}

func (d *DebugVisitor) String() string {
	return d.sb.String()
}

func (d *DebugVisitor) write(f string, args ...any) {
	fmt.Fprintf(d.sb, f, args...)
}

func (d *DebugVisitor) VisitExprStmt(node *ExprStmt) {
	node.E.Accept(d)
	d.write(";\n")
}

func (d *DebugVisitor) VisitVarDecl(node *VarDecl) {
	d.write("%s: %s = ", node.Name.Lexeme, node.Type.Lexeme)
	node.Val.Accept(d)
	d.write(";\n")
}

func (d *DebugVisitor) VisitAssign(node *Assign) {
	d.write("%s = ", node.Name.Lexeme)
	node.Val.Accept(d)
	d.write(";\n")
}

func (d *DebugVisitor) VisitIdent(node *Ident) {
	d.write("%s", node.Name)
}

func (d *DebugVisitor) VisitIntLit(node *IntLit) {
	d.write("%d", node.Value)
}

func (d *DebugVisitor) VisitFloatLit(node *FloatLit) {
	d.write("%g", node.Value)
}

func (d *DebugVisitor) VisitPrefix(node *Prefix) {
	d.write("(%s", node.Op.Lexeme)
	node.Right.Accept(d)
	d.write(")")
}

func (d *DebugVisitor) VisitInfix(node *Infix) {
	d.write("(")
	node.Left.Accept(d)
	d.write(" %s ", node.Op.Lexeme)
	node.Right.Accept(d)
	d.write(")")
}
