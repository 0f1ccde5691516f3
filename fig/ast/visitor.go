package ast

type Visitor interface {
	VisitExprStmt(node *ExprStmt)
	VisitVarDecl(node *VarDecl)
	VisitAssign(node *Assign)
	VisitIdent(node *Ident)
	VisitIntLit(node *IntLit)
	VisitFloatLit(node *FloatLit)
	VisitPrefix(node *Prefix)
	VisitInfix(node *Infix)
}

func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *VarDecl) Accept(v Visitor)  { v.VisitVarDecl(n) }
func (n *Assign) Accept(v Visitor)   { v.VisitAssign(n) }
func (n *Ident) Accept(v Visitor)    { v.VisitIdent(n) }
func (n *IntLit) Accept(v Visitor)   { v.VisitIntLit(n) }
func (n *FloatLit) Accept(v Visitor) { v.VisitFloatLit(n) }
func (n *Prefix) Accept(v Visitor)   { v.VisitPrefix(n) }
func (n *Infix) Accept(v Visitor)    { v.VisitInfix(n) }
