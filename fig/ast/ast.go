package ast

import "github.com/fig-lang/fig/fig/token"

type (
	// Program is the tree root, an ordered list of statements.
	Program struct {
		Stmts []Stmt
	}

	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	// Expr is a node producing a value. The node set is closed: only the
	// types in this package implement the marker method.
	Expr interface {
		Node
		exprNode()
	}

	Stmt interface {
		Node
		stmtNode()
	}
)

func (p *Program) Walk(v Visitor) {
	for _, stmt := range p.Stmts {
		stmt.Accept(v)
	}
}

type (
	// Single token identifier literal.
	Ident struct {
		T    token.Token
		Name string // Copied from the tokens Lexeme value for ease of use
	}

	IntLit struct {
		T     token.Token
		Value int64
	}

	FloatLit struct {
		T     token.Token
		Value float64
	}

	// Unary operator expression, eg. -x or !x.
	Prefix struct {
		Op    token.Token
		Right Expr
	}

	// Binary operator expression, eg. a + b.
	Infix struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}
)

type (
	// A bare expression in statement position.
	ExprStmt struct {
		E Expr
	}

	// Typed variable declaration: "name: type = value".
	VarDecl struct {
		Name token.Token
		Type token.Token // TYPE token, lexeme is int or float
		Val  Expr
	}

	// Assignment to a previously declared name: "name = value".
	Assign struct {
		Name token.Token
		Val  Expr
	}
)

func (i *IntLit) exprNode()   {}
func (f *FloatLit) exprNode() {}
func (i *Ident) exprNode()    {}
func (p *Prefix) exprNode()   {}
func (i *Infix) exprNode()    {}

func (e *ExprStmt) stmtNode() {}
func (v *VarDecl) stmtNode()  {}
func (a *Assign) stmtNode()   {}

func (i *Ident) Pos() token.Pos { return i.T.Pos }
func (i *Ident) End() token.Pos { return i.T.EndPos }

func (i *IntLit) Pos() token.Pos { return i.T.Pos }
func (i *IntLit) End() token.Pos { return i.T.EndPos }

func (f *FloatLit) Pos() token.Pos { return f.T.Pos }
func (f *FloatLit) End() token.Pos { return f.T.EndPos }

func (p *Prefix) Pos() token.Pos { return p.Op.Pos }
func (p *Prefix) End() token.Pos { return p.Right.End() }

func (i *Infix) Pos() token.Pos { return i.Left.Pos() }
func (i *Infix) End() token.Pos { return i.Right.End() }

func (e *ExprStmt) Pos() token.Pos { return e.E.Pos() }
func (e *ExprStmt) End() token.Pos { return e.E.End() }

func (v *VarDecl) Pos() token.Pos { return v.Name.Pos }
func (v *VarDecl) End() token.Pos { return v.Val.End() }

func (a *Assign) Pos() token.Pos { return a.Name.Pos }
func (a *Assign) End() token.Pos { return a.Val.End() }
