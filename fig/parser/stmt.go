package parser

import (
	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Type {
	case token.ILLEGAL:
		// The scanner defers unknown characters to us. Reported with the
		// scanner stage so the source of the problem is clear.
		p.errAt(p.cur(), util.StageScanner, "illegal character '%s'", p.cur().Lexeme)
		return nil

	case token.IDENT:
		if p.peekIs(token.COLON) {
			return p.parseVarDecl()
		}
		if p.peekIs(token.EQ) {
			return p.parseAssign()
		}
	}

	return p.parseExprStmt()
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekIs(token.SEMI) {
		p.next()
	}

	return &ast.ExprStmt{E: expr}
}

// Variable declaration: "name: type = value".
func (p *Parser) parseVarDecl() ast.Stmt {
	stmt := &ast.VarDecl{Name: p.cur()}

	p.next() // Colon is guaranteed by caller

	if !p.expectPeek(token.TYPE) {
		return nil
	}
	stmt.Type = p.cur()

	if !p.expectPeek(token.EQ) {
		return nil
	}

	p.next()
	stmt.Val = p.parseExpr(LOWEST)
	if stmt.Val == nil {
		return nil
	}

	if p.peekIs(token.SEMI) {
		p.next()
	}

	return stmt
}

// Assignment to an existing name: "name = value".
func (p *Parser) parseAssign() ast.Stmt {
	stmt := &ast.Assign{Name: p.cur()}

	p.next() // Eq is guaranteed by caller
	p.next()

	stmt.Val = p.parseExpr(LOWEST)
	if stmt.Val == nil {
		return nil
	}

	if p.peekIs(token.SEMI) {
		p.next()
	}

	return stmt
}
