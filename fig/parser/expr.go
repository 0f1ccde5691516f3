package parser

import (
	"strconv"

	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

// parseExpr is the heart of the Pratt parser. It parses a prefix expression
// for the current token, then keeps consuming infix operators for as long
// as their binding power exceeds prec. Equal precedence does not recurse,
// giving left associative trees.
func (p *Parser) parseExpr(prec precedence) ast.Expr {
	prefix := p.prefixFns[p.cur().Type]
	if prefix == nil {
		p.errAt(p.cur(), util.StageParser, "no prefix parse rule for %s", p.cur().Type)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMI) && !p.peekIs(token.EOF) && prec < p.peekPrecedence() {
		infix := p.infixFns[p.peek().Type]
		if infix == nil {
			return left
		}

		p.next()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	op := p.cur()
	prec := p.curPrecedence()

	p.next()
	right := p.parseExpr(prec)
	if right == nil {
		return nil
	}

	return &ast.Infix{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (p *Parser) parsePrefix() ast.Expr {
	op := p.cur()

	p.next()
	right := p.parseExpr(PREFIX)
	if right == nil {
		return nil
	}

	return &ast.Prefix{
		Op:    op,
		Right: right,
	}
}

// Parentheses reset the minimum precedence and must be closed.
func (p *Parser) parseGroup() ast.Expr {
	p.next() // Lparen is guaranteed

	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return expr
}

func (p *Parser) parseIdent() ast.Expr {
	t := p.cur()
	return &ast.Ident{
		T:    t,
		Name: t.Lexeme,
	}
}

func (p *Parser) parseIntLit() ast.Expr {
	t := p.cur()

	n, err := strconv.ParseInt(t.Lexeme, 10, 64)
	if err != nil {
		p.errAt(t, util.StageParser, "could not parse '%s' as an integer", t.Lexeme)
		return nil
	}

	return &ast.IntLit{T: t, Value: n}
}

func (p *Parser) parseFloatLit() ast.Expr {
	t := p.cur()
	if t.Invalid {
		p.errAt(t, util.StageParser, "malformed float literal '%s'", t.Lexeme)
		return nil
	}

	f, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		p.errAt(t, util.StageParser, "could not parse '%s' as a float", t.Lexeme)
		return nil
	}

	return &ast.FloatLit{T: t, Value: f}
}
