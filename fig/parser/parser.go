package parser

import (
	"fmt"

	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

// Operator binding power, low to high. Higher binds tighter.
type precedence int

const (
	LOWEST precedence = iota
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // grouping
)

var precedences = map[token.TokenType]precedence{
	token.EQ_EQ:   EQUALS,
	token.NOT_EQ:  EQUALS,
	token.LESS:    LESSGREATER,
	token.GREATER: LESSGREATER,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(left ast.Expr) ast.Expr
)

type Parser struct {
	errors *util.ErrorHandler
	file   *token.File
	toks   []token.Token
	pos    int // Current token being looked at

	prefixFns map[token.TokenType]prefixParseFn
	infixFns  map[token.TokenType]infixParseFn
}

func New(file *token.File, toks []token.Token) *Parser {
	if len(toks) == 0 {
		toks = []token.Token{{Type: token.EOF, Eof: true}}
	}

	p := &Parser{
		toks:   toks,
		file:   file,
		errors: util.NewErrorHandler(),
	}

	p.prefixFns = map[token.TokenType]prefixParseFn{
		token.INTEGER: p.parseIntLit,
		token.FLOAT:   p.parseFloatLit,
		token.IDENT:   p.parseIdent,
		token.MINUS:   p.parsePrefix,
		token.NOT:     p.parsePrefix,
		token.LPAREN:  p.parseGroup,
	}

	p.infixFns = map[token.TokenType]infixParseFn{
		token.PLUS:    p.parseInfix,
		token.MINUS:   p.parseInfix,
		token.STAR:    p.parseInfix,
		token.SLASH:   p.parseInfix,
		token.LESS:    p.parseInfix,
		token.GREATER: p.parseInfix,
		token.EQ_EQ:   p.parseInfix,
		token.NOT_EQ:  p.parseInfix,
	}

	return p
}

// Parse consumes the full token stream and returns the Program root.
// Parsing never stops at the first error: a malformed statement is
// reported and parsing resumes at the next statement boundary, so all
// syntax errors of a run are collected together. Check Error after.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.cur().Eof {
		if !p.match(token.SEMI) {
			if stmt := p.parseStmt(); stmt != nil {
				prog.Stmts = append(prog.Stmts, stmt)
			} else {
				p.sync()
			}
		}

		p.next()
	}

	return prog
}

func (p *Parser) Error() error {
	return p.errors.Error()
}

func (p *Parser) Diagnostics() []util.Diagnostic {
	return p.errors.Diagnostics()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *Parser) match(tt token.TokenType) bool {
	return p.cur().Type == tt
}

func (p *Parser) peekIs(tt token.TokenType) bool {
	return p.peek().Type == tt
}

// expectPeek advances if the next token has the expected type, otherwise
// it reports an error and stays put.
func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekIs(tt) {
		p.next()
		return true
	}

	p.errAt(p.peek(), util.StageParser, "expected next token %s, got %s", tt, p.peek().Type)
	return false
}

func (p *Parser) curPrecedence() precedence {
	if prec, ok := precedences[p.cur().Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}
	return LOWEST
}

// sync skips ahead to the next statement boundary after an error.
func (p *Parser) sync() {
	for !p.cur().Eof && !p.match(token.SEMI) {
		p.next()
	}
}

func (p *Parser) errAt(tok token.Token, stage util.Stage, format string, args ...any) {
	p.errors.Add(util.Diagnostic{
		Stage: stage,
		Msg:   fmt.Sprintf(format, args...),
		Pos:   tok.Pos,
	})
}
