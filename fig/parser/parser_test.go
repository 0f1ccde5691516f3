package parser

import (
	"testing"

	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/scanner"
	"github.com/fig-lang/fig/fig/token"
)

func parserFrom(src string) *Parser {
	file := &token.File{}
	s := scanner.New(file, []byte(src))
	toks := s.ScanAll()
	return New(file, toks)
}

func TestNoInput(t *testing.T) {
	p := parserFrom("")
	prog := p.Parse()

	if p.Error() != nil {
		t.Errorf("expected no error for empty input, got %s", p.Error())
	}
	if len(prog.Stmts) != 0 {
		t.Errorf("expected no statements, got %d", len(prog.Stmts))
	}
}

func TestPrecedence(t *testing.T) {
	// src: printed AST with explicit parenthesis
	cases := map[string]string{
		"1 + 2 * 3;":       "(1 + (2 * 3));",
		"1 * 2 + 3;":       "((1 * 2) + 3);",
		"(1 + 2) * 3;":     "((1 + 2) * 3);",
		"-5 + 3;":          "((-5) + 3);",
		"!x == 1;":         "((!x) == 1);",
		"1 - 2 - 3;":       "((1 - 2) - 3);",
		"8 / 4 / 2;":       "((8 / 4) / 2);",
		"1 < 2 == 3 > 4;":  "((1 < 2) == (3 > 4));",
		"1 + 2 < 3 * 4;":   "((1 + 2) < (3 * 4));",
		"-(1 + 2);":        "(-(1 + 2));",
		"--5;":             "(-(-5));",
		"a + b * c + d;":   "((a + (b * c)) + d);",
		"3 + 4 * 5 != 23;": "((3 + (4 * 5)) != 23);",
	}

	for src, expect := range cases {
		p := parserFrom(src)
		prog := p.Parse()

		if err := p.Error(); err != nil {
			t.Errorf("unexpected error for %q: %s", src, err)
			continue
		}

		if got := ast.Sprint(prog); got != expect {
			t.Errorf("expected %q, got %q, for %q", expect, got, src)
		}
	}
}

func TestPrefixTree(t *testing.T) {
	p := parserFrom("-5 + 3;")
	prog := p.Parse()

	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}

	infix, ok := prog.Stmts[0].(*ast.ExprStmt).E.(*ast.Infix)
	if !ok {
		t.Fatal("expected top level infix expression")
	}

	prefix, ok := infix.Left.(*ast.Prefix)
	if !ok {
		t.Fatal("expected -5 to parse as a prefix expression")
	}
	if prefix.Op.Type != token.MINUS {
		t.Errorf("expected prefix operator -, got %s", prefix.Op.Type)
	}
}

func TestStatements(t *testing.T) {
	cases := map[string]string{
		"x: int = 5;":       "x: int = 5;",
		"pi: float = 3.25;": "pi: float = 3.25;",
		"x = x + 1;":        "x = (x + 1);",
		"5 * (2 + 3)":       "(5 * (2 + 3));", // Trailing terminator is optional
	}

	for src, expect := range cases {
		p := parserFrom(src)
		prog := p.Parse()

		if err := p.Error(); err != nil {
			t.Errorf("unexpected error for %q: %s", src, err)
			continue
		}

		if got := ast.Sprint(prog); got != expect {
			t.Errorf("expected %q, got %q, for %q", expect, got, src)
		}
	}
}

func TestUnclosedParen(t *testing.T) {
	p := parserFrom("(1 + 2")
	prog := p.Parse()

	if p.Error() == nil {
		t.Error("expected error for unclosed parenthesis")
	}
	if len(prog.Stmts) != 0 {
		t.Errorf("expected no statements, got %d", len(prog.Stmts))
	}
}

func TestResync(t *testing.T) {
	p := parserFrom("1 + ; 2 + 3;")
	prog := p.Parse()

	if n := len(p.Diagnostics()); n != 1 {
		t.Errorf("expected 1 diagnostic, got %d", n)
	}

	// The malformed statement is dropped, parsing continues after it.
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	if got := ast.Sprint(prog); got != "(2 + 3);" {
		t.Errorf("expected recovery to parse second statement, got %q", got)
	}
}

func TestMultipleErrors(t *testing.T) {
	p := parserFrom("(1 + 2; @; x: = 5;")
	p.Parse()

	if n := len(p.Diagnostics()); n != 3 {
		t.Errorf("expected 3 diagnostics, got %d: %s", n, p.Error())
	}
}

func TestIllegalCharacter(t *testing.T) {
	p := parserFrom("1 ~ 2;")
	p.Parse()

	if p.Error() == nil {
		t.Error("expected error for illegal character")
	}
}

func TestMalformedFloat(t *testing.T) {
	p := parserFrom("1.2.3;")
	p.Parse()

	if p.Error() == nil {
		t.Error("expected error for malformed float literal")
	}
}
