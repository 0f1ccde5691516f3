package scanner

import "github.com/fig-lang/fig/fig/token"

type Scanner struct {
	file   *token.File
	src    []byte
	offset int
	col    int
	row    int
}

// New makes a new Scanner object for the given file. The text is the raw text
// input to scan. Scanner only accepts ascii text.
func New(file *token.File, src []byte) *Scanner {
	return &Scanner{
		file: file,
		src:  src,
	}
}

// Scan consumes the next token and returns it, advancing the Scanner.
// Whitespace is never emitted. Unknown symbols are returned as ILLEGAL
// tokens, not errors, leaving it to the parser to report them. Scanning
// past the end keeps returning EOF tokens.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()

	if s.eof() {
		return token.Token{Type: token.EOF, Pos: s.pos(), EndPos: s.pos(), Eof: true}
	}

	c := s.cur()
	if isNum(c) {
		return s.scanNumber()
	}
	if isAlpha(c) {
		return s.scanIdentifier()
	}

	return s.scanSymbol()
}

// ScanAll scans the whole input and returns the tokens, including the
// terminating EOF token.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Eof {
			return toks
		}
	}
}

// Numbers are maximal digit runs. A single dot makes the token a FLOAT.
// More dots keep being consumed, but mark the token as invalid so the
// parser can report the malformed literal with its full span.
func (s *Scanner) scanNumber() token.Token {
	pos := s.pos()
	dots := 0

	for !s.eof() && (isNum(s.cur()) || s.cur() == '.') {
		if s.cur() == '.' {
			dots++
		}
		s.consume()
	}

	lexeme := string(s.src[pos.Offset:s.offset])
	if dots == 0 {
		return s.newToken(token.INTEGER, lexeme, pos)
	}

	tok := s.newToken(token.FLOAT, lexeme, pos)
	tok.Invalid = dots > 1
	return tok
}

func (s *Scanner) scanIdentifier() token.Token {
	pos := s.pos()
	for !s.eof() && (isAlpha(s.cur()) || isNum(s.cur())) {
		s.consume()
	}

	lexeme := string(s.src[pos.Offset:s.offset])
	if tt, ok := token.Keywords[lexeme]; ok {
		return s.newToken(tt, lexeme, pos)
	}

	return s.newToken(token.IDENT, lexeme, pos)
}

// Double symbols are matched with one character of lookahead before
// falling back to the single character interpretation.
func (s *Scanner) scanSymbol() token.Token {
	pos := s.pos()

	pair := string(s.cur()) + string(s.peek())
	if tt, ok := token.DoubleSymbols[pair]; ok {
		s.consume()
		s.consume()
		return s.newToken(tt, pair, pos)
	}

	single := string(s.consume())
	if tt, ok := token.SingleSymbols[single]; ok {
		return s.newToken(tt, single, pos)
	}

	tok := s.newToken(token.ILLEGAL, single, pos)
	tok.Invalid = true
	return tok
}

func (s *Scanner) newToken(tt token.TokenType, lexeme string, pos token.Pos) token.Token {
	return token.Token{
		Type:   tt,
		Pos:    pos,
		EndPos: s.pos(),
		Lexeme: lexeme,
		Length: len(lexeme),
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && isWhitespace(s.cur()) {
		s.consume()
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.src)
}

func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.offset]
}

func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.src) {
		return 0
	}
	return s.src[s.offset+1]
}

func (s *Scanner) consume() byte {
	c := s.cur()
	s.offset++
	if c == '\n' {
		s.row++
		s.col = 0
	} else {
		s.col++
	}

	return c
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{Col: s.col, Row: s.row, Offset: s.offset}
}
