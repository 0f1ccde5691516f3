package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	INTEGER
	FLOAT
	IDENT

	// Type keywords, eg. int and float. The Lexeme says which.
	TYPE

	PLUS
	MINUS
	STAR
	SLASH
	NOT
	EQ
	EQ_EQ
	NOT_EQ
	LESS
	GREATER
	LPAREN
	RPAREN
	SEMI
	COLON
)

var Keywords = map[string]TokenType{
	"int":   TYPE,
	"float": TYPE,
}

var SingleSymbols = map[string]TokenType{
	"+": PLUS,
	"-": MINUS,
	"*": STAR,
	"/": SLASH,
	"!": NOT,
	"=": EQ,
	"<": LESS,
	">": GREATER,
	"(": LPAREN,
	")": RPAREN,
	";": SEMI,
	":": COLON,
}

var DoubleSymbols = map[string]TokenType{
	"==": EQ_EQ,
	"!=": NOT_EQ,
}

var typeNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	IDENT:   "IDENT",
	TYPE:    "TYPE",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	NOT:     "!",
	EQ:      "=",
	EQ_EQ:   "==",
	NOT_EQ:  "!=",
	LESS:    "<",
	GREATER: ">",
	LPAREN:  "(",
	RPAREN:  ")",
	SEMI:    ";",
	COLON:   ":",
}

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}
