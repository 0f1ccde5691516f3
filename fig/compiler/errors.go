package compiler

import (
	"fmt"

	"github.com/fig-lang/fig/fig/token"
)

// NameError is a user facing error: a reference to a name with no binding
// anywhere in the scope chain. It aborts the current compile unit.
type NameError struct {
	Name string
	Pos  token.Pos
}

func (e *NameError) Error() string {
	return fmt.Sprintf("undefined name '%s'", e.Name)
}

// TypeError is a user facing error from the minimal numeric model: int and
// float values never mix implicitly.
type TypeError struct {
	Msg string
	Pos token.Pos
}

func (e *TypeError) Error() string {
	return e.Msg
}

// UnknownOperatorError reports an operator token that reached code
// generation without an emission rule. The parser contract makes this
// unreachable for well formed trees, so it signals an internal bug rather
// than bad user input.
type UnknownOperatorError struct {
	Op string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("no emission rule for operator '%s'", e.Op)
}
