package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fig-lang/fig/fig/token"
)

// Stage names the pipeline stage a diagnostic originated from.
type Stage string

const (
	StageScanner  Stage = "scanner"
	StageParser   Stage = "parser"
	StageCompiler Stage = "compiler"
)

// A Diagnostic is a single structured error record. The Pos field is the
// zero value for diagnostics with no meaningful source position.
type Diagnostic struct {
	Stage Stage
	Msg   string
	Pos   token.Pos
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (line %d:%d)", d.Stage, d.Msg, d.Pos.Row+1, d.Pos.Col)
}

type ErrorHandler struct {
	diags []Diagnostic
}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

func (e *ErrorHandler) Add(d Diagnostic) {
	e.diags = append(e.diags, d)
}

func (e *ErrorHandler) Diagnostics() []Diagnostic {
	return e.diags
}

func (e *ErrorHandler) NumErrors() int {
	return len(e.diags)
}

// Error returns all accumulated diagnostics joined into one error, or nil
// if none were added.
func (e *ErrorHandler) Error() error {
	errs := make([]error, len(e.diags))
	for i, d := range e.diags {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Pretty formats a diagnostic with the offending source line and a caret
// marker underneath.
func Pretty(file *token.File, d Diagnostic, length int) string {
	if length < 1 {
		length = 1
	}

	lineStr := file.Line(d.Pos.Row)
	s := ""
	s += fmt.Sprintf("%s error: %s\n", d.Stage, d.Msg)
	s += fmt.Sprintf("%3d | %s\n", d.Pos.Row+1, lineStr)
	s += fmt.Sprintf("    | %s%s\n", strings.Repeat(" ", d.Pos.Col), strings.Repeat("^", length))
	return s
}
