package fig

import (
	"errors"

	"github.com/llir/llvm/ir"

	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/compiler"
	"github.com/fig-lang/fig/fig/parser"
	"github.com/fig-lang/fig/fig/scanner"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

// Parse scans and parses file, returning the tree and any collected
// diagnostics. The tree holds every statement that parsed cleanly, even
// when diagnostics are present.
func Parse(file *token.File) (*ast.Program, []util.Diagnostic) {
	s := scanner.New(file, file.Src)
	p := parser.New(file, s.ScanAll())
	prog := p.Parse()
	return prog, p.Diagnostics()
}

// Compile runs the full pipeline on file and returns the finished IR
// module, ready to hand to a backend. The module is nil whenever
// diagnostics are present.
func Compile(file *token.File) (*ir.Module, []util.Diagnostic) {
	prog, diags := Parse(file)
	if len(diags) > 0 {
		return nil, diags
	}

	module, err := compiler.New().Compile(prog)
	if err != nil {
		return nil, []util.Diagnostic{compileDiagnostic(err)}
	}

	return module, nil
}

func compileDiagnostic(err error) util.Diagnostic {
	d := util.Diagnostic{Stage: util.StageCompiler, Msg: err.Error()}

	var nameErr *compiler.NameError
	var typeErr *compiler.TypeError
	if errors.As(err, &nameErr) {
		d.Pos = nameErr.Pos
	} else if errors.As(err, &typeErr) {
		d.Pos = typeErr.Pos
	}

	return d
}
