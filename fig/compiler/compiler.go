// Package compiler walks the AST and emits LLVM IR into a module, which is
// handed off to an external backend for optimization and lowering.
//
// Boolean convention: comparisons and logical not produce an i1 which is
// immediately widened to an i32 holding 0 or 1, so boolean results compose
// with integer arithmetic anywhere a value is consumed.
package compiler

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/fig-lang/fig/fig/ast"
	"github.com/fig-lang/fig/fig/env"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

// Mapping of declared type names to their IR types.
var typeMap = map[string]types.Type{
	"int":   types.I32,
	"float": types.Float,
}

type Compiler struct {
	module *ir.Module
	fn     *ir.Func
	block  *ir.Block
	env    *env.Env
}

func New() *Compiler {
	return &Compiler{
		module: ir.NewModule(),
		env:    env.New(),
	}
}

// Compile walks the program in statement order and returns the finished
// module. All top level code is emitted into a synthesized main function
// returning i32. If the final statement is an expression statement with an
// i32 value, that value becomes main's return value, otherwise main
// returns 0.
//
// Compilation stops at the first error: no partial module is returned.
func (c *Compiler) Compile(prog *ast.Program) (*ir.Module, error) {
	c.fn = c.module.NewFunc("main", types.I32)
	c.block = c.fn.NewBlock("entry")

	var last value.Value
	for _, stmt := range prog.Stmts {
		v, err := c.compileStmt(stmt)
		if err != nil {
			return nil, err
		}
		last = v
	}

	if last != nil && last.Type().Equal(types.I32) {
		c.block.NewRet(last)
	} else {
		c.block.NewRet(constant.NewInt(types.I32, 0))
	}

	return c.module, nil
}

// compileStmt emits a statement. The returned value is non-nil only for
// expression statements, whose value is otherwise discarded.
func (c *Compiler) compileStmt(stmt ast.Stmt) (value.Value, error) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		return c.compileExpr(n.E)

	case *ast.VarDecl:
		return nil, c.compileVarDecl(n)

	case *ast.Assign:
		return nil, c.compileAssign(n)
	}

	util.Assert(false, "unknown statement type %T", stmt)
	return nil, nil
}

func (c *Compiler) compileVarDecl(n *ast.VarDecl) error {
	name := n.Name.Lexeme

	want, ok := typeMap[n.Type.Lexeme]
	util.Assert(ok, "parser produced unknown type name '%s'", n.Type.Lexeme)

	v, err := c.compileExpr(n.Val)
	if err != nil {
		return err
	}

	if !v.Type().Equal(want) {
		return &TypeError{
			Msg: fmt.Sprintf("cannot initialize '%s: %s' with a %s value", name, n.Type.Lexeme, typeName(v)),
			Pos: n.Pos(),
		}
	}

	// Redeclaring an existing name rebinds its storage in place.
	if b, ok := c.env.Lookup(name); ok {
		if !b.Type.Equal(want) {
			return &TypeError{
				Msg: fmt.Sprintf("'%s' was already declared with a different type", name),
				Pos: n.Pos(),
			}
		}

		c.block.NewStore(v, b.Ptr)
		return nil
	}

	ptr := c.block.NewAlloca(want)
	ptr.SetName(name)
	c.block.NewStore(v, ptr)
	c.env.Define(name, ptr, want)
	return nil
}

func (c *Compiler) compileAssign(n *ast.Assign) error {
	name := n.Name.Lexeme

	// Resolve the target before emitting anything so a failing statement
	// leaves no trace in the module.
	b, ok := c.env.Lookup(name)
	if !ok {
		return &NameError{Name: name, Pos: n.Name.Pos}
	}

	v, err := c.compileExpr(n.Val)
	if err != nil {
		return err
	}

	if !v.Type().Equal(b.Type) {
		return &TypeError{
			Msg: fmt.Sprintf("cannot assign %s value to '%s'", typeName(v), name),
			Pos: n.Pos(),
		}
	}

	c.block.NewStore(v, b.Ptr)
	return nil
}

func (c *Compiler) compileExpr(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return constant.NewInt(types.I32, n.Value), nil

	case *ast.FloatLit:
		return constant.NewFloat(types.Float, n.Value), nil

	case *ast.Ident:
		b, ok := c.env.Lookup(n.Name)
		if !ok {
			return nil, &NameError{Name: n.Name, Pos: n.T.Pos}
		}
		return c.block.NewLoad(b.Type, b.Ptr), nil

	case *ast.Prefix:
		return c.compilePrefix(n)

	case *ast.Infix:
		return c.compileInfix(n)
	}

	util.Assert(false, "unknown expression type %T", e)
	return nil, nil
}

// Operand before operator: the operand subtree is fully emitted first.
func (c *Compiler) compilePrefix(n *ast.Prefix) (value.Value, error) {
	right, err := c.compileExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case token.MINUS:
		if isFloat(right) {
			return c.block.NewFSub(constant.NewFloat(types.Float, 0), right), nil
		}
		return c.block.NewSub(constant.NewInt(types.I32, 0), right), nil

	case token.NOT:
		if isFloat(right) {
			return nil, &TypeError{Msg: "operator ! is not defined for float", Pos: n.Pos()}
		}

		cmp := c.block.NewICmp(enum.IPredEQ, right, constant.NewInt(types.I32, 0))
		return c.widen(cmp), nil
	}

	return nil, &UnknownOperatorError{Op: n.Op.Lexeme}
}

// Left operand, then right operand, then the instruction.
func (c *Compiler) compileInfix(n *ast.Infix) (value.Value, error) {
	left, err := c.compileExpr(n.Left)
	if err != nil {
		return nil, err
	}

	right, err := c.compileExpr(n.Right)
	if err != nil {
		return nil, err
	}

	if isFloat(left) != isFloat(right) {
		return nil, &TypeError{
			Msg: fmt.Sprintf("mismatched operand types for '%s'", n.Op.Lexeme),
			Pos: n.Pos(),
		}
	}

	if isFloat(left) {
		return c.compileFloatInfix(n.Op, left, right)
	}

	switch n.Op.Type {
	case token.PLUS:
		return c.block.NewAdd(left, right), nil
	case token.MINUS:
		return c.block.NewSub(left, right), nil
	case token.STAR:
		return c.block.NewMul(left, right), nil
	case token.SLASH:
		return c.block.NewSDiv(left, right), nil
	case token.LESS:
		return c.widen(c.block.NewICmp(enum.IPredSLT, left, right)), nil
	case token.GREATER:
		return c.widen(c.block.NewICmp(enum.IPredSGT, left, right)), nil
	case token.EQ_EQ:
		return c.widen(c.block.NewICmp(enum.IPredEQ, left, right)), nil
	case token.NOT_EQ:
		return c.widen(c.block.NewICmp(enum.IPredNE, left, right)), nil
	}

	return nil, &UnknownOperatorError{Op: n.Op.Lexeme}
}

func (c *Compiler) compileFloatInfix(op token.Token, left, right value.Value) (value.Value, error) {
	switch op.Type {
	case token.PLUS:
		return c.block.NewFAdd(left, right), nil
	case token.MINUS:
		return c.block.NewFSub(left, right), nil
	case token.STAR:
		return c.block.NewFMul(left, right), nil
	case token.SLASH:
		return c.block.NewFDiv(left, right), nil
	case token.LESS:
		return c.widen(c.block.NewFCmp(enum.FPredOLT, left, right)), nil
	case token.GREATER:
		return c.widen(c.block.NewFCmp(enum.FPredOGT, left, right)), nil
	case token.EQ_EQ:
		return c.widen(c.block.NewFCmp(enum.FPredOEQ, left, right)), nil
	case token.NOT_EQ:
		return c.widen(c.block.NewFCmp(enum.FPredONE, left, right)), nil
	}

	return nil, &UnknownOperatorError{Op: op.Lexeme}
}

// widen converts an i1 comparison result to the i32 boolean representation.
func (c *Compiler) widen(cmp value.Value) value.Value {
	return c.block.NewZExt(cmp, types.I32)
}

func isFloat(v value.Value) bool {
	return v.Type().Equal(types.Float)
}

func typeName(v value.Value) string {
	if isFloat(v) {
		return "float"
	}
	return "int"
}
