package env

import (
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func val(n int64) value.Value {
	return constant.NewInt(types.I32, n)
}

func TestDefineAndLookup(t *testing.T) {
	e := New()

	if _, ok := e.Lookup("x"); ok {
		t.Error("expected lookup of undefined name to fail")
	}

	v := val(1)
	if got := e.Define("x", v, types.I32); got != v {
		t.Error("expected Define to return the bound value")
	}

	b, ok := e.Lookup("x")
	if !ok {
		t.Fatal("expected lookup of defined name to succeed")
	}
	if b.Ptr != v || !b.Type.Equal(types.I32) {
		t.Error("unexpected binding contents")
	}
}

func TestOuterChain(t *testing.T) {
	global := New()
	inner := NewEnclosed(global)

	x := val(1)
	global.Define("x", x, types.I32)

	// Inner resolves through the chain.
	if b, ok := inner.Lookup("x"); !ok || b.Ptr != x {
		t.Error("expected inner lookup to resolve through outer scope")
	}

	// Defining in inner must not touch global.
	inner.Define("y", val(2), types.I32)
	if _, ok := global.Lookup("y"); ok {
		t.Error("expected inner definition to be invisible to outer scope")
	}
}

func TestShadowing(t *testing.T) {
	global := New()
	inner := NewEnclosed(global)

	outerVal, innerVal := val(1), val(2)
	global.Define("x", outerVal, types.I32)
	inner.Define("x", innerVal, types.I32)

	if b, _ := inner.Lookup("x"); b.Ptr != innerVal {
		t.Error("expected inner binding to shadow outer")
	}
	if b, _ := global.Lookup("x"); b.Ptr != outerVal {
		t.Error("expected outer binding to be untouched by shadow")
	}
}

// Two scopes enclosed by the same outer environment never see each
// other's bindings.
func TestSiblingIsolation(t *testing.T) {
	global := New()
	a := NewEnclosed(global)
	b := NewEnclosed(global)

	ax := val(1)
	a.Define("x", ax, types.I32)

	if _, ok := b.Lookup("x"); ok {
		t.Error("expected sibling scopes to be isolated")
	}

	b.Define("x", val(2), types.I32)
	if bind, _ := a.Lookup("x"); bind.Ptr != ax {
		t.Error("expected sibling definition to not affect existing binding")
	}
}

func TestDefinedLocally(t *testing.T) {
	global := New()
	inner := NewEnclosed(global)
	global.Define("x", val(1), types.I32)

	if inner.DefinedLocally("x") {
		t.Error("expected x to not be local to inner scope")
	}
	if !global.DefinedLocally("x") {
		t.Error("expected x to be local to global scope")
	}
}
