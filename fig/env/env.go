// Package env implements the compiler's symbol table: a chain of lexical
// scopes mapping names to their storage in the IR under construction.
package env

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// A Binding is the record for one declared name: the pointer to its stack
// slot and the type of the value stored there.
type Binding struct {
	Ptr  value.Value
	Type types.Type
}

type Env struct {
	records map[string]Binding

	// Enclosing scope, nil for the global environment. Only read during
	// lookup, never written to.
	outer *Env
}

func New() *Env {
	return &Env{
		records: make(map[string]Binding),
	}
}

// NewEnclosed makes a new innermost scope chained to outer. The outer
// environment must outlive the returned one.
func NewEnclosed(outer *Env) *Env {
	e := New()
	e.outer = outer
	return e
}

// Define binds name in this scope only, shadowing any binding with the
// same name in an outer scope. The pointer is returned for chaining.
func (e *Env) Define(name string, ptr value.Value, t types.Type) value.Value {
	e.records[name] = Binding{Ptr: ptr, Type: t}
	return ptr
}

// Lookup resolves name by searching this scope first, then walking the
// outer chain. Returns ok=false if the name is unbound everywhere.
func (e *Env) Lookup(name string) (Binding, bool) {
	if b, ok := e.records[name]; ok {
		return b, true
	}

	if e.outer != nil {
		return e.outer.Lookup(name)
	}

	return Binding{}, false
}

// DefinedLocally reports whether name is bound in this scope, ignoring
// the outer chain.
func (e *Env) DefinedLocally(name string) bool {
	_, ok := e.records[name]
	return ok
}
