// Package sema implements the single analysis pass: a recursive
// AST walk producing a typed ir.Program, backed by a scope stack of
// name-to-symbol maps.
package sema

import "corepy/ir"

// scope is one entry in the stack: a name-to-symbol map plus, for a
// function scope, the ordered list of Locals introduced in it.
type scope struct {
	symbols map[string]ir.Symbol
	locals  []ir.Local
}

func newScope() *scope {
	return &scope{symbols: make(map[string]ir.Symbol)}
}

// scopeStack is the global scope at index 0 (builtins, imports,
// function names) followed by exactly one function scope while a
// function body is being analyzed.
type scopeStack struct {
	scopes []*scope
}

func newScopeStack() *scopeStack {
	s := &scopeStack{}
	s.push()
	return s
}

func (s *scopeStack) push() { s.scopes = append(s.scopes, newScope()) }

func (s *scopeStack) pop() *scope {
	top := s.scopes[len(s.scopes)-1]
	s.scopes = s.scopes[:len(s.scopes)-1]
	return top
}

func (s *scopeStack) top() *scope { return s.scopes[len(s.scopes)-1] }

// define binds name in the innermost scope, shadowing any outer
// binding of the same name.
func (s *scopeStack) define(name string, sym ir.Symbol) {
	s.top().symbols[name] = sym
}

// lookup traverses the stack top-down, so a function scope's own
// bindings (parameters, locals) shadow same-named globals.
func (s *scopeStack) lookup(name string) (ir.Symbol, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i].symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// allocLocal reserves the next free local index in the current
// function scope and records the Local for later collection, without
// binding it to any name — used for compiler-introduced helper locals
// that are referenced structurally rather than looked up by name.
func (s *scopeStack) allocLocal(typ ir.Type, paramCount int) ir.Local {
	top := s.top()
	local := ir.Local{Type: typ, Index: paramCount + len(top.locals)}
	top.locals = append(top.locals, local)
	return local
}

// defineLocal allocates a Local as allocLocal does, additionally
// naming and binding it in the current scope so later identifiers can
// resolve to it.
func (s *scopeStack) defineLocal(name string, typ ir.Type, paramCount int) ir.Local {
	local := s.allocLocal(typ, paramCount)
	local.Name = name
	s.top().locals[len(s.top().locals)-1] = local
	s.top().symbols[name] = local
	return local
}

// defineGlobal binds name in the bottom (global) scope, used for
// function symbols so later functions — and the function itself, for
// recursion — can call it regardless of the current scope depth.
func (s *scopeStack) defineGlobal(name string, sym ir.Symbol) {
	s.scopes[0].symbols[name] = sym
}
