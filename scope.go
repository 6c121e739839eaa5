// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// ScopeType is the language construct a scope stands for.
//
type ScopeType int

// Scope kinds.
//
const (
	ScopeModule ScopeType = iota
	ScopeTask
	ScopeFunc
	ScopeBegin
	ScopeFork
)

func (t ScopeType) String() string {
	switch t {
	case ScopeTask:
		return "task"
	case ScopeFunc:
		return "function"
	case ScopeBegin:
		return "begin"
	case ScopeFork:
		return "fork"
	}
	return "module"
}

// A Scope is one node of the design hierarchy. Its name is the full
// dot-qualified path, and declared signals register themselves as its
// siblings at construction time.
//
type Scope struct {
	typ  ScopeType
	name string
	sigs []*Net
}

// Type returns the kind of the scope.
//
func (s *Scope) Type() ScopeType { return s.typ }

// Name returns the full hierarchical path of the scope.
//
func (s *Scope) Name() string { return s.name }

// EachSignal calls fn for every signal declared in this scope, in
// declaration order, until fn returns false.
//
func (s *Scope) EachSignal(fn func(*Net) bool) {
	for _, n := range s.sigs {
		if !fn(n) {
			return
		}
	}
}

func (s *Scope) addSignal(n *Net) {
	s.sigs = append(s.sigs, n)
}

func (s *Scope) removeSignal(n *Net) {
	for i, cur := range s.sigs {
		if cur == n {
			s.sigs = append(s.sigs[:i], s.sigs[i+1:]...)
			return
		}
	}
}
