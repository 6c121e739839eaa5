// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/db47h/netlist/internal/hname"
)

// A Design is the root container for everything elaboration produces:
// signal nets, device nodes, behavioral processes, memories, scopes,
// task and function definitions, and parameters. It is the sole owner
// of the objects handed to its Add* methods; the Del* methods only
// unlink, they never destroy.
//
// A Design and the graph it owns are not safe for concurrent use. The
// surrounding compiler runs elaboration, optimization and code
// generation as strictly sequential passes.
//
type Design struct {
	// Errors counts the recoverable semantic errors recorded during
	// elaboration. Code generation must not run unless it is zero.
	Errors int

	log        *zap.Logger
	signals    *Net
	nodes      *Node
	procs      *ProcTop
	scopes     map[string]*Scope
	memories   map[string]*Memory
	parameters map[string]Expr
	funcs      map[string]*FuncDef
	tasks      map[string]*TaskDef
	flags      map[string]string
	lcounter   int
}

// An Option configures a Design.
//
type Option func(*Design)

// WithLogger directs recoverable error messages to l. The default is a
// no-op logger.
//
func WithLogger(l *zap.Logger) Option {
	return func(d *Design) { d.log = l }
}

// New returns an empty design.
//
func New(opts ...Option) *Design {
	d := &Design{
		log:        zap.NewNop(),
		scopes:     make(map[string]*Scope),
		memories:   make(map[string]*Memory),
		parameters: make(map[string]Expr),
		funcs:      make(map[string]*FuncDef),
		tasks:      make(map[string]*TaskDef),
		flags:      make(map[string]string),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Errorf records a recoverable semantic error: the message goes to the
// design's logger and the error counter is incremented. Elaboration
// carries on with a fallback value so that one run can surface as many
// errors as possible.
//
func (d *Design) Errorf(format string, args ...interface{}) {
	d.Errors++
	d.log.Sugar().Errorf(format, args...)
}

// LocalSymbol generates a design-unique name for anonymous objects
// created during elaboration and synthesis.
//
func (d *Design) LocalSymbol() string {
	d.lcounter++
	return "_L" + strconv.Itoa(d.lcounter)
}

// SetFlag records a target/backend specific flag.
//
func (d *Design) SetFlag(key, value string) { d.flags[key] = value }

// Flag returns the value of a target/backend specific flag, or "".
//
func (d *Design) Flag(key string) string { return d.flags[key] }

// MakeRootScope creates and registers the root scope of the design.
//
func (d *Design) MakeRootScope(root string) *Scope {
	scope := &Scope{typ: ScopeModule, name: root}
	d.scopes[root] = scope
	return scope
}

// MakeScope creates and registers a scope named name under the given
// parent path.
//
func (d *Design) MakeScope(path string, t ScopeType, name string) *Scope {
	npath := hname.Join(path, name)
	scope := &Scope{typ: t, name: npath}
	d.scopes[npath] = scope
	return scope
}

// FindScope returns the scope with exactly the given path, or nil.
//
func (d *Design) FindScope(key string) *Scope {
	return d.scopes[key]
}

// SetParameter binds an expression to a fully qualified parameter name.
// Parameters are expected to be set once per elaboration pass.
//
func (d *Design) SetParameter(key string, expr Expr) {
	d.parameters[key] = expr
}

// FindParameter looks for a parameter from within the given context,
// walking the path outward until a binding is found. It returns nil if
// no enclosing scope declares the name; absence is a normal outcome
// while elaborating free identifiers.
//
func (d *Design) FindParameter(path, name string) Expr {
	root := path
	for {
		if cur, ok := d.parameters[hname.Join(root, name)]; ok {
			return cur
		}
		var more bool
		if root, more = hname.TrimLast(root); !more {
			return nil
		}
	}
}

// AddSignal registers a net with the design. The net must not already
// be owned by a design.
//
func (d *Design) AddSignal(net *Net) {
	if net.design != nil {
		panic("netlist: signal " + net.Name() + " already owned by a design")
	}
	if d.signals == nil {
		net.sigNext = net
		net.sigPrev = net
	} else {
		net.sigNext = d.signals.sigNext
		net.sigPrev = d.signals
		net.sigNext.sigPrev = net
		net.sigPrev.sigNext = net
	}
	d.signals = net
	net.design = d
}

// DelSignal unlinks a net from the design. The net must currently be
// owned by this design. The net itself is left intact.
//
func (d *Design) DelSignal(net *Net) {
	if net.design != d {
		panic("netlist: signal " + net.Name() + " not owned by this design")
	}
	if d.signals == net {
		d.signals = net.sigPrev
	}
	if d.signals == net {
		d.signals = nil
	} else {
		net.sigPrev.sigNext = net.sigNext
		net.sigNext.sigPrev = net.sigPrev
	}
	net.sigNext, net.sigPrev = nil, nil
	net.design = nil
}

// FindSignal looks for a signal by name from within the given context,
// walking the path outward until a declaration is found. It returns
// nil if no enclosing scope declares the name.
//
func (d *Design) FindSignal(path, name string) *Net {
	if d.signals == nil {
		return nil
	}
	root := path
	for {
		fullname := hname.Join(root, name)
		cur := d.signals
		for {
			if cur.Name() == fullname {
				return cur
			}
			cur = cur.sigPrev
			if cur == d.signals {
				break
			}
		}
		var more bool
		if root, more = hname.TrimLast(root); !more {
			return nil
		}
	}
}

// FindSignalFunc scans the signal ring for the first unmarked net
// matching pred. Together with ClearSignalMarks and SetMark it
// implements process-every-signal-once traversals that tolerate ring
// mutation between calls.
//
func (d *Design) FindSignalFunc(pred func(*Net) bool) *Net {
	if d.signals == nil {
		return nil
	}
	first := d.signals.sigNext
	cur := first
	for {
		if !cur.TestMark() && pred(cur) {
			return cur
		}
		cur = cur.sigNext
		if cur == first {
			return nil
		}
	}
}

// ClearSignalMarks resets the traversal mark on every signal.
//
func (d *Design) ClearSignalMarks() {
	if d.signals == nil {
		return
	}
	cur := d.signals
	for {
		cur.SetMark(false)
		cur = cur.sigNext
		if cur == d.signals {
			return
		}
	}
}

// EachSignal calls fn for every signal in the design until fn returns
// false. The ring must not be mutated during the walk.
//
func (d *Design) EachSignal(fn func(*Net) bool) {
	if d.signals == nil {
		return
	}
	cur := d.signals.sigNext
	for {
		if !fn(cur) {
			return
		}
		cur = cur.sigNext
		if cur == d.signals.sigNext {
			return
		}
	}
}

// AddNode registers a device node with the design. The node must not
// already be owned by a design.
//
func (d *Design) AddNode(net *Node) {
	if net.design != nil {
		panic("netlist: node " + net.Name() + " already owned by a design")
	}
	if d.nodes == nil {
		net.nodeNext = net
		net.nodePrev = net
	} else {
		net.nodeNext = d.nodes.nodeNext
		net.nodePrev = d.nodes
		net.nodeNext.nodePrev = net
		net.nodePrev.nodeNext = net
	}
	d.nodes = net
	net.design = d
}

// DelNode unlinks a node from the design. The node must currently be
// owned by this design. The node itself is left intact.
//
func (d *Design) DelNode(net *Node) {
	if net.design != d {
		panic("netlist: node " + net.Name() + " not owned by this design")
	}
	if d.nodes == net {
		d.nodes = net.nodePrev
	}
	if d.nodes == net {
		d.nodes = nil
	} else {
		net.nodeNext.nodePrev = net.nodePrev
		net.nodePrev.nodeNext = net.nodeNext
	}
	net.nodeNext, net.nodePrev = nil, nil
	net.design = nil
}

// FindNode scans the node ring for the first unmarked node matching
// pred. See FindSignalFunc for the traversal discipline.
//
func (d *Design) FindNode(pred func(*Node) bool) *Node {
	if d.nodes == nil {
		return nil
	}
	first := d.nodes.nodeNext
	cur := first
	for {
		if !cur.TestMark() && pred(cur) {
			return cur
		}
		cur = cur.nodeNext
		if cur == first {
			return nil
		}
	}
}

// ClearNodeMarks resets the traversal mark on every node.
//
func (d *Design) ClearNodeMarks() {
	if d.nodes == nil {
		return
	}
	cur := d.nodes
	for {
		cur.SetMark(false)
		cur = cur.nodeNext
		if cur == d.nodes {
			return
		}
	}
}

// EachNode calls fn for every node in the design until fn returns
// false. The ring must not be mutated during the walk.
//
func (d *Design) EachNode(fn func(*Node) bool) {
	if d.nodes == nil {
		return
	}
	cur := d.nodes.nodeNext
	for {
		if !fn(cur) {
			return
		}
		cur = cur.nodeNext
		if cur == d.nodes.nodeNext {
			return
		}
	}
}

// AddProcess prepends a behavioral process to the design.
//
func (d *Design) AddProcess(pro *ProcTop) {
	pro.next = d.procs
	d.procs = pro
}

// DeleteProcess unlinks a process from the design. Process teardown is
// rare relative to graph rewriting, so the linear search is fine.
//
func (d *Design) DeleteProcess(top *ProcTop) {
	if top == nil {
		panic("netlist: DeleteProcess(nil)")
	}
	if d.procs == top {
		d.procs = top.next
		return
	}
	cur := d.procs
	for cur.next != top {
		if cur.next == nil {
			panic("netlist: process not owned by this design")
		}
		cur = cur.next
	}
	cur.next = top.next
}

// Processes returns the head of the process list.
//
func (d *Design) Processes() *ProcTop { return d.procs }

// AddMemory registers a memory under its fully qualified name. A later
// insert with the same name replaces the earlier one.
//
func (d *Design) AddMemory(mem *Memory) {
	d.memories[mem.Name()] = mem
}

// FindMemory looks for a memory by name from within the given context,
// walking the path outward until a declaration is found, or nil.
//
func (d *Design) FindMemory(path, name string) *Memory {
	root := path
	for {
		if cur, ok := d.memories[hname.Join(root, name)]; ok {
			return cur
		}
		var more bool
		if root, more = hname.TrimLast(root); !more {
			return nil
		}
	}
}

// AddFunction registers a function definition under its fully
// qualified name.
//
func (d *Design) AddFunction(key string, def *FuncDef) {
	d.funcs[key] = def
}

// FindFunction looks for a function definition from within the given
// context, walking the path outward, or nil. Pass an empty path to
// probe a fully qualified name directly.
//
func (d *Design) FindFunction(path, name string) *FuncDef {
	root := path
	for {
		if cur, ok := d.funcs[hname.Join(root, name)]; ok {
			return cur
		}
		var more bool
		if root, more = hname.TrimLast(root); !more {
			return nil
		}
	}
}

// AddTask registers a task definition under its fully qualified name.
//
func (d *Design) AddTask(key string, def *TaskDef) {
	d.tasks[key] = def
}

// FindTask looks for a task definition from within the given context,
// walking the path outward, or nil. Pass an empty path to probe a
// fully qualified name directly.
//
func (d *Design) FindTask(path, name string) *TaskDef {
	root := path
	for {
		if cur, ok := d.tasks[hname.Join(root, name)]; ok {
			return cur
		}
		var more bool
		if root, more = hname.TrimLast(root); !more {
			return nil
		}
	}
}
