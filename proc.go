// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// A Proc is an elaborated behavioral statement.
//
type Proc interface {
	proc()
}

// procBase marks a type as a behavioral statement.
type procBase struct{}

func (procBase) proc() {}

// ProcType distinguishes the two kinds of top-level processes.
//
type ProcType int

// Top-level process kinds.
//
const (
	ProcInitial ProcType = iota
	ProcAlways
)

func (t ProcType) String() string {
	if t == ProcAlways {
		return "always"
	}
	return "initial"
}

// A ProcTop is a top-level behavioral process: an initial or always
// block wrapping a statement. The design chains them in a singly
// linked list.
//
type ProcTop struct {
	typ       ProcType
	statement Proc
	next      *ProcTop
}

// NewProcTop returns a top-level process of the given kind wrapping st.
//
func NewProcTop(t ProcType, st Proc) *ProcTop {
	return &ProcTop{typ: t, statement: st}
}

// Type returns the kind of the process.
//
func (t *ProcTop) Type() ProcType { return t.typ }

// Statement returns the wrapped statement.
//
func (t *ProcTop) Statement() Proc { return t.statement }

// Next returns the next process in the design's list, or nil.
//
func (t *ProcTop) Next() *ProcTop { return t.next }

// BlockType distinguishes sequential from parallel blocks.
//
type BlockType int

// Block kinds.
//
const (
	BlockSequ BlockType = iota // begin/end
	BlockPar                   // fork/join
)

// A Block is a sequence of statements executed in order (BlockSequ) or
// concurrently (BlockPar).
//
type Block struct {
	procBase
	typ   BlockType
	stmts []Proc
}

// NewBlock returns an empty block of the given kind.
//
func NewBlock(t BlockType) *Block { return &Block{typ: t} }

// Type returns the kind of the block.
//
func (b *Block) Type() BlockType { return b.typ }

// Append adds a statement at the end of the block.
//
func (b *Block) Append(st Proc) { b.stmts = append(b.stmts, st) }

// Len returns the number of statements in the block.
//
func (b *Block) Len() int { return len(b.stmts) }

// Stmt returns statement idx of the block.
//
func (b *Block) Stmt(idx int) Proc { return b.stmts[idx] }

// CaseType selects the comparison a case statement uses to match its
// guards.
//
type CaseType int

// Case comparison kinds.
//
const (
	CaseEQ  CaseType = iota // ==
	CaseEQX                 // casex
	CaseEQZ                 // casez
)

type caseItem struct {
	guard     Expr
	statement Proc
}

// A Case dispatches on the value of an expression. An item with a nil
// guard is the default.
//
type Case struct {
	procBase
	typ   CaseType
	expr  Expr
	items []caseItem
}

// NewCase returns a case statement over ex with nitems item slots.
//
func NewCase(t CaseType, ex Expr, nitems int) *Case {
	return &Case{typ: t, expr: ex, items: make([]caseItem, nitems)}
}

// Type returns the comparison kind of the case.
//
func (c *Case) Type() CaseType { return c.typ }

// Expr returns the selecting expression.
//
func (c *Case) Expr() Expr { return c.expr }

// ItemCount returns the number of item slots.
//
func (c *Case) ItemCount() int { return len(c.items) }

// SetCase installs item idx. A nil guard marks the default item. The
// guard is coerced to the width of the selecting expression.
//
func (c *Case) SetCase(idx int, guard Expr, st Proc) {
	if guard != nil {
		guard.SetWidth(c.expr.Width())
	}
	c.items[idx] = caseItem{guard: guard, statement: st}
}

// Guard returns the guard of item idx, nil for the default item.
//
func (c *Case) Guard(idx int) Expr { return c.items[idx].guard }

// Stmt returns the statement of item idx.
//
func (c *Case) Stmt(idx int) Proc { return c.items[idx].statement }

// A Condit is an if/else statement. Either branch may be nil.
//
type Condit struct {
	procBase
	expr  Expr
	ifs   Proc
	elses Proc
}

// NewCondit returns a conditional on ex with the given branches.
//
func NewCondit(ex Expr, ifs, elses Proc) *Condit {
	return &Condit{expr: ex, ifs: ifs, elses: elses}
}

// Expr returns the condition expression.
//
func (c *Condit) Expr() Expr { return c.expr }

// IfClause returns the true branch, or nil.
//
func (c *Condit) IfClause() Proc { return c.ifs }

// ElseClause returns the false branch, or nil.
//
func (c *Condit) ElseClause() Proc { return c.elses }

// A Forever runs its statement in an endless loop.
//
type Forever struct {
	procBase
	statement Proc
}

// NewForever returns a forever loop around st.
//
func NewForever(st Proc) *Forever { return &Forever{statement: st} }

// Statement returns the loop body.
//
func (f *Forever) Statement() Proc { return f.statement }

// A Repeat runs its statement a counted number of times.
//
type Repeat struct {
	procBase
	expr      Expr
	statement Proc
}

// NewRepeat returns a repeat loop running st ex times.
//
func NewRepeat(ex Expr, st Proc) *Repeat {
	return &Repeat{expr: ex, statement: st}
}

// Expr returns the iteration count expression.
//
func (r *Repeat) Expr() Expr { return r.expr }

// Statement returns the loop body.
//
func (r *Repeat) Statement() Proc { return r.statement }

// A While runs its statement as long as its condition holds.
//
type While struct {
	procBase
	expr      Expr
	statement Proc
}

// NewWhile returns a while loop running st while ex holds.
//
func NewWhile(ex Expr, st Proc) *While {
	return &While{expr: ex, statement: st}
}

// Expr returns the condition expression.
//
func (w *While) Expr() Expr { return w.expr }

// Statement returns the loop body.
//
func (w *While) Statement() Proc { return w.statement }

// A PDelay delays its statement by a fixed number of time units. A nil
// statement is a bare delay.
//
type PDelay struct {
	procBase
	delay     uint64
	statement Proc
}

// NewPDelay returns a delay of d time units before st.
//
func NewPDelay(d uint64, st Proc) *PDelay {
	return &PDelay{delay: d, statement: st}
}

// Delay returns the delay in time units.
//
func (p *PDelay) Delay() uint64 { return p.delay }

// Statement returns the delayed statement, or nil.
//
func (p *PDelay) Statement() Proc { return p.statement }

// An STask is a call to a system task. System task names start with
// '$' and are resolved by the target, not by elaboration.
//
type STask struct {
	procBase
	name  string
	parms []Expr
}

// NewSTask returns a system task call.
//
func NewSTask(name string, parms []Expr) *STask {
	if len(name) == 0 || name[0] != '$' {
		panic("netlist: system task name " + name + " must start with '$'")
	}
	return &STask{name: name, parms: parms}
}

// Name returns the name of the called system task, including the '$'.
//
func (t *STask) Name() string { return t.name }

// ParmCount returns the number of actual parameters.
//
func (t *STask) ParmCount() int { return len(t.parms) }

// Parm returns actual parameter idx, which may be nil for an empty
// argument position.
//
func (t *STask) Parm(idx int) Expr { return t.parms[idx] }

// Destroy releases the parameter expressions.
//
func (t *STask) Destroy() {
	for _, p := range t.parms {
		if p != nil {
			p.Destroy()
		}
	}
}

// A UTask is a call to a user-defined task. Arguments are assigned to
// the definition's port signals around the call, so the call itself
// carries only the definition.
//
type UTask struct {
	procBase
	def *TaskDef
}

// NewUTask returns a call to def.
//
func NewUTask(def *TaskDef) *UTask { return &UTask{def: def} }

// Name returns the name of the called task.
//
func (t *UTask) Name() string { return t.def.Name() }

// Definition returns the called task's definition.
//
func (t *UTask) Definition() *TaskDef { return t.def }

// EdgeType is the signal change a NEvent probe fires on.
//
type EdgeType int

// Probe edge kinds.
//
const (
	AnyEdge EdgeType = iota
	PosEdge
	NegEdge
	Positive // fires while the value holds, not on the transition
)

func (t EdgeType) String() string {
	switch t {
	case PosEdge:
		return "posedge"
	case NegEdge:
		return "negedge"
	case Positive:
		return "positive"
	}
	return "anyedge"
}

// A PEvent is a named event that behavioral statements wait on. It
// collects the structural probes that trigger it.
//
type PEvent struct {
	procBase
	name      string
	statement Proc
	events    []*NEvent
}

// NewPEvent returns an event named name guarding st.
//
func NewPEvent(name string, st Proc) *PEvent {
	return &PEvent{name: name, statement: st}
}

// Name returns the name of the event.
//
func (e *PEvent) Name() string { return e.name }

// Statement returns the guarded statement, or nil.
//
func (e *PEvent) Statement() Proc { return e.statement }

// EventCount returns the number of probes attached to the event.
//
func (e *PEvent) EventCount() int { return len(e.events) }

// Event returns attached probe idx.
//
func (e *PEvent) Event(idx int) *NEvent { return e.events[idx] }

// An NEvent is the structural side of an event: a node whose input
// pins watch a nexus and trigger the parent PEvent on the configured
// edge.
//
type NEvent struct {
	Node
	edge   EdgeType
	parent *PEvent
}

// NewNEvent returns a probe of wid pins firing pe on edge t.
//
func NewNEvent(t EdgeType, name string, wid int, pe *PEvent) *NEvent {
	e := &NEvent{edge: t, parent: pe}
	e.Node = NewNode(e, name, wid)
	for idx := 0; idx < wid; idx++ {
		e.Pin(idx).SetDir(Input)
		e.Pin(idx).SetName("P", idx)
	}
	pe.events = append(pe.events, e)
	return e
}

// Edge returns the edge the probe fires on.
//
func (e *NEvent) Edge() EdgeType { return e.edge }

// PEvent returns the event the probe triggers.
//
func (e *NEvent) PEvent() *PEvent { return e.parent }

// assignBase carries what all assignment statements share: the l-value
// pins, the r-value expression and an optional bit-select multiplexer.
// An assignment is a Node so that its l-value pins take part in the
// connectivity graph like any other device.
//
type assignBase struct {
	procBase
	Node
	rval Expr
	bmux Expr
}

func makeAssignBase(self Object, name string, w int) assignBase {
	a := assignBase{}
	a.Node = NewNode(self, name, w)
	for idx := 0; idx < w; idx++ {
		a.Pin(idx).SetDir(Output)
		a.Pin(idx).SetName("P", idx)
	}
	return a
}

// Rval returns the r-value expression.
//
func (a *assignBase) Rval() Expr { return a.rval }

// Bmux returns the bit-select expression, or nil for a full-width
// assignment.
//
func (a *assignBase) Bmux() Expr { return a.bmux }

func (a *assignBase) setRval(rv Expr) {
	if a.rval != nil {
		panic("netlist: r-value of assignment " + a.Name() + " already set")
	}
	a.rval = rv
}

func (a *assignBase) setBmux(mu Expr) {
	if a.bmux != nil {
		panic("netlist: bit select of assignment " + a.Name() + " already set")
	}
	a.bmux = mu
}

// Destroy releases the held expressions and tears the node down.
//
func (a *assignBase) Destroy() {
	if a.rval != nil {
		a.rval.Destroy()
	}
	if a.bmux != nil {
		a.bmux.Destroy()
	}
	a.Node.Destroy()
}

// An Assign is a blocking procedural assignment.
//
type Assign struct {
	assignBase
}

// NewAssign returns a blocking assignment of rv to a w bit wide
// l-value. If the r-value is too narrow and cannot be widened, the
// mismatch is recorded as a design error and elaboration continues.
//
func NewAssign(name string, des *Design, w int, rv Expr) *Assign {
	a := &Assign{}
	a.assignBase = makeAssignBase(a, name, w)
	if rv.Width() < w && !rv.SetWidth(w) {
		des.Errorf("expression bit width %d conflicts with l-value width %d in assignment %s",
			rv.Width(), w, name)
	}
	a.setRval(rv)
	return a
}

// NewAssignBmux returns a blocking assignment to a single bit of a w
// bit wide l-value, selected by mu. The r-value is coerced to one bit.
//
func NewAssignBmux(name string, des *Design, w int, mu, rv Expr) *Assign {
	a := &Assign{}
	a.assignBase = makeAssignBase(a, name, w)
	if !rv.SetWidth(1) {
		des.Errorf("expression bit width %d conflicts with single-bit select in assignment %s",
			rv.Width(), name)
	}
	a.setRval(rv)
	a.setBmux(mu)
	return a
}

// An AssignNB is a non-blocking procedural assignment.
//
type AssignNB struct {
	assignBase
}

// NewAssignNB returns a non-blocking assignment of rv to a w bit wide
// l-value.
//
func NewAssignNB(name string, des *Design, w int, rv Expr) *AssignNB {
	a := &AssignNB{}
	a.assignBase = makeAssignBase(a, name, w)
	if rv.Width() < w && !rv.SetWidth(w) {
		des.Errorf("expression bit width %d conflicts with l-value width %d in assignment %s",
			rv.Width(), w, name)
	}
	a.setRval(rv)
	return a
}

// NewAssignNBBmux returns a non-blocking assignment to a single bit of
// a w bit wide l-value, selected by mu.
//
func NewAssignNBBmux(name string, des *Design, w int, mu, rv Expr) *AssignNB {
	a := &AssignNB{}
	a.assignBase = makeAssignBase(a, name, w)
	if !rv.SetWidth(1) {
		des.Errorf("expression bit width %d conflicts with single-bit select in assignment %s",
			rv.Width(), name)
	}
	a.setRval(rv)
	a.setBmux(mu)
	return a
}

// assignMemBase carries what memory-word assignments share: the target
// memory, the word index net and the r-value. The statement holds an
// external reference on the index net for its lifetime.
//
type assignMemBase struct {
	procBase
	mem   *Memory
	index *Net
	rval  Expr
}

func makeAssignMemBase(mem *Memory, index *Net, rv Expr) assignMemBase {
	index.IncrEref()
	return assignMemBase{mem: mem, index: index, rval: rv}
}

// Memory returns the assigned memory.
//
func (a *assignMemBase) Memory() *Memory { return a.mem }

// Index returns the net carrying the word index.
//
func (a *assignMemBase) Index() *Net { return a.index }

// Rval returns the r-value expression.
//
func (a *assignMemBase) Rval() Expr { return a.rval }

// Destroy releases the index reference and the r-value.
//
func (a *assignMemBase) Destroy() {
	a.index.DecrEref()
	a.rval.Destroy()
}

// An AssignMem is a blocking assignment to a memory word.
//
type AssignMem struct {
	assignMemBase
}

// NewAssignMem returns a blocking assignment of rv to the word of mem
// selected by the value on index.
//
func NewAssignMem(mem *Memory, index *Net, rv Expr) *AssignMem {
	return &AssignMem{assignMemBase: makeAssignMemBase(mem, index, rv)}
}

// An AssignMemNB is a non-blocking assignment to a memory word.
//
type AssignMemNB struct {
	assignMemBase
}

// NewAssignMemNB returns a non-blocking assignment of rv to the word
// of mem selected by the value on index.
//
func NewAssignMemNB(mem *Memory, index *Net, rv Expr) *AssignMemNB {
	return &AssignMemNB{assignMemBase: makeAssignMemBase(mem, index, rv)}
}

// A FuncDef is an elaborated function definition. Port 0 is the return
// value signal, the remaining ports receive the arguments.
//
type FuncDef struct {
	name      string
	statement Proc
	ports     []*Net
}

// NewFuncDef returns a function definition with the given port
// signals.
//
func NewFuncDef(name string, ports []*Net) *FuncDef {
	return &FuncDef{name: name, ports: ports}
}

// Name returns the fully qualified name of the function.
//
func (d *FuncDef) Name() string { return d.name }

// SetStatement installs the function body. It may be called only once.
//
func (d *FuncDef) SetStatement(st Proc) {
	if d.statement != nil {
		panic("netlist: body of function " + d.name + " already set")
	}
	d.statement = st
}

// Statement returns the function body, or nil if not yet set.
//
func (d *FuncDef) Statement() Proc { return d.statement }

// PortCount returns the number of ports, return value included.
//
func (d *FuncDef) PortCount() int { return len(d.ports) }

// Port returns port signal idx.
//
func (d *FuncDef) Port(idx int) *Net { return d.ports[idx] }

// A TaskDef is an elaborated task definition.
//
type TaskDef struct {
	name      string
	statement Proc
	ports     []*Net
}

// NewTaskDef returns a task definition with the given port signals.
//
func NewTaskDef(name string, ports []*Net) *TaskDef {
	return &TaskDef{name: name, ports: ports}
}

// Name returns the fully qualified name of the task.
//
func (d *TaskDef) Name() string { return d.name }

// SetStatement installs the task body. It may be called only once.
//
func (d *TaskDef) SetStatement(st Proc) {
	if d.statement != nil {
		panic("netlist: body of task " + d.name + " already set")
	}
	d.statement = st
}

// Statement returns the task body, or nil if not yet set.
//
func (d *TaskDef) Statement() Proc { return d.statement }

// PortCount returns the number of ports.
//
func (d *TaskDef) PortCount() int { return len(d.ports) }

// Port returns port signal idx.
//
func (d *TaskDef) Port(idx int) *Net { return d.ports[idx] }
