// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import "github.com/db47h/netlist/logic"

// An Expr is an elaborated expression. Expressions carry a bit width
// that elaboration negotiates between the two sides of operators and
// assignments.
//
type Expr interface {
	// Width returns the bit width of the expression.
	Width() int
	// SetWidth attempts to coerce the expression to w bits and
	// reports whether it succeeded.
	SetWidth(w int) bool
	// Dup returns a deep copy. Expressions that cannot be duplicated
	// panic; callers only duplicate r-values known to support it.
	Dup() Expr
	// Destroy releases resources held by the expression tree, such as
	// external references on nets.
	Destroy()
}

type exprBase struct {
	width int
}

func (e *exprBase) Width() int { return e.width }

// SetWidth on the base expression succeeds only when the width already
// matches. Kinds with adjustable width override it.
func (e *exprBase) SetWidth(w int) bool { return w == e.width }

func (e *exprBase) Dup() Expr { panic("netlist: expression is not duplicable") }

func (e *exprBase) Destroy() {}

// EConst is a literal vector of four-valued logic.
//
type EConst struct {
	exprBase
	value logic.Vector
}

// NewEConst returns a constant expression of the given value.
//
func NewEConst(val logic.Vector) *EConst {
	c := &EConst{value: val}
	c.width = val.Len()
	return c
}

// Value returns the constant's value.
//
func (e *EConst) Value() logic.Vector { return e.value }

// SetWidth pads a constant with zeros to grow it, and shrinks it only
// when the dropped bits are all zero or z.
//
func (e *EConst) SetWidth(w int) bool {
	if w >= e.width {
		for e.value.Len() < w {
			e.value = append(e.value, logic.V0)
		}
		e.width = w
		return true
	}
	for _, v := range e.value[w:] {
		if v != logic.V0 && v != logic.Vz {
			return false
		}
	}
	e.value = e.value[:w]
	e.width = w
	return true
}

func (e *EConst) Dup() Expr {
	val := make(logic.Vector, len(e.value))
	copy(val, e.value)
	return NewEConst(val)
}

// ESignal is a reference to a declared signal. It holds an external
// reference on the net for its lifetime.
//
type ESignal struct {
	exprBase
	net *Net
}

// NewESignal returns a signal expression over n, taking an external
// reference on it.
//
func NewESignal(n *Net) *ESignal {
	n.IncrEref()
	e := &ESignal{net: n}
	e.width = n.PinCount()
	return e
}

// Sig returns the referenced net.
//
func (e *ESignal) Sig() *Net { return e.net }

// Name returns the name of the referenced net.
//
func (e *ESignal) Name() string { return e.net.Name() }

// Pin returns pin idx of the referenced net.
//
func (e *ESignal) Pin(idx int) *Link { return e.net.Pin(idx) }

// Destroy releases the external reference on the net.
//
func (e *ESignal) Destroy() { e.net.DecrEref() }

// ESubSignal selects one bit of a signal with a possibly non-constant
// index.
//
type ESubSignal struct {
	exprBase
	sig *ESignal
	idx Expr
}

// NewESubSignal returns a single-bit select of sig at idx.
//
func NewESubSignal(sig *ESignal, idx Expr) *ESubSignal {
	e := &ESubSignal{sig: sig, idx: idx}
	e.width = 1
	return e
}

// Sig returns the selected signal expression.
//
func (e *ESubSignal) Sig() *ESignal { return e.sig }

// Index returns the bit-select expression.
//
func (e *ESubSignal) Index() Expr { return e.idx }

func (e *ESubSignal) Destroy() { e.idx.Destroy() }

// EConcat is a concatenation with an optional repeat count. Parameters
// are set one at a time, most significant first, and the expression
// width accumulates as they arrive.
//
type EConcat struct {
	exprBase
	parms  []Expr
	repeat int
}

// NewEConcat returns a concatenation of cnt parameters repeated r
// times.
//
func NewEConcat(cnt, r int) *EConcat {
	return &EConcat{parms: make([]Expr, cnt), repeat: r}
}

// Set installs parameter idx. Each slot may be set only once.
//
func (e *EConcat) Set(idx int, p Expr) {
	if e.parms[idx] != nil {
		panic("netlist: concatenation parameter already set")
	}
	e.parms[idx] = p
	e.width += e.repeat * p.Width()
}

// Repeat returns the repeat count.
//
func (e *EConcat) Repeat() int { return e.repeat }

// ParmCount returns the number of parameter slots.
//
func (e *EConcat) ParmCount() int { return len(e.parms) }

// Parm returns parameter idx, which may be nil if not yet set.
//
func (e *EConcat) Parm(idx int) Expr { return e.parms[idx] }

func (e *EConcat) Dup() Expr {
	dup := NewEConcat(len(e.parms), e.repeat)
	for idx, p := range e.parms {
		if p != nil {
			dup.parms[idx] = p.Dup()
		}
	}
	dup.width = e.width
	return dup
}

func (e *EConcat) Destroy() {
	for _, p := range e.parms {
		if p != nil {
			p.Destroy()
		}
	}
}

// EMemory is a reference to a memory word.
//
type EMemory struct {
	exprBase
	mem *Memory
	idx Expr
}

// NewEMemory returns a reference to the word of mem selected by idx.
//
func NewEMemory(mem *Memory, idx Expr) *EMemory {
	e := &EMemory{mem: mem, idx: idx}
	e.width = mem.Width()
	return e
}

// Mem returns the referenced memory.
//
func (e *EMemory) Mem() *Memory { return e.mem }

// Index returns the word-select expression.
//
func (e *EMemory) Index() Expr { return e.idx }

func (e *EMemory) Destroy() {
	if e.idx != nil {
		e.idx.Destroy()
	}
}

// EParam is a by-name reference to a parameter, resolved late against
// the design so that parameters may reference parameters declared
// further out.
//
type EParam struct {
	exprBase
	des  *Design
	path string
	name string
}

// NewEParam returns a late-bound parameter reference.
//
func NewEParam(d *Design, path, name string) *EParam {
	return &EParam{des: d, path: path, name: name}
}

// Resolve looks the parameter up in its design, or nil.
//
func (e *EParam) Resolve() Expr {
	return e.des.FindParameter(e.path, e.name)
}

func (e *EParam) Dup() Expr {
	return NewEParam(e.des, e.path, e.name)
}

// EScope is a reference to a design scope, used by system tasks that
// take hierarchy arguments.
//
type EScope struct {
	exprBase
	scope *Scope
}

// NewEScope returns a scope reference expression.
//
func NewEScope(s *Scope) *EScope { return &EScope{scope: s} }

// Scope returns the referenced scope.
//
func (e *EScope) Scope() *Scope { return e.scope }

// ETernary is the ?: operator.
//
type ETernary struct {
	exprBase
	cond, t, f Expr
}

// NewETernary returns a ternary expression. Its width is the width of
// the true alternative.
//
func NewETernary(cond, t, f Expr) *ETernary {
	e := &ETernary{cond: cond, t: t, f: f}
	e.width = t.Width()
	return e
}

// Cond returns the condition expression.
//
func (e *ETernary) Cond() Expr { return e.cond }

// True returns the true alternative.
//
func (e *ETernary) True() Expr { return e.t }

// False returns the false alternative.
//
func (e *ETernary) False() Expr { return e.f }

func (e *ETernary) Destroy() {
	e.cond.Destroy()
	e.t.Destroy()
	e.f.Destroy()
}

// EUnary is a unary operator. The op byte uses the source operator
// character, with reductions folded to single characters:
// '!' logical not, '~' bitwise not, '-' negate, '&' '|' '^' reductions,
// 'A' nand, 'N' nor, 'X' xnor reductions.
//
type EUnary struct {
	exprBase
	op   byte
	expr Expr
}

// NewEUnary returns a unary expression. Logical not and the reduction
// operators are one bit wide; the others keep the operand width.
//
func NewEUnary(op byte, ex Expr) *EUnary {
	e := &EUnary{op: op, expr: ex}
	e.width = ex.Width()
	switch op {
	case '!', '&', '|', '^', 'A', 'N', 'X':
		e.width = 1
	}
	return e
}

// Op returns the operator character.
//
func (e *EUnary) Op() byte { return e.op }

// Operand returns the operand expression.
//
func (e *EUnary) Operand() Expr { return e.expr }

func (e *EUnary) Destroy() { e.expr.Destroy() }

// EBinary is a binary operator. The op byte uses the source operator
// character, with multi-character operators folded:
// '+' '-', '&' '|' '^', 'e' ==, 'n' !=, 'E' ===, 'N' !==,
// '<' '>', 'L' <=, 'G' >=, 'a' &&, 'o' ||, 'l' <<, 'r' >>.
//
type EBinary struct {
	exprBase
	op   byte
	l, r Expr
}

// Op returns the operator character.
//
func (e *EBinary) Op() byte { return e.op }

// Left returns the left operand.
//
func (e *EBinary) Left() Expr { return e.l }

// Right returns the right operand.
//
func (e *EBinary) Right() Expr { return e.r }

func (e *EBinary) Destroy() {
	e.l.Destroy()
	e.r.Destroy()
}

func (e *EBinary) Dup() Expr {
	dup := &EBinary{op: e.op, l: e.l.Dup(), r: e.r.Dup()}
	dup.width = e.width
	return dup
}

// equalize tries to bring both operands to the same width by coercing
// the narrower one up and the wider one down.
func equalize(l, r Expr) {
	if l.Width() > r.Width() {
		r.SetWidth(l.Width())
	}
	if r.Width() > l.Width() {
		l.SetWidth(r.Width())
	}
	if l.Width() < r.Width() {
		r.SetWidth(l.Width())
	}
	if r.Width() < l.Width() {
		l.SetWidth(r.Width())
	}
}

// NewEBAdd returns an addition or subtraction. If the operand widths
// cannot be matched, the result width is 0 and the caller decides what
// to make of it.
//
func NewEBAdd(op byte, l, r Expr) *EBinary {
	e := &EBinary{op: op, l: l, r: r}
	equalize(l, r)
	if l.Width() == r.Width() {
		e.width = l.Width()
	}
	return e
}

// NewEBBits returns a bitwise operator expression. Operands that
// cannot be matched naturally are zero-padded to fit.
//
func NewEBBits(op byte, l, r Expr) *EBinary {
	equalize(l, r)
	if l.Width() > r.Width() {
		r = padToWidth(r, l.Width())
	}
	if r.Width() > l.Width() {
		l = padToWidth(l, r.Width())
	}
	e := &EBinary{op: op, l: l, r: r}
	e.width = l.Width()
	return e
}

// NewEBComp returns a comparison expression, always one bit wide.
//
func NewEBComp(op byte, l, r Expr) *EBinary {
	e := &EBinary{op: op, l: l, r: r}
	e.width = 1
	return e
}

// NewEBLogic returns a logical and/or expression, always one bit wide.
//
func NewEBLogic(op byte, l, r Expr) *EBinary {
	e := &EBinary{op: op, l: l, r: r}
	e.width = 1
	return e
}

// NewEBShift returns a shift expression, as wide as its left operand.
//
func NewEBShift(op byte, l, r Expr) *EBinary {
	e := &EBinary{op: op, l: l, r: r}
	e.width = l.Width()
	return e
}

// padToWidth widens e to w bits, by coercion when the expression
// allows it and otherwise by concatenating a zero constant above it.
//
func padToWidth(e Expr, w int) Expr {
	if e.Width() >= w || e.SetWidth(w) {
		return e
	}
	pad := make(logic.Vector, w-e.Width())
	c := NewEConcat(2, 1)
	c.Set(0, NewEConst(pad))
	c.Set(1, e)
	return c
}

// EUFunc is a call to a user-defined function. The result net carries
// the return value.
//
type EUFunc struct {
	exprBase
	def    *FuncDef
	result *ESignal
	parms  []Expr
}

// NewEUFunc returns a call to def storing its result in res.
//
func NewEUFunc(def *FuncDef, res *ESignal, parms []Expr) *EUFunc {
	e := &EUFunc{def: def, result: res, parms: parms}
	e.width = res.Width()
	return e
}

// Name returns the name of the called function.
//
func (e *EUFunc) Name() string { return e.def.Name() }

// Result returns the result signal expression.
//
func (e *EUFunc) Result() *ESignal { return e.result }

// Definition returns the called function's definition.
//
func (e *EUFunc) Definition() *FuncDef { return e.def }

// ParmCount returns the number of actual parameters.
//
func (e *EUFunc) ParmCount() int { return len(e.parms) }

// Parm returns actual parameter idx.
//
func (e *EUFunc) Parm(idx int) Expr { return e.parms[idx] }

func (e *EUFunc) Destroy() {
	for _, p := range e.parms {
		p.Destroy()
	}
	e.result.Destroy()
}
