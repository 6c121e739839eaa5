// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import "github.com/db47h/netlist/logic"

// NetType is the declared kind of a signal.
//
type NetType int

// Signal kinds.
//
const (
	NetImplicit    NetType = iota // undeclared wire, created by use
	NetImplicitReg                // undeclared reg, created by use
	NetInteger
	NetReg
	NetSupply0
	NetSupply1
	NetTri
	NetTri0
	NetTri1
	NetTriAnd
	NetTriOr
	NetWAnd
	NetWOr
	NetWire
)

func (t NetType) String() string {
	switch t {
	case NetImplicit:
		return "wire /*implicit*/"
	case NetImplicitReg:
		return "reg /*implicit*/"
	case NetInteger:
		return "integer"
	case NetReg:
		return "reg"
	case NetSupply0:
		return "supply0"
	case NetSupply1:
		return "supply1"
	case NetTri:
		return "tri"
	case NetTri0:
		return "tri0"
	case NetTri1:
		return "tri1"
	case NetTriAnd:
		return "triand"
	case NetTriOr:
		return "trior"
	case NetWAnd:
		return "wand"
	case NetWOr:
		return "wor"
	}
	return "wire"
}

// PortType describes how a signal relates to the ports of its module.
//
type PortType int

// Port kinds.
//
const (
	NotAPort PortType = iota
	PortInput
	PortOutput
	PortInout
)

// A Net is a declared signal: a wire, reg, tri or similar named vector
// of bits. Each bit is one pin, and the bit range may run in either
// direction. Nets sit in their design's signal ring once registered
// with Design.AddSignal, and in their scope's signal list from
// construction.
//
// Passes that keep a reference to a net outside the graph itself (for
// example expressions) must account for it with IncrEref/DecrEref; a
// net cannot be destroyed while such references exist.
//
type Net struct {
	Obj
	design           *Design
	sigNext, sigPrev *Net
	scope            *Scope
	typ              NetType
	port             PortType
	msb, lsb         int
	local            bool
	ivalue           logic.Vector
	eref             int
}

// NewNet returns a net of npins bits with the default range
// [npins-1:0].
//
func NewNet(s *Scope, name string, t NetType, npins int) *Net {
	return NewNetRange(s, name, t, npins-1, 0)
}

// NewNetRange returns a net with the declared bit range [msb:lsb]. The
// range may run in either direction; the pin count is its span.
//
func NewNetRange(s *Scope, name string, t NetType, msb, lsb int) *Net {
	npins := msb - lsb
	if npins < 0 {
		npins = -npins
	}
	npins++

	n := &Net{scope: s, typ: t, port: NotAPort, msb: msb, lsb: lsb}
	n.init(n, name, npins)
	n.ivalue = logic.NewVector(npins)
	for idx := 0; idx < npins; idx++ {
		n.Pin(idx).SetName("P", idx)
	}
	if s != nil {
		s.addSignal(n)
	}
	return n
}

// NewTmpNet returns a local, implicit net used by elaboration to carry
// intermediate values. It belongs to no scope.
//
func NewTmpNet(name string, npins int) *Net {
	n := NewNet(nil, name, NetImplicit, npins)
	n.local = true
	return n
}

// Design returns the design the net is registered with, or nil.
//
func (n *Net) Design() *Design { return n.design }

// Scope returns the scope the net is declared in, or nil for local
// temporaries.
//
func (n *Net) Scope() *Scope { return n.scope }

// Type returns the declared kind of the signal.
//
func (n *Net) Type() NetType { return n.typ }

// SetType changes the kind of the signal. Elaboration uses this to
// promote implicit wires once a declaration is found.
//
func (n *Net) SetType(t NetType) { n.typ = t }

// PortType returns the port direction of the signal.
//
func (n *Net) PortType() PortType { return n.port }

// SetPortType marks the signal as a module port of the given direction.
//
func (n *Net) SetPortType(t PortType) { n.port = t }

// Msb and Lsb return the declared bit range bounds.
//
func (n *Net) Msb() int { return n.msb }

// Lsb returns the least significant index of the declared range.
//
func (n *Net) Lsb() int { return n.lsb }

// SBToIdx maps a select bit index from the declared range to the pin
// offset, accounting for either range orientation.
//
func (n *Net) SBToIdx(sb int) int {
	if n.msb >= n.lsb {
		return sb - n.lsb
	}
	return n.lsb - sb
}

// LocalFlag returns true for elaboration-local temporaries.
//
func (n *Net) LocalFlag() bool { return n.local }

// SetLocalFlag marks the net as an elaboration-local temporary.
//
func (n *Net) SetLocalFlag(flag bool) { n.local = flag }

// IValue returns the initial value of bit idx.
//
func (n *Net) IValue(idx int) logic.V { return n.ivalue[idx] }

// SetIValue sets the initial value of bit idx.
//
func (n *Net) SetIValue(idx int, v logic.V) { n.ivalue[idx] = v }

// IncrEref records an external reference to the net.
//
func (n *Net) IncrEref() { n.eref++ }

// DecrEref releases an external reference to the net.
//
func (n *Net) DecrEref() {
	if n.eref == 0 {
		panic("netlist: external reference count underflow on " + n.Name())
	}
	n.eref--
}

// Eref returns the current external reference count.
//
func (n *Net) Eref() int { return n.eref }

// Destroy removes the net from its design and scope and disconnects
// all its pins. It panics if external references are still held.
//
func (n *Net) Destroy() {
	if n.eref != 0 {
		panic("netlist: destroying " + n.Name() + " with live external references")
	}
	if n.design != nil {
		n.design.DelSignal(n)
	}
	if n.scope != nil {
		n.scope.removeSignal(n)
	}
	n.unlinkPins()
}
