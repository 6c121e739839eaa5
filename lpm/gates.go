// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm

import "github.com/db47h/netlist"

// GateType is the boolean function of a Logic gate.
//
type GateType int

// Gate kinds.
//
const (
	AND GateType = iota
	BUF
	BUFIF0
	BUFIF1
	NAND
	NOR
	NOT
	NOTIF0
	NOTIF1
	OR
	XNOR
	XOR
)

func (t GateType) String() string {
	switch t {
	case AND:
		return "and"
	case BUF:
		return "buf"
	case BUFIF0:
		return "bufif0"
	case BUFIF1:
		return "bufif1"
	case NAND:
		return "nand"
	case NOR:
		return "nor"
	case NOT:
		return "not"
	case NOTIF0:
		return "notif0"
	case NOTIF1:
		return "notif1"
	case OR:
		return "or"
	case XNOR:
		return "xnor"
	case XOR:
		return "xor"
	}
	return "invalid"
}

// A Logic is an elementary gate. Pin 0 is the output, the remaining
// pins are inputs.
//
type Logic struct {
	netlist.Node
	typ GateType
}

// NewLogic returns a gate of kind t with pins total pins, output
// included.
//
func NewLogic(name string, pins int, t GateType) *Logic {
	g := &Logic{typ: t}
	g.Node = netlist.NewNode(g, name, pins)
	g.Pin(0).SetDir(netlist.Output)
	g.Pin(0).SetName("O", 0)
	for idx := 1; idx < pins; idx++ {
		g.Pin(idx).SetDir(netlist.Input)
		g.Pin(idx).SetName("I", idx-1)
	}
	return g
}

// Type returns the boolean function of the gate.
//
func (g *Logic) Type() GateType { return g.typ }

// PinO returns the output pin.
//
func (g *Logic) PinO() *netlist.Link { return g.Pin(0) }

// PinI returns input pin idx.
//
func (g *Logic) PinI(idx int) *netlist.Link { return g.Pin(idx + 1) }

// A BUFZ is a transparent buffer that code generators may elide. It
// marks a point where elaboration needed a driver but no logic.
//
type BUFZ struct {
	netlist.Node
}

// NewBUFZ returns a transparent buffer.
//
func NewBUFZ(name string) *BUFZ {
	b := &BUFZ{}
	b.Node = netlist.NewNode(b, name, 2)
	b.Pin(0).SetDir(netlist.Output)
	b.Pin(0).SetName("O", 0)
	b.Pin(1).SetDir(netlist.Input)
	b.Pin(1).SetName("I", 0)
	return b
}

// PinO returns the output pin.
//
func (b *BUFZ) PinO() *netlist.Link { return b.Pin(0) }

// PinI returns the input pin.
//
func (b *BUFZ) PinI() *netlist.Link { return b.Pin(1) }

// A CaseCmp compares its two single-bit inputs for exact equality: x
// matches x and z matches z, so the output is always 0 or 1.
//
type CaseCmp struct {
	netlist.Node
}

// NewCaseCmp returns a case-equality comparator.
//
func NewCaseCmp(name string) *CaseCmp {
	c := &CaseCmp{}
	c.Node = netlist.NewNode(c, name, 3)
	c.Pin(0).SetDir(netlist.Output)
	c.Pin(0).SetName("O", 0)
	c.Pin(1).SetDir(netlist.Input)
	c.Pin(1).SetName("I0", 0)
	c.Pin(2).SetDir(netlist.Input)
	c.Pin(2).SetName("I1", 0)
	return c
}

// PinO returns the output pin.
//
func (c *CaseCmp) PinO() *netlist.Link { return c.Pin(0) }

// PinI0 returns the first input pin.
//
func (c *CaseCmp) PinI0() *netlist.Link { return c.Pin(1) }

// PinI1 returns the second input pin.
//
func (c *CaseCmp) PinI1() *netlist.Link { return c.Pin(2) }
