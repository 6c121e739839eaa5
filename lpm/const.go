// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm

import (
	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
)

// A Const drives a constant value, one output pin per bit.
//
type Const struct {
	netlist.Node
	value logic.Vector
}

// NewConst returns a driver of the given vector, with pin idx driving
// bit idx.
//
func NewConst(name string, val logic.Vector) *Const {
	c := &Const{value: val}
	c.Node = netlist.NewNode(c, name, val.Len())
	for idx := 0; idx < val.Len(); idx++ {
		c.Pin(idx).SetDir(netlist.Output)
		c.Pin(idx).SetName("O", idx)
	}
	return c
}

// NewConstV returns a single-bit driver of v.
//
func NewConstV(name string, v logic.V) *Const {
	return NewConst(name, logic.Vector{v})
}

// Value returns the driven vector.
//
func (c *Const) Value() logic.Vector { return c.value }

// Bit returns the value driven on pin idx.
//
func (c *Const) Bit(idx int) logic.V { return c.value[idx] }
