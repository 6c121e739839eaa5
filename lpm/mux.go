// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm

import "github.com/db47h/netlist"

// A Mux selects one of size alternative wid bit wide inputs under the
// control of a swid bit wide select. The pinout is:
//
//	0                        -- Aclr
//	1                        -- Clock
//	2+i                      -- Result[i]
//	2+wid+i                  -- Sel[i]
//	2+wid+swid + s*wid + i   -- Data[s][i]
//
type Mux struct {
	netlist.Node
	width, size, swidth int
}

// NewMux returns a multiplexer of size alternatives, wid data bits
// each, with a swid bit select.
//
func NewMux(name string, wid, size, swid int) *Mux {
	m := &Mux{width: wid, size: size, swidth: swid}
	m.Node = netlist.NewNode(m, name, 2+wid+swid+size*wid)

	m.Pin(0).SetDir(netlist.Input)
	m.Pin(0).SetName("Aclr", 0)
	m.Pin(1).SetDir(netlist.Input)
	m.Pin(1).SetName("Clock", 0)

	for idx := 0; idx < wid; idx++ {
		m.Pin(2 + idx).SetDir(netlist.Output)
		m.Pin(2 + idx).SetName("Result", idx)
	}
	for idx := 0; idx < swid; idx++ {
		m.Pin(2 + wid + idx).SetDir(netlist.Input)
		m.Pin(2 + wid + idx).SetName("Sel", idx)
	}
	for sel := 0; sel < size; sel++ {
		for idx := 0; idx < wid; idx++ {
			pin := m.Pin(2 + wid + swid + sel*wid + idx)
			pin.SetDir(netlist.Input)
			pin.SetName("Data", sel*wid+idx)
		}
	}
	return m
}

// Width returns the data width of the multiplexer.
//
func (m *Mux) Width() int { return m.width }

// Size returns the number of alternative inputs.
//
func (m *Mux) Size() int { return m.size }

// SWidth returns the width of the select input.
//
func (m *Mux) SWidth() int { return m.swidth }

// PinAclr returns the asynchronous clear pin.
//
func (m *Mux) PinAclr() *netlist.Link { return m.Pin(0) }

// PinClock returns the clock pin of a pipelined instance.
//
func (m *Mux) PinClock() *netlist.Link { return m.Pin(1) }

// PinResult returns result pin idx.
//
func (m *Mux) PinResult(idx int) *netlist.Link {
	if idx >= m.width {
		panic("lpm: Mux result pin out of range")
	}
	return m.Pin(2 + idx)
}

// PinSel returns select pin idx.
//
func (m *Mux) PinSel(idx int) *netlist.Link {
	if idx >= m.swidth {
		panic("lpm: Mux select pin out of range")
	}
	return m.Pin(2 + m.width + idx)
}

// PinData returns bit idx of alternative sel.
//
func (m *Mux) PinData(sel, idx int) *netlist.Link {
	if sel >= m.size {
		panic("lpm: Mux data alternative out of range")
	}
	if idx >= m.width {
		panic("lpm: Mux data pin out of range")
	}
	return m.Pin(2 + m.width + m.swidth + sel*m.width + idx)
}
