// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm

import "github.com/db47h/netlist"

// An FF is a wid bit wide D flip-flop with synchronous and
// asynchronous load, set and clear. The pinout is:
//
//	0      -- Clock
//	1      -- Enable
//	2      -- Aload
//	3      -- Aset
//	4      -- Aclr
//	5      -- Sload
//	6      -- Sset
//	7      -- Sclr
//	8+2*i  -- Data[i]
//	9+2*i  -- Q[i]
//
type FF struct {
	netlist.Node
	width int
}

// NewFF returns a wid bit wide flip-flop.
//
func NewFF(name string, wid int) *FF {
	ff := &FF{width: wid}
	ff.Node = netlist.NewNode(ff, name, 8+2*wid)

	for idx, ctl := range []string{
		"Clock", "Enable", "Aload", "Aset", "Aclr", "Sload", "Sset", "Sclr",
	} {
		ff.Pin(idx).SetDir(netlist.Input)
		ff.Pin(idx).SetName(ctl, 0)
	}
	for idx := 0; idx < wid; idx++ {
		ff.Pin(8 + 2*idx).SetDir(netlist.Input)
		ff.Pin(8 + 2*idx).SetName("Data", idx)
		ff.Pin(9 + 2*idx).SetDir(netlist.Output)
		ff.Pin(9 + 2*idx).SetName("Q", idx)
	}
	return ff
}

// Width returns the data width of the flip-flop.
//
func (ff *FF) Width() int { return ff.width }

// PinClock returns the clock pin.
//
func (ff *FF) PinClock() *netlist.Link { return ff.Pin(0) }

// PinEnable returns the clock enable pin.
//
func (ff *FF) PinEnable() *netlist.Link { return ff.Pin(1) }

// PinAload returns the asynchronous load pin.
//
func (ff *FF) PinAload() *netlist.Link { return ff.Pin(2) }

// PinAset returns the asynchronous set pin.
//
func (ff *FF) PinAset() *netlist.Link { return ff.Pin(3) }

// PinAclr returns the asynchronous clear pin.
//
func (ff *FF) PinAclr() *netlist.Link { return ff.Pin(4) }

// PinSload returns the synchronous load pin.
//
func (ff *FF) PinSload() *netlist.Link { return ff.Pin(5) }

// PinSset returns the synchronous set pin.
//
func (ff *FF) PinSset() *netlist.Link { return ff.Pin(6) }

// PinSclr returns the synchronous clear pin.
//
func (ff *FF) PinSclr() *netlist.Link { return ff.Pin(7) }

// PinData returns data input pin idx.
//
func (ff *FF) PinData(idx int) *netlist.Link {
	if idx >= ff.width {
		panic("lpm: FF data pin out of range")
	}
	return ff.Pin(8 + 2*idx)
}

// PinQ returns data output pin idx.
//
func (ff *FF) PinQ(idx int) *netlist.Link {
	if idx >= ff.width {
		panic("lpm: FF Q pin out of range")
	}
	return ff.Pin(9 + 2*idx)
}
