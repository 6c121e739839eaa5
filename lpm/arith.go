// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm

import "github.com/db47h/netlist"

// An AddSub is a wid bit wide adder/subtractor. The pinout is:
//
//	0      -- Aclr
//	1      -- Add_Sub
//	2      -- Clock
//	3      -- Cin
//	4      -- Cout
//	5      -- Overflow
//	6+3*i  -- DataA[i]
//	7+3*i  -- DataB[i]
//	8+3*i  -- Result[i]
//
type AddSub struct {
	netlist.Node
	width int
}

// NewAddSub returns a wid bit wide adder/subtractor.
//
func NewAddSub(name string, wid int) *AddSub {
	a := &AddSub{width: wid}
	a.Node = netlist.NewNode(a, name, 6+3*wid)

	for idx, ctl := range []string{"Aclr", "Add_Sub", "Clock", "Cin"} {
		a.Pin(idx).SetDir(netlist.Input)
		a.Pin(idx).SetName(ctl, 0)
	}
	a.Pin(4).SetDir(netlist.Output)
	a.Pin(4).SetName("Cout", 0)
	a.Pin(5).SetDir(netlist.Output)
	a.Pin(5).SetName("Overflow", 0)

	for idx := 0; idx < wid; idx++ {
		a.Pin(6 + 3*idx).SetDir(netlist.Input)
		a.Pin(6 + 3*idx).SetName("DataA", idx)
		a.Pin(7 + 3*idx).SetDir(netlist.Input)
		a.Pin(7 + 3*idx).SetName("DataB", idx)
		a.Pin(8 + 3*idx).SetDir(netlist.Output)
		a.Pin(8 + 3*idx).SetName("Result", idx)
	}
	return a
}

// Width returns the data width of the device.
//
func (a *AddSub) Width() int { return a.width }

// PinAclr returns the asynchronous clear pin.
//
func (a *AddSub) PinAclr() *netlist.Link { return a.Pin(0) }

// PinAddSub returns the operation select pin: 1 adds, 0 subtracts.
//
func (a *AddSub) PinAddSub() *netlist.Link { return a.Pin(1) }

// PinClock returns the clock pin of a pipelined instance.
//
func (a *AddSub) PinClock() *netlist.Link { return a.Pin(2) }

// PinCin returns the carry input pin.
//
func (a *AddSub) PinCin() *netlist.Link { return a.Pin(3) }

// PinCout returns the carry output pin.
//
func (a *AddSub) PinCout() *netlist.Link { return a.Pin(4) }

// PinOverflow returns the signed overflow pin.
//
func (a *AddSub) PinOverflow() *netlist.Link { return a.Pin(5) }

// PinDataA returns pin idx of the first operand.
//
func (a *AddSub) PinDataA(idx int) *netlist.Link {
	if idx >= a.width {
		panic("lpm: AddSub DataA pin out of range")
	}
	return a.Pin(6 + 3*idx)
}

// PinDataB returns pin idx of the second operand.
//
func (a *AddSub) PinDataB(idx int) *netlist.Link {
	if idx >= a.width {
		panic("lpm: AddSub DataB pin out of range")
	}
	return a.Pin(7 + 3*idx)
}

// PinResult returns result pin idx.
//
func (a *AddSub) PinResult(idx int) *netlist.Link {
	if idx >= a.width {
		panic("lpm: AddSub result pin out of range")
	}
	return a.Pin(8 + 3*idx)
}

// A Compare compares two wid bit wide operands and drives one pin per
// relation. The pinout is:
//
//	0      -- Aclr
//	1      -- Clock
//	2      -- AGB
//	3      -- AGEB
//	4      -- AEB
//	5      -- ANEB
//	6      -- ALB
//	7      -- ALEB
//	8+2*i  -- DataA[i]
//	9+2*i  -- DataB[i]
//
type Compare struct {
	netlist.Node
	width int
}

// NewCompare returns a wid bit wide comparator.
//
func NewCompare(name string, wid int) *Compare {
	c := &Compare{width: wid}
	c.Node = netlist.NewNode(c, name, 8+2*wid)

	c.Pin(0).SetDir(netlist.Input)
	c.Pin(0).SetName("Aclr", 0)
	c.Pin(1).SetDir(netlist.Input)
	c.Pin(1).SetName("Clock", 0)
	for idx, out := range []string{"AGB", "AGEB", "AEB", "ANEB", "ALB", "ALEB"} {
		c.Pin(2 + idx).SetDir(netlist.Output)
		c.Pin(2 + idx).SetName(out, 0)
	}
	for idx := 0; idx < wid; idx++ {
		c.Pin(8 + 2*idx).SetDir(netlist.Input)
		c.Pin(8 + 2*idx).SetName("DataA", idx)
		c.Pin(9 + 2*idx).SetDir(netlist.Input)
		c.Pin(9 + 2*idx).SetName("DataB", idx)
	}
	return c
}

// Width returns the operand width of the comparator.
//
func (c *Compare) Width() int { return c.width }

// PinAclr returns the asynchronous clear pin.
//
func (c *Compare) PinAclr() *netlist.Link { return c.Pin(0) }

// PinClock returns the clock pin of a pipelined instance.
//
func (c *Compare) PinClock() *netlist.Link { return c.Pin(1) }

// PinAGB returns the A>B output pin.
//
func (c *Compare) PinAGB() *netlist.Link { return c.Pin(2) }

// PinAGEB returns the A>=B output pin.
//
func (c *Compare) PinAGEB() *netlist.Link { return c.Pin(3) }

// PinAEB returns the A==B output pin.
//
func (c *Compare) PinAEB() *netlist.Link { return c.Pin(4) }

// PinANEB returns the A!=B output pin.
//
func (c *Compare) PinANEB() *netlist.Link { return c.Pin(5) }

// PinALB returns the A<B output pin.
//
func (c *Compare) PinALB() *netlist.Link { return c.Pin(6) }

// PinALEB returns the A<=B output pin.
//
func (c *Compare) PinALEB() *netlist.Link { return c.Pin(7) }

// PinDataA returns pin idx of the first operand.
//
func (c *Compare) PinDataA(idx int) *netlist.Link {
	if idx >= c.width {
		panic("lpm: Compare DataA pin out of range")
	}
	return c.Pin(8 + 2*idx)
}

// PinDataB returns pin idx of the second operand.
//
func (c *Compare) PinDataB(idx int) *netlist.Link {
	if idx >= c.width {
		panic("lpm: Compare DataB pin out of range")
	}
	return c.Pin(9 + 2*idx)
}

// A CLShift is a combinational shifter of wid data bits by a wdist bit
// distance. The pinout is:
//
//	0          -- Direction
//	1          -- Underflow
//	2          -- Overflow
//	3+i        -- Data[i]
//	3+wid+i    -- Result[i]
//	3+2*wid+i  -- Distance[i]
//
type CLShift struct {
	netlist.Node
	width, wdist int
}

// NewCLShift returns a shifter of wid data bits by wdist distance
// bits.
//
func NewCLShift(name string, wid, wdist int) *CLShift {
	s := &CLShift{width: wid, wdist: wdist}
	s.Node = netlist.NewNode(s, name, 3+2*wid+wdist)

	s.Pin(0).SetDir(netlist.Input)
	s.Pin(0).SetName("Direction", 0)
	s.Pin(1).SetDir(netlist.Output)
	s.Pin(1).SetName("Underflow", 0)
	s.Pin(2).SetDir(netlist.Output)
	s.Pin(2).SetName("Overflow", 0)

	for idx := 0; idx < wid; idx++ {
		s.Pin(3 + idx).SetDir(netlist.Input)
		s.Pin(3 + idx).SetName("Data", idx)
		s.Pin(3 + wid + idx).SetDir(netlist.Output)
		s.Pin(3 + wid + idx).SetName("Result", idx)
	}
	for idx := 0; idx < wdist; idx++ {
		s.Pin(3 + 2*wid + idx).SetDir(netlist.Input)
		s.Pin(3 + 2*wid + idx).SetName("Distance", idx)
	}
	return s
}

// Width returns the data width of the shifter.
//
func (s *CLShift) Width() int { return s.width }

// WidthDist returns the width of the shift distance input.
//
func (s *CLShift) WidthDist() int { return s.wdist }

// PinDirection returns the direction select pin: 0 shifts left, 1
// shifts right.
//
func (s *CLShift) PinDirection() *netlist.Link { return s.Pin(0) }

// PinUnderflow returns the underflow output pin.
//
func (s *CLShift) PinUnderflow() *netlist.Link { return s.Pin(1) }

// PinOverflow returns the overflow output pin.
//
func (s *CLShift) PinOverflow() *netlist.Link { return s.Pin(2) }

// PinData returns data input pin idx.
//
func (s *CLShift) PinData(idx int) *netlist.Link {
	if idx >= s.width {
		panic("lpm: CLShift data pin out of range")
	}
	return s.Pin(3 + idx)
}

// PinResult returns result pin idx.
//
func (s *CLShift) PinResult(idx int) *netlist.Link {
	if idx >= s.width {
		panic("lpm: CLShift result pin out of range")
	}
	return s.Pin(3 + s.width + idx)
}

// PinDistance returns distance input pin idx.
//
func (s *CLShift) PinDistance(idx int) *netlist.Link {
	if idx >= s.wdist {
		panic("lpm: CLShift distance pin out of range")
	}
	return s.Pin(3 + 2*s.width + idx)
}
