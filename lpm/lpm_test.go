// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lpm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
	"github.com/db47h/netlist/lpm"
)

func TestFF_pinout(t *testing.T) {
	ff := lpm.NewFF("ff", 4)
	require.Equal(t, 8+2*4, ff.PinCount())
	require.Equal(t, 4, ff.Width())

	require.Same(t, ff.Pin(0), ff.PinClock())
	require.Same(t, ff.Pin(4), ff.PinAclr())
	require.Same(t, ff.Pin(8), ff.PinData(0))
	require.Same(t, ff.Pin(9), ff.PinQ(0))
	require.Same(t, ff.Pin(8+2*3), ff.PinData(3))
	require.Same(t, ff.Pin(9+2*3), ff.PinQ(3))

	require.Equal(t, netlist.Input, ff.PinData(2).Dir())
	require.Equal(t, netlist.Output, ff.PinQ(2).Dir())
	require.Equal(t, "Data", ff.PinData(2).PortName())
	require.Equal(t, 2, ff.PinData(2).Inst())

	require.Panics(t, func() { ff.PinData(4) })
	require.Panics(t, func() { ff.PinQ(4) })
}

func TestAddSub_pinout(t *testing.T) {
	a := lpm.NewAddSub("add", 8)
	require.Equal(t, 6+3*8, a.PinCount())

	require.Same(t, a.Pin(3), a.PinCin())
	require.Same(t, a.Pin(4), a.PinCout())
	require.Same(t, a.Pin(6), a.PinDataA(0))
	require.Same(t, a.Pin(7), a.PinDataB(0))
	require.Same(t, a.Pin(8), a.PinResult(0))
	require.Same(t, a.Pin(6+3*7), a.PinDataA(7))
	require.Same(t, a.Pin(8+3*7), a.PinResult(7))

	require.Equal(t, netlist.Output, a.PinCout().Dir())
	require.Equal(t, netlist.Input, a.PinDataB(3).Dir())
	require.Equal(t, netlist.Output, a.PinResult(3).Dir())
}

func TestCompare_pinout(t *testing.T) {
	c := lpm.NewCompare("cmp", 4)
	require.Equal(t, 8+2*4, c.PinCount())

	require.Same(t, c.Pin(2), c.PinAGB())
	require.Same(t, c.Pin(4), c.PinAEB())
	require.Same(t, c.Pin(7), c.PinALEB())
	require.Same(t, c.Pin(8), c.PinDataA(0))
	require.Same(t, c.Pin(9), c.PinDataB(0))
	require.Same(t, c.Pin(8+2*3), c.PinDataA(3))

	require.Equal(t, netlist.Output, c.PinANEB().Dir())
	require.Equal(t, netlist.Input, c.PinDataA(0).Dir())
}

func TestCLShift_pinout(t *testing.T) {
	s := lpm.NewCLShift("sh", 8, 3)
	require.Equal(t, 3+2*8+3, s.PinCount())

	require.Same(t, s.Pin(0), s.PinDirection())
	require.Same(t, s.Pin(3), s.PinData(0))
	require.Same(t, s.Pin(3+8), s.PinResult(0))
	require.Same(t, s.Pin(3+16), s.PinDistance(0))
	require.Same(t, s.Pin(3+16+2), s.PinDistance(2))

	require.Equal(t, netlist.Output, s.PinResult(5).Dir())
	require.Panics(t, func() { s.PinDistance(3) })
}

func TestMux_pinout(t *testing.T) {
	m := lpm.NewMux("mux", 4, 4, 2)
	require.Equal(t, 2+4+2+4*4, m.PinCount())
	require.Equal(t, 4, m.Width())
	require.Equal(t, 4, m.Size())
	require.Equal(t, 2, m.SWidth())

	require.Same(t, m.Pin(2), m.PinResult(0))
	require.Same(t, m.Pin(2+4), m.PinSel(0))
	require.Same(t, m.Pin(2+4+2), m.PinData(0, 0))
	require.Same(t, m.Pin(2+4+2+3*4+2), m.PinData(3, 2))

	require.Equal(t, netlist.Output, m.PinResult(1).Dir())
	require.Equal(t, netlist.Input, m.PinSel(1).Dir())
	require.Panics(t, func() { m.PinData(4, 0) })
	require.Panics(t, func() { m.PinData(0, 4) })
}

func TestGates(t *testing.T) {
	g := lpm.NewLogic("g", 4, lpm.NAND)
	require.Equal(t, lpm.NAND, g.Type())
	require.Equal(t, "nand", g.Type().String())
	require.Same(t, g.Pin(0), g.PinO())
	require.Same(t, g.Pin(3), g.PinI(2))
	require.Equal(t, netlist.Output, g.PinO().Dir())
	require.Equal(t, netlist.Input, g.PinI(0).Dir())

	b := lpm.NewBUFZ("b")
	require.Equal(t, 2, b.PinCount())
	require.Equal(t, netlist.Output, b.PinO().Dir())

	cc := lpm.NewCaseCmp("cc")
	require.Equal(t, 3, cc.PinCount())
	require.Equal(t, netlist.Input, cc.PinI1().Dir())
}

func TestConst(t *testing.T) {
	v, err := logic.Parse("1x0")
	require.NoError(t, err)
	c := lpm.NewConst("c", v)
	require.Equal(t, 3, c.PinCount())
	require.Equal(t, logic.V0, c.Bit(0))
	require.Equal(t, logic.Vx, c.Bit(1))
	require.Equal(t, logic.V1, c.Bit(2))
	for idx := 0; idx < 3; idx++ {
		require.Equal(t, netlist.Output, c.Pin(idx).Dir())
	}

	one := lpm.NewConstV("one", logic.V1)
	require.Equal(t, 1, one.PinCount())
	require.Equal(t, logic.V1, one.Bit(0))
}

// TestConstDrivesNet builds the smallest meaningful netlist: a
// constant driving a declared signal.
func TestConstDrivesNet(t *testing.T) {
	d := netlist.New()
	s := d.MakeRootScope("top")

	sig := netlist.NewNet(s, "top.s", netlist.NetWire, 2)
	d.AddSignal(sig)

	c := lpm.NewConst("top.c", logic.Vector{logic.V1, logic.V0})
	d.AddNode(&c.Node)

	netlist.Connect(c.Pin(0), sig.Pin(0))
	netlist.Connect(c.Pin(1), sig.Pin(1))

	for idx := 0; idx < 2; idx++ {
		require.Equal(t, 1, netlist.CountOutputs(sig.Pin(idx)))
		found, pin := netlist.FindLinkSignal(c, idx)
		require.Same(t, sig, found)
		require.Equal(t, idx, pin)
	}
	require.True(t, netlist.Connected(c, sig))
}
