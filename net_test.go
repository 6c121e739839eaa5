// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
)

func TestNet_ranges(t *testing.T) {
	d := netlist.New()
	s := d.MakeRootScope("top")

	n := netlist.NewNet(s, "top.n", netlist.NetWire, 8)
	require.Equal(t, 8, n.PinCount())
	require.Equal(t, 7, n.Msb())
	require.Equal(t, 0, n.Lsb())
	require.Equal(t, 0, n.SBToIdx(0))
	require.Equal(t, 7, n.SBToIdx(7))

	// declared range [15:8]
	hi := netlist.NewNetRange(s, "top.hi", netlist.NetWire, 15, 8)
	require.Equal(t, 8, hi.PinCount())
	require.Equal(t, 0, hi.SBToIdx(8))
	require.Equal(t, 7, hi.SBToIdx(15))

	// reversed range [0:7]
	rev := netlist.NewNetRange(s, "top.rev", netlist.NetWire, 0, 7)
	require.Equal(t, 8, rev.PinCount())
	require.Equal(t, 0, rev.SBToIdx(7))
	require.Equal(t, 7, rev.SBToIdx(0))
}

func TestNet_kinds(t *testing.T) {
	n := netlist.NewTmpNet("n", 1)
	require.Equal(t, netlist.NetImplicit, n.Type())
	require.True(t, n.LocalFlag())
	require.Nil(t, n.Scope())

	// elaboration promotes implicit wires once declared
	n.SetType(netlist.NetReg)
	require.Equal(t, netlist.NetReg, n.Type())
	require.Equal(t, "reg", n.Type().String())

	require.Equal(t, netlist.NotAPort, n.PortType())
	n.SetPortType(netlist.PortOutput)
	require.Equal(t, netlist.PortOutput, n.PortType())
}

func TestNet_ivalue(t *testing.T) {
	n := netlist.NewTmpNet("n", 2)
	require.Equal(t, logic.Vz, n.IValue(0))
	n.SetIValue(0, logic.V1)
	require.Equal(t, logic.V1, n.IValue(0))
	require.Equal(t, logic.Vz, n.IValue(1))
}

func TestNet_destroy(t *testing.T) {
	d := netlist.New()
	s := d.MakeRootScope("top")

	a := netlist.NewNet(s, "top.a", netlist.NetWire, 1)
	b := netlist.NewNet(s, "top.b", netlist.NetWire, 1)
	d.AddSignal(a)
	d.AddSignal(b)
	netlist.Connect(a.Pin(0), b.Pin(0))

	a.Destroy()

	require.Nil(t, d.FindSignal("top", "a"))
	require.Same(t, b, d.FindSignal("top", "b"))
	require.False(t, b.Pin(0).IsLinked())
}

func TestObj_attributes(t *testing.T) {
	a := netlist.NewTmpNet("a", 1)
	a.SetAttributes(map[string]string{"k1": "v1", "k2": "v2"})
	require.Equal(t, "v1", a.Attribute("k1"))
	require.Panics(t, func() { a.SetAttributes(map[string]string{"k": "v"}) })

	b := netlist.NewTmpNet("b", 1)
	b.SetAttribute("k1", "v1")

	// b's attributes are a subset of a's
	require.True(t, a.HasCompatAttributes(&b.Obj))
	require.False(t, b.HasCompatAttributes(&a.Obj))

	b.SetAttribute("k2", "other")
	require.False(t, a.HasCompatAttributes(&b.Obj))
}

func TestObj_delays(t *testing.T) {
	n := netlist.NewTmpNet("n", 1)
	rise, fall, decay := n.Delays()
	require.Zero(t, rise+fall+decay)

	n.SetDelays(1, 2, 3)
	rise, fall, decay = n.Delays()
	require.Equal(t, uint64(1), rise)
	require.Equal(t, uint64(2), fall)
	require.Equal(t, uint64(3), decay)
}
