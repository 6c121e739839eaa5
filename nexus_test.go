// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
	"github.com/db47h/netlist/lpm"
)

// wire up a one-bit nexus: constant driver, two gate inputs and a
// declared signal.
func driverNexus(t *testing.T) (*lpm.Const, *lpm.Logic, *netlist.Net) {
	t.Helper()

	drv := lpm.NewConstV("drv", logic.V1)
	g := lpm.NewLogic("g", 3, lpm.AND)
	sig := netlist.NewTmpNet("sig", 1)

	netlist.Connect(drv.Pin(0), sig.Pin(0))
	netlist.Connect(g.PinI(0), sig.Pin(0))
	netlist.Connect(g.PinI(1), sig.Pin(0))
	return drv, g, sig
}

func TestCountInputsOutputs(t *testing.T) {
	drv, g, sig := driverNexus(t)

	require.Equal(t, 1, netlist.CountOutputs(sig.Pin(0)))
	require.Equal(t, 2, netlist.CountInputs(sig.Pin(0)))

	// the starting pin itself is included when it matches
	require.Equal(t, 1, netlist.CountOutputs(drv.Pin(0)))
	require.Equal(t, 2, netlist.CountInputs(g.PinI(0)))

	// a second driver on the same nexus
	drv2 := lpm.NewConstV("drv2", logic.V0)
	netlist.Connect(drv2.Pin(0), sig.Pin(0))
	require.Equal(t, 2, netlist.CountOutputs(sig.Pin(0)))
}

func TestCountSignals(t *testing.T) {
	_, _, sig := driverNexus(t)

	require.Equal(t, 1, netlist.CountSignals(sig.Pin(0)))

	sig2 := netlist.NewTmpNet("sig2", 1)
	netlist.Connect(sig2.Pin(0), sig.Pin(0))
	require.Equal(t, 2, netlist.CountSignals(sig.Pin(0)))
}

func TestFindLinkSignal(t *testing.T) {
	drv, g, sig := driverNexus(t)

	found, pin := netlist.FindLinkSignal(drv, 0)
	require.Same(t, sig, found)
	require.Equal(t, 0, pin)

	found, _ = netlist.FindLinkSignal(g, 1)
	require.Same(t, sig, found)

	// a nexus without any declared signal
	a := lpm.NewConstV("a", logic.V0)
	b := lpm.NewLogic("b", 2, lpm.BUF)
	netlist.Connect(a.Pin(0), b.PinI(0))
	found, _ = netlist.FindLinkSignal(a, 0)
	require.Nil(t, found)
}

func TestFindNextOutput(t *testing.T) {
	drv, _, sig := driverNexus(t)

	out := netlist.FindNextOutput(sig.Pin(0))
	require.NotNil(t, out)
	require.Same(t, drv.Pin(0), out)

	// starting at the only driver finds nothing else
	require.Nil(t, netlist.FindNextOutput(drv.Pin(0)))
}

func TestConnected(t *testing.T) {
	a := netlist.NewTmpNet("a", 2)
	b := netlist.NewTmpNet("b", 2)

	netlist.Connect(a.Pin(0), b.Pin(0))
	require.False(t, netlist.Connected(a, b))

	netlist.Connect(a.Pin(1), b.Pin(1))
	require.True(t, netlist.Connected(a, b))
	require.True(t, netlist.Connected(b, a))
}
