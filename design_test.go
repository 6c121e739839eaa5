// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
	"github.com/db47h/netlist/lpm"
)

func signalNames(d *netlist.Design) []string {
	var names []string
	d.EachSignal(func(n *netlist.Net) bool {
		names = append(names, n.Name())
		return true
	})
	sort.Strings(names)
	return names
}

func TestDesign_signals(t *testing.T) {
	d := netlist.New()
	s := d.MakeRootScope("top")

	a := netlist.NewNet(s, "top.a", netlist.NetWire, 1)
	b := netlist.NewNet(s, "top.b", netlist.NetReg, 4)
	d.AddSignal(a)
	d.AddSignal(b)

	require.Same(t, d, a.Design())
	if diff := cmp.Diff([]string{"top.a", "top.b"}, signalNames(d)); diff != "" {
		t.Fatalf("signal ring mismatch (-want +got):\n%s", diff)
	}

	d.DelSignal(a)
	require.Nil(t, a.Design())
	if diff := cmp.Diff([]string{"top.b"}, signalNames(d)); diff != "" {
		t.Fatalf("signal ring mismatch (-want +got):\n%s", diff)
	}

	// a deleted signal can be re-added
	d.AddSignal(a)
	require.Len(t, signalNames(d), 2)

	require.Panics(t, func() { d.AddSignal(a) })
	d2 := netlist.New()
	require.Panics(t, func() { d2.DelSignal(a) })
}

func TestDesign_findSignal(t *testing.T) {
	d := netlist.New()
	top := d.MakeRootScope("top")
	sa := d.MakeScope("top", netlist.ScopeModule, "a")
	sb := d.MakeScope("top.a", netlist.ScopeBegin, "b")

	require.Same(t, sa, d.FindScope("top.a"))
	require.Same(t, sb, d.FindScope("top.a.b"))

	s1 := netlist.NewNet(top, "top.s", netlist.NetWire, 1)
	s2 := netlist.NewNet(sa, "top.a.w", netlist.NetWire, 1)
	d.AddSignal(s1)
	d.AddSignal(s2)

	// lookup walks the path outward until a declaration matches
	require.Same(t, s1, d.FindSignal("top.a.b", "s"))
	require.Same(t, s2, d.FindSignal("top.a.b", "w"))
	require.Same(t, s2, d.FindSignal("top.a", "w"))
	require.Nil(t, d.FindSignal("top", "w"))
	require.Nil(t, d.FindSignal("top.a.b", "nosuch"))
}

func TestDesign_nodes(t *testing.T) {
	d := netlist.New()

	g1 := lpm.NewLogic("g1", 3, lpm.AND)
	g2 := lpm.NewLogic("g2", 3, lpm.OR)
	d.AddNode(&g1.Node)
	d.AddNode(&g2.Node)

	count := 0
	d.EachNode(func(n *netlist.Node) bool {
		count++
		return true
	})
	require.Equal(t, 2, count)

	require.Panics(t, func() { d.AddNode(&g1.Node) })

	d.DelNode(&g1.Node)
	require.Nil(t, g1.Design())
	require.Panics(t, func() { d.DelNode(&g1.Node) })
}

func TestDesign_findNodeMarks(t *testing.T) {
	d := netlist.New()
	for i := 0; i < 4; i++ {
		g := lpm.NewLogic(d.LocalSymbol(), 2, lpm.NOT)
		d.AddNode(&g.Node)
	}

	// mark-as-you-go visits every node exactly once
	d.ClearNodeMarks()
	seen := make(map[*netlist.Node]bool)
	for {
		n := d.FindNode(func(*netlist.Node) bool { return true })
		if n == nil {
			break
		}
		require.False(t, seen[n])
		seen[n] = true
		n.SetMark(true)
	}
	require.Len(t, seen, 4)

	d.ClearNodeMarks()
	require.NotNil(t, d.FindNode(func(*netlist.Node) bool { return true }))
}

func TestDesign_nodeIdentity(t *testing.T) {
	d := netlist.New()
	ff := lpm.NewFF("top.ff", 2)
	d.AddNode(&ff.Node)

	// ring scans recover the concrete device through Self
	n := d.FindNode(func(n *netlist.Node) bool { return n.Name() == "top.ff" })
	require.NotNil(t, n)
	got, ok := n.Self().(*lpm.FF)
	require.True(t, ok)
	require.Same(t, ff, got)
}

func TestDesign_parameters(t *testing.T) {
	d := netlist.New()

	v, err := logic.Parse("1010")
	require.NoError(t, err)
	d.SetParameter("top.width", netlist.NewEConst(v))

	p := d.FindParameter("top.a.b", "width")
	require.NotNil(t, p)
	require.Equal(t, 4, p.Width())

	require.Nil(t, d.FindParameter("other", "width"))

	// last write wins
	d.SetParameter("top.width", netlist.NewEConst(logic.Vector{logic.V1}))
	require.Equal(t, 1, d.FindParameter("top", "width").Width())
}

func TestDesign_processes(t *testing.T) {
	d := netlist.New()

	p1 := netlist.NewProcTop(netlist.ProcInitial, netlist.NewBlock(netlist.BlockSequ))
	p2 := netlist.NewProcTop(netlist.ProcAlways, netlist.NewBlock(netlist.BlockSequ))
	d.AddProcess(p1)
	d.AddProcess(p2)

	// AddProcess prepends
	require.Same(t, p2, d.Processes())
	require.Same(t, p1, d.Processes().Next())

	d.DeleteProcess(p1)
	require.Same(t, p2, d.Processes())
	require.Nil(t, d.Processes().Next())

	require.Panics(t, func() { d.DeleteProcess(p1) })
	require.Panics(t, func() { d.DeleteProcess(nil) })
}

func TestDesign_memories(t *testing.T) {
	d := netlist.New()

	m := netlist.NewMemory("top.mem", 8, 0, 255)
	d.AddMemory(m)

	require.Same(t, m, d.FindMemory("top.a", "mem"))
	require.Nil(t, d.FindMemory("top.a", "nosuch"))
}

func TestDesign_functionsAndTasks(t *testing.T) {
	d := netlist.New()

	f := netlist.NewFuncDef("top.crc", nil)
	d.AddFunction("top.crc", f)
	require.Same(t, f, d.FindFunction("top.a.b", "crc"))
	// an empty path probes the fully qualified name directly
	require.Same(t, f, d.FindFunction("", "top.crc"))
	require.Nil(t, d.FindFunction("", "crc"))

	tk := netlist.NewTaskDef("top.load", nil)
	d.AddTask("top.load", tk)
	require.Same(t, tk, d.FindTask("top", "load"))
	require.Nil(t, d.FindTask("top", "nosuch"))
}

func TestDesign_misc(t *testing.T) {
	d := netlist.New()

	s1, s2 := d.LocalSymbol(), d.LocalSymbol()
	require.NotEqual(t, s1, s2)

	d.SetFlag("target", "vvm")
	require.Equal(t, "vvm", d.Flag("target"))
	require.Equal(t, "", d.Flag("nosuch"))

	require.Equal(t, 0, d.Errors)
	d.Errorf("something went wrong in %s", "here")
	require.Equal(t, 1, d.Errors)
}

func TestScope_signals(t *testing.T) {
	d := netlist.New()
	s := d.MakeRootScope("top")

	a := netlist.NewNet(s, "top.a", netlist.NetWire, 1)
	b := netlist.NewNet(s, "top.b", netlist.NetWire, 1)

	var names []string
	s.EachSignal(func(n *netlist.Net) bool {
		names = append(names, n.Name())
		return true
	})
	// declaration order
	require.Equal(t, []string{"top.a", "top.b"}, names)

	a.Destroy()
	names = names[:0]
	s.EachSignal(func(n *netlist.Net) bool {
		names = append(names, n.Name())
		return true
	})
	require.Equal(t, []string{"top.b"}, names)
	_ = b
}
