// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sorted(rows []string) []string {
	out := append([]string(nil), rows...)
	sort.Strings(out)
	return out
}

func TestExpandRow(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"101", []string{"101"}},
		{"10?", []string{"100", "101", "10x"}},
		{"?r", []string{"0r", "1r", "xr"}},
		{"_1", []string{"F1", "f1"}},
		{"n0", []string{"F0", "N0", "f0"}},
		{"p0", []string{"P0", "R0", "r0"}},
		{"*", []string{"F", "N", "P", "R", "f", "r"}},
		{"??", []string{
			"00", "01", "0x",
			"10", "11", "1x",
			"x0", "x1", "xx",
		}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, sorted(expandRow(tc.in))); diff != "" {
			t.Errorf("expandRow(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

// newDFF builds the classic D flip-flop primitive: output state, a
// clock input and a data input.
func newDFF(t *testing.T) *UDP {
	t.Helper()
	u := NewUDP("dff", 3, true)
	require.NoError(t, u.SetTable("?r0", '0'))
	require.NoError(t, u.SetTable("?r1", '1'))
	require.NoError(t, u.SetTable("?f?", '-'))
	return u
}

func TestUDP_sequential(t *testing.T) {
	u := newDFF(t)

	require.True(t, u.Sequential())
	require.Equal(t, byte('x'), u.Initial())
	u.SetInitial('0')
	require.Equal(t, byte('0'), u.Initial())

	// rising clock latches the data input
	require.Equal(t, byte('1'), u.TableLookup("001", '1', 1))
	require.Equal(t, byte('0'), u.TableLookup("100", '1', 1))
	// falling clock holds the output
	require.Equal(t, byte('0'), u.TableLookup("011", '0', 1))
	require.Equal(t, byte('1'), u.TableLookup("111", '0', 1))
	// unspecified transition yields x
	require.Equal(t, byte('x'), u.TableLookup("011", 'x', 2))
	require.Equal(t, byte('x'), u.TableLookup("0zz", '1', 1))
}

func TestUDP_cleanupTable(t *testing.T) {
	u := newDFF(t)

	before := u.StateCount()
	u.CleanupTable()
	after := u.StateCount()
	require.Equal(t, 18, before)
	require.Equal(t, 14, after)

	// transitions out of x states into known outputs survive pruning
	require.Equal(t, byte('0'), u.TableLookup("x00", '1', 1))
	require.Equal(t, byte('1'), u.TableLookup("x01", '1', 1))
	// transitions into x-output states are gone
	require.Equal(t, byte('x'), u.TableLookup("x11", '0', 1))
}

func TestUDP_conflictPanics(t *testing.T) {
	u := NewUDP("bad", 3, true)
	require.NoError(t, u.SetTable("0r0", '0'))
	require.Panics(t, func() { u.SetTable("0r0", '1') })
}

func TestUDP_sequentialErrors(t *testing.T) {
	u := NewUDP("u", 3, true)

	// bad output value
	require.Error(t, u.SetTable("?r0", 'z'))
	// row must cover every pin
	require.Error(t, u.SetTable("r0", '0'))
	// no edge at all
	require.Error(t, u.SetTable("000", '0'))
	// more than one edge
	require.Error(t, u.SetTable("rr0", '0'))
	require.Error(t, u.SetTable("*p0", '0'))
	// invalid character
	require.Error(t, u.SetTable("?rz", '0'))

	require.Equal(t, 0, u.StateCount())
}

func TestUDP_combinational(t *testing.T) {
	u := NewUDP("and2", 3, false)
	require.False(t, u.Sequential())

	require.NoError(t, u.SetTable("11", '1'))
	require.NoError(t, u.SetTable("00", '0'))
	require.NoError(t, u.SetTable("01", '0'))
	require.NoError(t, u.SetTable("10", '0'))

	require.Equal(t, byte('1'), u.CombLookup("11"))
	require.Equal(t, byte('0'), u.CombLookup("01"))
	require.Equal(t, byte('x'), u.CombLookup("xx"))

	// sequential-only features are rejected
	require.Error(t, u.SetTable("1?", '-'))
	require.Error(t, u.SetTable("111", '1'))
	require.Error(t, u.SetTable("1r", '1'))
	require.Panics(t, func() { u.SetInitial('0') })
}

func TestUDP_pins(t *testing.T) {
	u := NewUDP("u", 4, true)

	require.Equal(t, Output, u.Pin(0).Dir())
	require.Equal(t, "O", u.Pin(0).PortName())
	for idx := 1; idx < 4; idx++ {
		require.Equal(t, Input, u.Pin(idx).Dir())
		require.Equal(t, "I", u.Pin(idx).PortName())
		require.Equal(t, idx-1, u.Pin(idx).Inst())
	}

	require.Panics(t, func() { u.TableLookup("0000", '1', 5) })
	require.Panics(t, func() { u.TableLookup("00", '1', 1) })
	require.Panics(t, func() { u.TableLookup("0000", 'z', 1) })
}
