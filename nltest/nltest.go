// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package nltest provides utility functions for testing netlist
// connectivity.
//
package nltest

import (
	"testing"

	"github.com/db47h/netlist"
)

// Nexus collects the members of the nexus containing l, starting at l,
// in ring order.
//
func Nexus(l *netlist.Link) []*netlist.Link {
	links := []*netlist.Link{l}
	for cur := l.NextLink(); cur != l; cur = cur.NextLink() {
		links = append(links, cur)
	}
	return links
}

// CheckRing verifies the structural invariants of the nexus containing
// l: the forward walk and the backward walk visit the same links, in
// reverse order of each other, and every member points back into the
// ring consistently.
//
func CheckRing(t *testing.T, l *netlist.Link) {
	t.Helper()

	fwd := Nexus(l)
	var bwd []*netlist.Link
	bwd = append(bwd, l)
	for cur := l.PrevLink(); cur != l; cur = cur.PrevLink() {
		bwd = append(bwd, cur)
	}

	if len(fwd) != len(bwd) {
		t.Fatalf("nexus of %s pin %d: forward walk has %d links, backward walk %d",
			l.Obj().Name(), l.Pin(), len(fwd), len(bwd))
	}
	for i, cur := range fwd {
		if cur.NextLink().PrevLink() != cur {
			t.Fatalf("nexus of %s pin %d: broken back pointer at %s pin %d",
				l.Obj().Name(), l.Pin(), cur.Obj().Name(), cur.Pin())
		}
		// bwd visits the same ring in the opposite direction.
		j := (len(fwd) - i) % len(fwd)
		if bwd[j] != cur {
			t.Fatalf("nexus of %s pin %d: forward and backward walks disagree at index %d",
				l.Obj().Name(), l.Pin(), i)
		}
	}
}

// AssertConnected fails the test unless l and r share a nexus.
//
func AssertConnected(t *testing.T, l, r *netlist.Link) {
	t.Helper()
	if !l.IsLinkedTo(r) {
		t.Fatalf("%s pin %d is not connected to %s pin %d",
			l.Obj().Name(), l.Pin(), r.Obj().Name(), r.Pin())
	}
	CheckRing(t, l)
}

// AssertUnconnected fails the test unless l and r live in distinct
// nexa.
//
func AssertUnconnected(t *testing.T, l, r *netlist.Link) {
	t.Helper()
	if l.IsLinkedTo(r) {
		t.Fatalf("%s pin %d is connected to %s pin %d",
			l.Obj().Name(), l.Pin(), r.Obj().Name(), r.Pin())
	}
	CheckRing(t, l)
	CheckRing(t, r)
}
