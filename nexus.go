// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// Connect merges the nexus containing l with the nexus containing r, in
// place and without auxiliary storage. After the call every pin that was
// reachable from either l or r is reachable from both.
//
// Connecting two pins that are already members of the same nexus is a
// no-op. Connecting a pin to itself is a caller bug and panics.
//
func Connect(l, r *Link) {
	if l == r {
		panic("netlist: attempt to connect a pin to itself")
	}
	l.check()
	r.check()

	cur := l
	for {
		tmp := cur.next

		// If r turns up in l's ring, the two nexuses are already
		// one and the merge is complete.
		if tmp == r {
			break
		}

		// Pull cur out of the left ring...
		cur.prev.next = cur.next
		cur.next.prev = cur.prev

		// ... and splice it in right after r.
		cur.next = r.next
		cur.prev = r
		cur.next.prev = cur
		cur.prev.next = cur

		cur = tmp
		if cur == l {
			break
		}
	}

	l.check()
	r.check()
}

// Connected returns true if every pin of l is linked to r.
//
func Connected(l, r Object) bool {
	for idx := 0; idx < l.PinCount(); idx++ {
		if !l.Pin(idx).IsLinkedObj(r) {
			return false
		}
	}
	return true
}

// CountInputs returns the number of input pins in the nexus of pin,
// including pin itself if it is an input.
//
func CountInputs(pin *Link) int {
	count := 0
	if pin.Dir() == Input {
		count = 1
	}
	for cur := pin.NextLink(); cur != pin; cur = cur.NextLink() {
		if cur.Dir() == Input {
			count++
		}
	}
	return count
}

// CountOutputs returns the number of output pins in the nexus of pin,
// including pin itself if it is an output. More than one output on a
// nexus usually means multiple drivers.
//
func CountOutputs(pin *Link) int {
	count := 0
	if pin.Dir() == Output {
		count = 1
	}
	for cur := pin.NextLink(); cur != pin; cur = cur.NextLink() {
		if cur.Dir() == Output {
			count++
		}
	}
	return count
}

// CountSignals returns the number of pins in the nexus of pin whose
// owner is a declared signal (a *Net), including pin itself.
//
func CountSignals(pin *Link) int {
	count := 0
	if _, ok := pin.Obj().(*Net); ok {
		count = 1
	}
	for cur := pin.NextLink(); cur != pin; cur = cur.NextLink() {
		if _, ok := cur.Obj().(*Net); ok {
			count++
		}
	}
	return count
}

// FindLinkSignal scans the nexus attached to pin idx of obj for a
// declared signal and returns it along with the bit index the nexus
// lands on. It returns nil if the nexus has no declared signal, which
// happens with anonymous wire groups created during synthesis.
//
func FindLinkSignal(obj Object, idx int) (*Net, int) {
	pin := obj.Pin(idx)
	for cur := pin.NextLink(); cur != pin; cur = cur.NextLink() {
		if sig, ok := cur.Obj().(*Net); ok {
			return sig, cur.Pin()
		}
	}
	return nil, 0
}

// FindNextOutput scans forward from lnk for the next pin in the nexus
// with the Output direction, or nil if the nexus has no driver other
// than possibly lnk itself.
//
func FindNextOutput(lnk *Link) *Link {
	for cur := lnk.NextLink(); cur != lnk; cur = cur.NextLink() {
		if cur.Dir() == Output {
			return cur
		}
	}
	return nil
}
