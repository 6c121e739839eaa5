// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// Dir is the electrical direction of a pin relative to its owning
// object.
//
type Dir int

// Pin directions.
//
const (
	Passive Dir = iota // neither drives nor reads the nexus
	Input
	Output
	Inout
)

func (d Dir) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case Inout:
		return "inout"
	}
	return "passive"
}

// A Link is one pin of a structural object. Every Link is a member of
// exactly one nexus: the circular doubly-linked ring of all pins that
// are electrically connected together. A freshly initialized Link is a
// ring of one, which denotes an unconnected pin.
//
// Links are created by their owning object and live in its fixed pin
// array; they are never allocated individually.
//
type Link struct {
	obj  Object
	pin  int
	dir  Dir
	name string // port name, shared by all pins of a multi-bit port
	inst int    // instance index within the named port

	next, prev *Link
}

// check panics if the ring invariant does not hold at l. A broken ring
// corrupts every later traversal, so it is never tolerated.
//
func (l *Link) check() {
	if l.next.prev != l || l.prev.next != l {
		panic("netlist: corrupted nexus ring at pin " + l.name + " of " + l.obj.Name())
	}
}

// Obj returns the object this pin belongs to.
//
func (l *Link) Obj() Object { return l.obj }

// Pin returns the index of this pin within its owning object.
//
func (l *Link) Pin() int { return l.pin }

// Dir returns the direction of the pin.
//
func (l *Link) Dir() Dir { return l.dir }

// SetDir sets the direction of the pin.
//
func (l *Link) SetDir(d Dir) { l.dir = d }

// SetName assigns the port name and per-name instance index of the pin.
// Multi-bit ports share a name and are told apart by the index.
//
func (l *Link) SetName(name string, inst int) {
	l.name = name
	l.inst = inst
}

// PortName returns the port name of the pin.
//
func (l *Link) PortName() string { return l.name }

// Inst returns the instance index of the pin within its named port.
//
func (l *Link) Inst() int { return l.inst }

// NextLink returns the next member of the nexus ring.
//
func (l *Link) NextLink() *Link {
	l.check()
	return l.next
}

// PrevLink returns the previous member of the nexus ring.
//
func (l *Link) PrevLink() *Link {
	l.check()
	return l.prev
}

// Unlink removes the pin from its nexus, leaving it as a ring of one.
//
func (l *Link) Unlink() {
	l.next.prev = l.prev
	l.prev.next = l.next
	l.next = l
	l.prev = l
}

// IsLinked returns true if the pin is connected to anything at all.
//
func (l *Link) IsLinked() bool { return l.next != l }

// IsLinkedTo returns true if that is a member of the same nexus as l.
//
func (l *Link) IsLinkedTo(that *Link) bool {
	for idx := l.next; idx != l; idx = idx.next {
		if idx == that {
			return true
		}
	}
	return false
}

// IsLinkedObj returns true if any pin of that is a member of the same
// nexus as l.
//
func (l *Link) IsLinkedObj(that Object) bool {
	for idx := l.next; idx != l; idx = idx.next {
		if idx.obj == that {
			return true
		}
	}
	return false
}
