// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// An Object is any structural element of a design: a device node, a
// declared signal, or one of the library devices built on Node. The
// set of implementations is closed within this module and traversal
// code tells them apart with type switches.
//
type Object interface {
	// Name returns the hierarchical, dot-qualified name of the object.
	Name() string
	// PinCount returns the number of pins. It is fixed at construction.
	PinCount() int
	// Pin returns pin idx. It panics if idx is out of range.
	Pin(idx int) *Link
	// Attribute returns the value bound to key, or "" if unset.
	Attribute(key string) string
}

// Obj is the common base of all structural objects. It owns a fixed
// array of pins, a write-once attribute map, three delay slots and a
// mark flag for graph-traversal bookkeeping.
//
// Concrete objects embed Obj (usually through Node) and initialize it
// with their own identity so that pins point back at the outermost
// type.
//
type Obj struct {
	self       Object
	name       string
	pins       []Link
	attributes map[string]string
	delay1     uint64
	delay2     uint64
	delay3     uint64
	mark       bool
}

func (o *Obj) init(self Object, name string, npins int) {
	o.self = self
	o.name = name
	o.pins = make([]Link, npins)
	for idx := range o.pins {
		l := &o.pins[idx]
		l.obj = self
		l.pin = idx
		l.next = l
		l.prev = l
	}
}

// Name returns the hierarchical name of the object.
//
func (o *Obj) Name() string { return o.name }

// PinCount returns the number of pins.
//
func (o *Obj) PinCount() int { return len(o.pins) }

// Pin returns pin idx.
//
func (o *Obj) Pin(idx int) *Link {
	if idx < 0 || idx >= len(o.pins) {
		panic("netlist: pin index out of range for " + o.name)
	}
	return &o.pins[idx]
}

// Self returns the outermost object embedding this Obj, as recorded at
// construction. Ring scans use it to recover the concrete type.
//
func (o *Obj) Self() Object { return o.self }

// SetAttributes installs the initial attribute map. It may be called
// only once, and only before any attribute has been set.
//
func (o *Obj) SetAttributes(attr map[string]string) {
	if len(o.attributes) != 0 {
		panic("netlist: attributes of " + o.name + " already set")
	}
	o.attributes = make(map[string]string, len(attr))
	for k, v := range attr {
		o.attributes[k] = v
	}
}

// Attribute returns the value bound to key, or "" if the key is unset.
//
func (o *Obj) Attribute(key string) string {
	return o.attributes[key]
}

// SetAttribute binds value to key, overwriting any previous binding.
//
func (o *Obj) SetAttribute(key, value string) {
	if o.attributes == nil {
		o.attributes = make(map[string]string)
	}
	o.attributes[key] = value
}

// HasCompatAttributes returns true if every attribute of that is
// present in o with the same value.
//
func (o *Obj) HasCompatAttributes(that *Obj) bool {
	for k, v := range that.attributes {
		cur, ok := o.attributes[k]
		if !ok || cur != v {
			return false
		}
	}
	return true
}

// Delays returns the three delay parameters of the object.
//
func (o *Obj) Delays() (rise, fall, decay uint64) {
	return o.delay1, o.delay2, o.delay3
}

// SetDelays sets the three delay parameters of the object.
//
func (o *Obj) SetDelays(rise, fall, decay uint64) {
	o.delay1, o.delay2, o.delay3 = rise, fall, decay
}

// TestMark returns the traversal mark.
//
func (o *Obj) TestMark() bool { return o.mark }

// SetMark sets the traversal mark.
//
func (o *Obj) SetMark(flag bool) { o.mark = flag }

// unlinkPins disconnects every pin from its nexus. It is the common
// tail of all object destructors.
//
func (o *Obj) unlinkPins() {
	for idx := range o.pins {
		o.pins[idx].Unlink()
	}
}
