// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// A Memory is a declared array of words. It is not itself a structural
// object: access to its contents goes through behavioral statements or
// through RamDq port nodes synthesized from them.
//
type Memory struct {
	name       string
	width      int
	idxh, idxl int
	attributes map[string]string
	ramList    *RamDq
}

// NewMemory returns a memory of words of the given width, indexed from
// s to e in either direction.
//
func NewMemory(name string, width int, s, e int) *Memory {
	return &Memory{name: name, width: width, idxh: s, idxl: e}
}

// Name returns the fully qualified name of the memory.
//
func (m *Memory) Name() string { return m.name }

// Width returns the word width in bits.
//
func (m *Memory) Width() int { return m.width }

// Count returns the number of words.
//
func (m *Memory) Count() int {
	if m.idxh < m.idxl {
		return m.idxl - m.idxh + 1
	}
	return m.idxh - m.idxl + 1
}

// IndexToAddress maps a declared word index to a zero-based address.
//
func (m *Memory) IndexToAddress(idx int) int {
	if m.idxh < m.idxl {
		return idx - m.idxh
	}
	return idx - m.idxl
}

// SetAttributes installs the initial attribute map. It may be called
// only once.
//
func (m *Memory) SetAttributes(attr map[string]string) {
	if len(m.attributes) != 0 {
		panic("netlist: attributes of memory " + m.name + " already set")
	}
	m.attributes = make(map[string]string, len(attr))
	for k, v := range attr {
		m.attributes[k] = v
	}
}

// Attribute returns the value bound to key, or "" if unset.
//
func (m *Memory) Attribute(key string) string { return m.attributes[key] }

// SetAttribute binds value to key, overwriting any previous binding.
//
func (m *Memory) SetAttribute(key, value string) {
	if m.attributes == nil {
		m.attributes = make(map[string]string)
	}
	m.attributes[key] = value
}

// A RamDq is a synchronous RAM port synthesized over a Memory. All
// ports of the same memory chain together so that synthesis can merge
// compatible ports. The pinout is:
//
//	0          -- InClock
//	1          -- OutClock
//	2          -- WE
//	3          -- Address[0]
//	3+awidth   -- Data[0]
//	3+awidth+w -- Q[0]
//
type RamDq struct {
	Node
	mem    *Memory
	awidth int
	next   *RamDq
}

// NewRamDq returns a RAM port of the given address width over mem and
// chains it with the memory's other ports.
//
func NewRamDq(name string, mem *Memory, awid int) *RamDq {
	r := &RamDq{mem: mem, awidth: awid}
	r.Node = NewNode(r, name, 3+2*mem.Width()+awid)

	r.Pin(0).SetDir(Input)
	r.Pin(0).SetName("InClock", 0)
	r.Pin(1).SetDir(Input)
	r.Pin(1).SetName("OutClock", 0)
	r.Pin(2).SetDir(Input)
	r.Pin(2).SetName("WE", 0)

	for idx := 0; idx < awid; idx++ {
		r.Pin(3 + idx).SetDir(Input)
		r.Pin(3 + idx).SetName("Address", idx)
	}
	for idx := 0; idx < r.Width(); idx++ {
		r.Pin(3 + awid + idx).SetDir(Input)
		r.Pin(3 + awid + idx).SetName("Data", idx)
	}
	for idx := 0; idx < r.Width(); idx++ {
		r.Pin(3 + awid + r.Width() + idx).SetDir(Output)
		r.Pin(3 + awid + r.Width() + idx).SetName("Q", idx)
	}

	r.next = mem.ramList
	mem.ramList = r
	return r
}

// Width returns the word width of the underlying memory.
//
func (r *RamDq) Width() int { return r.mem.Width() }

// AWidth returns the address width of the port.
//
func (r *RamDq) AWidth() int { return r.awidth }

// Size returns the word count of the underlying memory.
//
func (r *RamDq) Size() int { return r.mem.Count() }

// Mem returns the memory the port accesses.
//
func (r *RamDq) Mem() *Memory { return r.mem }

// CountPartners returns the number of ports chained on the same
// memory, including this one.
//
func (r *RamDq) CountPartners() int {
	count := 0
	for cur := r.mem.ramList; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// AbsorbPartners folds into this port every partner port whose
// connections are compatible: same address nexus bit for bit, and no
// contradicting clock, write-enable, data or Q connections. Absorbed
// partners are connected through and destroyed.
//
func (r *RamDq) AbsorbPartners() {
	var tmp *RamDq
	for cur := r.mem.ramList; cur != nil || tmp != nil; {
		if cur == nil {
			cur = tmp
			tmp = nil
			continue
		}
		if cur == r {
			cur = cur.next
			continue
		}

		ok := true
		for idx := 0; idx < r.AWidth(); idx++ {
			ok = ok && r.PinAddress(idx).IsLinkedTo(cur.PinAddress(idx))
		}
		if !ok {
			cur = cur.next
			continue
		}

		if r.PinInClock().IsLinked() && cur.PinInClock().IsLinked() &&
			!r.PinInClock().IsLinkedTo(cur.PinInClock()) {
			cur = cur.next
			continue
		}
		if r.PinOutClock().IsLinked() && cur.PinOutClock().IsLinked() &&
			!r.PinOutClock().IsLinkedTo(cur.PinOutClock()) {
			cur = cur.next
			continue
		}
		if r.PinWE().IsLinked() && cur.PinWE().IsLinked() &&
			!r.PinWE().IsLinkedTo(cur.PinWE()) {
			cur = cur.next
			continue
		}

		for idx := 0; idx < r.Width(); idx++ {
			if !r.PinData(idx).IsLinked() || !cur.PinData(idx).IsLinked() {
				continue
			}
			ok = ok && r.PinData(idx).IsLinkedTo(cur.PinData(idx))
		}
		if !ok {
			cur = cur.next
			continue
		}

		for idx := 0; idx < r.Width(); idx++ {
			if !r.PinQ(idx).IsLinked() || !cur.PinQ(idx).IsLinked() {
				continue
			}
			ok = ok && r.PinQ(idx).IsLinkedTo(cur.PinQ(idx))
		}
		if !ok {
			cur = cur.next
			continue
		}

		// No reason left to reject cur: link up all pins and
		// remove it.
		Connect(r.PinInClock(), cur.PinInClock())
		Connect(r.PinOutClock(), cur.PinOutClock())
		Connect(r.PinWE(), cur.PinWE())
		for idx := 0; idx < r.AWidth(); idx++ {
			Connect(r.PinAddress(idx), cur.PinAddress(idx))
		}
		for idx := 0; idx < r.Width(); idx++ {
			Connect(r.PinData(idx), cur.PinData(idx))
			Connect(r.PinQ(idx), cur.PinQ(idx))
		}

		tmp = cur.next
		cur.Destroy()
		cur = nil
	}
}

// Destroy removes the port from its memory's chain, deregisters it
// from its design and disconnects its pins.
//
func (r *RamDq) Destroy() {
	if r.mem.ramList == r {
		r.mem.ramList = r.next
	} else {
		cur := r.mem.ramList
		for cur.next != r {
			if cur.next == nil {
				panic("netlist: RAM port not chained on its memory")
			}
			cur = cur.next
		}
		cur.next = r.next
	}
	r.Node.Destroy()
}

// PinInClock returns the write clock pin.
//
func (r *RamDq) PinInClock() *Link { return r.Pin(0) }

// PinOutClock returns the read clock pin.
//
func (r *RamDq) PinOutClock() *Link { return r.Pin(1) }

// PinWE returns the write enable pin.
//
func (r *RamDq) PinWE() *Link { return r.Pin(2) }

// PinAddress returns address pin idx.
//
func (r *RamDq) PinAddress(idx int) *Link {
	if idx >= r.awidth {
		panic("netlist: RAM address pin out of range")
	}
	return r.Pin(3 + idx)
}

// PinData returns data input pin idx.
//
func (r *RamDq) PinData(idx int) *Link {
	if idx >= r.Width() {
		panic("netlist: RAM data pin out of range")
	}
	return r.Pin(3 + r.awidth + idx)
}

// PinQ returns data output pin idx.
//
func (r *RamDq) PinQ(idx int) *Link {
	if idx >= r.Width() {
		panic("netlist: RAM Q pin out of range")
	}
	return r.Pin(3 + r.awidth + r.Width() + idx)
}
