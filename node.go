// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

// A Node is a structural object representing a device: a gate, an LPM
// primitive, a UDP instance, or any other element that computes pin
// values from pin values. Nodes sit in their design's node ring once
// registered with Design.AddNode.
//
// Concrete devices embed Node and initialize it with NewNode, passing
// themselves as the object identity:
//
//	type FF struct {
//		netlist.Node
//	}
//
//	func NewFF(name string, wid int) *FF {
//		ff := &FF{}
//		ff.Node = netlist.NewNode(ff, name, 8+2*wid)
//		// assign pin directions and names...
//		return ff
//	}
//
type Node struct {
	Obj
	design             *Design
	nodeNext, nodePrev *Node
}

// NewNode returns a Node with npins unconnected pins owned by self.
// The returned value must be stored in the embedding object before the
// node is registered with a Design or wired to anything.
//
func NewNode(self Object, name string, npins int) Node {
	var n Node
	n.init(self, name, npins)
	return n
}

// Design returns the design the node is registered with, or nil.
//
func (n *Node) Design() *Design { return n.design }

// Destroy removes the node from its design, if registered, and
// disconnects all its pins. The node must not be used afterwards.
//
func (n *Node) Destroy() {
	if n.design != nil {
		n.design.DelNode(n)
	}
	n.unlinkPins()
}
