// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A UDP is a user-defined primitive: a device whose behavior is given
// by an explicit truth table rather than a built-in operator. Pin 0 is
// the single output, all other pins are inputs.
//
// Combinational primitives map an input vector directly to an output
// value. Sequential primitives compile their table rows into a
// finite-state transition machine: states are keyed by the full
// current-state string (output state first, then one character per
// input, alphabet 0/1/x) and record, per pin, the successor state for
// each concrete new value of that pin.
//
type UDP struct {
	Node
	sequential bool
	init       byte
	fsm        map[string]*udpState
	cm         map[string]byte
}

// udpState is one state of a sequential primitive. Its key string is
// redundant with out at position 0.
type udpState struct {
	out  byte
	pins []udpEdges
}

// udpEdges holds the successor states of one pin, keyed by the value
// the pin transitions to.
type udpEdges struct {
	zer, one, xxx *udpState
}

// NewUDP returns a primitive with the given total pin count (output
// plus inputs).
//
func NewUDP(name string, pins int, sequ bool) *UDP {
	u := &UDP{sequential: sequ, init: 'x'}
	u.Node = NewNode(u, name, pins)
	u.Pin(0).SetDir(Output)
	u.Pin(0).SetName("O", 0)
	for idx := 1; idx < pins; idx++ {
		u.Pin(idx).SetDir(Input)
		u.Pin(idx).SetName("I", idx-1)
	}
	if sequ {
		u.fsm = make(map[string]*udpState)
	} else {
		u.cm = make(map[string]byte)
	}
	return u
}

// Sequential returns true for sequential (stateful) primitives.
//
func (u *UDP) Sequential() bool { return u.sequential }

// SetInitial records the initial output value of a sequential
// primitive.
//
func (u *UDP) SetInitial(val byte) {
	if !u.sequential {
		panic("netlist: initial value on combinational primitive " + u.Name())
	}
	if val != '0' && val != '1' && val != 'x' {
		panic("netlist: invalid initial value " + string(val) + " for " + u.Name())
	}
	u.init = val
}

// Initial returns the initial output value of a sequential primitive.
//
func (u *UDP) Initial() byte { return u.init }

const (
	udpLevels    = "01x"
	udpEdgeChars = "rRfFPN"
)

// SetTable adds one row of the primitive's truth table. For sequential
// primitives the input covers every pin (the current output state
// first) and must contain exactly one edge or edge-wildcard character;
// output may be '0', '1' or '-' for "unchanged". For combinational
// primitives the input covers the input pins only, over 0/1/x, and
// output must be '0' or '1'.
//
// Rows with conflicting transitions are a definition bug and panic.
// Malformed rows are reported as errors.
//
func (u *UDP) SetTable(input string, output byte) error {
	if u.sequential {
		if output != '0' && output != '1' && output != '-' {
			return errors.Errorf("udp %s: invalid output %q in sequential row %q",
				u.Name(), string(output), input)
		}
		if len(input) != u.PinCount() {
			return errors.Errorf("udp %s: row %q must cover all %d pins",
				u.Name(), input, u.PinCount())
		}
		edges := 0
		for i := 0; i < len(input); i++ {
			c := input[i]
			switch {
			case strings.IndexByte(udpLevels, c) >= 0 || c == '?':
				// level or level wildcard
			case strings.IndexByte(udpEdgeChars, c) >= 0 ||
				strings.IndexByte("np_*", c) >= 0:
				edges++
			default:
				return errors.Errorf("udp %s: invalid character %q in row %q",
					u.Name(), string(c), input)
			}
		}
		if edges != 1 {
			return errors.Errorf("udp %s: sequential row %q must have exactly one edge",
				u.Name(), input)
		}
		for _, row := range expandRow(input) {
			u.setSequ(row, output)
		}
		return nil
	}

	if output != '0' && output != '1' {
		return errors.Errorf("udp %s: invalid output %q in combinational row %q",
			u.Name(), string(output), input)
	}
	if len(input) != u.PinCount()-1 {
		return errors.Errorf("udp %s: row %q must cover all %d inputs",
			u.Name(), input, u.PinCount()-1)
	}
	if i := strings.IndexFunc(input, func(r rune) bool {
		return strings.IndexRune(udpLevels, r) < 0
	}); i >= 0 {
		return errors.Errorf("udp %s: invalid character %q in combinational row %q",
			u.Name(), string(input[i]), input)
	}
	u.cm[input] = output
	return nil
}

// expandRow expands the first wildcard of a table row into its
// constituent concrete symbols, recursing on each substitution, and
// returns the resulting set of concrete rows. A row with no wildcard
// is returned as is.
//
func expandRow(input string) []string {
	for idx := 0; idx < len(input); idx++ {
		var subs string
		switch input[idx] {
		case '?': // any level
			subs = "01x"
		case 'n': // any falling-class edge
			subs = "fFN"
		case 'p': // any rising-class edge
			subs = "rRP"
		case '_': // falling to a known 0
			subs = "fF"
		case '*': // any edge
			subs = "rRfFPN"
		default:
			continue
		}
		var rows []string
		for i := 0; i < len(subs); i++ {
			sub := input[:idx] + string(subs[i]) + input[idx+1:]
			rows = append(rows, expandRow(sub)...)
		}
		return rows
	}
	return []string{input}
}

// findState returns the state keyed by str, creating it on demand with
// its output committed to the state's first character.
//
func (u *UDP) findState(str string) *udpState {
	st := u.fsm[str]
	if st == nil {
		st = &udpState{out: str[0], pins: make([]udpEdges, u.PinCount())}
		u.fsm[str] = st
	}
	return st
}

// setSequ compiles one concrete row (exactly one edge character, all
// other positions levels) into a transition between two states.
//
func (u *UDP) setSequ(input string, output byte) {
	if output == '-' {
		output = input[0]
	}

	edge := strings.IndexFunc(input, func(r rune) bool {
		return strings.IndexRune(udpLevels, r) < 0
	})
	if edge < 0 || strings.LastIndexFunc(input, func(r rune) bool {
		return strings.IndexRune(udpLevels, r) < 0
	}) != edge {
		panic("netlist: udp row " + input + " does not have exactly one edge")
	}

	frm := []byte(input)
	to := []byte(input)
	to[0] = output

	switch input[edge] {
	case 'r':
		frm[edge], to[edge] = '0', '1'
	case 'R':
		frm[edge], to[edge] = 'x', '1'
	case 'f':
		frm[edge], to[edge] = '1', '0'
	case 'F':
		frm[edge], to[edge] = 'x', '0'
	case 'P':
		frm[edge], to[edge] = '0', 'x'
	case 'N':
		frm[edge], to[edge] = '1', 'x'
	default:
		panic("netlist: invalid edge character in udp row " + input)
	}

	sfrm := u.findState(string(frm))
	sto := u.findState(string(to))

	// The same transition may legitimately come from several source
	// rows; a different target for the same (state, pin, value) is a
	// conflict in the primitive's definition.
	slot := &sfrm.pins[edge]
	var cur **udpState
	switch to[edge] {
	case '0':
		cur = &slot.zer
	case '1':
		cur = &slot.one
	case 'x':
		cur = &slot.xxx
	}
	if *cur != sto {
		if *cur != nil {
			panic("netlist: udp " + u.Name() + ": conflicting transitions from state " +
				string(frm) + " on pin " + strconv.Itoa(edge))
		}
		*cur = sto
	}
}

// CleanupTable prunes the compiled state machine. Transitions into
// states whose output is x convey nothing and are cleared; x-output
// states left without outgoing transitions are unreachable garbage and
// removed.
//
func (u *UDP) CleanupTable() {
	for str, st := range u.fsm {
		if str[0] != st.out {
			panic("netlist: udp state key " + str + " disagrees with its output")
		}
		for pin := 0; pin < u.PinCount(); pin++ {
			e := &st.pins[pin]
			if e.zer != nil && e.zer.out == 'x' {
				e.zer = nil
			}
			if e.one != nil && e.one.out == 'x' {
				e.one = nil
			}
			if e.xxx != nil && e.xxx.out == 'x' {
				e.xxx = nil
			}
		}
	}

	for str, st := range u.fsm {
		if st.out != 'x' {
			continue
		}
		live := false
		for pin := 0; pin < u.PinCount() && !live; pin++ {
			e := &st.pins[pin]
			live = e.zer != nil || e.one != nil || e.xxx != nil
		}
		if !live {
			delete(u.fsm, str)
		}
	}
}

// TableLookup returns the output the primitive commits to when, in the
// given current state, the given pin transitions to the value to. It
// returns 'x' when no matching state or transition is recorded, which
// is the normal "unknown" result rather than an error.
//
func (u *UDP) TableLookup(from string, to byte, pin int) byte {
	if pin >= u.PinCount() {
		panic("netlist: udp lookup pin out of range for " + u.Name())
	}
	if len(from) != u.PinCount() {
		panic("netlist: udp lookup state width mismatch for " + u.Name())
	}
	st := u.fsm[from]
	if st == nil {
		return 'x'
	}

	var next *udpState
	switch to {
	case '0':
		next = st.pins[pin].zer
	case '1':
		next = st.pins[pin].one
	case 'x':
		next = st.pins[pin].xxx
	default:
		panic("netlist: invalid udp lookup value " + string(to))
	}
	if next == nil {
		return 'x'
	}
	return next.out
}

// CombLookup returns the output of a combinational primitive for the
// given input vector, or 'x' if the table has no matching row.
//
func (u *UDP) CombLookup(input string) byte {
	if out, ok := u.cm[input]; ok {
		return out
	}
	return 'x'
}

// StateCount returns the number of states in the compiled machine.
//
func (u *UDP) StateCount() int { return len(u.fsm) }
