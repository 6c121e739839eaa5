// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logic implements the four-valued logic used throughout the
// netlist: 0, 1, x (unknown) and z (high impedance). Values of this
// kind appear as net initial values, constant drivers and UDP table
// entries.
//
package logic

import (
	"strings"

	"github.com/pkg/errors"
)

// V is a single four-valued logic state.
//
type V uint8

// The four logic states.
//
const (
	V0 V = iota // logic low
	V1          // logic high
	Vx          // unknown
	Vz          // high impedance
)

// ParseV converts one of the characters '0', '1', 'x' or 'z' to its
// logic value. The 'x' and 'z' characters are accepted in either case.
//
func ParseV(c byte) (V, error) {
	switch c {
	case '0':
		return V0, nil
	case '1':
		return V1, nil
	case 'x', 'X':
		return Vx, nil
	case 'z', 'Z':
		return Vz, nil
	}
	return Vx, errors.Errorf("invalid logic value %q", string(c))
}

// Char returns the character representation of v ('0', '1', 'x' or 'z').
//
func (v V) Char() byte {
	switch v {
	case V0:
		return '0'
	case V1:
		return '1'
	case Vz:
		return 'z'
	}
	return 'x'
}

func (v V) String() string {
	return string(v.Char())
}

// IsKnown returns true if v is a driven 0 or 1.
//
func (v V) IsKnown() bool {
	return v == V0 || v == V1
}

// Not returns the logical complement of v. Complementing x or z yields x.
//
func (v V) Not() V {
	switch v {
	case V0:
		return V1
	case V1:
		return V0
	}
	return Vx
}

// Resolve combines two values driving the same wire. Agreement wins, a
// driven value overrides z, and any remaining conflict is x.
//
func Resolve(a, b V) V {
	switch {
	case a == b:
		return a
	case a == Vz:
		return b
	case b == Vz:
		return a
	}
	return Vx
}

// A Vector is a fixed-width group of logic values, index 0 being the
// least significant position.
//
type Vector []V

// NewVector returns a vector of n values, all initialized to z.
//
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Vz
	}
	return v
}

// Parse converts a string of logic characters to a Vector. The last
// character of the string is the least significant value, matching the
// usual written order of bit vectors.
//
func Parse(s string) (Vector, error) {
	v := make(Vector, len(s))
	for i := 0; i < len(s); i++ {
		b, err := ParseV(s[i])
		if err != nil {
			return nil, errors.Wrap(err, "parse vector "+s)
		}
		v[len(s)-1-i] = b
	}
	return v, nil
}

func (v Vector) String() string {
	var b strings.Builder
	for i := len(v) - 1; i >= 0; i-- {
		b.WriteByte(v[i].Char())
	}
	return b.String()
}

// Len returns the width of the vector.
//
func (v Vector) Len() int { return len(v) }
