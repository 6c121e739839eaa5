// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hname_test

import (
	"testing"

	"github.com/db47h/netlist/internal/hname"
)

func TestJoin(t *testing.T) {
	if got := hname.Join("top.a", "s"); got != "top.a.s" {
		t.Errorf("Join = %q", got)
	}
	if got := hname.Join("", "s"); got != "s" {
		t.Errorf("Join with empty path = %q", got)
	}
}

func TestTrimLast(t *testing.T) {
	p, ok := hname.TrimLast("top.a.b")
	if !ok || p != "top.a" {
		t.Errorf("TrimLast = %q, %v", p, ok)
	}
	p, ok = hname.TrimLast("top")
	if ok || p != "" {
		t.Errorf("TrimLast on single component = %q, %v", p, ok)
	}
	_, ok = hname.TrimLast("")
	if ok {
		t.Error("TrimLast on empty path should report false")
	}
}

func TestLast(t *testing.T) {
	if got := hname.Last("top.a.b"); got != "b" {
		t.Errorf("Last = %q", got)
	}
	if got := hname.Last("top"); got != "top" {
		t.Errorf("Last on single component = %q", got)
	}
}
