// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command netdump builds a small demonstration design and dumps its
// contents: every signal with its nexus, every node with its pinout.
//
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/logic"
	"github.com/db47h/netlist/lpm"
)

var (
	rootName = pflag.String("root", "demo", "name of the root scope")
	verbose  = pflag.BoolP("verbose", "v", false, "enable debug logging")
)

func main() {
	pflag.Parse()

	logcfg := zap.NewProductionConfig()
	if *verbose {
		logcfg = zap.NewDevelopmentConfig()
	}
	log, err := logcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	des := netlist.New(netlist.WithLogger(log))
	buildDemo(des, *rootName)

	if des.Errors > 0 {
		log.Sugar().Fatalf("%d errors building the demo design", des.Errors)
	}

	dump(des)
}

// buildDemo assembles a two-bit counter slice: a constant driving the
// data input of a flip-flop whose outputs feed a declared signal.
func buildDemo(des *netlist.Design, root string) {
	scope := des.MakeRootScope(root)

	clk := netlist.NewNet(scope, root+".clk", netlist.NetWire, 1)
	des.AddSignal(clk)
	q := netlist.NewNet(scope, root+".q", netlist.NetReg, 2)
	des.AddSignal(q)

	ff := lpm.NewFF(root+".ff", 2)
	des.AddNode(&ff.Node)

	one := lpm.NewConst(des.LocalSymbol(), logic.Vector{logic.V1, logic.V0})
	des.AddNode(&one.Node)

	netlist.Connect(ff.PinClock(), clk.Pin(0))
	for idx := 0; idx < 2; idx++ {
		netlist.Connect(ff.PinData(idx), one.Pin(idx))
		netlist.Connect(ff.PinQ(idx), q.Pin(idx))
	}
}

func dump(des *netlist.Design) {
	fmt.Println("SIGNALS:")
	des.EachSignal(func(n *netlist.Net) bool {
		fmt.Printf("  %s %s [%d:%d]\n", n.Type(), n.Name(), n.Msb(), n.Lsb())
		for idx := 0; idx < n.PinCount(); idx++ {
			pin := n.Pin(idx)
			if !pin.IsLinked() {
				continue
			}
			fmt.Printf("    pin %d:", idx)
			for cur := pin.NextLink(); cur != pin; cur = cur.NextLink() {
				fmt.Printf(" %s.%s[%d]", cur.Obj().Name(), cur.PortName(), cur.Inst())
			}
			fmt.Println()
		}
		return true
	})

	fmt.Println("NODES:")
	des.EachNode(func(n *netlist.Node) bool {
		fmt.Printf("  %s (%d pins)\n", n.Name(), n.PinCount())
		for idx := 0; idx < n.PinCount(); idx++ {
			pin := n.Pin(idx)
			fmt.Printf("    %s[%d] %s drivers=%d\n",
				pin.PortName(), pin.Inst(), pin.Dir(), netlist.CountOutputs(pin))
		}
		return true
	})
}
