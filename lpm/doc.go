// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lpm provides the library of structural devices that
// elaboration and synthesis instantiate: gates, flip-flops, arithmetic
// units, shifters, comparators, multiplexers and constant drivers.
//
// Every device embeds netlist.Node and exposes its pins both by index
// and through named accessors matching the device's pinout.
//
package lpm
