/*
Package netlist implements the intermediate representation that sits
between elaboration and code generation in a hardware compiler: a
pin-level connectivity graph of declared signals, structural devices
and behavioral processes.

Connectivity is tracked per pin. Every pin is a member of exactly one
nexus, the circular ring of all pins electrically tied together, and
Connect merges two nexuses in place. A Design owns the whole graph and
resolves hierarchical, dot-qualified names to the signals, memories,
parameters, tasks and functions declared in its scopes.

The lpm subpackage provides the structural device library, and the udp
machinery in this package compiles user-defined primitive truth tables
into transition state machines.

*/
package netlist
