// Package remote accepts menu input events over the network.
//
// Hardware button boards (or anything else that can open a WebSocket) drive
// a running simulator by sending small JSON messages:
//
//	{"event": "up"}
//	{"event": "down"}
//	{"event": "accept"}
//	{"event": "cancel"}
//
// The bridge forwards each decoded event to a sink function supplied by the
// caller. Events arrive on the connection's goroutine; the simulator's sink
// posts them into its Bubble Tea loop so the menu engine still sees a single
// execution context.
//
// # Discovery
//
// A started bridge advertises itself over mDNS/DNS-SD as a "_gridmenu._tcp"
// service, so button boards on the local network find the simulator without
// any configuration.
package remote
