// Package tui renders the simulated device panel in a terminal.
//
// The simulator exists so menus can be developed and demonstrated without an
// ST7735 panel on the desk. A Bubble Tea model owns the menu controller and
// its surface.Buffer; every frame the buffer's character cells are rendered
// with lipgloss styles that map the RGB565 palette onto terminal colors.
//
// Keyboard input maps onto the device's four-event vocabulary (arrow keys,
// enter, escape), and a display toggle simulates the application taking the
// panel back from the menu. Events from the remote input bridge are delivered
// as RemoteEventMsg values through Program.Send, which serializes them with
// keyboard input in the Bubble Tea update loop; the menu engine never sees
// concurrent events.
package tui
