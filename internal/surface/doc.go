// Package surface defines the character-grid rendering boundary for gridmenu.
//
// The menu engine never talks to display hardware directly. It draws through
// the Surface interface, which models the small fixed grids found on
// ST7735-class TFT panels: text is written at a (column, row) cell position
// with a foreground and background color, optionally clearing a run of cells
// first so stale characters from a previous, longer value disappear.
//
// # Colors
//
// Colors use the RGB565 encoding native to the ST7735 controller. Backends
// for richer outputs (the terminal simulator, for example) map the palette to
// whatever their medium supports.
//
// # Buffer
//
// Buffer is an in-memory Surface implementation. It backs the terminal
// simulator and serves as the test double for the engine: after driving the
// menu, tests read rows back as plain strings and assert on the result.
//
// # Failure Model
//
// Surface operations report success as a bool rather than an error. A false
// return means the write may not be visible; it never affects menu state.
// Callers AND-accumulate the results and keep going, matching the degraded
// behavior expected from a flaky SPI display.
package surface
