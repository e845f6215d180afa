// Package menu implements the settings-menu state machine.
//
// The Controller consumes the four-event input vocabulary of a small device
// panel (Up, Down, Accept, Cancel) and drives cursor navigation and value
// editing over a registry of settings, drawing through a surface.Surface.
//
// # State Machine
//
// The controller is always in one of two states:
//
//   - Browsing: Up and Down move the selection cursor between settings,
//     skipping separator rows and clamping at the ends. Accept starts editing
//     the selected setting. Cancel does nothing.
//   - Editing: Up and Down scroll the pending value of the selected setting,
//     clamping at the first and last option. Accept commits the pending
//     value, Cancel reverts it; both return to Browsing.
//
// Settings marked for live update push every pending-value change to the
// application immediately via their change callback; the callback's verdict
// is remembered so Accept can keep the value and Cancel can notify the
// application of the rollback. Settings without live update invoke the
// callback exactly once, at commit time, and only when the value actually
// changed.
//
// # Rendering
//
// Redraws are minimal: moving the cursor repaints two marker cells, scrolling
// a value repaints one value cell, and only a selection that leaves the
// visible window triggers a full-window redraw. The value cell is white while
// browsing, blue while editing with the pending value equal to the current
// one, and red while the pending value differs.
//
// Every event entry point returns a bool that AND-accumulates the results of
// the display writes it performed. A false return means the screen may be
// stale; menu state is always consistent regardless.
//
// # Single Execution Context
//
// The controller is not safe for concurrent use. All events, including ones
// originating from remote input bridges, must be serialized by the caller;
// the terminal simulator does this through its Bubble Tea update loop.
package menu
