// Package registry owns the ordered collection of menu settings.
//
// A Registry is an append-only list with a fixed capacity chosen at
// construction, mirroring embedded deployments where the settings table is
// preallocated once and never grows. Each entry is either a real setting
// (a name plus an enumerated list of string values) or a separator, a blank
// row used to group related settings visually.
//
// Real settings track two value indices: the current index, which is the
// authoritative externally-visible value, and the pending index, which is the
// value being tried while the user edits. Outside an edit the two are always
// equal. All editing semantics live in the menu package; this package only
// stores state.
//
// # Change Callbacks
//
// Every real setting carries a ChangeFunc. The menu engine invokes it when a
// value change must be pushed to the owning application, which typically
// reconfigures hardware in response. The callback's bool result is the sole
// acceptance signal: false means the application refused the value and the
// engine rolls the edit back.
package registry
