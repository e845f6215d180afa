// Package menufile loads menu definitions from YAML files.
//
// A menu file describes the settings list the simulator builds at startup:
// each entry is either a named setting with its allowed values, initial value
// index and live-update flag, or a separator row. Example:
//
//	version: 1
//	settings:
//	  - name: SAMPLERATE
//	    options: ["48000", "96000", "192000"]
//	    current: 1
//	  - separator: true
//	  - name: IF
//	    options: ["0", "4500", "5000"]
//	    current: 1
//	    live_update: true
//
// Validation mirrors the registry invariants: real settings need a name, a
// non-empty options list and a current index inside it; separators carry
// nothing else. Value semantics (what "4500" means) stay with the
// application, which attaches change callbacks when the menu is built.
package menufile
