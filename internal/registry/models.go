package registry

// ChangeFunc is invoked by the menu engine when the value of a setting has
// been changed. The setting is passed with its pending index already moved to
// the new value. The return value reports whether the application accepts the
// change; on false the engine reverts the edit.
//
// Callbacks run synchronously on the caller's goroutine and must not feed
// events back into the menu.
type ChangeFunc func(s *Setting) bool

// Setting is one row of the menu: either a real named setting with an
// enumerated list of values, or a separator (a blank row that navigation
// skips).
type Setting struct {
	name       string
	options    []string
	current    int
	pending    int
	liveUpdate bool
	accepted   bool
	onChange   ChangeFunc
	separator  bool
}

// newSetting builds a real setting. The current index is trusted as-is;
// validating it against the options list is the caller's job (menufile does
// this for file-defined menus).
func newSetting(name string, options []string, current int, liveUpdate bool, onChange ChangeFunc) *Setting {
	return &Setting{
		name:       name,
		options:    options,
		current:    current,
		pending:    current,
		liveUpdate: liveUpdate,
		onChange:   onChange,
	}
}

func newSeparator() *Setting {
	return &Setting{separator: true}
}

// IsSeparator reports whether this entry is a blank grouping row.
func (s *Setting) IsSeparator() bool { return s.separator }

// Name returns the display label. Separators have none.
func (s *Setting) Name() string { return s.name }

// OptionCount returns the number of allowed values.
func (s *Setting) OptionCount() int { return len(s.options) }

// Option returns the display string for value index i.
func (s *Setting) Option(i int) string { return s.options[i] }

// Current returns the index of the authoritative value.
func (s *Setting) Current() int { return s.current }

// Pending returns the index of the value being tried during an edit. Equal to
// Current whenever the setting is not being edited.
func (s *Setting) Pending() int { return s.pending }

// Value returns the display string of the current value.
func (s *Setting) Value() string { return s.options[s.current] }

// PendingValue returns the display string of the pending value.
func (s *Setting) PendingValue() string { return s.options[s.pending] }

// LiveUpdate reports whether value changes are pushed to the application on
// every scroll step rather than only on commit.
func (s *Setting) LiveUpdate() bool { return s.liveUpdate }

// LastAccepted returns the result of the most recent live-update callback.
func (s *Setting) LastAccepted() bool { return s.accepted }

// SetPending moves the pending index. The menu engine clamps before calling.
func (s *Setting) SetPending(i int) { s.pending = i }

// Commit makes the pending value authoritative.
func (s *Setting) Commit() { s.current = s.pending }

// Revert discards the pending value.
func (s *Setting) Revert() { s.pending = s.current }

// NotifyChange invokes the change callback and returns its verdict. A setting
// without a callback accepts every change.
func (s *Setting) NotifyChange() bool {
	if s.onChange == nil {
		return true
	}
	return s.onChange(s)
}

// RecordAccepted stores the verdict of a live-update callback so commit and
// cancel can decide later whether to keep or roll back the value.
func (s *Setting) RecordAccepted(ok bool) { s.accepted = ok }
