package menu

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kwsdr/gridmenu/internal/logging"
	"github.com/kwsdr/gridmenu/internal/registry"
	"github.com/kwsdr/gridmenu/internal/surface"
)

// Fixed row layout, matching the 26-cell panels the menu was designed for:
// cursor marker in column 0, name from column 2, value right-aligned from the
// value column to the end of the row.
const (
	markerCol       = 0
	nameCol         = 2
	defaultValueCol = 19
)

// Controller is the menu session: the settings registry plus all navigation
// and editing state, bound to one rendering surface. Create one per panel
// with New.
type Controller struct {
	reg  *registry.Registry
	surf surface.Surface

	cols     int
	rows     int
	valueCol int

	selected int
	top      int
	editing  bool
	active   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithGeometry overrides the default 26x16 cell grid.
func WithGeometry(cols, rows int) Option {
	return func(c *Controller) {
		c.cols = cols
		c.rows = rows
	}
}

// WithValueColumn overrides the column where the value field begins.
func WithValueColumn(col int) Option {
	return func(c *Controller) {
		c.valueCol = col
	}
}

// New creates a controller with room for maxSettings registry entries,
// drawing to surf. The display starts deactivated; call Activate once the
// settings have been created.
func New(maxSettings int, surf surface.Surface, opts ...Option) *Controller {
	c := &Controller{
		reg:      registry.NewRegistry(maxSettings),
		surf:     surf,
		cols:     surface.DefaultCols,
		rows:     surface.DefaultRows,
		valueCol: defaultValueCol,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create appends a named setting to the menu. It fails with
// registry.ErrCapacityExceeded once the table is full.
func (c *Controller) Create(name string, options []string, current int, liveUpdate bool, onChange registry.ChangeFunc) (*registry.Setting, error) {
	return c.reg.Append(name, options, current, liveUpdate, onChange)
}

// CreateSeparator appends a blank grouping row.
func (c *Controller) CreateSeparator() (*registry.Setting, error) {
	return c.reg.AppendSeparator()
}

// Registry exposes the underlying settings table.
func (c *Controller) Registry() *registry.Registry { return c.reg }

// Selected returns the registry index of the cursor.
func (c *Controller) Selected() int { return c.selected }

// Editing reports whether the selected setting is being edited.
func (c *Controller) Editing() bool { return c.editing }

// Active reports whether the controller currently owns the display.
func (c *Controller) Active() bool { return c.active }

// Activate gives the controller the display. The visible window and cursor
// position survive deactivation, so the menu reappears where the user left
// it. Returns the accumulated rendering result.
func (c *Controller) Activate() bool {
	c.active = true

	// Settings are created after New, so the initial cursor position is
	// normalized here: it must rest on a real setting, never a separator.
	if s, err := c.reg.Get(c.selected); err != nil || s.IsSeparator() {
		if first := c.reg.FirstSelectable(); first >= 0 {
			c.selected = first
		}
	}

	ok := c.drawWindow(c.top)
	ok = c.drawMarker(true) && ok
	logging.Debug("menu activated",
		zap.Int("selected", c.selected),
		zap.Int("top", c.top),
	)
	return ok
}

// Deactivate releases the display. A pending edit is abandoned: the pending
// value snaps back to the current one without any callback, keeping the
// not-editing invariant intact without telling the application anything it
// never learned about. The session is merely suspended; Activate resumes it.
func (c *Controller) Deactivate() bool {
	if c.editing {
		if s, err := c.reg.Get(c.selected); err == nil {
			s.Revert()
		}
	}
	c.active = false
	c.editing = false
	logging.Debug("menu deactivated")
	return true
}

// Up handles the up event: previous setting while browsing, next option
// value while editing.
func (c *Controller) Up() bool {
	if c.editing {
		return c.scrollValue(1)
	}
	return c.scrollSetting(-1)
}

// Down handles the down event: next setting while browsing, previous option
// value while editing.
func (c *Controller) Down() bool {
	if c.editing {
		return c.scrollValue(-1)
	}
	return c.scrollSetting(1)
}

// Accept enters edit mode while browsing, or commits the pending value while
// editing. Commit semantics depend on the setting's live-update flag: live
// settings have already pushed the value through their callback during
// scrolling, so the remembered verdict decides between keeping and reverting
// it; non-live settings invoke the callback here, exactly once, and only when
// the value changed.
func (c *Controller) Accept() bool {
	s, err := c.reg.Get(c.selected)
	if err != nil || s.IsSeparator() {
		return false
	}

	if c.editing {
		if s.Pending() != s.Current() {
			switch {
			case s.LiveUpdate():
				if s.LastAccepted() {
					s.Commit()
				} else {
					// The application rejected the last live change;
					// it already knows the value never applied, so
					// drop it silently.
					s.Revert()
				}
			case s.NotifyChange():
				s.Commit()
			default:
				s.Revert()
			}
		}
		c.editing = false
		logging.Debug("edit committed",
			zap.String("setting", s.Name()),
			zap.String("value", s.Value()),
		)
	} else {
		c.editing = true
		logging.Debug("edit started", zap.String("setting", s.Name()))
	}
	return c.highlightValue()
}

// Cancel aborts an edit, restoring the pending value to the current one. If
// the setting is live-updating and the application had accepted a diverged
// pending value, the callback is invoked once more with the restored value so
// the application can undo it; that call's verdict is ignored. While
// browsing, Cancel does nothing.
func (c *Controller) Cancel() bool {
	if !c.editing {
		return true
	}
	s, err := c.reg.Get(c.selected)
	if err != nil {
		return false
	}

	notifyRollback := s.LiveUpdate() && s.LastAccepted() && s.Pending() != s.Current()
	s.Revert()
	if notifyRollback {
		s.NotifyChange()
	}
	c.editing = false
	logging.Debug("edit cancelled",
		zap.String("setting", s.Name()),
		zap.Bool("rollback_notified", notifyRollback),
	)
	return c.highlightValue()
}

// scrollSetting moves the cursor d (+1/-1) settings, skipping separators and
// clamping at the list ends. A move that cannot happen returns false; this is
// the silent no-op at the boundary, not an error.
func (c *Controller) scrollSetting(d int) bool {
	next := c.selected
	for {
		if d > 0 && next < c.reg.Len()-1 {
			next += d
		} else if d < 0 && next > 0 {
			next += d
		} else {
			return false
		}
		s, err := c.reg.Get(next)
		if err != nil {
			return false
		}
		if !s.IsSeparator() {
			break
		}
	}

	ok := c.drawMarker(false)
	c.selected = next

	// Scroll-to-reveal: shift the window only as far as needed to bring
	// the cursor back into view.
	if c.selected < c.top {
		ok = c.drawWindow(c.selected) && ok
	} else if c.selected >= c.top+c.rows {
		ok = c.drawWindow(c.selected-c.rows+1) && ok
	}
	ok = c.drawMarker(true) && ok
	return ok
}

// scrollValue moves the pending value of the selected setting by d (+1/-1),
// clamping at the first and last option. At a boundary nothing changes and
// nothing is drawn.
func (c *Controller) scrollValue(d int) bool {
	s, err := c.reg.Get(c.selected)
	if err != nil {
		return false
	}

	pending := s.Pending()
	next := pending
	if d > 0 && pending < s.OptionCount()-1 {
		next += d
	} else if d < 0 && pending > 0 {
		next += d
	}
	if next == pending {
		return true
	}

	s.SetPending(next)
	ok := c.highlightValue()
	if s.LiveUpdate() {
		// Remember the verdict; rollback, if needed, happens on
		// Accept or Cancel.
		s.RecordAccepted(s.NotifyChange())
		logging.Debug("live value pushed",
			zap.String("setting", s.Name()),
			zap.String("value", s.PendingValue()),
			zap.Bool("accepted", s.LastAccepted()),
		)
	}
	return ok
}

// highlightValue repaints the value cell of the selected setting in the
// color encoding the edit state: white while browsing, blue while editing
// with pending == current, red while the pending value differs.
func (c *Controller) highlightValue() bool {
	s, err := c.reg.Get(c.selected)
	if err != nil {
		return false
	}
	fg := surface.White
	if c.editing {
		if s.Pending() == s.Current() {
			fg = surface.Blue
		} else {
			fg = surface.Red
		}
	}
	return c.drawValue(s, c.selected-c.top, true, fg, surface.Black)
}

// drawMarker paints or erases the ">" cursor at the selected row.
func (c *Controller) drawMarker(on bool) bool {
	marker := " "
	if on {
		marker = ">"
	}
	return c.draw(markerCol, c.selected-c.top, marker, true, surface.White, surface.Black, 0)
}

// drawWindow redraws every visible row starting from registry index first
// and records it as the new top of the window.
func (c *Controller) drawWindow(first int) bool {
	ok := c.clear()
	n := c.reg.Len() - first
	if n > c.rows {
		n = c.rows
	}
	for i := 0; i < n; i++ {
		s, err := c.reg.Get(first + i)
		if err != nil {
			ok = false
			continue
		}
		ok = c.drawRow(s, i, false, surface.White, surface.Black) && ok
	}
	c.top = first
	return ok
}

// drawRow paints one setting at the given screen row. Separators render as a
// full blank row.
func (c *Controller) drawRow(s *registry.Setting, row int, clean bool, fg, bg surface.Color) bool {
	if s.IsSeparator() {
		return c.draw(0, row, strings.Repeat(" ", c.cols), true, surface.White, surface.Black, 0)
	}
	ok := c.draw(nameCol, row, s.Name(), clean, fg, bg, 0)
	ok = c.drawValue(s, row, clean, fg, bg) && ok
	return ok
}

// drawValue paints the pending value right-aligned against the end of the
// row. The pad erases stale characters left behind by a longer previous
// value.
func (c *Controller) drawValue(s *registry.Setting, row int, clean bool, fg, bg surface.Color) bool {
	value := s.PendingValue()
	pad := c.cols - c.valueCol - len(value)
	if pad < 0 {
		pad = 0
	}
	return c.draw(c.valueCol, row, value, clean, fg, bg, pad)
}

// draw forwards to the surface while the controller owns the display.
// Suppressed writes count as successful; the next Activate repaints.
func (c *Controller) draw(col, row int, text string, clean bool, fg, bg surface.Color, pad int) bool {
	if !c.active {
		return true
	}
	return c.surf.DrawText(col, row, text, clean, fg, bg, pad)
}

func (c *Controller) clear() bool {
	if !c.active {
		return true
	}
	return c.surf.Clear()
}
