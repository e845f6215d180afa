package menu

import (
	"strings"
	"testing"

	"github.com/kwsdr/gridmenu/internal/registry"
	"github.com/kwsdr/gridmenu/internal/surface"
)

// failSurface reports every write as failed, for testing result propagation.
type failSurface struct{}

func (failSurface) Clear() bool { return false }
func (failSurface) DrawText(col, row int, text string, clean bool, fg, bg surface.Color, pad int) bool {
	return false
}

// newRadioMenu builds the menu used throughout these tests: an IF setting, a
// separator, and a TAPS setting, mirroring a small SDR control panel.
func newRadioMenu(t *testing.T, live bool, verdict func() bool) (*Controller, *surface.Buffer, *int) {
	t.Helper()

	buf := surface.NewBuffer(surface.DefaultCols, surface.DefaultRows)
	c := New(8, buf)

	calls := 0
	cb := func(s *registry.Setting) bool {
		calls++
		return verdict()
	}

	if _, err := c.Create("IF", []string{"0", "4500", "5000"}, 1, live, cb); err != nil {
		t.Fatalf("Create(IF) error = %v", err)
	}
	if _, err := c.CreateSeparator(); err != nil {
		t.Fatalf("CreateSeparator() error = %v", err)
	}
	if _, err := c.Create("TAPS", []string{"50", "100"}, 0, live, cb); err != nil {
		t.Fatalf("Create(TAPS) error = %v", err)
	}
	return c, buf, &calls
}

func accepting() bool { return true }
func rejecting() bool { return false }

func TestActivateRendersMenu(t *testing.T) {
	c, buf, _ := newRadioMenu(t, false, accepting)

	if !c.Activate() {
		t.Fatal("Activate() = false, want true")
	}

	if line := buf.Line(0); line != "> IF                  4500" {
		t.Errorf("row 0 = %q, want %q", line, "> IF                  4500")
	}
	if line := buf.Line(1); line != strings.Repeat(" ", 26) {
		t.Errorf("separator row = %q, want blank", line)
	}
	if line := buf.Line(2); line != "  TAPS                  50" {
		t.Errorf("row 2 = %q, want %q", line, "  TAPS                  50")
	}
}

func TestActivateNormalizesSelectionPastLeadingSeparator(t *testing.T) {
	buf := surface.NewBuffer(surface.DefaultCols, surface.DefaultRows)
	c := New(4, buf)
	c.CreateSeparator()
	c.Create("MODE", []string{"USB", "LSB"}, 0, false, nil)

	c.Activate()
	if c.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", c.Selected())
	}
	if line := buf.Line(1); line != "> MODE                 USB" {
		t.Errorf("row 1 = %q, want %q", line, "> MODE                 USB")
	}
}

func TestBrowseSkipsSeparator(t *testing.T) {
	c, buf, _ := newRadioMenu(t, false, accepting)
	c.Activate()

	if !c.Down() {
		t.Fatal("Down() = false, want true")
	}
	if c.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2 (TAPS, separator skipped)", c.Selected())
	}
	if cell := buf.CellAt(0, 0); cell.Rune != ' ' {
		t.Errorf("old marker cell = %q, want erased", cell.Rune)
	}
	if cell := buf.CellAt(0, 2); cell.Rune != '>' {
		t.Errorf("new marker cell = %q, want '>'", cell.Rune)
	}

	if !c.Up() {
		t.Fatal("Up() = false, want true")
	}
	if c.Selected() != 0 {
		t.Errorf("Selected() after Up = %d, want 0", c.Selected())
	}
}

func TestBrowseClampsAtEnds(t *testing.T) {
	c, _, _ := newRadioMenu(t, false, accepting)
	c.Activate()

	// At the first setting; Up has nowhere to go.
	if c.Up() {
		t.Error("Up() at top = true, want false (no-op failure signal)")
	}
	if c.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", c.Selected())
	}

	c.Down()
	if c.Down() {
		t.Error("Down() at bottom = true, want false (no-op failure signal)")
	}
	if c.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", c.Selected())
	}
}

func TestBrowseUpDownSymmetry(t *testing.T) {
	buf := surface.NewBuffer(surface.DefaultCols, surface.DefaultRows)
	c := New(8, buf)
	for _, name := range []string{"A", "B", "C", "D"} {
		c.Create(name, []string{"x"}, 0, false, nil)
	}
	c.Activate()

	start := c.Selected()
	c.Down()
	c.Down()
	c.Up()
	c.Up()
	if c.Selected() != start {
		t.Errorf("Selected() after down-down-up-up = %d, want %d", c.Selected(), start)
	}
}

func TestScrollToReveal(t *testing.T) {
	buf := surface.NewBuffer(surface.DefaultCols, 3)
	c := New(8, buf, WithGeometry(surface.DefaultCols, 3))
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		c.Create(name, []string{"1", "2"}, 0, false, nil)
	}
	c.Activate()

	// Move to D: one past the 3-row window, so the window shifts by one.
	c.Down()
	c.Down()
	c.Down()
	if c.Selected() != 3 {
		t.Fatalf("Selected() = %d, want 3", c.Selected())
	}
	if line := buf.Line(0); !strings.Contains(line, "B") {
		t.Errorf("row 0 = %q, want B at top after minimal scroll", line)
	}
	if line := buf.Line(2); !strings.HasPrefix(line, "> D") {
		t.Errorf("row 2 = %q, want selected D at bottom", line)
	}

	// Back up to A: window shifts to reveal it again.
	c.Up()
	c.Up()
	c.Up()
	if line := buf.Line(0); !strings.HasPrefix(line, "> A") {
		t.Errorf("row 0 = %q, want selected A at top", line)
	}
}

func TestEditValueClampsAtBoundaries(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, accepting)
	c.Activate()
	c.Down() // TAPS, options {50, 100}, current 0

	c.Accept()
	if !c.Editing() {
		t.Fatal("Editing() = false after Accept, want true")
	}

	// Down at the first option is a no-op: no pending change, no callback.
	if !c.Down() {
		t.Error("Down() at first option = false, want true (boundary no-op)")
	}
	s, _ := c.Registry().Get(2)
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
	if *calls != 0 {
		t.Errorf("callback calls = %d, want 0", *calls)
	}

	c.Up()
	if s.Pending() != 1 {
		t.Errorf("Pending() after Up = %d, want 1", s.Pending())
	}
	// Up at the last option is a no-op.
	c.Up()
	if s.Pending() != 1 {
		t.Errorf("Pending() after clamped Up = %d, want 1", s.Pending())
	}
	if *calls != 1 {
		t.Errorf("callback calls = %d, want 1 (only the real change)", *calls)
	}
}

func TestCommitNonLiveInvokesCallbackOnce(t *testing.T) {
	c, _, calls := newRadioMenu(t, false, accepting)
	c.Activate()

	// Edit IF from 4500 to 5000. No callback may fire during scrolling.
	c.Accept()
	c.Up()
	if *calls != 0 {
		t.Fatalf("callback calls during scroll = %d, want 0", *calls)
	}

	c.Accept()
	if *calls != 1 {
		t.Errorf("callback calls after commit = %d, want 1", *calls)
	}

	s, _ := c.Registry().Get(0)
	if s.Current() != 2 || s.Pending() != 2 {
		t.Errorf("Current/Pending = %d/%d, want 2/2", s.Current(), s.Pending())
	}
	if c.Editing() {
		t.Error("Editing() = true after commit, want false")
	}
}

func TestCommitNonLiveRejectedRevertsValue(t *testing.T) {
	c, _, calls := newRadioMenu(t, false, rejecting)
	c.Activate()

	c.Accept()
	c.Up()
	c.Accept()

	s, _ := c.Registry().Get(0)
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1 (unchanged)", s.Current())
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1 (reverted)", s.Pending())
	}
	if *calls != 1 {
		t.Errorf("callback calls = %d, want 1", *calls)
	}
}

func TestCommitNonLiveUnchangedValueSkipsCallback(t *testing.T) {
	c, _, calls := newRadioMenu(t, false, accepting)
	c.Activate()

	c.Accept()
	c.Accept() // commit without scrolling
	if *calls != 0 {
		t.Errorf("callback calls = %d, want 0 (value never changed)", *calls)
	}
}

func TestCommitLiveAcceptedKeepsValueWithoutRecall(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, accepting)
	c.Activate()

	c.Accept()
	c.Up() // 4500 -> 5000, callback fires live
	if *calls != 1 {
		t.Fatalf("callback calls after live scroll = %d, want 1", *calls)
	}

	c.Accept()
	s, _ := c.Registry().Get(0)
	if s.Current() != 2 {
		t.Errorf("Current() = %d, want 2", s.Current())
	}
	if *calls != 1 {
		t.Errorf("callback calls after commit = %d, want 1 (no re-invocation)", *calls)
	}
}

func TestCommitLiveRejectedDiscardsSilently(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, rejecting)
	c.Activate()

	c.Accept()
	c.Up()
	if *calls != 1 {
		t.Fatalf("callback calls = %d, want 1", *calls)
	}

	c.Accept()
	s, _ := c.Registry().Get(0)
	if s.Current() != 1 || s.Pending() != 1 {
		t.Errorf("Current/Pending = %d/%d, want 1/1 (rejected change dropped)", s.Current(), s.Pending())
	}
	if *calls != 1 {
		t.Errorf("callback calls after commit = %d, want 1 (no extra call for a change that never applied)", *calls)
	}
}

func TestCancelRestoresPending(t *testing.T) {
	c, _, calls := newRadioMenu(t, false, accepting)
	c.Activate()

	c.Accept()
	c.Up()
	if !c.Cancel() {
		t.Fatal("Cancel() = false, want true")
	}

	s, _ := c.Registry().Get(0)
	if s.Pending() != s.Current() {
		t.Errorf("Pending() = %d, Current() = %d, want equal after cancel", s.Pending(), s.Current())
	}
	if c.Editing() {
		t.Error("Editing() = true after cancel, want false")
	}
	if *calls != 0 {
		t.Errorf("callback calls = %d, want 0 (non-live cancel never notifies)", *calls)
	}
}

func TestCancelLiveAcceptedNotifiesRollback(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, accepting)
	c.Activate()

	c.Accept()
	c.Up() // live change, accepted
	c.Cancel()

	s, _ := c.Registry().Get(0)
	if s.Pending() != 1 || s.Current() != 1 {
		t.Errorf("Current/Pending = %d/%d, want 1/1", s.Current(), s.Pending())
	}
	// One call for the live change, one to notify the rollback.
	if *calls != 2 {
		t.Errorf("callback calls = %d, want 2", *calls)
	}
}

func TestCancelLiveRejectedSkipsRollbackNotify(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, rejecting)
	c.Activate()

	c.Accept()
	c.Up() // live change, rejected
	c.Cancel()

	// The application never applied the value, so it is not told about
	// the revert.
	if *calls != 1 {
		t.Errorf("callback calls = %d, want 1", *calls)
	}
}

func TestCancelWhileBrowsingIsNoOp(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, accepting)
	c.Activate()

	if !c.Cancel() {
		t.Error("Cancel() while browsing = false, want true")
	}
	if *calls != 0 {
		t.Errorf("callback calls = %d, want 0", *calls)
	}
}

func TestValueCellColoring(t *testing.T) {
	c, buf, _ := newRadioMenu(t, false, accepting)
	c.Activate()

	valueCell := func() surface.Cell { return buf.CellAt(surface.DefaultCols-1, 0) }

	if got := valueCell().FG; got != surface.White {
		t.Errorf("browsing value color = %#04x, want white", got)
	}

	c.Accept()
	if got := valueCell().FG; got != surface.Blue {
		t.Errorf("editing (pending == current) value color = %#04x, want blue", got)
	}

	c.Up()
	if got := valueCell().FG; got != surface.Red {
		t.Errorf("editing (pending != current) value color = %#04x, want red", got)
	}

	c.Accept()
	if got := valueCell().FG; got != surface.White {
		t.Errorf("post-commit value color = %#04x, want white", got)
	}
}

func TestValueRedrawErasesStaleCharacters(t *testing.T) {
	buf := surface.NewBuffer(surface.DefaultCols, surface.DefaultRows)
	c := New(2, buf)
	c.Create("RATE", []string{"96000", "50"}, 0, false, nil)
	c.Activate()

	c.Accept()
	c.Up() // 96000 -> 50
	if line := buf.Line(0); line != "> RATE                  50" {
		t.Errorf("row 0 = %q, want %q", line, "> RATE                  50")
	}
}

func TestDeactivateAbandonsEdit(t *testing.T) {
	c, buf, calls := newRadioMenu(t, false, accepting)
	c.Activate()

	c.Accept()
	c.Up()
	if !c.Deactivate() {
		t.Fatal("Deactivate() = false, want true")
	}

	if c.Editing() {
		t.Error("Editing() = true after Deactivate, want false")
	}
	s, _ := c.Registry().Get(0)
	if s.Pending() != s.Current() {
		t.Errorf("Pending() = %d, Current() = %d, want equal outside editing", s.Pending(), s.Current())
	}
	if *calls != 0 {
		t.Errorf("callback calls = %d, want 0 (no commit/revert logic on deactivate)", *calls)
	}

	// While inactive, events mutate state but never draw.
	buf.Clear()
	c.Down()
	if c.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2 (navigation still works while suspended)", c.Selected())
	}
	if line := buf.Line(2); line != strings.Repeat(" ", 26) {
		t.Errorf("row 2 = %q, want untouched while display is off", line)
	}

	// Reactivation redraws from the remembered window and cursor.
	c.Activate()
	if line := buf.Line(2); !strings.HasPrefix(line, "> TAPS") {
		t.Errorf("row 2 after reactivate = %q, want selected TAPS", line)
	}
}

func TestRenderFailurePropagatesWithoutCorruptingState(t *testing.T) {
	c := New(4, failSurface{})
	c.Create("A", []string{"1"}, 0, false, nil)
	c.Create("B", []string{"1"}, 0, false, nil)

	if c.Activate() {
		t.Error("Activate() = true with failing surface, want false")
	}
	if c.Down() {
		t.Error("Down() = true with failing surface, want false")
	}
	// The logical state change happened regardless.
	if c.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", c.Selected())
	}
}

func TestPendingEqualsCurrentWheneverNotEditing(t *testing.T) {
	c, _, _ := newRadioMenu(t, true, accepting)
	c.Activate()

	check := func(step string) {
		t.Helper()
		if c.Editing() {
			return
		}
		for i := 0; i < c.Registry().Len(); i++ {
			s, _ := c.Registry().Get(i)
			if s.IsSeparator() {
				continue
			}
			if s.Pending() != s.Current() {
				t.Errorf("%s: setting %q Pending %d != Current %d", step, s.Name(), s.Pending(), s.Current())
			}
		}
	}

	steps := []struct {
		name string
		fn   func() bool
	}{
		{"down", c.Down}, {"accept", c.Accept}, {"up", c.Up},
		{"commit", c.Accept}, {"up2", c.Up}, {"accept2", c.Accept},
		{"scroll", c.Down}, {"cancel", c.Cancel}, {"deactivate", c.Deactivate},
	}
	for _, step := range steps {
		step.fn()
		check(step.name)
	}
}

// Full walk through the reference scenario: browse from IF past the
// separator to TAPS, live-edit it to 100, then verify a clamped edit plus
// cancel leaves the committed value alone.
func TestLiveEditScenario(t *testing.T) {
	c, _, calls := newRadioMenu(t, true, accepting)
	c.Activate()

	c.Down()
	if c.Selected() != 2 {
		t.Fatalf("Selected() = %d, want 2 (TAPS)", c.Selected())
	}

	c.Accept()
	c.Up()
	c.Accept()

	taps, _ := c.Registry().Get(2)
	if taps.Current() != 1 {
		t.Fatalf("Current() = %d, want 1 (committed '100')", taps.Current())
	}
	if *calls != 1 {
		t.Errorf("callback calls = %d, want 1", *calls)
	}

	// Edit again: Up is clamped at the last option, Cancel changes nothing.
	c.Accept()
	c.Up()
	c.Cancel()
	if taps.Current() != 1 || taps.Pending() != 1 {
		t.Errorf("Current/Pending = %d/%d, want 1/1", taps.Current(), taps.Pending())
	}
	if *calls != 1 {
		t.Errorf("callback calls after clamped edit = %d, want 1", *calls)
	}
}

func TestCreateCapacityExhausted(t *testing.T) {
	c := New(1, surface.NewBuffer(surface.DefaultCols, surface.DefaultRows))
	if _, err := c.Create("A", []string{"1"}, 0, false, nil); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := c.Create("B", []string{"1"}, 0, false, nil); err == nil {
		t.Error("Create() on full registry should fail")
	}
}

func BenchmarkBrowse(b *testing.B) {
	buf := surface.NewBuffer(surface.DefaultCols, surface.DefaultRows)
	c := New(16, buf)
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		c.Create(name, []string{"1", "2", "3"}, 0, false, nil)
	}
	c.Activate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Down()
		c.Up()
	}
}
