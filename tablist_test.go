package gui

import "testing"

const mockFill = 0xFF334455

// mockStop is a minimal clickable, key-filtering TabStop for testing.
type mockStop struct {
	Styled

	focused bool
	enabled bool
	clicks  int
	ignored []Key
}

func newMockStop() *mockStop {
	s := &mockStop{enabled: true}
	s.Style.SetAll(func(st *StateStyle) { st.FillColor = mockFill })
	return s
}

func (s *mockStop) Bounds() Rect                  { return Rect{} }
func (s *mockStop) Draw(*DrawList, Theme)         {}
func (s *mockStop) HandleInput(*InputState) bool  { return false }
func (s *mockStop) Focused() bool                 { return s.focused }
func (s *mockStop) SetFocused(focused bool)       { s.focused = focused }
func (s *mockStop) IsEnabled() bool               { return s.enabled }
func (s *mockStop) SetEnabled(enabled bool)       { s.enabled = enabled }
func (s *mockStop) Click()                        { s.clicks++ }
func (s *mockStop) IgnoreKey(key Key)             { s.ignored = append(s.ignored, key) }

// plainStop has no Click method, so activation must be a no-op on it.
type plainStop struct {
	Styled
	focused bool
	enabled bool
}

func (s *plainStop) Bounds() Rect                 { return Rect{} }
func (s *plainStop) Draw(*DrawList, Theme)        {}
func (s *plainStop) HandleInput(*InputState) bool { return false }
func (s *plainStop) Focused() bool                { return s.focused }
func (s *plainStop) SetFocused(focused bool)      { s.focused = focused }
func (s *plainStop) IsEnabled() bool              { return s.enabled }
func (s *plainStop) SetEnabled(enabled bool)      { s.enabled = enabled }

const (
	testHighlightFill    = 0xFF112233
	testHighlightOutline = 0xFF445566
)

func newTestTabList(stops []TabStop, opts ...TabListOption) *TabList {
	return NewTabList(stops, testHighlightFill, testHighlightOutline, KeyTab, KeyEnter, opts...)
}

// pressKey simulates a fresh press of a key and runs one update.
func pressKey(tl *TabList, in *InputState, k Key) {
	in.SetKey(k, true)
	tl.Update(in)
	in.SetKey(k, false)
	tl.Update(in)
}

func TestTabList_InitialCursorInvalid(t *testing.T) {
	tl := newTestTabList([]TabStop{newMockStop()})

	if tl.Cursor() != -1 {
		t.Errorf("Expected cursor=-1 before any input, got %d", tl.Cursor())
	}
	if tl.IsValidSelection() {
		t.Error("Expected no valid selection before any input")
	}
	if tl.FocusedWidget() != nil {
		t.Error("Expected nil focused widget before any input")
	}
}

func TestTabList_FirstAdvanceHighlightsFirstWidget(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b})
	in := NewInputState()

	pressKey(tl, in, KeyTab)

	if tl.Cursor() != 0 {
		t.Fatalf("Expected cursor=0 after first cycle, got %d", tl.Cursor())
	}
	if !a.focused {
		t.Error("Expected first widget to be focused")
	}
	for _, st := range InteractionStates {
		if a.FillColor(st) != testHighlightFill {
			t.Errorf("Expected highlight fill in state %v, got %#x", st, a.FillColor(st))
		}
		if a.OutlineColor(st) != testHighlightOutline {
			t.Errorf("Expected highlight outline in state %v, got %#x", st, a.OutlineColor(st))
		}
		if a.OutlineWidth(st) != focusOutlineWidth {
			t.Errorf("Expected outline width %d in state %v, got %v", focusOutlineWidth, st, a.OutlineWidth(st))
		}
	}
	if b.focused {
		t.Error("Expected second widget to stay unfocused")
	}
}

func TestTabList_CycleRestoresPreviousWidget(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b})
	in := NewInputState()

	pressKey(tl, in, KeyTab)
	pressKey(tl, in, KeyTab)

	if tl.Cursor() != 1 {
		t.Fatalf("Expected cursor=1 after two cycles, got %d", tl.Cursor())
	}
	if a.focused {
		t.Error("Expected first widget to lose focus")
	}
	for _, st := range InteractionStates {
		if a.FillColor(st) != mockFill {
			t.Errorf("Expected restored fill in state %v, got %#x", st, a.FillColor(st))
		}
		if a.OutlineColor(st) != ColorBlack {
			t.Errorf("Expected restored outline in state %v, got %#x", st, a.OutlineColor(st))
		}
		if a.OutlineWidth(st) != 0 {
			t.Errorf("Expected restored outline width 0 in state %v, got %v", st, a.OutlineWidth(st))
		}
	}
}

func TestTabList_Wraparound(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	c := newMockStop()
	tl := newTestTabList([]TabStop{a, b, c})
	in := NewInputState()

	for i := 0; i < 4; i++ {
		pressKey(tl, in, KeyTab)
	}

	if tl.Cursor() != 0 {
		t.Errorf("Expected cursor to wrap to 0, got %d", tl.Cursor())
	}
	if !a.focused || b.focused || c.focused {
		t.Error("Expected only the first widget to be focused after wraparound")
	}
}

func TestTabList_NoWraparoundClampsAtLast(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b}, NoWraparound())
	in := NewInputState()

	for i := 0; i < 5; i++ {
		pressKey(tl, in, KeyTab)
	}

	if tl.Cursor() != 1 {
		t.Errorf("Expected cursor clamped at 1, got %d", tl.Cursor())
	}
	if !b.focused {
		t.Error("Expected last widget to keep focus")
	}
}

func TestTabList_HeldCycleKeyAdvancesOnce(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b})
	in := NewInputState()

	in.SetKey(KeyTab, true)
	tl.Update(in)
	tl.Update(in)
	tl.Update(in)

	if tl.Cursor() != 0 {
		t.Errorf("Expected a held cycle key to advance once, cursor=%d", tl.Cursor())
	}
}

func TestTabList_SelectActivatesFocusedWidget(t *testing.T) {
	a := newMockStop()
	tl := newTestTabList([]TabStop{a})
	in := NewInputState()

	pressKey(tl, in, KeyTab)
	pressKey(tl, in, KeyEnter)

	if a.clicks != 1 {
		t.Errorf("Expected 1 click after select, got %d", a.clicks)
	}

	// Holding select must not fire again.
	in.SetKey(KeyEnter, true)
	tl.Update(in)
	tl.Update(in)
	if a.clicks != 2 {
		t.Errorf("Expected exactly one more click from the fresh press, got %d total", a.clicks)
	}
}

func TestTabList_SelectWithoutFocusDoesNothing(t *testing.T) {
	a := newMockStop()
	tl := newTestTabList([]TabStop{a})
	in := NewInputState()

	pressKey(tl, in, KeyEnter)

	if a.clicks != 0 {
		t.Errorf("Expected no click without a focused widget, got %d", a.clicks)
	}
	if tl.Cursor() != -1 {
		t.Errorf("Expected cursor to stay -1, got %d", tl.Cursor())
	}
}

func TestTabList_SelectOnDisabledWidgetDoesNothing(t *testing.T) {
	a := newMockStop()
	tl := newTestTabList([]TabStop{a})
	in := NewInputState()

	pressKey(tl, in, KeyTab)
	a.SetEnabled(false)
	pressKey(tl, in, KeyEnter)

	if a.clicks != 0 {
		t.Errorf("Expected no click on disabled widget, got %d", a.clicks)
	}
}

func TestTabList_SelectOnNonClickableDoesNothing(t *testing.T) {
	p := &plainStop{enabled: true}
	tl := newTestTabList([]TabStop{p})
	in := NewInputState()

	pressKey(tl, in, KeyTab)
	pressKey(tl, in, KeyEnter) // must not panic
}

func TestTabList_CycleTakesPriorityOverSelect(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b})
	in := NewInputState()

	pressKey(tl, in, KeyTab)

	// Both keys freshly pressed on the same frame: only the cycle runs.
	in.SetKey(KeyTab, true)
	in.SetKey(KeyEnter, true)
	tl.Update(in)

	if tl.Cursor() != 1 {
		t.Errorf("Expected cycle to win, cursor=%d", tl.Cursor())
	}
	if a.clicks != 0 || b.clicks != 0 {
		t.Errorf("Expected no activation on the cycle frame, got %d/%d", a.clicks, b.clicks)
	}
}

func TestTabList_InactiveIgnoresInput(t *testing.T) {
	a := newMockStop()
	tl := newTestTabList([]TabStop{a})
	in := NewInputState()

	tl.SetActive(false)
	in.SetKey(KeyTab, true)
	tl.Update(in)

	if tl.Cursor() != -1 {
		t.Errorf("Expected inactive list to ignore input, cursor=%d", tl.Cursor())
	}

	// Key tracking paused while inactive: the still-held key reads as a
	// fresh press on reactivation.
	tl.SetActive(true)
	tl.Update(in)
	if tl.Cursor() != 0 {
		t.Errorf("Expected held key to register after reactivation, cursor=%d", tl.Cursor())
	}
}

func TestTabList_SetFocusAndClearFocus(t *testing.T) {
	a := newMockStop()
	b := newMockStop()
	tl := newTestTabList([]TabStop{a, b})

	tl.SetFocus(b)
	if tl.Cursor() != 1 || !b.focused {
		t.Errorf("Expected SetFocus to focus the second widget, cursor=%d", tl.Cursor())
	}

	tl.ClearFocus()
	if tl.Cursor() != -1 {
		t.Errorf("Expected ClearFocus to reset the cursor, got %d", tl.Cursor())
	}
	if b.focused {
		t.Error("Expected ClearFocus to unfocus the widget")
	}
	if b.FillColor(StateDefault) != mockFill {
		t.Errorf("Expected ClearFocus to restore the fill, got %#x", b.FillColor(StateDefault))
	}
}

func TestTabList_SetFocusUntrackedWidgetIsNoop(t *testing.T) {
	a := newMockStop()
	outsider := newMockStop()
	tl := newTestTabList([]TabStop{a})

	tl.SetFocus(outsider)

	if tl.Cursor() != -1 {
		t.Errorf("Expected untracked SetFocus to be a no-op, cursor=%d", tl.Cursor())
	}
	if outsider.focused {
		t.Error("Expected untracked widget to stay unfocused")
	}
}

func TestTabList_EmptyListIsInert(t *testing.T) {
	tl := newTestTabList(nil)
	in := NewInputState()

	pressKey(tl, in, KeyTab)
	pressKey(tl, in, KeyEnter)

	if tl.Cursor() != -1 {
		t.Errorf("Expected empty list cursor to stay -1, got %d", tl.Cursor())
	}
}

func TestTabList_RegistersCycleKeyAsIgnored(t *testing.T) {
	a := newMockStop()
	newTestTabList([]TabStop{a})

	found := false
	for _, k := range a.ignored {
		if k == KeyTab {
			found = true
		}
	}
	if !found {
		t.Error("Expected the cycle key to be registered as ignored on key-filtering widgets")
	}
}
