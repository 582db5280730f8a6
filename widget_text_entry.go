package gui

// TextEntry is a retained single-line text input. Every prospective edit
// is offered to the entry's validator before it is committed, so invalid
// intermediate states never become visible.
type TextEntry struct {
	Styled

	bounds  Rect
	value   []rune
	cursor  int
	enabled bool
	focused bool

	// Keys the entry must not react to. Tab lists register their cycle
	// key here so cycling away does not also type into the entry.
	ignoredKeys  map[Key]bool
	ignoredRunes map[rune]bool

	validate ValidateFunc

	scrollCols int
}

// NewTextEntry creates a text entry with the theme's default entry style.
// A nil validator accepts every edit.
func NewTextEntry(bounds Rect, theme Theme, validate ValidateFunc) *TextEntry {
	e := &TextEntry{
		bounds:       bounds,
		enabled:      true,
		ignoredKeys:  make(map[Key]bool),
		ignoredRunes: make(map[rune]bool),
		validate:     validate,
	}
	e.Style = theme.EntryStyle()
	return e
}

// Bounds returns the entry's screen rectangle.
func (e *TextEntry) Bounds() Rect { return e.bounds }

// SetBounds moves the entry.
func (e *TextEntry) SetBounds(bounds Rect) { e.bounds = bounds }

// Text returns the entry's current value.
func (e *TextEntry) Text() string { return string(e.value) }

// SetText replaces the entry's value without consulting the validator.
// Use it for programmatic initialization; interactive edits always
// validate.
func (e *TextEntry) SetText(text string) {
	e.value = []rune(text)
	e.cursor = len(e.value)
}

// IsEnabled reports whether the entry accepts input.
func (e *TextEntry) IsEnabled() bool { return e.enabled }

// SetEnabled enables or disables the entry. Disabling drops focus.
func (e *TextEntry) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.focused = false
	}
}

// Focused reports whether the entry holds keyboard focus.
func (e *TextEntry) Focused() bool { return e.focused }

// SetFocused sets the entry's keyboard focus flag.
func (e *TextEntry) SetFocused(focused bool) { e.focused = focused }

// Click gives the entry keyboard focus. Disabled entries do nothing.
func (e *TextEntry) Click() {
	if !e.enabled {
		return
	}
	e.focused = true
}

// IgnoreKey tells the entry to never react to the given key, even while
// focused. The key's typed character, if any, is suppressed too.
func (e *TextEntry) IgnoreKey(key Key) {
	e.ignoredKeys[key] = true
	if r := keyRune(key); r != 0 {
		e.ignoredRunes[r] = true
	}
}

// tryChange offers a prospective value to the validator and commits it
// when accepted. It reports whether the change was committed.
func (e *TextEntry) tryChange(proposed []rune, cursor int) bool {
	if e.validate != nil && !e.validate(string(proposed), string(e.value)) {
		return false
	}
	e.value = proposed
	e.cursor = cursor
	return true
}

// HandleInput processes focus clicks and, when focused, keyboard editing.
func (e *TextEntry) HandleInput(input *InputState) bool {
	if !e.enabled {
		return false
	}

	if input.MouseClicked(MouseButtonLeft) {
		e.focused = e.bounds.Contains(input.MousePos())
	}
	if !e.focused {
		return false
	}

	consumed := false

	for _, r := range input.InputChars {
		if r < 32 || e.ignoredRunes[r] {
			continue
		}
		next := make([]rune, 0, len(e.value)+1)
		next = append(next, e.value[:e.cursor]...)
		next = append(next, r)
		next = append(next, e.value[e.cursor:]...)
		e.tryChange(next, e.cursor+1)
		consumed = true
	}

	keyActive := func(k Key) bool {
		return !e.ignoredKeys[k] && input.KeyRepeated(k)
	}

	switch {
	case keyActive(KeyBackspace) && e.cursor > 0:
		next := make([]rune, 0, len(e.value)-1)
		next = append(next, e.value[:e.cursor-1]...)
		next = append(next, e.value[e.cursor:]...)
		e.tryChange(next, e.cursor-1)
		consumed = true
	case keyActive(KeyDelete) && e.cursor < len(e.value):
		next := make([]rune, 0, len(e.value)-1)
		next = append(next, e.value[:e.cursor]...)
		next = append(next, e.value[e.cursor+1:]...)
		e.tryChange(next, e.cursor)
		consumed = true
	case keyActive(KeyLeft) && e.cursor > 0:
		e.cursor--
		consumed = true
	case keyActive(KeyRight) && e.cursor < len(e.value):
		e.cursor++
		consumed = true
	}

	if !e.ignoredKeys[KeyHome] && input.KeyPressed(KeyHome) {
		e.cursor = 0
		consumed = true
	}
	if !e.ignoredKeys[KeyEnd] && input.KeyPressed(KeyEnd) {
		e.cursor = len(e.value)
		consumed = true
	}
	if !e.ignoredKeys[KeyEnter] && input.KeyPressed(KeyEnter) {
		e.focused = false
		consumed = true
	}
	if !e.ignoredKeys[KeyEscape] && input.KeyPressed(KeyEscape) {
		e.focused = false
		consumed = true
	}

	return consumed
}

// Draw appends the entry's box, visible text slice and caret.
func (e *TextEntry) Draw(dl *DrawList, theme Theme) {
	st := e.Style.State(StateDefault)

	fill := st.FillColor
	if e.focused {
		fill = theme.EntryFocusedFill
	}
	dl.AddRect(e.bounds.X, e.bounds.Y, e.bounds.W, e.bounds.H, fill)
	if st.OutlineWidth > 0 {
		dl.AddRectOutline(e.bounds.X, e.bounds.Y, e.bounds.W, e.bounds.H, st.OutlineColor, st.OutlineWidth)
	}

	charW := theme.CharWidth * theme.FontScale
	innerW := e.bounds.W - 2*theme.EntryPadding
	visCols := int(innerW / charW)
	if visCols < 1 {
		visCols = 1
	}

	// Keep the caret inside the visible window.
	if e.cursor < e.scrollCols {
		e.scrollCols = e.cursor
	}
	if e.cursor > e.scrollCols+visCols {
		e.scrollCols = e.cursor - visCols
	}

	first := e.scrollCols
	last := first + visCols
	if last > len(e.value) {
		last = len(e.value)
	}
	if first > last {
		first = last
	}

	textColor := st.TextColor
	if !e.enabled {
		textColor = theme.TextDisabledColor
	}
	tx := e.bounds.X + theme.EntryPadding
	ty := e.bounds.Y + (e.bounds.H-theme.LineHeight())/2

	dl.PushClipRect(e.bounds.X, e.bounds.Y, e.bounds.X+e.bounds.W, e.bounds.Y+e.bounds.H)
	dl.AddText(tx, ty, string(e.value[first:last]), textColor, theme.FontScale, theme.CharWidth, theme.CharHeight)

	if e.focused && e.enabled {
		caretX := tx + float32(e.cursor-first)*charW
		dl.AddRect(caretX, ty, 1, theme.LineHeight(), theme.CaretColor)
	}
	dl.PopClipRect()
}
