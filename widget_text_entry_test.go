package gui

import "testing"

func focusedEntry(validate ValidateFunc) *TextEntry {
	e := NewTextEntry(Rect{X: 0, Y: 0, W: 200, H: 30}, DefaultTheme(), validate)
	e.SetFocused(true)
	return e
}

func typeString(e *TextEntry, s string) {
	for _, r := range s {
		in := NewInputState()
		in.AddInputChar(r)
		e.HandleInput(in)
	}
}

func TestTextEntry_TypeCharacters(t *testing.T) {
	e := focusedEntry(nil)

	typeString(e, "hello")
	if e.Text() != "hello" {
		t.Errorf("Expected %q, got %q", "hello", e.Text())
	}
}

func TestTextEntry_ValidatorRejectsEdit(t *testing.T) {
	v := NewSlugValidator(false)
	e := focusedEntry(v.Validate)

	typeString(e, "ab cd")
	if e.Text() != "abcd" {
		t.Errorf("Expected rejected space to be dropped, got %q", e.Text())
	}
}

func TestTextEntry_Backspace(t *testing.T) {
	e := focusedEntry(nil)
	e.SetText("abc")

	in := NewInputState()
	in.SetKey(KeyBackspace, true)
	e.HandleInput(in)

	if e.Text() != "ab" {
		t.Errorf("Expected %q after backspace, got %q", "ab", e.Text())
	}
}

func TestTextEntry_DeleteAtCursor(t *testing.T) {
	e := focusedEntry(nil)
	e.SetText("abc")

	press := func(k Key) {
		in := NewInputState()
		in.SetKey(k, true)
		e.HandleInput(in)
	}

	press(KeyHome)
	press(KeyDelete)
	if e.Text() != "bc" {
		t.Errorf("Expected %q after delete at start, got %q", "bc", e.Text())
	}
}

func TestTextEntry_CursorMovement(t *testing.T) {
	e := focusedEntry(nil)
	e.SetText("abc")

	press := func(k Key) {
		in := NewInputState()
		in.SetKey(k, true)
		e.HandleInput(in)
	}

	press(KeyLeft)
	if e.cursor != 2 {
		t.Errorf("Expected cursor 2 after left, got %d", e.cursor)
	}
	press(KeyHome)
	if e.cursor != 0 {
		t.Errorf("Expected cursor 0 after home, got %d", e.cursor)
	}
	press(KeyRight)
	if e.cursor != 1 {
		t.Errorf("Expected cursor 1 after right, got %d", e.cursor)
	}
	press(KeyEnd)
	if e.cursor != 3 {
		t.Errorf("Expected cursor 3 after end, got %d", e.cursor)
	}
}

func TestTextEntry_InsertAtCursor(t *testing.T) {
	e := focusedEntry(nil)
	e.SetText("ac")

	in := NewInputState()
	in.SetKey(KeyLeft, true)
	e.HandleInput(in)

	typeString(e, "b")
	if e.Text() != "abc" {
		t.Errorf("Expected %q after interior insert, got %q", "abc", e.Text())
	}
}

func TestTextEntry_IgnoredKeySuppressesCharacter(t *testing.T) {
	e := focusedEntry(nil)
	e.IgnoreKey(KeySpace)

	in := NewInputState()
	in.AddInputChar(' ')
	e.HandleInput(in)

	if e.Text() != "" {
		t.Errorf("Expected ignored space to be suppressed, got %q", e.Text())
	}
}

func TestTextEntry_EnterDropsFocus(t *testing.T) {
	e := focusedEntry(nil)

	in := NewInputState()
	in.SetKey(KeyEnter, true)
	e.HandleInput(in)

	if e.Focused() {
		t.Error("Expected enter to drop focus")
	}
}

func TestTextEntry_ClickTakesFocus(t *testing.T) {
	e := NewTextEntry(Rect{X: 0, Y: 0, W: 200, H: 30}, DefaultTheme(), nil)

	in := NewInputState()
	in.SetMousePos(10, 10)
	in.SetMouseButton(MouseButtonLeft, true)
	e.HandleInput(in)

	if !e.Focused() {
		t.Error("Expected click inside bounds to focus the entry")
	}

	in2 := NewInputState()
	in2.SetMousePos(500, 500)
	in2.SetMouseButton(MouseButtonLeft, true)
	e.HandleInput(in2)

	if e.Focused() {
		t.Error("Expected click outside bounds to drop focus")
	}
}

func TestTextEntry_DisabledIgnoresInput(t *testing.T) {
	e := focusedEntry(nil)
	e.SetEnabled(false)

	in := NewInputState()
	in.AddInputChar('x')
	e.HandleInput(in)

	if e.Text() != "" {
		t.Errorf("Expected disabled entry to ignore typing, got %q", e.Text())
	}
	if e.Focused() {
		t.Error("Expected disabling to drop focus")
	}
}

func TestTextEntry_SetTextBypassesValidator(t *testing.T) {
	v := NewSlugValidator(false)
	e := focusedEntry(v.Validate)

	e.SetText("not a slug!")
	if e.Text() != "not a slug!" {
		t.Errorf("Expected SetText to bypass validation, got %q", e.Text())
	}
}
