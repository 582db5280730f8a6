package gui

import "testing"

func TestButton_ClickInsideBounds(t *testing.T) {
	clicks := 0
	b := NewButton(Rect{X: 10, Y: 10, W: 100, H: 30}, "OK", DefaultTheme(), func() { clicks++ })

	in := NewInputState()
	in.SetMousePos(50, 20)
	in.SetMouseButton(MouseButtonLeft, true)

	if !b.HandleInput(in) {
		t.Error("Expected click inside bounds to be consumed")
	}
	if clicks != 1 {
		t.Errorf("Expected 1 click, got %d", clicks)
	}
}

func TestButton_ClickOutsideBounds(t *testing.T) {
	clicks := 0
	b := NewButton(Rect{X: 10, Y: 10, W: 100, H: 30}, "OK", DefaultTheme(), func() { clicks++ })

	in := NewInputState()
	in.SetMousePos(200, 200)
	in.SetMouseButton(MouseButtonLeft, true)

	b.HandleInput(in)
	if clicks != 0 {
		t.Errorf("Expected no click outside bounds, got %d", clicks)
	}
}

func TestButton_DisabledIgnoresInput(t *testing.T) {
	clicks := 0
	b := NewButton(Rect{X: 10, Y: 10, W: 100, H: 30}, "OK", DefaultTheme(), func() { clicks++ })
	b.SetEnabled(false)

	in := NewInputState()
	in.SetMousePos(50, 20)
	in.SetMouseButton(MouseButtonLeft, true)

	b.HandleInput(in)
	b.Click()
	if clicks != 0 {
		t.Errorf("Expected disabled button to never fire, got %d", clicks)
	}
}

func TestButton_ClickDirect(t *testing.T) {
	clicks := 0
	b := NewButton(Rect{}, "OK", DefaultTheme(), func() { clicks++ })

	b.Click()
	if clicks != 1 {
		t.Errorf("Expected direct Click to fire, got %d", clicks)
	}
}

func TestButton_HoverState(t *testing.T) {
	b := NewButton(Rect{X: 0, Y: 0, W: 50, H: 20}, "OK", DefaultTheme(), nil)

	in := NewInputState()
	in.SetMousePos(25, 10)
	b.HandleInput(in)
	if b.state() != StateHovered {
		t.Errorf("Expected hovered state, got %v", b.state())
	}

	in.SetMousePos(100, 100)
	b.HandleInput(in)
	if b.state() != StateDefault {
		t.Errorf("Expected default state, got %v", b.state())
	}
}
