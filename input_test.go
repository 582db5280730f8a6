package gui

import "testing"

func TestInputState_KeyEdges(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyTab, true)
	if !in.KeyDown(KeyTab) || !in.KeyPressed(KeyTab) {
		t.Error("Expected down and pressed on fresh press")
	}

	in.Reset()
	if !in.KeyDown(KeyTab) {
		t.Error("Expected key to stay down across frames")
	}
	if in.KeyPressed(KeyTab) {
		t.Error("Expected pressed edge to clear after Reset")
	}

	in.SetKey(KeyTab, false)
	if in.KeyDown(KeyTab) || !in.KeyReleased(KeyTab) {
		t.Error("Expected released edge on release")
	}
}

func TestInputState_KeyRepeat(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyBackspace, true)
	if !in.KeyRepeated(KeyBackspace) {
		t.Error("Expected repeat on the initial press")
	}

	in.Reset()
	if in.KeyRepeated(KeyBackspace) {
		t.Error("Expected no repeat before the delay elapses")
	}

	in.UpdateKeyRepeat(KeyRepeatDelay + KeyRepeatInterval)
	if !in.KeyRepeated(KeyBackspace) {
		t.Error("Expected repeat after holding past the delay")
	}
}

func TestInputState_MouseEdges(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) {
		t.Error("Expected clicked edge on fresh press")
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("Expected no clicked edge while held")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) {
		t.Error("Expected released edge on release")
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !r.Contains(Vec2{X: 15, Y: 15}) {
		t.Error("Expected interior point to be contained")
	}
	if r.Contains(Vec2{X: 30, Y: 15}) {
		t.Error("Expected point on the far edge to be excluded")
	}
	if r.Contains(Vec2{X: 5, Y: 15}) {
		t.Error("Expected outside point to be excluded")
	}
}
