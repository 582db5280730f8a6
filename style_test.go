package gui

import "testing"

func TestStyled_PerStateAccess(t *testing.T) {
	var s Styled

	s.SetFillColor(StateHovered, ColorRed)
	if s.FillColor(StateHovered) != ColorRed {
		t.Errorf("Expected hovered fill %#x, got %#x", ColorRed, s.FillColor(StateHovered))
	}
	if s.FillColor(StateDefault) == ColorRed {
		t.Error("Expected default fill to be untouched")
	}
}

func TestStyled_InvalidStateDegradesGracefully(t *testing.T) {
	var s Styled
	s.SetFillColor(StateDefault, ColorGreen)

	// Reads of an unknown state fall back to the default state.
	if s.FillColor(InteractionState(99)) != ColorGreen {
		t.Error("Expected unknown-state read to fall back to default")
	}

	// Writes to an unknown state are dropped.
	s.SetFillColor(InteractionState(99), ColorRed)
	for _, st := range InteractionStates {
		if s.FillColor(st) == ColorRed {
			t.Errorf("Expected unknown-state write to be dropped, state %v changed", st)
		}
	}
}

func TestWidgetStyle_SetAll(t *testing.T) {
	var ws WidgetStyle
	ws.SetAll(func(st *StateStyle) { st.OutlineWidth = 3 })

	for _, st := range InteractionStates {
		if ws.State(st).OutlineWidth != 3 {
			t.Errorf("Expected SetAll to reach state %v", st)
		}
	}
}

func TestTheme_MeasureText(t *testing.T) {
	theme := DefaultTheme()
	theme.CharWidth = 8
	theme.CharHeight = 8
	theme.FontScale = 2

	size := theme.MeasureText("abc")
	if size.X != 48 {
		t.Errorf("Expected width 48, got %v", size.X)
	}
	if size.Y != 16 {
		t.Errorf("Expected height 16, got %v", size.Y)
	}

	// Runes, not bytes.
	if w := theme.MeasureText("héé").X; w != 48 {
		t.Errorf("Expected rune-based width 48, got %v", w)
	}
}

func TestInteractionState_String(t *testing.T) {
	if StateHovered.String() != "Hovered" {
		t.Errorf("Unexpected name %q", StateHovered.String())
	}
	if InteractionState(99).String() != "Unknown" {
		t.Errorf("Unexpected name %q", InteractionState(99).String())
	}
}
