package gui

// InteractionState identifies the visual state a widget is drawn in.
// Widget style mutations made through the Styleable capability address one
// state at a time; helpers like a tab list touch all three identically so the
// highlight stays stable regardless of where the mouse is.
type InteractionState uint8

const (
	StateDefault InteractionState = iota
	StateHovered
	StatePressed
	interactionStateCount
)

// String returns a human-readable name for the interaction state.
func (s InteractionState) String() string {
	switch s {
	case StateDefault:
		return "Default"
	case StateHovered:
		return "Hovered"
	case StatePressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// InteractionStates lists every interaction state, in drawing-priority order.
// Iterate this when a style change must apply to all states.
var InteractionStates = [...]InteractionState{StateDefault, StateHovered, StatePressed}

// StateStyle holds the style properties of a widget in one interaction state.
// Mutating these never forces a relayout; widgets here have fixed bounds.
type StateStyle struct {
	FillColor    uint32
	OutlineColor uint32
	OutlineWidth float32
	TextColor    uint32
}

// WidgetStyle holds a widget's StateStyle for each interaction state.
type WidgetStyle [interactionStateCount]StateStyle

// State returns the style for the given interaction state.
// Out-of-range states fall back to StateDefault.
func (ws *WidgetStyle) State(s InteractionState) StateStyle {
	if s >= interactionStateCount {
		s = StateDefault
	}
	return ws[s]
}

// SetAll applies fn to every interaction state's style.
func (ws *WidgetStyle) SetAll(fn func(*StateStyle)) {
	for i := range ws {
		fn(&ws[i])
	}
}

// Styled provides the Styleable capability for widgets that keep a per-state
// WidgetStyle. Embed it in widget types.
type Styled struct {
	Style WidgetStyle
}

// FillColor returns the fill color for the given interaction state.
func (s *Styled) FillColor(state InteractionState) uint32 {
	return s.Style.State(state).FillColor
}

// SetFillColor sets the fill color for the given interaction state.
func (s *Styled) SetFillColor(state InteractionState, color uint32) {
	if state >= interactionStateCount {
		return
	}
	s.Style[state].FillColor = color
}

// OutlineColor returns the outline color for the given interaction state.
func (s *Styled) OutlineColor(state InteractionState) uint32 {
	return s.Style.State(state).OutlineColor
}

// SetOutlineColor sets the outline color for the given interaction state.
func (s *Styled) SetOutlineColor(state InteractionState, color uint32) {
	if state >= interactionStateCount {
		return
	}
	s.Style[state].OutlineColor = color
}

// OutlineWidth returns the outline width for the given interaction state.
func (s *Styled) OutlineWidth(state InteractionState) float32 {
	return s.Style.State(state).OutlineWidth
}

// SetOutlineWidth sets the outline width for the given interaction state.
func (s *Styled) SetOutlineWidth(state InteractionState, width float32) {
	if state >= interactionStateCount {
		return
	}
	s.Style[state].OutlineWidth = width
}

// Theme defines toolkit-wide default appearance and metrics.
type Theme struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Button fills per interaction state
	ButtonFill         uint32
	ButtonHoveredFill  uint32
	ButtonPressedFill  uint32
	ButtonDisabledFill uint32
	ButtonOutline      uint32

	// Text entry
	EntryFill        uint32
	EntryFocusedFill uint32
	EntryOutline     uint32
	CaretColor       uint32

	// Font metrics (monospace cell size, scaled by FontScale)
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Padding
	ButtonPadding float32
	EntryPadding  float32

	// Border
	OutlineWidth float32
}

// DefaultTheme returns the default theme with sensible defaults.
func DefaultTheme() Theme {
	return Theme{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		ButtonFill:         RGBA(50, 50, 50, 255),
		ButtonHoveredFill:  RGBA(70, 70, 70, 255),
		ButtonPressedFill:  RGBA(90, 90, 90, 255),
		ButtonDisabledFill: RGBA(30, 30, 30, 255),
		ButtonOutline:      RGBA(100, 100, 100, 255),

		EntryFill:        RGBA(30, 30, 30, 255),
		EntryFocusedFill: RGBA(40, 40, 50, 255),
		EntryOutline:     RGBA(100, 100, 100, 255),
		CaretColor:       ColorWhite,

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		ButtonPadding: 6,
		EntryPadding:  4,

		OutlineWidth: 1,
	}
}

// ArcadeTheme returns a dark arcade-cabinet style theme.
// Cyan and yellow accents on near-black fills.
func ArcadeTheme() Theme {
	return Theme{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		ButtonFill:         RGBA(40, 40, 40, 255),
		ButtonHoveredFill:  RGBA(60, 80, 100, 255),
		ButtonPressedFill:  RGBA(0, 150, 200, 255),
		ButtonDisabledFill: RGBA(30, 30, 30, 150),
		ButtonOutline:      RGBA(0, 100, 150, 255),

		EntryFill:        RGBA(20, 20, 20, 255),
		EntryFocusedFill: RGBA(30, 40, 50, 255),
		EntryOutline:     RGBA(0, 150, 200, 255),
		CaretColor:       RGBA(255, 200, 0, 255),

		FontScale:  1.5,
		CharWidth:  8,
		CharHeight: 8,

		ButtonPadding: 8,
		EntryPadding:  6,

		OutlineWidth: 1,
	}
}

// MeasureText returns the pixel size of a string in this theme's font.
func (t Theme) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * t.CharWidth * t.FontScale,
		Y: t.CharHeight * t.FontScale,
	}
}

// LineHeight returns the height of one line of text.
func (t Theme) LineHeight() float32 {
	return t.CharHeight * t.FontScale
}

// ButtonStyle builds a button's per-state WidgetStyle from the theme.
func (t Theme) ButtonStyle() WidgetStyle {
	var ws WidgetStyle
	ws[StateDefault] = StateStyle{
		FillColor:    t.ButtonFill,
		OutlineColor: t.ButtonOutline,
		OutlineWidth: t.OutlineWidth,
		TextColor:    t.TextColor,
	}
	ws[StateHovered] = StateStyle{
		FillColor:    t.ButtonHoveredFill,
		OutlineColor: t.ButtonOutline,
		OutlineWidth: t.OutlineWidth,
		TextColor:    t.TextColor,
	}
	ws[StatePressed] = StateStyle{
		FillColor:    t.ButtonPressedFill,
		OutlineColor: t.ButtonOutline,
		OutlineWidth: t.OutlineWidth,
		TextColor:    t.TextColor,
	}
	return ws
}

// EntryStyle builds a text entry's per-state WidgetStyle from the theme.
// Entries look the same hovered or pressed; focus is shown via the caret
// and the focused fill.
func (t Theme) EntryStyle() WidgetStyle {
	base := StateStyle{
		FillColor:    t.EntryFill,
		OutlineColor: t.EntryOutline,
		OutlineWidth: t.OutlineWidth,
		TextColor:    t.TextColor,
	}
	return WidgetStyle{base, base, base}
}
