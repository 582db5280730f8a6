package gui

// Button is a retained push button with a text label. Its appearance per
// interaction state lives in the embedded Styled and can be rewritten at
// runtime, which is how focus cycling highlights it.
type Button struct {
	Styled

	bounds  Rect
	label   string
	enabled bool
	focused bool

	hovered bool
	pressed bool

	onClick func()
}

// NewButton creates a button with the theme's default button style.
func NewButton(bounds Rect, label string, theme Theme, onClick func()) *Button {
	b := &Button{
		bounds:  bounds,
		label:   label,
		enabled: true,
		onClick: onClick,
	}
	b.Style = theme.ButtonStyle()
	return b
}

// Bounds returns the button's screen rectangle.
func (b *Button) Bounds() Rect { return b.bounds }

// SetBounds moves the button.
func (b *Button) SetBounds(bounds Rect) { b.bounds = bounds }

// Label returns the button's text.
func (b *Button) Label() string { return b.label }

// SetLabel changes the button's text.
func (b *Button) SetLabel(label string) { b.label = label }

// IsEnabled reports whether the button accepts input.
func (b *Button) IsEnabled() bool { return b.enabled }

// SetEnabled enables or disables the button. Disabling clears any
// in-progress press.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.pressed = false
		b.hovered = false
	}
}

// Focused reports whether the button holds keyboard focus.
func (b *Button) Focused() bool { return b.focused }

// SetFocused sets the button's keyboard focus flag.
func (b *Button) SetFocused(focused bool) { b.focused = focused }

// Click triggers the button's action. Disabled buttons do nothing.
func (b *Button) Click() {
	if !b.enabled {
		return
	}
	if b.onClick != nil {
		b.onClick()
	}
}

// HandleInput processes hover and mouse clicks for one frame.
func (b *Button) HandleInput(input *InputState) bool {
	if !b.enabled {
		return false
	}

	inside := b.bounds.Contains(input.MousePos())
	b.hovered = inside

	if inside && input.MouseClicked(MouseButtonLeft) {
		b.pressed = true
		b.Click()
		return true
	}
	if b.pressed && input.MouseReleased(MouseButtonLeft) {
		b.pressed = false
	}
	return false
}

// state selects the interaction state the button should be drawn in.
func (b *Button) state() InteractionState {
	switch {
	case b.pressed:
		return StatePressed
	case b.hovered:
		return StateHovered
	default:
		return StateDefault
	}
}

// Draw appends the button's fill, outline and centered label.
func (b *Button) Draw(dl *DrawList, theme Theme) {
	st := b.Style.State(b.state())

	dl.AddRect(b.bounds.X, b.bounds.Y, b.bounds.W, b.bounds.H, st.FillColor)
	if st.OutlineWidth > 0 {
		dl.AddRectOutline(b.bounds.X, b.bounds.Y, b.bounds.W, b.bounds.H, st.OutlineColor, st.OutlineWidth)
	}

	textColor := st.TextColor
	if !b.enabled {
		textColor = theme.TextDisabledColor
	}
	size := theme.MeasureText(b.label)
	tx := b.bounds.X + (b.bounds.W-size.X)/2
	ty := b.bounds.Y + (b.bounds.H-size.Y)/2
	dl.AddText(tx, ty, b.label, textColor, theme.FontScale, theme.CharWidth, theme.CharHeight)
}
