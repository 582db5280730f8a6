package gui

// Widget is the minimal contract every retained widget satisfies. The
// toolkit never inspects concrete widget types; richer behavior is
// discovered through the capability interfaces below.
type Widget interface {
	// Bounds returns the widget's screen-space rectangle.
	Bounds() Rect

	// Draw appends the widget's geometry to the draw list.
	Draw(dl *DrawList, theme Theme)

	// HandleInput processes mouse and keyboard input for one frame.
	// It reports whether the widget consumed the input.
	HandleInput(input *InputState) bool
}

// Styleable is implemented by widgets whose per-state colors and outline
// can be read and rewritten at runtime.
type Styleable interface {
	FillColor(state InteractionState) uint32
	SetFillColor(state InteractionState, color uint32)
	OutlineColor(state InteractionState) uint32
	SetOutlineColor(state InteractionState, color uint32)
	OutlineWidth(state InteractionState) float32
	SetOutlineWidth(state InteractionState, width float32)
}

// InputFocusable is implemented by widgets that can hold keyboard focus.
type InputFocusable interface {
	Focused() bool
	SetFocused(focused bool)
}

// Enableable is implemented by widgets that can be disabled. Disabled
// widgets still draw but ignore input and activation.
type Enableable interface {
	IsEnabled() bool
	SetEnabled(enabled bool)
}

// Clickable is implemented by widgets with a primary activation action
// that can be triggered without a mouse.
type Clickable interface {
	Click()
}

// KeyFilterer is implemented by widgets that can be told to ignore a key.
// A focused text entry, for example, must not type the key that a tab
// list uses for cycling.
type KeyFilterer interface {
	IgnoreKey(key Key)
}

// TabStop is the capability set a widget needs to participate in keyboard
// focus cycling.
type TabStop interface {
	Widget
	Styleable
	InputFocusable
	Enableable
}
