package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns a retained widget tree and drives it once per frame: tab lists
// first, then widget input, then drawing.
type GUI struct {
	renderer Renderer
	theme    Theme

	widgets  []Widget
	tabLists []*TabList
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithTheme sets the GUI theme.
func WithTheme(theme Theme) GUIOption {
	return func(g *GUI) { g.theme = theme }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		theme:    DefaultTheme(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Add registers a widget. Widgets receive input and draw in registration
// order.
func (g *GUI) Add(w Widget) {
	g.widgets = append(g.widgets, w)
}

// AddTabList registers a tab list. Tab lists see input before widgets, so
// a cycle key never leaks into a focused widget on the same frame.
func (g *GUI) AddTabList(tl *TabList) {
	g.tabLists = append(g.tabLists, tl)
}

// Theme returns the current theme.
func (g *GUI) Theme() Theme {
	return g.theme
}

// SetTheme sets the theme.
func (g *GUI) SetTheme(theme Theme) {
	g.theme = theme
}

// Frame processes one frame: input for every tab list and widget, then a
// full redraw.
func (g *GUI) Frame(input *InputState, displaySize Vec2) error {
	for _, tl := range g.tabLists {
		tl.Update(input)
	}
	for _, w := range g.widgets {
		w.HandleInput(input)
	}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.SetFontTexture(g.renderer.FontTextureID())
	dl.PushClipRect(0, 0, displaySize.X, displaySize.Y)
	for _, w := range g.widgets {
		w.Draw(dl, g.theme)
	}
	dl.PopClipRect()
	dl.Finalize()

	return g.renderer.Render(dl)
}

// Resize informs the renderer of a new display size.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
