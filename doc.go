/*
Package gui is a small retained-mode widget toolkit for games. Widgets are
created once, keep their own state and per-interaction-state styles, and
are driven by a GUI instance once per frame.

Basic usage:

	renderer, _ := opengl.NewRenderer(width, height)
	ui := gui.New(renderer, gui.WithTheme(gui.ArcadeTheme()))

	theme := ui.Theme()
	play := gui.NewButton(gui.Rect{X: 20, Y: 20, W: 120, H: 32}, "Play", theme, onPlay)
	quit := gui.NewButton(gui.Rect{X: 20, Y: 60, W: 120, H: 32}, "Quit", theme, onQuit)
	ui.Add(play)
	ui.Add(quit)

	tabs := gui.NewTabList(
		[]gui.TabStop{play, quit},
		gui.RGBA(0, 80, 120, 255), gui.ColorCyan,
		gui.KeyTab, gui.KeyEnter,
	)
	ui.AddTabList(tabs)

	for !window.ShouldClose() {
		// feed input into an InputState, then:
		ui.Frame(input, displaySize)
	}

Text entries accept a ValidateFunc that vets every prospective edit before
it is committed; SlugValidator is a ready-made one for identifier-like
values.
*/
package gui
