package gui

import (
	"log/slog"
	"os"
)

var tabLogLevel = new(slog.LevelVar)

// tabLogger reports focus movement. Silent unless SetVerbose(true).
var tabLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: tabLogLevel}))

func init() {
	tabLogLevel.Set(slog.LevelWarn)
}

// SetVerbose enables debug logging of focus cycling.
func SetVerbose(verbose bool) {
	if verbose {
		tabLogLevel.Set(slog.LevelDebug)
	} else {
		tabLogLevel.Set(slog.LevelWarn)
	}
}

// focusOutlineWidth is the outline width applied to the focused widget.
const focusOutlineWidth = 2

// trackedWidget pairs a widget with the style it is restored to when
// focus moves away. The restore values are captured once at construction
// and never change afterwards.
type trackedWidget struct {
	widget TabStop

	fillColor    uint32
	outlineColor uint32
	outlineWidth float32
}

// TabList cycles keyboard focus through a fixed, ordered list of widgets.
// One key advances the cursor, another activates the focused widget. The
// focused widget is highlighted by rewriting its style in every
// interaction state, so the highlight survives hovering and pressing.
//
// The list keeps its own previous-frame key state, so holding the cycle
// key down advances exactly once.
type TabList struct {
	widgets []trackedWidget

	highlightFill    uint32
	highlightOutline uint32

	cycleKey  Key
	selectKey Key

	cursor int
	active bool
	wrap   bool

	prevCycleDown  bool
	prevSelectDown bool
}

// TabListOption configures a TabList.
type TabListOption func(*TabList)

// NoWraparound makes the cursor stop at the last widget instead of
// returning to the first.
func NoWraparound() TabListOption {
	return func(tl *TabList) { tl.wrap = false }
}

// NewTabList creates a tab list over the given widgets, in order. The
// highlight colors replace each focused widget's fill and outline; on
// losing focus the widget's fill is restored to what it was here, its
// outline cleared.
//
// Widgets that can filter keys are told to ignore the cycle key, so a
// focused text entry does not type it.
func NewTabList(widgets []TabStop, highlightFill, highlightOutline uint32, cycleKey, selectKey Key, opts ...TabListOption) *TabList {
	tl := &TabList{
		widgets:          make([]trackedWidget, 0, len(widgets)),
		highlightFill:    highlightFill,
		highlightOutline: highlightOutline,
		cycleKey:         cycleKey,
		selectKey:        selectKey,
		cursor:           -1,
		active:           true,
		wrap:             true,
	}
	for _, w := range widgets {
		tl.widgets = append(tl.widgets, trackedWidget{
			widget:       w,
			fillColor:    w.FillColor(StateDefault),
			outlineColor: ColorBlack,
			outlineWidth: 0,
		})
		if kf, ok := w.(KeyFilterer); ok {
			kf.IgnoreKey(cycleKey)
		}
	}
	for _, opt := range opts {
		opt(tl)
	}
	return tl
}

// SetActive enables or disables the tab list. An inactive list ignores
// input entirely; the current highlight stays in place.
func (tl *TabList) SetActive(active bool) { tl.active = active }

// IsActive reports whether the tab list is processing input.
func (tl *TabList) IsActive() bool { return tl.active }

// Cursor returns the focused widget's index, or -1 when nothing is
// focused.
func (tl *TabList) Cursor() int { return tl.cursor }

// IsValidSelection reports whether the cursor points at a widget.
func (tl *TabList) IsValidSelection() bool {
	return tl.cursor >= 0 && tl.cursor < len(tl.widgets)
}

// FocusedWidget returns the focused widget, or nil when nothing is
// focused.
func (tl *TabList) FocusedWidget() TabStop {
	if !tl.IsValidSelection() {
		return nil
	}
	return tl.widgets[tl.cursor].widget
}

// SetFocus moves focus to the given widget. Widgets not in the list are
// ignored.
func (tl *TabList) SetFocus(w TabStop) {
	for i := range tl.widgets {
		if tl.widgets[i].widget == w {
			tl.restore()
			tl.cursor = i
			tl.applyHighlight()
			tabLogger.Debug("focus set", "index", i)
			return
		}
	}
	tabLogger.Debug("focus target not tracked")
}

// ClearFocus removes the highlight and resets the cursor.
func (tl *TabList) ClearFocus() {
	tl.restore()
	tl.cursor = -1
}

// Update processes one frame of input. At most one action happens per
// call, cycling taking priority over selection; each requires a fresh
// key press. Inactive lists do nothing, not even key tracking.
func (tl *TabList) Update(input *InputState) {
	if !tl.active {
		return
	}

	cycleDown := input.KeyDown(tl.cycleKey)
	selectDown := input.KeyDown(tl.selectKey)

	switch {
	case cycleDown && !tl.prevCycleDown:
		tl.advance()
	case selectDown && !tl.prevSelectDown:
		tl.activate()
	}

	tl.prevCycleDown = cycleDown
	tl.prevSelectDown = selectDown
}

// advance moves the cursor to the next widget, restoring the old one's
// style and highlighting the new one.
func (tl *TabList) advance() {
	if len(tl.widgets) == 0 {
		return
	}

	tl.restore()

	tl.cursor++
	if tl.cursor >= len(tl.widgets) {
		if tl.wrap {
			tl.cursor = 0
		} else {
			tl.cursor = len(tl.widgets) - 1
		}
	}

	tl.applyHighlight()
	tabLogger.Debug("focus advanced", "index", tl.cursor)
}

// activate clicks the focused widget, if it is enabled and clickable.
func (tl *TabList) activate() {
	if !tl.IsValidSelection() {
		return
	}
	w := tl.widgets[tl.cursor].widget
	if !w.IsEnabled() {
		tabLogger.Debug("select on disabled widget", "index", tl.cursor)
		return
	}
	if c, ok := w.(Clickable); ok {
		tabLogger.Debug("widget activated", "index", tl.cursor)
		c.Click()
	}
}

// applyHighlight rewrites the focused widget's style in every interaction
// state, so hover and press cannot hide the focus ring.
func (tl *TabList) applyHighlight() {
	if !tl.IsValidSelection() {
		return
	}
	w := tl.widgets[tl.cursor].widget
	for _, st := range InteractionStates {
		w.SetFillColor(st, tl.highlightFill)
		w.SetOutlineColor(st, tl.highlightOutline)
		w.SetOutlineWidth(st, focusOutlineWidth)
	}
	w.SetFocused(true)
}

// restore returns the focused widget to its captured style.
func (tl *TabList) restore() {
	if !tl.IsValidSelection() {
		return
	}
	tracked := tl.widgets[tl.cursor]
	for _, st := range InteractionStates {
		tracked.widget.SetFillColor(st, tracked.fillColor)
		tracked.widget.SetOutlineColor(st, tracked.outlineColor)
		tracked.widget.SetOutlineWidth(st, tracked.outlineWidth)
	}
	tracked.widget.SetFocused(false)
}
