package wm

import (
	"io"
	"log/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSurface is a minimal Surface satisfying the interface without a real
// X server, the same role taowm's real connection would play but driven
// entirely by call recordings and canned replies.
type fakeSurface struct {
	screen    Rect
	monitors  []Rect
	hints     map[Window]SizeHints
	titles    map[Window]string
	transient map[Window]Window
	geometry  map[Window]WindowAttrs

	moved   map[Window]Rect
	borders map[Window]int32
	focused Window
	raised  []Window
}

func newFakeSurface(screen Rect) *fakeSurface {
	return &fakeSurface{
		screen:    screen,
		monitors:  []Rect{screen},
		hints:     map[Window]SizeHints{},
		titles:    map[Window]string{},
		transient: map[Window]Window{},
		geometry:  map[Window]WindowAttrs{},
		moved:     map[Window]Rect{},
		borders:   map[Window]int32{},
	}
}

func (f *fakeSurface) NextEvent() (Event, error)       { return nil, nil }
func (f *fakeSurface) Root() Window                    { return 0 }
func (f *fakeSurface) ScreenRect() Rect                { return f.screen }
func (f *fakeSurface) MonitorRects() []Rect            { return f.monitors }
func (f *fakeSurface) QueryTree() ([]Window, error)    { return nil, nil }
func (f *fakeSurface) GetWindowAttributes(w Window) (bool, bool, error) {
	return false, true, nil
}
func (f *fakeSurface) GetGeometry(w Window) (WindowAttrs, error) {
	return f.geometry[w], nil
}
func (f *fakeSurface) GetTransientFor(w Window) (Window, bool) {
	t, ok := f.transient[w]
	return t, ok
}
func (f *fakeSurface) GetSizeHints(w Window) SizeHints { return f.hints[w] }
func (f *fakeSurface) GetWMProtocols(w Window) (bool, bool) { return false, false }
func (f *fakeSurface) GetWMHints(w Window) bool             { return false }
func (f *fakeSurface) ClearUrgentHint(w Window)             {}
func (f *fakeSurface) GetWindowTitle(w Window) string       { return f.titles[w] }
func (f *fakeSurface) GetWMState(w Window) (WMState, bool)  { return WMStateNormal, true }
func (f *fakeSurface) GetRootPropertyString() string        { return "" }

func (f *fakeSurface) SelectInputManaged(w Window)            {}
func (f *fakeSurface) SelectInputRoot()                       {}
func (f *fakeSurface) ConfigureRaw(ev ConfigureRequestEvent)   {}
func (f *fakeSurface) NotifyUnchanged(w Window, r Rect, bw int32) {}
func (f *fakeSurface) MoveResize(w Window, r Rect, bw int32) {
	f.moved[w] = r
	f.borders[w] = bw
}
func (f *fakeSurface) MoveWindow(w Window, x, y int32) {
	r := f.moved[w]
	r.X, r.Y = x, y
	f.moved[w] = r
}
func (f *fakeSurface) SetBorderColor(w Window, rgb uint32) {}
func (f *fakeSurface) Raise(w Window)                      { f.raised = append(f.raised, w) }
func (f *fakeSurface) StackBelow(w, sibling Window)         {}
func (f *fakeSurface) DrainEnterNotify()                    {}
func (f *fakeSurface) MapWindow(w Window)                   {}
func (f *fakeSurface) UnmapWindow(w Window)                  {}
func (f *fakeSurface) ReparentToRoot(w Window)               {}
func (f *fakeSurface) SetInputFocus(w Window)                { f.focused = w }
func (f *fakeSurface) SetWMState(w Window, state WMState)    {}
func (f *fakeSurface) SetFullscreenState(w Window, fs bool)  {}
func (f *fakeSurface) SendDeleteWindow(w Window)             {}
func (f *fakeSurface) KillClient(w Window)                   {}

func (f *fakeSurface) GrabKeys(bindings []KeyBinding)             {}
func (f *fakeSurface) GrabButtons(bindings []ButtonBinding, w Window) {}
func (f *fakeSurface) GrabAnyButton(w Window)                     {}
func (f *fakeSurface) UngrabButtons(w Window)                     {}
func (f *fakeSurface) NumLockMask() uint16                        { return 0 }

func (f *fakeSurface) GrabPointerForMove() bool   { return true }
func (f *fakeSurface) GrabPointerForResize() bool { return true }
func (f *fakeSurface) UngrabPointer()             {}
func (f *fakeSurface) QueryPointer() (int32, int32, uint16) { return 0, 0, 0 }
func (f *fakeSurface) WarpPointer(x, y int32)     {}

func (f *fakeSurface) CreateBar(m *Monitor) Window             { return 0 }
func (f *fakeSurface) DrawBar(m *Monitor, sections []BarSection) {}

func (f *fakeSurface) Spawn(argv []string) error { return nil }

func (f *fakeSurface) Close() {}

var _ Surface = (*fakeSurface)(nil)

// newTestEngine builds an Engine over a single 1920x1080 monitor with a
// 14px top bar, border width 1 and the given mfact — the fixture spec.md's
// worked examples use throughout, where mfact is 0.55.
func newTestEngine(mfact float64) (*Engine, *fakeSurface) {
	f := newFakeSurface(Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	cfg := DefaultConfig()
	cfg.MFact = mfact
	cfg.BorderPx = 1
	e := NewEngine(cfg, f, testLogger())
	m := e.g.SelMon()
	m.BarHeight = 14
	m.TopBar = true
	m.BarY = m.ScreenRect.Y
	m.WindowRect = Rect{X: m.ScreenRect.X, Y: m.ScreenRect.Y + 14, Width: m.ScreenRect.Width, Height: m.ScreenRect.Height - 14}
	for i := range m.Views {
		m.Views[i].MFact = mfact
	}
	return e, f
}

// manageFixed maps win with a fixed initial geometry that does not cover
// the whole monitor, so Manage doesn't mistake it for a fullscreen client.
func manageFixed(e *Engine, win Window) {
	e.Manage(win, WindowAttrs{X: 0, Y: 0, Width: 100, Height: 100})
}
