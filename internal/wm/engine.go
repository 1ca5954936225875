package wm

import "log/slog"

// Engine owns the process-wide window-management state and the one
// Surface used to act on it. It is the receiver for every operation in
// this package; nothing here is held in a package-level variable, unlike
// taowm's and dwm's global xConn/rootXWin pattern (§9).
type Engine struct {
	g *Global
	s Surface

	running bool
}

// NewEngine builds an Engine from a configuration record and a Surface,
// querying the surface for the current monitor layout (dwm's createmon
// loop, driven here by Surface.MonitorRects instead of a direct Xinerama
// call).
func NewEngine(cfg *Config, s Surface, log *slog.Logger) *Engine {
	g := &Global{
		Root:   s.Root(),
		Config: cfg,
		Log:    log,
	}
	e := &Engine{g: g, s: s}
	e.rebuildMonitors()
	return e
}

func (e *Engine) rebuildMonitors() {
	rects := e.s.MonitorRects()
	if len(rects) == 0 {
		rects = []Rect{e.s.ScreenRect()}
	}
	e.g.Monitors = make([]*Monitor, len(rects))
	for i, r := range rects {
		e.g.Monitors[i] = e.newMonitor(i, r)
	}
	e.g.SelMonIdx = 0
}

func (e *Engine) newMonitor(num int, screen Rect) *Monitor {
	m := &Monitor{
		Num:          num,
		ScreenRect:   screen,
		ShowBar:      e.g.Config.ShowBar,
		TopBar:       e.g.Config.TopBar,
		BarHeight:    barHeightForFont(e.g.Config.FontSpec),
		LayoutSymbol: e.g.Config.Layouts[0].Symbol,
	}
	for i := range m.Views {
		m.Views[i].MFact = e.g.Config.MFact
		m.Views[i].Layout = &e.g.Config.Layouts[0]
	}
	e.updateBarPos(m)
	m.BarWin = e.s.CreateBar(m)
	return m
}

// barHeightForFont is a placeholder metric until a real font query is
// wired through the surface: 8 pixels above a typical fixed-font line,
// the same fallback taowm's bar sizing degrades to when font metrics
// aren't available.
func barHeightForFont(fontSpec string) int32 {
	return 18
}

// Scan adopts every already-mapped, non-override-redirect top-level
// window as a client (dwm's main() pre-loop QueryTree walk). Called once,
// before Run starts the event loop.
func (e *Engine) Scan() {
	wins, err := e.s.QueryTree()
	if err != nil {
		e.g.Log.Error("scan: query tree failed", "err", err)
		return
	}
	for _, w := range wins {
		overrideRedirect, mapped, err := e.s.GetWindowAttributes(w)
		if err != nil || overrideRedirect || !mapped {
			continue
		}
		e.manageFromGeometry(w)
	}
}

// Run is the engine's single blocking suspension point (§5): it calls
// Surface.NextEvent synchronously in a plain for loop, dispatches whatever
// it returns, and repeats until an action calls Quit. There is no second
// goroutine feeding a channel here — the concurrency taowm's main.go uses
// for its event pump is deliberately not carried over, since reading the
// next X event is the only thing this loop ever blocks on.
func (e *Engine) Run() {
	e.running = true
	e.s.SelectInputRoot()
	e.s.GrabKeys(e.g.Config.Keys)
	e.g.StatusText = e.s.GetRootPropertyString()
	for _, m := range e.g.Monitors {
		e.DrawBar(m)
	}
	for e.running {
		ev, err := e.s.NextEvent()
		if err != nil {
			e.g.Log.Warn("event loop: error reading next event", "err", err)
			continue
		}
		e.dispatchEvent(ev)
	}
}
