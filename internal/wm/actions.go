package wm

import "reflect"

// Dispatch runs a single bound action (§6/§9). Every key and button
// binding ultimately calls this with its own Action/Arg pair; this is the
// one place that knows how to interpret each Action, replacing the
// function-pointer-plus-union a C binding table would use.
func (e *Engine) Dispatch(action Action, arg Arg) {
	switch action {
	case ActionFocusNextClient:
		e.FocusStack(1)
	case ActionFocusPrevClient:
		e.FocusStack(-1)
	case ActionFocusNextMonitor:
		e.FocusMon(1)
	case ActionFocusPrevMonitor:
		e.FocusMon(-1)
	case ActionSendNextMonitor:
		e.sendSelToMon(1)
	case ActionSendPrevMonitor:
		e.sendSelToMon(-1)
	case ActionToggleBar:
		e.ToggleBar()
	case ActionSetLayout:
		e.SetLayout(arg.LayoutIx)
	case ActionSetMFact:
		e.SetMFact(arg.Float)
	case ActionZoom:
		e.Zoom()
	case ActionView:
		e.View(arg.View)
	case ActionTag:
		e.Tag(arg.View)
	case ActionKillClient:
		e.KillClient()
	case ActionToggleFloating:
		e.ToggleFloating()
	case ActionMoveMouse:
		e.MoveMouse()
	case ActionResizeMouse:
		e.ResizeMouse()
	case ActionSpawn:
		e.Spawn(arg.Argv)
	case ActionQuit:
		e.Quit()
	}
}

func (e *Engine) sendSelToMon(dir int) {
	c := e.g.SelMon().SelView().Selected()
	if c == nil {
		return
	}
	e.SendMon(c, e.dirToMon(dir))
}

// View switches the globally selected monitor's selected view, if it
// differs from the current one (dwm's view).
func (e *Engine) View(idx int) {
	m := e.g.SelMon()
	if idx == m.SelViewIdx {
		return
	}
	m.SelViewIdx = idx
	e.Arrange(m)
}

// Tag moves the selected client to view idx on its own monitor (dwm's
// tag).
func (e *Engine) Tag(idx int) {
	c := e.g.SelMon().SelView().Selected()
	if c == nil {
		return
	}
	Detach(c)
	DetachStack(c)
	c.View = idx
	Attach(c)
	AttachStack(c)
	e.Arrange(c.Monitor)
}

// Zoom promotes the selected client to master. If it is already master,
// the next tiled client is promoted instead; with one tiled client or
// none, it is a no-op. Floating clients and the monocle layout are
// excluded (dwm's zoom): monocle's master is meaningless since every
// client fills the same rectangle.
func (e *Engine) Zoom() {
	v := e.g.SelMon().SelView()
	if v.Layout.Arrange == nil || reflect.ValueOf(v.Layout.Arrange).Pointer() == reflect.ValueOf(monocleArrange).Pointer() {
		return
	}
	c := v.Selected()
	if c == nil || c.Floating {
		return
	}
	if c == NextTiled(v.clients) {
		c = NextTiled(c.next)
		if c == nil {
			return
		}
	}
	Detach(c)
	Attach(c)
	e.Focus(c)
	e.Arrange(c.Monitor)
}

// SetMFact adjusts the selected view's master-area fraction by delta. A
// result outside [0.1, 0.9] is ignored and MFact stays as it was. Also a
// no-op when the view's layout doesn't arrange (floating has no master
// fraction to speak of).
func (e *Engine) SetMFact(delta float64) {
	v := e.g.SelMon().SelView()
	if v.Layout.Arrange == nil {
		return
	}
	f := v.MFact + delta
	if f < 0.1 || f > 0.9 {
		return
	}
	v.MFact = f
	e.Arrange(e.g.SelMon())
}

// SetLayout sets the selected view's layout to Config.Layouts[idx] (dwm's
// setlayout). Re-arranges if there is a selection, otherwise just
// refreshes the bar's layout symbol.
func (e *Engine) SetLayout(idx int) {
	m := e.g.SelMon()
	if idx < 0 || idx >= len(e.g.Config.Layouts) {
		return
	}
	v := m.SelView()
	v.Layout = &e.g.Config.Layouts[idx]
	m.LayoutSymbol = v.Layout.Symbol
	if v.Selected() != nil {
		e.Arrange(m)
	} else {
		e.DrawBar(m)
	}
}

// ToggleBar flips the selected monitor's bar visibility (dwm's togglebar).
func (e *Engine) ToggleBar() {
	m := e.g.SelMon()
	m.ShowBar = !m.ShowBar
	e.updateBarPos(m)
	e.s.MoveResize(m.BarWin, Rect{X: m.WindowRect.X, Y: m.BarY, Width: m.WindowRect.Width, Height: m.BarHeight}, 0)
	e.Arrange(m)
}

// Spawn runs argv as a detached child process (dwm's spawn), logging
// failure instead of treating it as fatal: a missing or broken launcher
// binding should not take the engine down.
func (e *Engine) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	if err := e.s.Spawn(argv); err != nil {
		e.g.Log.Warn("spawn failed", "argv", argv, "err", err)
	}
}

// Quit signals the main loop to stop after the current event (dwm's
// quit).
func (e *Engine) Quit() {
	e.running = false
}
