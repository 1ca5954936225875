package wm

// dispatchEvent is the fixed event-type switch the main loop calls once
// per NextEvent (§4.8). Event types the engine has no use for are never
// translated by the Surface in the first place, so there is no default
// case here to silently ignore them.
func (e *Engine) dispatchEvent(ev Event) {
	switch ev := ev.(type) {
	case MapRequestEvent:
		e.manageFromGeometry(ev.Win)
	case UnmapNotifyEvent:
		e.Unmanage(ev.Win, false)
	case DestroyNotifyEvent:
		e.Unmanage(ev.Win, true)
	case ConfigureRequestEvent:
		e.handleConfigureRequest(ev)
	case ConfigureNotifyEvent:
		e.handleConfigureNotify(ev)
	case PropertyNotifyEvent:
		e.handlePropertyNotify(ev)
	case ClientMessageEvent:
		e.handleClientMessage(ev)
	case EnterNotifyEvent:
		e.handleEnterNotify(ev)
	case FocusInEvent:
		e.handleFocusIn(ev)
	case ButtonPressEvent:
		e.handleButtonPress(ev)
	case KeyPressEvent:
		e.handleKeyPress(ev)
	case ExposeEvent:
		e.handleExpose(ev)
	case MappingNotifyEvent:
		e.s.GrabKeys(e.g.Config.Keys)
	case MotionNotifyEvent:
		// No action outside the restricted mouse-move/resize pumps.
	}
}

// handleConfigureRequest honors a client's own ConfigureWindow request
// when it is floating or its view's layout doesn't arrange, and otherwise
// just synthesizes a ConfigureNotify telling it nothing changed — tiled
// clients do not get to move themselves (dwm's configurerequest).
func (e *Engine) handleConfigureRequest(ev ConfigureRequestEvent) {
	c := e.WindowToClient(ev.Win)
	if c == nil {
		e.s.ConfigureRaw(ev)
		return
	}
	const cwBorderWidth = 1 << 4
	if ev.ValueMask&cwBorderWidth != 0 {
		c.BW = ev.BorderWidth
		return
	}
	if !c.Floating && c.Monitor.Views[c.View].Layout.Arrange != nil {
		e.s.NotifyUnchanged(c.Win, c.Rect, c.BW)
		return
	}
	const cwX, cwY, cwWidth, cwHeight = 1 << 0, 1 << 1, 1 << 2, 1 << 3
	r := c.Rect
	if ev.ValueMask&cwX != 0 {
		r.X = c.Monitor.ScreenRect.X + ev.X
	}
	if ev.ValueMask&cwY != 0 {
		r.Y = c.Monitor.ScreenRect.Y + ev.Y
	}
	if ev.ValueMask&cwWidth != 0 {
		r.Width = ev.Width
	}
	if ev.ValueMask&cwHeight != 0 {
		r.Height = ev.Height
	}
	if c.Floating {
		if r.X+r.Width > c.Monitor.ScreenRect.X+c.Monitor.ScreenRect.Width {
			r.X = c.Monitor.ScreenRect.X + (c.Monitor.ScreenRect.Width/2 - r.Width/2)
		}
		if r.Y+r.Height > c.Monitor.ScreenRect.Y+c.Monitor.ScreenRect.Height {
			r.Y = c.Monitor.ScreenRect.Y + (c.Monitor.ScreenRect.Height/2 - r.Height/2)
		}
	}
	e.resizeClient(c, r)
}

func (e *Engine) handleConfigureNotify(ev ConfigureNotifyEvent) {
	if ev.Win != e.g.Root {
		return
	}
	if e.UpdateGeom() {
		for _, m := range e.g.Monitors {
			e.s.MoveResize(m.BarWin, Rect{X: m.WindowRect.X, Y: m.BarY, Width: m.WindowRect.Width, Height: m.BarHeight}, 0)
		}
		e.Arrange(nil)
	}
}

func (e *Engine) handlePropertyNotify(ev PropertyNotifyEvent) {
	if ev.Win == e.g.Root {
		if ev.Atom == "WM_NAME" {
			e.g.StatusText = e.s.GetRootPropertyString()
			e.DrawBar(e.g.SelMon())
		}
		return
	}
	c := e.WindowToClient(ev.Win)
	if c == nil {
		return
	}
	switch ev.Atom {
	case "WM_TRANSIENT_FOR":
		if tw, ok := e.s.GetTransientFor(c.Win); ok && !c.Floating {
			c.Floating = e.WindowToClient(tw) != nil
			e.Arrange(c.Monitor)
		}
	case "WM_NORMAL_HINTS":
		e.UpdateSizeHints(c)
	case "WM_HINTS":
		e.UpdateWMHints(c)
		e.DrawBar(c.Monitor)
	case "WM_NAME", "_NET_WM_NAME":
		e.UpdateTitle(c)
		if c == c.Monitor.Views[c.View].sel {
			e.DrawBar(c.Monitor)
		}
	}
}

func (e *Engine) handleClientMessage(ev ClientMessageEvent) {
	c := e.WindowToClient(ev.Win)
	if c == nil || ev.Type != "_NET_WM_STATE" || len(ev.Data) < 2 {
		return
	}
	const netWMStateAdd = 1
	e.SetFullscreen(c, ev.Data[0] == netWMStateAdd)
}

// SetFullscreen toggles c's fullscreen state (dwm's inline clientmessage
// handling): entering fullscreen saves the prior floating/border/geometry
// state and stretches the client across its monitor's whole screen
// rectangle; leaving restores exactly what was saved.
func (e *Engine) SetFullscreen(c *Client, fullscreen bool) {
	if fullscreen && !c.Fullscreen {
		e.s.SetFullscreenState(c.Win, true)
		c.OldFloating = c.Floating
		c.OldBW = c.BW
		c.BW = 0
		c.Floating = true
		c.Fullscreen = true
		e.resizeClient(c, c.Monitor.ScreenRect)
		e.s.Raise(c.Win)
	} else if !fullscreen && c.Fullscreen {
		e.s.SetFullscreenState(c.Win, false)
		c.Floating = c.OldFloating
		c.BW = c.OldBW
		c.Fullscreen = false
		e.resizeClient(c, c.OldRect)
		e.Arrange(c.Monitor)
	}
}

func (e *Engine) handleEnterNotify(ev EnterNotifyEvent) {
	const notifyNormal, notifyInferior = 0, 2
	if ev.Win != e.g.Root && !(ev.Mode == notifyNormal && ev.Detail != notifyInferior) {
		return
	}
	m := e.WindowToMonitor(ev.Win)
	if m != nil && m != e.g.SelMon() {
		e.unfocus(e.g.SelMon().SelView().Selected(), true)
		e.g.SelMonIdx = m.Num
	}
	e.Focus(e.WindowToClient(ev.Win))
}

func (e *Engine) handleFocusIn(ev FocusInEvent) {
	sel := e.g.SelMon().SelView().Selected()
	if sel != nil && sel.Win != ev.Win {
		e.s.SetInputFocus(sel.Win)
	}
}

func (e *Engine) handleExpose(ev ExposeEvent) {
	if m := e.WindowToMonitor(ev.Win); m != nil {
		e.DrawBar(m)
	}
}

func (e *Engine) handleButtonPress(ev ButtonPressEvent) {
	m := e.WindowToMonitor(ev.Win)
	if m != nil && m != e.g.SelMon() {
		e.unfocus(e.g.SelMon().SelView().Selected(), true)
		e.g.SelMonIdx = m.Num
		e.Focus(nil)
	}

	click := ClickRootWindow
	var tagClicked = -1
	if m != nil && ev.Win == m.BarWin {
		click, tagClicked = e.classifyBarClick(m, ev.RootX)
	} else if c := e.WindowToClient(ev.Win); c != nil {
		e.Focus(c)
		click = ClickClientWindow
	}

	clean := CleanMask(ev.State, e.s.NumLockMask())
	for _, b := range e.g.Config.Buttons {
		if b.Click != click || b.Button != ev.Button || CleanMask(b.Mod, e.s.NumLockMask()) != clean {
			continue
		}
		arg := b.Arg
		if click == ClickTagLabel && tagClicked >= 0 {
			arg = Arg{View: tagClicked}
			if b.Action == ActionView {
				e.View(tagClicked)
				continue
			}
		}
		e.Dispatch(b.Action, arg)
	}
}

// classifyBarClick mirrors dwm's buttonpress bar-region walk: tag labels
// left to right by text width, then the layout symbol, then status text
// pinned to the right edge, with whatever remains in the middle counted as
// the window-title region.
func (e *Engine) classifyBarClick(m *Monitor, x int32) (ClickArea, int) {
	cur := int32(0)
	for i, label := range e.g.Config.Tags {
		w := textWidth(label)
		if x < cur+w {
			return ClickTagLabel, i
		}
		cur += w
	}
	ltw := textWidth(m.LayoutSymbol)
	if x < cur+ltw {
		return ClickLayoutSymbol, -1
	}
	statusW := textWidth(e.g.StatusText)
	if x > m.WindowRect.X+m.WindowRect.Width-statusW {
		return ClickStatusText, -1
	}
	return ClickWinTitle, -1
}

// textWidth is a placeholder metric until real font metrics are wired
// through the surface (see barHeightForFont): six pixels per rune plus a
// fixed margin, enough to keep bar-click regions roughly proportional to
// label length without depending on a live font.
func textWidth(s string) int32 {
	return int32(len([]rune(s))*6 + 12)
}

func (e *Engine) handleKeyPress(ev KeyPressEvent) {
	clean := CleanMask(ev.State, e.s.NumLockMask())
	for _, k := range e.g.Config.Keys {
		if k.Keysym == ev.Keysym && CleanMask(k.Mod, e.s.NumLockMask()) == clean {
			e.Dispatch(k.Action, k.Arg)
			return
		}
	}
}
