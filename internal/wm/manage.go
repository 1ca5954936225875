package wm

// manageFromGeometry fetches win's current geometry from the surface and
// manages it. The MapRequest handler, the mouse-pump MapRequest case and
// Scan all go through it, since none of them has the window's geometry at
// hand (QueryTree returns window ids only).
func (e *Engine) manageFromGeometry(win Window) {
	attrs, err := e.s.GetGeometry(win)
	if err != nil {
		e.g.Log.Warn("manage: get geometry failed", "win", win, "err", err)
		return
	}
	e.Manage(win, attrs)
}

// Manage adopts win as a new client, placing it in the view it belongs to
// (its WM_TRANSIENT_FOR owner's view, if any, otherwise the owning
// monitor's currently selected view), and arranges its monitor (dwm's
// manage). attrs carries the window's geometry and border width as they
// stood at MapRequest/startup-scan time.
func (e *Engine) Manage(win Window, attrs WindowAttrs) {
	if e.WindowToClient(win) != nil {
		return
	}
	c := &Client{Win: win}
	c.Title = e.s.GetWindowTitle(win)
	c.WMDeleteWindow, _ = e.s.GetWMProtocols(win)

	var transient *Client
	if tw, ok := e.s.GetTransientFor(win); ok {
		transient = e.WindowToClient(tw)
	}

	mon := e.g.SelMon()
	if transient != nil {
		mon = transient.Monitor
	}
	c.Monitor = mon
	c.View = mon.SelViewIdx
	if transient != nil {
		c.View = transient.View
	}

	c.Rect = Rect{
		X:      attrs.X + mon.WindowRect.X,
		Y:      attrs.Y + mon.WindowRect.Y,
		Width:  attrs.Width,
		Height: attrs.Height,
	}
	c.OldRect = c.Rect
	c.OldBW = attrs.BorderWidth

	if c.Rect.Width == mon.ScreenRect.Width && c.Rect.Height == mon.ScreenRect.Height {
		c.Floating = true
		c.Rect.X, c.Rect.Y = mon.ScreenRect.X, mon.ScreenRect.Y
		c.BW = 0
	} else {
		if c.Rect.X+c.Rect.Width+2*e.g.Config.BorderPx > mon.ScreenRect.X+mon.ScreenRect.Width {
			c.Rect.X = mon.ScreenRect.X + mon.ScreenRect.Width - c.Rect.Width - 2*e.g.Config.BorderPx
		}
		if c.Rect.Y+c.Rect.Height+2*e.g.Config.BorderPx > mon.ScreenRect.Y+mon.ScreenRect.Height {
			c.Rect.Y = mon.ScreenRect.Y + mon.ScreenRect.Height - c.Rect.Height - 2*e.g.Config.BorderPx
		}
		if c.Rect.X < mon.ScreenRect.X {
			c.Rect.X = mon.ScreenRect.X
		}
		coversBar := mon.BarY == mon.ScreenRect.Y &&
			c.Rect.X+c.Rect.Width/2 >= mon.WindowRect.X &&
			c.Rect.X+c.Rect.Width/2 < mon.WindowRect.X+mon.WindowRect.Width
		minY := mon.ScreenRect.Y
		if coversBar {
			minY = mon.BarY + mon.BarHeight
		}
		if c.Rect.Y < minY {
			c.Rect.Y = minY
		}
		c.BW = e.g.Config.BorderPx
	}

	e.s.MoveResize(c.Win, c.Rect, c.BW)
	e.s.SetBorderColor(c.Win, e.g.Config.Colors.NormBorder)

	c.Hints = e.s.GetSizeHints(win)
	c.Fixed = c.Hints.Fixed()

	e.s.SelectInputManaged(win)
	e.grabButtons(c, false)

	if !c.Floating {
		c.Floating = transient != nil || c.Fixed
	}
	c.OldFloating = c.Floating
	if c.Floating {
		e.s.Raise(c.Win)
	}

	Attach(c)
	AttachStack(c)

	e.s.MapWindow(c.Win)
	e.s.SetWMState(c.Win, WMStateNormal)
	e.Arrange(c.Monitor)
}

// WindowAttrs is the subset of X window attributes Manage needs: initial
// geometry and border width, as the window had them before becoming
// managed.
type WindowAttrs struct {
	X, Y, Width, Height int32
	BorderWidth         int32
}

// Unmanage drops win from the client model (dwm's unmanage). destroyed is
// true for DestroyNotify: the window is already gone at the X server, so
// no request touches it. For UnmapNotify (destroyed false) the original
// border width is restored, the button grabs are dropped and WM_STATE is
// set to Withdrawn. No server grab is taken and no error handler is
// swapped in around these requests.
func (e *Engine) Unmanage(win Window, destroyed bool) {
	c := e.WindowToClient(win)
	if c == nil {
		return
	}
	m := c.Monitor
	Detach(c)
	DetachStack(c)
	if !destroyed {
		e.s.MoveResize(c.Win, c.Rect, c.OldBW)
		e.s.UngrabButtons(c.Win)
		e.s.SetWMState(c.Win, WMStateWithdrawn)
	}
	e.Focus(nil)
	e.Arrange(m)
}

// UpdateTitle refreshes c's cached title from _NET_WM_NAME/WM_NAME.
func (e *Engine) UpdateTitle(c *Client) {
	title := e.s.GetWindowTitle(c.Win)
	if title == "" {
		title = "broken"
	}
	c.Title = title
}

// UpdateSizeHints re-reads WM_NORMAL_HINTS and recomputes c.Fixed (dwm's
// updatesizehints).
func (e *Engine) UpdateSizeHints(c *Client) {
	c.Hints = e.s.GetSizeHints(c.Win)
	c.Fixed = c.Hints.Fixed()
}

// UpdateWMHints re-reads WM_HINTS. If c is currently selected and carries
// the urgency bit, the bit is cleared immediately at the source instead of
// being recorded (dwm: a client should not be able to mark itself urgent
// while it already has focus). Otherwise c.Urgent mirrors the bit.
func (e *Engine) UpdateWMHints(c *Client) {
	urgent := e.s.GetWMHints(c.Win)
	if c == e.g.SelMon().SelView().Selected() && urgent {
		e.clearUrgent(c)
		return
	}
	c.Urgent = urgent
}

// SendMon moves c to monitor m, into m's currently selected view (dwm's
// sendmon).
func (e *Engine) SendMon(c *Client, m *Monitor) {
	if c.Monitor == m {
		return
	}
	e.unfocus(c, true)
	Detach(c)
	DetachStack(c)
	c.Monitor = m
	c.View = m.SelViewIdx
	Attach(c)
	AttachStack(c)
	e.Focus(nil)
	e.Arrange(nil)
}

// KillClient asks the selected client to close via WM_DELETE_WINDOW if it
// advertises support, otherwise forces it closed with XKillClient (dwm's
// killclient).
func (e *Engine) KillClient() {
	c := e.g.SelMon().SelView().Selected()
	if c == nil {
		return
	}
	if c.WMDeleteWindow {
		e.s.SendDeleteWindow(c.Win)
	} else {
		e.s.KillClient(c.Win)
	}
}

// ToggleFloating flips the selected client's floating bit (dwm's
// togglefloating); a fixed client stays floating. A client that becomes
// floating is re-fitted to its current rectangle under its size hints; one
// that returns to tiled takes whatever geometry the following arrange
// gives it. A fullscreen client is left unchanged.
func (e *Engine) ToggleFloating() {
	c := e.g.SelMon().SelView().Selected()
	if c == nil || c.Fullscreen {
		return
	}
	c.Floating = !c.Floating || c.Fixed
	if c.Floating {
		e.resize(c, c.Rect, false)
	}
	e.Arrange(c.Monitor)
}
