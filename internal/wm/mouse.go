package wm

// MoveMouse drives an interactive pointer-drag move of the selected
// client (dwm's movemouse). It runs its own restricted event pump: only
// MotionNotify, ConfigureRequest, Expose and MapRequest are acted on, and
// ButtonRelease ends the drag; any other event read during the drag is
// discarded. Dragging
// a tiled client far enough floats it first, the same snap-to-float
// threshold dwm uses.
func (e *Engine) MoveMouse() {
	c := e.g.SelMon().SelView().Selected()
	if c == nil || c.Fullscreen {
		return
	}
	e.Restack(e.g.SelMon())
	startX, startY := c.Rect.X, c.Rect.Y
	if !e.s.GrabPointerForMove() {
		return
	}
	px, py, _ := e.s.QueryPointer()

	for {
		ev, err := e.s.NextEvent()
		if err != nil {
			continue
		}
		switch ev := ev.(type) {
		case ButtonReleaseEvent:
			e.s.UngrabPointer()
			e.settleMonitor(c)
			return
		case ConfigureRequestEvent:
			e.handleConfigureRequest(ev)
		case ExposeEvent:
			e.handleExpose(ev)
		case MapRequestEvent:
			e.manageFromGeometry(ev.Win)
		case MotionNotifyEvent:
			nx := startX + (ev.RootX - px)
			ny := startY + (ev.RootY - py)
			mon := e.g.SelMon()
			snap := e.g.Config.Snap
			if snap > 0 && mon.WindowRect.Contains(nx, ny) {
				nx, ny = snapToEdges(nx, ny, c.Rect, mon.WindowRect, snap)
				if !c.Floating && mon.SelView().Layout.Arrange != nil &&
					(abs32(nx-c.Rect.X) > snap || abs32(ny-c.Rect.Y) > snap) {
					c.Floating = true
					e.Arrange(mon)
				}
			}
			if c.Floating || mon.SelView().Layout.Arrange == nil {
				e.resize(c, Rect{X: nx, Y: ny, Width: c.Rect.Width, Height: c.Rect.Height}, true)
			}
		}
	}
}

// ResizeMouse drives an interactive pointer-drag resize of the selected
// client's bottom-right corner (dwm's resizemouse).
func (e *Engine) ResizeMouse() {
	c := e.g.SelMon().SelView().Selected()
	if c == nil || c.Fullscreen {
		return
	}
	e.Restack(e.g.SelMon())
	if !e.s.GrabPointerForResize() {
		return
	}
	e.s.WarpPointer(c.Rect.X+c.Rect.Width+c.BW-1, c.Rect.Y+c.Rect.Height+c.BW-1)

	for {
		ev, err := e.s.NextEvent()
		if err != nil {
			continue
		}
		switch ev := ev.(type) {
		case ButtonReleaseEvent:
			e.s.WarpPointer(c.Rect.X+c.Rect.Width+c.BW-1, c.Rect.Y+c.Rect.Height+c.BW-1)
			e.s.UngrabPointer()
			e.settleMonitor(c)
			return
		case ConfigureRequestEvent:
			e.handleConfigureRequest(ev)
		case ExposeEvent:
			e.handleExpose(ev)
		case MapRequestEvent:
			e.manageFromGeometry(ev.Win)
		case MotionNotifyEvent:
			nw := max32(ev.RootX-c.Rect.X-2*c.BW+1, 1)
			nh := max32(ev.RootY-c.Rect.Y-2*c.BW+1, 1)
			mon := e.g.SelMon()
			snap := e.g.Config.Snap
			if snap > 0 && mon.WindowRect.Contains(c.Rect.X+nw, c.Rect.Y+nh) &&
				!c.Floating && mon.SelView().Layout.Arrange != nil &&
				(abs32(nw-c.Rect.Width) > snap || abs32(nh-c.Rect.Height) > snap) {
				c.Floating = true
				e.Arrange(mon)
			}
			if c.Floating || mon.SelView().Layout.Arrange == nil {
				e.resize(c, Rect{X: c.Rect.X, Y: c.Rect.Y, Width: nw, Height: nh}, true)
			}
		}
	}
}

// settleMonitor moves c to the monitor the pointer ended up over, if it
// differs from the one it started on (dwm: both movemouse and
// resizemouse end with this ptrtomon check).
func (e *Engine) settleMonitor(c *Client) {
	m := e.PointerToMonitor(c.Rect.X+c.Rect.Width/2, c.Rect.Y+c.Rect.Height/2)
	if m != c.Monitor {
		e.SendMon(c, m)
		e.g.SelMonIdx = m.Num
		e.Focus(nil)
	}
}

func snapToEdges(x, y int32, cur, bound Rect, snap int32) (int32, int32) {
	if abs32(bound.X-x) < snap {
		x = bound.X
	} else if abs32((bound.X+bound.Width)-(x+cur.Width+2*0)) < snap {
		x = bound.X + bound.Width - cur.Width
	}
	if abs32(bound.Y-y) < snap {
		y = bound.Y
	} else if abs32((bound.Y+bound.Height)-(y+cur.Height+2*0)) < snap {
		y = bound.Y + bound.Height - cur.Height
	}
	return x, y
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
