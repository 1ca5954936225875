package wm

// WindowToClient returns the managed client for win, or nil. Linear scan
// across monitors and views, same cost as dwm's wintoclient.
func (e *Engine) WindowToClient(win Window) *Client {
	for _, m := range e.g.Monitors {
		for i := range m.Views {
			for c := m.Views[i].clients; c != nil; c = c.next {
				if c.Win == win {
					return c
				}
			}
		}
	}
	return nil
}

// WindowToMonitor returns the monitor owning win: the monitor of a managed
// client, the monitor a bar window belongs to, or the pointer's current
// monitor if win is the root window.
func (e *Engine) WindowToMonitor(win Window) *Monitor {
	if win == e.g.Root {
		x, y, _ := e.s.QueryPointer()
		return e.PointerToMonitor(x, y)
	}
	for _, m := range e.g.Monitors {
		if m.BarWin == win {
			return m
		}
	}
	if c := e.WindowToClient(win); c != nil {
		return c.Monitor
	}
	return nil
}

// PointerToMonitor returns the monitor whose window rectangle contains
// (x, y), falling back to the globally selected monitor (§4.2).
func (e *Engine) PointerToMonitor(x, y int32) *Monitor {
	for _, m := range e.g.Monitors {
		if m.WindowRect.Contains(x, y) {
			return m
		}
	}
	return e.g.SelMon()
}
