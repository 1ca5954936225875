package wm

// UpdateGeom reconciles the monitor list against the surface's current
// Xinerama screens (dwm's updategeom), called on root ConfigureNotify. It
// grows the monitor list when new unique screen rectangles appear, shrinks
// it when some disappear, and updates ScreenRect/WindowRect in place when
// a surviving monitor's geometry changed. Returns whether anything
// changed, so the caller knows whether a full re-arrange is warranted.
func (e *Engine) UpdateGeom() bool {
	unique := dedupeRects(e.s.MonitorRects())
	if len(unique) == 0 {
		unique = []Rect{e.s.ScreenRect()}
	}
	n := len(e.g.Monitors)
	nn := len(unique)
	dirty := false

	switch {
	case n <= nn:
		for i := n; i < nn; i++ {
			e.g.Monitors = append(e.g.Monitors, e.newMonitor(i, unique[i]))
			dirty = true
		}
		for i := 0; i < nn && i < len(e.g.Monitors); i++ {
			m := e.g.Monitors[i]
			if i >= n || m.ScreenRect != unique[i] {
				dirty = true
				m.Num = i
				m.ScreenRect = unique[i]
				e.updateBarPos(m)
			}
		}
	default: // nn < n: fewer monitors than before.
		for i := nn; i < n; i++ {
			doomed := e.g.Monitors[len(e.g.Monitors)-1]
			target := e.g.Monitors[0]
			for v := 0; v < NumViews; v++ {
				for doomed.Views[v].clients != nil {
					dirty = true
					c := doomed.Views[v].clients
					Detach(c)
					DetachStack(c)
					c.Monitor = target
					Attach(c)
					AttachStack(c)
				}
			}
			if e.g.SelMon() == doomed {
				e.g.SelMonIdx = 0
			}
			e.s.UnmapWindow(doomed.BarWin)
			e.g.Monitors = e.g.Monitors[:len(e.g.Monitors)-1]
			if e.g.SelMonIdx >= len(e.g.Monitors) {
				e.g.SelMonIdx = 0
			}
		}
	}

	if dirty {
		e.g.SelMonIdx = 0
		if m := e.WindowToMonitor(e.g.Root); m != nil {
			e.g.SelMonIdx = m.Num
		}
	}
	return dirty
}

func dedupeRects(rects []Rect) []Rect {
	var unique []Rect
	for _, r := range rects {
		dup := false
		for _, u := range unique {
			if u == r {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, r)
		}
	}
	return unique
}
