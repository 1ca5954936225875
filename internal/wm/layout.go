package wm

import "fmt"

// Arrange runs showhide/arrangemon/focus/restack for m, or for every
// monitor when m is nil (dwm's arrange). It is the entry point every
// state-changing action calls after touching the client model.
func (e *Engine) Arrange(m *Monitor) {
	if m != nil {
		e.showhide(m.SelView().stack)
	} else {
		for _, mm := range e.g.Monitors {
			e.showhide(mm.SelView().stack)
		}
	}
	e.Focus(nil)
	if m != nil {
		e.arrangeMon(m)
	} else {
		for _, mm := range e.g.Monitors {
			e.arrangeMon(mm)
		}
	}
}

// showhide walks the focus stack (snext order, same as dwm) showing or
// repositioning each client. Unlike map/unmap of whole views, every client
// in the monitor's selected view's focus stack is visible; floating
// clients keep their stored geometry even when a tiling layout is active.
func (e *Engine) showhide(c *Client) {
	if c == nil {
		return
	}
	e.s.MoveWindow(c.Win, c.Rect.X, c.Rect.Y)
	if !(!c.Floating && c.Monitor.Views[c.View].Layout.Arrange != nil) {
		e.resize(c, c.Rect, false)
	}
	e.showhide(c.snext)
}

func (e *Engine) arrangeMon(m *Monitor) {
	lt := m.SelView().Layout
	m.LayoutSymbol = lt.Symbol
	if lt.Arrange != nil {
		lt.Arrange(e, m)
	}
	e.Restack(m)
}

// tileArrange is dwm's tile(): a single master column on the left sized by
// MFact, remaining clients stacked vertically on the right, pixel
// remainder distributed one row at a time from the top.
func tileArrange(e *Engine, m *Monitor) {
	v := m.SelView()
	var clients []*Client
	for c := NextTiled(v.clients); c != nil; c = NextTiled(c.next) {
		clients = append(clients, c)
	}
	n := len(clients)
	if n == 0 {
		return
	}

	master := clients[0]
	mw := int32(v.MFact * float64(m.WindowRect.Width))
	masterW := mw
	if n == 1 {
		masterW = m.WindowRect.Width
	}
	e.resize(master, Rect{X: m.WindowRect.X, Y: m.WindowRect.Y, Width: masterW-2*master.BW, Height: m.WindowRect.Height-2*master.BW}, false)
	if n == 1 {
		return
	}

	stack := clients[1:]
	x := m.WindowRect.X + mw
	if m.WindowRect.X+mw > master.Rect.X+master.Rect.Width {
		x = master.Rect.X + master.Rect.Width + 2*master.BW
	}
	y := m.WindowRect.Y
	w := m.WindowRect.Width - mw
	if m.WindowRect.X+mw > master.Rect.X+master.Rect.Width {
		w = m.WindowRect.X + m.WindowRect.Width - x
	}
	n = len(stack)
	h := m.WindowRect.Height / int32(n)
	rh := m.WindowRect.Height % int32(n)
	if h < m.BarHeight {
		h, rh = m.WindowRect.Height, 0
	}
	for i, c := range stack {
		ch := h - 2*c.BW
		if i+1 == n {
			ch = m.WindowRect.Y + m.WindowRect.Height - y - 2*c.BW
		}
		if rh > 0 {
			ch++
			rh--
		}
		e.resize(c, Rect{X: x, Y: y, Width: w-2*c.BW, Height: ch}, false)
		if h != m.WindowRect.Height {
			y = c.Rect.Y + c.Rect.Height + 2*c.BW
		}
	}
}

// mirrortileArrange is dwm's mirrortile(): tile transposed, a master row
// on top and clients stacked horizontally underneath.
func mirrortileArrange(e *Engine, m *Monitor) {
	v := m.SelView()
	var clients []*Client
	for c := NextTiled(v.clients); c != nil; c = NextTiled(c.next) {
		clients = append(clients, c)
	}
	n := len(clients)
	if n == 0 {
		return
	}

	master := clients[0]
	mh := int32(v.MFact * float64(m.WindowRect.Height))
	masterH := mh
	if n == 1 {
		masterH = m.WindowRect.Height
	}
	e.resize(master, Rect{X: m.WindowRect.X, Y: m.WindowRect.Y, Width: m.WindowRect.Width-2*master.BW, Height: masterH-2*master.BW}, false)
	if n == 1 {
		return
	}

	stack := clients[1:]
	x := m.WindowRect.X
	y := m.WindowRect.Y + mh
	if m.WindowRect.Y+mh > master.Rect.Y+master.Rect.Height {
		y = master.Rect.Y + master.Rect.Height + 2*master.BW
	}
	n = len(stack)
	w := m.WindowRect.Width / int32(n)
	rw := m.WindowRect.Width % int32(n)
	h := m.WindowRect.Height - mh
	if m.WindowRect.Y+mh > master.Rect.Y+master.Rect.Height {
		h = m.WindowRect.Y + m.WindowRect.Height - y
	}
	for i, c := range stack {
		cw := w - 2*c.BW
		if i+1 == n {
			cw = m.WindowRect.X + m.WindowRect.Width - x - 2*c.BW
		}
		if rw > 0 {
			cw++
			rw--
		}
		e.resize(c, Rect{X: x, Y: y, Width: cw, Height: h-2*c.BW}, false)
		if w != m.WindowRect.Width {
			x = c.Rect.X + c.Rect.Width + 2*c.BW
		}
	}
}

// monocleArrange is dwm's monocle(): every tiled client fills the whole
// window area, stacked in z-order, only the top one visible. The layout
// symbol is overridden to "[N]" with the total client count, not just the
// tiled count, matching dwm's literal behavior.
func monocleArrange(e *Engine, m *Monitor) {
	v := m.SelView()
	n := 0
	for c := v.clients; c != nil; c = c.next {
		n++
	}
	if n > 0 {
		m.LayoutSymbol = layoutSymbolN(n)
	}
	for c := NextTiled(v.clients); c != nil; c = NextTiled(c.next) {
		e.resize(c, Rect{X: m.WindowRect.X, Y: m.WindowRect.Y, Width: m.WindowRect.Width-2*c.BW, Height: m.WindowRect.Height-2*c.BW}, false)
	}
}

func layoutSymbolN(n int) string {
	return fmt.Sprintf("[%d]", n)
}
