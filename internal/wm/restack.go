package wm

// Restack redraws m's bar and reasserts X11 stacking order: the selected
// client is raised if it is floating or the layout is floating-everything;
// tiled clients are stacked below the bar in focus-stack order, so the most
// recently focused tiled client sits just above the rest (dwm's restack).
func (e *Engine) Restack(m *Monitor) {
	e.DrawBar(m)
	sel := m.SelView().Selected()
	if sel == nil {
		return
	}
	if sel.Floating || m.SelView().Layout.Arrange == nil {
		e.s.Raise(sel.Win)
	}
	if m.SelView().Layout.Arrange != nil {
		sibling := m.BarWin
		for c := m.SelView().stack; c != nil; c = c.snext {
			if !c.Floating {
				e.s.StackBelow(c.Win, sibling)
				sibling = c.Win
			}
		}
	}
	e.s.DrainEnterNotify()
}
