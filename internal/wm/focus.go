package wm

// Focus sets c as the selected client of the globally selected monitor's
// selected view, or the stack head if c is nil (dwm's focus). Passing a
// client on another monitor switches the globally selected monitor to it
// first.
func (e *Engine) Focus(c *Client) {
	m := e.g.SelMon()
	if c == nil {
		c = m.SelView().stack
	}
	if sel := m.SelView().Selected(); sel != nil && sel != c {
		e.unfocus(sel, false)
	}
	if c != nil {
		if c.Monitor != m {
			e.g.SelMonIdx = c.Monitor.Num
			m = c.Monitor
		}
		if c.Urgent {
			e.clearUrgent(c)
		}
		DetachStack(c)
		AttachStack(c)
		e.grabButtons(c, true)
		e.s.SetBorderColor(c.Win, e.g.Config.Colors.SelBorder)
		e.s.SetInputFocus(c.Win)
	} else {
		e.s.SetInputFocus(e.g.Root)
	}
	m.SelView().sel = c
	e.DrawBar(m)
}

func (e *Engine) unfocus(c *Client, setfocus bool) {
	if c == nil {
		return
	}
	e.grabButtons(c, false)
	e.s.SetBorderColor(c.Win, e.g.Config.Colors.NormBorder)
	if setfocus {
		e.s.SetInputFocus(e.g.Root)
	}
}

func (e *Engine) clearUrgent(c *Client) {
	c.Urgent = false
	e.s.ClearUrgentHint(c.Win)
}

// FocusStack moves focus to the next (dir > 0) or previous client in the
// selected view's client list, wrapping around at either end (dwm's
// focusstack). Does nothing when the view has no selection. If sel is
// transiently not a member of the client list (can happen mid-migration),
// the dir<0 walk never matches it and falls through to the last element;
// the dir>0 branch falls through to the list head. Either way FocusStack
// settles on a list member rather than leaving focus on the stale client.
func (e *Engine) FocusStack(dir int) {
	v := e.g.SelMon().SelView()
	sel := v.Selected()
	if sel == nil {
		return
	}
	var next *Client
	if dir > 0 {
		next = sel.next
		if next == nil {
			next = v.clients
		}
	} else {
		for c := v.clients; c != nil && c != sel; c = c.next {
			next = c
		}
		if next == nil {
			for c := sel.next; c != nil; c = c.next {
				next = c
			}
		}
	}
	if next != nil {
		e.Focus(next)
		e.Restack(e.g.SelMon())
	}
}

// FocusMon switches the globally selected monitor to the next (dir > 0) or
// previous one, wrapping around (dwm's focusmon via dirtomon).
func (e *Engine) FocusMon(dir int) {
	target := e.dirToMon(dir)
	if target == e.g.SelMon() {
		return
	}
	e.unfocus(e.g.SelMon().SelView().Selected(), true)
	e.g.SelMonIdx = target.Num
	e.Focus(nil)
}

func (e *Engine) dirToMon(dir int) *Monitor {
	n := len(e.g.Monitors)
	i := e.g.SelMonIdx
	if dir > 0 {
		i = (i + 1) % n
	} else {
		i = (i - 1 + n) % n
	}
	return e.g.Monitors[i]
}

// grabButtons re-establishes the client's button grabs for its unfocused
// or focused state (dwm's grabbuttons): a focused client grabs its
// configured click-bindings across every numlock/capslock fan-out, so a
// binding still matches regardless of those lock states; an unfocused
// client grabs every button, so the first click on it both raises/focuses
// it and is swallowed (GrabModeSync) rather than forwarded to the client.
func (e *Engine) grabButtons(c *Client, focused bool) {
	e.s.UngrabButtons(c.Win)
	if focused {
		e.s.GrabButtons(e.g.Config.Buttons, c.Win)
	} else {
		e.s.GrabAnyButton(c.Win)
	}
}
