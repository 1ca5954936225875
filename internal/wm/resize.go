package wm

import "github.com/mozzenior/wm/internal/geom"

// resize is dwm's resize()+resizeclient() collapsed into one step: clamp
// the proposed rectangle against c's size hints, and if the clamped result
// differs from c's current rectangle, push it to the surface and update
// the client record. interactive selects the off-screen rescue bound: the
// whole display during an interactive move/resize, the owning monitor's
// screen rectangle otherwise (§4.1).
func (e *Engine) resize(c *Client, proposed Rect, interactive bool) {
	bound := c.Monitor.ScreenRect
	if interactive {
		bound = e.s.ScreenRect()
	}
	r, changed := geom.ApplySizeHints(c.Rect, proposed, c.BW, c.Hints, c.Floating,
		e.g.Config.RespectResizeHints, interactive, bound, c.Monitor.BarHeight)
	if !changed {
		return
	}
	e.resizeClient(c, r)
}

// resizeClient pushes r to the surface and records it as c's current
// rectangle. It deliberately does not touch c.OldBW: that field is only
// meaningful as the fullscreen-entry save of the border width (dwm's
// resizeclient saves oldx/y/w/h the same way but never oldbw), and
// clobbering it here would make SetFullscreen's leave-fullscreen path
// restore the wrong border.
func (e *Engine) resizeClient(c *Client, r Rect) {
	c.OldRect = c.Rect
	c.Rect = r
	e.s.MoveResize(c.Win, r, c.BW)
}
