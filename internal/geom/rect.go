// Package geom holds the pure, X-free geometry used by the window-management
// engine: rectangles and ICCCM size-hints negotiation. Nothing here imports
// xgb, so it is exercised directly by tests without an X server.
package geom

// Rect is an X11 window or monitor rectangle. Width and height are never
// negative; X and Y may be, for windows parked off-screen.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Contains reports whether the point (x, y) lies within r, inclusive of the
// far edge, matching taowm's contains() and dwm's INRECT macro.
func (r Rect) Contains(x, y int32) bool {
	return r.X <= x && x <= r.X+r.Width &&
		r.Y <= y && y <= r.Y+r.Height
}

// CenterIn reports whether the center of r lies within other.
func (r Rect) CenterIn(other Rect) bool {
	return other.Contains(r.X+r.Width/2, r.Y+r.Height/2)
}

// Centered returns r repositioned so its center matches bound's center,
// used to rescue off-screen ConfigureRequests (§4.8).
func (r Rect) Centered(bound Rect) Rect {
	r.X = bound.X + (bound.Width-r.Width)/2
	r.Y = bound.Y + (bound.Height-r.Height)/2
	return r
}

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields a client can set. The
// fixed flag is not stored: Fixed derives it from min==max rather than
// reading it from the wire.
type SizeHints struct {
	BaseW, BaseH int32
	IncW, IncH   int32
	MinW, MinH   int32
	MaxW, MaxH   int32
	MinA, MaxA   float64 // aspect ratios height/width; zero means unset
}

// Fixed reports whether min and max are equal and nonzero in both
// dimensions — invariant 5 requires such a client to also be floating.
func (h SizeHints) Fixed() bool {
	return h.MaxW > 0 && h.MaxW == h.MinW && h.MaxH > 0 && h.MaxH == h.MinH
}
