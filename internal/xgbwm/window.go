package xgbwm

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

// ConfigureRaw honors an unmanaged window's own ConfigureRequest verbatim
// (dwm's configurerequest default branch): forward exactly the fields the
// client asked to change.
func (s *Surface) ConfigureRaw(ev wm.ConfigureRequestEvent) {
	var mask uint16
	var values []uint32
	const (
		cwX           = 1 << 0
		cwY           = 1 << 1
		cwWidth       = 1 << 2
		cwHeight      = 1 << 3
		cwBorderWidth = 1 << 4
		cwSibling     = 1 << 5
		cwStackMode   = 1 << 6
	)
	add := func(bit uint16, v uint32) {
		mask |= bit
		values = append(values, v)
	}
	if ev.ValueMask&cwX != 0 {
		add(xp.ConfigWindowX, uint32(ev.X))
	}
	if ev.ValueMask&cwY != 0 {
		add(xp.ConfigWindowY, uint32(ev.Y))
	}
	if ev.ValueMask&cwWidth != 0 {
		add(xp.ConfigWindowWidth, uint32(ev.Width))
	}
	if ev.ValueMask&cwHeight != 0 {
		add(xp.ConfigWindowHeight, uint32(ev.Height))
	}
	if ev.ValueMask&cwBorderWidth != 0 {
		add(xp.ConfigWindowBorderWidth, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&cwSibling != 0 {
		add(xp.ConfigWindowSibling, uint32(ev.Sibling))
	}
	if ev.ValueMask&cwStackMode != 0 {
		add(xp.ConfigWindowStackMode, uint32(ev.StackMode))
	}
	s.check(xp.ConfigureWindowChecked(s.conn, xp.Window(ev.Win), mask, values))
}

// NotifyUnchanged tells a tiled client its ConfigureRequest was heard but
// refused, via a synthetic ConfigureNotify carrying its current geometry
// (dwm's configure()).
func (s *Surface) NotifyUnchanged(w wm.Window, r wm.Rect, bw int32) {
	cne := xp.ConfigureNotifyEvent{
		Event:            xp.Window(w),
		Window:           xp.Window(w),
		X:                int16(r.X),
		Y:                int16(r.Y),
		Width:            uint16(r.Width),
		Height:           uint16(r.Height),
		BorderWidth:      uint16(bw),
		OverrideRedirect: false,
	}
	s.check(xp.SendEventChecked(s.conn, false, xp.Window(w), xp.EventMaskStructureNotify, string(cne.Bytes())))
}

func (s *Surface) MoveResize(w wm.Window, r wm.Rect, bw int32) {
	s.check(xp.ConfigureWindowChecked(s.conn, xp.Window(w),
		xp.ConfigWindowX|xp.ConfigWindowY|xp.ConfigWindowWidth|xp.ConfigWindowHeight|xp.ConfigWindowBorderWidth,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height), uint32(bw)}))
}

func (s *Surface) MoveWindow(w wm.Window, x, y int32) {
	s.check(xp.ConfigureWindowChecked(s.conn, xp.Window(w),
		xp.ConfigWindowX|xp.ConfigWindowY, []uint32{uint32(x), uint32(y)}))
}

// SetBorderColor sets the border pixel (CwBorderPixel) of the 1px border §1
// allows. Changing the attribute alone makes the server redraw the border,
// so no separate repaint request is issued.
func (s *Surface) SetBorderColor(w wm.Window, rgb uint32) {
	s.check(xp.ChangeWindowAttributesChecked(s.conn, xp.Window(w), xp.CwBorderPixel, []uint32{rgb}))
}

func (s *Surface) Raise(w wm.Window) {
	s.check(xp.ConfigureWindowChecked(s.conn, xp.Window(w), xp.ConfigWindowStackMode, []uint32{xp.StackModeAbove}))
}

func (s *Surface) StackBelow(w, sibling wm.Window) {
	s.check(xp.ConfigureWindowChecked(s.conn, xp.Window(w),
		xp.ConfigWindowSibling|xp.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xp.StackModeBelow}))
}

func (s *Surface) MapWindow(w wm.Window)   { s.check(xp.MapWindowChecked(s.conn, xp.Window(w))) }
func (s *Surface) UnmapWindow(w wm.Window) { s.check(xp.UnmapWindowChecked(s.conn, xp.Window(w))) }

func (s *Surface) ReparentToRoot(w wm.Window) {
	s.check(xp.ReparentWindowChecked(s.conn, xp.Window(w), s.root, 0, 0))
}

func (s *Surface) SetInputFocus(w wm.Window) {
	s.check(xp.SetInputFocusChecked(s.conn, xp.InputFocusPointerRoot, xp.Window(w), xp.TimeCurrentTime))
}

// SetWMState writes ICCCM's WM_STATE property (state, None) (§6).
func (s *Surface) SetWMState(w wm.Window, state wm.WMState) {
	data := []byte{
		byte(state), byte(state >> 8), byte(state >> 16), byte(state >> 24),
		0, 0, 0, 0, // icon window = None
	}
	s.check(xp.ChangePropertyChecked(s.conn, xp.PropModeReplace, xp.Window(w), s.atoms.wmState,
		s.atoms.wmState, 32, 2, data))
}

// SetFullscreenState writes or clears _NET_WM_STATE's fullscreen atom,
// reflecting Invariant 6's transition back to the client.
func (s *Surface) SetFullscreenState(w wm.Window, fullscreen bool) {
	if fullscreen {
		data := []byte{
			byte(s.atoms.netWMFullscreen), byte(s.atoms.netWMFullscreen >> 8),
			byte(s.atoms.netWMFullscreen >> 16), byte(s.atoms.netWMFullscreen >> 24),
		}
		s.check(xp.ChangePropertyChecked(s.conn, xp.PropModeReplace, xp.Window(w), s.atoms.netWMState,
			xp.AtomAtom, 32, 1, data))
		return
	}
	s.check(xp.ChangePropertyChecked(s.conn, xp.PropModeReplace, xp.Window(w), s.atoms.netWMState,
		xp.AtomAtom, 32, 0, nil))
}

// SendDeleteWindow asks a client to close gracefully via a synthetic
// WM_PROTOCOLS/WM_DELETE_WINDOW ClientMessage (§7's protocol negotiation).
func (s *Surface) SendDeleteWindow(w wm.Window) {
	cme := xp.ClientMessageEvent{
		Format: 32,
		Window: xp.Window(w),
		Type:   s.atoms.wmProtocols,
		Data: xp.ClientMessageDataUnionData32New([]uint32{
			uint32(s.atoms.wmDelete), uint32(xp.TimeCurrentTime), 0, 0, 0,
		}),
	}
	s.check(xp.SendEventChecked(s.conn, false, xp.Window(w), xp.EventMaskNoEvent, string(cme.Bytes())))
}

// KillClient force-closes a client that does not advertise WM_DELETE_WINDOW,
// under a server grab with the no-op error handler implicitly covered by
// check's whitelist (§7).
func (s *Surface) KillClient(w wm.Window) {
	s.check(xp.GrabServerChecked(s.conn))
	s.check(xp.KillClientChecked(s.conn, uint32(w)))
	s.check(xp.UngrabServerChecked(s.conn))
}
