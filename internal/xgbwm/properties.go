package xgbwm

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

func (s *Surface) getProperty(w xp.Window, atom xp.Atom, kind xp.Atom, longLength uint32) ([]byte, bool) {
	r, err := xp.GetProperty(s.conn, false, w, atom, kind, 0, longLength).Reply()
	if err != nil || r == nil || r.Format == 0 {
		return nil, false
	}
	return r.Value, true
}

func u32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// GetTransientFor reads WM_TRANSIENT_FOR off w.
func (s *Surface) GetTransientFor(w wm.Window) (wm.Window, bool) {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmTransientFor, xp.AtomWindow, 1)
	if !ok || len(v) < 4 {
		return 0, false
	}
	return wm.Window(u32(v)), true
}

// GetWMProtocols reports whether w advertises WM_DELETE_WINDOW / WM_TAKE_FOCUS
// in its WM_PROTOCOLS property (dwm's isprotodel, generalized).
func (s *Surface) GetWMProtocols(w wm.Window) (del, takeFocus bool) {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmProtocols, xp.AtomAtom, 64)
	if !ok {
		return false, false
	}
	for len(v) >= 4 {
		switch xp.Atom(u32(v)) {
		case s.atoms.wmDelete:
			del = true
		case s.atoms.wmTakeFocus:
			takeFocus = true
		}
		v = v[4:]
	}
	return del, takeFocus
}

const wmHintsUrgencyFlag = 1 << 8

// GetWMHints reads WM_HINTS and reports its urgency bit (ICCCM's
// XUrgencyHint, bit 8 of the flags field).
func (s *Surface) GetWMHints(w wm.Window) bool {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmHints, xp.AtomWmHints, 9)
	if !ok || len(v) < 4 {
		return false
	}
	return u32(v)&wmHintsUrgencyFlag != 0
}

// ClearUrgentHint patches w's WM_HINTS to clear the urgency bit at the X
// level (dwm's seturgent: read the existing property, flip the bit, write
// the whole thing back — WM_HINTS has no partial-field update).
func (s *Surface) ClearUrgentHint(w wm.Window) {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmHints, xp.AtomWmHints, 9)
	if !ok || len(v) < 4 {
		return
	}
	flags := u32(v) &^ wmHintsUrgencyFlag
	v[0], v[1], v[2], v[3] = byte(flags), byte(flags>>8), byte(flags>>16), byte(flags>>24)
	s.check(xp.ChangePropertyChecked(s.conn, xp.PropModeReplace, xp.Window(w), s.atoms.wmHints,
		xp.AtomWmHints, 32, uint32(len(v)/4), v))
}

// GetSizeHints reads WM_NORMAL_HINTS into a geom.SizeHints (dwm's
// updatesizehints, done here over the raw property bytes since there is no
// XGetWMNormalHints to call through xgb). The wire layout, one CARD32 per
// field: flags(0), x,y,width,height(1-4, obsolete/unused), min_width,
// min_height(5,6), max_width,max_height(7,8), width_inc,height_inc(9,10),
// min_aspect num,denom(11,12), max_aspect num,denom(13,14), base_width,
// base_height(15,16), win_gravity(17).
func (s *Surface) GetSizeHints(w wm.Window) wm.SizeHints {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmNormalHints, xp.AtomWmSizeHints, 18)
	var h wm.SizeHints
	if !ok || len(v) < 4 {
		return h
	}
	i32 := func(idx int) int32 {
		off := idx * 4
		if off+4 > len(v) {
			return 0
		}
		return int32(u32(v[off:]))
	}
	const (
		flagMinSize   = 1 << 4
		flagMaxSize   = 1 << 5
		flagResizeInc = 1 << 6
		flagAspect    = 1 << 7
		flagBaseSize  = 1 << 8
	)
	flags := u32(v)
	if flags&flagBaseSize != 0 {
		h.BaseW, h.BaseH = i32(15), i32(16)
	} else if flags&flagMinSize != 0 {
		h.BaseW, h.BaseH = i32(5), i32(6)
	}
	if flags&flagResizeInc != 0 {
		h.IncW, h.IncH = i32(9), i32(10)
	}
	if flags&flagAspect != 0 {
		// ICCCM's min_aspect/max_aspect bound width/height, not height/width:
		// width/height ranges over [minN/minD, maxN/maxD]. geom.SizeHints
		// works in height/width (§4.1.2.3b's "mina ≤ h/w ≤ maxa"), which is
		// that range inverted, so the low width/height bound becomes the
		// high height/width bound and vice versa.
		minN, minD := i32(11), i32(12)
		maxN, maxD := i32(13), i32(14)
		if maxN != 0 {
			h.MinA = float64(maxD) / float64(maxN)
		}
		if minN != 0 {
			h.MaxA = float64(minD) / float64(minN)
		}
	}
	if flags&flagMaxSize != 0 {
		h.MaxW, h.MaxH = i32(7), i32(8)
	}
	if flags&flagMinSize != 0 {
		h.MinW, h.MinH = i32(5), i32(6)
	} else if flags&flagBaseSize != 0 {
		h.MinW, h.MinH = i32(15), i32(16)
	}
	return h
}

// GetWindowTitle reads _NET_WM_NAME, falling back to WM_NAME, truncated to
// maxTitleBytes (§3's 256-byte bound).
func (s *Surface) GetWindowTitle(w wm.Window) string {
	if v, ok := s.getProperty(xp.Window(w), s.atoms.netWMName, xp.GetPropertyTypeAny, 256); ok && len(v) > 0 {
		return s.truncateTitle(v)
	}
	if v, ok := s.getProperty(xp.Window(w), s.atoms.wmName, xp.GetPropertyTypeAny, 256); ok && len(v) > 0 {
		return s.truncateTitle(v)
	}
	return ""
}

func (s *Surface) truncateTitle(v []byte) string {
	if len(v) > s.maxTitleBytes {
		v = v[:s.maxTitleBytes]
	}
	return string(v)
}

// GetWMState reads the ICCCM WM_STATE property written by SetWMState.
func (s *Surface) GetWMState(w wm.Window) (wm.WMState, bool) {
	v, ok := s.getProperty(xp.Window(w), s.atoms.wmState, s.atoms.wmState, 2)
	if !ok || len(v) < 4 {
		return 0, false
	}
	return wm.WMState(u32(v)), true
}

// GetRootPropertyString reads the root window's WM_NAME, the status-text
// source named in §6.
func (s *Surface) GetRootPropertyString() string {
	v, ok := s.getProperty(s.root, s.atoms.wmName, xp.GetPropertyTypeAny, 256)
	if !ok || len(v) == 0 {
		return ""
	}
	return s.truncateTitle(v)
}

// SelectInputManaged sets the event mask a newly managed client needs
// (§3 invariant 7): enter-notify so focus-follows-mouse and mode-aware
// crossing detection work, property-change and structure-notify so title,
// hints, and configure requests reach the dispatcher.
func (s *Surface) SelectInputManaged(w wm.Window) {
	s.check(xp.ChangeWindowAttributesChecked(s.conn, xp.Window(w), xp.CwEventMask, []uint32{
		xp.EventMaskEnterWindow | xp.EventMaskFocusChange |
			xp.EventMaskPropertyChange | xp.EventMaskStructureNotify,
	}))
}

func (s *Surface) SelectInputRoot() {
	s.check(xp.ChangeWindowAttributesChecked(s.conn, s.root, xp.CwEventMask, []uint32{
		xp.EventMaskSubstructureRedirect | xp.EventMaskSubstructureNotify |
			xp.EventMaskButtonPress | xp.EventMaskPropertyChange |
			xp.EventMaskStructureNotify,
	}))
}
