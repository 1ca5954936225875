package xgbwm

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

// Drawer is the out-of-scope draw collaborator (§1): it turns a monitor's
// bar sections into pixels on the bar window xgbwm created for it. The core
// only ever calls DrawBar; everything about fonts, color allocation, and
// pixmap blitting is the drawer's business.
type Drawer interface {
	Draw(barWin wm.Window, sections []wm.BarSection)
}

// CreateBar makes an override-redirect, exposure-selecting window for m's
// bar, sized to its current WindowRect/BarY (dwm's updatebars). It is
// mapped immediately; ShowBar/hide is handled by the caller moving it
// off-screen or unmapping, not by this constructor.
func (s *Surface) CreateBar(m *wm.Monitor) wm.Window {
	wid, err := xp.NewWindowId(s.conn)
	if err != nil {
		s.log.Error("xgbwm: allocate bar window id failed", "err", err)
		return 0
	}
	w := uint16(m.WindowRect.Width)
	h := uint16(m.BarHeight)
	if err := xp.CreateWindowChecked(s.conn, s.screen.RootDepth, wid, s.root,
		int16(m.WindowRect.X), int16(m.BarY), w, h, 0,
		xp.WindowClassInputOutput, s.screen.RootVisual,
		xp.CwOverrideRedirect|xp.CwEventMask,
		[]uint32{1, xp.EventMaskExposure | xp.EventMaskButtonPress},
	).Check(); err != nil {
		s.log.Error("xgbwm: create bar window failed", "err", err)
		return 0
	}
	s.check(xp.MapWindowChecked(s.conn, wid))
	return wm.Window(wid)
}

// DrawBar forwards to the installed Drawer, if any. A monitor without a
// live bar window (CreateBar failed) is silently skipped.
func (s *Surface) DrawBar(m *wm.Monitor, sections []wm.BarSection) {
	if s.drawer == nil || m.BarWin == 0 {
		return
	}
	s.drawer.Draw(m.BarWin, sections)
}
