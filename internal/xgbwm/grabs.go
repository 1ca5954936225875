package xgbwm

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

// lockFanout is the set of extra modifier combinations every grab is
// duplicated across, so a binding still matches no matter the state of the
// lock keys (§4.7/§9's "grabbuttons/grabkeys full modifier fan-out").
func (s *Surface) lockFanout() []uint16 {
	return []uint16{0, wm.ModMaskLock, s.numLockMask, s.numLockMask | wm.ModMaskLock}
}

// updateNumlockMask recomputes which modifier bit Num Lock is bound to by
// scanning the X modifier map for the keycode(s) that produce the Num_Lock
// keysym (dwm's updatenumlockmask): the physical keycode bound to Num Lock
// is not a protocol constant, so it has to be discovered at runtime.
func (s *Surface) updateNumlockMask() {
	s.numLockMask = 0
	mm, err := xp.GetModifierMapping(s.conn).Reply()
	if err != nil {
		s.log.Warn("xgbwm: get modifier mapping failed", "err", err)
		return
	}
	const numLockKeysym = 0xff7f
	kpc := int(mm.KeycodesPerModifier)
	for i := 0; i < 8; i++ {
		for j := 0; j < kpc; j++ {
			kc := mm.Keycodes[i*kpc+j]
			if kc == 0 {
				continue
			}
			if s.keycodeToKeysym(xp.Keycode(kc), false) == numLockKeysym {
				s.numLockMask = 1 << uint(i)
			}
		}
	}
}

// GrabKeys regrabs every configured key binding on the root window (dwm's
// grabkeys), called once at startup and again on MappingNotify when the
// keyboard mapping changed.
func (s *Surface) GrabKeys(bindings []wm.KeyBinding) {
	s.loadKeyboardMapping()
	s.check(xp.UngrabKeyChecked(s.conn, xp.GrabAny, s.root, xp.ModMaskAny))
	for _, b := range bindings {
		kc := s.keysymToKeycode(xp.Keysym(b.Keysym))
		if kc == 0 {
			continue
		}
		for _, extra := range s.lockFanout() {
			s.check(xp.GrabKeyChecked(s.conn, true, s.root, b.Mod|extra, kc,
				xp.GrabModeAsync, xp.GrabModeAsync))
		}
	}
}

// GrabButtons installs bindings' passive grabs on w (a focused client's
// active subset, per grabButtons(c, true) in focus.go).
func (s *Surface) GrabButtons(bindings []wm.ButtonBinding, w wm.Window) {
	for _, b := range bindings {
		if b.Click != wm.ClickClientWindow {
			continue
		}
		for _, extra := range s.lockFanout() {
			s.check(xp.GrabButtonChecked(s.conn, false, xp.Window(w),
				xp.EventMaskButtonPress|xp.EventMaskButtonRelease,
				xp.GrabModeAsync, xp.GrabModeSync, 0, 0, b.Button, b.Mod|extra))
		}
	}
}

// GrabAnyButton installs the passive "any button" grab dwm gives an
// unfocused client (§4.7 bullet 2): the first click both raises/focuses it
// and is swallowed (GrabModeSync) rather than forwarded.
func (s *Surface) GrabAnyButton(w wm.Window) {
	s.check(xp.GrabButtonChecked(s.conn, false, xp.Window(w),
		xp.EventMaskButtonPress|xp.EventMaskButtonRelease,
		xp.GrabModeSync, xp.GrabModeSync, 0, 0, xp.ButtonIndexAny, xp.ModMaskAny))
}

func (s *Surface) UngrabButtons(w wm.Window) {
	s.check(xp.UngrabButtonChecked(s.conn, xp.ButtonIndexAny, xp.Window(w), xp.ModMaskAny))
}

func (s *Surface) NumLockMask() uint16 { return s.numLockMask }

func (s *Surface) GrabPointerForMove() bool {
	return s.grabPointer(s.moveCursor)
}

func (s *Surface) GrabPointerForResize() bool {
	return s.grabPointer(s.resizeCursor)
}

func (s *Surface) grabPointer(cursor xp.Cursor) bool {
	r, err := xp.GrabPointer(s.conn, false, s.root,
		xp.EventMaskButtonPress|xp.EventMaskButtonRelease|xp.EventMaskPointerMotion,
		xp.GrabModeAsync, xp.GrabModeAsync, 0, cursor, xp.TimeCurrentTime).Reply()
	if err != nil {
		s.log.Warn("xgbwm: grab pointer failed", "err", err)
		return false
	}
	return r.Status == xp.GrabStatusSuccess
}

func (s *Surface) UngrabPointer() {
	s.check(xp.UngrabPointerChecked(s.conn, xp.TimeCurrentTime))
}

func (s *Surface) QueryPointer() (rootX, rootY int32, mask uint16) {
	r, err := xp.QueryPointer(s.conn, s.root).Reply()
	if err != nil {
		return 0, 0, 0
	}
	return int32(r.RootX), int32(r.RootY), r.Mask
}

func (s *Surface) WarpPointer(x, y int32) {
	s.check(xp.WarpPointerChecked(s.conn, 0, s.root, 0, 0, 0, 0, int16(x), int16(y)))
}
