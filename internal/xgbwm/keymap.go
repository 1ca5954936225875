package xgbwm

import xp "github.com/BurntSushi/xgb/xproto"

// loadKeyboardMapping queries the server's keycode->keysym table once
// (dwm/taowm both do this at startup and again on MappingNotify), covering
// the standard 8..255 keycode range.
func (s *Surface) loadKeyboardMapping() {
	const keyLo, keyHi = 8, 255
	km, err := xp.GetKeyboardMapping(s.conn, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		s.log.Warn("xgbwm: get keyboard mapping failed", "err", err)
		return
	}
	n := int(km.KeysymsPerKeycode)
	if n < 1 {
		return
	}
	for i := keyLo; i <= keyHi; i++ {
		base := (i - keyLo) * n
		s.keysyms[i][0] = km.Keysyms[base]
		if n > 1 {
			s.keysyms[i][1] = km.Keysyms[base+1]
		}
	}
}

// keysymToKeycode finds the keycode whose unshifted or shifted entry
// matches keysym (dwm's XKeysymToKeycode, via our own table instead of
// Xlib's).
func (s *Surface) keysymToKeycode(keysym xp.Keysym) xp.Keycode {
	for i, pair := range s.keysyms {
		if pair[0] == keysym || pair[1] == keysym {
			return xp.Keycode(i)
		}
	}
	return 0
}

// keycodeToKeysym translates an incoming key event's keycode back to a
// keysym, honoring Shift for the second table column (dwm's XKeycodeToKeysym
// equivalent).
func (s *Surface) keycodeToKeysym(kc xp.Keycode, shift bool) xp.Keysym {
	if int(kc) >= len(s.keysyms) {
		return 0
	}
	if shift && s.keysyms[kc][1] != 0 {
		return s.keysyms[kc][1]
	}
	return s.keysyms[kc][0]
}
