package wm

// These constants come from /usr/include/X11/keysymdef.h, the same source
// taowm's keysym.go draws its xk-prefixed constants from. Letter and digit
// keys are deliberately not listed here: their keysyms equal their ASCII
// values, so a binding table can write 'j' or '1' directly.
const (
	xkReturn = 0xff0d
	xkEscape = 0xff1b
)

// Modifier bits, matching xgb/xproto's ModMask* constants bit-for-bit.
// wm stays free of any xgb import (see types.go), so these are restated
// here rather than imported; internal/xgbwm and internal/wm agree on the
// encoding by construction.
const (
	ModMaskShift uint16 = 1 << 0
	ModMaskLock  uint16 = 1 << 1
	ModMaskCtrl  uint16 = 1 << 2
	ModMask1     uint16 = 1 << 3
	ModMask2     uint16 = 1 << 4
	ModMask3     uint16 = 1 << 5
	ModMask4     uint16 = 1 << 6
	ModMask5     uint16 = 1 << 7
)

// CleanMask strips the Lock modifier and the caller-supplied numlock bit
// from a modifier state before comparing it against a binding's Mod field,
// matching dwm's CLEANMASK macro (§4.8): NumLock and CapsLock should never
// participate in binding matches.
func CleanMask(state, numLockMask uint16) uint16 {
	return state &^ (numLockMask | ModMaskLock) & (ModMaskShift | ModMaskCtrl | ModMask1 | ModMask2 | ModMask3 | ModMask4 | ModMask5)
}
