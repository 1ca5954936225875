package xgbwm

import xp "github.com/BurntSushi/xgb/xproto"

// ignorableXError implements §7's benign-runtime-error whitelist: races
// against a window that disappeared between the event that named it and
// the request acting on it. xgb already gives each X error code its own Go
// type, which captures the (error_code) half of dwm's (request_code,
// error_code) whitelist; the request-code half is approximated by only
// matching the error types the affected requests in this codebase can ever
// produce (ConfigureWindow/SetInputFocus surface BadMatch, GrabButton/
// GrabKey surface BadAccess, Poly* drawing surfaces BadDrawable), the same
// restriction dwm's xerror applies explicitly.
func ignorableXError(err error) bool {
	switch err.(type) {
	case xp.WindowError:
		return true
	case xp.MatchError:
		return true
	case xp.DrawableError:
		return true
	case xp.AccessError:
		return true
	}
	return false
}
