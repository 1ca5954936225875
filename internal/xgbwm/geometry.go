package xgbwm

import (
	"github.com/BurntSushi/xgb/xinerama"

	"github.com/mozzenior/wm/internal/wm"
)

// MonitorRects queries Xinerama for the current set of screen rectangles
// (§4.9). An empty result (Xinerama absent or reporting zero heads) is
// handled by the caller (wm.Engine falls back to ScreenRect).
func (s *Surface) MonitorRects() []wm.Rect {
	r, err := xinerama.QueryScreens(s.conn).Reply()
	if err != nil {
		s.log.Warn("xgbwm: xinerama query screens failed", "err", err)
		return nil
	}
	out := make([]wm.Rect, len(r.ScreenInfo))
	for i, si := range r.ScreenInfo {
		out[i] = wm.Rect{X: int32(si.XOrg), Y: int32(si.YOrg), Width: int32(si.Width), Height: int32(si.Height)}
	}
	return out
}
