package xgbwm

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

// NextEvent blocks for the next X event and translates it into the small
// event-type enum internal/wm accepts (§4.8's fixed dispatch table). Events
// the engine has no use for are dropped here rather than forwarded with a
// default/ignore case in the dispatcher, so wm.dispatchEvent never needs
// one (§5's single suspension point).
func (s *Surface) NextEvent() (wm.Event, error) {
	for {
		var ev xgb.Event
		var xerr error
		if len(s.pending) > 0 {
			ev, s.pending = s.pending[0], s.pending[1:]
		} else {
			ev, xerr = s.conn.WaitForEvent()
			if xerr != nil {
				if ignorableXError(xerr) {
					continue
				}
				return nil, fmt.Errorf("xgbwm: x error: %v", xerr)
			}
			if ev == nil {
				return nil, fmt.Errorf("xgbwm: connection closed")
			}
		}
		if translated, ok := s.translate(ev); ok {
			return translated, nil
		}
	}
}

// DrainEnterNotify discards any EnterNotify events already sitting in the
// connection's queue without blocking, the xgb equivalent of dwm's restack()
// loop (`while (XCheckMaskEvent(dpy, EnterWindowMask, &ev))`). Anything else
// PollForEvent turns up is stashed in s.pending so NextEvent still delivers
// it in order.
func (s *Surface) DrainEnterNotify() {
	for {
		ev, xerr := s.conn.PollForEvent()
		if xerr != nil || ev == nil {
			return
		}
		if _, ok := ev.(xp.EnterNotifyEvent); ok {
			continue
		}
		s.pending = append(s.pending, ev)
	}
}

func (s *Surface) translate(ev xgb.Event) (wm.Event, bool) {
	switch e := ev.(type) {
	case xp.MapRequestEvent:
		return wm.MapRequestEvent{Win: wm.Window(e.Window)}, true
	case xp.UnmapNotifyEvent:
		return wm.UnmapNotifyEvent{Win: wm.Window(e.Window)}, true
	case xp.DestroyNotifyEvent:
		return wm.DestroyNotifyEvent{Win: wm.Window(e.Window)}, true
	case xp.ConfigureRequestEvent:
		return wm.ConfigureRequestEvent{
			Win:         wm.Window(e.Window),
			X:           int32(e.X),
			Y:           int32(e.Y),
			Width:       int32(e.Width),
			Height:      int32(e.Height),
			BorderWidth: int32(e.BorderWidth),
			ValueMask:   e.ValueMask,
			Sibling:     wm.Window(e.Sibling),
			StackMode:   e.StackMode,
		}, true
	case xp.ConfigureNotifyEvent:
		return wm.ConfigureNotifyEvent{Win: wm.Window(e.Window)}, true
	case xp.PropertyNotifyEvent:
		name := s.atoms.atomName(e.Atom)
		if e.Window == s.root {
			if name != "WM_NAME" {
				return nil, false
			}
		} else if name == "" {
			return nil, false
		}
		return wm.PropertyNotifyEvent{Win: wm.Window(e.Window), Atom: name}, true
	case xp.ClientMessageEvent:
		if e.Type != s.atoms.netWMState {
			return nil, false
		}
		data := e.Data.Data32
		return wm.ClientMessageEvent{Win: wm.Window(e.Window), Type: "_NET_WM_STATE", Data: data[:]}, true
	case xp.EnterNotifyEvent:
		return wm.EnterNotifyEvent{Win: wm.Window(e.Event), Mode: e.Mode, Detail: e.Detail}, true
	case xp.FocusInEvent:
		return wm.FocusInEvent{Win: wm.Window(e.Event)}, true
	case xp.ButtonPressEvent:
		return wm.ButtonPressEvent{
			Win: wm.Window(e.Event), Button: uint8(e.Detail), State: e.State,
			RootX: int32(e.RootX), RootY: int32(e.RootY),
		}, true
	case xp.ButtonReleaseEvent:
		return wm.ButtonReleaseEvent{}, true
	case xp.KeyPressEvent:
		// Bindings (config.go) store base keysyms and carry Shift in their
		// Mod mask, the same split dwm's XKeycodeToKeysym(dpy, keycode, 0)
		// call makes: always translate column 0, never the shifted column,
		// so handleKeyPress's Keysym comparison matches Mod+Shift bindings.
		return wm.KeyPressEvent{
			Win: wm.Window(e.Event), Keysym: uint32(s.keycodeToKeysym(e.Detail, false)),
			State: e.State, RootX: int32(e.RootX), RootY: int32(e.RootY),
		}, true
	case xp.ExposeEvent:
		if e.Count != 0 {
			return nil, false
		}
		return wm.ExposeEvent{Win: wm.Window(e.Window)}, true
	case xp.MappingNotifyEvent:
		return wm.MappingNotifyEvent{}, true
	case xp.MotionNotifyEvent:
		return wm.MotionNotifyEvent{RootX: int32(e.RootX), RootY: int32(e.RootY)}, true
	}
	return nil, false
}
