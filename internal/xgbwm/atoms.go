package xgbwm

import (
	"log"

	xp "github.com/BurntSushi/xgb/xproto"
)

// atomTable holds every atom the surface needs interned once at startup,
// the same flat var-block taowm's xinit.go keeps its atomWM* globals in.
type atomTable struct {
	wmProtocols    xp.Atom
	wmDelete       xp.Atom
	wmTakeFocus    xp.Atom
	wmState        xp.Atom
	wmTransientFor xp.Atom
	wmHints        xp.Atom
	wmNormalHints  xp.Atom
	wmName         xp.Atom

	netSupported     xp.Atom
	netWMName        xp.Atom
	netWMState       xp.Atom
	netWMFullscreen  xp.Atom
}

func internAtoms(s *Surface) atomTable {
	return atomTable{
		wmProtocols:     internAtom(s, "WM_PROTOCOLS"),
		wmDelete:        internAtom(s, "WM_DELETE_WINDOW"),
		wmTakeFocus:     internAtom(s, "WM_TAKE_FOCUS"),
		wmState:         internAtom(s, "WM_STATE"),
		wmTransientFor:  internAtom(s, "WM_TRANSIENT_FOR"),
		wmHints:         internAtom(s, "WM_HINTS"),
		wmNormalHints:   internAtom(s, "WM_NORMAL_HINTS"),
		wmName:          internAtom(s, "WM_NAME"),
		netSupported:    internAtom(s, "_NET_SUPPORTED"),
		netWMName:       internAtom(s, "_NET_WM_NAME"),
		netWMState:      internAtom(s, "_NET_WM_STATE"),
		netWMFullscreen: internAtom(s, "_NET_WM_STATE_FULLSCREEN"),
	}
}

func internAtom(s *Surface, name string) xp.Atom {
	r, err := xp.InternAtom(s.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		log.Fatalf("xgbwm: intern atom %q: %v", name, err)
	}
	return r.Atom
}

// atomName resolves an atom back to its string, for events.go's
// PropertyNotify/ClientMessage translation; the surface only needs a
// handful of names, so a linear scan against the table beats a second
// round trip through GetAtomName.
func (a atomTable) atomName(atom xp.Atom) string {
	switch atom {
	case a.wmName, a.netWMName:
		if atom == a.netWMName {
			return "_NET_WM_NAME"
		}
		return "WM_NAME"
	case a.wmHints:
		return "WM_HINTS"
	case a.wmNormalHints:
		return "WM_NORMAL_HINTS"
	case a.wmTransientFor:
		return "WM_TRANSIENT_FOR"
	case a.netWMState:
		return "_NET_WM_STATE"
	}
	return ""
}
