// Package wm is the window-management engine: the per-monitor, per-view
// client model, the tiling/mirror/monocle/floating layout algorithms, the
// focus and stacking policy, the event dispatch state machine, and the
// size-hints negotiation. It never imports xgb; all X operations go through
// the Surface interface defined in surface.go, the same separation taowm
// draws between its pure geom.go/actions.go and its X-facing xinit.go/main.go.
package wm

import (
	"log/slog"

	"github.com/mozzenior/wm/internal/geom"
)

// NumViews is the number of per-monitor tagged workspaces (§3).
const NumViews = 9

// Window is an opaque client-window identifier, as handed out by the X
// surface. The engine never interprets its bits.
type Window uint32

// Client is one managed top-level window (§3).
type Client struct {
	Win Window

	Title string // bounded to config.MaxTitleBytes, UTF-8 best-effort

	Rect    geom.Rect
	OldRect geom.Rect
	BW      int32
	OldBW   int32

	Hints geom.SizeHints

	Fixed          bool
	Floating       bool
	Urgent         bool
	OldFloating    bool // saved floating state across fullscreen round-trip
	Fullscreen     bool
	WMDeleteWindow bool // advertises WM_DELETE_WINDOW in WM_PROTOCOLS

	Monitor *Monitor
	View    int // 0..NumViews-1, index into Monitor.Views

	next  *Client // view's client list, insertion order, newest at head
	snext *Client // view's focus stack, most-recently-focused at head
}

// View is one of NumViews per monitor (§3).
type View struct {
	MFact float64 // master-area fraction, clamped to [0.1, 0.9]

	clients *Client // head of client list (next links)
	stack   *Client // head of focus stack (snext links)
	sel     *Client // head of stack, or nil

	Layout *Layout // pointer into configured layout table
}

// Selected returns the view's selected client, or nil.
func (v *View) Selected() *Client { return v.sel }

// Clients returns the view's client list head-to-tail (display order).
func (v *View) Clients() []*Client {
	var out []*Client
	for c := v.clients; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Stack returns the view's focus stack, most-recently-focused first.
func (v *View) Stack() []*Client {
	var out []*Client
	for c := v.stack; c != nil; c = c.snext {
		out = append(out, c)
	}
	return out
}

// HasClients reports whether the view has any clients at all — the same
// condition the bar model's "occupied" square tests (§4.11).
func (v *View) HasClients() bool { return v.clients != nil }

// HasUrgentClient reports whether any client of the view is urgent.
func (v *View) HasUrgentClient() bool {
	for c := v.clients; c != nil; c = c.next {
		if c.Urgent {
			return true
		}
	}
	return false
}

// Monitor is one per unique Xinerama geometry (§3).
type Monitor struct {
	Num int

	ScreenRect geom.Rect // mx, my, mw, mh
	WindowRect geom.Rect // wx, wy, ww, wh = screen minus bar

	BarY      int32
	BarHeight int32
	ShowBar   bool
	TopBar    bool

	Views        [NumViews]View
	SelViewIdx   int
	LayoutSymbol string

	BarWin Window
}

// SelView returns the monitor's currently selected view.
func (m *Monitor) SelView() *View { return &m.Views[m.SelViewIdx] }

// Global is the process-wide window-management state (§3's "Global").
// It is passed explicitly through the Engine rather than held in package
// globals — per §9's design note, a modern rewrite should not resurrect
// the free-global-X-state pattern taowm and dwm both use.
type Global struct {
	Monitors   []*Monitor
	SelMonIdx  int
	Root       Window
	StatusText string // read from root WM_NAME, bounded to 256 bytes

	Config *Config
	Log    *slog.Logger
}

// SelMon returns the globally selected monitor.
func (g *Global) SelMon() *Monitor { return g.Monitors[g.SelMonIdx] }
