package wm

import "github.com/mozzenior/wm/internal/geom"

// Surface is the engine's only window onto X11 (§1, §8). Every X operation
// the engine performs — querying geometry, reparenting, grabbing input,
// sending synthetic events — goes through this interface, never through a
// package-level connection, so that the engine can be driven and asserted
// against in tests without a real X server (see internal/xgbwm for the
// concrete implementation and *_test.go files here for the fake).
//
// Method names follow the X protocol request they wrap, the same
// correspondence taowm's xinit.go/main.go draw between their own functions
// and the xgb calls underneath.
type Surface interface {
	// NextEvent blocks until the next X event or error is available. It is
	// the engine's one suspension point (§5): Run calls it synchronously,
	// in the main loop, never from a separate goroutine.
	NextEvent() (Event, error)

	// Root returns the real X root window id (§3's "root window handle"),
	// read once at NewEngine construction time.
	Root() Window
	ScreenRect() Rect
	MonitorRects() []Rect // one per Xinerama head; a single entry if Xinerama is absent

	QueryTree() ([]Window, error)
	GetWindowAttributes(w Window) (overrideRedirect bool, mapped bool, err error)
	// GetGeometry reads a window's current position, size and border width
	// directly from the server — used by Manage so a newly mapped or
	// pre-existing window is placed at the geometry it actually has,
	// rather than at the origin.
	GetGeometry(w Window) (WindowAttrs, error)
	GetTransientFor(w Window) (Window, bool)
	GetSizeHints(w Window) SizeHints
	GetWMProtocols(w Window) (delete, takeFocus bool)
	GetWMHints(w Window) (urgent bool)
	// ClearUrgentHint patches w's WM_HINTS property so its urgency bit reads
	// clear at the X level (§4.7 step 3: "Clear c.urgent by patching its WM
	// hints"), not just in the engine's own Client.Urgent field — otherwise
	// a later UpdateWMHints re-read would resurrect it.
	ClearUrgentHint(w Window)
	GetWindowTitle(w Window) string
	GetWMState(w Window) (WMState, bool)
	GetRootPropertyString() string // root WM_NAME, used as the status text

	SelectInputManaged(w Window)
	SelectInputRoot()
	// ConfigureRaw honors an unmanaged window's own ConfigureRequest
	// verbatim (dwm's configurerequest default branch).
	ConfigureRaw(ev ConfigureRequestEvent)
	// NotifyUnchanged tells a tiled client its ConfigureRequest was heard
	// but nothing changed, via a synthetic ConfigureNotify carrying its
	// current geometry (dwm's configure()).
	NotifyUnchanged(w Window, r Rect, bw int32)
	MoveResize(w Window, r Rect, bw int32)
	MoveWindow(w Window, x, y int32)
	SetBorderColor(w Window, rgb uint32)
	Raise(w Window)
	StackBelow(w, sibling Window)
	// DrainEnterNotify discards any EnterNotify events already queued on the
	// connection (§4.5: restacking reconfigures windows under the pointer,
	// which generates synthetic enters that would otherwise falsely steal
	// focus). It must not discard events of any other type.
	DrainEnterNotify()
	MapWindow(w Window)
	UnmapWindow(w Window)
	ReparentToRoot(w Window) // reparents w to the root; the engine never calls it
	SetInputFocus(w Window)
	SetWMState(w Window, state WMState)
	SetFullscreenState(w Window, fullscreen bool)
	SendDeleteWindow(w Window)
	KillClient(w Window)

	GrabKeys(bindings []KeyBinding)
	GrabButtons(bindings []ButtonBinding, w Window)
	GrabAnyButton(w Window)
	UngrabButtons(w Window)
	NumLockMask() uint16

	GrabPointerForMove() bool
	GrabPointerForResize() bool
	UngrabPointer()
	QueryPointer() (rootX, rootY int32, mask uint16)
	WarpPointer(x, y int32)

	CreateBar(m *Monitor) Window
	DrawBar(m *Monitor, sections []BarSection)

	Spawn(argv []string) error

	Close()
}

// WMState mirrors ICCCM's WM_STATE property values (§4.1/§9's "manage"
// supplement).
type WMState int

const (
	WMStateWithdrawn WMState = 0
	WMStateNormal    WMState = 1
	WMStateIconic    WMState = 3
)

// Rect and SizeHints alias their internal/geom counterparts so Surface
// implementations don't need a second copy of these types.
type Rect = geom.Rect
type SizeHints = geom.SizeHints

// Event is the sum type the dispatcher (dispatch.go) switches on. Each
// concrete type below corresponds to exactly one X event the engine cares
// about; events it ignores are never translated by the Surface in the
// first place.
type Event interface{ isEvent() }

type MapRequestEvent struct{ Win Window }
type UnmapNotifyEvent struct{ Win Window }
type DestroyNotifyEvent struct{ Win Window }
type ConfigureRequestEvent struct {
	Win            Window
	X, Y           int32
	Width, Height  int32
	BorderWidth    int32
	ValueMask      uint16
	Sibling        Window
	StackMode      uint8
}
type ConfigureNotifyEvent struct{ Win Window }
type PropertyNotifyEvent struct {
	Win  Window
	Atom string // "WM_NAME", "_NET_WM_NAME", "WM_HINTS", "WM_NORMAL_HINTS", "WM_TRANSIENT_FOR" or "_NET_WM_STATE"; always "WM_NAME" for the root
}
type ClientMessageEvent struct {
	Win  Window
	Type string // "_NET_WM_STATE"
	Data []uint32
}
type EnterNotifyEvent struct {
	Win          Window
	Mode, Detail uint8
}
type FocusInEvent struct{ Win Window }
type ButtonPressEvent struct {
	Win      Window // the window the button press landed on (root or a client)
	Button   uint8
	State    uint16
	RootX, RootY int32
}
type KeyPressEvent struct {
	Win          Window
	Keysym       uint32
	State        uint16
	RootX, RootY int32
}
type ExposeEvent struct{ Win Window }
type ButtonReleaseEvent struct{}
type MappingNotifyEvent struct{}
type MotionNotifyEvent struct {
	RootX, RootY int32
}

func (MapRequestEvent) isEvent()       {}
func (UnmapNotifyEvent) isEvent()      {}
func (DestroyNotifyEvent) isEvent()    {}
func (ConfigureRequestEvent) isEvent() {}
func (ConfigureNotifyEvent) isEvent()  {}
func (PropertyNotifyEvent) isEvent()   {}
func (ClientMessageEvent) isEvent()    {}
func (EnterNotifyEvent) isEvent()      {}
func (FocusInEvent) isEvent()          {}
func (ButtonPressEvent) isEvent()      {}
func (KeyPressEvent) isEvent()         {}
func (ExposeEvent) isEvent()           {}
func (ButtonReleaseEvent) isEvent()    {}
func (MappingNotifyEvent) isEvent()    {}
func (MotionNotifyEvent) isEvent()     {}
