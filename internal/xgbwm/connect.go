// Package xgbwm is the concrete Surface implementation (internal/wm.Surface)
// over github.com/BurntSushi/xgb: connection setup, atom interning, Xinerama
// queries, property access, grabs, error filtering, and translation of raw
// xgb events into the small event-type enum internal/wm accepts. This is
// the only package that imports xgb; internal/wm never does (§1, §9).
//
// The split mirrors the teacher's own separation of concerns (xinit.go and
// main.go do all direct xgb calls; geom.go and actions.go manipulate the
// pure data model) but makes the boundary an actual Go interface.
package xgbwm

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/mozzenior/wm/internal/wm"
)

// Surface is the xgb-backed implementation of wm.Surface.
type Surface struct {
	conn   *xgb.Conn
	screen *xp.ScreenInfo
	root   xp.Window
	atoms  atomTable
	log    *slog.Logger

	keysyms     [256][2]xp.Keysym
	numLockMask uint16

	moveCursor   xp.Cursor
	resizeCursor xp.Cursor

	drawer Drawer

	maxTitleBytes int

	// pending holds events PollForEvent pulled out of the queue while
	// draining EnterNotify (DrainEnterNotify) that turned out not to be
	// EnterNotify themselves; NextEvent serves these before calling
	// WaitForEvent again so nothing is lost.
	pending []xgb.Event
}

// Connect opens the X display, takes substructure-redirect ownership of the
// root window (failing loudly if another window manager already holds it,
// per §7's startup-fatal taxonomy), and interns the atoms §6 names. It does
// not yet scan existing windows or enter the event loop; the caller
// (cmd/wm) does that via wm.Engine.Scan/Run.
func Connect(log *slog.Logger, maxTitleBytes int) (*Surface, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xgbwm: open display: %w", err)
	}

	setup := xp.Setup(conn)
	if setup == nil || len(setup.Roots) < 1 {
		conn.Close()
		return nil, fmt.Errorf("xgbwm: no screens in X setup")
	}
	screen := &setup.Roots[0]

	if err := xinerama.Init(conn); err != nil {
		log.Warn("xgbwm: xinerama init failed, falling back to single screen", "err", err)
	}

	s := &Surface{
		conn:          conn,
		screen:        screen,
		root:          screen.Root,
		log:           log,
		maxTitleBytes: maxTitleBytes,
	}

	if err := xp.ChangeWindowAttributesChecked(conn, s.root, xp.CwEventMask, []uint32{
		xp.EventMaskSubstructureRedirect |
			xp.EventMaskSubstructureNotify |
			xp.EventMaskButtonPress |
			xp.EventMaskPropertyChange |
			xp.EventMaskStructureNotify,
	}).Check(); err != nil {
		conn.Close()
		if _, ok := err.(xp.AccessError); ok {
			return nil, fmt.Errorf("xgbwm: another window manager is already running")
		}
		return nil, fmt.Errorf("xgbwm: select root events: %w", err)
	}

	s.atoms = internAtoms(s)
	s.advertiseNetSupported()
	s.initCursors()
	s.updateNumlockMask()

	return s, nil
}

func (s *Surface) advertiseNetSupported() {
	supported := []xp.Atom{
		s.atoms.netSupported,
		s.atoms.netWMName,
		s.atoms.netWMState,
		s.atoms.netWMFullscreen,
	}
	data := make([]byte, 0, 4*len(supported))
	for _, a := range supported {
		data = append(data, byte(a), byte(a>>8), byte(a>>16), byte(a>>24))
	}
	s.check(xp.ChangePropertyChecked(s.conn, xp.PropModeReplace, s.root, s.atoms.netSupported,
		xp.AtomAtom, 32, uint32(len(supported)), data))
}

func (s *Surface) initCursors() {
	leftPtr, err := s.loadFontCursor(68) // XC_left_ptr
	if err != nil {
		s.log.Warn("xgbwm: load left_ptr cursor failed", "err", err)
	}
	fleur, err := s.loadFontCursor(52) // XC_fleur
	if err != nil {
		s.log.Warn("xgbwm: load fleur cursor failed", "err", err)
	}
	bottomRight, err := s.loadFontCursor(14) // XC_bottom_right_corner
	if err != nil {
		s.log.Warn("xgbwm: load bottom_right_corner cursor failed", "err", err)
	}
	if leftPtr != 0 {
		s.check(xp.ChangeWindowAttributesChecked(s.conn, s.root, xp.CwCursor, []uint32{uint32(leftPtr)}))
	}
	s.moveCursor = fleur
	s.resizeCursor = bottomRight
}

// loadFontCursor opens the standard "cursor" font and builds a glyph cursor
// from it, the same sequence taowm's initDesktop uses for its single
// pointer cursor.
func (s *Surface) loadFontCursor(glyph uint16) (xp.Cursor, error) {
	font, err := xp.NewFontId(s.conn)
	if err != nil {
		return 0, err
	}
	if err := xp.OpenFontChecked(s.conn, font, uint16(len("cursor")), "cursor").Check(); err != nil {
		return 0, err
	}
	cursor, err := xp.NewCursorId(s.conn)
	if err != nil {
		return 0, err
	}
	if err := xp.CreateGlyphCursorChecked(s.conn, cursor, font, font, glyph, glyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff).Check(); err != nil {
		return 0, err
	}
	if err := xp.CloseFontChecked(s.conn, font).Check(); err != nil {
		return 0, err
	}
	return cursor, nil
}

// SetDrawer installs the out-of-scope draw collaborator (§1) that turns
// wm.BarSection slices into pixels. Optional: a nil drawer leaves bar
// windows created and mapped, and DrawBar becomes a no-op, which is
// enough to keep the engine's invariants testable
// without a real font/draw stack.
func (s *Surface) SetDrawer(d Drawer) { s.drawer = d }

func (s *Surface) Root() wm.Window { return wm.Window(s.root) }

func (s *Surface) ScreenRect() wm.Rect {
	return wm.Rect{X: 0, Y: 0, Width: int32(s.screen.WidthInPixels), Height: int32(s.screen.HeightInPixels)}
}

func (s *Surface) QueryTree() ([]wm.Window, error) {
	r, err := xp.QueryTree(s.conn, s.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("xgbwm: query tree: %w", err)
	}
	out := make([]wm.Window, len(r.Children))
	for i, c := range r.Children {
		out[i] = wm.Window(c)
	}
	return out, nil
}

func (s *Surface) GetWindowAttributes(w wm.Window) (overrideRedirect bool, mapped bool, err error) {
	r, err := xp.GetWindowAttributes(s.conn, xp.Window(w)).Reply()
	if err != nil {
		return false, false, err
	}
	return r.OverrideRedirect, r.MapState != xp.MapStateUnmapped, nil
}

// GetGeometry reads w's position, size and border width (dwm's manage()
// reading wa.x/wa.y/wa.width/wa.height/wa.border_width off the same
// XGetWindowAttributes call xgb splits into two requests).
func (s *Surface) GetGeometry(w wm.Window) (wm.WindowAttrs, error) {
	r, err := xp.GetGeometry(s.conn, xp.Drawable(w)).Reply()
	if err != nil {
		return wm.WindowAttrs{}, err
	}
	return wm.WindowAttrs{
		X:           int32(r.X),
		Y:           int32(r.Y),
		Width:       int32(r.Width),
		Height:      int32(r.Height),
		BorderWidth: int32(r.BorderWidth),
	}, nil
}

func (s *Surface) Close() {
	s.conn.Close()
}

// checker is satisfied by every xgb *Cookie type returned from a Checked
// request.
type checker interface{ Check() error }

// check runs c.Check() and logs the reply error unless it is on the §7
// whitelist, mirroring taowm's deferred checkers slice — but inline, since
// the engine never needs to intentionally delay a check past the same
// handler that issued the request.
func (s *Surface) check(c checker) {
	if err := c.Check(); err != nil && !ignorableXError(err) {
		s.log.Warn("xgbwm: x request failed", "err", err)
	}
}
