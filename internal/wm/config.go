package wm

import (
	"strconv"
	"strings"

	"github.com/mozzenior/wm/internal/config"
)

// Layout pairs a status-bar symbol with the arranger that computes tiled
// client rectangles for a monitor's selected view (§4.4). A nil Arrange
// means floating behavior: the layout leaves geometry untouched.
type Layout struct {
	Symbol  string
	Arrange func(e *Engine, m *Monitor)
}

// Action is the closed set of bindable operations (§6). Per §9's design
// note, this replaces the original's function-pointer-plus-argument-union
// with an enum carrying a typed Arg, dispatched by a single switch in
// actions.go.
type Action int

const (
	ActionNone Action = iota
	ActionFocusNextClient
	ActionFocusPrevClient
	ActionFocusNextMonitor
	ActionFocusPrevMonitor
	ActionSendNextMonitor
	ActionSendPrevMonitor
	ActionToggleBar
	ActionSetLayout
	ActionSetMFact
	ActionZoom
	ActionView
	ActionTag
	ActionKillClient
	ActionToggleFloating
	ActionMoveMouse
	ActionResizeMouse
	ActionSpawn
	ActionQuit
)

// Arg is the typed argument union a binding's Action consumes. Only the
// field relevant to the Action is read.
type Arg struct {
	Int      int     // not read by any Action; next/prev actions carry their direction in the Action itself
	Float    float64 // set-mfact delta
	View     int     // view() / tag() target view index, 0..NumViews-1
	LayoutIx int     // set-layout() index into Config.Layouts
	Argv     []string
}

// ClickArea classifies where on the bar (or elsewhere) a ButtonPress landed
// (§4.8's "classify click region").
type ClickArea int

const (
	ClickTagLabel ClickArea = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWindow
	ClickRootWindow
)

// KeyBinding is one configured (modifiers, keysym) -> action entry.
type KeyBinding struct {
	Mod    uint16
	Keysym uint32
	Action Action
	Arg    Arg
}

// ButtonBinding is one configured (click region, modifiers, button) -> action
// entry.
type ButtonBinding struct {
	Click  ClickArea
	Mod    uint16
	Button uint8
	Action Action
	Arg    Arg
}

// Colors holds the normal/selected foreground/background/border triples
// named in §6's configuration record. Values are packed 24-bit RGB, the
// same representation taowm's config.go uses for its color constants.
type Colors struct {
	NormFG, NormBG, NormBorder uint32
	SelFG, SelBG, SelBorder    uint32
}

// Config is the immutable configuration record of §6, supplied at startup
// and never mutated once the event loop is running.
type Config struct {
	Tags    [NumViews]string
	Layouts []Layout // first entry is the default

	MFact              float64
	Snap               int32
	BorderPx           int32
	ShowBar            bool
	TopBar             bool
	RespectResizeHints bool
	Colors             Colors
	FontSpec           string

	Keys    []KeyBinding
	Buttons []ButtonBinding

	// Spawns holds argv slices for overlay-defined spawn commands, keyed by
	// the name the overlay used under its spawns map (filled by
	// ApplyOverlay). No key or button binding reads this map: ActionSpawn
	// runs its Arg.Argv exactly as given.
	Spawns map[string][]string

	MaxTitleBytes int
}

// DefaultConfig returns the compiled-in configuration record: the four
// layouts of §4.4, dwm's classic mod-key bindings translated onto this
// engine's per-monitor-view (rather than bitmask-tag) model, and sane
// appearance defaults. A build overlays a subset of these fields from YAML
// (see internal/config) before the engine starts.
func DefaultConfig() *Config {
	tags := [NumViews]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

	layouts := []Layout{
		{Symbol: "[]=", Arrange: tileArrange},
		{Symbol: "=[]", Arrange: mirrortileArrange},
		{Symbol: "[M]", Arrange: monocleArrange},
		{Symbol: "><>", Arrange: nil},
	}

	const modKey = ModMask4 // "super"/"windows" key, matching MODKEY=Mod4Mask in config.def.h

	keys := make([]KeyBinding, 0, 64)
	for i := 0; i < NumViews; i++ {
		keys = append(keys,
			KeyBinding{Mod: modKey, Keysym: uint32('1') + uint32(i), Action: ActionView, Arg: Arg{View: i}},
			KeyBinding{Mod: modKey | ModMaskShift, Keysym: uint32('1') + uint32(i), Action: ActionTag, Arg: Arg{View: i}},
		)
	}
	keys = append(keys,
		KeyBinding{Mod: modKey, Keysym: 'j', Action: ActionFocusNextClient},
		KeyBinding{Mod: modKey, Keysym: 'k', Action: ActionFocusPrevClient},
		KeyBinding{Mod: modKey, Keysym: 'h', Action: ActionSetMFact, Arg: Arg{Float: -0.05}},
		KeyBinding{Mod: modKey, Keysym: 'l', Action: ActionSetMFact, Arg: Arg{Float: +0.05}},
		KeyBinding{Mod: modKey, Keysym: xkReturn, Action: ActionZoom},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: 'c', Action: ActionKillClient},
		KeyBinding{Mod: modKey, Keysym: 'm', Action: ActionSetLayout, Arg: Arg{LayoutIx: 2}},
		KeyBinding{Mod: modKey, Keysym: 't', Action: ActionSetLayout, Arg: Arg{LayoutIx: 0}},
		KeyBinding{Mod: modKey, Keysym: 'r', Action: ActionSetLayout, Arg: Arg{LayoutIx: 1}},
		KeyBinding{Mod: modKey, Keysym: 'f', Action: ActionSetLayout, Arg: Arg{LayoutIx: 3}},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: ' ', Action: ActionToggleFloating},
		KeyBinding{Mod: modKey, Keysym: 'b', Action: ActionToggleBar},
		KeyBinding{Mod: modKey, Keysym: 'w', Action: ActionFocusPrevMonitor},
		KeyBinding{Mod: modKey, Keysym: 'e', Action: ActionFocusNextMonitor},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: 'w', Action: ActionSendPrevMonitor},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: 'e', Action: ActionSendNextMonitor},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: xkReturn, Action: ActionSpawn, Arg: Arg{Argv: []string{"xterm"}}},
		KeyBinding{Mod: modKey, Keysym: 'p', Action: ActionSpawn, Arg: Arg{Argv: []string{"dmenu_run"}}},
		KeyBinding{Mod: modKey | ModMaskShift, Keysym: 'q', Action: ActionQuit},
	)

	buttons := []ButtonBinding{
		{Click: ClickWinTitle, Button: 2, Action: ActionZoom},
		{Click: ClickClientWindow, Mod: modKey, Button: 1, Action: ActionMoveMouse},
		{Click: ClickClientWindow, Mod: modKey, Button: 2, Action: ActionToggleFloating},
		{Click: ClickClientWindow, Mod: modKey, Button: 3, Action: ActionResizeMouse},
		{Click: ClickTagLabel, Button: 1, Action: ActionView},
	}

	return &Config{
		Tags:               tags,
		Layouts:            layouts,
		MFact:              0.5,
		Snap:               32,
		BorderPx:           1,
		ShowBar:            true,
		TopBar:             true,
		RespectResizeHints: false,
		Colors: Colors{
			NormFG: 0x000000, NormBG: 0xcccccc, NormBorder: 0xcccccc,
			SelFG: 0xffffff, SelBG: 0x0066ff, SelBorder: 0xff0000,
		},
		FontSpec:      "-misc-fixed-medium-r-normal-*-10-*-*-*-*-*-iso10646-*",
		Keys:          keys,
		Buttons:       buttons,
		MaxTitleBytes: 256,
	}
}

// ApplyOverlay mutates the receiver in place with whatever the operator set
// in o. Called once at startup, before the engine is constructed; never
// called again (§5). Malformed color strings are logged and skipped rather
// than treated as fatal, since a cosmetic typo should not stop the engine
// from starting.
func (c *Config) ApplyOverlay(o *config.Overlay, log func(msg string, args ...any)) {
	if o == nil {
		return
	}
	for i := 0; i < NumViews && i < len(o.Tags); i++ {
		if o.Tags[i] != "" {
			c.Tags[i] = o.Tags[i]
		}
	}
	if o.MFact != nil && 0.1 <= *o.MFact && *o.MFact <= 0.9 {
		c.MFact = *o.MFact
	}
	if o.Snap != nil && *o.Snap >= 0 {
		c.Snap = int32(*o.Snap)
	}
	if o.BorderPx != nil && *o.BorderPx >= 0 {
		c.BorderPx = int32(*o.BorderPx)
	}
	if o.ShowBar != nil {
		c.ShowBar = *o.ShowBar
	}
	if o.TopBar != nil {
		c.TopBar = *o.TopBar
	}
	if o.Resize != nil {
		c.RespectResizeHints = *o.Resize
	}
	if o.FontSpec != nil && *o.FontSpec != "" {
		c.FontSpec = *o.FontSpec
	}
	if o.Colors != nil {
		applyHexColor(&c.Colors.NormFG, o.Colors.NormFG, log)
		applyHexColor(&c.Colors.NormBG, o.Colors.NormBG, log)
		applyHexColor(&c.Colors.NormBorder, o.Colors.NormBorder, log)
		applyHexColor(&c.Colors.SelFG, o.Colors.SelFG, log)
		applyHexColor(&c.Colors.SelBG, o.Colors.SelBG, log)
		applyHexColor(&c.Colors.SelBorder, o.Colors.SelBorder, log)
	}
	for name, line := range o.Spawns {
		argv, err := config.SplitArgv(line)
		if err != nil {
			log("config: skipping malformed spawn binding", "name", name, "err", err)
			continue
		}
		if c.Spawns == nil {
			c.Spawns = make(map[string][]string)
		}
		c.Spawns[name] = argv
	}
}

// applyHexColor parses a "#rrggbb" string into *dst, leaving dst untouched
// if s is empty or malformed.
func applyHexColor(dst *uint32, s string, log func(msg string, args ...any)) {
	if s == "" {
		return
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		log("config: skipping malformed color", "value", s, "err", err)
		return
	}
	*dst = uint32(v)
}
