package wm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestTileTwoWindows checks the worked example in spec.md §8: 1920x1080,
// mfact=0.55, border=1, bar_height=14 (so wx=0, wy=14, ww=1920, wh=1066).
// Two tiled windows, mw = 0.55*1920 = 1056; W1 = (0,14,1054,1064),
// W2 = (1056,14,862,1064).
func TestTileTwoWindows(t *testing.T) {
	e, f := newTestEngine(0.55)
	manageFixed(e, 1)
	manageFixed(e, 2)

	w1, ok := f.moved[1]
	if !ok {
		t.Fatal("window 1 was never moved/resized")
	}
	w2, ok := f.moved[2]
	if !ok {
		t.Fatal("window 2 was never moved/resized")
	}

	want1 := Rect{X: 0, Y: 14, Width: 1054, Height: 1064}
	want2 := Rect{X: 1056, Y: 14, Width: 862, Height: 1064}
	if diff := cmp.Diff(want1, w1); diff != "" {
		t.Errorf("master rect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want2, w2); diff != "" {
		t.Errorf("stack rect mismatch (-want +got):\n%s", diff)
	}
}

// TestMirrortileTwoWindows checks the mirrortile worked example: mh =
// 0.55*1066 = 586; W1 = (0,14,1918,584), W2 = (0,600,1918,478).
func TestMirrortileTwoWindows(t *testing.T) {
	e, f := newTestEngine(0.55)
	m := e.g.SelMon()
	mirror := &Layout{Symbol: "><>", Arrange: mirrortileArrange}
	for i := range m.Views {
		m.Views[i].Layout = mirror
	}

	manageFixed(e, 1)
	manageFixed(e, 2)

	w1 := f.moved[1]
	w2 := f.moved[2]
	want1 := Rect{X: 0, Y: 14, Width: 1918, Height: 584}
	want2 := Rect{X: 0, Y: 600, Width: 1918, Height: 478}
	if w1 != want1 {
		t.Errorf("master rect = %+v, want %+v", w1, want1)
	}
	if w2 != want2 {
		t.Errorf("stack rect = %+v, want %+v", w2, want2)
	}
}

// TestTileSingleWindowFillsWindowRect: n==1, master fills the whole
// window area (spec.md §8 case 1 / layout.go's tileArrange n==1 branch).
func TestTileSingleWindowFillsWindowRect(t *testing.T) {
	e, f := newTestEngine(0.55)
	manageFixed(e, 1)

	got := f.moved[1]
	want := Rect{X: 0, Y: 14, Width: 1918, Height: 1064}
	if got != want {
		t.Errorf("single tiled window rect = %+v, want %+v", got, want)
	}
}

// TestTileRemainderDistribution checks §4.2/§4.10's invariant: the sum of
// stacked clients' heights (plus their 2*bw) exactly equals wh, with no
// pixel left undistributed, for a stack count that doesn't divide evenly.
func TestTileRemainderDistribution(t *testing.T) {
	e, f := newTestEngine(0.5)
	manageFixed(e, 1)
	manageFixed(e, 2)
	manageFixed(e, 3)
	manageFixed(e, 4)

	wh := e.g.SelMon().WindowRect.Height
	var sum int32
	for _, win := range []Window{2, 3, 4} {
		r := f.moved[win]
		sum += r.Height + 2*1 // border width is 1
	}
	if sum != wh {
		t.Errorf("stack heights + borders sum to %d, want %d (wh)", sum, wh)
	}
}

// TestMonocleArrangesFullArea verifies monocle fills the whole window area
// for every tiled client and sets the layout symbol to the total client
// count (layout.go's monocleArrange).
func TestMonocleArrangesFullArea(t *testing.T) {
	e, f := newTestEngine(0.55)
	m := e.g.SelMon()
	monocle := &Layout{Symbol: "[M]", Arrange: monocleArrange}
	for i := range m.Views {
		m.Views[i].Layout = monocle
	}

	manageFixed(e, 1)
	manageFixed(e, 2)

	want := Rect{X: 0, Y: 14, Width: 1918, Height: 1064}
	for _, win := range []Window{1, 2} {
		if got := f.moved[win]; got != want {
			t.Errorf("window %d rect = %+v, want %+v", win, got, want)
		}
	}
	if m.LayoutSymbol != "[2]" {
		t.Errorf("layout symbol = %q, want [2]", m.LayoutSymbol)
	}
}

// TestTileIdempotent re-arranging with unchanged inputs yields identical
// rectangles (spec.md §8's idempotence invariant).
func TestTileIdempotent(t *testing.T) {
	e, f := newTestEngine(0.55)
	manageFixed(e, 1)
	manageFixed(e, 2)
	manageFixed(e, 3)

	before := map[Window]Rect{1: f.moved[1], 2: f.moved[2], 3: f.moved[3]}
	e.Arrange(e.g.SelMon())
	for win, r := range before {
		if got := f.moved[win]; got != r {
			t.Errorf("window %d rect changed on re-arrange: %+v -> %+v", win, r, got)
		}
	}
}
