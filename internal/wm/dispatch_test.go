package wm

import "testing"

// TestFullscreenRoundTrip exercises spec.md §8's case 6: W1 in tile;
// setting fullscreen stretches it to (0,0,1920,1080) with bw=0 and
// floating; unsetting restores the pre-fullscreen rectangle, border, and
// floating flag, then re-arranges.
func TestFullscreenRoundTrip(t *testing.T) {
	e, f := newTestEngine(0.55)
	manageFixed(e, 1)
	c := e.WindowToClient(1)
	if c == nil {
		t.Fatal("window 1 was not managed")
	}
	preRect := c.Rect
	preBW := c.BW
	preFloating := c.Floating

	e.SetFullscreen(c, true)
	want := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	if got := f.moved[1]; got != want {
		t.Errorf("fullscreen rect = %+v, want %+v", got, want)
	}
	if c.BW != 0 {
		t.Errorf("fullscreen bw = %d, want 0", c.BW)
	}
	if !c.Floating {
		t.Error("fullscreen client should be floating")
	}
	if !c.Fullscreen {
		t.Error("client.Fullscreen should be true")
	}

	e.SetFullscreen(c, false)
	if c.Rect != preRect {
		t.Errorf("restored rect = %+v, want %+v", c.Rect, preRect)
	}
	if c.BW != preBW {
		t.Errorf("restored bw = %d, want %d", c.BW, preBW)
	}
	if c.Floating != preFloating {
		t.Errorf("restored floating = %v, want %v", c.Floating, preFloating)
	}
	if c.Fullscreen {
		t.Error("client.Fullscreen should be false after unset")
	}
}

// TestHandleClientMessageIgnoresUnmanagedWindow guards against a panic on
// a _NET_WM_STATE message for a window the engine never managed.
func TestHandleClientMessageIgnoresUnmanagedWindow(t *testing.T) {
	e, _ := newTestEngine(0.55)
	e.handleClientMessage(ClientMessageEvent{Win: 99, Type: "_NET_WM_STATE", Data: []uint32{1, 0}})
}
