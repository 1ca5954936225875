package wm

import "testing"

// TestAttachInsertsAtHead checks dwm's attach law: the most recently
// managed client becomes the new list head, so tiling layouts that pick
// "the first tiled client" as master pick the newest window.
func TestAttachInsertsAtHead(t *testing.T) {
	e, _ := newTestEngine(0.5)
	manageFixed(e, 1)
	manageFixed(e, 2)
	manageFixed(e, 3)

	v := e.g.SelMon().SelView()
	clients := v.Clients()
	if len(clients) != 3 {
		t.Fatalf("got %d clients, want 3", len(clients))
	}
	if clients[0].Win != 3 {
		t.Errorf("list head = window %d, want 3 (most recently managed)", clients[0].Win)
	}
}

// TestDetachStackMovesSelectionToNewHead checks DetachStack's law: removing
// the selected client's stack entry must not leave sel dangling.
func TestDetachStackMovesSelectionToNewHead(t *testing.T) {
	e, _ := newTestEngine(0.5)
	manageFixed(e, 1)
	manageFixed(e, 2)

	v := e.g.SelMon().SelView()
	sel := v.Selected()
	if sel == nil {
		t.Fatal("expected a selected client after managing two windows")
	}
	DetachStack(sel)
	if v.sel == sel {
		t.Error("sel still points at the detached client")
	}
}

// TestUnmanageRemovesClientAndRearranges checks that unmanaging a window
// drops it from both the client list and the focus stack.
func TestUnmanageRemovesClientAndRearranges(t *testing.T) {
	e, _ := newTestEngine(0.5)
	manageFixed(e, 1)
	manageFixed(e, 2)

	e.Unmanage(1, true)

	if e.WindowToClient(1) != nil {
		t.Error("window 1 still resolves to a client after Unmanage")
	}
	v := e.g.SelMon().SelView()
	for _, c := range v.Clients() {
		if c.Win == 1 {
			t.Error("window 1 still present in client list")
		}
	}
}

// TestFocusStackWrapsAround checks FocusStack's wraparound law at the tail.
func TestFocusStackWrapsAround(t *testing.T) {
	e, _ := newTestEngine(0.5)
	manageFixed(e, 1)
	manageFixed(e, 2)
	manageFixed(e, 3)

	v := e.g.SelMon().SelView()
	e.Focus(e.WindowToClient(1)) // tail of the list (1 managed first, 3 is head)
	e.FocusStack(1)
	if v.Selected().Win != 3 {
		t.Errorf("focus after wrap = window %d, want 3 (list head)", v.Selected().Win)
	}
}
