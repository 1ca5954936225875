package wm

// Attach inserts c at the head of its view's client list (dwm's attach:
// newest window is the new list head, so layouts that pick "the first
// tiled client" as master naturally pick the most recently managed one).
func Attach(c *Client) {
	v := &c.Monitor.Views[c.View]
	c.next = v.clients
	v.clients = c
}

// Detach removes c from its view's client list.
func Detach(c *Client) {
	v := &c.Monitor.Views[c.View]
	if v.clients == c {
		v.clients = c.next
		c.next = nil
		return
	}
	for p := v.clients; p != nil; p = p.next {
		if p.next == c {
			p.next = c.next
			c.next = nil
			return
		}
	}
}

// AttachStack inserts c at the head of its view's focus stack.
func AttachStack(c *Client) {
	v := &c.Monitor.Views[c.View]
	c.snext = v.stack
	v.stack = c
}

// DetachStack removes c from its view's focus stack. If c was the view's
// selected client, selection moves to the new stack head — dwm's
// detachstack does the same, so a killed or unmanaged focused client never
// leaves sel dangling.
func DetachStack(c *Client) {
	v := &c.Monitor.Views[c.View]
	if v.stack == c {
		v.stack = c.snext
	} else {
		for p := v.stack; p != nil; p = p.snext {
			if p.snext == c {
				p.snext = c.snext
				break
			}
		}
	}
	c.snext = nil
	if v.sel == c {
		v.sel = v.stack
	}
}

// NextTiled returns the first client at or after c that is not floating —
// the tiling layouts' view of the client list skips floating windows
// entirely (dwm's nexttiled).
func NextTiled(c *Client) *Client {
	for c != nil && c.Floating {
		c = c.next
	}
	return c
}
