package geom

// BarHeight and RespectResizeHints are passed in by the caller rather than
// read from a package-level config: geom stays free of any dependency on
// internal/config so it can be unit tested in isolation.

// ApplySizeHints implements §4.1: it clamps a proposed rectangle against a
// client's ICCCM size hints and returns the clamped rectangle plus whether
// it differs from cur, the client's current rectangle. The caller decides
// whether a differing result warrants an actual ConfigureWindow.
//
// bound is the rectangle off-screen rescue clamps against: the display for
// interactive moves, the owning monitor's screen rectangle otherwise.
func ApplySizeHints(cur Rect, proposed Rect, bw int32, hints SizeHints, floating, respectHints, interactive bool, bound Rect, barHeight int32) (Rect, bool) {
	r := proposed

	// 1. Minimum extent.
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}

	// 2. Off-screen rescue against bound (display or monitor screen rect).
	if r.X > bound.X+bound.Width {
		r.X = bound.X + bound.Width - (r.Width + 2*bw)
	}
	if r.Y > bound.Y+bound.Height {
		r.Y = bound.Y + bound.Height - (r.Height + 2*bw)
	}
	if r.X+r.Width+2*bw < bound.X {
		r.X = bound.X
	}
	if r.Y+r.Height+2*bw < bound.Y {
		r.Y = bound.Y
	}

	// 3. Never smaller than the bar.
	if r.Height < barHeight {
		r.Height = barHeight
	}
	if r.Width < barHeight {
		r.Width = barHeight
	}

	// 4. ICCCM 4.1.2.3, only for floating clients or when configured to
	// respect hints for tiled clients too.
	if floating || respectHints {
		w, h := r.Width, r.Height
		baseIsMin := hints.BaseW == hints.MinW && hints.BaseH == hints.MinH
		if !baseIsMin {
			w -= hints.BaseW
			h -= hints.BaseH
		}

		if hints.MinA > 0 && hints.MaxA > 0 && w > 0 {
			aspect := float64(h) / float64(w)
			if aspect > hints.MaxA {
				h = int32(float64(w)*hints.MaxA + 0.5)
			} else if aspect < hints.MinA {
				h = int32(float64(w)*hints.MinA + 0.5)
			}
		}

		if baseIsMin {
			w -= hints.BaseW
			h -= hints.BaseH
		}
		if hints.IncW != 0 {
			w -= w % hints.IncW
		}
		if hints.IncH != 0 {
			h -= h % hints.IncH
		}
		w += hints.BaseW
		h += hints.BaseH

		if hints.MinW > 0 && w < hints.MinW {
			w = hints.MinW
		}
		if hints.MinH > 0 && h < hints.MinH {
			h = hints.MinH
		}
		if hints.MaxW > 0 && w > hints.MaxW {
			w = hints.MaxW
		}
		if hints.MaxH > 0 && h > hints.MaxH {
			h = hints.MaxH
		}
		r.Width, r.Height = w, h
	}

	changed := r.X != cur.X || r.Y != cur.Y || r.Width != cur.Width || r.Height != cur.Height
	return r, changed
}
