package wm

// BarSection is one draw-ordered piece of a monitor's status bar: a tag
// label, the layout symbol, the status text, or the selected client's
// title (dwm's drawbar, restated as data instead of immediate-mode
// drawing calls so the surface can render it however it likes and tests
// can assert on it without a real display).
type BarSection struct {
	Click ClickArea
	Text  string

	Selected bool // drawn with the "selected" color pair, not "normal"
	Occupied bool // tag square: view has at least one client; title section: selected client is fixed
	Urgent   bool // tag square/text: view has an urgent client (not set on other sections)
}

// Sections computes m's bar content in left-to-right draw order (dwm's
// drawbar, minus the pixel-geometry bookkeeping the original interleaves
// with its drawing calls — that bookkeeping is the surface's job now).
func Sections(m *Monitor, tags [NumViews]string, isSelMon bool, statusText string) []BarSection {
	sections := make([]BarSection, 0, NumViews+3)
	for i := range m.Views {
		v := &m.Views[i]
		sections = append(sections, BarSection{
			Click:    ClickTagLabel,
			Text:     tags[i],
			Selected: isSelMon && v.sel != nil && i == m.SelViewIdx,
			Occupied: v.clients != nil,
			Urgent:   v.HasUrgentClient(),
		})
	}

	sections = append(sections, BarSection{Click: ClickLayoutSymbol, Text: m.LayoutSymbol})

	if isSelMon {
		sections = append(sections, BarSection{Click: ClickStatusText, Text: statusText})
	}

	if sel := m.SelView().Selected(); sel != nil {
		sections = append(sections, BarSection{
			Click:    ClickWinTitle,
			Text:     sel.Title,
			Selected: isSelMon,
			Occupied: sel.Fixed,
		})
	} else {
		sections = append(sections, BarSection{Click: ClickWinTitle})
	}

	return sections
}

// DrawBar recomputes m's bar sections and asks the surface to render them.
// A monitor with its bar hidden is skipped entirely. Nothing is cached:
// sections are recomputed from the model on every call, so the first draw
// after the bar is shown again is current.
func (e *Engine) DrawBar(m *Monitor) {
	if !m.ShowBar {
		return
	}
	sections := Sections(m, e.g.Config.Tags, m == e.g.SelMon(), e.g.StatusText)
	e.s.DrawBar(m, sections)
}

// updateBarPos recomputes m.WindowRect/BarY from its current ShowBar/TopBar
// settings and screen rectangle (dwm's updatebarpos).
func (e *Engine) updateBarPos(m *Monitor) {
	m.WindowRect = m.ScreenRect
	if m.ShowBar {
		m.WindowRect.Height -= m.BarHeight
		if m.TopBar {
			m.BarY = m.WindowRect.Y
			m.WindowRect.Y += m.BarHeight
		} else {
			m.BarY = m.WindowRect.Y + m.WindowRect.Height
		}
	} else {
		m.BarY = -m.BarHeight
	}
}
