package editor

import "bytes"

// finder holds the state that persists across Prompt callback
// invocations during incremental search, per spec.md §4.7: the last
// matched row, the search direction, and the single-row highlight
// snapshot used to restore a previously-highlighted match.
type finder struct {
	lastMatch int
	direction int

	savedHlLine int
	savedHl     []Highlight
}

func newFinder() *finder {
	return &finder{lastMatch: -1, direction: 1}
}

// restoreSnapshot undoes the HLMatch overlay from the previous callback
// invocation, if any.
func (f *finder) restoreSnapshot(doc *Document) {
	if f.savedHl == nil {
		return
	}
	if row := doc.Row(f.savedHlLine); row != nil {
		copy(row.hl, f.savedHl)
	}
	f.savedHl = nil
}

// reset clears search state, used on RETURN, ESC, or any key that isn't
// a directional hint.
func (f *finder) reset() {
	f.lastMatch = -1
	f.direction = 1
}

// Callback implements the Prompt callback for incremental find. It is
// called by Editor.prompt after every keystroke in search mode.
func (f *finder) Callback(e *Editor, query []byte, key Key) {
	f.restoreSnapshot(e.doc)

	switch key {
	case '\r', 0x1b:
		f.reset()
		return
	case KeyArrowRight, KeyArrowDown:
		f.direction = 1
	case KeyArrowLeft, KeyArrowUp:
		f.direction = -1
	default:
		f.reset()
	}

	if len(query) == 0 {
		return
	}
	if f.lastMatch == -1 {
		f.direction = 1
	}

	current := f.lastMatch
	total := e.doc.RowCount()
	for i := 0; i < total; i++ {
		current += f.direction
		if current == -1 {
			current = total - 1
		} else if current == total {
			current = 0
		}

		row := e.doc.Row(current)
		match := bytes.Index(row.Render(), query)
		if match == -1 {
			continue
		}

		f.lastMatch = current
		e.view.Cy = current
		e.view.Cx = row.RxToCx(match)
		e.view.RowOff = total // forces Scroll to recentre on the next render

		f.savedHlLine = current
		f.savedHl = append([]Highlight(nil), row.hl...)
		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HLMatch
		}
		break
	}
}

// Find drives the Search prompt, restoring the pre-search cursor and
// scroll position if the user cancels (but not if they submit), per
// spec.md §4.7/§5.
func (e *Editor) Find() {
	savedCx, savedCy := e.view.Cx, e.view.Cy
	savedRowOff, savedColOff := e.view.RowOff, e.view.ColOff

	f := newFinder()
	query, submitted := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(buf []byte, key Key) {
		f.Callback(e, buf, key)
	})
	if !submitted || len(query) == 0 {
		e.view.Cx, e.view.Cy = savedCx, savedCy
		e.view.RowOff, e.view.ColOff = savedRowOff, savedColOff
	}
}
