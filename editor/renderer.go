package editor

import (
	"fmt"
	"time"
)

const messageBarTimeout = 5 * time.Second

// refreshScreen composes one full frame into a frameBuffer and writes it
// to the terminal in a single call, per spec.md §4.8. It is the only
// place a frame reaches the screen; Controller calls it once per loop
// iteration and once per prompt keystroke.
func (e *Editor) refreshScreen() {
	e.view.Scroll(e.doc)

	var fb frameBuffer
	fb.writeString("\x1b[?25l") // hide cursor
	fb.writeString("\x1b[H")    // cursor to home

	switch e.mode {
	case ModeEdit:
		e.drawRows(&fb)
		e.drawStatusBar(&fb)
		e.drawMessageBar(&fb)
		fmt.Fprintf(&fb, "\x1b[%d;%dH", (e.view.Cy-e.view.RowOff)+1, (e.view.Rx-e.view.ColOff)+1)
	default:
		e.drawModal(&fb)
	}

	fb.writeString("\x1b[?25h") // show cursor

	if err := e.driver.Write(fb.b); err != nil {
		e.Die(err)
	}
}

// drawRows renders the visible window of document rows, or the welcome
// banner when the document has no rows, per spec.md §4.8.
func (e *Editor) drawRows(fb *frameBuffer) {
	v := e.view
	for y := 0; y < v.ScreenRows; y++ {
		fileRow := y + v.RowOff
		if fileRow >= e.doc.RowCount() {
			if e.doc.RowCount() == 0 && y == v.ScreenRows/3 {
				e.drawWelcome(fb)
			} else {
				fb.writeByte('~')
			}
		} else {
			e.drawRow(fb, e.doc.Row(fileRow))
		}
		fb.writeString("\x1b[K")
		fb.writeString("\r\n")
	}
}

// drawWelcome centers the startup banner, shown only while the buffer
// has no rows.
func (e *Editor) drawWelcome(fb *frameBuffer) {
	welcome := fmt.Sprintf("kigo editor -- version %s", Version)
	if len(welcome) > e.view.ScreenCols {
		welcome = welcome[:e.view.ScreenCols]
	}
	padding := (e.view.ScreenCols - len(welcome)) / 2
	if padding > 0 {
		fb.writeByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		fb.writeByte(' ')
	}
	fb.writeString(welcome)
}

// drawRow writes the visible, horizontally-scrolled slice of one row's
// render bytes, switching the terminal's foreground colour at every
// highlight-code boundary, per spec.md §4.3/§4.8.
func (e *Editor) drawRow(fb *frameBuffer, row *Row) {
	v := e.view
	render := row.Render()
	hl := row.Highlights()

	start := v.ColOff
	if start > len(render) {
		start = len(render)
	}
	end := start + v.ScreenCols
	if end > len(render) {
		end = len(render)
	}

	current := -1
	for i := start; i < end; i++ {
		code := colourCode(hl[i])
		if code != current {
			fb.writeSGR(code)
			current = code
		}
		fb.writeByte(render[i])
	}
	fb.writeSGR(39)
}

// drawStatusBar renders the inverse-video status line: filename/dirty
// marker/line-count on the left, filetype/cursor-position on the right,
// per spec.md §4.8. Exactly as in the original, a right segment wider
// than the remaining space is simply not drawn — not clipped.
func (e *Editor) drawStatusBar(fb *frameBuffer) {
	fb.writeSGR(7)

	name := e.doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	dirtyMark := ""
	if e.doc.Dirty() > 0 {
		dirtyMark = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", name, e.doc.RowCount(), dirtyMark)
	if len(left) > e.view.ScreenCols {
		left = left[:e.view.ScreenCols]
	}

	filetype := "no ft"
	if syntax := e.doc.Syntax(); syntax != nil {
		filetype = syntax.Filetype
	}
	right := fmt.Sprintf("%s | %d/%d", filetype, e.view.Cy+1, e.doc.RowCount())

	fb.writeString(left)
	for col := len(left); col < e.view.ScreenCols; col++ {
		if e.view.ScreenCols-col == len(right) {
			fb.writeString(right)
			break
		}
		fb.writeByte(' ')
	}
	fb.writeSGR(0)
	fb.writeString("\r\n")
}

// drawModal renders a modal screen's content through the same row
// pipeline as the buffer, with a title bar in place of the filename
// line, per SPEC_FULL.md §4.10/§4.11.
func (e *Editor) drawModal(fb *frameBuffer) {
	v := e.view
	for y := 0; y < v.ScreenRows; y++ {
		fileRow := y + v.RowOff
		if fileRow < e.doc.RowCount() {
			e.drawRow(fb, e.doc.Row(fileRow))
		}
		fb.writeString("\x1b[K")
		fb.writeString("\r\n")
	}
	e.drawModalStatusBar(fb)
	e.drawMessageBar(fb)
	fmt.Fprintf(fb, "\x1b[%d;1H", (e.view.Cy-e.view.RowOff)+1)
}

// drawModalStatusBar is drawStatusBar's modal counterpart: the title
// replaces the filename, and there is no dirty marker or filetype to
// report.
func (e *Editor) drawModalStatusBar(fb *frameBuffer) {
	fb.writeSGR(7)
	left := fmt.Sprintf(" %s ", e.modalTitle)
	if len(left) > e.view.ScreenCols {
		left = left[:e.view.ScreenCols]
	}
	fb.writeString(left)
	for col := len(left); col < e.view.ScreenCols; col++ {
		fb.writeByte(' ')
	}
	fb.writeSGR(0)
	fb.writeString("\r\n")
}

// drawMessageBar shows the most recent status message for up to
// messageBarTimeout, per spec.md §3/§4.8.
func (e *Editor) drawMessageBar(fb *frameBuffer) {
	fb.writeString("\x1b[K")
	msg := e.statusMessage
	if len(msg) > e.view.ScreenCols {
		msg = msg[:e.view.ScreenCols]
	}
	if time.Since(e.statusMessageTime) < messageBarTimeout {
		fb.writeString(msg)
	}
}
