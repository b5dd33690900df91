package editor

// direction of cursor movement, used by MoveCursor.
type direction int

const (
	DirLeft direction = iota
	DirRight
	DirUp
	DirDown
)

// Viewport owns the cursor (logical and rendered) and the scroll
// offsets of the visible window, per spec.md §3/§4.4. It never mutates
// a Document's rows; it only reads Row.Chars()/Len() to clamp cx and
// compute rx.
type Viewport struct {
	Cx, Cy         int
	Rx             int
	RowOff, ColOff int
	ScreenRows     int
	ScreenCols     int
}

// NewViewport builds a Viewport sized for a terminal of totalRows x
// totalCols; the bottom two rows are reserved for the status and
// message bars, per spec.md §3.
func NewViewport(totalRows, totalCols int) *Viewport {
	return &Viewport{ScreenRows: totalRows - 2, ScreenCols: totalCols}
}

// Resize updates the visible area after a window-size change.
func (v *Viewport) Resize(totalRows, totalCols int) {
	v.ScreenRows = totalRows - 2
	v.ScreenCols = totalCols
}

// Scroll recomputes Rx and clamps RowOff/ColOff so the cursor stays
// within the visible window, per spec.md §4.4. It must run before every
// render.
func (v *Viewport) Scroll(doc *Document) {
	v.Rx = 0
	if row := doc.Row(v.Cy); row != nil {
		v.Rx = row.CxToRx(v.Cx)
	}

	if v.Cy < v.RowOff {
		v.RowOff = v.Cy
	}
	if v.Cy >= v.RowOff+v.ScreenRows {
		v.RowOff = v.Cy - v.ScreenRows + 1
	}
	if v.Rx < v.ColOff {
		v.ColOff = v.Rx
	}
	if v.Rx >= v.ColOff+v.ScreenCols {
		v.ColOff = v.Rx - v.ScreenCols + 1
	}
}

// clampCx pins Cx to the current row's length (or 0 on the phantom row),
// the clamp spec.md §4.4 requires after every cursor move.
func (v *Viewport) clampCx(doc *Document) {
	rowLen := 0
	if row := doc.Row(v.Cy); row != nil {
		rowLen = row.Len()
	}
	if v.Cx > rowLen {
		v.Cx = rowLen
	}
}

// MoveCursor applies one of the four arrow directions, per spec.md
// §4.4, including the line-wrap behaviour at LEFT/RIGHT at row
// boundaries.
func (v *Viewport) MoveCursor(dir direction, doc *Document) {
	row := doc.Row(v.Cy)
	switch dir {
	case DirLeft:
		if v.Cx != 0 {
			v.Cx--
		} else if v.Cy > 0 {
			v.Cy--
			if prev := doc.Row(v.Cy); prev != nil {
				v.Cx = prev.Len()
			}
		}
	case DirRight:
		if row != nil && v.Cx < row.Len() {
			v.Cx++
		} else if row != nil && v.Cx == row.Len() {
			v.Cy++
			v.Cx = 0
		}
	case DirUp:
		if v.Cy > 0 {
			v.Cy--
		}
	case DirDown:
		if v.Cy < doc.RowCount() {
			v.Cy++
		}
	}
	v.clampCx(doc)
}

// Home moves the cursor to the start of the current row.
func (v *Viewport) Home() { v.Cx = 0 }

// End moves the cursor to the end of the current row, a no-op on the
// phantom row.
func (v *Viewport) End(doc *Document) {
	if row := doc.Row(v.Cy); row != nil {
		v.Cx = row.Len()
	}
}

// PageUp moves the cursor to the top of the visible window and then up
// by a full screen, per spec.md §4.4.
func (v *Viewport) PageUp(doc *Document) {
	v.Cy = v.RowOff
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(DirUp, doc)
	}
}

// PageDown moves the cursor to the bottom of the visible window and
// then down by a full screen, per spec.md §4.4.
func (v *Viewport) PageDown(doc *Document) {
	v.Cy = min(v.RowOff+v.ScreenRows-1, doc.RowCount())
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(DirDown, doc)
	}
}
