package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportScrollClampsColOffsetToTabExpandedColumn(t *testing.T) {
	d := newDocWithLines("\tindented")
	v := NewViewport(10, 5) // 8 screen rows, 5 screen cols
	v.Cy, v.Cx = 0, 1       // just past the tab

	v.Scroll(d)

	assert.Equal(t, TabStop, v.Rx)
	assert.Equal(t, TabStop-v.ScreenCols+1, v.ColOff)
}

func TestViewportMoveLeftAtRowStartWrapsToPreviousRowEnd(t *testing.T) {
	d := newDocWithLines("foo", "bar")
	v := NewViewport(10, 80)
	v.Cy, v.Cx = 1, 0

	v.MoveCursor(DirLeft, d)

	assert.Equal(t, 0, v.Cy)
	assert.Equal(t, 3, v.Cx)
}

func TestViewportMoveRightAtRowEndWrapsToNextRowStart(t *testing.T) {
	d := newDocWithLines("foo", "bar")
	v := NewViewport(10, 80)
	v.Cy, v.Cx = 0, 3

	v.MoveCursor(DirRight, d)

	assert.Equal(t, 1, v.Cy)
	assert.Equal(t, 0, v.Cx)
}

func TestViewportMoveDownClampsCxToShorterRow(t *testing.T) {
	d := newDocWithLines("a longer line", "x")
	v := NewViewport(10, 80)
	v.Cy, v.Cx = 0, 10

	v.MoveCursor(DirDown, d)

	assert.Equal(t, 1, v.Cy)
	assert.Equal(t, 1, v.Cx)
}

func TestViewportMoveDownOntoPhantomRowClampsToZero(t *testing.T) {
	d := newDocWithLines("only")
	v := NewViewport(10, 80)
	v.Cy, v.Cx = 0, 4

	v.MoveCursor(DirDown, d)

	assert.Equal(t, 1, v.Cy)
	assert.Equal(t, 0, v.Cx)
}

func TestViewportPageDownThenPageUpReturnsNearOrigin(t *testing.T) {
	lines := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		lines = append(lines, "line")
	}
	d := newDocWithLines(lines...)
	v := NewViewport(12, 80) // ScreenRows = 10

	v.PageDown(d)
	v.Scroll(d)
	afterPageDown := v.Cy
	assert.Greater(t, afterPageDown, 0)

	v.PageUp(d)
	assert.Less(t, v.Cy, afterPageDown)
}
