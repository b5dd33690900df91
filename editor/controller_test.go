package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader feeds a canned byte sequence to an InputDecoder, standing
// in for a term.Driver in tests that never touch a real terminal.
type fakeReader struct {
	bytes      []byte
	pos        int
	rows, cols int
}

var errEndOfInput = errors.New("fakeReader: end of canned input")

func (f *fakeReader) ReadByte() (byte, error) {
	if f.pos >= len(f.bytes) {
		return 0, errEndOfInput
	}
	b := f.bytes[f.pos]
	f.pos++
	return b, nil
}

func (f *fakeReader) TryReadByte() (byte, bool) {
	if f.pos >= len(f.bytes) {
		return 0, false
	}
	b := f.bytes[f.pos]
	f.pos++
	return b, true
}

// fakeReader also satisfies the rest of Driver with no-ops, so tests
// exercising refreshScreen (via prompt) never touch a real terminal.
func (f *fakeReader) Size() (rows, cols int, err error) {
	if f.rows == 0 && f.cols == 0 {
		return 24, 80, nil
	}
	return f.rows, f.cols, nil
}
func (f *fakeReader) Write(buf []byte) error             { return nil }
func (f *fakeReader) Restore()                           {}
func (f *fakeReader) ClearScreen()                       {}

func newControllerEditor(keys []byte, lines ...string) *Editor {
	doc := newDocWithLines(lines...)
	view := NewViewport(12, 80)
	fake := &fakeReader{bytes: keys}
	return &Editor{
		doc:     doc,
		view:    view,
		driver:  fake,
		decoder: NewInputDecoder(fake),
	}
}

func TestProcessKeypressInsertsPrintableCharacters(t *testing.T) {
	e := newControllerEditor([]byte("x"), "ab")
	e.processKeypress()

	assert.Equal(t, "xab", string(e.doc.Row(0).Chars()))
	assert.Equal(t, 1, e.view.Cx)
}

func TestProcessKeypressBackspaceDeletesPrecedingChar(t *testing.T) {
	e := newControllerEditor([]byte{byte(KeyBackspace)}, "ab")
	e.view.Cx = 1

	e.processKeypress()

	assert.Equal(t, "b", string(e.doc.Row(0).Chars()))
	assert.Equal(t, 0, e.view.Cx)
}

func TestProcessKeypressCtrlHAlsoBackspaces(t *testing.T) {
	e := newControllerEditor([]byte{byte(ctrlKey('h'))}, "ab")
	e.view.Cx = 1

	e.processKeypress()

	assert.Equal(t, "b", string(e.doc.Row(0).Chars()))
}

func TestProcessKeypressEnterSplitsRow(t *testing.T) {
	e := newControllerEditor([]byte{'\r'}, "hello")
	e.view.Cx = 2

	e.processKeypress()

	require.Equal(t, 2, e.doc.RowCount())
	assert.Equal(t, "he", string(e.doc.Row(0).Chars()))
	assert.Equal(t, "llo", string(e.doc.Row(1).Chars()))
	assert.Equal(t, 1, e.view.Cy)
	assert.Equal(t, 0, e.view.Cx)
}

func TestProcessKeypressCtrlQCountsDownOverThreeWarningsThenWouldExit(t *testing.T) {
	e := newControllerEditor([]byte{
		byte(ctrlKey('q')), byte(ctrlKey('q')), byte(ctrlKey('q')),
	}, "ab")
	e.doc.dirty = 1

	e.processKeypress()
	assert.Equal(t, 1, e.pendingQuit)
	assert.Contains(t, e.statusMessage, "3 more times")

	e.processKeypress()
	assert.Equal(t, 2, e.pendingQuit)
	assert.Contains(t, e.statusMessage, "2 more times")

	e.processKeypress()
	assert.Equal(t, 3, e.pendingQuit)
	assert.Contains(t, e.statusMessage, "1 more times")

	// A 4th consecutive Ctrl-Q is the actual exit press: pendingQuit has
	// now reached quitTimes, so the warn guard no longer holds and
	// handleQuit falls through to the exit branch instead of warning
	// again. handleQuit itself isn't invoked here since its exit branch
	// calls os.Exit.
	require.Equal(t, quitTimes, e.pendingQuit)
	assert.False(t, e.doc.Dirty() > 0 && e.pendingQuit < quitTimes)
}

func TestProcessKeypressAnyOtherKeyResetsPendingQuit(t *testing.T) {
	e := newControllerEditor([]byte{byte(ctrlKey('q')), 'x'}, "ab")
	e.doc.dirty = 1

	e.processKeypress()
	require.Equal(t, 1, e.pendingQuit)

	e.processKeypress()
	assert.Equal(t, 0, e.pendingQuit)
}

func TestPromptSubmitsOnEnterAndInvokesCallbackEveryKeystroke(t *testing.T) {
	e := newControllerEditor([]byte("hi\r"), "ab")
	var seen []string

	buf, submitted := e.prompt("Search: %s", func(b []byte, key Key) {
		seen = append(seen, string(b))
	})

	require.True(t, submitted)
	assert.Equal(t, "hi", string(buf))
	assert.Equal(t, []string{"h", "hi", "hi"}, seen)
}

func TestPromptCancelsOnEscape(t *testing.T) {
	e := newControllerEditor([]byte("hi\x1b"), "ab")

	buf, submitted := e.prompt("Search: %s", nil)

	assert.False(t, submitted)
	assert.Nil(t, buf)
}

func TestPromptBackspaceRemovesLastRune(t *testing.T) {
	e := newControllerEditor([]byte("hi\x7f\r"), "ab")

	buf, submitted := e.prompt("Search: %s", nil)

	require.True(t, submitted)
	assert.Equal(t, "h", string(buf))
}
