package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditorWithFakeDriver(t *testing.T) (*Editor, *fakeReader) {
	t.Helper()
	fake := &fakeReader{}
	e, err := New(fake)
	require.NoError(t, err)
	return e, fake
}

func TestNewSizesViewportFromDriver(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)

	assert.Equal(t, 24, e.termRows)
	assert.Equal(t, 80, e.termCols)
	assert.Equal(t, ModeEdit, e.mode)
}

func TestOpenLoadsFileIntoDocument(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0644))

	err := e.Open(path)

	require.NoError(t, err)
	assert.Equal(t, "package main", string(e.doc.Row(0).Chars()))
	assert.Equal(t, 0, e.doc.Dirty())
}

func TestOpenMissingFileReturnsErrLoad(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)

	err := e.Open(filepath.Join(t.TempDir(), "missing.go"))

	assert.ErrorIs(t, err, ErrLoad)
}

func TestSaveWritesDirtyBufferAndClearsDirty(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	e.doc.InsertRow(0, []byte("hello"))
	e.doc.filename = path

	e.Save()

	assert.Equal(t, 0, e.doc.Dirty())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}

func TestSavePromptsForNameWhenFilenameEmpty(t *testing.T) {
	e, fake := newEditorWithFakeDriver(t)
	e.doc.InsertRow(0, []byte("hi"))
	path := filepath.Join(t.TempDir(), "named.txt")
	fake.bytes = []byte(path + "\r")

	e.Save()

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(got))
}

func TestSaveAbortsWhenPromptCancelled(t *testing.T) {
	e, fake := newEditorWithFakeDriver(t)
	e.doc.InsertRow(0, []byte("hi"))
	fake.bytes = []byte{0x1b}

	e.Save()

	assert.Equal(t, "Save aborted", e.statusMessage)
	assert.Equal(t, 1, e.doc.Dirty())
}

func TestSetStatusMessageFormatsAndStampsTime(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)

	e.SetStatusMessage("saved %d bytes", 42)

	assert.Equal(t, "saved 42 bytes", e.statusMessage)
	assert.False(t, e.statusMessageTime.IsZero())
}

func TestShowErrorPrefixesMessage(t *testing.T) {
	e, _ := newEditorWithFakeDriver(t)

	e.ShowError("disk full")

	assert.Equal(t, "error: disk full", e.statusMessage)
}

func TestRedrawRefreshesTerminalDimensions(t *testing.T) {
	e, fake := newEditorWithFakeDriver(t)
	fake.rows, fake.cols = 40, 100

	e.Redraw()

	assert.Equal(t, 40, e.termRows)
	assert.Equal(t, 100, e.termCols)
	assert.Equal(t, 38, e.view.ScreenRows)
	assert.Equal(t, 100, e.view.ScreenCols)
}
