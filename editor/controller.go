package editor

import (
	"errors"
	"os"

	"github.com/kigoeditor/kigo/internal/term"
)

// Run is the modal input loop of spec.md §5: alternate rendering a
// frame and decoding the next key, forever, until CTRL-Q actually
// exits. It is the single entry point cmd/kigo calls after setup.
func (e *Editor) Run() {
	e.SetStatusMessage("HELP: Ctrl-S save | Ctrl-Q quit | Ctrl-F find | Ctrl-G help")
	for {
		e.refreshScreen()
		e.processKeypress()
	}
}

// nextKey reads one key, treating a poll timeout as "nothing happened"
// rather than an error, and anything else as fatal, per spec.md §5/§7.
func (e *Editor) nextKey() (Key, bool) {
	key, err := e.decoder.NextKey()
	if err == nil {
		return key, true
	}
	if errors.Is(err, term.ErrTimeout) {
		return 0, false
	}
	e.Die(err)
	return 0, false
}

// processKeypress dispatches one main-mode key event, per spec.md §4.6.
// Any key other than CTRL-Q resets the quit-confirmation counter.
func (e *Editor) processKeypress() {
	key, ok := e.nextKey()
	if !ok {
		return
	}

	if key != ctrlKey('q') {
		e.pendingQuit = 0
	}

	switch key {
	case '\r':
		e.view.Cy, e.view.Cx = e.doc.InsertNewline(e.view.Cy, e.view.Cx)

	case ctrlKey('q'):
		e.handleQuit()

	case ctrlKey('s'):
		e.Save()

	case ctrlKey('f'):
		e.Find()

	case ctrlKey('e'):
		e.Explorer()

	case ctrlKey('g'):
		e.Help()

	case ctrlKey('r'):
		e.Redraw()

	case Key(KeyHome):
		e.view.Home()

	case Key(KeyEnd):
		e.view.End(e.doc)

	case KeyBackspace, Key(KeyDelete), ctrlKey('h'):
		if key == Key(KeyDelete) {
			e.view.MoveCursor(DirRight, e.doc)
		}
		e.view.Cy, e.view.Cx = e.doc.DeleteChar(e.view.Cy, e.view.Cx)

	case Key(KeyPageUp):
		e.view.PageUp(e.doc)

	case Key(KeyPageDown):
		e.view.PageDown(e.doc)

	case Key(KeyArrowLeft):
		e.view.MoveCursor(DirLeft, e.doc)
	case Key(KeyArrowRight):
		e.view.MoveCursor(DirRight, e.doc)
	case Key(KeyArrowUp):
		e.view.MoveCursor(DirUp, e.doc)
	case Key(KeyArrowDown):
		e.view.MoveCursor(DirDown, e.doc)

	case ctrlKey('l'), 0x1b:
		// accepted, ignored

	default:
		if !isControlByte(byte(key)) || key == '\t' {
			e.doc.InsertChar(e.view.Cy, e.view.Cx, byte(key))
			e.view.Cx++
		}
	}
}

// handleQuit implements the four-consecutive-CTRL-Q guard of spec.md
// §4.6/§5: the first quitTimes presses on a dirty buffer each warn and
// count down, and only the next (quitTimes+1-th) press actually exits.
func (e *Editor) handleQuit() {
	if e.doc.Dirty() > 0 && e.pendingQuit < quitTimes {
		remaining := quitTimes - e.pendingQuit
		e.pendingQuit++
		e.SetStatusMessage("WARNING: file has unsaved changes. Press Ctrl-Q %d more times to quit.", remaining)
		return
	}
	e.diag.Close()
	e.driver.Restore()
	e.driver.ClearScreen()
	os.Exit(0)
}

// prompt runs the synchronous mini-prompt of spec.md §4.6: format must
// contain exactly one %s slot. callback, if non-nil, is invoked after
// every keystroke including the terminating RETURN/ESC. It returns the
// submitted buffer and whether the prompt was submitted (true) rather
// than cancelled (false).
func (e *Editor) prompt(format string, callback func(buf []byte, key Key)) ([]byte, bool) {
	buf := make([]byte, 0, 128)
	for {
		e.SetStatusMessage(format, string(buf))
		e.refreshScreen()

		key, ok := e.nextKey()
		if !ok {
			continue
		}

		switch key {
		case Key(KeyDelete), KeyBackspace, ctrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case 0x1b:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return nil, false

		case '\r':
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return buf, true
			}

		default:
			if !isControlByte(byte(key)) && key < 128 {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}
